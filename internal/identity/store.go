package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	ErrNotFound  = errors.New("identity not found")
	ErrDuplicate = errors.New("identity already exists")
	ErrDecrypt   = errors.New("failed to decrypt identity vault (wrong password?)")
)

// vaultFile is the on-disk layout: the salt in the clear, the identity map
// sealed with the derived key.
type vaultFile struct {
	Salt []byte `json:"salt"`
	Data []byte `json:"data"`
}

// FileStore implements Provider with an AES-256-GCM encrypted vault file.
type FileStore struct {
	mu         sync.RWMutex
	path       string
	key        []byte
	salt       []byte
	identities map[string]Identity
}

// NewFileStore opens or creates the encrypted vault at path. A missing file
// creates a fresh vault keyed from password; an existing file must decrypt
// with it.
func NewFileStore(path string, password []byte) (*FileStore, error) {
	s := &FileStore{
		path:       path,
		identities: make(map[string]Identity),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			salt, err := newSalt()
			if err != nil {
				return nil, err
			}
			s.salt = salt
			s.key = deriveKey(password, salt)
			return s, s.save()
		}
		return nil, err
	}

	var vf vaultFile
	if err := json.Unmarshal(raw, &vf); err != nil {
		return nil, fmt.Errorf("corrupt identity vault: %w", err)
	}

	s.salt = vf.Salt
	s.key = deriveKey(password, vf.Salt)

	plaintext, err := open(s.key, vf.Data)
	if err != nil {
		return nil, ErrDecrypt
	}
	if err := json.Unmarshal(plaintext, &s.identities); err != nil {
		return nil, fmt.Errorf("corrupt identity data: %w", err)
	}
	return s, nil
}

// save seals the identity map and writes the vault atomically.
func (s *FileStore) save() error {
	plaintext, err := json.Marshal(s.identities)
	if err != nil {
		return err
	}
	sealed, err := seal(s.key, plaintext)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(vaultFile{Salt: s.salt, Data: sealed})
	if err != nil {
		return err
	}
	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// List returns summaries of all stored identities.
func (s *FileStore) List() ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]Summary, 0, len(s.identities))
	for _, id := range s.identities {
		summaries = append(summaries, id.Summarize())
	}
	return summaries, nil
}

// Get returns the identity with the given name, or ErrNotFound.
func (s *FileStore) Get(name string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.identities[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &id, nil
}

// Add stores a new identity. Returns ErrDuplicate if the name is taken.
func (s *FileStore) Add(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.identities[id.Name]; exists {
		return ErrDuplicate
	}
	s.identities[id.Name] = id
	return s.save()
}

// Update replaces an existing identity, renaming it if id.Name differs.
func (s *FileStore) Update(name string, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.identities[name]; !exists {
		return ErrNotFound
	}
	if name != id.Name {
		delete(s.identities, name)
	}
	s.identities[id.Name] = id
	return s.save()
}

// Remove deletes an identity by name.
func (s *FileStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.identities[name]; !exists {
		return ErrNotFound
	}
	delete(s.identities, name)
	return s.save()
}
