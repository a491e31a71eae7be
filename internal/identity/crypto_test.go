package identity

import (
	"bytes"
	"testing"
)

func TestSealOpen(t *testing.T) {
	salt, err := newSalt()
	if err != nil {
		t.Fatal(err)
	}
	key := deriveKey([]byte("password"), salt)

	plaintext := []byte(`{"name":"api"}`)
	sealed, err := seal(key, plaintext)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Error("sealed output contains plaintext")
	}

	opened, err := open(key, sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("open returned %q, want %q", opened, plaintext)
	}
}

func TestOpenWrongKey(t *testing.T) {
	salt, _ := newSalt()
	key := deriveKey([]byte("password"), salt)
	other := deriveKey([]byte("different"), salt)

	sealed, err := seal(key, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := open(other, sealed); err == nil {
		t.Error("open with wrong key should fail")
	}
}

func TestOpenTruncated(t *testing.T) {
	salt, _ := newSalt()
	key := deriveKey([]byte("pw"), salt)
	if _, err := open(key, []byte{1, 2, 3}); err == nil {
		t.Error("open on truncated data should fail")
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt, _ := newSalt()
	a := deriveKey([]byte("pw"), salt)
	b := deriveKey([]byte("pw"), salt)
	if !bytes.Equal(a, b) {
		t.Error("same password and salt should derive the same key")
	}

	salt2, _ := newSalt()
	c := deriveKey([]byte("pw"), salt2)
	if bytes.Equal(a, c) {
		t.Error("different salts should derive different keys")
	}
}
