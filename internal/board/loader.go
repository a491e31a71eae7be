package board

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML file at path and returns a populated Board.
// It applies defaults for missing fields: 5s interval, 240 max_history,
// 3s probe timeout, http kind, and inherits default_identity for targets
// without an explicit identity.
func Load(path string) (*Board, error) {
	var b Board
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return nil, err
	}
	if b.IntervalStr != "" {
		d, err := time.ParseDuration(b.IntervalStr)
		if err == nil {
			b.Interval = d
		}
	}
	if b.Interval == 0 {
		b.Interval = 5 * time.Second
	}
	if b.MaxHistory == 0 {
		b.MaxHistory = 240
	}
	for i := range b.Groups {
		for j := range b.Groups[i].Targets {
			t := &b.Groups[i].Targets[j]
			if t.Kind == "" {
				t.Kind = KindHTTP
			}
			if t.Identity == "" {
				t.Identity = b.DefaultIdentity
			}
			if t.TimeoutStr != "" {
				d, err := time.ParseDuration(t.TimeoutStr)
				if err == nil {
					t.Timeout = d
				}
			}
			if t.Timeout == 0 {
				t.Timeout = 3 * time.Second
			}
			if t.Address == "" {
				return nil, fmt.Errorf("board %q: target %d in group %q has no address", b.Name, j, b.Groups[i].Name)
			}
		}
	}
	return &b, nil
}

// Save writes a Board to a TOML file at path. It serialises the duration
// fields into their string forms before encoding.
func Save(b *Board, path string) error {
	b.IntervalStr = b.Interval.String()
	for i := range b.Groups {
		for j := range b.Groups[i].Targets {
			t := &b.Groups[i].Targets[j]
			if t.Timeout != 0 {
				t.TimeoutStr = t.Timeout.String()
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(b)
}

// List returns the base names (without .toml extension) of all TOML files
// found in dir.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".toml") {
			names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		}
	}
	return names, nil
}
