// Package filesystem implements configstore.Persister on a single file.
//
// The file is read whole and rewritten whole through a temporary file and a
// rename, so a reader never observes a half-written config. No lock is taken.
package filesystem

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"file-sorter/internal/configstore"
)

// Store reads and writes the config file at path.
type Store struct {
	path string
}

// New creates a Store for the config file at path. The file is not touched
// until the first read or write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// ReadConfig returns the file contents.
// Returns configstore.ErrNoContent if the file does not exist.
func (s *Store) ReadConfig(ctx context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", s.path, configstore.ErrNoContent)
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return string(raw), nil
}

// WriteConfig atomically replaces the file contents with text.
func (s *Store) WriteConfig(ctx context.Context, text string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return atomicWrite(s.path, []byte(text))
}

// atomicWrite writes data to a file atomically via a temporary file and rename.
func atomicWrite(path string, data []byte) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}

var _ configstore.Persister = (*Store)(nil)
