// Package memstore implements configstore.Persister in memory.
package memstore

import (
	"context"
	"errors"

	"file-sorter/internal/configstore"
)

// ErrWriteFailed is returned by WriteConfig when FailWrites is set.
var ErrWriteFailed = errors.New("write failed")

// Store holds the config text in memory and counts writes.
type Store struct {
	Text       string
	Present    bool
	FailWrites bool
	Writes     int
}

// New returns a Store holding text.
func New(text string) *Store {
	return &Store{Text: text, Present: true}
}

// Empty returns a Store with nothing stored.
func Empty() *Store {
	return &Store{}
}

// ReadConfig returns the stored text.
func (s *Store) ReadConfig(ctx context.Context) (string, error) {
	if !s.Present {
		return "", configstore.ErrNoContent
	}
	return s.Text, nil
}

// WriteConfig replaces the stored text.
func (s *Store) WriteConfig(ctx context.Context, text string) error {
	if s.FailWrites {
		return ErrWriteFailed
	}
	s.Text = text
	s.Present = true
	s.Writes++
	return nil
}

var _ configstore.Persister = (*Store)(nil)
