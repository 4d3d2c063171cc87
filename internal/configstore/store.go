// Package configstore converts between the persisted config text and an
// in-memory line Document, and moves that text through a Persister.
//
// A Document is built fresh for every command, mutated at most once,
// serialized and written back in full. There is no locking: two invocations
// racing on the same file resolve as last writer wins.
package configstore

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when the config cannot be read, is empty,
	// or cannot be written.
	ErrUnavailable = errors.New("config unavailable")

	// ErrNoContent is returned by a Persister that has nothing stored.
	ErrNoContent = errors.New("no config content")
)

// Persister reads and writes the raw config text.
type Persister interface {
	// ReadConfig returns the whole config text.
	// Returns ErrNoContent if nothing is stored.
	ReadConfig(ctx context.Context) (string, error)

	// WriteConfig replaces the whole config text.
	WriteConfig(ctx context.Context, text string) error
}

// Store loads and persists Documents through a Persister.
type Store struct {
	p Persister
}

// New creates a Store backed by p.
func New(p Persister) *Store {
	return &Store{p: p}
}

// LoadText returns the raw config text.
func (s *Store) LoadText(ctx context.Context) (string, error) {
	text, err := s.p.ReadConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("reading config: %w: %w", ErrUnavailable, err)
	}
	if text == "" {
		return "", fmt.Errorf("reading config: %w: %w", ErrUnavailable, ErrNoContent)
	}
	return text, nil
}

// Load reads the config and parses it. A config with no lines is treated as
// unavailable.
func (s *Store) Load(ctx context.Context) (*Document, error) {
	text, err := s.LoadText(ctx)
	if err != nil {
		return nil, err
	}
	doc := Parse(text)
	if doc.Len() == 0 {
		return nil, fmt.Errorf("parsing config: %w: %w", ErrUnavailable, ErrNoContent)
	}
	return doc, nil
}

// Persist serializes doc and writes it back.
func (s *Store) Persist(ctx context.Context, doc *Document) error {
	if err := s.p.WriteConfig(ctx, Serialize(doc)); err != nil {
		return fmt.Errorf("writing config: %w: %w", ErrUnavailable, err)
	}
	return nil
}
