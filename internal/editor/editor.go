// Package editor executes catalog commands against the config store.
//
// Each operation is one load, transform, persist transaction. Operations
// return an error describing why they aborted but never print anything on
// failure; the Reporter is called only after the config has been written.
package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"file-sorter/internal/catalog"
	"file-sorter/internal/configstore"
	"file-sorter/internal/logging"
)

// Row is one numbered line of a listed section.
type Row struct {
	Number int    `json:"row"`
	Text   string `json:"value"`
}

func (r Row) String() string {
	return fmt.Sprintf("%d: %s", r.Number, r.Text)
}

// Editor runs commands against a config store.
type Editor struct {
	store    *configstore.Store
	reporter Reporter
}

// New creates an Editor. reporter may be nil.
func New(store *configstore.Store, reporter Reporter) *Editor {
	return &Editor{store: store, reporter: reporter}
}

func lookup(name string, kind catalog.Kind) (catalog.CommandSpec, error) {
	spec, ok := catalog.Lookup(name)
	if !ok {
		return catalog.CommandSpec{}, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	if spec.Kind != kind {
		return catalog.CommandSpec{}, fmt.Errorf("%q is not a %s command: %w", name, kind, ErrUnknownCommand)
	}
	return spec, nil
}

// List returns the rows of the section named by a list command. The section
// starts at the first occurrence of the command's primary key anywhere in the
// raw text and runs up to, not including, the first line exactly equal to its
// terminator, or to the end of the config if there is none.
func (e *Editor) List(ctx context.Context, name string) ([]Row, error) {
	spec, err := lookup(name, catalog.KindList)
	if err != nil {
		return nil, err
	}

	text, err := e.store.LoadText(ctx)
	if err != nil {
		return nil, err
	}

	pos := strings.Index(text, spec.PrimaryKey)
	if pos < 0 {
		return nil, fmt.Errorf("%s: %w", spec.PrimaryKey, ErrKeyNotFound)
	}

	lines := configstore.Parse(text[pos:]).Lines()
	if catalog.SkipsHeader(spec.Name) && len(lines) > 0 {
		lines = lines[1:]
	}

	var rows []Row
	for _, line := range lines {
		if line == spec.SecondaryKey {
			break
		}
		rows = append(rows, Row{Number: len(rows) + 1, Text: line})
	}
	return rows, nil
}

// Set replaces the option line for a set command with "<key> <value>".
//
// The last line containing the key wins. A match on the very first line of
// the config is indistinguishable from no match and aborts with
// ErrKeyNotFound.
func (e *Editor) Set(ctx context.Context, name, value string) error {
	spec, err := lookup(name, catalog.KindSet)
	if err != nil {
		return err
	}

	if spec.IsNumeric && !isDigits(value) {
		return fmt.Errorf("%s: %q is not a number: %w", spec.PrimaryKey, value, ErrInvalidValue)
	}

	doc, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := doc.LastContaining(spec.PrimaryKey)
	if idx <= 0 {
		return fmt.Errorf("%s: %w", spec.PrimaryKey, ErrKeyNotFound)
	}

	doc.Replace(idx, spec.PrimaryKey+" "+value)
	return e.commit(ctx, spec, doc)
}

// Add inserts value as the last row of the command's section, immediately
// before the terminator. Without a terminator the value goes to the top of
// the config.
func (e *Editor) Add(ctx context.Context, name, value string) error {
	spec, err := lookup(name, catalog.KindAdd)
	if err != nil {
		return err
	}
	if !spec.HasSecondary {
		return fmt.Errorf("%q has no section: %w", name, ErrUnknownCommand)
	}

	doc, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := doc.Index(spec.SecondaryKey)
	if idx < 0 {
		logging.Debug("section terminator missing, inserting at top", "marker", spec.SecondaryKey)
		idx = 0
	}

	doc.InsertAt(idx, value)
	return e.commit(ctx, spec, doc)
}

// Remove deletes the row at the given 1-based offset from the section's start
// marker. Only the leading digits of row are used; anything after them is
// ignored, and a row with no leading digits is offset 0.
func (e *Editor) Remove(ctx context.Context, name, row string) error {
	spec, err := lookup(name, catalog.KindRemove)
	if err != nil {
		return err
	}

	doc, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	start := doc.Index(spec.PrimaryKey)
	if start < 0 {
		return fmt.Errorf("%s: %w", spec.PrimaryKey, ErrKeyNotFound)
	}

	offset, err := leadingInt(row)
	if err != nil {
		return fmt.Errorf("row %q: %w", row, ErrRowOutOfRange)
	}

	if offset >= doc.Len()-start {
		return fmt.Errorf("row %d: %w", offset, ErrRowOutOfRange)
	}
	target := start + offset

	if line := doc.Line(target); line == spec.PrimaryKey || line == spec.SecondaryKey {
		return fmt.Errorf("row %d is %s: %w", offset, line, ErrProtectedLine)
	}

	doc.RemoveAt(target)
	return e.commit(ctx, spec, doc)
}

func (e *Editor) commit(ctx context.Context, spec catalog.CommandSpec, doc *configstore.Document) error {
	if err := e.store.Persist(ctx, doc); err != nil {
		return err
	}
	logging.Debug("config persisted", "command", spec.Name, "lines", doc.Len())
	if e.reporter != nil {
		e.reporter.Success()
	}
	return nil
}

// isDigits reports whether every byte of s is an ASCII digit.
// The empty string qualifies.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// leadingInt parses the run of ASCII digits at the start of s.
func leadingInt(s string) (int, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, nil
	}
	return strconv.Atoi(s[:end])
}
