package configstore

import (
	"strings"

	"file-sorter/internal/catalog"
)

// Document is the config file as an ordered sequence of non-empty lines.
type Document struct {
	lines []string
}

// NewDocument returns a document holding a copy of lines.
func NewDocument(lines []string) *Document {
	d := &Document{lines: make([]string, len(lines))}
	copy(d.lines, lines)
	return d
}

// Parse splits text on newlines. Empty lines are dropped, so blank lines in
// the source do not survive a round trip.
func Parse(text string) *Document {
	d := &Document{}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		d.lines = append(d.lines, line)
	}
	return d
}

// Serialize joins the lines with newlines. Every marker line except the
// first line of the document is preceded by one blank line.
func Serialize(d *Document) string {
	var b strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			b.WriteByte('\n')
			if catalog.IsMarker(line) {
				b.WriteByte('\n')
			}
		}
		b.WriteString(line)
	}
	return b.String()
}

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i.
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Index returns the index of the first line exactly equal to line, or -1.
func (d *Document) Index(line string) int {
	for i, l := range d.lines {
		if l == line {
			return i
		}
	}
	return -1
}

// LastContaining returns the index of the last line containing substr, or -1.
func (d *Document) LastContaining(substr string) int {
	idx := -1
	for i, l := range d.lines {
		if strings.Contains(l, substr) {
			idx = i
		}
	}
	return idx
}

// Replace overwrites the line at index i.
func (d *Document) Replace(i int, line string) {
	d.lines[i] = line
}

// InsertAt inserts line at index i, shifting the line previously at i and
// everything after it one position later. i == Len() appends.
func (d *Document) InsertAt(i int, line string) {
	d.lines = append(d.lines, "")
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = line
}

// RemoveAt deletes the line at index i.
func (d *Document) RemoveAt(i int) {
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
}
