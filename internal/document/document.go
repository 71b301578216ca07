package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Document errors.
var (
	ErrNoLines    = errors.New("document has no lines")
	ErrNoFilename = errors.New("no filename given")
)

// NumberedLine pairs a line with its 1-based number for display.
type NumberedLine struct {
	Number int
	Text   string
}

// Document is an addressable sequence of text lines with a current-line
// pointer. Line numbers are 1-based at the surface; the pointer is a
// 0-based index internally.
type Document struct {
	path    string
	lines   []string
	current int
	newline string
	dirty   bool
}

// New creates an empty, unnamed document.
func New() *Document {
	return &Document{newline: "\n"}
}

// Open loads the file at path. A nonexistent path yields an empty
// document that remembers the path for later saves. The newline
// convention of the file is detected and preserved on save.
func Open(path string) (*Document, error) {
	d := New()
	d.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	content := string(data)
	if strings.Contains(content, "\r\n") {
		d.newline = "\r\n"
	}
	d.lines = strings.Split(content, d.newline)
	return d, nil
}

// Path returns the file backing this document, or "" for an unnamed
// document.
func (d *Document) Path() string { return d.path }

// SetPath records a new backing file, as after "w FILENAME".
func (d *Document) SetPath(path string) { d.path = path }

// Newline returns the detected newline sequence.
func (d *Document) Newline() string { return d.newline }

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// Current returns the 1-based current line number. An empty document
// reports 1.
func (d *Document) Current() int { return d.current + 1 }

// CurrentLine returns the text of the current line.
func (d *Document) CurrentLine() (string, error) {
	if len(d.lines) == 0 {
		return "", ErrNoLines
	}
	return d.lines[d.current], nil
}

// SetCurrent moves the current-line pointer to the 1-based line n,
// clamping to the document. Zero is treated as the first line.
func (d *Document) SetCurrent(n int) {
	if n > 0 {
		d.current = n - 1
	} else {
		d.current = 0
	}
	d.clamp()
}

// SetCurrentLine replaces the text of the current line.
func (d *Document) SetCurrentLine(text string) error {
	if len(d.lines) == 0 {
		return ErrNoLines
	}
	d.lines[d.current] = text
	d.dirty = true
	return nil
}

// InsertBelow inserts line after the current line and moves the pointer
// to it. In an empty document the line becomes the first line.
func (d *Document) InsertBelow(line string) {
	if len(d.lines) == 0 {
		d.lines = append(d.lines, line)
		d.current = 0
		d.dirty = true
		return
	}
	d.current++
	d.lines = append(d.lines[:d.current],
		append([]string{line}, d.lines[d.current:]...)...)
	d.dirty = true
}

// InsertAbove inserts line before the current line; the pointer stays
// on the same text, which has shifted down by one.
func (d *Document) InsertAbove(line string) {
	d.lines = append(d.lines[:d.current],
		append([]string{line}, d.lines[d.current:]...)...)
	d.dirty = true
}

// DeleteCurrent removes the current line and moves the pointer up one
// line when possible.
func (d *Document) DeleteCurrent() error {
	if len(d.lines) == 0 {
		return ErrNoLines
	}
	d.lines = append(d.lines[:d.current], d.lines[d.current+1:]...)
	if d.current > 0 {
		d.current--
	}
	d.dirty = true
	return nil
}

// FindNext searches for pattern below the current line, moving the
// pointer to the first match. It reports whether a match was found.
func (d *Document) FindNext(pattern string) bool {
	for i := d.current + 1; i < len(d.lines); i++ {
		if strings.Contains(d.lines[i], pattern) {
			d.current = i
			return true
		}
	}
	return false
}

// FindPrev searches for pattern above the current line, moving the
// pointer to the closest match. It reports whether a match was found.
func (d *Document) FindPrev(pattern string) bool {
	for i := d.current - 1; i >= 0; i-- {
		if strings.Contains(d.lines[i], pattern) {
			d.current = i
			return true
		}
	}
	return false
}

// Context returns the current line with up to n lines on each side,
// clamped to the document.
func (d *Document) Context(n int) []NumberedLine {
	if len(d.lines) == 0 {
		return nil
	}
	if n < 0 {
		n = 0
	}

	lo := d.current - n
	if lo < 0 {
		lo = 0
	}
	hi := d.current + n
	if hi >= len(d.lines) {
		hi = len(d.lines) - 1
	}

	out := make([]NumberedLine, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, NumberedLine{Number: i + 1, Text: d.lines[i]})
	}
	return out
}

// Save writes the document to path, joining lines with the detected
// newline sequence and no trailing newline. An empty path falls back to
// the document's own path.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return ErrNoFilename
	}

	content := strings.Join(d.lines, d.newline)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	d.path = path
	d.dirty = false
	return nil
}

func (d *Document) clamp() {
	if len(d.lines) == 0 {
		d.current = 0
		return
	}
	if d.current >= len(d.lines) {
		d.current = len(d.lines) - 1
	}
}
