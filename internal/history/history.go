// Package history keeps the ordered log of previously submitted lines
// together with a navigation cursor, optionally persisted to a plain
// text file with one entry per line.
package history

import (
	"bufio"
	"fmt"
	"os"
)

// DefaultMaxItems bounds the history; older entries are discarded when
// the persisted log is loaded.
const DefaultMaxItems = 10000

// Store is an ordered sequence of submitted lines plus a navigation
// index. An index equal to Len() means no entry is selected (fresh
// line). Access is sequential; the editing session owns the store.
type Store struct {
	path     string // empty means memory-only
	maxItems int
	entries  []string
	nav      int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxItems overrides the retention bound.
func WithMaxItems(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// New creates a store persisted at path. An empty path disables
// persistence.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, maxItems: DefaultMaxItems}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMemory creates a store with persistence disabled.
func NewMemory(opts ...Option) *Store {
	return New("", opts...)
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns the stored lines in chronological order.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Load reads persisted entries in file order. When the file holds more
// than the retention bound, only the most recent entries are kept and
// the backing file is rewritten once. A missing file is not an error.
func (s *Store) Load() error {
	s.entries = s.entries[:0]
	s.nav = 0
	if s.path == "" {
		return nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening history file %s: %w", s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s.entries = append(s.entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading history file %s: %w", s.path, err)
	}

	if len(s.entries) > s.maxItems {
		trimmed := make([]string, s.maxItems)
		copy(trimmed, s.entries[len(s.entries)-s.maxItems:])
		s.entries = trimmed
		if err := s.rewrite(); err != nil {
			return err
		}
	}

	s.nav = len(s.entries)
	return nil
}

// Append adds line to the tail, persists it with a single append write,
// and resets the navigation index. The entry is retained in memory even
// when the write fails; the error is the caller's to report.
func (s *Store) Append(line string) error {
	s.entries = append(s.entries, line)
	s.nav = len(s.entries)

	if s.path == "" {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history file %s: %w", s.path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("appending to history file %s: %w", s.path, err)
	}
	return nil
}

// Prev steps the navigation index toward older entries and returns the
// entry now selected. It reports false when already at the oldest.
func (s *Store) Prev() (string, bool) {
	if s.nav == 0 {
		return "", false
	}
	s.nav--
	return s.entries[s.nav], true
}

// Next steps toward newer entries. Stepping past the newest entry
// returns an empty line (fresh state, reported true); once in the fresh
// state Next is a no-op and reports false.
func (s *Store) Next() (string, bool) {
	switch {
	case s.nav+1 < len(s.entries):
		s.nav++
		return s.entries[s.nav], true
	case s.nav < len(s.entries):
		s.nav = len(s.entries)
		return "", true
	default:
		return "", false
	}
}

// ResetNav deselects any recalled entry so the next Prev surfaces the
// most recent line.
func (s *Store) ResetNav() {
	s.nav = len(s.entries)
}

// rewrite replaces the backing file with the in-memory entries.
// Only the load-time trim pays this cost; steady state is appends.
func (s *Store) rewrite() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("rewriting history file %s: %w", s.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range s.entries {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("rewriting history file %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("rewriting history file %s: %w", s.path, err)
	}
	return nil
}
