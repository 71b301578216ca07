// Package terminal provides scoped raw-mode access to the controlling
// terminal. A Session switches input to character-at-a-time delivery
// without local echo and guarantees the prior mode is restored on every
// exit path.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal indicates the input stream is not attached to a TTY.
var ErrNotTerminal = errors.New("input is not a terminal")

// Session is the raw-mode capability the line editor acquires for the
// duration of one interactive call.
type Session interface {
	// Enter switches the terminal into raw mode, remembering the
	// previous mode. Failure is fatal for the calling operation.
	Enter() error

	// Exit restores the mode saved by Enter. Safe to call when Enter
	// was never called or Exit already ran.
	Exit() error
}

// TTY implements Session over a real terminal file descriptor.
type TTY struct {
	fd    int
	state *term.State
}

// NewTTY creates a session for f, typically os.Stdin.
func NewTTY(f *os.File) *TTY {
	return &TTY{fd: int(f.Fd())}
}

func (t *TTY) Enter() error {
	if !term.IsTerminal(t.fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.state = state
	return nil
}

func (t *TTY) Exit() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	return nil
}

// Nop is a Session that does nothing, for non-TTY byte sources in
// tests.
type Nop struct{}

func (Nop) Enter() error { return nil }
func (Nop) Exit() error  { return nil }
