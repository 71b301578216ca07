package editline

import (
	"fmt"
	"io"

	"github.com/dshills/poe/internal/history"
	"github.com/dshills/poe/internal/input/key"
	"github.com/dshills/poe/internal/terminal"
)

// Logger is the subset of the application logger the editor needs for
// non-fatal diagnostics.
type Logger interface {
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...any) {}

// Editor drives the interactive line-edit loop. It owns exclusive
// raw-mode terminal access for the duration of each call; calls are
// strictly sequential.
type Editor struct {
	input   io.Reader
	output  io.Writer
	session terminal.Session
	hist    *history.Store
	log     Logger
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithLogger sets the diagnostic logger.
func WithLogger(l Logger) EditorOption {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an editor reading keys from input, painting to output,
// bracketing each call with session, and recording submitted lines in
// hist.
func New(input io.Reader, output io.Writer, session terminal.Session, hist *history.Store, opts ...EditorOption) *Editor {
	e := &Editor{
		input:   input,
		output:  output,
		session: session,
		hist:    hist,
		log:     nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReadLine collects a fresh line. History navigation is enabled and the
// submitted line is appended to history and persisted.
func (e *Editor) ReadLine(prompt string) (string, error) {
	return e.edit(prompt, "", true)
}

// EditLine collects a line starting from initial with the cursor at the
// end. History navigation is disabled and the result is not recorded.
func (e *Editor) EditLine(prompt, initial string) (string, error) {
	return e.edit(prompt, initial, false)
}

func (e *Editor) edit(prompt, initial string, withHistory bool) (string, error) {
	if err := e.session.Enter(); err != nil {
		return "", fmt.Errorf("acquiring raw mode: %w", err)
	}
	defer e.session.Exit()

	buf := NewLineBufferFrom(initial)
	r := NewRenderer(e.output, prompt)
	if err := r.Begin(buf.String()); err != nil {
		return "", err
	}

	dec := key.NewDecoder(e.input)
	for {
		ev, err := dec.Next()
		if err != nil {
			return "", fmt.Errorf("reading key: %w", err)
		}

		done, err := e.dispatch(ev, buf, r, withHistory)
		if err != nil {
			return "", err
		}
		if done {
			return e.submit(buf, withHistory), nil
		}
	}
}

// dispatch applies one key event to the buffer and syncs the display.
// It reports done=true on submit.
func (e *Editor) dispatch(ev key.Event, buf *LineBuffer, r *Renderer, withHistory bool) (bool, error) {
	switch {
	case ev.Key == key.KeyEnter:
		return true, r.BreakLine()

	case ev.IsPrintable():
		return false, e.insert(ev.Rune, buf, r)

	case ev.Key == key.KeyBackspace:
		from := buf.Cursor() - 1
		if buf.Backspace() {
			return false, r.RepaintTail(buf.SuffixFrom(from), from, buf.Cursor())
		}

	case ev.Key == key.KeyDelete:
		from := buf.Cursor()
		if buf.DeleteForward() {
			return false, r.RepaintTail(buf.SuffixFrom(from), from, buf.Cursor())
		}

	case ev.Key == key.KeyLeft:
		if buf.MoveLeft() {
			return false, r.MoveCursor(buf.Cursor())
		}

	case ev.Key == key.KeyRight:
		if buf.MoveRight() {
			return false, r.MoveCursor(buf.Cursor())
		}

	case ev.Key == key.KeyHome:
		if buf.MoveHome() {
			return false, r.MoveCursor(buf.Cursor())
		}

	case ev.Key == key.KeyEnd:
		if buf.MoveEnd() {
			return false, r.MoveCursor(buf.Cursor())
		}

	case ev.Key == key.KeyUp && withHistory:
		if entry, ok := e.hist.Prev(); ok {
			buf.ReplaceAll(entry)
			return false, r.Redraw(buf.String(), buf.Cursor())
		}

	case ev.Key == key.KeyDown && withHistory:
		if entry, ok := e.hist.Next(); ok {
			buf.ReplaceAll(entry)
			return false, r.Redraw(buf.String(), buf.Cursor())
		}

	case ev.IsCtrl('c'):
		// Ctrl-C clears the line but stays in the edit loop; there
		// is no cancelled state.
		buf.ReplaceAll("")
		e.hist.ResetNav()
		if err := r.BreakLine(); err != nil {
			return false, err
		}
		return false, r.Redraw("", 0)
	}

	// Unrecognized keys and boundary no-ops: nothing to do.
	return false, nil
}

func (e *Editor) insert(ch rune, buf *LineBuffer, r *Renderer) error {
	atEnd := buf.Cursor() == buf.Len()
	if !buf.Insert(ch) {
		// Capacity is a hard ceiling; the character is dropped
		// without echo.
		return nil
	}
	if atEnd {
		return r.AppendRune(ch)
	}
	from := buf.Cursor() - 1
	return r.RepaintTail(buf.SuffixFrom(from), from, buf.Cursor())
}

// submit finalizes the line. A history write failure never interrupts
// the submit; it is surfaced as a warning only.
func (e *Editor) submit(buf *LineBuffer, withHistory bool) string {
	line := buf.String()
	if withHistory {
		if err := e.hist.Append(line); err != nil {
			e.log.Warn("history append failed: %v", err)
		}
	}
	return line
}
