package editline

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Escape sequences used for in-line cursor control. All positioning is
// relative horizontal movement from the last known column.
const (
	escClearLine = "\x1b[2K"
)

// Renderer keeps the visible terminal line consistent with a
// LineBuffer. It tracks the visual cursor column within the content
// area (prompt excluded) so every reposition can be emitted as a
// relative move.
type Renderer struct {
	w      io.Writer
	prompt string
	col    int
}

// NewRenderer creates a renderer writing to w with the given prompt.
func NewRenderer(w io.Writer, prompt string) *Renderer {
	return &Renderer{w: w, prompt: prompt}
}

// Begin paints the prompt followed by any seed content, leaving the
// visual cursor at the end of the content.
func (r *Renderer) Begin(content string) error {
	if err := r.emit(r.prompt + content); err != nil {
		return err
	}
	r.col = utf8.RuneCountInString(content)
	return nil
}

// AppendRune handles a tail insert: the inserted character is emitted
// as-is and the terminal advances the cursor on its own.
func (r *Renderer) AppendRune(ch rune) error {
	if err := r.emit(string(ch)); err != nil {
		return err
	}
	r.col++
	return nil
}

// MoveCursor repositions the visual cursor to the given buffer offset
// using a relative horizontal move.
func (r *Renderer) MoveCursor(cursor int) error {
	switch {
	case cursor < r.col:
		if err := r.moveLeft(r.col - cursor); err != nil {
			return err
		}
	case cursor > r.col:
		if err := r.moveRight(cursor - r.col); err != nil {
			return err
		}
	}
	r.col = cursor
	return nil
}

// RepaintTail handles a mid-line change: reposition to the edit point,
// rewrite the suffix plus one trailing space (erasing any leftover
// character after a shrink), then reposition back to cursor.
func (r *Renderer) RepaintTail(suffix string, editPoint, cursor int) error {
	if err := r.MoveCursor(editPoint); err != nil {
		return err
	}
	if err := r.emit(suffix + " "); err != nil {
		return err
	}
	r.col = editPoint + utf8.RuneCountInString(suffix) + 1
	return r.MoveCursor(cursor)
}

// Redraw replaces the whole visible line: carriage return, clear line,
// prompt and content. Used for Ctrl-C clears and history recall.
func (r *Renderer) Redraw(content string, cursor int) error {
	if err := r.emit("\r" + escClearLine + r.prompt + content); err != nil {
		return err
	}
	r.col = utf8.RuneCountInString(content)
	return r.MoveCursor(cursor)
}

// BreakLine moves output to the start of a fresh line. Raw mode needs
// the explicit carriage return after the newline.
func (r *Renderer) BreakLine() error {
	if err := r.emit("\n\r"); err != nil {
		return err
	}
	r.col = 0
	return nil
}

func (r *Renderer) moveLeft(n int) error {
	if n <= 0 {
		return nil
	}
	return r.emit(fmt.Sprintf("\x1b[%dD", n))
}

func (r *Renderer) moveRight(n int) error {
	if n <= 0 {
		return nil
	}
	return r.emit(fmt.Sprintf("\x1b[%dC", n))
}

func (r *Renderer) emit(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}
