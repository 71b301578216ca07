package document

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineEditor is the interactive input capability the command loop
// consumes.
type LineEditor interface {
	// ReadLine collects a fresh line with history recall enabled.
	ReadLine(prompt string) (string, error)

	// EditLine collects a line pre-seeded with initial, history
	// disabled.
	EditLine(prompt, initial string) (string, error)
}

// Session runs the command loop over one document.
type Session struct {
	doc          *Document
	editor       LineEditor
	out          io.Writer
	contextLines int
	watch        *Watch
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithContextLines sets the default context command width.
func WithContextLines(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.contextLines = n
		}
	}
}

// WithWatch attaches an on-disk change watcher for the open file.
func WithWatch(w *Watch) SessionOption {
	return func(s *Session) { s.watch = w }
}

// NewSession creates a command loop over doc, reading commands through
// editor and printing to out.
func NewSession(doc *Document, editor LineEditor, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		doc:          doc,
		editor:       editor,
		out:          out,
		contextLines: 2,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and dispatches commands until quit. It returns an error
// only when interactive input itself fails.
func (s *Session) Run() error {
	defer func() {
		if s.watch != nil {
			s.watch.Close()
		}
	}()

	for {
		cmdLine, err := s.editor.ReadLine(fmt.Sprintf("%d > ", s.doc.Current()))
		if err != nil {
			return err
		}

		fields := strings.Fields(cmdLine)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "?":
			s.printHelp()
		case "c":
			s.context(fields[1:])
		case "d":
			if err := s.doc.DeleteCurrent(); err != nil {
				fmt.Fprintln(s.out, err)
			}
		case "e":
			if err := s.editCurrent(); err != nil {
				return err
			}
		case "f":
			s.find(strings.Join(fields[1:], " "), s.doc.FindNext)
		case "F":
			s.find(strings.Join(fields[1:], " "), s.doc.FindPrev)
		case "i":
			if err := s.insert(true); err != nil {
				return err
			}
		case "I":
			if err := s.insert(false); err != nil {
				return err
			}
		case "m":
			s.metadata()
		case "p":
			s.printLine(fields[1:])
		case "q":
			return nil
		case "w":
			s.save(fields[1:])
		default:
			if n, err := strconv.Atoi(fields[0]); err == nil {
				s.doc.SetCurrent(n)
			}
		}
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "         NUM - Set current line")
	fmt.Fprintln(s.out, "           ? - Print this help")
	fmt.Fprintln(s.out, "     c [NUM] - Print context, defaults to 2 lines")
	fmt.Fprintln(s.out, "           d - Delete current line")
	fmt.Fprintln(s.out, "           e - Edit current line")
	fmt.Fprintln(s.out, "    f [TEXT] - Find text below current line")
	fmt.Fprintln(s.out, "    F [TEXT] - Find text above current line")
	fmt.Fprintln(s.out, "           i - Insert new line below current line")
	fmt.Fprintln(s.out, "           I - Insert new line above current line")
	fmt.Fprintln(s.out, "           m - Print editor data")
	fmt.Fprintln(s.out, "           q - Quit")
	fmt.Fprintln(s.out, "     p [NUM] - Print current line. If given a number, will set the current line and print it")
	fmt.Fprintln(s.out, "w [FILENAME] - Write file to FILENAME or opened file location")
}

func (s *Session) context(args []string) {
	n := s.contextLines
	if len(args) > 0 {
		if parsed, err := strconv.Atoi(args[0]); err == nil {
			n = parsed
		}
	}

	for _, line := range s.doc.Context(n) {
		fmt.Fprintf(s.out, "%d: %s\n", line.Number, line.Text)
	}
}

func (s *Session) editCurrent() error {
	current, err := s.doc.CurrentLine()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}

	edited, err := s.editor.EditLine(fmt.Sprintf("%d # ", s.doc.Current()), current)
	if err != nil {
		return err
	}
	return s.doc.SetCurrentLine(edited)
}

func (s *Session) insert(below bool) error {
	line, err := s.editor.ReadLine("+ ")
	if err != nil {
		return err
	}
	if below {
		s.doc.InsertBelow(line)
	} else {
		s.doc.InsertAbove(line)
	}
	return nil
}

func (s *Session) find(pattern string, search func(string) bool) {
	if search(pattern) {
		s.printCurrentNumbered()
		return
	}
	fmt.Fprintf(s.out, "Pattern '%s' not found.\n", pattern)
}

func (s *Session) printLine(args []string) {
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			s.doc.SetCurrent(n)
		}
	}

	line, err := s.doc.CurrentLine()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintln(s.out, line)
}

func (s *Session) printCurrentNumbered() {
	line, err := s.doc.CurrentLine()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "%d: %s\n", s.doc.Current(), line)
}

func (s *Session) metadata() {
	if path := s.doc.Path(); path != "" {
		fmt.Fprintf(s.out, "File: %s\n", path)
	} else {
		fmt.Fprintln(s.out, "File: -")
	}
	fmt.Fprintf(s.out, "Lines: %d\n", s.doc.Len())
	fmt.Fprintf(s.out, "Current Line: %d\n", s.doc.Current())
	if s.doc.Dirty() {
		fmt.Fprintln(s.out, "Unsaved changes: yes")
	} else {
		fmt.Fprintln(s.out, "Unsaved changes: no")
	}
	if s.watch != nil && s.watch.Modified() {
		fmt.Fprintln(s.out, "Changed on disk: yes")
	}
}

func (s *Session) save(args []string) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	if s.watch != nil && s.watch.Modified() {
		fmt.Fprintln(s.out, "Warning: file changed on disk since it was opened; overwriting.")
	}

	if err := s.doc.Save(path); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if s.watch != nil {
		s.watch.Reset()
	}
	fmt.Fprintln(s.out, "Saved!")
}
