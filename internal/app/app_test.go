package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/poe/internal/terminal"
)

// run drives a whole application session from a scripted byte stream.
func run(t *testing.T, opts Options, input string) string {
	t.Helper()

	var out, logOut bytes.Buffer
	a, err := New(opts, strings.NewReader(input), &out, &logOut, terminal.Nop{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func baseOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		ConfigPath:  filepath.Join(dir, "no-config.toml"),
		HistoryPath: filepath.Join(dir, "history"),
	}
}

func TestAppQuit(t *testing.T) {
	out := run(t, baseOptions(t), "q\r")
	if !strings.Contains(out, "1 > ") {
		t.Errorf("output = %q, want the command prompt", out)
	}
}

func TestAppInsertPrintQuit(t *testing.T) {
	out := run(t, baseOptions(t), "i\rhello world\rp\rq\r")
	if !strings.Contains(out, "hello world\n") {
		t.Errorf("output = %q, want the printed line", out)
	}
}

func TestAppEditDocumentAndSave(t *testing.T) {
	opts := baseOptions(t)
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("helllo"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts.FilePath = path

	// e, then inside the line editor: Left, Left, Backspace, Enter.
	out := run(t, opts, "e\r\x1b[D\x1b[D\x7f\rw\rq\r")
	if !strings.Contains(out, "Saved!") {
		t.Errorf("output = %q, want Saved!", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "hello" {
		t.Errorf("saved contents = %q, want %q", got, "hello")
	}
}

func TestAppCommandHistoryPersists(t *testing.T) {
	opts := baseOptions(t)
	run(t, opts, "m\rq\r")

	data, err := os.ReadFile(opts.HistoryPath)
	if err != nil {
		t.Fatalf("reading history file: %v", err)
	}
	if got := string(data); got != "m\nq\n" {
		t.Errorf("history file = %q, want %q", got, "m\nq\n")
	}
}

func TestAppCommandRecall(t *testing.T) {
	opts := baseOptions(t)
	// Submit "m", then recall it with Up and submit again.
	out := run(t, opts, "m\r\x1b[A\rq\r")
	if got := strings.Count(out, "Lines: 0"); got != 2 {
		t.Errorf("metadata printed %d times, want 2 (second via recall)", got)
	}
}

func TestAppNoHistory(t *testing.T) {
	opts := baseOptions(t)
	opts.NoHistory = true
	run(t, opts, "m\rq\r")

	if _, err := os.Stat(opts.HistoryPath); !os.IsNotExist(err) {
		t.Errorf("history file should not exist, stat err = %v", err)
	}
}

func TestAppRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[history]\nmax_items = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, logOut bytes.Buffer
	_, err := New(Options{ConfigPath: cfgPath}, strings.NewReader("q\r"), &out, &logOut, terminal.Nop{})
	if err == nil {
		t.Error("New should fail on invalid configuration")
	}
}

func TestAppContinuesOnUnreadableHistory(t *testing.T) {
	opts := baseOptions(t)
	// A directory at the history path makes the load fail.
	if err := os.Mkdir(opts.HistoryPath, 0o755); err != nil {
		t.Fatal(err)
	}

	var out, logOut bytes.Buffer
	a, err := New(opts, strings.NewReader("q\r"), &out, &logOut, terminal.Nop{})
	if err != nil {
		t.Fatalf("New should tolerate an unreadable history: %v", err)
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(logOut.String(), "history unavailable") {
		t.Errorf("log = %q, want a history warning", logOut.String())
	}
}
