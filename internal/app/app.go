// Package app wires the configuration, history, line editor and
// document session into a running program.
package app

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dshills/poe/internal/config"
	"github.com/dshills/poe/internal/document"
	"github.com/dshills/poe/internal/editline"
	"github.com/dshills/poe/internal/history"
	"github.com/dshills/poe/internal/terminal"
)

// Options come from the command line.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// FilePath is the document to open; empty opens an unnamed empty
	// document.
	FilePath string

	// HistoryPath overrides the configured history file location.
	HistoryPath string

	// NoHistory disables history persistence and recall entirely.
	NoHistory bool

	// LogLevel sets diagnostic verbosity (debug, info, warn, error).
	LogLevel string
}

// App is one editing process: a document session bound to a terminal.
type App struct {
	opts    Options
	cfg     config.Config
	log     *Logger
	hist    *history.Store
	session *document.Session
	watch   *document.Watch
}

// New builds the application. Interactive input and output streams and
// the raw-mode session are injected so tests can run without a TTY.
func New(opts Options, input io.Reader, output io.Writer, logOutput io.Writer, session terminal.Session) (*App, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := NewLogger(logOutput, ParseLogLevel(opts.LogLevel)).
		WithField("session", uuid.New().String())

	a := &App{opts: opts, cfg: cfg, log: log}
	a.hist = a.buildHistory()

	// A broken history file is recoverable: start with an empty
	// history and keep the session interactive.
	if err := a.hist.Load(); err != nil {
		log.Warn("history unavailable: %v", err)
	}

	doc, err := a.openDocument()
	if err != nil {
		return nil, err
	}

	editor := editline.New(input, output, session, a.hist, editline.WithLogger(log))

	sessionOpts := []document.SessionOption{
		document.WithContextLines(cfg.Editor.ContextLines),
	}
	if a.watch != nil {
		sessionOpts = append(sessionOpts, document.WithWatch(a.watch))
	}
	a.session = document.NewSession(doc, editor, output, sessionOpts...)

	return a, nil
}

// Run executes the command loop until quit.
func (a *App) Run() error {
	a.log.Debug("session started")
	defer a.log.Debug("session ended")
	return a.session.Run()
}

func (a *App) buildHistory() *history.Store {
	if a.opts.NoHistory || !a.cfg.History.Enabled {
		return history.NewMemory(history.WithMaxItems(a.cfg.History.MaxItems))
	}

	path := a.cfg.History.Path
	if a.opts.HistoryPath != "" {
		path = a.opts.HistoryPath
	}
	return history.New(path, history.WithMaxItems(a.cfg.History.MaxItems))
}

func (a *App) openDocument() (*document.Document, error) {
	if a.opts.FilePath == "" {
		return document.New(), nil
	}

	doc, err := document.Open(a.opts.FilePath)
	if err != nil {
		return nil, err
	}

	watch, err := document.NewWatch(a.opts.FilePath)
	if err != nil {
		// No watch means no on-disk change warnings; everything
		// else still works.
		a.log.Debug("file watch unavailable: %v", err)
	} else {
		a.watch = watch
	}
	return doc, nil
}
