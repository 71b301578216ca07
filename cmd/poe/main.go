// Package main is the entry point for the poe line editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/poe/internal/app"
	"github.com/dshills/poe/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts, os.Stdin, os.Stdout, os.Stderr, terminal.NewTTY(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := application.Run(); err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			fmt.Fprintln(os.Stderr, "Error: poe requires an interactive terminal")
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.HistoryPath, "history", "", "Path to command history file")
	flag.BoolVar(&opts.NoHistory, "no-history", false, "Disable command history")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "poe - line-oriented text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: poe [options] [FILENAME]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  poe                  Open an empty document\n")
		fmt.Fprintf(os.Stderr, "  poe notes.txt        Open a file\n")
		fmt.Fprintf(os.Stderr, "  poe -no-history f    Open without command history\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("poe %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	opts.FilePath = flag.Arg(0)

	return opts
}
