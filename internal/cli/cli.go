// Package cli parses the mazer command line on top of environment defaults.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jmisabella/mazer/internal/config"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the resolved command line.
type Options struct {
	config.Config
	Path    string // request file; "-" reads stdin
	Format  string // json, msgpack, ascii or svg
	Heatmap bool   // include distance shades in the output
	OutDir  string // directory for svg files; empty writes to stdout
}

// Parse processes args over defaults. It returns the options, whether the
// program should exit cleanly (help or no input), or an *ExitError.
func Parse(args []string, output io.Writer, defaults config.Config) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("mazer", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazer - generate and solve mazes.

Usage:
  mazer [options] REQUEST_FILE
  mazer -serve ADDR

Arguments:
  REQUEST_FILE
    A .json request (object or array) or an .hcl file of maze blocks.
    Use - to read JSON from standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "json", "Output format. Options: 'json', 'msgpack', 'ascii' or 'svg'.")
	heatmapFlag := flagSet.Bool("heatmap", false, "Add distance shades (0-9) to the output.")
	outFlag := flagSet.String("out", "", "Directory receiving one .svg file per maze.")
	workersFlag := flagSet.Int("workers", defaults.Workers, "Number of mazes generated concurrently.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	serveFlag := flagSet.String("serve", defaults.Addr, "Serve the HTTP API on this address instead of reading a file.")
	maxCellsFlag := flagSet.Int("max-cells", defaults.MaxCells, "Largest accepted width*height.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{
		Config: config.Config{
			Workers:   *workersFlag,
			LogLevel:  strings.ToLower(*logLevelFlag),
			LogFormat: strings.ToLower(*logFormatFlag),
			Addr:      *serveFlag,
			MaxCells:  *maxCellsFlag,
		},
		Format:  strings.ToLower(*formatFlag),
		Heatmap: *heatmapFlag,
		OutDir:  *outFlag,
	}
	if flagSet.NArg() > 0 {
		opts.Path = flagSet.Arg(0)
	}
	if opts.Path == "" && opts.Addr == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	switch opts.Format {
	case "json", "msgpack", "ascii", "svg":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'json', 'msgpack', 'ascii' or 'svg'"}
	}
	if opts.OutDir != "" && opts.Format != "svg" {
		return nil, false, &ExitError{Code: 2, Message: "invalid out: only used with -format svg"}
	}
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if opts.Workers < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be positive"}
	}
	return opts, false, nil
}
