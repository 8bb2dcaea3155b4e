package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmisabella/mazer/engine"
	"github.com/jmisabella/mazer/export"
	"github.com/jmisabella/mazer/httpapi"
	"github.com/jmisabella/mazer/internal/cli"
	"github.com/jmisabella/mazer/internal/config"
	"github.com/jmisabella/mazer/internal/ctxlog"
	"github.com/jmisabella/mazer/request"
)

// main is the entrypoint for the mazer command.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires configuration, logging and the engine, then either serves HTTP
// or generates the mazes of one request file.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	defaults, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	opts, shouldExit, err := cli.Parse(args, stdout, defaults)
	if err != nil || shouldExit {
		return err
	}

	logger := ctxlog.New(opts.LogLevel, opts.LogFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	e, err := engine.New(
		engine.WithLogger(logger),
		engine.WithWorkers(opts.Workers),
		engine.WithMaxCells(opts.MaxCells),
	)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	if opts.Path == "" {
		return serve(opts.Addr, e, logger)
	}
	return generate(ctx, e, opts, stdin, stdout)
}

func serve(addr string, e *engine.Engine, logger *slog.Logger) error {
	router := httpapi.NewRouter(httpapi.Config{
		Addr:        addr,
		BaseURL:     "/api",
		Controllers: []httpapi.Controller{httpapi.NewMazeController(e, export.NewRegistry())},
		Logger:      logger,
	})
	return router.Run()
}

func generate(ctx context.Context, e *engine.Engine, opts *cli.Options, stdin io.Reader, stdout io.Writer) error {
	docs, err := readDocuments(opts.Path, stdin)
	if err != nil {
		return err
	}
	reqs, err := request.Requests(docs)
	if err != nil {
		return err
	}
	results, err := e.Batch(ctx, reqs)
	if err != nil {
		return err
	}
	if err := write(stdout, opts, docs, results); err != nil {
		return err
	}

	failed := 0
	logger := ctxlog.FromContext(ctx)
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("maze failed", "index", r.Index, "name", docs[r.Index].Name, "error", r.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d mazes failed", failed, len(results))
	}
	return nil
}

func readDocuments(path string, stdin io.Reader) ([]request.Document, error) {
	if path != "-" {
		return request.LoadFile(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	return request.ParseJSON(data)
}
