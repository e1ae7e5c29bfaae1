/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pkg/errors"

	"mazecaster/internal"
	"mazecaster/internal/config"
)

var version = "dev"

// play runs the game until quit. Tests replace it to avoid opening a window.
var play = func(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	return internal.NewController(cfg, logger, stdout).Run(ctx)
}

func init() {
	// SDL must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logOut, closeLog, err := logOutput(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	slog.Info("Ray Caster", "version", version, "backend", cfg.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = play(ctx, cfg, logger, stdout); err != nil {
		slog.Error("ray caster failed", "error", err)
		// The backend is closed by now, so stderr is safe even for the terminal.
		if logOut != stderr {
			fmt.Fprintln(stderr, "ray caster failed:", err)
		}
		return 1
	}
	fmt.Fprintln(stdout, "Game over")
	return 0
}

// logOutput is stderr, the log file, or nowhere while the terminal backend owns the screen.
func logOutput(cfg *config.Config, stderr io.Writer) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		return f, func() { _ = f.Close() }, nil
	}
	if cfg.Backend == config.BackendTerminal {
		return io.Discard, func() {}, nil
	}
	return stderr, func() {}, nil
}
