/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"mazecaster/internal/config"
)

func noEnv(string) string { return "" }

func stubPlay(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	saved := play
	play = func(context.Context, *config.Config, *slog.Logger, io.Writer) error {
		calls++
		return err
	}
	t.Cleanup(func() {
		play = saved
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})
	return &calls
}

func TestRunReportsFailureWithDiscardedLogs(t *testing.T) {
	calls := stubPlay(t, errors.New("create terminal screen: not a tty"))
	var stdout, stderr bytes.Buffer

	code := run([]string{"-backend=terminal"}, noEnv, &stdout, &stderr)
	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if *calls != 1 {
		t.Errorf("game started %d times", *calls)
	}
	if !strings.Contains(stderr.String(), "create terminal screen: not a tty") {
		t.Errorf("stderr = %q, want the failure", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q after a failure", stdout.String())
	}
}

func TestRunReportsFailureOnceWhenLoggingToStderr(t *testing.T) {
	stubPlay(t, errors.New("create window: no display"))
	var stdout, stderr bytes.Buffer

	if code := run(nil, noEnv, &stdout, &stderr); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if n := strings.Count(stderr.String(), "no display"); n != 1 {
		t.Errorf("failure reported %d times:\n%s", n, stderr.String())
	}
}

func TestRunGameOver(t *testing.T) {
	stubPlay(t, nil)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-backend=terminal"}, noEnv, &stdout, &stderr); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	if stdout.String() != "Game over\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunExitCodes(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "ray.log")
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"help", []string{"-h"}, 0, "backend"},
		{"bad flag", []string{"-width=wide"}, 2, "invalid width"},
		{"log file", []string{"-log-file=" + missing}, 1, "open log file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := stubPlay(t, nil)
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, noEnv, &stdout, &stderr); code != tt.code {
				t.Errorf("run(%v) = %d, want %d", tt.args, code, tt.code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr = %q, want it to mention %q", stderr.String(), tt.want)
			}
			if *calls != 0 {
				t.Errorf("game started after a startup error")
			}
		})
	}
}

func TestLogOutput(t *testing.T) {
	var stderr bytes.Buffer
	cfg := config.Default()
	if w, _, err := logOutput(cfg, &stderr); err != nil || w != &stderr {
		t.Errorf("sdl logs should go to stderr, got %v %v", w, err)
	}
	cfg.Backend = config.BackendTerminal
	if w, _, err := logOutput(cfg, &stderr); err != nil || w != io.Discard {
		t.Errorf("terminal logs should be discarded, got %v %v", w, err)
	}

	cfg.LogFile = filepath.Join(t.TempDir(), "ray.log")
	w, closeLog, err := logOutput(cfg, &stderr)
	if err != nil {
		t.Fatalf("logOutput() error = %v", err)
	}
	if _, err = io.WriteString(w, "hello\n"); err != nil {
		t.Fatal(err)
	}
	closeLog()
	if data, _ := os.ReadFile(cfg.LogFile); string(data) != "hello\n" {
		t.Errorf("log file = %q", data)
	}
}
