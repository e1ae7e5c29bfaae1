/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"mazecaster/internal/config"
	"mazecaster/internal/frame"
	"mazecaster/internal/terminal"
	"mazecaster/internal/world"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Backend = config.BackendTerminal
	cfg.Audio = false
	cfg.Seed = 7
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewControllerDumpsMap(t *testing.T) {
	var out bytes.Buffer
	c := NewController(testConfig(), discardLogger(), &out)

	rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(rows) != world.DefaultSize {
		t.Fatalf("dump has %d rows, want %d", len(rows), world.DefaultSize)
	}
	if got := len(strings.Fields(rows[0])); got != world.DefaultSize {
		t.Errorf("dump row has %d cells, want %d", got, world.DefaultSize)
	}

	sim := c.Simulation()
	if sim.Map.Seed() != 7 {
		t.Errorf("map seed = %d, want 7", sim.Map.Seed())
	}
	if got, want := sim.Player.Cell(), sim.Config.SpawnCell(); got != want {
		t.Errorf("player in cell %+v, want spawn %+v", got, want)
	}
}

func TestNewControllerWithoutDump(t *testing.T) {
	cfg := testConfig()
	cfg.DumpMap = false
	var out bytes.Buffer
	NewController(cfg, discardLogger(), &out)
	if out.Len() != 0 {
		t.Errorf("dump written although disabled: %q", out.String())
	}
}

// openScreen leaves the simulation screen to the test so its contents survive Run.
type openScreen struct {
	*terminal.Screen
	closed bool
}

func (s *openScreen) Close() {
	s.closed = true
}

func TestRunUntilQuit(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(40, 12)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	bumpers := 0
	screen := &openScreen{Screen: terminal.New(sim, frame.SystemClock{}, terminal.DefaultHold, world.Grey, world.White)}
	c := NewController(testConfig(), discardLogger(), io.Discard)
	c.open = func() (Backend, error) { return screen, nil }
	c.bumper = func() frame.Bumper {
		bumpers++
		return nil
	}

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if bumpers != 1 {
		t.Errorf("bumper opened %d times, want 1", bumpers)
	}
	if !screen.closed {
		t.Errorf("backend was not closed")
	}

	cells, w, _ := sim.GetContents()
	if len(cells) != w*12 {
		t.Fatalf("screen has %d cells", len(cells))
	}
	if len(cells[5*w+20].Runes) == 0 {
		t.Errorf("nothing was drawn in the middle of the screen")
	}
}

func TestRunBackendError(t *testing.T) {
	c := NewController(testConfig(), discardLogger(), io.Discard)
	failure := errors.New("no display")
	c.open = func() (Backend, error) { return nil, failure }
	if err := c.Run(context.Background()); !errors.Is(err, failure) {
		t.Errorf("Run() error = %v, want %v", err, failure)
	}
}

func TestDiagnosticsFollowBackend(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig()
	cfg.Backend = config.BackendSDL
	if w := NewController(cfg, discardLogger(), &out).diagnostics(); w != &out {
		t.Errorf("sdl diagnostics should go to the output writer")
	}

	var logs bytes.Buffer
	c := NewController(testConfig(), slog.New(slog.NewTextHandler(&logs, nil)), io.Discard)
	if _, err := io.WriteString(c.diagnostics(), "X: 1.50, Y: 2.50\n\n"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), `msg="X: 1.50, Y: 2.50"`) {
		t.Errorf("position not logged: %q", logs.String())
	}
	if n := strings.Count(logs.String(), "X: 1.50"); n != 1 {
		t.Errorf("position logged %d times", n)
	}
}
