/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mazecaster/internal/audio"
	"mazecaster/internal/caster"
	"mazecaster/internal/config"
	"mazecaster/internal/frame"
	"mazecaster/internal/graphics"
	"mazecaster/internal/terminal"
)

const Title = "Ray Caster"

// Backend is a window or terminal that can both draw frames and report held keys.
type Backend interface {
	frame.Renderer
	frame.Input
	Close()
}

type Controller struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	sim    *frame.Simulation
	open   func() (Backend, error)
	bumper func() frame.Bumper
}

// NewController generates the first map and places the player. out receives the map dump
// and print-position output.
func NewController(cfg *config.Config, logger *slog.Logger, out io.Writer) *Controller {
	c := &Controller{
		cfg:    cfg,
		logger: logger.With("run", uuid.NewString()),
		out:    out,
	}
	c.sim = frame.NewSimulation(cfg.World(), caster.New(cfg.Palette, cfg.SideShade), cfg.Speeds)
	c.open = c.openBackend
	c.bumper = c.openBumper

	c.logger.Info("map generated",
		"seed", c.sim.Map.Seed(),
		"size", cfg.MapSize,
		"generator", cfg.Generator,
		"spawn", c.sim.Config.SpawnCell())
	if cfg.DumpMap {
		if err := c.sim.Map.Dump(out); err != nil {
			c.logger.Warn("map dump failed", "error", err)
		}
	}
	return c
}

func (c *Controller) Simulation() *frame.Simulation {
	return c.sim
}

// Run opens the backend and drives frames until quit or ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	backend, err := c.open()
	if err != nil {
		return err
	}
	defer backend.Close()

	opts := []frame.Option{
		frame.WithLogger(c.logger),
		frame.WithFrameRate(c.cfg.FrameRate),
		frame.WithDiagnostics(c.diagnostics()),
	}
	if b := c.bumper(); b != nil {
		if closer, ok := b.(interface{ Close() }); ok {
			defer closer.Close()
		}
		opts = append(opts, frame.WithBumper(b))
	}

	driver := frame.NewDriver(c.sim, backend, backend, frame.SystemClock{}, opts...)
	return errors.Wrap(driver.Run(ctx), "frame")
}

func (c *Controller) openBackend() (Backend, error) {
	if c.cfg.Backend == config.BackendTerminal {
		screen, err := terminal.Open(frame.SystemClock{}, c.cfg.Ceiling, c.cfg.Floor)
		if err != nil {
			return nil, err
		}
		return screen, nil
	}
	window, err := graphics.Open(Title, int32(c.cfg.Width), int32(c.cfg.Height), c.cfg.Ceiling, c.cfg.Floor)
	if err != nil {
		return nil, err
	}
	return window, nil
}

// openBumper returns nil when audio is off or the speaker cannot be opened; the game runs silent.
func (c *Controller) openBumper() frame.Bumper {
	if !c.cfg.Audio {
		return nil
	}
	b := audio.NewBumper(audio.DefaultFrequency, audio.DefaultDuration)
	if err := b.Init(); err != nil {
		c.logger.Warn("audio disabled", "error", err)
		return nil
	}
	return b
}

// The terminal owns stdout while it runs, so diagnostics go to the log instead.
func (c *Controller) diagnostics() io.Writer {
	if c.cfg.Backend == config.BackendTerminal {
		return &logWriter{logger: c.logger}
	}
	return c.out
}

// logWriter logs every written line at info level.
type logWriter struct {
	logger *slog.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	scanner := bufio.NewScanner(strings.NewReader(string(p)))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
