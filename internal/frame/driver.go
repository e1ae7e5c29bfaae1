/*
 * Copyright (C) 2023 by Jason Figge
 */

package frame

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const (
	// maxDelta caps the step taken after a stall so the player cannot tunnel through a wall.
	maxDelta       = 250 * time.Millisecond
	statusInterval = time.Second
)

// Driver runs ticks against one Simulation. Each tick renders first and applies input after,
// so what is on screen lags the newest input by one tick.
type Driver struct {
	sim      *Simulation
	renderer Renderer
	input    Input
	clock    Clock
	bumper   Bumper
	diag     io.Writer
	logger   *slog.Logger

	frameTime time.Duration

	started bool
	last    time.Time
	quit    bool
	blocked bool
	regen   bool

	frames      uint64
	statusStart time.Time
	statusCount int
}

type Option func(*Driver)

func WithBumper(b Bumper) Option {
	return func(d *Driver) { d.bumper = b }
}

// WithDiagnostics sets where print-position output goes.
func WithDiagnostics(w io.Writer) Option {
	return func(d *Driver) { d.diag = w }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithFrameRate caps Run at fps ticks per second. 0 leaves pacing to the renderer.
func WithFrameRate(fps int) Option {
	return func(d *Driver) {
		if fps > 0 {
			d.frameTime = time.Second / time.Duration(fps)
		}
	}
}

func NewDriver(sim *Simulation, renderer Renderer, input Input, clock Clock, opts ...Option) *Driver {
	d := &Driver{
		sim:      sim,
		renderer: renderer,
		input:    input,
		clock:    clock,
		diag:     io.Discard,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Frames() uint64 {
	return d.frames
}

// Run ticks until quit is pressed, a collaborator fails or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("driver started", "seed", d.sim.Map.Seed())
	defer func() {
		d.logger.Info("driver stopped", "frames", humanize.Comma(int64(d.frames)))
	}()

	var pace <-chan time.Time
	if d.frameTime > 0 {
		ticker := time.NewTicker(d.frameTime)
		defer ticker.Stop()
		pace = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		running, err := d.Tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-pace:
			}
		}
	}
}

// Tick runs one frame: clear, cast and draw every column, apply input, present.
// It reports false once quit has been requested; the frame is still completed.
func (d *Driver) Tick() (bool, error) {
	now := d.clock.Now()
	dt := d.delta(now)

	if err := d.renderer.Clear(); err != nil {
		return false, errors.Wrap(err, "clear frame")
	}
	if err := d.render(); err != nil {
		return false, err
	}

	if err := d.input.Poll(); err != nil {
		return false, errors.Wrap(err, "poll input")
	}
	d.apply(dt)

	if err := d.renderer.Present(); err != nil {
		return false, errors.Wrap(err, "present frame")
	}
	d.frames++
	d.status(now)
	return !d.quit, nil
}

// delta is the time since the previous tick in seconds. The first tick has none.
func (d *Driver) delta(now time.Time) float64 {
	if !d.started {
		d.started = true
		d.last = now
		d.statusStart = now
		return 0
	}
	elapsed := now.Sub(d.last)
	d.last = now
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxDelta {
		elapsed = maxDelta
	}
	return elapsed.Seconds()
}

func (d *Driver) render() error {
	width, height := d.renderer.Size()
	if width <= 0 || height <= 0 {
		return nil
	}
	sim := d.sim
	for x := 0; x < width; x++ {
		_, strip := sim.Caster.Column(sim.Map, sim.Player, x, width, height)
		if err := d.renderer.DrawVerticalSegment(strip.Column, strip.Start, strip.End, strip.Color); err != nil {
			return errors.Wrapf(err, "draw column %d", x)
		}
	}
	return nil
}

func (d *Driver) apply(dt float64) {
	p, m, speeds := d.sim.Player, d.sim.Map, d.sim.Speeds
	in := d.input

	step := speeds.Move * dt
	moves := []struct {
		key  Key
		move func() bool
	}{
		{KeyForward, func() bool { return p.MoveForward(m, step) }},
		{KeyBackward, func() bool { return p.MoveBackward(m, step) }},
		{KeyStrafeLeft, func() bool { return p.Strafe(m, -step) }},
		{KeyStrafeRight, func() bool { return p.Strafe(m, step) }},
	}
	blocked := false
	for _, mv := range moves {
		if !in.Pressed(mv.key) || mv.move() {
			continue
		}
		if !blocked && !d.blocked {
			d.logger.Debug("move blocked", "key", mv.key, "x", p.X, "y", p.Y)
			if d.bumper != nil {
				d.bumper.Bump()
			}
		}
		blocked = true
	}
	d.blocked = blocked

	if in.Pressed(KeyTurnLeft) {
		p.Rotate(speeds.Rotate * dt)
	}
	if in.Pressed(KeyTurnRight) {
		p.Rotate(-speeds.Rotate * dt)
	}

	// A negative offset lowers the horizon, which reads as looking up.
	if in.Pressed(KeyLookUp) {
		p.AdjustVerticalOffset(-speeds.Look * dt)
	}
	if in.Pressed(KeyLookDown) {
		p.AdjustVerticalOffset(speeds.Look * dt)
	}
	p.Offset = math.Max(-speeds.MaxOffset, math.Min(speeds.MaxOffset, p.Offset))
	if in.Pressed(KeyResetView) {
		p.Reset()
	}

	if in.Pressed(KeyPrintPosition) {
		if _, err := fmt.Fprintf(d.diag, "X: %.2f, Y: %.2f\n", p.X, p.Y); err != nil {
			d.logger.Debug("print position failed", "error", err)
		}
	}

	regen := in.Pressed(KeyRegenerate)
	if regen && !d.regen {
		seed := d.sim.Map.Seed() + 1
		d.sim.Regenerate(seed)
		d.logger.Info("map regenerated", "seed", seed)
	}
	d.regen = regen

	if in.Pressed(KeyQuit) {
		d.quit = true
	}
}

func (d *Driver) status(now time.Time) {
	sw, ok := d.renderer.(StatusWriter)
	if !ok {
		return
	}
	d.statusCount++
	elapsed := now.Sub(d.statusStart)
	if elapsed < statusInterval {
		return
	}
	fps := float64(d.statusCount) / elapsed.Seconds()
	p := d.sim.Player
	sw.SetStatus(fmt.Sprintf("%.0f fps  x %.2f  y %.2f", fps, p.X, p.Y))
	d.statusStart = now
	d.statusCount = 0
}
