/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package config reads the command line, with defaults taken from RAYCASTER_*
// environment variables.
package config

import (
	"flag"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"mazecaster/internal/frame"
	"mazecaster/internal/world"
)

const (
	BackendSDL      = "sdl"
	BackendTerminal = "terminal"

	envPrefix = "RAYCASTER_"

	defaultPalette = "#ff0000,#00ff00,#0000ff,#ffffff"
	defaultCeiling = "#999999"
	defaultFloor   = "#666666"
)

type Config struct {
	Backend       string
	Width, Height int
	FrameRate     int

	MapSize     int
	Tags        int
	Seed        int64
	Generator   string
	SolidBorder bool
	DumpMap     bool

	Palette   world.Palette
	Ceiling   world.Color
	Floor     world.Color
	SideShade uint8

	Speeds frame.Speeds
	Audio  bool

	LogLevel slog.Level
	LogFile  string
}

func Default() *Config {
	return &Config{
		Backend:     BackendSDL,
		Width:       800,
		Height:      600,
		MapSize:     world.DefaultSize,
		Tags:        world.DefaultTags,
		Generator:   world.GeneratorUniform,
		SolidBorder: true,
		DumpMap:     true,
		Palette:     world.DefaultPalette,
		Ceiling:     world.Color{R: 0x99, G: 0x99, B: 0x99},
		Floor:       world.Color{R: 0x66, G: 0x66, B: 0x66},
		SideShade:   world.SideShade,
		Speeds:      frame.DefaultSpeeds(),
		Audio:       true,
		LogLevel:    slog.LevelInfo,
	}
}

// GetEnvDefault returns the environment value of key, or defaultValue when it is unset.
func GetEnvDefault(getenv func(string) string, key, defaultValue string) string {
	value := getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Load parses args. getenv supplies defaults for every flag under RAYCASTER_<FLAG>.
func Load(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("mazecaster", flag.ContinueOnError)
	fs.SetOutput(output)

	env := func(name, def string) string {
		key := envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		return GetEnvDefault(getenv, key, def)
	}
	str := func(name, def, usage string) *string {
		return fs.String(name, env(name, def), usage)
	}
	num := func(name string, def int64, usage string) *string {
		return fs.String(name, env(name, strconv.FormatInt(def, 10)), usage)
	}
	decimal := func(name string, def float64, usage string) *string {
		return fs.String(name, env(name, strconv.FormatFloat(def, 'g', -1, 64)), usage)
	}
	boolean := func(name string, def bool, usage string) *string {
		return fs.String(name, env(name, strconv.FormatBool(def)), usage)
	}

	backend := str("backend", cfg.Backend, "renderer: sdl or terminal")
	width := num("width", int64(cfg.Width), "window width in pixels (sdl)")
	height := num("height", int64(cfg.Height), "window height in pixels (sdl)")
	fps := num("fps", 0, "frame rate cap, 0 leaves pacing to vsync (terminal defaults to 60)")
	size := num("map-size", int64(cfg.MapSize), "map side length in cells")
	tags := num("tags", int64(cfg.Tags), "wall tag count, 1 for a plain wall/air map")
	seed := num("seed", 0, "map seed, 0 picks one from the clock")
	generator := str("generator", cfg.Generator, "map generator: uniform or noise")
	border := boolean("solid-border", cfg.SolidBorder, "force the outer ring of the map to walls")
	dump := boolean("dump-map", cfg.DumpMap, "print the generated map at startup")
	palette := str("palette", defaultPalette, "comma separated wall colors for tags 1..n")
	ceiling := str("ceiling", defaultCeiling, "ceiling color")
	floor := str("floor", defaultFloor, "floor color")
	shade := num("side-shade", int64(cfg.SideShade), "darkening applied to walls hit on their y side")
	move := decimal("move-speed", cfg.Speeds.Move, "cells per second")
	rotate := decimal("rot-speed", cfg.Speeds.Rotate, "radians per second")
	look := decimal("look-speed", cfg.Speeds.Look, "screen heights per second")
	maxOffset := decimal("max-offset", cfg.Speeds.MaxOffset, "largest vertical view offset in screen heights")
	audio := boolean("audio", cfg.Audio, "play a tone when walking into a wall")
	level := str("log-level", cfg.LogLevel.String(), "debug, info, warn or error")
	logFile := str("log-file", "", "write logs here instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	p := parser{}
	cfg.Backend = *backend
	cfg.Width = p.int(width, "width")
	cfg.Height = p.int(height, "height")
	cfg.FrameRate = p.int(fps, "fps")
	cfg.MapSize = p.int(size, "map-size")
	cfg.Tags = p.int(tags, "tags")
	cfg.Seed = p.int64(seed, "seed")
	cfg.Generator = *generator
	cfg.SolidBorder = p.bool(border, "solid-border")
	cfg.DumpMap = p.bool(dump, "dump-map")
	cfg.SideShade = uint8(p.intRange(shade, "side-shade", 0, 255))
	cfg.Speeds.Move = p.float(move, "move-speed")
	cfg.Speeds.Rotate = p.float(rotate, "rot-speed")
	cfg.Speeds.Look = p.float(look, "look-speed")
	cfg.Speeds.MaxOffset = p.float(maxOffset, "max-offset")
	cfg.Audio = p.bool(audio, "audio")
	cfg.LogFile = *logFile
	if p.err != nil {
		return nil, p.err
	}

	if cfg.Palette, err = ParsePalette(*palette); err != nil {
		return nil, err
	}
	if cfg.Ceiling, err = ParseColor(*ceiling); err != nil {
		return nil, errors.Wrap(err, "ceiling")
	}
	if cfg.Floor, err = ParseColor(*floor); err != nil {
		return nil, errors.Wrap(err, "floor")
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	if cfg.Backend == BackendTerminal && cfg.FrameRate == 0 {
		cfg.FrameRate = 60
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSDL, BackendTerminal:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("fps %d must not be negative", c.FrameRate)
	}
	if c.Speeds.Move < 0 || c.Speeds.Rotate < 0 || c.Speeds.Look < 0 || c.Speeds.MaxOffset < 0 {
		return errors.New("speeds must not be negative")
	}
	if len(c.Palette) < 2 {
		return errors.New("palette needs at least one wall color")
	}
	return errors.Wrap(c.World().Validate(), "map")
}

// World is the map generation part of the configuration.
func (c *Config) World() world.Config {
	w := world.DefaultConfig()
	w.Width = c.MapSize
	w.Height = c.MapSize
	w.Tags = c.Tags
	w.Seed = c.Seed
	w.Generator = c.Generator
	w.SolidBorder = c.SolidBorder
	return w
}

// ParsePalette reads comma separated colors for wall tags 1..n. Air keeps the default entry.
func ParsePalette(s string) (world.Palette, error) {
	palette := world.Palette{world.DefaultPalette[0]}
	for i, part := range strings.Split(s, ",") {
		c, err := ParseColor(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "palette entry %d", i+1)
		}
		palette = append(palette, c)
	}
	return palette, nil
}

func ParseColor(s string) (world.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return world.Color{}, errors.Wrapf(err, "color %q", s)
	}
	r, g, b := c.RGB255()
	return world.Color{R: r, G: g, B: b}, nil
}

// parser keeps the first conversion error so Load can check once.
type parser struct {
	err error
}

func (p *parser) int64(s *string, name string) int64 {
	v, err := strconv.ParseInt(*s, 10, 64)
	p.fail(err, name)
	return v
}

func (p *parser) int(s *string, name string) int {
	return int(p.int64(s, name))
}

func (p *parser) intRange(s *string, name string, lo, hi int64) int64 {
	v := p.int64(s, name)
	if p.err == nil && (v < lo || v > hi) {
		p.err = errors.Errorf("%s %d outside [%d, %d]", name, v, lo, hi)
	}
	return v
}

func (p *parser) float(s *string, name string) float64 {
	v, err := strconv.ParseFloat(*s, 64)
	p.fail(err, name)
	return v
}

func (p *parser) bool(s *string, name string) bool {
	v, err := strconv.ParseBool(*s)
	p.fail(err, name)
	return v
}

func (p *parser) fail(err error, name string) {
	if err != nil && p.err == nil {
		p.err = errors.Wrapf(err, "invalid %s", name)
	}
}
