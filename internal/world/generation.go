/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import (
	"math/rand"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"
)

const (
	GeneratorUniform = "uniform"
	GeneratorNoise   = "noise"

	DefaultSize = 14
	DefaultTags = 4
	BinaryTags  = 1
)

type Point struct {
	Row, Col int
}

// Config holds map generation parameters.
type Config struct {
	Width, Height int

	// Tags is the highest wall tag. 1 gives the binary wall/air map.
	Tags int

	Generator string

	// SolidBorder forces the outer ring to walls so no ray can leave the grid.
	SolidBorder bool

	// Spawn is the cell forced to air. nil means the centre cell.
	Spawn *Point

	Seed int64 // 0 = time based

	// Noise generator only.
	AirRatio  float64
	Frequency float64
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultSize,
		Height:      DefaultSize,
		Tags:        DefaultTags,
		Generator:   GeneratorUniform,
		SolidBorder: true,
		AirRatio:    0.55,
		Frequency:   0.35,
	}
}

func (cfg Config) Validate() error {
	if cfg.Width < 3 || cfg.Height < 3 {
		return errors.Errorf("map must be at least 3x3, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Tags < 1 || cfg.Tags > 9 {
		return errors.Errorf("wall tags must be in [1, 9], got %d", cfg.Tags)
	}
	switch cfg.Generator {
	case GeneratorUniform, GeneratorNoise:
	default:
		return errors.Errorf("unknown generator %q", cfg.Generator)
	}
	spawn := cfg.SpawnCell()
	if spawn.Row < 0 || spawn.Row >= cfg.Height || spawn.Col < 0 || spawn.Col >= cfg.Width {
		return errors.Errorf("spawn %d,%d outside %dx%d map", spawn.Row, spawn.Col, cfg.Width, cfg.Height)
	}
	if cfg.SolidBorder && (spawn.Row == 0 || spawn.Col == 0 || spawn.Row == cfg.Height-1 || spawn.Col == cfg.Width-1) {
		return errors.Errorf("spawn %d,%d lies on the solid border", spawn.Row, spawn.Col)
	}
	return nil
}

// SpawnCell returns the cell the player starts in.
func (cfg Config) SpawnCell() Point {
	if cfg.Spawn != nil {
		return *cfg.Spawn
	}
	return Point{Row: cfg.Height / 2, Col: cfg.Width / 2}
}

// Generate creates a map. The spawn cell is always air.
func Generate(cfg Config) *Grid {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := NewGrid(cfg.Width, cfg.Height, nil, Tag(1))
	g.seed = seed

	switch cfg.Generator {
	case GeneratorNoise:
		fillNoise(g, cfg, seed)
	default:
		fillUniform(g, cfg, seed)
	}

	if cfg.SolidBorder {
		rng := rand.New(rand.NewSource(seed ^ 0x5eed))
		for col := 0; col < g.width; col++ {
			g.set(0, col, wallTag(rng, cfg.Tags))
			g.set(g.height-1, col, wallTag(rng, cfg.Tags))
		}
		for row := 1; row < g.height-1; row++ {
			g.set(row, 0, wallTag(rng, cfg.Tags))
			g.set(row, g.width-1, wallTag(rng, cfg.Tags))
		}
	}

	spawn := cfg.SpawnCell()
	g.set(spawn.Row, spawn.Col, Air)
	return g
}

func fillUniform(g *Grid, cfg Config, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range g.cells {
		g.cells[i] = Tag(rng.Intn(cfg.Tags + 1))
	}
}

// fillNoise thresholds simplex noise: low values are air, the rest is split evenly across the wall tags.
func fillNoise(g *Grid, cfg Config, seed int64) {
	noise := opensimplex.NewNormalized(seed)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			n := noise.Eval2(float64(col)*cfg.Frequency, float64(row)*cfg.Frequency)
			if n < cfg.AirRatio {
				g.set(row, col, Air)
				continue
			}
			band := int((n - cfg.AirRatio) / (1 - cfg.AirRatio) * float64(cfg.Tags))
			if band >= cfg.Tags {
				band = cfg.Tags - 1
			}
			g.set(row, col, Tag(band+1))
		}
	}
}

func wallTag(rng *rand.Rand, tags int) Tag {
	return Tag(rng.Intn(tags) + 1)
}
