/*
 * Copyright (C) 2023 by Jason Figge
 */

package frame

import (
	"mazecaster/internal/caster"
	"mazecaster/internal/player"
	"mazecaster/internal/world"
)

// Speeds are per second and get scaled by the tick's delta time.
type Speeds struct {
	Move      float64
	Rotate    float64
	Look      float64
	MaxOffset float64
}

func DefaultSpeeds() Speeds {
	return Speeds{
		Move:      1.8,
		Rotate:    1.2,
		Look:      1.0,
		MaxOffset: 0.5,
	}
}

// Simulation is the state one tick reads and mutates.
type Simulation struct {
	Config world.Config
	Map    *world.Grid
	Player *player.Player
	Caster *caster.Caster
	Speeds Speeds
}

func NewSimulation(cfg world.Config, c *caster.Caster, speeds Speeds) *Simulation {
	s := &Simulation{
		Config: cfg,
		Caster: c,
		Speeds: speeds,
	}
	s.Regenerate(cfg.Seed)
	return s
}

// Regenerate replaces the map with one built from seed and puts the player back on the spawn cell.
func (s *Simulation) Regenerate(seed int64) {
	cfg := s.Config
	cfg.Seed = seed
	s.Map = world.Generate(cfg)
	s.Player = player.Spawn(cfg.SpawnCell())
}
