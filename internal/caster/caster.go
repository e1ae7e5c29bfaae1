/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package caster casts one DDA ray per screen column through a world.Grid and
// resolves the wall it hits into a vertical strip to draw.
package caster

import (
	"math"

	"mazecaster/internal/player"
	"mazecaster/internal/world"
)

const (
	SideX = 0
	SideY = 1

	// minPerpDist keeps the projected height finite when the camera sits on a wall face.
	minPerpDist = 1e-6
)

// RayResult is everything learned from casting a single column.
type RayResult struct {
	Column           int
	CameraX          float64
	RayDirX, RayDirY float64
	MapX, MapY       int
	StepX, StepY     int
	StepsX, StepsY   int
	Side             int
	PerpDist         float64
	Tag              world.Tag
	Color            world.Color
	Escaped          bool
}

// Strip is a vertical line to draw at Column from Start to End inclusive.
type Strip struct {
	Column     int
	Start, End int
	Color      world.Color
}

type Caster struct {
	palette   world.Palette
	sideShade uint8
}

func New(palette world.Palette, sideShade uint8) *Caster {
	return &Caster{
		palette:   palette,
		sideShade: sideShade,
	}
}

// CameraX maps column x of a viewport width columns wide into [-1, 1).
func CameraX(x, width int) float64 {
	return 2*float64(x)/float64(width) - 1
}

// Column casts column x and projects it onto a width x height viewport.
func (c *Caster) Column(m *world.Grid, p *player.Player, x, width, height int) (RayResult, Strip) {
	r := c.Ray(m, p, CameraX(x, width))
	r.Column = x
	return r, c.Project(r, height, p.Offset)
}

// Ray walks the grid from the player's cell along dir + plane*cameraX until it enters a wall cell
// or leaves the grid.
func (c *Caster) Ray(m *world.Grid, p *player.Player, cameraX float64) RayResult {
	r := RayResult{
		CameraX: cameraX,
		RayDirX: p.DirX + p.PlaneX*cameraX,
		RayDirY: p.DirY + p.PlaneY*cameraX,
		MapX:    int(math.Floor(p.X)),
		MapY:    int(math.Floor(p.Y)),
	}

	deltaDistX := deltaDist(r.RayDirX)
	deltaDistY := deltaDist(r.RayDirY)

	var sideDistX, sideDistY float64
	if r.RayDirX < 0 {
		r.StepX = -1
		sideDistX = (p.X - float64(r.MapX)) * deltaDistX
	} else {
		r.StepX = 1
		sideDistX = (float64(r.MapX) + 1 - p.X) * deltaDistX
	}
	if r.RayDirY < 0 {
		r.StepY = -1
		sideDistY = (p.Y - float64(r.MapY)) * deltaDistY
	} else {
		r.StepY = 1
		sideDistY = (float64(r.MapY) + 1 - p.Y) * deltaDistY
	}

	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			r.MapX += r.StepX
			r.StepsX++
			r.Side = SideX
		} else {
			sideDistY += deltaDistY
			r.MapY += r.StepY
			r.StepsY++
			r.Side = SideY
		}
		tag, ok := m.At(r.MapY, r.MapX)
		if !ok {
			r.Escaped = true
			r.Tag = tag
			break
		}
		if tag.Solid() {
			r.Tag = tag
			break
		}
	}

	if r.Side == SideX {
		r.PerpDist = (float64(r.MapX) - p.X + float64(1-r.StepX)/2) / r.RayDirX
	} else {
		r.PerpDist = (float64(r.MapY) - p.Y + float64(1-r.StepY)/2) / r.RayDirY
	}

	r.Color = c.palette.Color(r.Tag)
	if r.Side == SideY {
		r.Color = r.Color.Darken(c.sideShade)
	}
	return r
}

// Project turns a hit into a strip centred on the horizon, shifted by the vertical offset
// (a fraction of the viewport height) and clamped to [0, height-1].
func (c *Caster) Project(r RayResult, height int, offset float64) Strip {
	dist := r.PerpDist
	if !(dist > minPerpDist) {
		dist = minPerpDist
	}
	h := float64(height)
	lineHeight := h / dist
	center := h/2 - offset*h

	return Strip{
		Column: r.Column,
		Start:  clamp(center-lineHeight/2, h-1),
		End:    clamp(center+lineHeight/2, h-1),
		Color:  r.Color,
	}
}

// deltaDist is the ray length between two grid lines on one axis. A zero component never crosses one.
func deltaDist(rayDir float64) float64 {
	if rayDir == 0 {
		return math.Inf(1)
	}
	return math.Abs(1 / rayDir)
}

func clamp(v, limit float64) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return int(limit)
	}
	return int(v)
}
