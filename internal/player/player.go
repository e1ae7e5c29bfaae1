/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package player holds the camera: position, facing, projection plane and
// vertical offset, plus the movement and rotation rules that keep it out of walls.
package player

import (
	"math"

	"mazecaster/internal/world"
)

const (
	DefaultDirX   = -1.0
	DefaultDirY   = 0.0
	DefaultPlaneX = 0.0
	DefaultPlaneY = 0.66
)

// Player is position in map space (one unit per cell) with the direction and
// camera plane vectors. The plane length relative to the direction sets the FOV.
type Player struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
	Offset         float64
}

// New places a player at x, y facing -x with a 66 degree field of view.
func New(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		DirX:   DefaultDirX,
		DirY:   DefaultDirY,
		PlaneX: DefaultPlaneX,
		PlaneY: DefaultPlaneY,
	}
}

// Spawn places a player in the middle of cell p, half a cell from every neighbouring wall.
func Spawn(p world.Point) *Player {
	return New(float64(p.Col)+0.5, float64(p.Row)+0.5)
}

// Cell returns the map cell the player stands in.
func (p *Player) Cell() world.Point {
	return world.Point{Row: int(math.Floor(p.Y)), Col: int(math.Floor(p.X))}
}

// Rotate turns direction and plane together by angle radians. Positive turns left.
func (p *Player) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	p.DirX, p.DirY = p.DirX*cos-p.DirY*sin, p.DirX*sin+p.DirY*cos
	p.PlaneX, p.PlaneY = p.PlaneX*cos-p.PlaneY*sin, p.PlaneX*sin+p.PlaneY*cos
}

// MoveForward moves distance along the direction vector. Each axis is committed
// on its own so the player slides along walls. Returns false when an axis was blocked.
func (p *Player) MoveForward(m *world.Grid, distance float64) bool {
	return p.move(m, p.DirX*distance, p.DirY*distance)
}

func (p *Player) MoveBackward(m *world.Grid, distance float64) bool {
	return p.move(m, -p.DirX*distance, -p.DirY*distance)
}

// Strafe moves sideways along the camera plane, normalised so strafing is as fast as walking.
// Positive distance moves right.
func (p *Player) Strafe(m *world.Grid, distance float64) bool {
	length := math.Hypot(p.PlaneX, p.PlaneY)
	if length == 0 {
		return true
	}
	return p.move(m, p.PlaneX/length*distance, p.PlaneY/length*distance)
}

func (p *Player) move(m *world.Grid, dx, dy float64) bool {
	open := true
	if dx != 0 {
		if m.Passable(cell(p.Y), cell(p.X+dx)) {
			p.X += dx
		} else {
			open = false
		}
	}
	if dy != 0 {
		if m.Passable(cell(p.Y+dy), cell(p.X)) {
			p.Y += dy
		} else {
			open = false
		}
	}
	return open
}

// AdjustVerticalOffset shifts the view up or down. Callers clamp it.
func (p *Player) AdjustVerticalOffset(delta float64) {
	p.Offset += delta
}

func (p *Player) Reset() {
	p.Offset = 0
}

func cell(v float64) int {
	return int(math.Floor(v))
}
