/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Tag is the value stored in a map cell. Zero is air, anything else is a wall.
type Tag uint8

const Air = Tag(0)

func (t Tag) Solid() bool {
	return t != Air
}

// Grid is an immutable width x height map of tags stored row major.
type Grid struct {
	width  int
	height int
	cells  []Tag
	edge   Tag
	seed   int64
}

// NewGrid wraps cells as a grid. Cells are copied. The edge tag is reported for rays leaving the grid.
func NewGrid(width, height int, cells []Tag, edge Tag) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Tag, width*height),
		edge:   edge,
	}
	copy(g.cells, cells)
	return g
}

// ParseGrid builds a grid from rows of digits, used for hand made maps.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty grid")
	}
	width := len(rows[0])
	cells := make([]Tag, 0, width*len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("row %d has width %d, want %d", r, len(row), width)
		}
		for c, ch := range row {
			if ch < '0' || ch > '9' {
				return nil, errors.Errorf("row %d col %d: invalid cell %q", r, c, ch)
			}
			cells = append(cells, Tag(ch-'0'))
		}
	}
	return NewGrid(width, len(rows), cells, 1), nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Edge() Tag   { return g.edge }

// Seed is the seed the grid was generated from, 0 for hand made grids.
func (g *Grid) Seed() int64 { return g.seed }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the tag at row, col. ok is false outside the grid.
func (g *Grid) At(row, col int) (Tag, bool) {
	if !g.InBounds(row, col) {
		return g.edge, false
	}
	return g.cells[row*g.width+col], true
}

// Passable reports whether row, col is inside the grid and air.
func (g *Grid) Passable(row, col int) bool {
	tag, ok := g.At(row, col)
	return ok && !tag.Solid()
}

// Dump writes the grid one row per line.
func (g *Grid) Dump(w io.Writer) error {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if _, err := fmt.Fprintf(w, "%d ", g.cells[row*g.width+col]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grid) set(row, col int, tag Tag) {
	g.cells[row*g.width+col] = tag
}
