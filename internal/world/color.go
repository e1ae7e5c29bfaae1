/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import "fmt"

// SideShade is the amount subtracted from every channel of a wall hit on its y side.
const SideShade = uint8(0x4C)

type Color struct {
	R, G, B uint8
}

var (
	Red   = Color{R: 0xFF}
	Green = Color{G: 0xFF}
	Blue  = Color{B: 0xFF}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	Grey  = Color{R: 0x99, G: 0x99, B: 0x99}
)

// Darken returns c with amount subtracted from each channel, floored at zero.
func (c Color) Darken(amount uint8) Color {
	return Color{
		R: clampSub(c.R, amount),
		G: clampSub(c.G, amount),
		B: clampSub(c.B, amount),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clampSub(v, amount uint8) uint8 {
	if v < amount {
		return 0
	}
	return v - amount
}

// Palette maps wall tags to colors. Index 0 belongs to air and is never drawn.
type Palette []Color

var DefaultPalette = Palette{Grey, Red, Green, Blue, White}

// Color resolves the color of tag, falling back to the last entry for tags past the end.
func (p Palette) Color(tag Tag) Color {
	if len(p) == 0 {
		return White
	}
	if int(tag) >= len(p) {
		return p[len(p)-1]
	}
	return p[tag]
}
