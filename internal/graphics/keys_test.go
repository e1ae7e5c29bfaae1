/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"mazecaster/internal/frame"
)

func keyboard(codes ...sdl.Scancode) []uint8 {
	keys := make([]uint8, sdl.NUM_SCANCODES)
	for _, code := range codes {
		keys[code] = 1
	}
	return keys
}

func TestPressed(t *testing.T) {
	tests := []struct {
		name string
		keys []uint8
		want []frame.Key
	}{
		{"nothing", keyboard(), nil},
		{"forward", keyboard(sdl.SCANCODE_W), []frame.Key{frame.KeyForward}},
		{"turn", keyboard(sdl.SCANCODE_A), []frame.Key{frame.KeyTurnLeft}},
		{"arrow turn", keyboard(sdl.SCANCODE_RIGHT), []frame.Key{frame.KeyTurnRight}},
		{"strafe", keyboard(sdl.SCANCODE_LSHIFT, sdl.SCANCODE_D), []frame.Key{frame.KeyStrafeRight}},
		{"look", keyboard(sdl.SCANCODE_UP, sdl.SCANCODE_SPACE), []frame.Key{frame.KeyLookUp, frame.KeyResetView}},
		{"quit", keyboard(sdl.SCANCODE_ESCAPE), []frame.Key{frame.KeyQuit}},
		{"diagnostics", keyboard(sdl.SCANCODE_P, sdl.SCANCODE_R), []frame.Key{frame.KeyPrintPosition, frame.KeyRegenerate}},
		{"empty state", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := map[frame.Key]bool{}
			for _, k := range tt.want {
				want[k] = true
			}
			for k := frame.KeyForward; k <= frame.KeyRegenerate; k++ {
				if got := pressed(tt.keys, k); got != want[k] {
					t.Errorf("pressed(%v) = %v, want %v", k, got, want[k])
				}
			}
		})
	}
}
