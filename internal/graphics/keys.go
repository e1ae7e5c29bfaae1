/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"github.com/veandco/go-sdl2/sdl"

	"mazecaster/internal/frame"
)

// pressed maps a key onto the SDL keyboard state. A and D turn, or strafe while shift is held.
func pressed(keys []uint8, key frame.Key) bool {
	down := func(codes ...sdl.Scancode) bool {
		for _, code := range codes {
			if int(code) < len(keys) && keys[code] == 1 {
				return true
			}
		}
		return false
	}
	shift := down(sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT)

	switch key {
	case frame.KeyForward:
		return down(sdl.SCANCODE_W)
	case frame.KeyBackward:
		return down(sdl.SCANCODE_S)
	case frame.KeyTurnLeft:
		return !shift && down(sdl.SCANCODE_A) || down(sdl.SCANCODE_LEFT)
	case frame.KeyTurnRight:
		return !shift && down(sdl.SCANCODE_D) || down(sdl.SCANCODE_RIGHT)
	case frame.KeyStrafeLeft:
		return shift && down(sdl.SCANCODE_A)
	case frame.KeyStrafeRight:
		return shift && down(sdl.SCANCODE_D)
	case frame.KeyLookUp:
		return down(sdl.SCANCODE_UP)
	case frame.KeyLookDown:
		return down(sdl.SCANCODE_DOWN)
	case frame.KeyResetView:
		return down(sdl.SCANCODE_SPACE)
	case frame.KeyQuit:
		return down(sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q)
	case frame.KeyPrintPosition:
		return down(sdl.SCANCODE_P)
	case frame.KeyRegenerate:
		return down(sdl.SCANCODE_R)
	}
	return false
}
