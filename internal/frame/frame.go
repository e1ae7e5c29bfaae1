/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package frame drives the simulation one tick at a time: cast and draw every
// column, then apply the input held for that tick.
package frame

//go:generate go tool mockgen -destination=./mocks/frame_mock.go -package=mocks . Renderer,Input,Clock,Bumper

import (
	"time"

	"mazecaster/internal/world"
)

type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyTurnLeft
	KeyTurnRight
	KeyStrafeLeft
	KeyStrafeRight
	KeyLookUp
	KeyLookDown
	KeyResetView
	KeyQuit
	KeyPrintPosition
	KeyRegenerate
)

var keyNames = [...]string{
	KeyForward:       "forward",
	KeyBackward:      "backward",
	KeyTurnLeft:      "turn-left",
	KeyTurnRight:     "turn-right",
	KeyStrafeLeft:    "strafe-left",
	KeyStrafeRight:   "strafe-right",
	KeyLookUp:        "look-up",
	KeyLookDown:      "look-down",
	KeyResetView:     "reset-view",
	KeyQuit:          "quit",
	KeyPrintPosition: "print-position",
	KeyRegenerate:    "regenerate",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Renderer draws vertical segments into a frame. Size is read every tick so a resized
// viewport takes effect on the next frame.
type Renderer interface {
	Size() (width, height int)
	Clear() error
	DrawVerticalSegment(column, yStart, yEnd int, color world.Color) error
	Present() error
}

// StatusWriter is implemented by renderers that can show a line of status text.
type StatusWriter interface {
	SetStatus(status string)
}

// Input reports level state: Pressed is true for as long as a key is held.
type Input interface {
	Poll() error
	Pressed(key Key) bool
}

type Clock interface {
	Now() time.Time
}

// Bumper gives feedback when a move runs into a wall.
type Bumper interface {
	Bump()
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
