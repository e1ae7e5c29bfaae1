/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package terminal renders frames into a tcell screen using half block cells, two
// pixels per cell, and turns key events into held key state.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"mazecaster/internal/frame"
	"mazecaster/internal/world"
)

const (
	halfBlock = '▀'

	// DefaultHold is how long a key counts as held after its last event. Terminals only
	// report presses, so this has to outlast the key repeat interval.
	DefaultHold = 200 * time.Millisecond
)

type Screen struct {
	screen  tcell.Screen
	clock   frame.Clock
	hold    time.Duration
	ceiling world.Color
	floor   world.Color

	width, height int
	pixels        []world.Color

	held   map[frame.Key]time.Time
	quit   bool
	status string
}

// Open initialises the real terminal.
func Open(clock frame.Clock, ceiling, floor world.Color) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	return New(screen, clock, DefaultHold, ceiling, floor), nil
}

// New wraps an initialised tcell screen.
func New(screen tcell.Screen, clock frame.Clock, hold time.Duration, ceiling, floor world.Color) *Screen {
	screen.HideCursor()
	screen.Clear()
	return &Screen{
		screen:  screen,
		clock:   clock,
		hold:    hold,
		ceiling: ceiling,
		floor:   floor,
		held:    map[frame.Key]time.Time{},
	}
}

// Size is in pixels: every terminal row holds two.
func (s *Screen) Size() (int, int) {
	w, h := s.screen.Size()
	return w, h * 2
}

func (s *Screen) Clear() error {
	s.width, s.height = s.Size()
	if n := s.width * s.height; cap(s.pixels) < n {
		s.pixels = make([]world.Color, n)
	} else {
		s.pixels = s.pixels[:n]
	}
	for y := 0; y < s.height; y++ {
		c := s.ceiling
		if y >= s.height/2 {
			c = s.floor
		}
		row := s.pixels[y*s.width : (y+1)*s.width]
		for x := range row {
			row[x] = c
		}
	}
	return nil
}

func (s *Screen) DrawVerticalSegment(column, yStart, yEnd int, color world.Color) error {
	if column < 0 || column >= s.width {
		return nil
	}
	if yStart < 0 {
		yStart = 0
	}
	if yEnd >= s.height {
		yEnd = s.height - 1
	}
	for y := yStart; y <= yEnd; y++ {
		s.pixels[y*s.width+column] = color
	}
	return nil
}

func (s *Screen) Present() error {
	for row := 0; row < s.height/2; row++ {
		top := s.pixels[2*row*s.width:]
		bottom := s.pixels[(2*row+1)*s.width:]
		for x := 0; x < s.width; x++ {
			style := tcell.StyleDefault.Foreground(rgb(top[x])).Background(rgb(bottom[x]))
			s.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	if s.status != "" {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		for i, r := range []rune(s.status) {
			if i >= s.width {
				break
			}
			s.screen.SetContent(i, 0, r, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *Screen) SetStatus(status string) {
	s.status = status
}

// Poll drains pending terminal events without blocking.
func (s *Screen) Poll() error {
	now := s.clock.Now()
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			key, ok := keyFor(ev)
			if !ok {
				continue
			}
			if key == frame.KeyQuit {
				s.quit = true
			}
			s.held[key] = now
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			return errors.New("terminal screen closed")
		}
	}
	return nil
}

func (s *Screen) Pressed(key frame.Key) bool {
	if key == frame.KeyQuit {
		return s.quit
	}
	last, ok := s.held[key]
	return ok && s.clock.Now().Sub(last) <= s.hold
}

func (s *Screen) Close() {
	s.screen.Fini()
}

func keyFor(ev *tcell.EventKey) (frame.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return frame.KeyQuit, true
	case tcell.KeyUp:
		return frame.KeyLookUp, true
	case tcell.KeyDown:
		return frame.KeyLookDown, true
	case tcell.KeyLeft:
		return frame.KeyTurnLeft, true
	case tcell.KeyRight:
		return frame.KeyTurnRight, true
	case tcell.KeyRune:
	default:
		return 0, false
	}
	switch ev.Rune() {
	case 'w':
		return frame.KeyForward, true
	case 's':
		return frame.KeyBackward, true
	case 'a':
		return frame.KeyTurnLeft, true
	case 'd':
		return frame.KeyTurnRight, true
	case 'A':
		return frame.KeyStrafeLeft, true
	case 'D':
		return frame.KeyStrafeRight, true
	case ' ':
		return frame.KeyResetView, true
	case 'p':
		return frame.KeyPrintPosition, true
	case 'r':
		return frame.KeyRegenerate, true
	case 'q':
		return frame.KeyQuit, true
	}
	return 0, false
}

func rgb(c world.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
