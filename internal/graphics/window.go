/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package graphics is the SDL window: it draws vertical lines with the SDL
// renderer and reads held keys from the SDL keyboard state.
package graphics

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"mazecaster/internal/frame"
	"mazecaster/internal/world"
)

type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	title    string
	ceiling  world.Color
	floor    world.Color

	keys []uint8
	quit bool
}

// Open creates a resizable window with a vsynced renderer. SDL has to be driven
// from the main OS thread.
func Open(title string, width, height int32, ceiling, floor world.Color) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.Wrap(err, "init sdl")
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "create window")
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "create renderer")
	}
	return &Window{
		window:   window,
		renderer: renderer,
		title:    title,
		ceiling:  ceiling,
		floor:    floor,
	}, nil
}

// Size is the renderer output size, so a resized window is picked up on the next frame.
func (w *Window) Size() (int, int) {
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return 0, 0
	}
	return int(width), int(height)
}

func (w *Window) Clear() error {
	width, height := w.Size()
	if err := w.setColor(w.ceiling); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return errors.Wrap(err, "clear")
	}
	if err := w.setColor(w.floor); err != nil {
		return err
	}
	half := &sdl.Rect{X: 0, Y: int32(height / 2), W: int32(width), H: int32(height - height/2)}
	return errors.Wrap(w.renderer.FillRect(half), "fill floor")
}

func (w *Window) DrawVerticalSegment(column, yStart, yEnd int, color world.Color) error {
	if err := w.setColor(color); err != nil {
		return err
	}
	return errors.Wrap(w.renderer.DrawLine(int32(column), int32(yStart), int32(column), int32(yEnd)), "draw line")
}

func (w *Window) Present() error {
	w.renderer.Present()
	return nil
}

// SetStatus shows the frame rate readout in the title bar.
func (w *Window) SetStatus(status string) {
	w.window.SetTitle(w.title + "  " + status)
}

// Poll drains the SDL event queue and snapshots the keyboard.
func (w *Window) Poll() error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			w.quit = true
		}
	}
	w.keys = sdl.GetKeyboardState()
	return nil
}

func (w *Window) Pressed(key frame.Key) bool {
	if key == frame.KeyQuit && w.quit {
		return true
	}
	return pressed(w.keys, key)
}

func (w *Window) Close() {
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}

func (w *Window) setColor(c world.Color) error {
	return errors.Wrap(w.renderer.SetDrawColor(c.R, c.G, c.B, 0xFF), "set draw color")
}
