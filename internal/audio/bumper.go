/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package audio plays a short tone when the player walks into a wall.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)

	DefaultFrequency = 220.0
	DefaultDuration  = 60 * time.Millisecond
)

type Bumper struct {
	frequency float64
	duration  time.Duration
	play      func(...beep.Streamer)
	sound     *beep.Buffer
	ready     bool
}

func NewBumper(frequency float64, duration time.Duration) *Bumper {
	return &Bumper{
		frequency: frequency,
		duration:  duration,
		play:      speaker.Play,
	}
}

// Init renders the tone and opens the speaker. Without it Bump stays silent.
func (b *Bumper) Init() error {
	if err := b.prepare(); err != nil {
		return err
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	b.ready = true
	return nil
}

func (b *Bumper) Bump() {
	if !b.ready || b.sound == nil {
		return
	}
	b.play(b.sound.Streamer(0, b.sound.Len()))
}

func (b *Bumper) Close() {
	if b.ready {
		speaker.Close()
		b.ready = false
	}
}

// prepare renders the tone into a buffer once so every bump replays the same samples.
func (b *Bumper) prepare() error {
	tone, err := b.tone()
	if err != nil {
		return err
	}
	b.sound = beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	b.sound.Append(tone)
	return nil
}

func (b *Bumper) tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, b.frequency)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0fHz", b.frequency)
	}
	return beep.Take(sampleRate.N(b.duration), sine), nil
}
