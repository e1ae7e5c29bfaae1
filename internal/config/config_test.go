/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"mazecaster/internal/world"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	if cfg.Backend != want.Backend || cfg.Width != want.Width || cfg.Height != want.Height {
		t.Errorf("window = %s %dx%d, want %s %dx%d", cfg.Backend, cfg.Width, cfg.Height, want.Backend, want.Width, want.Height)
	}
	if cfg.MapSize != world.DefaultSize || cfg.Tags != world.DefaultTags || !cfg.SolidBorder {
		t.Errorf("map = %d/%d border %v", cfg.MapSize, cfg.Tags, cfg.SolidBorder)
	}
	if len(cfg.Palette) != len(world.DefaultPalette) {
		t.Fatalf("palette has %d entries, want %d", len(cfg.Palette), len(world.DefaultPalette))
	}
	for i, c := range world.DefaultPalette {
		if cfg.Palette[i] != c {
			t.Errorf("palette[%d] = %v, want %v", i, cfg.Palette[i], c)
		}
	}
	if cfg.Ceiling != want.Ceiling || cfg.Floor != want.Floor {
		t.Errorf("background = %v/%v, want %v/%v", cfg.Ceiling, cfg.Floor, want.Ceiling, want.Floor)
	}
	if cfg.Speeds != want.Speeds || cfg.SideShade != world.SideShade {
		t.Errorf("speeds = %+v shade %#x", cfg.Speeds, cfg.SideShade)
	}
	if cfg.FrameRate != 0 {
		t.Errorf("sdl frame rate = %d, want vsync", cfg.FrameRate)
	}
}

func TestLoadEnvironmentAndFlags(t *testing.T) {
	cfg, err := Load(
		[]string{"-map-size=20", "-generator=noise", "-log-level=debug"},
		env(map[string]string{
			"RAYCASTER_BACKEND":    "terminal",
			"RAYCASTER_MAP_SIZE":   "9",
			"RAYCASTER_SEED":       "42",
			"RAYCASTER_MOVE_SPEED": "2.5",
			"RAYCASTER_AUDIO":      "false",
		}),
		io.Discard,
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != BackendTerminal || cfg.FrameRate != 60 {
		t.Errorf("backend = %s at %d fps, want terminal at 60", cfg.Backend, cfg.FrameRate)
	}
	if cfg.MapSize != 20 {
		t.Errorf("map size = %d, flag should beat environment", cfg.MapSize)
	}
	if cfg.Seed != 42 || cfg.Speeds.Move != 2.5 || cfg.Audio {
		t.Errorf("seed %d move %v audio %v", cfg.Seed, cfg.Speeds.Move, cfg.Audio)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	w := cfg.World()
	if w.Width != 20 || w.Height != 20 || w.Generator != world.GeneratorNoise || w.Seed != 42 {
		t.Errorf("World() = %+v", w)
	}
}

func TestLoadPalette(t *testing.T) {
	cfg, err := Load([]string{"-palette=#102030, #ffffff", "-ceiling=#000000"}, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := world.Palette{world.DefaultPalette[0], {R: 0x10, G: 0x20, B: 0x30}, world.White}
	if len(cfg.Palette) != len(want) {
		t.Fatalf("palette = %v, want %v", cfg.Palette, want)
	}
	for i := range want {
		if cfg.Palette[i] != want[i] {
			t.Errorf("palette[%d] = %v, want %v", i, cfg.Palette[i], want[i])
		}
	}
	if cfg.Ceiling != (world.Color{}) {
		t.Errorf("ceiling = %v", cfg.Ceiling)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"backend", []string{"-backend=vulkan"}, nil, "unknown backend"},
		{"width", []string{"-width=wide"}, nil, "invalid width"},
		{"env number", nil, map[string]string{"RAYCASTER_TAGS": "many"}, "invalid tags"},
		{"shade", []string{"-side-shade=300"}, nil, "side-shade 300"},
		{"palette", []string{"-palette=#ff0000,red"}, nil, "palette entry 2"},
		{"floor", []string{"-floor=#12"}, nil, "floor"},
		{"level", []string{"-log-level=loud"}, nil, "log-level"},
		{"speed", []string{"-rot-speed=-1"}, nil, "speeds"},
		{"map", []string{"-map-size=2"}, nil, "map"},
		{"tags", []string{"-tags=12"}, nil, "map"},
		{"generator", []string{"-generator=maze"}, nil, "map"},
		{"flag", []string{"-unknown"}, nil, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, env(tt.env), io.Discard)
			if err == nil {
				t.Fatalf("Load(%v) succeeded", tt.args)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestGetEnvDefault(t *testing.T) {
	getenv := env(map[string]string{"SET": "value"})
	if got := GetEnvDefault(getenv, "SET", "fallback"); got != "value" {
		t.Errorf("GetEnvDefault(SET) = %q", got)
	}
	if got := GetEnvDefault(getenv, "UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnvDefault(UNSET) = %q", got)
	}
}
