package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "Breakout" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Paddle.Width != 120 || cfg.Paddle.Height != 20 || cfg.Paddle.Speed != 5 {
		t.Errorf("paddle = %+v", cfg.Paddle)
	}
	if cfg.Ball.Size != 20 || cfg.Ball.Speed != 5 {
		t.Errorf("ball = %+v", cfg.Ball)
	}
	if cfg.Font.Path != "assets/BebasNeue-Regular.ttf" || cfg.Font.Size != 28 {
		t.Errorf("font = %+v", cfg.Font)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
tick_rate: 30
paddle:
  speed: 8
colors:
  brick: "#00ff00"
terminal:
  key_hold: 400ms
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Paddle.Speed != 8 {
		t.Errorf("Paddle.Speed = %d, expected 8", cfg.Paddle.Speed)
	}
	// Unset fields keep defaults
	if cfg.Paddle.Width != 120 {
		t.Errorf("Paddle.Width = %d, expected default 120", cfg.Paddle.Width)
	}
	if cfg.Colors.Brick != (core.Color{G: 0xff}) {
		t.Errorf("Colors.Brick = %v, expected #00ff00", cfg.Colors.Brick)
	}
	if cfg.Terminal.KeyHold != 400*time.Millisecond {
		t.Errorf("Terminal.KeyHold = %v, expected 400ms", cfg.Terminal.KeyHold)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`
tick_rate = 120

[window]
title = "Bricks"

[colors]
paddle = "#ff0000"

[terminal]
key_hold = "100ms"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.TickRate != 120 || cfg.Window.Title != "Bricks" {
		t.Errorf("TickRate = %d, Title = %q", cfg.TickRate, cfg.Window.Title)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("Window.Width = %d, expected default 800", cfg.Window.Width)
	}
	if cfg.Colors.Paddle != (core.Color{R: 0xff}) {
		t.Errorf("Colors.Paddle = %v, expected #ff0000", cfg.Colors.Paddle)
	}
	if cfg.Terminal.KeyHold != 100*time.Millisecond {
		t.Errorf("Terminal.KeyHold = %v, expected 100ms", cfg.Terminal.KeyHold)
	}
}

func TestParseTOMLInvalid(t *testing.T) {
	if _, err := ParseTOML([]byte("tick_rate = 0")); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseTOML() error = %v, expected ErrInvalid", err)
	}
	if _, err := ParseTOML([]byte("tick_rate = ")); err == nil {
		t.Error("ParseTOML() should fail for malformed TOML")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("window: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("paddle:\n  width: 2000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Isolate from any real user or local config.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, expected %s", src, SourceEmbedded)
	}
	if cfg != Default() {
		t.Error("embedded config should equal Default()")
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("tick_rate: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceLocal || cfg.TickRate != 120 {
		t.Errorf("Load() = tick_rate %d from %s, expected 120 from local", cfg.TickRate, src)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"paddle wider than window", func(c *Config) { c.Paddle.Width = 801 }},
		{"zero paddle speed", func(c *Config) { c.Paddle.Speed = 0 }},
		{"zero ball speed", func(c *Config) { c.Ball.Speed = 0 }},
		{"huge ball", func(c *Config) { c.Ball.Size = 700 }},
		{"reserved covers window", func(c *Config) { c.Bricks.ReservedHeight = 600 }},
		{"inset eats brick", func(c *Config) { c.Bricks.Inset = 10 }},
		{"zero font size", func(c *Config) { c.Font.Size = 0 }},
		{"negative key hold", func(c *Config) { c.Terminal.KeyHold = -time.Second }},
		{"serve does not fit", func(c *Config) { c.Paddle.BottomMargin = 590 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
