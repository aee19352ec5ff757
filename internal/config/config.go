// Package config provides configuration loading for the game and its
// frontends. Files are YAML, or TOML when the name ends in .toml.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

// Brick grid dimensions. They are fixed; only the cell size follows the window.
const (
	GridRows = 10
	GridCols = 10
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all configuration for Breakout.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	TickRate int            `yaml:"tick_rate" toml:"tick_rate"`
	Font     FontConfig     `yaml:"font" toml:"font"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks" toml:"bricks"`
	Colors   ColorsConfig   `yaml:"colors" toml:"colors"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
}

// WindowConfig defines the playfield and the desktop window.
// The playfield is always Width x Height world pixels, whatever the frontend.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// FontConfig defines the TrueType font used for the win/lose banner.
type FontConfig struct {
	Path string  `yaml:"path" toml:"path"`
	Size float64 `yaml:"size" toml:"size"`
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	Speed        int `yaml:"speed" toml:"speed"`                 // Pixels per tick while a movement key is held
	BottomMargin int `yaml:"bottom_margin" toml:"bottom_margin"` // Gap between paddle and window bottom
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Size  int `yaml:"size" toml:"size"`
	Speed int `yaml:"speed" toml:"speed"` // Pixels per tick on each axis
	Gap   int `yaml:"gap" toml:"gap"`     // Gap between ball and paddle at serve
}

// BricksConfig defines the brick grid geometry.
// The grid spans the full width and Height-ReservedHeight pixels from the top.
type BricksConfig struct {
	ReservedHeight int `yaml:"reserved_height" toml:"reserved_height"`
	Inset          int `yaml:"inset" toml:"inset"`
}

// ColorsConfig defines fill colors, written as "#rrggbb".
type ColorsConfig struct {
	Background core.Color `yaml:"background" toml:"background"`
	Paddle     core.Color `yaml:"paddle" toml:"paddle"`
	Ball       core.Color `yaml:"ball" toml:"ball"`
	Brick      core.Color `yaml:"brick" toml:"brick"`
	Text       core.Color `yaml:"text" toml:"text"`
}

// TerminalConfig defines settings of the terminal frontend.
type TerminalConfig struct {
	// KeyHold is how long a key counts as held after its last repeat.
	// Terminals report no key releases, so one is emitted after this delay.
	KeyHold time.Duration `yaml:"key_hold" toml:"key_hold"`
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.TickRate <= 0 || c.TickRate > 1000:
		return fmt.Errorf("%w: tick_rate %d out of range 1..1000", ErrInvalid, c.TickRate)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %dx%d", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width > c.Window.Width:
		return fmt.Errorf("%w: paddle width %d exceeds window width %d", ErrInvalid, c.Paddle.Width, c.Window.Width)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle speed %d", ErrInvalid, c.Paddle.Speed)
	case c.Ball.Size <= 0 || c.Ball.Size > c.Window.Width || c.Ball.Size > c.Window.Height:
		return fmt.Errorf("%w: ball size %d", ErrInvalid, c.Ball.Size)
	case c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball speed %d", ErrInvalid, c.Ball.Speed)
	case c.Bricks.ReservedHeight < 0 || c.Bricks.ReservedHeight >= c.Window.Height:
		return fmt.Errorf("%w: bricks reserved_height %d", ErrInvalid, c.Bricks.ReservedHeight)
	case c.Bricks.Inset < 0:
		return fmt.Errorf("%w: bricks inset %d", ErrInvalid, c.Bricks.Inset)
	case c.Font.Size <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalid, c.Font.Size)
	case c.Terminal.KeyHold < 0:
		return fmt.Errorf("%w: terminal key_hold %v", ErrInvalid, c.Terminal.KeyHold)
	}

	if c.Paddle.BottomMargin+c.Paddle.Height+c.Ball.Gap+c.Ball.Size > c.Window.Height {
		return fmt.Errorf("%w: paddle and ball do not fit vertically", ErrInvalid)
	}

	// Every brick must keep a positive size after the inset.
	cellW := c.Window.Width / GridCols
	cellH := (c.Window.Height - c.Bricks.ReservedHeight) / GridRows
	if cellW-2*c.Bricks.Inset <= 0 || cellH-2*c.Bricks.Inset <= 0 {
		return fmt.Errorf("%w: brick cell %dx%d too small for inset %d", ErrInvalid, cellW, cellH, c.Bricks.Inset)
	}
	return nil
}
