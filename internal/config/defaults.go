package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration.
// It matches defaults/breakout.yaml and is used if the embedded file fails to parse.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Breakout",
		},
		TickRate: 60,
		Font: FontConfig{
			Path: "assets/BebasNeue-Regular.ttf",
			Size: 28,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       20,
			Speed:        5,
			BottomMargin: 20,
		},
		Ball: BallConfig{
			Size:  20,
			Speed: 5,
			Gap:   20,
		},
		Bricks: BricksConfig{
			ReservedHeight: 400,
			Inset:          2,
		},
		Colors: ColorsConfig{
			Background: core.Black,
			Paddle:     core.White,
			Ball:       core.White,
			Brick:      core.Color{R: 0xc8, G: 0x4c, B: 0x0c},
			Text:       core.White,
		},
		Terminal: TerminalConfig{
			KeyHold: 250 * time.Millisecond,
		},
	}
}
