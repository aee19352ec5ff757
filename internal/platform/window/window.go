// Package window runs the game in a desktop window using Ebitengine.
package window

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/games/breakout"
)

// Frontend adapts a breakout.Game to ebiten.Game.
type Frontend struct {
	game   *breakout.Game
	cfg    config.Config
	face   text.Face
	keys   KeyState
	logger *log.Logger

	// closing reports whether the user asked to close the window.
	closing func() bool
}

// NewFrontend creates a window frontend for g drawing the banner with face.
func NewFrontend(g *breakout.Game, face text.Face, logger *log.Logger) *Frontend {
	return &Frontend{
		game:    g,
		cfg:     g.Config(),
		face:    face,
		keys:    ebitenKeys{},
		logger:  logger,
		closing: ebiten.IsWindowBeingClosed,
	}
}

// Update runs one game tick. Ebitengine calls it tick_rate times per second.
func (f *Frontend) Update() error {
	events := pollEvents(f.keys, f.closing())
	for _, ev := range events {
		f.logger.Debug("input", "event", ev.Type, "key", ev.Key)
	}

	res := f.game.Frame(events)
	if res.Finished {
		f.logger.Info("session finished", "outcome", res.Outcome, "tick", f.game.Tick(),
			"bricks_left", f.game.VisibleBricks())
	}
	if res.BricksCleared > 0 {
		f.logger.Debug("bricks cleared", "count", res.BricksCleared, "tick", f.game.Tick())
	}

	if f.game.Quit() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current state.
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.game.Render(imageCanvas{dst: screen, face: f.face})
}

// Layout keeps the logical screen at the configured window size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.cfg.Window.Width, f.cfg.Window.Height
}

// Run opens the window and blocks until the player quits.
func Run(g *breakout.Game, face text.Face, logger *log.Logger) error {
	cfg := g.Config()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	logger.Debug("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height,
		"tps", cfg.TickRate)

	err := ebiten.RunGame(NewFrontend(g, face, logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
