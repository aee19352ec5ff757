package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/breakout/internal/core"
)

// watchedKeys lists the keyboard keys the game reacts to, in polling order.
var watchedKeys = []struct {
	key  ebiten.Key
	game core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeySpace, core.KeySpace},
}

// KeyState reports edge transitions of keyboard keys for the current tick.
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// pollEvents converts this tick's key transitions into game events.
// Releases come before presses so a key tapped within one tick ends pressed
// only if it is still down.
func pollEvents(ks KeyState, closing bool) []core.Event {
	var events []core.Event
	if closing {
		events = append(events, core.Quit())
	}
	for _, w := range watchedKeys {
		if ks.JustReleased(w.key) {
			events = append(events, core.KeyUp(w.game))
		}
	}
	for _, w := range watchedKeys {
		if ks.JustPressed(w.key) {
			events = append(events, core.KeyDown(w.game))
		}
	}
	return events
}
