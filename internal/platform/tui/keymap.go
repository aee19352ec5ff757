package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the footer help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game key.
// Returns KeyNone for keys the game ignores.
func MapKey(msg tea.KeyMsg) core.Key {
	switch msg.String() {
	case "left":
		return core.KeyLeft
	case "a":
		return core.KeyA
	case "right":
		return core.KeyRight
	case "d":
		return core.KeyD
	case " ", "space":
		return core.KeySpace
	}
	return core.KeyNone
}

// heldKeys emulates key releases. Terminals only report presses (repeated
// while a key is held), so a movement key counts as released once no repeat
// has arrived for the hold duration.
type heldKeys struct {
	hold     time.Duration
	lastSeen map[core.Key]time.Time
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		hold:     hold,
		lastSeen: make(map[core.Key]time.Time),
	}
}

// Press records a press or repeat of k.
func (h *heldKeys) Press(k core.Key, now time.Time) {
	h.lastSeen[k] = now
}

// Held reports whether k is currently considered held.
func (h *heldKeys) Held(k core.Key) bool {
	_, ok := h.lastSeen[k]
	return ok
}

// Expire returns key-up events for keys whose hold has lapsed, in key order.
func (h *heldKeys) Expire(now time.Time) []core.Event {
	var expired []core.Key
	for k, t := range h.lastSeen {
		if now.Sub(t) >= h.hold {
			expired = append(expired, k)
		}
	}
	if len(expired) == 0 {
		return nil
	}

	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	events := make([]core.Event, 0, len(expired))
	for _, k := range expired {
		delete(h.lastSeen, k)
		events = append(events, core.KeyUp(k))
	}
	return events
}
