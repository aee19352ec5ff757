package loop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/breakout/internal/core"
)

// ScriptEvent is one scripted input event.
type ScriptEvent struct {
	Tick int    `yaml:"tick"`
	Type string `yaml:"type"` // down, up or quit
	Key  string `yaml:"key"`  // left, right, a, d or space
}

// Script is a recorded input sequence for headless runs.
//
//	ticks: 600
//	events:
//	  - {tick: 0, type: down, key: right}
//	  - {tick: 45, type: up, key: right}
type Script struct {
	Ticks  int           `yaml:"ticks"`
	Events []ScriptEvent `yaml:"events"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loop: read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("loop: parse script: %w", err)
	}
	if s.Ticks <= 0 {
		return nil, fmt.Errorf("loop: script ticks must be positive, got %d", s.Ticks)
	}
	for i, ev := range s.Events {
		if ev.Tick < 0 {
			return nil, fmt.Errorf("loop: event %d: negative tick %d", i, ev.Tick)
		}
		if _, err := ev.event(); err != nil {
			return nil, fmt.Errorf("loop: event %d: %w", i, err)
		}
	}
	return &s, nil
}

func (ev ScriptEvent) event() (core.Event, error) {
	switch ev.Type {
	case "quit":
		return core.Quit(), nil
	case "down", "up":
		key := core.ParseKey(ev.Key)
		if key == core.KeyNone {
			return core.Event{}, fmt.Errorf("unknown key %q", ev.Key)
		}
		if ev.Type == "down" {
			return core.KeyDown(key), nil
		}
		return core.KeyUp(key), nil
	default:
		return core.Event{}, fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// ScriptSource replays a Script one tick per Poll. After Ticks polls it
// emits a quit event.
type ScriptSource struct {
	script *Script
	byTick map[int][]core.Event
	tick   int
}

// NewScriptSource creates a source for a validated script.
func NewScriptSource(s *Script) *ScriptSource {
	byTick := make(map[int][]core.Event, len(s.Events))
	for _, ev := range s.Events {
		e, err := ev.event()
		if err != nil {
			continue
		}
		byTick[ev.Tick] = append(byTick[ev.Tick], e)
	}
	return &ScriptSource{script: s, byTick: byTick}
}

// Poll returns the events scheduled for the current tick and advances.
func (s *ScriptSource) Poll() []core.Event {
	events := s.byTick[s.tick]
	if s.tick >= s.script.Ticks-1 {
		events = append(events, core.Quit())
	}
	s.tick++
	return events
}
