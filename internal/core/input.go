package core

// Key is a platform-independent key identifier.
// Frontends translate their native key codes to these values; anything the
// game does not care about becomes KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeySpace
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyA:
		return "a"
	case KeyD:
		return "d"
	case KeySpace:
		return "space"
	default:
		return "none"
	}
}

// ParseKey is the inverse of Key.String. Unknown names map to KeyNone.
func ParseKey(name string) Key {
	switch name {
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	case "a":
		return KeyA
	case "d":
		return KeyD
	case "space":
		return KeySpace
	default:
		return KeyNone
	}
}

// EventType distinguishes the kinds of input events.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventQuit
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "down"
	case EventKeyUp:
		return "up"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one discrete input event produced by a frontend.
// Key is meaningless for EventQuit.
type Event struct {
	Type EventType
	Key  Key
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Type: EventQuit}
}

// EventQueue collects events between ticks.
// Drain hands them over in arrival order and empties the queue.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
