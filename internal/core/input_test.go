package core

import "testing"

func TestKeyNames(t *testing.T) {
	for _, k := range []Key{KeyLeft, KeyRight, KeyA, KeyD, KeySpace} {
		if got := ParseKey(k.String()); got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if ParseKey("enter") != KeyNone {
		t.Error("unknown key names should map to KeyNone")
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Error("empty queue should drain to nil")
	}

	q.Push(KeyDown(KeyLeft))
	q.Push(KeyUp(KeyLeft))
	q.Push(Quit())
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	want := []Event{
		{Type: EventKeyDown, Key: KeyLeft},
		{Type: EventKeyUp, Key: KeyLeft},
		{Type: EventQuit},
	}
	if len(events) != len(want) {
		t.Fatalf("Drain() returned %d events, expected %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}
}
