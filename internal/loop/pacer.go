// Package loop provides the fixed-tick frame loop: poll input, update,
// render, then sleep out the rest of the frame budget.
package loop

import "time"

// Pacer computes how long to wait at the end of a frame.
type Pacer struct {
	budget time.Duration
}

// NewPacer creates a pacer for the given tick rate. The budget is
// 1000/tickRate whole milliseconds, so 60 Hz gives 16 ms frames.
func NewPacer(tickRate int) Pacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Pacer{budget: time.Duration(1000/tickRate) * time.Millisecond}
}

// Budget returns the frame budget.
func (p Pacer) Budget() time.Duration {
	return p.budget
}

// Delay returns the time left in the budget after a frame took elapsed.
// Overrunning frames get no delay; nothing is skipped to catch up.
func (p Pacer) Delay(elapsed time.Duration) time.Duration {
	if elapsed >= p.budget {
		return 0
	}
	return p.budget - elapsed
}
