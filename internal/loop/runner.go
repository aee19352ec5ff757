package loop

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/games/breakout"
)

// Source produces the input events for one tick.
type Source interface {
	Poll() []core.Event
}

// Sim is the simulation driven by the loop.
type Sim interface {
	Frame(events []core.Event) breakout.StepResult
	Quit() bool
}

// Runner drives a Sim at a fixed tick rate.
type Runner struct {
	Pacer  Pacer
	Logger *log.Logger

	// Paced disables the end-of-frame sleep when false.
	Paced bool

	// Now and Sleep default to time.Now and time.Sleep.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// NewRunner creates a paced runner using the real clock.
func NewRunner(tickRate int, logger *log.Logger) *Runner {
	return &Runner{
		Pacer:  NewPacer(tickRate),
		Logger: logger,
		Paced:  true,
		Now:    time.Now,
		Sleep:  time.Sleep,
	}
}

// Run loops poll -> update -> render -> sleep until the sim asks to quit or
// ctx is cancelled. Both are checked once per iteration, so the frame in
// flight always completes. render may be nil. Returns the number of frames run.
func (r *Runner) Run(ctx context.Context, src Source, sim Sim, render func()) (int, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	frames := 0
	for !sim.Quit() {
		if err := ctx.Err(); err != nil {
			return frames, err
		}

		frameStart := now()

		res := sim.Frame(src.Poll())
		frames++
		if res.Finished && r.Logger != nil {
			r.Logger.Debug("session finished", "frame", frames, "outcome", res.Outcome)
		}

		if render != nil {
			render()
		}

		if r.Paced {
			if d := r.Pacer.Delay(now().Sub(frameStart)); d > 0 {
				sleep(d)
			}
		}
	}
	return frames, nil
}
