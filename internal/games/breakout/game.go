package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// Status is the phase of a session.
type Status int

const (
	StatusPlaying Status = iota
	StatusFinished
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	if s == StatusFinished {
		return "finished"
	}
	return "playing"
}

// Outcome tells how a finished session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Status        Status
	Outcome       Outcome
	BricksCleared int  // Bricks cleared during this tick
	Finished      bool // The session finished during this tick
}

// Game holds the complete state of one Breakout process: entities, status
// and the exit flag. It performs no I/O; frontends feed it events, call Step
// once per tick and hand it a Canvas to draw on.
type Game struct {
	cfg config.Config

	paddle Paddle
	ball   Ball
	bricks Grid

	status  Status
	outcome Outcome
	tick    uint64
	quit    bool
}

// New creates a game and starts the first session.
func New(cfg config.Config) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Reset starts a new session: all bricks visible, paddle and ball at their
// serve positions and status Playing. The exit flag is left untouched.
func (g *Game) Reset() {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	pc, bc := g.cfg.Paddle, g.cfg.Ball

	paddleY := h - pc.Height - pc.BottomMargin
	g.paddle = Paddle{
		Rect: core.NewRect((w-pc.Width)/2, paddleY, pc.Width, pc.Height),
	}

	g.ball = Ball{
		Rect: core.NewRect((w-bc.Size)/2, paddleY-bc.Gap-bc.Size, bc.Size, bc.Size),
		DX:   bc.Speed,
		DY:   bc.Speed,
	}

	g.bricks = NewGrid(w, h, g.cfg.Bricks.ReservedHeight, g.cfg.Bricks.Inset)
	g.status = StatusPlaying
	g.outcome = OutcomeNone
	g.tick = 0
}

// HandleEvents applies one tick's worth of input events in order.
//
// Left/A pressed sets the paddle moving left, Right/D right. Releasing any of
// the four movement keys stops the paddle, even if another one is still held.
// Space restarts the session whatever its status. Quit sets the exit flag.
func (g *Game) HandleEvents(events []core.Event) {
	speed := g.cfg.Paddle.Speed

	for _, ev := range events {
		switch ev.Type {
		case core.EventQuit:
			g.quit = true

		case core.EventKeyDown:
			switch ev.Key {
			case core.KeyLeft, core.KeyA:
				g.paddle.DX = -speed
			case core.KeyRight, core.KeyD:
				g.paddle.DX = speed
			case core.KeySpace:
				g.Reset()
			}

		case core.EventKeyUp:
			switch ev.Key {
			case core.KeyLeft, core.KeyA, core.KeyRight, core.KeyD:
				g.paddle.DX = 0
			}
		}
	}
}

// Step advances the simulation by one tick. It does nothing once the
// session is finished.
func (g *Game) Step() StepResult {
	if g.status == StatusFinished {
		return g.result(0, false)
	}

	g.tick++
	w, h := g.cfg.Window.Width, g.cfg.Window.Height

	movePaddle(&g.paddle, w)
	g.ball.Move()
	reflectWalls(&g.ball, w, h)

	if core.Overlaps(g.ball.Rect, g.paddle.Rect) {
		g.ball.BounceY()
	}

	finished := false
	switch {
	case g.ball.Rect.Y < 0:
		g.finish(OutcomeWin)
		finished = true
	case g.ball.Rect.Y > h-g.ball.Rect.H:
		g.finish(OutcomeLose)
		finished = true
	}

	// Bricks are still resolved on the tick that ends the session.
	cleared := hitBricks(&g.ball, &g.bricks)

	return g.result(cleared, finished)
}

// Frame runs one full tick: input first, then the update step.
func (g *Game) Frame(events []core.Event) StepResult {
	g.HandleEvents(events)
	return g.Step()
}

func (g *Game) finish(o Outcome) {
	g.status = StatusFinished
	g.outcome = o
}

func (g *Game) result(cleared int, finished bool) StepResult {
	return StepResult{
		Status:        g.status,
		Outcome:       g.outcome,
		BricksCleared: cleared,
		Finished:      finished,
	}
}

// Status returns the current session status.
func (g *Game) Status() Status {
	return g.status
}

// Outcome returns how the session ended, or OutcomeNone while playing.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Quit reports whether a quit event has been received.
func (g *Game) Quit() bool {
	return g.quit
}

// Tick returns the number of update steps in the current session.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Bricks returns a copy of the brick grid.
func (g *Game) Bricks() Grid {
	return g.bricks
}

// VisibleBricks returns the number of bricks still on the field.
func (g *Game) VisibleBricks() int {
	return g.bricks.CountVisible()
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}
