package breakout

import "github.com/vovakirdan/breakout/internal/core"

// Paddle is the player's paddle. It only moves horizontally.
type Paddle struct {
	Rect core.Rect
	DX   int // -speed, 0 or +speed
}

// Ball is the ball with its per-tick velocity.
type Ball struct {
	Rect   core.Rect
	DX, DY int
}

// Move advances the ball by its velocity on both axes.
func (b *Ball) Move() {
	b.Rect = b.Rect.Translate(b.DX, b.DY)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// reflectWalls flips a velocity component when the ball lies outside the
// playfield on that axis. The position is left as is, so the ball may be
// partially off screen for one frame.
func reflectWalls(b *Ball, width, height int) {
	if b.Rect.X < 0 || b.Rect.X > width-b.Rect.W {
		b.BounceX()
	}
	if b.Rect.Y < 0 || b.Rect.Y > height-b.Rect.H {
		b.BounceY()
	}
}

// movePaddle advances the paddle and clamps it to [0, width-paddle width].
func movePaddle(p *Paddle, width int) {
	p.Rect.X = core.Clamp(p.Rect.X+p.DX, 0, width-p.Rect.W)
}

// hitBricks clears every visible brick the ball overlaps, flipping the ball's
// vertical velocity once per cleared brick. Returns the number cleared.
func hitBricks(b *Ball, g *Grid) int {
	cleared := 0
	for row := range g {
		for col := range g[row] {
			brick := &g[row][col]
			if !brick.Visible || !core.Overlaps(b.Rect, brick.Rect) {
				continue
			}
			brick.Visible = false
			b.BounceY()
			cleared++
		}
	}
	return cleared
}
