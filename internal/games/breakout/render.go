package breakout

import "github.com/vovakirdan/breakout/internal/core"

// Banner texts shown when a session is finished.
const (
	WinText  = "You win! Press SPACE to restart"
	LoseText = "You lose! Press SPACE to restart"
)

// Canvas is the drawing surface a frontend provides to Render.
// Coordinates are world pixels.
type Canvas interface {
	Clear(c core.Color)
	FillRect(r core.Rect, c core.Color)
	DrawTextCentered(y int, text string, c core.Color)
}

// Render draws the current state: background, visible bricks, paddle, ball
// and, once the session is finished, the win/lose banner.
func (g *Game) Render(dst Canvas) {
	colors := g.cfg.Colors

	dst.Clear(colors.Background)

	for row := range g.bricks {
		for col := range g.bricks[row] {
			brick := g.bricks[row][col]
			if brick.Visible {
				dst.FillRect(brick.Rect, colors.Brick)
			}
		}
	}

	dst.FillRect(g.paddle.Rect, colors.Paddle)
	dst.FillRect(g.ball.Rect, colors.Ball)

	if text := g.Banner(); text != "" {
		dst.DrawTextCentered(g.cfg.Window.Height/2, text, colors.Text)
	}
}

// Banner returns the text shown over the field, or "" while playing.
func (g *Game) Banner() string {
	switch g.outcome {
	case OutcomeWin:
		return WinText
	case OutcomeLose:
		return LoseText
	default:
		return ""
	}
}
