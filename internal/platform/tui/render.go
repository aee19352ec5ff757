package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/core"
)

// FillRune is the glyph used for filled rectangles.
const FillRune = '█'

// ScreenCanvas draws world-pixel geometry onto a character Screen.
// It implements breakout.Canvas.
type ScreenCanvas struct {
	screen *core.Screen
	worldW int
	worldH int
}

// NewScreenCanvas creates a canvas mapping a worldW x worldH playfield onto s.
func NewScreenCanvas(s *core.Screen, worldW, worldH int) *ScreenCanvas {
	return &ScreenCanvas{screen: s, worldW: worldW, worldH: worldH}
}

// Clear blanks the screen. The terminal's own background shows through.
func (c *ScreenCanvas) Clear(_ core.Color) {
	c.screen.Clear()
}

// FillRect fills the cells covered by r.
func (c *ScreenCanvas) FillRect(r core.Rect, col core.Color) {
	c.screen.DrawRect(c.toCells(r), FillRune, col)
}

// DrawTextCentered draws text centered on the row containing world y.
func (c *ScreenCanvas) DrawTextCentered(y int, text string, col core.Color) {
	c.screen.DrawTextCentered(y*c.screen.Height()/c.worldH, text, col)
}

// toCells maps a world rectangle to the cells it covers. The far edge is
// rounded down so the inset between neighbouring bricks stays visible; every
// rectangle keeps at least one cell.
func (c *ScreenCanvas) toCells(r core.Rect) core.Rect {
	sw, sh := c.screen.Width(), c.screen.Height()

	x0 := floorDiv(r.X*sw, c.worldW)
	y0 := floorDiv(r.Y*sh, c.worldH)
	x1 := floorDiv(r.Right()*sw, c.worldW)
	y1 := floorDiv(r.Bottom()*sh, c.worldH)

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// styleCache holds one lipgloss style per color.
type styleCache map[core.Color]lipgloss.Style

func (sc styleCache) get(c core.Color) lipgloss.Style {
	if s, ok := sc[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	sc[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences;
// blank cells are written unstyled.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			blank := start.Rune == ' '

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (cell.Rune == ' ') != blank || (!blank && cell.Color != start.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if blank {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styles.get(start.Color).Render(run.String()))
			}
		}
	}
	return sb.String()
}
