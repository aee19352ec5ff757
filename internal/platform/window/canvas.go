package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breakout/internal/core"
)

// imageCanvas draws the game onto an ebiten image.
type imageCanvas struct {
	dst  *ebiten.Image
	face text.Face
}

func (c imageCanvas) Clear(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c imageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

func (c imageCanvas) DrawTextCentered(y int, s string, col core.Color) {
	w := c.dst.Bounds().Dx()

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(y))
	op.ColorScale.ScaleWithColor(col.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.face, op)
}
