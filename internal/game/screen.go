package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws mesh primitives onto an ebiten image.
type screenCanvas struct {
	dst *ebiten.Image
	clr color.Color
}

func newScreenCanvas(dst *ebiten.Image) *screenCanvas {
	return &screenCanvas{dst: dst, clr: color.White}
}

func (c *screenCanvas) SetColor(clr color.Color) { c.clr = clr }

func (c *screenCanvas) Clear() { c.dst.Clear() }

func (c *screenCanvas) Point(x, y, r float64) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), c.clr, false)
}

func (c *screenCanvas) Line(x1, y1, x2, y2 float64) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, c.clr, false)
}
