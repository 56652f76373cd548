package cloth

import "image/color"

// Canvas is the drawing surface a mesh renders onto.
type Canvas interface {
	SetColor(c color.Color)
	Clear()
	Point(x, y, r float64)
	Line(x1, y1, x2, y2 float64)
}

var (
	LinkColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ParticleColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	RestColor     = color.RGBA{A: 255}
)
