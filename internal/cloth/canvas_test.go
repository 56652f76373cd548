package cloth

import "image/color"

type drawCall struct {
	op   string
	args []float64
	clr  color.Color
}

// recorder is a Canvas that remembers every call made on it.
type recorder struct {
	calls []drawCall
}

func (r *recorder) SetColor(c color.Color) { r.calls = append(r.calls, drawCall{op: "color", clr: c}) }
func (r *recorder) Clear()                 { r.calls = append(r.calls, drawCall{op: "clear"}) }
func (r *recorder) Point(x, y, rad float64) {
	r.calls = append(r.calls, drawCall{op: "point", args: []float64{x, y, rad}})
}
func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.calls = append(r.calls, drawCall{op: "line", args: []float64{x1, y1, x2, y2}})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
