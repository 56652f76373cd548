package cloth

// Intent is the directional input sampled once per tick: four bits per
// draggable corner.
type Intent uint8

const (
	LeftUp Intent = 1 << iota
	LeftDown
	LeftLeft
	LeftRight
	RightUp
	RightDown
	RightLeft
	RightRight
)

func (in Intent) Has(bit Intent) bool { return in&bit != 0 }

// axes returns the unit drag direction for the left and right corners.
func (in Intent) axes() (lx, ly, rx, ry float64) {
	lx = axis(in.Has(LeftRight), in.Has(LeftLeft))
	ly = axis(in.Has(LeftDown), in.Has(LeftUp))
	rx = axis(in.Has(RightRight), in.Has(RightLeft))
	ry = axis(in.Has(RightDown), in.Has(RightUp))
	return
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
