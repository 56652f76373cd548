package cloth

import "math"

// Constraint is a distance link between two particles of a mesh, referenced
// by their index in the particle arena.
type Constraint struct {
	A, B       int
	RestLength float64
	MaxLength  float64
	// Strength is between 0 and 1. 1 restores the rest length in a single
	// relaxation, 0 never does.
	Strength float64

	broken bool
}

func NewConstraint(a, b int, rest, maxLen, strength float64) Constraint {
	return Constraint{A: a, B: b, RestLength: rest, MaxLength: maxLen, Strength: strength}
}

// Broken reports whether the link has torn. A torn link stays torn.
func (c *Constraint) Broken() bool { return c.broken }

// Length returns the current distance between the two endpoints.
func (c *Constraint) Length(ps []Particle) float64 {
	a, b := &ps[c.A], &ps[c.B]
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Strain maps the current length onto [0, 1], from rest length to the
// breaking length.
func (c *Constraint) Strain(ps []Particle) float64 {
	span := c.MaxLength - c.RestLength
	if span <= 0 {
		return 0
	}
	return clamp((c.Length(ps)-c.RestLength)/span, 0, 1)
}

// Relax moves both endpoints symmetrically toward the rest length, or tears
// the link when it is stretched past MaxLength.
func (c *Constraint) Relax(ps []Particle) {
	if c.broken {
		return
	}
	a, b := &ps[c.A], &ps[c.B]
	dx := a.X - b.X
	dy := a.Y - b.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist > c.MaxLength {
		c.broken = true
		return
	}
	// Coincident endpoints have no direction to push along.
	if dist == 0 {
		return
	}

	pct := (c.RestLength - dist) / dist
	shiftX := dx * pct * 0.5 * c.Strength
	shiftY := dy * pct * 0.5 * c.Strength

	a.X += shiftX
	a.Y += shiftY
	b.X -= shiftX
	b.Y -= shiftY
}

func (c *Constraint) Render(cv Canvas, ps []Particle) {
	if c.broken {
		return
	}
	a, b := &ps[c.A], &ps[c.B]
	cv.Line(a.X, a.Y, b.X, b.Y)
}
