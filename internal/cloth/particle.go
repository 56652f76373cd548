package cloth

// World is the environment a particle integrates in.
type World struct {
	Width, Height float64
	Gravity       float64
	Damping       float64
}

// Particle is a Verlet point. Velocity is implicit: the difference between
// the current and the previous position.
type Particle struct {
	X, Y float64

	prevX, prevY float64
}

func NewParticle(x, y float64) Particle {
	return Particle{X: x, Y: y, prevX: x, prevY: y}
}

// Velocity returns the displacement covered during the last step.
func (p *Particle) Velocity() (float64, float64) {
	return p.X - p.prevX, p.Y - p.prevY
}

// Integrate advances the particle by one step of dt seconds.
func (p *Particle) Integrate(dt float64, w World) {
	vx := (p.X - p.prevX) * w.Damping
	vy := (p.Y - p.prevY) * w.Damping
	fall := 0.5 * w.Gravity * dt * dt

	x, vx := reflect(p.X, vx, 0, w.Width)
	y, vy := reflect(p.Y, vy, fall, w.Height)

	p.prevX, p.prevY = x, y
	p.X = clamp(x+vx, 0, w.Width)
	p.Y = clamp(y+vy+fall, 0, w.Height)
}

func (p *Particle) Render(c Canvas) {
	c.Point(p.X, p.Y, 1)
}

// reflect pins pos to the violated edge of [0, hi] and turns v back inward
// when the step pos+v+accel would leave it.
func reflect(pos, v, accel, hi float64) (float64, float64) {
	switch next := pos + v + accel; {
	case next < 0:
		if v < 0 {
			v = -v
		}
		return 0, v
	case next > hi:
		if v > 0 {
			v = -v
		}
		return hi, v
	}
	return pos, v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
