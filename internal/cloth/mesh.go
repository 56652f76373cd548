package cloth

// Point is a free-floating drag target.
type Point struct {
	X, Y float64
}

// Mesh owns a fixed grid of particles and the links between horizontal and
// vertical neighbours. The two top corners are driven by input rather than
// by physics.
type Mesh struct {
	// OnBreak, when set, is called once for every link that tears.
	OnBreak func(link int)

	cfg         Config
	world       World
	particles   []Particle
	constraints []Constraint
	left, right Point
	last        uint32
}

func NewMesh(cfg Config) (*Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Mesh{cfg: cfg, world: cfg.world()}
	m.build()
	return m, nil
}

func (m *Mesh) build() {
	cfg := m.cfg
	m.particles = make([]Particle, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			m.particles[m.Index(row, col)] = NewParticle(
				cfg.OriginX+float64(col)*cfg.Spacing,
				cfg.OriginY+float64(row)*cfg.Spacing,
			)
		}
	}

	maxLen := cfg.Spacing * cfg.BreakRatio
	m.constraints = make([]Constraint, 0, cfg.Links())
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols-1; col++ {
			m.constraints = append(m.constraints,
				NewConstraint(m.Index(row, col), m.Index(row, col+1), cfg.Spacing, maxLen, cfg.Strength))
		}
	}
	for row := 0; row < cfg.Rows-1; row++ {
		for col := 0; col < cfg.Cols; col++ {
			m.constraints = append(m.constraints,
				NewConstraint(m.Index(row, col), m.Index(row+1, col), cfg.Spacing, maxLen, cfg.Strength))
		}
	}

	l, r := m.Anchors()
	m.left = Point{m.particles[l].X, m.particles[l].Y}
	m.right = Point{m.particles[r].X, m.particles[r].Y}
}

// Reset restores the initial grid. The clock is kept so the next Update
// does not see a jump.
func (m *Mesh) Reset() {
	m.build()
}

// Update runs one tick at host time now, in milliseconds.
func (m *Mesh) Update(now uint32, in Intent) {
	dt := 0.0
	if now > m.last {
		dt = float64(now-m.last) / 1000
	}
	m.last = now
	m.Step(dt, in)
}

// Sync moves the clock to now without stepping, so a host that stalled
// (a modal dialog, a dragged window) does not feed one huge dt into Update.
func (m *Mesh) Sync(now uint32) {
	m.last = now
}

// Step advances the simulation by dt seconds: drag the anchors, relax the
// links, then integrate every particle.
func (m *Mesh) Step(dt float64, in Intent) {
	d := m.cfg.Speed * dt
	lx, ly, rx, ry := in.axes()
	m.left.X += lx * d
	m.left.Y += ly * d
	m.right.X += rx * d
	m.right.Y += ry * d

	l, r := m.Anchors()
	m.particles[l].X, m.particles[l].Y = m.left.X, m.left.Y
	m.particles[r].X, m.particles[r].Y = m.right.X, m.right.Y

	for pass := 0; pass < m.cfg.Iterations; pass++ {
		m.relax()
	}

	for i := range m.particles {
		m.particles[i].Integrate(dt, m.world)
	}
}

func (m *Mesh) relax() {
	for i := range m.constraints {
		c := &m.constraints[i]
		if c.broken {
			continue
		}
		c.Relax(m.particles)
		if c.broken && m.OnBreak != nil {
			m.OnBreak(i)
		}
	}
}

// Render draws intact links first so the particle dots land on top.
func (m *Mesh) Render(cv Canvas) {
	cv.Clear()
	cv.SetColor(LinkColor)
	for i := range m.constraints {
		m.constraints[i].Render(cv, m.particles)
	}
	cv.SetColor(ParticleColor)
	for i := range m.particles {
		m.particles[i].Render(cv)
	}
	cv.SetColor(RestColor)
}

// Index maps a grid cell to its slot in the particle arena.
func (m *Mesh) Index(row, col int) int {
	return row*m.cfg.Cols + col
}

// Anchors returns the indices of the two input-driven corners.
func (m *Mesh) Anchors() (left, right int) {
	return m.Index(0, 0), m.Index(0, m.cfg.Cols-1)
}

func (m *Mesh) Targets() (left, right Point) { return m.left, m.right }

func (m *Mesh) Config() Config { return m.cfg }

func (m *Mesh) Particle(i int) Particle { return m.particles[i] }

func (m *Mesh) Particles() []Particle {
	out := make([]Particle, len(m.particles))
	copy(out, m.particles)
	return out
}

func (m *Mesh) Constraints() []Constraint {
	out := make([]Constraint, len(m.constraints))
	copy(out, m.constraints)
	return out
}

func (m *Mesh) BrokenCount() int {
	n := 0
	for i := range m.constraints {
		if m.constraints[i].broken {
			n++
		}
	}
	return n
}
