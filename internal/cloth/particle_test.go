package cloth

import (
	"math"
	"testing"
)

var testWorld = World{Width: 320, Height: 240, Gravity: 200, Damping: 0.99}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewParticleStartsAtRest(t *testing.T) {
	p := NewParticle(10, 20)
	vx, vy := p.Velocity()
	if vx != 0 || vy != 0 {
		t.Fatalf("velocity = (%f, %f), want zero", vx, vy)
	}
}

func TestIntegrateAppliesGravityOnlyToY(t *testing.T) {
	p := NewParticle(100, 100)
	dt := 1.0 / 60
	p.Integrate(dt, testWorld)

	if p.X != 100 {
		t.Fatalf("x drifted to %f", p.X)
	}
	want := 100 + 0.5*testWorld.Gravity*dt*dt
	if !near(p.Y, want) {
		t.Fatalf("y = %f, want %f", p.Y, want)
	}
}

func TestIntegrateDampsVelocity(t *testing.T) {
	p := NewParticle(100, 100)
	p.prevX = 98 // moving right by 2
	p.Integrate(0, testWorld)

	if !near(p.X, 100+2*0.99) {
		t.Fatalf("x = %f, want %f", p.X, 100+2*0.99)
	}
	vx, _ := p.Velocity()
	if !near(vx, 1.98) {
		t.Fatalf("vx = %f, want 1.98", vx)
	}
}

func TestIntegrateReflectsAtLeftWall(t *testing.T) {
	p := NewParticle(1, 100)
	p.prevX = 3 // moving left by 2, would land at -0.98

	p.Integrate(0, testWorld)

	if p.prevX != 0 {
		t.Fatalf("pre-step x not clamped to wall: %f", p.prevX)
	}
	vx, _ := p.Velocity()
	if vx <= 0 {
		t.Fatalf("vx = %f, want reflected to positive", vx)
	}
	if !near(p.X, 1.98) {
		t.Fatalf("x = %f, want 1.98", p.X)
	}
}

func TestIntegrateClampsParticleAlreadyOutside(t *testing.T) {
	p := NewParticle(-1, 100)
	p.prevX = 1

	p.Integrate(0, testWorld)

	if p.prevX != 0 || !near(p.X, 1.98) {
		t.Fatalf("got prev=%f x=%f, want prev=0 x=1.98", p.prevX, p.X)
	}
}

func TestIntegrateStaysInDomain(t *testing.T) {
	cases := []struct {
		name         string
		x, y, px, py float64
	}{
		{"floor at rest", 50, 240, 50, 240},
		{"fast down", 50, 239, 50, 200},
		{"fast right", 319, 50, 250, 50},
		{"fast up", 50, 2, 50, 60},
		{"corner", 0, 0, 30, 30},
		{"outside", 400, -20, 410, -30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Particle{X: tc.x, Y: tc.y, prevX: tc.px, prevY: tc.py}
			for i := 0; i < 10; i++ {
				p.Integrate(1.0/60, testWorld)
				if p.X < 0 || p.X > testWorld.Width || p.Y < 0 || p.Y > testWorld.Height {
					t.Fatalf("step %d: (%f, %f) outside domain", i, p.X, p.Y)
				}
			}
		})
	}
}

func TestParticleRenderDrawsUnitPoint(t *testing.T) {
	p := NewParticle(3, 4)
	var r recorder
	p.Render(&r)

	if len(r.calls) != 1 || r.calls[0].op != "point" {
		t.Fatalf("calls = %+v, want one point", r.calls)
	}
	if a := r.calls[0].args; a[0] != 3 || a[1] != 4 || a[2] != 1 {
		t.Fatalf("point args = %v, want [3 4 1]", a)
	}
}
