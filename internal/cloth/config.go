package cloth

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("invalid cloth config")

// Config fixes the mesh topology and tuning at construction time.
type Config struct {
	Width, Height    float64
	Rows, Cols       int
	Spacing          float64
	OriginX, OriginY float64

	Gravity float64
	Damping float64
	Speed   float64

	// Iterations is the number of relaxation passes per step.
	Iterations int
	Strength   float64
	// BreakRatio times Spacing is the length at which a link tears.
	BreakRatio float64
}

func DefaultConfig() Config {
	return Config{
		Width:      320,
		Height:     240,
		Rows:       10,
		Cols:       10,
		Spacing:    10,
		OriginX:    20,
		OriginY:    20,
		Gravity:    200,
		Damping:    0.99,
		Speed:      80,
		Iterations: 2,
		Strength:   0.5,
		BreakRatio: 3,
	}
}

// Validate rejects configs that would build a degenerate mesh. Non-finite
// values are refused before any range check.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", c.Width}, {"height", c.Height},
		{"spacing", c.Spacing},
		{"origin x", c.OriginX}, {"origin y", c.OriginY},
		{"gravity", c.Gravity}, {"damping", c.Damping}, {"speed", c.Speed},
		{"strength", c.Strength}, {"break ratio", c.BreakRatio},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: domain %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.Rows < 2 || c.Cols < 2:
		return fmt.Errorf("%w: grid %dx%d, need at least 2x2", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Spacing <= 0:
		return fmt.Errorf("%w: spacing %v", ErrInvalidConfig, c.Spacing)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations %d", ErrInvalidConfig, c.Iterations)
	case c.Strength < 0 || c.Strength > 1:
		return fmt.Errorf("%w: strength %v outside [0,1]", ErrInvalidConfig, c.Strength)
	case c.Damping < 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping %v outside [0,1]", ErrInvalidConfig, c.Damping)
	case c.BreakRatio <= 1:
		return fmt.Errorf("%w: break ratio %v must exceed 1", ErrInvalidConfig, c.BreakRatio)
	case c.OriginX < 0 || c.OriginY < 0:
		return fmt.Errorf("%w: origin (%v, %v) outside the domain", ErrInvalidConfig, c.OriginX, c.OriginY)
	case c.OriginX+float64(c.Cols-1)*c.Spacing > c.Width:
		return fmt.Errorf("%w: %d columns at spacing %v overflow width %v", ErrInvalidConfig, c.Cols, c.Spacing, c.Width)
	case c.OriginY+float64(c.Rows-1)*c.Spacing > c.Height:
		return fmt.Errorf("%w: %d rows at spacing %v overflow height %v", ErrInvalidConfig, c.Rows, c.Spacing, c.Height)
	}
	return nil
}

// Links is the number of constraints a grid of this size carries.
func (c Config) Links() int {
	return c.Rows*(c.Cols-1) + c.Cols*(c.Rows-1)
}

func (c Config) world() World {
	return World{Width: c.Width, Height: c.Height, Gravity: c.Gravity, Damping: c.Damping}
}
