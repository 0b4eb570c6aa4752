package physics

import (
	"errors"
	"fmt"
	"math"
)

// Params holds the tuning constants shared by both bodies.
type Params struct {
	// Drag multiplies the velocity once per step.
	Drag float64 `yaml:"drag"`
	// InputAccel is the acceleration added per held direction, px/s².
	InputAccel float64 `yaml:"input_accel"`

	// Gravity is G0 + K*(y-Y0) below Y0, capped at AyLimit.
	G0      float64 `yaml:"g0"`
	K       float64 `yaml:"k"`
	Y0      float64 `yaml:"y0"`
	AyLimit float64 `yaml:"ay_limit"`

	// Restitution applies to circle-square contacts.
	Restitution float64 `yaml:"restitution"`
	// WallRestitution scales the reflected normal velocity at the walls.
	// 1 bounces without loss, 0 stops the body against the wall.
	WallRestitution float64 `yaml:"wall_restitution"`

	// MaxDt caps a single step, in seconds.
	MaxDt float64 `yaml:"max_dt"`
}

// DefaultParams returns the tuning the playfield was designed around.
func DefaultParams() Params {
	return Params{
		Drag:            0.98,
		InputAccel:      20000,
		G0:              1000,
		K:               9.81,
		Y0:              0,
		AyLimit:         40000,
		Restitution:     0.6,
		WallRestitution: 1,
		MaxDt:           0.05,
	}
}

// ErrInvalidParams wraps every Validate failure.
var ErrInvalidParams = errors.New("invalid physics params")

// Validate rejects non-finite values and out-of-range tuning.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"drag", p.Drag},
		{"input_accel", p.InputAccel},
		{"g0", p.G0},
		{"k", p.K},
		{"y0", p.Y0},
		{"ay_limit", p.AyLimit},
		{"restitution", p.Restitution},
		{"wall_restitution", p.WallRestitution},
		{"max_dt", p.MaxDt},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidParams, f.name, f.v)
		}
	}

	switch {
	case p.Drag < 0 || p.Drag > 1:
		return fmt.Errorf("%w: drag %v outside [0,1]", ErrInvalidParams, p.Drag)
	case p.InputAccel < 0:
		return fmt.Errorf("%w: input_accel %v < 0", ErrInvalidParams, p.InputAccel)
	case p.AyLimit < 0:
		return fmt.Errorf("%w: ay_limit %v < 0", ErrInvalidParams, p.AyLimit)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("%w: restitution %v outside [0,1]", ErrInvalidParams, p.Restitution)
	case p.WallRestitution < 0 || p.WallRestitution > 1:
		return fmt.Errorf("%w: wall_restitution %v outside [0,1]", ErrInvalidParams, p.WallRestitution)
	case p.MaxDt <= 0:
		return fmt.Errorf("%w: max_dt %v <= 0", ErrInvalidParams, p.MaxDt)
	}
	return nil
}

// ClampDt bounds a frame delta to [0, MaxDt]. NaN counts as zero.
func ClampDt(dt float64, p Params) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if dt > p.MaxDt {
		return p.MaxDt
	}
	return dt
}
