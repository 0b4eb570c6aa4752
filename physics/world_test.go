package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldPlacement(t *testing.T) {
	w := NewWorld(testBounds, DefaultParams())

	assert.Equal(t, Vec2{X: 400, Y: 500}, w.Circle.Pos)
	assert.Equal(t, Vec2{X: 200, Y: 250}, w.Square.Pos)
	assert.Equal(t, float64(DefaultRadius), w.Circle.Radius)
	assert.Equal(t, float64(DefaultHalf), w.Square.Half)
	assert.Zero(t, w.Energy())
}

func TestStepClampsDt(t *testing.T) {
	w := NewWorld(testBounds, DefaultParams())

	res := w.Step(1, Control{}, Control{})

	assert.Equal(t, w.Params.MaxDt, res.Dt)
	assert.Equal(t, uint64(1), w.Steps)
}

func TestStepSettlesOnFloor(t *testing.T) {
	w := NewWorld(testBounds, DefaultParams())

	for i := 0; i < 600; i++ {
		w.Step(1.0/60, Control{}, Control{})
	}

	assert.InDelta(t, testBounds.H-w.Circle.Radius, w.Circle.Pos.Y, 10)
	assert.InDelta(t, testBounds.H-w.Square.Half, w.Square.Pos.Y, 10)
	assert.Equal(t, 400.0, w.Circle.Pos.X)
	assert.Equal(t, 200.0, w.Square.Pos.X)
}

func TestStepKeepsBodiesInside(t *testing.T) {
	w := NewWorld(testBounds, DefaultParams())
	rng := rand.New(rand.NewSource(1))
	randControl := func() Control {
		return Control{
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(3) == 0,
			Up:    rng.Intn(2) == 0,
			Down:  rng.Intn(4) == 0,
		}
	}

	hits := 0
	for i := 0; i < 5000; i++ {
		res := w.Step(rng.Float64()*0.08, randControl(), randControl())
		if res.Contact.Hit {
			hits++
		}

		c, s := w.Circle, w.Square
		require.True(t, c.Pos.X >= c.Radius && c.Pos.X <= testBounds.W-c.Radius, "step %d circle x=%v", i, c.Pos.X)
		require.True(t, c.Pos.Y >= c.Radius && c.Pos.Y <= testBounds.H-c.Radius, "step %d circle y=%v", i, c.Pos.Y)
		require.True(t, s.Pos.X >= s.Half && s.Pos.X <= testBounds.W-s.Half, "step %d square x=%v", i, s.Pos.X)
		require.True(t, s.Pos.Y >= s.Half && s.Pos.Y <= testBounds.H-s.Half, "step %d square y=%v", i, s.Pos.Y)
	}
	t.Logf("contacts: %d", hits)
}

func TestStepIgnoresNonFiniteDt(t *testing.T) {
	w := NewWorld(testBounds, DefaultParams())

	res := w.Step(math.NaN(), Control{Left: true}, Control{})
	assert.Zero(t, res.Dt)
	res = w.Step(math.Inf(1), Control{}, Control{})
	assert.Equal(t, w.Params.MaxDt, res.Dt)

	for _, v := range []float64{w.Circle.Pos.X, w.Circle.Pos.Y, w.Square.Pos.X, w.Square.Pos.Y} {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "position %v", v)
	}
}

func TestStepCollidesBodies(t *testing.T) {
	p := DefaultParams()
	p.G0, p.K = 0, 0
	w := NewWorld(testBounds, p)
	w.Square.Pos = Vec2{X: 400, Y: 385}

	res := w.Step(1.0/60, Control{}, Control{Down: true})

	require.True(t, res.Contact.Hit)
	assert.Greater(t, res.Contact.Impulse, 0.0)
	assert.Greater(t, w.Circle.Vel.Y, 0.0, "circle is pushed down")
}

func TestReset(t *testing.T) {
	w := NewWorld(testBounds, DefaultParams())
	for i := 0; i < 10; i++ {
		w.Step(0.016, Control{Right: true}, Control{Left: true})
	}
	w.Reset()

	fresh := NewWorld(testBounds, DefaultParams())
	assert.Equal(t, fresh.Circle, w.Circle)
	assert.Equal(t, fresh.Square, w.Square)
	assert.Zero(t, w.Steps)
}
