package physics

// Body sizes, in pixels.
const (
	DefaultRadius = 70
	DefaultHalf   = 50
)

// World holds the two bodies and the playfield they live in.
type World struct {
	Bounds Bounds
	Params Params

	Circle Circle
	Square Square

	Steps uint64
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Dt          float64
	Contact     Contact
	CircleWalls Walls
	SquareWalls Walls
}

// NewWorld places both bodies at their starting positions inside b.
func NewWorld(b Bounds, p Params) *World {
	w := &World{Bounds: b, Params: p}
	w.Reset()
	return w
}

// Reset puts the circle at the center and the square in the upper-left
// quadrant, both at rest.
func (w *World) Reset() {
	w.Circle = Circle{
		Body:   Body{Pos: Vec2{X: w.Bounds.W / 2, Y: w.Bounds.H / 2}},
		Radius: DefaultRadius,
	}
	w.Square = Square{
		Body: Body{Pos: Vec2{X: w.Bounds.W / 4, Y: w.Bounds.H / 4}},
		Half: DefaultHalf,
	}
	w.Steps = 0
}

// Step integrates both bodies, resolves their contact and clamps them to the
// walls. Afterwards both shapes lie inside Bounds.
func (w *World) Step(dt float64, circleIn, squareIn Control) StepResult {
	dt = ClampDt(dt, w.Params)

	Integrate(&w.Circle.Body, circleIn, dt, w.Params)
	Integrate(&w.Square.Body, squareIn, dt, w.Params)

	res := StepResult{Dt: dt}
	res.Contact = ResolveCircleSquare(&w.Circle, &w.Square, w.Params.Restitution)
	res.CircleWalls = ClampCircle(&w.Circle, w.Bounds, w.Params.WallRestitution)
	res.SquareWalls = ClampSquare(&w.Square, w.Bounds, w.Params.WallRestitution)

	w.Steps++
	return res
}

// Energy is the summed kinetic energy with unit masses.
func (w *World) Energy() float64 {
	return 0.5*w.Circle.Vel.LengthSq() + 0.5*w.Square.Vel.LengthSq()
}
