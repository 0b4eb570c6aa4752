package physics

// Body is the point-mass state shared by both shapes.
type Body struct {
	Pos Vec2
	Vel Vec2
	Acc Vec2
}

// Circle is the arrow-driven body.
type Circle struct {
	Body
	Radius float64
}

// Square is the WASD-driven body, axis-aligned and centered on Pos.
type Square struct {
	Body
	Half float64
}

// Min is the top-left corner.
func (s *Square) Min() Vec2 { return Vec2{X: s.Pos.X - s.Half, Y: s.Pos.Y - s.Half} }

// Max is the bottom-right corner.
func (s *Square) Max() Vec2 { return Vec2{X: s.Pos.X + s.Half, Y: s.Pos.Y + s.Half} }

// Control is the set of held directions driving one body.
type Control struct {
	Left, Right, Up, Down bool
}

func (c Control) accel(p Params) Vec2 {
	var a Vec2
	if c.Left {
		a.X -= p.InputAccel
	}
	if c.Right {
		a.X += p.InputAccel
	}
	if c.Up {
		a.Y -= p.InputAccel
	}
	if c.Down {
		a.Y += p.InputAccel
	}
	return a
}

// Gravity returns the downward acceleration at depth y. It grows linearly
// below Y0 and is capped at AyLimit.
func Gravity(y float64, p Params) float64 {
	dy := y - p.Y0
	if dy < 0 {
		dy = 0
	}
	g := p.G0 + p.K*dy
	if g > p.AyLimit {
		g = p.AyLimit
	}
	return g
}

// Integrate advances b by dt: acceleration into velocity, drag, then
// velocity into position.
func Integrate(b *Body, in Control, dt float64, p Params) {
	b.Acc = in.accel(p)
	b.Acc.Y += Gravity(b.Pos.Y, p)

	b.Vel = b.Vel.Add(b.Acc.Mult(dt))
	b.Vel = b.Vel.Mult(p.Drag)
	b.Pos = b.Pos.Add(b.Vel.Mult(dt))
}
