package physics

// Bounds is the playfield, origin top-left.
type Bounds struct {
	W, H float64
}

// Walls is a bitmask of the walls a shape was clamped against.
type Walls uint8

// Wall bits.
const (
	WallLeft Walls = 1 << iota
	WallRight
	WallTop
	WallBottom
)

// Has reports whether any bit of x is set.
func (w Walls) Has(x Walls) bool { return w&x != 0 }

// String lists the touched walls joined by "|", or "none".
func (w Walls) String() string {
	if w == 0 {
		return "none"
	}
	s := ""
	add := func(bit Walls, name string) {
		if !w.Has(bit) {
			return
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	add(WallLeft, "left")
	add(WallRight, "right")
	add(WallTop, "top")
	add(WallBottom, "bottom")
	return s
}

// clampExtent keeps a shape with half-size ext inside b. Velocity pointing
// into a touched wall is reflected and scaled by e.
func clampExtent(body *Body, ext float64, b Bounds, e float64) Walls {
	var hit Walls
	if body.Pos.X < ext {
		body.Pos.X = ext
		if body.Vel.X < 0 {
			body.Vel.X = -body.Vel.X * e
		}
		hit |= WallLeft
	}
	if body.Pos.X > b.W-ext {
		body.Pos.X = b.W - ext
		if body.Vel.X > 0 {
			body.Vel.X = -body.Vel.X * e
		}
		hit |= WallRight
	}
	if body.Pos.Y < ext {
		body.Pos.Y = ext
		if body.Vel.Y < 0 {
			body.Vel.Y = -body.Vel.Y * e
		}
		hit |= WallTop
	}
	if body.Pos.Y > b.H-ext {
		body.Pos.Y = b.H - ext
		if body.Vel.Y > 0 {
			body.Vel.Y = -body.Vel.Y * e
		}
		hit |= WallBottom
	}
	return hit
}

// ClampCircle keeps c inside b, reflecting its velocity off touched walls.
func ClampCircle(c *Circle, b Bounds, e float64) Walls {
	return clampExtent(&c.Body, c.Radius, b, e)
}

// ClampSquare keeps s inside b, reflecting its velocity off touched walls.
func ClampSquare(s *Square, b Bounds, e float64) Walls {
	return clampExtent(&s.Body, s.Half, b, e)
}
