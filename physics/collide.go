package physics

import "github.com/jakecoffman/cp"

// Contact describes one circle-square collision.
type Contact struct {
	Hit bool
	// Normal points from the square towards the circle.
	Normal Vec2
	Depth  float64
	// Impulse is zero when the bodies were already separating.
	Impulse float64
}

// ResolveCircleSquare separates an overlapping circle and square and applies
// an equal-mass restitution impulse along the contact normal.
func ResolveCircleSquare(c *Circle, s *Square, e float64) Contact {
	lo, hi := s.Min(), s.Max()
	closest := Vec2{
		X: cp.Clamp(c.Pos.X, lo.X, hi.X),
		Y: cp.Clamp(c.Pos.Y, lo.Y, hi.Y),
	}

	d := c.Pos.Sub(closest)
	dist2 := d.LengthSq()
	if dist2 >= c.Radius*c.Radius {
		return Contact{}
	}

	dist := d.Length()
	n := Vec2{X: 0, Y: 1}
	if dist > 0 {
		n = d.Normalize()
	}

	depth := c.Radius - dist
	half := n.Mult(depth * 0.5)
	c.Pos = c.Pos.Add(half)
	s.Pos = s.Pos.Sub(half)

	ct := Contact{Hit: true, Normal: n, Depth: depth}

	vn := c.Vel.Sub(s.Vel).Dot(n)
	if vn > 0 {
		return ct
	}

	j := -(1 + e) * vn * 0.5
	c.Vel = c.Vel.Add(n.Mult(j))
	s.Vel = s.Vel.Sub(n.Mult(j))
	ct.Impulse = j
	return ct
}
