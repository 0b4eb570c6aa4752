package physics

import "github.com/jakecoffman/cp"

// Vec2 is a 2D vector in playfield pixels, +Y down. It is chipmunk's vector
// so Add, Sub, Mult, Dot, LengthSq and Normalize come from cp.
type Vec2 = cp.Vector
