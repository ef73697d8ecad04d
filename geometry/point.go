package geometry

// Point2D is an immutable 2-D coordinate.
type Point2D struct {
	X, Y float64
}

// cross returns the z-component of (b-a) x (c-a). Positive means c lies to
// the left of the directed line a->b, which for CCW polygons is the interior
// side.
func cross(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// coincident reports whether two points are within Epsilon on both axes.
func coincident(a, b Point2D) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < Epsilon && dy < Epsilon
}
