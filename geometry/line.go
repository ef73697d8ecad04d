package geometry

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrDegenerateLine is returned when two coincident points are used to
	// construct a line.
	ErrDegenerateLine = errors.New("geometry: coincident points do not define a line")

	// ErrParallelLines is returned when two lines with linearly dependent
	// normals are intersected; no unique intersection point exists.
	ErrParallelLines = errors.New("geometry: lines are parallel or coincident")
)

// Line2D is an infinite line in implicit form A*x + B*y = C. The normal
// (A, B) is never the zero vector for a line built by this package.
type Line2D struct {
	A, B, C float64
}

// LineFromPoints builds the line through p1 and p2.
//
// The normal is the direction vector rotated a quarter turn, so axis-aligned
// inputs produce the canonical forms: a vertical pair yields (1, 0, x) for the
// line x = p1.X, a horizontal pair yields (0, 1, y) for the line y = p1.Y.
// Coincident points return ErrDegenerateLine.
func LineFromPoints(p1, p2 Point2D) (Line2D, error) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	if math.Abs(dx) < Epsilon && math.Abs(dy) < Epsilon {
		return Line2D{}, errors.Wrapf(ErrDegenerateLine, "point (%g, %g) repeated", p1.X, p1.Y)
	}
	a := -dy
	b := dx
	return Line2D{A: a, B: b, C: a*p1.X + b*p1.Y}, nil
}

// LineFromCoordinates builds the line through (x1, y1) and (x2, y2).
func LineFromCoordinates(x1, y1, x2, y2 float64) (Line2D, error) {
	return LineFromPoints(Point2D{X: x1, Y: y1}, Point2D{X: x2, Y: y2})
}

// IntersectLines solves the 2x2 system of the two implicit equations by
// Cramer's rule. A determinant within Epsilon of zero means the lines are
// parallel (possibly coincident) and ErrParallelLines is returned.
func IntersectLines(l1, l2 Line2D) (Point2D, error) {
	det := l1.A*l2.B - l2.A*l1.B
	if math.Abs(det) < Epsilon {
		return Point2D{}, ErrParallelLines
	}
	return Point2D{
		X: (l1.C*l2.B - l2.C*l1.B) / det,
		Y: (l1.A*l2.C - l2.A*l1.C) / det,
	}, nil
}
