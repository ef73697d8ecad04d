// Package geometry - 2-D computational geometry for oriented-bounding-box
// overlap metrics: points, implicit lines, axis-aligned boxes and convex
// polygons, with intersection, merge and area operations.
//
// Every type is an immutable value and every operation returns a fresh value,
// so the package is safe to call from any number of goroutines without
// synchronization. Arithmetic is plain float64 with a fixed epsilon tolerance;
// the target is robustness for detection-overlap workloads, not exact rational
// geometry.
package geometry

// Epsilon is the tolerance used for degeneracy detection, parallel-line
// detection, clipping side tests and vertex deduplication. Inputs are expected
// to be in "scene" units (meters, pixels), where this comfortably absorbs the
// round-off introduced by rotation and line-intersection arithmetic.
const Epsilon = 1e-9

// Shape is any value with a measurable area.
type Shape interface {
	Area() float64
}

// Area returns the area of a box or polygon. Empty values report zero.
func Area(s Shape) float64 {
	return s.Area()
}
