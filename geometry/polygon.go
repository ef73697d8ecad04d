package geometry

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ConvexPolygon2D is an immutable convex polygon with vertices in
// counter-clockwise order. Zero vertices denote the empty set. Consecutive
// vertices never coincide for polygons built by this package.
type ConvexPolygon2D struct {
	Vertices []Point2D
}

// VertexCount returns the number of vertices.
func (p ConvexPolygon2D) VertexCount() int {
	return len(p.Vertices)
}

// Empty reports whether the polygon denotes the empty set.
func (p ConvexPolygon2D) Empty() bool {
	return len(p.Vertices) == 0
}

// OrientedBox builds the 4-vertex CCW polygon of a rectangle centered at
// (x, y) with width w, height h and rotation r radians (CCW positive).
//
// Arguments:
//   - x, y: rectangle center.
//   - w, h: side lengths; must be non-negative.
//   - r: rotation about the center, radians.
//
// Returns:
//   - The corner polygon. A zero dimension collapses coincident corners and
//     yields a degenerate zero-area polygon rather than an error.
//   - An error when w or h is negative.
func OrientedBox(x, y, w, h, r float64) (ConvexPolygon2D, error) {
	if w < 0 || h < 0 {
		return ConvexPolygon2D{}, errors.Errorf("geometry: negative box dimensions %g x %g", w, h)
	}
	sin, cos := math.Sincos(r)
	dx := [4]float64{-w / 2, w / 2, w / 2, -w / 2}
	dy := [4]float64{-h / 2, -h / 2, h / 2, h / 2}
	corners := make([]Point2D, 0, 4)
	for i := 0; i < 4; i++ {
		corners = append(corners, Point2D{
			X: x + dx[i]*cos - dy[i]*sin,
			Y: y + dx[i]*sin + dy[i]*cos,
		})
	}
	return ConvexPolygon2D{Vertices: collapseVertices(corners)}, nil
}

// Area returns the polygon area via the shoelace summation. Fewer than three
// vertices report zero.
func (p ConvexPolygon2D) Area() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	return math.Abs(sum) / 2
}

// Intersect clips p against every edge of q (Sutherland-Hodgman on a convex
// clip shape) and returns the intersection polygon. Both operands must be
// convex and CCW. No overlap yields the empty polygon; an overlap that
// collapses below three distinct vertices (touching edges or corners) is also
// reported as empty rather than as a zero-area sliver.
func (p ConvexPolygon2D) Intersect(q ConvexPolygon2D) ConvexPolygon2D {
	if len(p.Vertices) < 3 || len(q.Vertices) < 3 {
		return ConvexPolygon2D{}
	}
	out := p.Vertices
	n := len(q.Vertices)
	for i := 0; i < n && len(out) > 0; i++ {
		out = clipHalfPlane(out, q.Vertices[i], q.Vertices[(i+1)%n])
	}
	out = collapseVertices(out)
	if len(out) < 3 {
		return ConvexPolygon2D{}
	}
	return ConvexPolygon2D{Vertices: out}
}

// clipHalfPlane keeps the part of the CCW vertex loop lying on the interior
// side (left) of the directed edge a->b. Side tests use Epsilon so vertices
// on the boundary are kept, avoiding spurious zero-length edges when edges
// are tangent or nearly parallel.
func clipHalfPlane(verts []Point2D, a, b Point2D) []Point2D {
	boundary, err := LineFromPoints(a, b)
	if err != nil {
		// Degenerate clip edge constrains nothing.
		return verts
	}
	out := make([]Point2D, 0, len(verts)+1)
	n := len(verts)
	for i := 0; i < n; i++ {
		cur := verts[i]
		next := verts[(i+1)%n]
		curIn := cross(a, b, cur) >= -Epsilon
		nextIn := cross(a, b, next) >= -Epsilon
		if curIn {
			out = append(out, cur)
		}
		if curIn == nextIn {
			continue
		}
		edge, err := LineFromPoints(cur, next)
		if err != nil {
			continue
		}
		pt, err := IntersectLines(edge, boundary)
		if err != nil {
			// Parallel edge never crosses the boundary; the endpoint
			// side tests already classified it.
			continue
		}
		out = append(out, pt)
	}
	return out
}

// Merge returns a convex polygon covering the union of p and q: the convex
// hull of both vertex sets together with all pairwise edge crossings. This is
// an over-approximation whenever the true union is non-convex; exact union
// area is area(p) + area(q) - area(p.Intersect(q)). An empty operand leaves
// the other unchanged.
func (p ConvexPolygon2D) Merge(q ConvexPolygon2D) ConvexPolygon2D {
	if p.Empty() {
		return q
	}
	if q.Empty() {
		return p
	}
	pts := make([]Point2D, 0, len(p.Vertices)+len(q.Vertices)+8)
	pts = append(pts, p.Vertices...)
	pts = append(pts, q.Vertices...)
	pts = append(pts, edgeCrossings(p, q)...)
	return ConvexPolygon2D{Vertices: convexHull(pts)}
}

// edgeCrossings collects the proper intersection points between the edge sets
// of two polygons.
func edgeCrossings(p, q ConvexPolygon2D) []Point2D {
	var pts []Point2D
	np := len(p.Vertices)
	nq := len(q.Vertices)
	for i := 0; i < np; i++ {
		a1 := p.Vertices[i]
		a2 := p.Vertices[(i+1)%np]
		for j := 0; j < nq; j++ {
			b1 := q.Vertices[j]
			b2 := q.Vertices[(j+1)%nq]
			if pt, ok := segmentCrossing(a1, a2, b1, b2); ok {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

// segmentCrossing reports the crossing point of segments a1a2 and b1b2 when
// they properly intersect (endpoints strictly on opposite sides both ways).
func segmentCrossing(a1, a2, b1, b2 Point2D) (Point2D, bool) {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	if d1*d2 >= -Epsilon || d3*d4 >= -Epsilon {
		return Point2D{}, false
	}
	la, err := LineFromPoints(a1, a2)
	if err != nil {
		return Point2D{}, false
	}
	lb, err := LineFromPoints(b1, b2)
	if err != nil {
		return Point2D{}, false
	}
	pt, err := IntersectLines(la, lb)
	if err != nil {
		return Point2D{}, false
	}
	return pt, true
}

// convexHull builds the CCW convex hull of a point set by Andrew's monotone
// chain, dropping collinear points so the hull has no degenerate edges.
func convexHull(pts []Point2D) []Point2D {
	sorted := make([]Point2D, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	uniq := sorted[:0]
	for _, pt := range sorted {
		if len(uniq) == 0 || !coincident(uniq[len(uniq)-1], pt) {
			uniq = append(uniq, pt)
		}
	}
	if len(uniq) < 3 {
		return append([]Point2D(nil), uniq...)
	}

	hull := make([]Point2D, 0, 2*len(uniq))
	// Lower hull, then upper hull; together they wind counter-clockwise.
	for _, pt := range uniq {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= Epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	lower := len(hull) + 1
	for i := len(uniq) - 2; i >= 0; i-- {
		pt := uniq[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= Epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	return hull[:len(hull)-1]
}

// collapseVertices removes consecutive near-coincident vertices, including
// the wrap-around pair, preserving order.
func collapseVertices(verts []Point2D) []Point2D {
	if len(verts) == 0 {
		return nil
	}
	out := make([]Point2D, 0, len(verts))
	for _, v := range verts {
		if len(out) == 0 || !coincident(out[len(out)-1], v) {
			out = append(out, v)
		}
	}
	for len(out) > 1 && coincident(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
