package geometry

import "math"

// AABox2D is an axis-aligned box. A box with MinX > MaxX or MinY > MaxY
// denotes the empty set; its area is zero and intersecting it with anything
// stays empty. Empty boxes are a normal result of Intersect, not an error.
type AABox2D struct {
	MinX, MaxX, MinY, MaxY float64
}

// Empty reports whether the box denotes the empty set.
func (b AABox2D) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Area returns the box area, zero for empty boxes.
func (b AABox2D) Area() float64 {
	w := b.MaxX - b.MinX
	h := b.MaxY - b.MinY
	if w < 0 || h < 0 {
		return 0
	}
	return w * h
}

// Intersect returns the exact intersection of two boxes. Disjoint operands
// produce an empty box.
func (b AABox2D) Intersect(o AABox2D) AABox2D {
	return AABox2D{
		MinX: math.Max(b.MinX, o.MinX),
		MaxX: math.Min(b.MaxX, o.MaxX),
		MinY: math.Max(b.MinY, o.MinY),
		MaxY: math.Min(b.MaxY, o.MaxY),
	}
}

// Merge returns the exact bounding box of the union of two boxes. An empty
// operand leaves the other unchanged.
func (b AABox2D) Merge(o AABox2D) AABox2D {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return AABox2D{
		MinX: math.Min(b.MinX, o.MinX),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}
