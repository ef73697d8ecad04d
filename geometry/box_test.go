package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxIntersect(t *testing.T) {
	b1 := AABox2D{MinX: 1, MaxX: 3, MinY: 1, MaxY: 3}
	b2 := AABox2D{MinX: 2, MaxX: 4, MinY: 2, MaxY: 4}

	bi := b1.Intersect(b2)
	assert.Equal(t, AABox2D{MinX: 2, MaxX: 3, MinY: 2, MaxY: 3}, bi)
	assert.InDelta(t, 1.0, bi.Area(), 1e-12)

	// Symmetric.
	assert.Equal(t, bi, b2.Intersect(b1))
}

func TestBoxIntersectDisjoint(t *testing.T) {
	b1 := AABox2D{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	b2 := AABox2D{MinX: 2, MaxX: 3, MinY: 2, MaxY: 3}

	bi := b1.Intersect(b2)
	assert.True(t, bi.Empty())
	assert.Zero(t, bi.Area())
}

func TestBoxMerge(t *testing.T) {
	b1 := AABox2D{MinX: 1, MaxX: 3, MinY: 1, MaxY: 3}
	b2 := AABox2D{MinX: 2, MaxX: 4, MinY: 2, MaxY: 4}

	bm := b1.Merge(b2)
	assert.Equal(t, AABox2D{MinX: 1, MaxX: 4, MinY: 1, MaxY: 4}, bm)
}

func TestBoxMergeWithEmpty(t *testing.T) {
	b := AABox2D{MinX: 1, MaxX: 3, MinY: 1, MaxY: 3}
	empty := AABox2D{MinX: 5, MaxX: 4, MinY: 0, MaxY: 1}

	// An empty operand never widens the result.
	assert.Equal(t, b, b.Merge(empty))
	assert.Equal(t, b, empty.Merge(b))
}

func TestBoxIdempotence(t *testing.T) {
	b := AABox2D{MinX: -1, MaxX: 2, MinY: 0.5, MaxY: 3}
	assert.InDelta(t, b.Area(), b.Intersect(b).Area(), 1e-12)
	assert.InDelta(t, b.Area(), b.Merge(b).Area(), 1e-12)
}

func TestBoxAreaPolymorphic(t *testing.T) {
	var s Shape = AABox2D{MinX: 0, MaxX: 2, MinY: 0, MaxY: 3}
	assert.InDelta(t, 6.0, Area(s), 1e-12)
}
