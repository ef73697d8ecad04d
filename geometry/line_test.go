package geometry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFromPoints(t *testing.T) {
	tests := []struct {
		name    string
		p1, p2  Point2D
		a, b, c float64
	}{
		{
			name: "general diagonal",
			p1:   Point2D{1, 2}, p2: Point2D{3, 4},
			a: -2, b: 2, c: 2,
		},
		{
			name: "vertical pair gives x = 1",
			p1:   Point2D{1, 2}, p2: Point2D{1, 1},
			a: 1, b: 0, c: 1,
		},
		{
			name: "horizontal pair gives y = 2",
			p1:   Point2D{1, 2}, p2: Point2D{2, 2},
			a: 0, b: 1, c: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := LineFromPoints(tt.p1, tt.p2)
			require.NoError(t, err)
			assert.InDelta(t, tt.a, l.A, 1e-12)
			assert.InDelta(t, tt.b, l.B, 1e-12)
			assert.InDelta(t, tt.c, l.C, 1e-12)

			// Both defining points must satisfy the implicit equation.
			assert.InDelta(t, l.C, l.A*tt.p1.X+l.B*tt.p1.Y, 1e-12)
			assert.InDelta(t, l.C, l.A*tt.p2.X+l.B*tt.p2.Y, 1e-12)
		})
	}
}

func TestLineFromPointsDegenerate(t *testing.T) {
	_, err := LineFromPoints(Point2D{1, 1}, Point2D{1, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateLine))
}

func TestIntersectLines(t *testing.T) {
	l1, err := LineFromCoordinates(0, 0, 1, 1)
	require.NoError(t, err)
	l2, err := LineFromCoordinates(0, 1, 1, 0)
	require.NoError(t, err)

	pt, err := IntersectLines(l1, l2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pt.X, 1e-12)
	assert.InDelta(t, 0.5, pt.Y, 1e-12)
}

func TestIntersectLinesParallel(t *testing.T) {
	l1, err := LineFromCoordinates(0, 0, 1, 1)
	require.NoError(t, err)
	l2, err := LineFromCoordinates(0, 1, 1, 2)
	require.NoError(t, err)

	_, err = IntersectLines(l1, l2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParallelLines))

	// Coincident lines are parallel too.
	_, err = IntersectLines(l1, l1)
	assert.True(t, errors.Is(err, ErrParallelLines))
}
