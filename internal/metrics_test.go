package internal

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriangle_RightTriangle(t *testing.T) {
	tri := NewTriangle(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1})

	assert.InDelta(t, 0.5, tri.Area, 1e-12)
	// The circumcenter of a right triangle is the midpoint of its
	// hypotenuse.
	assert.InDelta(t, 0.5, tri.Circumcenter.X, 1e-12)
	assert.InDelta(t, 0.5, tri.Circumcenter.Y, 1e-12)
	assert.InDelta(t, math.Sqrt(0.5), tri.Circumradius, 1e-12)
}

func TestNewTriangle_Equilateral(t *testing.T) {
	h := math.Sqrt(3) / 2
	tri := NewTriangle(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0.5, Y: h})

	assert.InDelta(t, h/2, tri.Area, 1e-12)
	assert.InDelta(t, 0.5, tri.Circumcenter.X, 1e-12)
	assert.InDelta(t, 1/math.Sqrt(3), tri.Circumradius, 1e-12)
	// An equilateral triangle has the best possible aspect ratio.
	assert.InDelta(t, 0.5, tri.AspectRatio, 1e-12)
}

func TestNewTriangle_Clockwise(t *testing.T) {
	ccw := NewTriangle(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1})
	cw := NewTriangle(r2.Point{X: 0, Y: 0}, r2.Point{X: 0, Y: 1}, r2.Point{X: 1, Y: 0})

	assert.InDelta(t, -ccw.Area, cw.Area, 1e-12)
	// Orientation does not change the circumcircle or the quality measure.
	assert.InDelta(t, ccw.Circumradius, cw.Circumradius, 1e-12)
	assert.InDelta(t, ccw.AspectRatio, cw.AspectRatio, 1e-12)
}

func TestNewTriangle_Degenerate(t *testing.T) {
	tri := NewTriangle(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2})

	assert.Zero(t, tri.Area)
	assert.Zero(t, tri.AspectRatio)
}

func TestNewTriangle_Sliver(t *testing.T) {
	// A long thin triangle scores far below the equilateral optimum.
	tri := NewTriangle(r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 0}, r2.Point{X: 5, Y: 0.01})

	assert.Greater(t, tri.AspectRatio, 0.0)
	assert.Less(t, tri.AspectRatio, 0.01)
}

func TestMesh_TriangleMetrics(t *testing.T) {
	x, y := randomPoints(25, 9)
	m, err := NewMesh(x, y)
	require.NoError(t, err)

	for _, tri := range m.Triangles() {
		tm := m.TriangleMetrics(tri)
		assert.Greater(t, tm.Area, 0.0, "mesh triangles are counter-clockwise")
		assert.Greater(t, tm.AspectRatio, 0.0)
		assert.LessOrEqual(t, tm.AspectRatio, 0.5+1e-12)
		// Each vertex sits on the circumcircle.
		for _, p := range []r2.Point{tm.A, tm.B, tm.C} {
			assert.InDelta(t, tm.Circumradius, p.Sub(tm.Circumcenter).Norm(), 1e-9)
		}
	}
}
