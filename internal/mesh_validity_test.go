package internal

// This contains no actual tests. It is a helper for checking that a mesh
// is a valid Delaunay triangulation of its input. The rules are:
//  1. The structural invariants hold (Validate passes).
//  2. The counters satisfy Euler's relations for a triangulated polygon.
//  3. Every triangle is counter-clockwise with nonzero area.
//  4. The boundary, fed back through PolygonArea, is counter-clockwise.
//  5. Every input point is inside or on the hull.
//  6. No node lies strictly inside any triangle's circumcircle.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertValidMesh(t *testing.T, m *Mesh, x, y []float64) {
	require.NoError(t, m.Validate())
	require.Equal(t, len(x), m.NodeCount())

	tris := m.Triangles()
	hull := m.BoundaryNodes()
	assert.Len(t, tris, m.TriangleCount(), "triangle enumeration disagrees with Euler's formula")
	assert.Equal(t, 2*m.NodeCount()-len(hull)-2, m.TriangleCount())
	assert.Equal(t, m.TriangleCount()+m.NodeCount()-1, m.ArcCount())

	for _, tri := range tris {
		a, b, c := tri[0], tri[1], tri[2]
		assert.True(t, left(x[a], y[a], x[b], y[b], x[c], y[c]), "triangle %v is clockwise", tri)
		assert.NotZero(t, m.TriangleMetrics(tri).Area, "triangle %v is degenerate", tri)
	}

	// Boundary round trip: a counter-clockwise hull encloses positive area.
	assert.Greater(t, PolygonArea(x, y, hull), 0.0, "hull %v is not counter-clockwise", hull)

	// Convexity: every node is on or left of every directed hull edge.
	for i, u := range hull {
		v := hull[(i+1)%len(hull)]
		for n := range x {
			assert.True(t, left(x[u], y[u], x[v], y[v], x[n], y[n]),
				"node %d is outside hull edge %d->%d", n, u, v)
		}
	}

	assertDelaunay(t, m, x, y)
}

// assertDelaunay checks the empty-circumcircle property exhaustively. The
// comparison is tolerance based: nodes exactly on a circumcircle (four
// cocircular points have two legal diagonals) must not count as inside.
func assertDelaunay(t *testing.T, m *Mesh, x, y []float64) {
	for _, tri := range m.Triangles() {
		tm := m.TriangleMetrics(tri)
		eps := 1e-9 * (1 + tm.Circumradius)
		for n := range x {
			if n == tri[0] || n == tri[1] || n == tri[2] {
				continue
			}
			d := m.Position(n).Sub(tm.Circumcenter).Norm()
			require.GreaterOrEqual(t, d, tm.Circumradius-eps,
				"node %d is inside the circumcircle of triangle %v", n, tri)
		}
	}
}
