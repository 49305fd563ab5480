package internal

import (
	"math"

	"github.com/golang/geo/r2"
)

// Triangle is the derived geometry of one mesh triangle. Triangles are
// plain values computed on demand from three vertex positions; they carry
// no identity and are never stored in the mesh.
type Triangle struct {
	A, B, C r2.Point

	Circumcenter r2.Point
	Circumradius float64

	// Signed area; positive for counter-clockwise vertex order.
	Area float64

	// In-radius over circumradius: 0.5 for an equilateral triangle,
	// approaching 0 as the triangle degenerates to a sliver.
	AspectRatio float64
}

// NewTriangle computes the metrics for the triangle with the given
// vertexes. A degenerate (zero-area) triangle gets aspect ratio 0 and no
// circumcircle.
func NewTriangle(a, b, c r2.Point) *Triangle {
	t := &Triangle{A: a, B: b, C: c}

	// Edge vectors opposite each vertex.
	u := [3]float64{c.X - b.X, a.X - c.X, b.X - a.X}
	v := [3]float64{c.Y - b.Y, a.Y - c.Y, b.Y - a.Y}

	t.Area = (u[0]*v[1] - u[1]*v[0]) / 2
	if t.Area == 0 {
		t.AspectRatio = 0
		return t
	}

	// The circumcenter solves the perpendicular-bisector system; in closed
	// form its coordinates are cross products of the squared vertex
	// distances with the edge vectors, over four times the area.
	sq := [3]float64{
		a.X*a.X + a.Y*a.Y,
		b.X*b.X + b.Y*b.Y,
		c.X*c.X + c.Y*c.Y,
	}
	var fx, fy float64
	for i := range sq {
		fx -= sq[i] * v[i]
		fy += sq[i] * u[i]
	}
	t.Circumcenter = r2.Point{X: fx / (4 * t.Area), Y: fy / (4 * t.Area)}
	t.Circumradius = t.Circumcenter.Sub(a).Norm()

	perimeter := math.Hypot(u[0], v[0]) + math.Hypot(u[1], v[1]) + math.Hypot(u[2], v[2])
	t.AspectRatio = 2 * math.Abs(t.Area) / (perimeter * t.Circumradius)
	return t
}
