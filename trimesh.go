// A constrained two-dimensional Delaunay triangulation package.
//
// This package builds a Delaunay triangulation over an irregularly
// distributed set of planar points by incremental insertion, and exposes
// the finished mesh (point location, boundary enumeration, per-triangle
// metrics) as the basis for bivariate surface fitting layered on top.
package trimesh

import "github.com/meshprep/trimesh/internal"

type Mesh = internal.Mesh
type Triangle = internal.Triangle
type Location = internal.Location

// The error kinds construction can fail with; classify with errors.Is.
var (
	ErrLengthMismatch    = internal.ErrLengthMismatch
	ErrInsufficientNodes = internal.ErrInsufficientNodes
	ErrCollinearSeed     = internal.ErrCollinearSeed
	ErrMeshInvariant     = internal.ErrMeshInvariant
)

// Triangulate builds the Delaunay triangulation of the given points.
//
// The coordinate slices must be the same length, at least three long, and
// the first three points must not be collinear, since they seed the mesh
// every later point is inserted into. The slices are referenced, not
// copied; the mesh must not outlive them, and the points must be distinct.
//
// On any failure the error describes the offending input and no mesh is
// returned; there is no partially triangulated state to recover.
func Triangulate(x, y []float64) (m *Mesh, err error) {
	defer func() {
		recoveredErr := internal.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			m = nil
			err = recoveredErr
		}
	}()
	return internal.NewMesh(x, y)
}

// PolygonArea returns the signed area enclosed by the closed polygonal
// curve passing through the listed nodes in order. A counter-clockwise
// curve has positive area, which is how a boundary or constraint curve's
// orientation is validated before triangulating against it.
func PolygonArea(x, y []float64, nodes []int) float64 {
	return internal.PolygonArea(x, y, nodes)
}
