package internal

import "github.com/golang/geo/r2"

// Mesh is a planar triangulation of a set of nodes, stored as an arena of
// neighbor-list cells. Per node there is a circular, counter-clockwise
// ordered list of neighbor indexes, threaded through flat arrays:
//
//	list[p]  the node index stored in cell p
//	lptr[p]  the cell holding the next neighbor in the same cycle
//	lend[n]  the cell holding node n's last neighbor, the cycle's anchor
//	hull[p]  set on a boundary node's last-neighbor cell
//
// For a boundary node the stored order runs from its first neighbor (the
// next boundary node counter-clockwise around the hull) to its last (the
// previous boundary node); the wrap from last back to first spans the
// region outside the hull and never corresponds to a triangle. The
// reference algorithm marks the last neighbor by negating its index; that
// encoding cannot represent node 0, so the tag lives in the parallel hull
// array instead.
//
// Appends bump-allocate off the end of list/lptr/hull (len(list) plays the
// role of the classical lnew high-water mark), and cells released by edge
// swaps are recycled through an explicit free list.
//
// The coordinate slices are referenced, not copied. A Mesh must not
// outlive them, and it is not safe for concurrent use.
type Mesh struct {
	x, y []float64

	list []int
	lptr []int
	hull []bool
	lend []int
	free []int

	// Derived after construction by the boundary walk.
	boundaryCount int

	// Where the next point location starts; the node inserted most
	// recently, which makes sequential insertion of nearby points cheap.
	searchStart int
}

// NewMesh triangulates the given coordinate sequences. The first three
// points seed the mesh and must not be collinear; every remaining point is
// then inserted in order. Construction either returns a complete,
// invariant-checked mesh or an error, never a partial mesh.
func NewMesh(x, y []float64) (m *Mesh, err error) {
	defer func() {
		if r := HandleMeshPanicRecover(recover()); r != nil {
			m = nil
			err = r
		}
	}()

	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) < 3 {
		return nil, ErrInsufficientNodes
	}

	m = &Mesh{x: x, y: y}
	if err := m.seed(); err != nil {
		return nil, err
	}

	for k := 3; k < len(x); k++ {
		m.addNode(k)
	}

	// Recompute the derived counters and fail loudly if the boundary no
	// longer closes.
	m.BoundaryNodes()
	return m, nil
}

// seed links the first three nodes into a counter-clockwise triangle whose
// three edges are all hull edges. Each node's cycle is [next, prev] with
// prev carrying the hull tag, exactly the layout every later insertion
// assumes.
func (m *Mesh) seed() error {
	var a, b, c int
	switch {
	case !left(m.x[0], m.y[0], m.x[1], m.y[1], m.x[2], m.y[2]):
		// The input winds clockwise; the seed triangle is 0, 2, 1.
		a, b, c = 0, 2, 1
	case !left(m.x[1], m.y[1], m.x[0], m.y[0], m.x[2], m.y[2]):
		// Already counter-clockwise.
		a, b, c = 0, 1, 2
	default:
		// Both orientation tests passed, which only happens when the cross
		// product is exactly zero both ways.
		return ErrCollinearSeed
	}

	m.lend = make([]int, 3)
	for _, t := range [3][3]int{{a, b, c}, {b, c, a}, {c, a, b}} {
		n, next, prev := t[0], t[1], t[2]
		p1 := m.alloc(next, false)
		p2 := m.alloc(prev, true)
		m.lptr[p1] = p2
		m.lptr[p2] = p1
		m.lend[n] = p2
	}
	m.searchStart = 2
	return nil
}

// addNode inserts node k, which must not coincide with any node already in
// the mesh, and restores the Delaunay property around it.
func (m *Mesh) addNode(k int) {
	m.lend = append(m.lend, -1)

	loc := m.locate(m.searchStart, m.x[k], m.y[k])
	if loc.Exterior {
		m.boundaryAdd(k, loc.I1, loc.I2)
	} else {
		for _, v := range [3]int{loc.I1, loc.I2, loc.I3} {
			if m.x[v] == m.x[k] && m.y[v] == m.y[k] {
				fatalf(ErrMeshInvariant, "node %d duplicates node %d at (%g, %g)", k, v, m.x[k], m.y[k])
			}
		}
		m.interiorAdd(k, loc.I1, loc.I2, loc.I3)
	}

	m.restoreDelaunay(k)
	m.checkFan(k)
	m.searchStart = k
}

// alloc takes a cell off the free list, or extends the arena, and stores a
// neighbor entry in it. The cell's lptr is left for the caller to thread.
func (m *Mesh) alloc(node int, onHull bool) int {
	if n := len(m.free); n > 0 {
		p := m.free[n-1]
		m.free = m.free[:n-1]
		m.list[p] = node
		m.lptr[p] = -1
		m.hull[p] = onHull
		return p
	}
	m.list = append(m.list, node)
	m.lptr = append(m.lptr, -1)
	m.hull = append(m.hull, onHull)
	return len(m.list) - 1
}

// insertAfter links a new neighbor cell for node nb directly after cell p
// in its cycle, and returns the new cell.
func (m *Mesh) insertAfter(p, nb int, onHull bool) int {
	q := m.alloc(nb, onHull)
	m.lptr[q] = m.lptr[p]
	m.lptr[p] = q
	return q
}

// cellOf returns the cell holding neighbor nb in the cycle anchored at
// lend cell lpl. The cycle is circular, so the search always terminates,
// unless nb is absent, which means the mesh is corrupt.
func (m *Mesh) cellOf(lpl, nb int) int {
	p := lpl
	for {
		p = m.lptr[p]
		if m.list[p] == nb {
			return p
		}
		if p == lpl {
			fatalf(ErrMeshInvariant, "node %d is not a neighbor in the cycle anchored at cell %d", nb, lpl)
		}
	}
}

// removeNeighbor unlinks node nb from n's cycle and recycles the cell. If
// the cycle anchor pointed at the removed cell it is re-anchored at the
// predecessor.
func (m *Mesh) removeNeighbor(n, nb int) {
	target := m.cellOf(m.lend[n], nb)

	// Find the predecessor by walking the cycle around.
	prev := target
	for m.lptr[prev] != target {
		prev = m.lptr[prev]
	}

	m.lptr[prev] = m.lptr[target]
	if m.lend[n] == target {
		m.lend[n] = prev
	}
	m.free = append(m.free, target)
}

// first returns node n's first neighbor: for a boundary node, the next
// boundary node counter-clockwise around the hull.
func (m *Mesh) first(n int) int {
	return m.list[m.lptr[m.lend[n]]]
}

// last returns node n's last neighbor: for a boundary node, the previous
// boundary node counter-clockwise around the hull.
func (m *Mesh) last(n int) int {
	return m.list[m.lend[n]]
}

// NodeCount returns the number of nodes in the mesh.
func (m *Mesh) NodeCount() int {
	return len(m.lend)
}

// Position returns the coordinates of node n.
func (m *Mesh) Position(n int) r2.Point {
	return r2.Point{X: m.x[n], Y: m.y[n]}
}

// IsBoundaryNode reports whether node n lies on the hull.
func (m *Mesh) IsBoundaryNode(n int) bool {
	return m.hull[m.lend[n]]
}

// Neighbors returns node n's neighbor indexes in counter-clockwise order,
// starting at its first neighbor.
func (m *Mesh) Neighbors(n int) []int {
	var nbrs []int
	lpl := m.lend[n]
	for p := m.lptr[lpl]; ; p = m.lptr[p] {
		nbrs = append(nbrs, m.list[p])
		if p == lpl {
			return nbrs
		}
	}
}

// Triangles enumerates every triangle as a counter-clockwise index triple.
// A triangle is emitted by its smallest vertex: consecutive neighbors
// (a, b) of n form triangle (n, a, b). The pair starting at a hull-tagged
// cell is a boundary node's wrap into the exterior and spans no triangle.
func (m *Mesh) Triangles() [][3]int {
	var tris [][3]int
	for n := range m.lend {
		lpl := m.lend[n]
		p := lpl
		for {
			q := m.lptr[p]
			if !m.hull[p] {
				a, b := m.list[p], m.list[q]
				if n < a && n < b {
					tris = append(tris, [3]int{n, a, b})
				}
			}
			p = q
			if p == lpl {
				break
			}
		}
	}
	return tris
}

// TriangleMetrics computes the derived geometry of the triangle with the
// given vertex indexes. Triangles are values recomputed on demand; nothing
// is cached in the mesh.
func (m *Mesh) TriangleMetrics(t [3]int) *Triangle {
	return NewTriangle(m.Position(t[0]), m.Position(t[1]), m.Position(t[2]))
}

// Validate re-runs the structural invariants: the boundary cycle closes,
// the counters satisfy Euler's relations, every triangle is
// counter-clockwise with nonzero area, and every stored index is in
// range. It returns rather than panics, since callers use it to probe
// meshes they already hold.
func (m *Mesh) Validate() (err error) {
	defer func() {
		if r := HandleMeshPanicRecover(recover()); r != nil {
			err = r
		}
	}()

	for p, nb := range m.list {
		if m.isFree(p) {
			continue
		}
		if nb < 0 || nb >= len(m.lend) {
			fatalf(ErrMeshInvariant, "cell %d stores out-of-range node %d", p, nb)
		}
	}

	bnodes := m.BoundaryNodes()
	tris := m.Triangles()
	if want := 2*m.NodeCount() - len(bnodes) - 2; len(tris) != want {
		fatalf(ErrMeshInvariant, "have %d triangles, Euler's formula requires %d", len(tris), want)
	}

	for _, t := range tris {
		if !left(m.x[t[0]], m.y[t[0]], m.x[t[1]], m.y[t[1]], m.x[t[2]], m.y[t[2]]) {
			fatalf(ErrMeshInvariant, "triangle %v is clockwise", t)
		}
		if m.TriangleMetrics(t).Area == 0 {
			fatalf(ErrMeshInvariant, "triangle %v has zero area", t)
		}
	}
	return nil
}

func (m *Mesh) isFree(p int) bool {
	for _, f := range m.free {
		if f == p {
			return true
		}
	}
	return false
}
