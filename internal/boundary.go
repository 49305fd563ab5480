package internal

// BoundaryNodes walks the hull counter-clockwise and returns the boundary
// node sequence, starting from the lowest-numbered boundary node. Each
// boundary node's first neighbor is the next node along the hull, so the
// walk is a chain of first-neighbor hops; failing to return to the start
// within the node count means the boundary no longer closes, which is a
// fatal corruption.
func (m *Mesh) BoundaryNodes() []int {
	start := 0
	for !m.IsBoundaryNode(start) {
		start++
		if start == m.NodeCount() {
			fatalf(ErrMeshInvariant, "mesh has no boundary nodes")
		}
	}

	nodes := []int{start}
	for n := m.first(start); n != start; n = m.first(n) {
		nodes = append(nodes, n)
		if len(nodes) > m.NodeCount() {
			fatalf(ErrMeshInvariant, "boundary traversal did not close within %d steps", m.NodeCount())
		}
	}

	m.boundaryCount = len(nodes)
	return nodes
}

// BoundaryNodeCount returns the number of hull nodes.
func (m *Mesh) BoundaryNodeCount() int {
	if m.boundaryCount == 0 {
		m.BoundaryNodes()
	}
	return m.boundaryCount
}

// TriangleCount derives the triangle total from Euler's formula for a
// triangulated polygon with the current hull.
func (m *Mesh) TriangleCount() int {
	return 2*m.NodeCount() - m.BoundaryNodeCount() - 2
}

// ArcCount derives the number of arcs (undirected edges) the same way.
func (m *Mesh) ArcCount() int {
	return m.TriangleCount() + m.NodeCount() - 1
}
