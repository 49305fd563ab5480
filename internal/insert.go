package internal

// Mutators that grow the mesh by one node. Both enders leave every cycle
// consistent on return; restoreDelaunay then swaps diagonals until the
// empty-circumcircle property holds locally again. These run only from
// addNode: the mesh owns its own mutation, and callers see insertion and
// queries only.

// interiorAdd splits the triangle (i1, i2, i3), which contains node k,
// into three triangles sharing k. In each vertex's cycle k lands between
// the other two vertexes; k's own cycle is the triangle itself.
func (m *Mesh) interiorAdd(k, i1, i2, i3 int) {
	m.insertAfter(m.cellOf(m.lend[i1], i2), k, false)
	m.insertAfter(m.cellOf(m.lend[i2], i3), k, false)
	m.insertAfter(m.cellOf(m.lend[i3], i1), k, false)

	p1 := m.alloc(i1, false)
	p2 := m.alloc(i2, false)
	p3 := m.alloc(i3, false)
	m.lptr[p1] = p2
	m.lptr[p2] = p3
	m.lptr[p3] = p1
	m.lend[k] = p3
}

// boundaryAdd joins node k, which lies outside the hull, to every
// boundary node on the visible arc from lm counter-clockwise to rm. The
// arc's interior nodes leave the boundary; k takes their place on it,
// between lm and rm.
func (m *Mesh) boundaryAdd(k, lm, rm int) {
	// Collect the visible arc before touching any links.
	arc := []int{lm}
	for n := lm; n != rm; {
		n = m.first(n)
		arc = append(arc, n)
		if len(arc) > m.NodeCount() {
			fatalf(ErrMeshInvariant, "visible boundary arc from %d to %d does not close", lm, rm)
		}
	}

	// k's cycle runs counter-clockwise from rm around the outside to lm,
	// which is the arc reversed. rm becomes k's first neighbor (the next
	// boundary node after k) and lm its hull-tagged last (the previous).
	prev := -1
	var head int
	for i := len(arc) - 1; i >= 0; i-- {
		p := m.alloc(arc[i], i == 0)
		if prev >= 0 {
			m.lptr[prev] = p
		} else {
			head = p
		}
		prev = p
	}
	m.lptr[prev] = head
	m.lend[k] = prev

	// lm: k becomes the first neighbor, its new outgoing boundary edge.
	m.insertAfter(m.lend[lm], k, false)

	// Interior-ized arc nodes: k is appended after the old hull-tagged
	// cell, closing the fan; the tag comes off and the anchor moves to k.
	for _, n := range arc[1 : len(arc)-1] {
		m.hull[m.lend[n]] = false
		m.lend[n] = m.insertAfter(m.lend[n], k, false)
	}

	// rm: k replaces its previous boundary neighbor as the hull-tagged
	// last entry.
	m.hull[m.lend[rm]] = false
	m.lend[rm] = m.insertAfter(m.lend[rm], k, true)
}

// swap replaces the diagonal io1-io2 of the strictly convex quadrilateral
// (io1, in2, io2, in1) with in1-in2. Only interior edges are ever
// swapped, so no hull tags move.
func (m *Mesh) swap(in1, in2, io1, io2 int) {
	m.removeNeighbor(io1, io2)
	m.removeNeighbor(io2, io1)
	m.insertAfter(m.cellOf(m.lend[in1], io1), in2, false)
	m.insertAfter(m.cellOf(m.lend[in2], io2), in1, false)
}

// checkFan verifies that no triangle incident to the freshly inserted
// node k is degenerate. A point landing exactly on a hull edge splits its
// triangle into a zero-area sliver that the swap pass cannot remove (a
// hull edge has no opposite node to swap toward), so the degeneracy has
// to be caught here, after the swaps settle, for construction to fail
// instead of returning a mesh that fails Validate. Swaps only ever create
// triangles incident to k, so scanning k's fan covers every triangle the
// insertion touched.
func (m *Mesh) checkFan(k int) {
	lpl := m.lend[k]
	p := lpl
	for {
		q := m.lptr[p]
		if !m.hull[p] {
			a, b := m.list[p], m.list[q]
			if m.TriangleMetrics([3]int{k, a, b}).Area == 0 {
				fatalf(ErrMeshInvariant, "node %d at (%g, %g) forms zero-area triangle (%d %d %d); %s",
					k, m.x[k], m.y[k], k, a, b, m.neighborString(k))
			}
		}
		p = q
		if p == lpl {
			return
		}
	}
}

// restoreDelaunay marches around the freshly inserted node k testing each
// edge opposite k against the circumcircle criterion, swapping violators.
// A swap splices the far node into k's cycle right where the march is
// standing, and the march re-tests from there, so one pass settles the
// whole fan. Termination is the classical argument: every swap strictly
// increases the minimum angle of the affected pair, so no configuration
// repeats; the step cap turns a broken mesh into an error instead of a
// spin.
func (m *Mesh) restoreDelaunay(k int) {
	posF := m.lptr[m.lend[k]]
	io2 := m.list[posF]
	posO1 := m.lptr[posF]
	io1 := m.list[posO1]

	limit := 8*m.NodeCount() + 16
	for i := 0; ; i++ {
		if i > limit {
			fatalf(ErrMeshInvariant, "swap pass around node %d did not settle; %s", k, m.neighborString(k))
		}

		// The node opposite edge io2-io1 from k, if the edge is interior.
		p := m.cellOf(m.lend[io1], io2)
		if !m.hull[p] {
			in1 := m.list[m.lptr[p]]
			if m.swapTest(in1, k, io1, io2) {
				m.swap(in1, k, io1, io2)
				io1 = in1
				posO1 = m.cellOf(m.lend[k], in1)
				continue
			}
		}

		// Advance to the next neighbor pair. The march is complete after
		// the cell wraps to the start (interior k) or reaches k's
		// hull-tagged last neighbor (boundary k).
		if posO1 == posF || m.hull[posO1] {
			return
		}
		io2 = io1
		posO1 = m.lptr[posO1]
		io1 = m.list[posO1]
	}
}
