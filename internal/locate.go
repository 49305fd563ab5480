package internal

// Location is the result of locating a point against the mesh. For a
// point inside the hull, I1, I2, I3 are the vertex indexes of the
// enclosing triangle in counter-clockwise order. For a point outside, I1
// and I2 are the leftmost and rightmost boundary nodes visible from the
// point (so the hull arc from I1 counter-clockwise to I2 is entirely
// visible), I3 is -1, and Exterior is set.
type Location struct {
	I1, I2, I3 int
	Exterior   bool
}

// How many steps the walking searches may take before we conclude the
// topology is corrupt. A correct walk visits each triangle at most once.
func (m *Mesh) stepLimit() int {
	return 4*m.NodeCount() + 8
}

// Locate finds the triangle containing (px, py), or the visible boundary
// arc when the point is outside the hull. The search walks the mesh from
// the start node, so a start near the query is cheap; any node index is
// valid.
func (m *Mesh) Locate(start int, px, py float64) (loc Location, err error) {
	defer func() {
		if r := HandleMeshPanicRecover(recover()); r != nil {
			err = r
		}
	}()
	if start < 0 || start >= m.NodeCount() {
		fatalf(ErrMeshInvariant, "start node %d out of range", start)
	}
	return m.locate(start, px, py), nil
}

// locate narrows to the wedge of n0's neighbor fan containing the point,
// then hops across triangle edges until the point is bracketed on all
// three sides or the walk leaves the hull.
func (m *Mesh) locate(n0 int, px, py float64) Location {
	a, b, c, inside := m.coneSearch(n0, px, py)
	if !inside {
		return m.exteriorScan(n0, px, py)
	}

	// Lawson walk. The candidate triangle (a, b, c) is counter-clockwise;
	// cross whichever directed edge the point lies strictly right of, into
	// the neighboring triangle, until no edge rejects the point.
	for i := 0; ; i++ {
		if i > m.stepLimit() {
			fatalf(ErrMeshInvariant, "point location for (%g, %g) did not terminate; %s", px, py, m.neighborString(n0))
		}

		switch {
		case !left(m.x[a], m.y[a], m.x[b], m.y[b], px, py):
			a, b, c = m.crossEdge(a, b, px, py)
		case !left(m.x[b], m.y[b], m.x[c], m.y[c], px, py):
			a, b, c = m.crossEdge(b, c, px, py)
		case !left(m.x[c], m.y[c], m.x[a], m.y[a], px, py):
			a, b, c = m.crossEdge(c, a, px, py)
		default:
			return Location{I1: a, I2: b, I3: c}
		}
		if a < 0 {
			// Walked off the hull; b holds the boundary node to scan from.
			return m.exteriorScan(b, px, py)
		}
	}
}

// coneSearch scans the neighbor fan of n0 for the wedge containing the
// point. Consecutive neighbors (n1, n2) bound the point's wedge when the
// point is left of the ray to n1 and strictly right of the ray to n2; the
// wedge then names the candidate triangle (n0, n1, n2). A boundary node's
// wrap wedge spans the exterior, so finding no wedge there means the point
// is outside the hull.
func (m *Mesh) coneSearch(n0 int, px, py float64) (a, b, c int, inside bool) {
	lpl := m.lend[n0]
	p := m.lptr[lpl]
	for {
		if m.hull[p] {
			break
		}
		q := m.lptr[p]
		n1, n2 := m.list[p], m.list[q]
		if left(m.x[n0], m.y[n0], m.x[n1], m.y[n1], px, py) &&
			!left(m.x[n0], m.y[n0], m.x[n2], m.y[n2], px, py) {
			return n0, n1, n2, true
		}
		if p == lpl {
			break
		}
		p = q
	}
	if !m.IsBoundaryNode(n0) {
		// An interior fan covers the whole plane around n0, so the only way
		// to fall through is a query coinciding with n0 itself (every cross
		// product is exactly zero) or corrupted cycles.
		fatalf(ErrMeshInvariant, "no wedge at interior node %d contains (%g, %g); %s", n0, px, py, m.neighborString(n0))
	}
	return 0, 0, 0, false
}

// crossEdge moves the walk across directed edge u->v, which the query
// point lies strictly right of. The triangle on that side is (v, u, d)
// with d the neighbor following u in v's cycle. When u->v is a hull edge
// there is nothing on the other side and the walk reports exterior by
// returning a negative first vertex.
func (m *Mesh) crossEdge(u, v int, px, py float64) (int, int, int) {
	p := m.cellOf(m.lend[v], u)
	if m.hull[p] {
		return -1, u, -1
	}
	d := m.list[m.lptr[p]]
	return v, u, d
}

// exteriorScan resolves a point outside the hull to its visible boundary
// arc. An edge is visible when the point lies strictly right of it; by
// convexity the visible edges form one contiguous run, whose extreme
// nodes bound every node the new point could be joined to.
func (m *Mesh) exteriorScan(nb int, px, py float64) Location {
	limit := m.stepLimit()

	// Find a visible boundary edge. A point collinear with a hull edge
	// sees neither that edge nor anything behind it; forward tells us
	// whether the point lies ahead of the run (keep scanning counter-
	// clockwise) or behind it (turn around), so collinear stretches of
	// boundary cannot bounce the scan forever.
	u, v := nb, m.first(nb)
	backward := false
	for i := 0; ; i++ {
		if i > limit {
			fatalf(ErrMeshInvariant, "no boundary edge is visible from exterior point (%g, %g)", px, py)
		}
		if !left(m.x[u], m.y[u], m.x[v], m.y[v], px, py) {
			break
		}
		if !backward && m.onRay(u, v, px, py) && !forward(m.x[u], m.y[u], m.x[v], m.y[v], px, py) {
			backward = true
		}
		if backward {
			u, v = m.last(u), u
		} else {
			u, v = v, m.first(v)
		}
	}

	// Extend counter-clockwise to the rightmost visible node.
	rm := v
	for i := 0; ; i++ {
		if i > limit {
			fatalf(ErrMeshInvariant, "visibility scan from (%g, %g) did not close", px, py)
		}
		w := m.first(rm)
		if left(m.x[rm], m.y[rm], m.x[w], m.y[w], px, py) {
			break
		}
		rm = w
	}

	// Extend clockwise to the leftmost visible node.
	lm := u
	for i := 0; ; i++ {
		if i > limit {
			fatalf(ErrMeshInvariant, "visibility scan from (%g, %g) did not close", px, py)
		}
		w := m.last(lm)
		if left(m.x[w], m.y[w], m.x[lm], m.y[lm], px, py) {
			break
		}
		lm = w
	}

	return Location{I1: lm, I2: rm, I3: -1, Exterior: true}
}

// onRay reports whether the point is exactly on the line through u and v.
func (m *Mesh) onRay(u, v int, px, py float64) bool {
	return (m.x[v]-m.x[u])*(py-m.y[u]) == (px-m.x[u])*(m.y[v]-m.y[u])
}
