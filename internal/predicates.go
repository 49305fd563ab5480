package internal

// The geometric kernel. Every topology decision in the mesh reduces to
// these three tests, so they are kept together in one file; replacing them
// with adaptive-precision versions should never touch the mesh code.
//
// The comparisons are exact, with no tolerance. This matches the reference
// algorithm, and it is what makes the boundary marker bookkeeping sound: a
// point exactly on a line is consistently treated as "left". The price:
// near-collinear input can produce an inconsistent answer and trip a mesh
// invariant, which surfaces as an error rather than a bad mesh.

// left reports whether node (x0, y0) is to the left of, or on, the
// directed line from (x1, y1) to (x2, y2), as seen by an observer at the
// first point facing the second.
func left(x1, y1, x2, y2, x0, y0 float64) bool {
	// Components of the vectors N1->N2 and N1->N0.
	dx1 := x2 - x1
	dy1 := y2 - y1
	dx2 := x0 - x1
	dy2 := y0 - y1

	return dx1*dy2 >= dx2*dy1
}

// forward reports whether C is in the forward half-plane from A toward B,
// that is, whether <A->B, A->C> is non-negative. The boundary visibility
// scan uses it to disambiguate points collinear with a run of hull edges.
func forward(xa, ya, xb, yb, xc, yc float64) bool {
	return (xb-xa)*(xc-xa)+(yb-ya)*(yc-ya) >= 0
}

// swapTest decides whether the quadrilateral diagonal io1-io2 should be
// replaced by in1-in2, where (in1, io1, io2) and (in2, io2, io1) are the
// two triangles sharing the diagonal. True when in1 lies inside the
// circumcircle through in2, io1, io2.
//
// The test is the opposite-angles form: swap when the angles at in1 and
// in2 sum to more than pi. It is algebraically the incircle determinant
// but avoids forming the large products when either angle settles the
// question on its own, and it treats the neutral (cocircular) case as "no
// swap" so that repeated insertions terminate.
func (m *Mesh) swapTest(in1, in2, io1, io2 int) bool {
	dx11 := m.x[io1] - m.x[in1]
	dx12 := m.x[io2] - m.x[in1]
	dx22 := m.x[io2] - m.x[in2]
	dx21 := m.x[io1] - m.x[in2]

	dy11 := m.y[io1] - m.y[in1]
	dy12 := m.y[io2] - m.y[in1]
	dy22 := m.y[io2] - m.y[in2]
	dy21 := m.y[io1] - m.y[in2]

	cos1 := dx11*dx12 + dy11*dy12
	cos2 := dx21*dx22 + dy21*dy22
	if cos1 >= 0 && cos2 >= 0 {
		return false
	}
	if cos1 < 0 && cos2 < 0 {
		return true
	}

	sin1 := dx11*dy12 - dx12*dy11
	sin2 := dx22*dy21 - dx21*dy22
	return sin1*cos2+cos1*sin2 < 0
}
