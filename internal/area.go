package internal

// PolygonArea returns the signed area bounded by the closed polygonal
// curve through the listed nodes, in order, with the closing edge from the
// last node back to the first implied. Counter-clockwise curves enclose
// positive area, so a constraint curve can be validated by checking the
// sign. Fewer than three nodes enclose nothing.
//
// This is a pure function over the coordinate slices; it needs no mesh.
func PolygonArea(x, y []float64, nodes []int) float64 {
	if len(nodes) < 3 {
		return 0
	}

	var area float64
	n2 := nodes[len(nodes)-1]
	for _, n := range nodes {
		n1 := n2
		n2 = n
		area += (x[n2] - x[n1]) * (y[n1] + y[n2])
	}

	// The sum is twice the negated signed area.
	return -area / 2
}
