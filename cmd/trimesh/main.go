package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meshprep/trimesh"
)

// Demo of triangulation from the command line. Input on stdin should be
// newline separated points in the form "x y"; the first three must not be
// collinear. Prints the mesh counts and the hull.
func main() {
	x, y := readPoints(os.Stdin)
	fmt.Printf("Read %d points\n", len(x))

	mesh, err := trimesh.Triangulate(x, y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "triangulation failed: %v\n", err)
		os.Exit(1)
	}

	hull := mesh.BoundaryNodes()
	fmt.Printf("nodes: %d\n", mesh.NodeCount())
	fmt.Printf("boundary nodes: %d\n", mesh.BoundaryNodeCount())
	fmt.Printf("triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("arcs: %d\n", mesh.ArcCount())
	fmt.Printf("hull area: %g\n", trimesh.PolygonArea(x, y, hull))

	var worst float64 = 1
	for _, t := range mesh.Triangles() {
		if ar := mesh.TriangleMetrics(t).AspectRatio; ar < worst {
			worst = ar
		}
	}
	fmt.Printf("worst aspect ratio: %g\n", worst)
}

func readPoints(in *os.File) (x, y []float64) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintf(os.Stderr, "skipping malformed line %q\n", line)
			continue
		}
		px, err1 := strconv.ParseFloat(parts[0], 64)
		py, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			fmt.Fprintf(os.Stderr, "skipping malformed line %q\n", line)
			continue
		}
		x = append(x, px)
		y = append(y, py)
	}
	return x, y
}
