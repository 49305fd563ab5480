package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file turns SVG fixtures into scattered point sets. It is not a full
// (or even correct) SVG parser: it finds whatever the first polygon is and
// returns its vertexes as coordinate slices. If anything goes wrong, it
// panics via log.Fatalf.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (x, y []float64) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		px, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", parts[0], err)
		}
		py, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", parts[1], err)
		}
		x = append(x, px)
		y = append(y, py)
	}
	return x, y
}

// Some ad hoc point-set generators.

// gridPoints lays out a w-by-h integer lattice in row-major order, except
// that the third point is swapped with the start of the second row so the
// seed triangle isn't collinear.
func gridPoints(w, h int) (x, y []float64) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			x = append(x, float64(i))
			y = append(y, float64(j))
		}
	}
	x[2], x[w] = x[w], x[2]
	y[2], y[w] = y[w], y[2]
	return x, y
}

// ringPoints places n points on a circle plus one at the center.
func ringPoints(n int, radius float64) (x, y []float64) {
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x = append(x, radius*math.Cos(angle))
		y = append(y, radius*math.Sin(angle))
	}
	x = append(x, 0)
	y = append(y, 0)
	return x, y
}

// randomPoints draws n points uniformly from the unit square, with a fixed
// seed so failures reproduce.
func randomPoints(n int, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		x = append(x, rng.Float64())
		y = append(y, rng.Float64())
	}
	return x, y
}
