package internal

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/meshprep/trimesh/dbg"
)

// Padding around the point set so hull edges don't hug the image border.
const dbgDrawPadding = 40

// Helper to draw and print the triangulation in the terminal (iTerm only)
// for debugging. Triangles are filled by aspect ratio, so slivers that are
// about to cause trouble show up dark.
func (m *Mesh) dbgDraw(scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range m.lend {
		minX = math.Min(minX, m.x[i])
		minY = math.Min(minY, m.y[i])
		maxX = math.Max(maxX, m.x[i])
		maxY = math.Max(maxY, m.y[i])
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad and
	// scale into place.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, t := range m.Triangles() {
		tri := m.TriangleMetrics(t)
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		// Aspect ratio tops out at 0.5, so double it for the fill.
		c.SetRGBA(0.3, 0.2, 1, 2*tri.AspectRatio)
		c.Fill()
	}

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 0)
	for _, t := range m.Triangles() {
		tri := m.TriangleMetrics(t)
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.Stroke()
	}

	// Save to temp file, print to terminal, and dump the hull cycle so the
	// image can be matched to node indexes.
	path := fmt.Sprintf("/tmp/trimesh_%s.png", dbg.Name(m))
	c.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
	for _, n := range m.BoundaryNodes() {
		fmt.Println(m.neighborString(n))
	}
}

// neighborString renders one node's neighbor cycle for debugging, coloring
// boundary neighbors red and interior ones green, with the node itself in
// cyan. Invariant-failure panics embed this so the offending cycle is
// visible in the error.
func (m *Mesh) neighborString(n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", aurora.Cyan(fmt.Sprintf("node %d", n)))
	lpl := m.lend[n]
	for p := m.lptr[lpl]; ; p = m.lptr[p] {
		label := fmt.Sprintf(" %d", m.list[p])
		if m.hull[p] {
			b.WriteString(aurora.Red(label + "*").String())
		} else {
			b.WriteString(aurora.Green(label).String())
		}
		if p == lpl {
			break
		}
	}
	return b.String()
}
