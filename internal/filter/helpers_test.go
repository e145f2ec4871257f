package filter

import (
	"testing"

	"github.com/gogpu/bitmapgen/internal/grid"
)

// Test helper functions shared across filter tests.

// newTestGrid creates a grid filled with v.
func newTestGrid(t *testing.T, w, h int, v uint8) *grid.Grid[uint8] {
	t.Helper()
	g, err := grid.New[uint8](w, h)
	if err != nil {
		t.Fatalf("grid.New(%d, %d): %v", w, h, err)
	}
	g.Fill(v)
	return g
}

// fillRect sets every cell of the [x0,x1)×[y0,y1) rectangle to v.
func fillRect(g *grid.Grid[uint8], x0, y0, x1, y1 int, v uint8) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Set(x, y, v)
		}
	}
}

// foreground returns the coordinates of every Foreground cell.
func foreground(g *grid.Grid[uint8]) []grid.Point {
	var pts []grid.Point
	g.Scan(func(p grid.Point, v uint8) bool {
		if v == Foreground {
			pts = append(pts, p)
		}
		return true
	})
	return pts
}
