package grid

import "fmt"

// Point is an integer pixel coordinate in image space (origin top-left,
// Y down).
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Scan visits every cell in row-major order: Y ascending, then X ascending.
// Iteration stops early if fn returns false.
func (g *Grid[T]) Scan(fn func(p Point, v T) bool) {
	for y := range g.Height {
		row := g.Row(y)
		for x, v := range row {
			if !fn(Point{X: x, Y: y}, v) {
				return
			}
		}
	}
}
