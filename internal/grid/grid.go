// Package grid provides the row-major sample grids passed between the
// stages of the bitmapgen pipeline.
package grid

import (
	"errors"
	"fmt"
)

// Common errors for grid operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrDimensionMismatch is returned when two grids that must share a
	// size do not.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

// Grid is a Width×Height array of samples stored in row-major order.
//
// The cell at (x, y) lives at Cells[y*Width+x]. Y grows downward, so (0, 0)
// is the top-left corner.
type Grid[T any] struct {
	Width  int
	Height int
	Cells  []T
}

// New creates a zeroed grid with the given dimensions.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid[T]{
		Width:  width,
		Height: height,
		Cells:  make([]T, width*height),
	}, nil
}

// At returns the sample at (x, y). It panics if (x, y) is outside the grid.
func (g *Grid[T]) At(x, y int) T {
	return g.Cells[y*g.Width+x]
}

// Set stores v at (x, y). It panics if (x, y) is outside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.Cells[y*g.Width+x] = v
}

// Row returns the samples of row y, sharing storage with the grid.
// Returns nil if y is out of bounds.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.Height {
		return nil
	}
	start := y * g.Width
	return g.Cells[start : start+g.Width]
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid[T]{Width: g.Width, Height: g.Height, Cells: cells}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// SameSize returns ErrDimensionMismatch unless a and b have identical
// width and height.
func SameSize[A, B any](a *Grid[A], b *Grid[B]) error {
	if a.Width != b.Width || a.Height != b.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.Width, a.Height, b.Width, b.Height)
	}
	return nil
}
