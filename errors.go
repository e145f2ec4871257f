package bitmapgen

import (
	"errors"

	"github.com/gogpu/bitmapgen/internal/emit"
	"github.com/gogpu/bitmapgen/internal/grid"
	"github.com/gogpu/bitmapgen/internal/image"
)

// Pipeline errors. Every error returned by this package matches at most one
// of them under errors.Is; all of them end the run.
var (
	// ErrDecode reports an unreadable, truncated or unsupported image.
	ErrDecode = image.ErrDecode

	// ErrDimensionMismatch reports grids of different sizes meeting in one
	// stage. It indicates a bug rather than bad input.
	ErrDimensionMismatch = grid.ErrDimensionMismatch

	// ErrInvalidDimensions reports a bitmap with a non-positive width or
	// height.
	ErrInvalidDimensions = grid.ErrInvalidDimensions

	// ErrInvalidIdentifier reports a type name that is not a Rust identifier.
	ErrInvalidIdentifier = emit.ErrInvalidIdentifier

	// ErrIO reports a failure to read the image or write an output file.
	ErrIO = errors.New("bitmapgen: i/o failed")
)
