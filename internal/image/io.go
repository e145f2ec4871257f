// Package image loads raster images as 8-bit intensity grids and writes
// grids back out as gray PNGs.
//
// Decoders for PNG, JPEG and GIF come from the standard library; BMP, TIFF
// and WebP are registered from golang.org/x/image.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/bitmapgen/internal/grid"
)

// I/O errors.
var (
	// ErrDecode is returned when the byte source is not a recognizable
	// raster format, is truncated, or has no pixels.
	ErrDecode = errors.New("image: decode failed")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load reads and decodes the image file at path. Open failures wrap the os
// error and do not match ErrDecode.
func Load(path string) (*grid.Grid[uint8], error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*grid.Grid[uint8], error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyData)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format, and collapses
// it to one intensity sample per pixel.
func Decode(r io.Reader) (*grid.Grid[uint8], error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	g, err := FromStdImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	return g, nil
}

// EncodePNG writes g as an 8-bit grayscale PNG.
func EncodePNG(w io.Writer, g *grid.Grid[uint8]) error {
	if err := png.Encode(w, ToStdImage(g)); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes g to path as an 8-bit grayscale PNG, replacing any
// existing file.
func SavePNG(path string, g *grid.Grid[uint8]) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodePNG(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
