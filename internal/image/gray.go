package image

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/bitmapgen/internal/grid"
)

// FromStdImage collapses img to one 8-bit intensity sample per pixel.
//
// Gray images are copied row by row. Anything else is composited over a
// white page with draw.Draw into an *image.Gray, which applies the standard
// luma weights, so transparent pixels read as background.
func FromStdImage(img image.Image) (*grid.Grid[uint8], error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	g, err := grid.New[uint8](width, height)
	if err != nil {
		return nil, err
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(bounds)
		draw.Draw(gray, bounds, image.White, image.Point{}, draw.Src)
		draw.Draw(gray, bounds, img, bounds.Min, draw.Over)
	}

	for y := range height {
		srcStart := (bounds.Min.Y-gray.Rect.Min.Y+y)*gray.Stride + (bounds.Min.X - gray.Rect.Min.X)
		copy(g.Row(y), gray.Pix[srcStart:srcStart+width])
	}
	return g, nil
}

// ToStdImage wraps a copy of g in an *image.Gray anchored at the origin.
func ToStdImage(g *grid.Grid[uint8]) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		copy(gray.Pix[y*gray.Stride:], g.Row(y))
	}
	return gray
}
