package bitmapgen

import (
	"github.com/gogpu/bitmapgen/internal/filter"
	"github.com/gogpu/bitmapgen/internal/grid"
)

// Bitmap is a grid of 8-bit samples: intensities straight from the loader,
// or Background/Foreground after thresholding.
type Bitmap = grid.Grid[uint8]

// Point is a pixel coordinate with the origin at the top-left corner and
// Y growing downward.
type Point = grid.Point

// Binary sample values.
const (
	Background = filter.Background
	Foreground = filter.Foreground
)

// Fixed pipeline constants.
const (
	// ThresholdCutoff is the smoothed intensity above which a pixel is
	// background.
	ThresholdCutoff = filter.ThresholdCutoff

	// BlurSigma is the standard deviation of the 3-tap smoothing kernel.
	BlurSigma = filter.BlurSigma

	// DenoiseRadius is the half-width of the denoiser's window.
	DenoiseRadius = filter.DenoiseRadius

	// DenoiseBorder is the width of the frame the denoiser never rewrites.
	DenoiseBorder = filter.DenoiseBorder
)

// NewBitmap creates a zeroed bitmap.
func NewBitmap(width, height int) (*Bitmap, error) {
	return grid.New[uint8](width, height)
}
