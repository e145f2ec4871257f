package filter

import (
	"errors"

	"github.com/gogpu/bitmapgen/internal/grid"
)

// Fixed pipeline constants.
const (
	// ThresholdCutoff is the smoothed intensity above which a pixel is
	// background. Pixels at or below it are foreground.
	ThresholdCutoff = 125

	// BlurRadius is the half-width of the smoothing kernel (3 taps).
	BlurRadius = 1

	// BlurSigma is the smoothing kernel's standard deviation. At this value
	// the neighbour weights vanish and the blur is a near-identity pass.
	BlurSigma = 0.05
)

// Sample values of a binary grid.
const (
	Background uint8 = 0
	Foreground uint8 = 255
)

// Threshold classifies every sample of src against ThresholdCutoff.
// Samples greater than the cutoff become Background; all others become
// Foreground, so dark ink on a light page ends up as foreground.
func Threshold(src *grid.Grid[uint8]) *grid.Grid[uint8] {
	dst := &grid.Grid[uint8]{
		Width:  src.Width,
		Height: src.Height,
		Cells:  make([]uint8, len(src.Cells)),
	}
	for i, v := range src.Cells {
		if v > ThresholdCutoff {
			dst.Cells[i] = Background
		} else {
			dst.Cells[i] = Foreground
		}
	}
	return dst
}

// Binarize runs the full thresholding stage: Blur followed by Threshold.
func Binarize(src *grid.Grid[uint8]) *grid.Grid[uint8] {
	return Threshold(Blur(src))
}

// ErrNotBinary is returned when a stage that expects Background/Foreground
// samples receives anything else.
var ErrNotBinary = errors.New("filter: grid is not binary")

// IsBinary reports whether every sample of g is Background or Foreground.
func IsBinary(g *grid.Grid[uint8]) bool {
	for _, v := range g.Cells {
		if v != Background && v != Foreground {
			return false
		}
	}
	return true
}
