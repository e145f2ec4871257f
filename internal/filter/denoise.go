package filter

import "github.com/gogpu/bitmapgen/internal/grid"

// Denoiser defaults.
const (
	// DenoiseRadius is the half-width of the summing window (11×11).
	DenoiseRadius = 5

	// DenoiseBorder is the number of outermost rows and columns that are
	// never rewritten.
	DenoiseBorder = 2

	// DenoiseLimit is the largest window sum a foreground pixel may have
	// and survive. One foreground sample sums to exactly this.
	DenoiseLimit = 255
)

// DenoiseOptions controls the neighbourhood-sum filter.
type DenoiseOptions struct {
	// Radius is the window half-width.
	Radius int

	// Border is the width of the frame left untouched on every side.
	Border int

	// IncludeCenter counts the pixel itself in its window sum. With it set,
	// a foreground pixel survives only when no other foreground pixel lies
	// in its window. Without it, one foreground neighbour is tolerated.
	IncludeCenter bool
}

// DefaultDenoiseOptions returns the pipeline's denoiser settings.
func DefaultDenoiseOptions() DenoiseOptions {
	return DenoiseOptions{
		Radius:        DenoiseRadius,
		Border:        DenoiseBorder,
		IncludeCenter: true,
	}
}

// DenoiseStats reports what a denoise pass changed.
type DenoiseStats struct {
	// Visited is the number of pixels inside the rewritten region.
	Visited int

	// Suppressed is the number of foreground pixels forced to background.
	Suppressed int
}

// Denoise suppresses pixels inside dense foreground clusters and returns the
// cleaned grid. src is not modified.
func Denoise(src *grid.Grid[uint8], opts DenoiseOptions) (*grid.Grid[uint8], DenoiseStats) {
	dst := &grid.Grid[uint8]{
		Width:  src.Width,
		Height: src.Height,
		Cells:  make([]uint8, len(src.Cells)),
	}
	// sizes match by construction
	stats, _ := DenoiseInto(dst, src, opts)
	return dst, stats
}

// DenoiseInto writes the cleaned version of src into dst. Returns
// grid.ErrDimensionMismatch if the grids differ in size. dst and src must
// not alias.
//
// For every pixel at least opts.Border cells away from each edge, the
// samples of the (2*Radius+1)² window around it are summed; window cells
// outside the grid count as zero. A sum above DenoiseLimit turns the pixel
// to Background, otherwise it keeps its value. Pixels in the border frame
// are copied unchanged. Sums are always taken from src, so the result does
// not depend on visiting order.
func DenoiseInto(dst, src *grid.Grid[uint8], opts DenoiseOptions) (DenoiseStats, error) {
	var stats DenoiseStats
	if err := grid.SameSize(dst, src); err != nil {
		return stats, err
	}

	copy(dst.Cells, src.Cells)

	r := max(opts.Radius, 0)
	b := max(opts.Border, 0)

	for y := b; y < src.Height-b; y++ {
		for x := b; x < src.Width-b; x++ {
			stats.Visited++

			sum := windowSum(src, x, y, r)
			if !opts.IncludeCenter {
				sum -= int(src.At(x, y))
			}

			if sum > DenoiseLimit {
				if src.At(x, y) != Background {
					stats.Suppressed++
				}
				dst.Set(x, y, Background)
			}
		}
	}

	return stats, nil
}

// windowSum adds up the samples of the square window of half-width r
// centred on (cx, cy), clipped to the grid.
func windowSum(g *grid.Grid[uint8], cx, cy, r int) int {
	x0 := max(cx-r, 0)
	x1 := min(cx+r, g.Width-1)
	y0 := max(cy-r, 0)
	y1 := min(cy+r, g.Height-1)

	sum := 0
	for y := y0; y <= y1; y++ {
		row := g.Row(y)
		for _, v := range row[x0 : x1+1] {
			sum += int(v)
		}
	}
	return sum
}
