package filter

import (
	"sync"

	"github.com/gogpu/bitmapgen/internal/grid"
)

// BlurFilter applies separable Gaussian blur to an intensity grid.
// The horizontal and vertical passes run independently, so the cost is
// O(w*h*k) for a k-tap kernel instead of O(w*h*k²).
type BlurFilter struct {
	// HalfSize is the kernel half-width in pixels (kernel size 2*HalfSize+1).
	HalfSize int

	// Sigma is the Gaussian standard deviation in pixels.
	Sigma float64
}

// NewBlurFilter creates a blur filter with the given half-width and sigma.
func NewBlurFilter(halfSize int, sigma float64) *BlurFilter {
	return &BlurFilter{
		HalfSize: halfSize,
		Sigma:    sigma,
	}
}

// Apply blurs src into a new grid of the same size.
func (f *BlurFilter) Apply(src *grid.Grid[uint8]) *grid.Grid[uint8] {
	dst := &grid.Grid[uint8]{
		Width:  src.Width,
		Height: src.Height,
		Cells:  make([]uint8, len(src.Cells)),
	}
	// sizes match by construction
	_ = f.ApplyInto(dst, src)
	return dst
}

// ApplyInto blurs src into dst. Returns grid.ErrDimensionMismatch if the
// grids differ in size. dst and src must not alias.
//
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row with the 1D kernel
//  2. Vertical pass: convolve each column with the 1D kernel
//
// Samples beyond the grid edge repeat the nearest edge sample.
func (f *BlurFilter) ApplyInto(dst, src *grid.Grid[uint8]) error {
	if err := grid.SameSize(dst, src); err != nil {
		return err
	}

	kernel := GaussianKernel(f.HalfSize, f.Sigma)
	if len(kernel) == 1 {
		copy(dst.Cells, src.Cells)
		return nil
	}

	temp := getTempBuffer(len(src.Cells))
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, kernel)
	blurVertical(temp, dst, kernel)
	return nil
}

// Blur applies the pipeline's fixed smoothing pass (BlurRadius, BlurSigma).
func Blur(src *grid.Grid[uint8]) *grid.Grid[uint8] {
	return NewBlurFilter(BlurRadius, BlurSigma).Apply(src)
}

// blurHorizontal convolves each row of src into temp.
func blurHorizontal(src *grid.Grid[uint8], temp []float64, kernel []float64) {
	halfKernel := KernelCenter(len(kernel))
	width := src.Width

	for y := range src.Height {
		row := src.Row(y)
		out := temp[y*width : (y+1)*width]

		for x := range width {
			var v float64
			for k, weight := range kernel {
				kx := clampInt(x+k-halfKernel, 0, width-1)
				v += float64(row[kx]) * weight
			}
			out[x] = v
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float64, dst *grid.Grid[uint8], kernel []float64) {
	halfKernel := KernelCenter(len(kernel))
	width := dst.Width
	height := dst.Height

	for y := range height {
		out := dst.Row(y)
		for x := range width {
			var v float64
			for k, weight := range kernel {
				ky := clampInt(y+k-halfKernel, 0, height-1)
				v += temp[ky*width+x] * weight
			}
			out[x] = clampUint8(v)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float64
}

// Temporary buffer pool for the horizontal pass.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float64, 0, 512*512)}
	},
}

// getTempBuffer returns a zeroed buffer of exactly size elements.
func getTempBuffer(size int) []float64 {
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if cap(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float64, size)
	}

	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float64) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 4096*4096 {
		tempBufferPool.Put(&floatBuffer{data: buf[:0]})
	}
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
