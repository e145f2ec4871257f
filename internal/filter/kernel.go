package filter

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GaussianKernel generates a 1D Gaussian kernel of size 2*halfSize+1 with the
// given standard deviation. The kernel is normalized so all values sum to 1.
//
// For halfSize <= 0 or sigma <= 0, returns a single-element kernel [1.0]
// (identity).
func GaussianKernel(halfSize int, sigma float64) []float64 {
	if halfSize <= 0 || sigma <= 0 {
		return []float64{1.0}
	}

	size := halfSize*2 + 1
	kernel := make([]float64, size)

	// G(x) = exp(-x²/(2σ²)); the 1/(σ√(2π)) factor cancels on normalization
	twoSigmaSq := 2 * sigma * sigma
	for i := range kernel {
		x := float64(i - halfSize)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
	}

	if sum := floats.Sum(kernel); sum > 0 {
		floats.Scale(1/sum, kernel)
	}

	return kernel
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}
