// Package filter provides the raster stages of the bitmapgen pipeline.
//
// The stages operate on 8-bit intensity grids and never modify their input:
//   - Gaussian blur (separable, edge-extended)
//   - Inverted binary threshold (dark ink becomes foreground)
//   - Neighbourhood-sum denoising of dense foreground clusters
//
// Every stage allocates an output grid with the same dimensions as its input.
package filter
