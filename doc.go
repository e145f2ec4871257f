// Package bitmapgen traces a raster image into a point cloud and emits it as
// a Rust module for a ratatui canvas.
//
// # Overview
//
// The pipeline turns a scanned drawing (dark ink on a light background) into
// the list of pixel coordinates a terminal canvas should paint. It runs in
// five strictly ordered stages. Intermediate grids stay in memory:
//
//	Loader → Thresholder → Denoiser → PointExtractor → CodeEmitter
//
// # Quick Start
//
//	import "github.com/gogpu/bitmapgen"
//
//	// Trace scorecard.png and write the BoomerangAustralia module
//	_, err := bitmapgen.Generate("scorecard.png", "BoomerangAustralia", "australia.rs")
//
// # Stages
//
// The loader accepts PNG, JPEG, GIF, BMP, TIFF and WebP and collapses colour
// to luma. The thresholder applies a 3-tap Gaussian blur (sigma
// [BlurSigma]) and marks every pixel at or below [ThresholdCutoff] as
// foreground. The denoiser sums an 11×11 window around each pixel that is at
// least [DenoiseBorder] pixels from the edge and clears the pixel when the
// sum exceeds 255, which thins solid regions down to isolated dots. The
// extractor lists the remaining foreground pixels in row-major order.
//
// # Coordinate System
//
// Points use image coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The emitted Shape implementation flips Y (HEIGHT-y) when painting, since
// the canvas origin is bottom-left.
//
// # Logging
//
// bitmapgen is silent by default. See [SetLogger].
package bitmapgen
