package bitmapgen

import (
	"errors"
	"fmt"

	"github.com/gogpu/bitmapgen/internal/emit"
	"github.com/gogpu/bitmapgen/internal/filter"
	"github.com/gogpu/bitmapgen/internal/grid"
	"github.com/gogpu/bitmapgen/internal/image"
	"github.com/gogpu/bitmapgen/internal/preview"
)

// Tracing is the result of running the raster stages on one image.
type Tracing struct {
	// Width and Height are the source image dimensions.
	Width  int
	Height int

	// Cleaned is the binary bitmap the points were extracted from.
	Cleaned *Bitmap

	// Points holds the foreground coordinates in row-major order.
	Points []Point
}

// Trace decodes an image and runs it through thresholding, denoising and
// point extraction.
func Trace(data []byte, opts ...Option) (*Tracing, error) {
	src, err := image.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bitmapgen: %w", err)
	}
	return TraceBitmap(src, opts...)
}

// TraceBitmap runs an already decoded intensity bitmap through
// thresholding, denoising and point extraction. src is not modified.
func TraceBitmap(src *Bitmap, opts ...Option) (*Tracing, error) {
	o := buildOptions(opts)
	log := Logger()

	binary := filter.Binarize(src)
	if err := grid.SameSize(binary, src); err != nil {
		return nil, fmt.Errorf("bitmapgen: threshold: %w", err)
	}
	if !filter.IsBinary(binary) {
		return nil, fmt.Errorf("bitmapgen: threshold: %w", filter.ErrNotBinary)
	}
	log.Debug("bitmapgen: thresholded",
		"width", src.Width,
		"height", src.Height,
		"foreground", countForeground(binary))

	cleaned := binary
	if o.denoise {
		dopts := filter.DefaultDenoiseOptions()
		dopts.IncludeCenter = o.includeCenter

		var stats filter.DenoiseStats
		cleaned, stats = filter.Denoise(binary, dopts)
		if err := grid.SameSize(cleaned, binary); err != nil {
			return nil, fmt.Errorf("bitmapgen: denoise: %w", err)
		}
		log.Debug("bitmapgen: denoised",
			"visited", stats.Visited,
			"suppressed", stats.Suppressed,
			"include_center", dopts.IncludeCenter)
	}

	pts := ExtractPoints(cleaned)
	log.Debug("bitmapgen: extracted", "points", len(pts))

	return &Tracing{
		Width:   src.Width,
		Height:  src.Height,
		Cleaned: cleaned,
		Points:  pts,
	}, nil
}

// Request builds the emission request for this tracing.
func (t *Tracing) Request(typeName, dest string) *emit.Request {
	return &emit.Request{
		TypeName:    typeName,
		Destination: dest,
		Width:       t.Width,
		Height:      t.Height,
		Points:      t.Points,
	}
}

// Emit renders the Rust module for this tracing in memory.
func (t *Tracing) Emit(typeName string) ([]byte, error) {
	src, err := emit.Bytes(t.Request(typeName, ""))
	if err != nil {
		return nil, fmt.Errorf("bitmapgen: %w", err)
	}
	return src, nil
}

// Write renders the Rust module and replaces dest with it. An invalid type
// name is reported before dest is touched.
func (t *Tracing) Write(typeName, dest string) error {
	req := t.Request(typeName, dest)
	if err := req.Validate(); err != nil {
		return fmt.Errorf("bitmapgen: %w", err)
	}
	if err := emit.Write(req); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	Logger().Info("bitmapgen: wrote module",
		"path", dest,
		"type", typeName,
		"points", len(t.Points))
	return nil
}

// SaveCleaned writes the cleaned bitmap to path as a gray PNG.
func (t *Tracing) SaveCleaned(path string) error {
	if err := image.SavePNG(path, t.Cleaned); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	Logger().Info("bitmapgen: wrote cleaned bitmap", "path", path)
	return nil
}

// SavePreview plots the points in canvas orientation and writes a PNG to
// path. title is drawn above the plot when non-empty.
func (t *Tracing) SavePreview(path, title string) error {
	opts := preview.DefaultOptions()
	opts.Title = title
	if err := preview.Save(path, t.Width, t.Height, t.Points, opts); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	Logger().Info("bitmapgen: wrote preview", "path", path)
	return nil
}

// Generate reads the image at imagePath, traces it and writes the Rust
// module for typeName to destPath. destPath is only touched once the module
// has been rendered.
func Generate(imagePath, typeName, destPath string, opts ...Option) (*Tracing, error) {
	if err := emit.ValidateIdentifier(typeName); err != nil {
		return nil, fmt.Errorf("bitmapgen: %w", err)
	}

	src, err := image.Load(imagePath)
	if err != nil {
		if errors.Is(err, image.ErrDecode) {
			return nil, fmt.Errorf("bitmapgen: %w", err)
		}
		return nil, fmt.Errorf("%w: read image: %w", ErrIO, err)
	}
	Logger().Debug("bitmapgen: loaded", "path", imagePath)

	t, err := TraceBitmap(src, opts...)
	if err != nil {
		return nil, err
	}

	if err := t.Write(typeName, destPath); err != nil {
		return nil, err
	}
	return t, nil
}

func countForeground(b *Bitmap) int {
	n := 0
	for _, v := range b.Cells {
		if v == Foreground {
			n++
		}
	}
	return n
}
