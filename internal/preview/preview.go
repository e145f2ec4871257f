// Package preview plots extracted point sets the way the consuming canvas
// will draw them, with the y axis flipped to a bottom-left origin.
package preview

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/bitmapgen/internal/grid"
)

// ErrEmptyCanvas is returned when the canvas has no area.
var ErrEmptyCanvas = errors.New("preview: empty canvas")

// Options controls the rendered plot.
type Options struct {
	// Title is drawn above the plot. Empty means no title.
	Title string

	// Width is the output width. Height follows the canvas aspect ratio.
	Width vg.Length

	// Color paints every point.
	Color color.Color
}

// DefaultOptions returns 8-inch wide, black-on-white settings.
func DefaultOptions() Options {
	return Options{
		Width: 8 * vg.Inch,
		Color: color.Black,
	}
}

// Canvas converts image-space points to canvas coordinates: x is kept and
// y becomes height-y.
func Canvas(height int, pts []grid.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: float64(p.X), Y: float64(height - p.Y)}
	}
	return xys
}

// newPlot builds the scatter plot of pts on a width×height canvas.
func newPlot(width, height int, pts []grid.Point, opts Options) (*plot.Plot, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, width, height)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = 0, float64(width)
	p.Y.Min, p.Y.Max = 0, float64(height)

	if len(pts) > 0 {
		scatter, err := plotter.NewScatter(Canvas(height, pts))
		if err != nil {
			return nil, fmt.Errorf("preview: scatter: %w", err)
		}
		scatter.GlyphStyle.Shape = draw.BoxGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(0.5)
		scatter.GlyphStyle.Color = opts.Color
		p.Add(scatter)

		// Add widens the axes to the data range; pin them back
		p.X.Min, p.X.Max = 0, float64(width)
		p.Y.Min, p.Y.Max = 0, float64(height)
	}

	return p, nil
}

// size returns the output dimensions for a width×height canvas.
func size(width, height int, opts Options) (vg.Length, vg.Length) {
	w := opts.Width
	if w <= 0 {
		w = DefaultOptions().Width
	}
	return w, w * vg.Length(height) / vg.Length(width)
}

// Render writes a PNG plot of pts on a width×height canvas to w.
func Render(w io.Writer, width, height int, pts []grid.Point, opts Options) error {
	p, err := newPlot(width, height, pts, opts)
	if err != nil {
		return err
	}

	pw, ph := size(width, height, opts)
	wt, err := p.WriterTo(pw, ph, "png")
	if err != nil {
		return fmt.Errorf("preview: render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("preview: write: %w", err)
	}
	return nil
}

// Save writes a PNG plot of pts to path, replacing any existing file.
func Save(path string, width, height int, pts []grid.Point, opts Options) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("preview: create file: %w", err)
	}

	if err := Render(f, width, height, pts, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
