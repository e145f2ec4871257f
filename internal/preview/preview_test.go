package preview

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/bitmapgen/internal/grid"
)

func TestCanvasFlipsY(t *testing.T) {
	pts := []grid.Point{{X: 2, Y: 1}, {X: 0, Y: 0}, {X: 3, Y: 3}}

	got := Canvas(4, pts)

	want := plotter.XYs{{X: 2, Y: 3}, {X: 0, Y: 4}, {X: 3, Y: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Canvas() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPNG(t *testing.T) {
	pts := []grid.Point{{X: 2, Y: 1}, {X: 10, Y: 5}}

	var buf bytes.Buffer
	if err := Render(&buf, 20, 10, pts, DefaultOptions()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() <= b.Dy() {
		t.Errorf("PNG size = %dx%d, want landscape for a 20x10 canvas", b.Dx(), b.Dy())
	}
}

func TestRenderEmptyPointSet(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, 4, 4, nil, DefaultOptions()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Render wrote nothing")
	}
}

func TestRenderEmptyCanvas(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, 0, 4, nil, DefaultOptions())
	if !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Render(0x4) error = %v, want ErrEmptyCanvas", err)
	}
}

func TestNewPlotPinsAxes(t *testing.T) {
	p, err := newPlot(30, 12, []grid.Point{{X: 5, Y: 5}}, DefaultOptions())
	if err != nil {
		t.Fatalf("newPlot failed: %v", err)
	}
	if p.X.Min != 0 || p.X.Max != 30 || p.Y.Min != 0 || p.Y.Max != 12 {
		t.Errorf("axes = [%v,%v]x[%v,%v], want [0,30]x[0,12]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	opts := DefaultOptions()
	opts.Title = "TestShape"

	if err := Save(path, 8, 8, []grid.Point{{X: 1, Y: 1}}, opts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Save didn't create file: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}
