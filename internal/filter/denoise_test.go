package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/bitmapgen/internal/grid"
)

func TestDefaultDenoiseOptions(t *testing.T) {
	opts := DefaultDenoiseOptions()
	want := DenoiseOptions{Radius: 5, Border: 2, IncludeCenter: true}
	if opts != want {
		t.Errorf("DefaultDenoiseOptions() = %+v, want %+v", opts, want)
	}
}

func TestDenoiseIsolatedPixelSurvives(t *testing.T) {
	for _, includeCenter := range []bool{true, false} {
		src := newTestGrid(t, 21, 21, Background)
		src.Set(10, 10, Foreground)

		opts := DefaultDenoiseOptions()
		opts.IncludeCenter = includeCenter
		got, stats := Denoise(src, opts)

		if got.At(10, 10) != Foreground {
			t.Errorf("IncludeCenter=%v: isolated pixel suppressed", includeCenter)
		}
		if stats.Suppressed != 0 {
			t.Errorf("IncludeCenter=%v: Suppressed = %d, want 0", includeCenter, stats.Suppressed)
		}
	}
}

func TestDenoiseSolidBlock(t *testing.T) {
	src := newTestGrid(t, 15, 15, Foreground)

	got, stats := Denoise(src, DefaultDenoiseOptions())

	for y := range 15 {
		for x := range 15 {
			inner := x >= 2 && x < 13 && y >= 2 && y < 13
			want := Foreground
			if inner {
				want = Background
			}
			if v := got.At(x, y); v != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, v, want)
			}
		}
	}
	if stats.Visited != 11*11 {
		t.Errorf("Visited = %d, want %d", stats.Visited, 11*11)
	}
	if stats.Suppressed != 11*11 {
		t.Errorf("Suppressed = %d, want %d", stats.Suppressed, 11*11)
	}
}

func TestDenoiseSumOfExactly255IsKept(t *testing.T) {
	src := newTestGrid(t, 21, 21, Background)
	src.Set(10, 10, Foreground)
	src.Set(12, 10, Foreground)

	opts := DefaultDenoiseOptions()
	opts.IncludeCenter = false

	// each pixel sees exactly one foreground neighbour: sum == 255
	got, stats := Denoise(src, opts)
	if got.At(10, 10) != Foreground || got.At(12, 10) != Foreground {
		t.Errorf("pixels with neighbourhood sum 255 were suppressed")
	}
	if stats.Suppressed != 0 {
		t.Errorf("Suppressed = %d, want 0", stats.Suppressed)
	}

	// counting the centre pushes both sums to 510
	got, stats = Denoise(src, DefaultDenoiseOptions())
	if got.At(10, 10) != Background || got.At(12, 10) != Background {
		t.Errorf("pixels with neighbourhood sum 510 survived")
	}
	if stats.Suppressed != 2 {
		t.Errorf("Suppressed = %d, want 2", stats.Suppressed)
	}
}

func TestDenoiseWindowReach(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   int
		suppress bool
	}{
		{"adjacent", 1, 0, true},
		{"diagonal corner of window", DenoiseRadius, DenoiseRadius, true},
		{"edge of window", -DenoiseRadius, 0, true},
		{"just outside window", DenoiseRadius + 1, 0, false},
		{"just outside window vertically", 0, -(DenoiseRadius + 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestGrid(t, 25, 25, Background)
			src.Set(12, 12, Foreground)
			src.Set(12+tt.dx, 12+tt.dy, Foreground)

			got, _ := Denoise(src, DefaultDenoiseOptions())

			suppressed := got.At(12, 12) == Background
			if suppressed != tt.suppress {
				t.Errorf("centre suppressed = %v, want %v", suppressed, tt.suppress)
			}
		})
	}
}

func TestDenoiseBorderUntouched(t *testing.T) {
	src := newTestGrid(t, 20, 20, Background)
	fillRect(src, 0, 0, 4, 4, Foreground)

	got, _ := Denoise(src, DefaultDenoiseOptions())

	for y := range 4 {
		for x := range 4 {
			want := Foreground
			if x >= 2 && y >= 2 {
				want = Background
			}
			if v := got.At(x, y); v != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, v, want)
			}
		}
	}
}

func TestDenoiseBorderCornerPixel(t *testing.T) {
	src := newTestGrid(t, 12, 12, Background)
	src.Set(0, 0, Foreground)
	src.Set(1, 0, Foreground)
	src.Set(0, 1, Foreground)

	got, stats := Denoise(src, DefaultDenoiseOptions())

	if diff := cmp.Diff(src.Cells, got.Cells); diff != "" {
		t.Errorf("border pixels rewritten (-src +got):\n%s", diff)
	}
	if stats.Suppressed != 0 {
		t.Errorf("Suppressed = %d, want 0", stats.Suppressed)
	}
}

func TestDenoiseReadsIntoBorder(t *testing.T) {
	src := newTestGrid(t, 12, 12, Background)
	src.Set(0, 0, Foreground)
	src.Set(2, 2, Foreground)

	got, _ := Denoise(src, DefaultDenoiseOptions())

	if got.At(2, 2) != Background {
		t.Error("interior pixel ignored a foreground neighbour in the border")
	}
	if got.At(0, 0) != Foreground {
		t.Error("border pixel rewritten")
	}
}

func TestDenoiseSmallGridHasNoInterior(t *testing.T) {
	src := newTestGrid(t, 4, 4, Foreground)

	got, stats := Denoise(src, DefaultDenoiseOptions())

	if stats.Visited != 0 {
		t.Errorf("Visited = %d, want 0", stats.Visited)
	}
	if diff := cmp.Diff(src.Cells, got.Cells); diff != "" {
		t.Errorf("4x4 grid changed (-src +got):\n%s", diff)
	}
}

func TestDenoiseDoesNotModifySource(t *testing.T) {
	src := newTestGrid(t, 15, 15, Foreground)
	before := src.Clone()

	_, _ = Denoise(src, DefaultDenoiseOptions())

	if diff := cmp.Diff(before.Cells, src.Cells); diff != "" {
		t.Errorf("Denoise() modified its input (-before +after):\n%s", diff)
	}
}

func TestDenoiseOrderIndependent(t *testing.T) {
	// Two pixels 3 apart: both see each other in the source, so both go,
	// even though the first one is cleared before the second is visited.
	src := newTestGrid(t, 20, 20, Background)
	src.Set(8, 8, Foreground)
	src.Set(11, 8, Foreground)

	got, _ := Denoise(src, DefaultDenoiseOptions())

	if pts := foreground(got); len(pts) != 0 {
		t.Errorf("foreground = %v, want none", pts)
	}
}

func TestDenoiseIntoMismatch(t *testing.T) {
	src := newTestGrid(t, 10, 10, Background)
	dst := newTestGrid(t, 10, 9, Background)

	_, err := DenoiseInto(dst, src, DefaultDenoiseOptions())
	if !errors.Is(err, grid.ErrDimensionMismatch) {
		t.Errorf("DenoiseInto() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestWindowSumClipsAtEdges(t *testing.T) {
	g := newTestGrid(t, 3, 3, 1)
	if got := windowSum(g, 0, 0, 5); got != 9 {
		t.Errorf("windowSum(0, 0, 5) = %d, want 9", got)
	}
	if got := windowSum(g, 1, 1, 0); got != 1 {
		t.Errorf("windowSum(1, 1, 0) = %d, want 1", got)
	}
}
