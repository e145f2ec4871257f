// Package emit renders extracted point sets as Rust source implementing the
// Map and Shape traits of a ratatui canvas.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/bitmapgen/internal/grid"
)

// DefaultColor is the ratatui Color variant a freshly constructed map uses.
const DefaultColor = "White"

// Emission errors.
var (
	// ErrInvalidIdentifier is returned when the type name cannot be used as
	// a Rust identifier.
	ErrInvalidIdentifier = errors.New("emit: invalid identifier")

	// ErrInvalidRequest is returned when dimensions or points are
	// inconsistent.
	ErrInvalidRequest = errors.New("emit: invalid request")
)

// Request is everything needed to produce one module. Rendering the same
// Request always yields the same bytes.
type Request struct {
	// TypeName names the generated struct. It must be a Rust identifier.
	TypeName string

	// Destination is the file the module is written to.
	Destination string

	// Width and Height are emitted verbatim as WIDTH and HEIGHT.
	Width  int
	Height int

	// Points is emitted as the map() literal, in order.
	Points []grid.Point
}

// templateData is the value the module template is executed against.
type templateData struct {
	TypeName     string
	DefaultColor string
	Width        int
	Height       int
	Points       []grid.Point
}

// Validate checks the type name, the dimensions and that every point lies
// within them.
func (r *Request) Validate() error {
	if err := ValidateIdentifier(r.TypeName); err != nil {
		return err
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidRequest, r.Width, r.Height)
	}
	for i, p := range r.Points {
		if p.X < 0 || p.X >= r.Width || p.Y < 0 || p.Y >= r.Height {
			return fmt.Errorf("%w: point %d %v outside %dx%d", ErrInvalidRequest, i, p, r.Width, r.Height)
		}
	}
	return nil
}

// Render writes the module source for r to w.
func Render(w io.Writer, r *Request) error {
	if err := r.Validate(); err != nil {
		return err
	}

	data := templateData{
		TypeName:     r.TypeName,
		DefaultColor: DefaultColor,
		Width:        r.Width,
		Height:       r.Height,
		Points:       r.Points,
	}
	if err := moduleTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("emit: execute template: %w", err)
	}
	return nil
}

// Bytes renders the module source for r into memory.
func Bytes(r *Request) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders r and replaces r.Destination with the result. Nothing is
// written if rendering fails. A failure during the write itself can leave a
// partial file behind.
func Write(r *Request) error {
	src, err := Bytes(r)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(r.Destination))
	if err != nil {
		return fmt.Errorf("emit: create file: %w", err)
	}

	if _, err := f.Write(src); err != nil {
		_ = f.Close()
		return fmt.Errorf("emit: write %s: %w", r.Destination, err)
	}

	return f.Close()
}
