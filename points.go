package bitmapgen

// ExtractPoints returns the coordinates of every Foreground sample of b in
// row-major order: Y ascending, then X ascending. The same bitmap always
// yields the same sequence.
func ExtractPoints(b *Bitmap) []Point {
	var pts []Point
	b.Scan(func(p Point, v uint8) bool {
		if v == Foreground {
			pts = append(pts, p)
		}
		return true
	})
	return pts
}
