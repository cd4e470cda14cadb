package gamemap

// Rect is an axis-aligned room rectangle. X2 and Y2 are inclusive.
type Rect struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// NewRect creates a rectangle from an origin and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects reports whether two rectangles overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the middle tile of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}
