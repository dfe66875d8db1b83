// Package geom provides integer grid geometry for terminal cell coordinates.
package geom

// Point is a position on the cell grid. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is a half-open box [A, B): A is the top-left corner, B is one past
// the bottom-right. A valid Rect has A.X <= B.X and A.Y <= B.Y.
type Rect struct {
	A, B Point
}

// NewRect builds a Rect from corner coordinates.
func NewRect(ax, ay, bx, by int) Rect {
	return Rect{A: Point{X: ax, Y: ay}, B: Point{X: bx, Y: by}}
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.B.X - r.A.X
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.B.Y - r.A.Y
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.A.X >= r.B.X || r.A.Y >= r.B.Y
}

// Contains reports whether p lies inside the half-open box.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.A.X && p.X < r.B.X && p.Y >= r.A.Y && p.Y < r.B.Y
}

// Intersects reports whether r and s share at least one cell.
func (r Rect) Intersects(s Rect) bool {
	return r.A.X < s.B.X && s.A.X < r.B.X && r.A.Y < s.B.Y && s.A.Y < r.B.Y
}

// Intersect returns the overlap of r and s. The result is empty (but with
// clamped, non-inverted corners) when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		A: Point{X: max(r.A.X, s.A.X), Y: max(r.A.Y, s.A.Y)},
		B: Point{X: min(r.B.X, s.B.X), Y: min(r.B.Y, s.B.Y)},
	}
	if out.B.X < out.A.X {
		out.B.X = out.A.X
	}
	if out.B.Y < out.A.Y {
		out.B.Y = out.A.Y
	}
	return out
}

// Grow expands the rect by dx cells on the left/right edges and dy on the
// top/bottom edges. Negative deltas shrink it.
func (r Rect) Grow(dx, dy int) Rect {
	return Rect{
		A: Point{X: r.A.X - dx, Y: r.A.Y - dy},
		B: Point{X: r.B.X + dx, Y: r.B.Y + dy},
	}
}

// Move translates the rect by (dx, dy) without changing its size.
func (r Rect) Move(dx, dy int) Rect {
	return Rect{
		A: Point{X: r.A.X + dx, Y: r.A.Y + dy},
		B: Point{X: r.B.X + dx, Y: r.B.Y + dy},
	}
}
