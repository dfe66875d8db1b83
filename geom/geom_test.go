package geom

import "testing"

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 5, 30, 15)
	if r.Width() != 20 {
		t.Errorf("Expected width 20, got %d", r.Width())
	}
	if r.Height() != 10 {
		t.Errorf("Expected height 10, got %d", r.Height())
	}
	if r.IsEmpty() {
		t.Error("Expected non-empty rect")
	}
	if !NewRect(5, 5, 5, 10).IsEmpty() {
		t.Error("Expected zero-width rect to be empty")
	}
}

func TestContainsHalfOpen(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},  // top-left corner is inside
		{Pt(19, 19), true},  // last interior cell
		{Pt(20, 10), false}, // B.X is exclusive
		{Pt(10, 20), false}, // B.Y is exclusive
		{Pt(9, 15), false},
		{Pt(15, 15), true},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Intersects(NewRect(5, 5, 15, 15)) {
		t.Error("Expected overlapping rects to intersect")
	}
	if r.Intersects(NewRect(10, 0, 20, 10)) {
		t.Error("Expected edge-adjacent rects not to intersect (half-open)")
	}
	if r.Intersects(NewRect(50, 50, 60, 60)) {
		t.Error("Expected disjoint rects not to intersect")
	}
	if !r.Intersects(NewRect(2, 2, 4, 4)) {
		t.Error("Expected contained rect to intersect")
	}
}

func TestIntersect(t *testing.T) {
	r := NewRect(0, 0, 10, 10).Intersect(NewRect(5, 5, 15, 15))
	if r != NewRect(5, 5, 10, 10) {
		t.Errorf("Unexpected intersection %v", r)
	}

	// Disjoint rects yield an empty, non-inverted result
	e := NewRect(0, 0, 5, 5).Intersect(NewRect(20, 20, 30, 30))
	if !e.IsEmpty() {
		t.Errorf("Expected empty intersection, got %v", e)
	}
	if e.B.X < e.A.X || e.B.Y < e.A.Y {
		t.Errorf("Intersection has inverted corners: %v", e)
	}
}

func TestGrowMove(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	g := r.Grow(-1, -1)
	if g != NewRect(11, 11, 19, 19) {
		t.Errorf("Grow(-1,-1) = %v", g)
	}

	m := r.Move(5, -3)
	if m != NewRect(15, 7, 25, 17) {
		t.Errorf("Move(5,-3) = %v", m)
	}
	if m.Width() != r.Width() || m.Height() != r.Height() {
		t.Error("Move changed rect size")
	}
}
