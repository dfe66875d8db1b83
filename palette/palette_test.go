package palette

import "testing"

func TestAttrRoundTrip(t *testing.T) {
	// Every fg/bg combination must survive packing into a byte and back.
	for fg := Color(0); fg < 16; fg++ {
		for bg := Color(0); bg < 16; bg++ {
			a := NewAttr(fg, bg)
			if a.Fg() != fg {
				t.Fatalf("Attr(%v,%v): Fg() = %v", fg, bg, a.Fg())
			}
			if a.Bg() != bg {
				t.Fatalf("Attr(%v,%v): Bg() = %v", fg, bg, a.Bg())
			}
			if b := NewAttr(a.Fg(), a.Bg()); b != a {
				t.Fatalf("Attr(%v,%v): repack mismatch %08b != %08b", fg, bg, b, a)
			}
		}
	}
}

func TestAttrWith(t *testing.T) {
	a := NewAttr(White, Blue)
	if b := a.WithFg(Red); b.Fg() != Red || b.Bg() != Blue {
		t.Errorf("WithFg produced %v/%v", b.Fg(), b.Bg())
	}
	if b := a.WithBg(Green); b.Fg() != White || b.Bg() != Green {
		t.Errorf("WithBg produced %v/%v", b.Fg(), b.Bg())
	}
}

func TestFromRGBExact(t *testing.T) {
	// Exact palette values map back to themselves.
	for c := Color(0); c < 16; c++ {
		r, g, b := c.RGB()
		if got := FromRGB(r, g, b); got != c {
			t.Errorf("FromRGB(%d,%d,%d) = %v, want %v", r, g, b, got, c)
		}
	}
}

func TestFromRGBNearest(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    Color
	}{
		{250, 250, 250, White},
		{10, 10, 10, Black},
		{200, 0, 0, Red},
		{0, 0, 200, Blue},
	}
	for _, c := range cases {
		if got := FromRGB(c.r, c.g, c.b); got != c.want {
			t.Errorf("FromRGB(%d,%d,%d) = %v, want %v", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestShadowed(t *testing.T) {
	if s := NewAttr(White, Green).Shadowed(); s.Fg() != DarkGray || s.Bg() != Black {
		t.Errorf("Shadowed() = %v/%v", s.Fg(), s.Bg())
	}
}
