package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
)

func TestDesktopAddGrantsFocus(t *testing.T) {
	d := NewDesktop(geom.NewRect(0, 0, 80, 25))
	w1 := NewWindow(geom.NewRect(5, 2, 40, 15), "One")
	w2 := NewWindow(geom.NewRect(20, 5, 60, 20), "Two")

	d.Add(w1)
	assert.True(t, w1.Focused())

	d.Add(w2)
	assert.False(t, w1.Focused(), "focus moves to the newest window")
	assert.True(t, w2.Focused())
	assert.Same(t, View(w2), d.TopMost())
}

func TestDesktopClickRaisesWindow(t *testing.T) {
	d := NewDesktop(geom.NewRect(0, 0, 80, 25))
	w1 := NewWindow(geom.NewRect(5, 2, 40, 15), "One")
	w2 := NewWindow(geom.NewRect(20, 5, 60, 20), "Two")
	d.Add(w1)
	d.Add(w2)
	require.Same(t, View(w2), d.TopMost())

	// Click a spot only w1 covers
	down := event.MouseEv(event.MouseDown, geom.Pt(6, 3), event.MbLeft)
	d.HandleEvent(&down)

	assert.Same(t, View(w1), d.TopMost(), "clicked window raises to the top")
	assert.True(t, w1.Focused())
	assert.False(t, w2.Focused())
}

func TestDesktopClickOverlapHitsTopmost(t *testing.T) {
	d := NewDesktop(geom.NewRect(0, 0, 80, 25))
	w1 := NewWindow(geom.NewRect(5, 2, 40, 15), "One")
	w2 := NewWindow(geom.NewRect(20, 5, 60, 20), "Two")
	d.Add(w1)
	d.Add(w2)

	// (25, 10) lies inside both; the topmost window wins
	down := event.MouseEv(event.MouseDown, geom.Pt(25, 10), event.MbLeft)
	d.HandleEvent(&down)

	assert.Same(t, View(w2), d.TopMost())
	assert.True(t, w2.Focused())
}

func TestDesktopRemoveRefocusesTopmost(t *testing.T) {
	d := NewDesktop(geom.NewRect(0, 0, 80, 25))
	w1 := NewWindow(geom.NewRect(5, 2, 40, 15), "One")
	w2 := NewWindow(geom.NewRect(20, 5, 60, 20), "Two")
	d.Add(w1)
	d.Add(w2)

	d.Remove(d.ChildCount() - 1)

	assert.Same(t, View(w1), d.TopMost())
	assert.True(t, w1.Focused())
}

func TestDesktopDrawsDitherPattern(t *testing.T) {
	r := newTestRenderer(20, 5)
	d := NewDesktop(geom.NewRect(0, 0, 20, 5))

	d.Draw(r)

	assert.Equal(t, draw.Cell{Rune: '░', Attr: palette.Desktop}, r.At(3, 2))
}

func TestWindowDrawCastsShadow(t *testing.T) {
	r := newTestRenderer(40, 20)
	d := NewDesktop(geom.NewRect(0, 0, 40, 20))
	w := NewWindow(geom.NewRect(5, 2, 25, 12), "Shady")
	d.Add(w)

	d.Draw(r)

	// One cell right of the window, below the first border row
	right := r.At(25, 3)
	assert.Equal(t, '░', right.Rune, "shadow keeps the underlying rune")
	assert.Equal(t, palette.Desktop.Shadowed(), right.Attr)

	below := r.At(7, 12)
	assert.Equal(t, palette.Desktop.Shadowed(), below.Attr)

	// Outside the shadow zone the desktop attribute survives
	assert.Equal(t, palette.Desktop, r.At(30, 15).Attr)
}
