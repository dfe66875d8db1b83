package views

import (
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// Background fills its area with a repeated pattern rune. The desktop
// uses one as its lowest child.
type Background struct {
	Base
	pattern rune
	attr    palette.Attr
}

// NewBackground creates a background filling bounds with pattern
func NewBackground(bounds geom.Rect, pattern rune, attr palette.Attr) *Background {
	return &Background{Base: NewBase(bounds), pattern: pattern, attr: attr}
}

func (b *Background) Draw(r *render.Renderer) {
	r.FillRect(b.bounds, b.pattern, b.attr)
}

func (b *Background) Resize(bounds geom.Rect) {
	b.bounds = bounds
}
