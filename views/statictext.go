package views

import (
	"strings"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// StaticText shows fixed lines of text, one bounds row per line.
// Lines are centered when centered is set, left-aligned otherwise.
type StaticText struct {
	Base
	lines    []string
	centered bool
}

// NewStaticText creates a static text view from newline-separated text
func NewStaticText(bounds geom.Rect, text string, centered bool) *StaticText {
	return &StaticText{
		Base:     NewBase(bounds),
		lines:    strings.Split(text, "\n"),
		centered: centered,
	}
}

// SetText replaces the displayed text
func (s *StaticText) SetText(text string) {
	s.lines = strings.Split(text, "\n")
}

func (s *StaticText) Draw(r *render.Renderer) {
	w := s.bounds.Width()
	if w < 1 {
		return
	}
	for i := 0; i < s.bounds.Height(); i++ {
		line := draw.NewBuffer(w)
		line.MoveChar(0, ' ', palette.StaticNormal, w)
		if i < len(s.lines) {
			x := 0
			if s.centered {
				x = (w - len([]rune(s.lines[i]))) / 2
			}
			line.MoveStr(x, s.lines[i], palette.StaticNormal)
		}
		r.WriteBuffer(geom.Pt(s.bounds.A.X, s.bounds.A.Y+i), line)
	}
}
