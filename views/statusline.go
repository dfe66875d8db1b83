package views

import (
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// StatusItem is one hint on the status line: a tilde-marked label, the
// key it answers to and the command it fires
type StatusItem struct {
	Text string
	Key  event.KeyCode
	Cmd  command.Id
}

// StatusLine is the bottom-row hint bar. Items fire their command on
// their key or a click; disabled commands draw dim and do not fire.
type StatusLine struct {
	Base
	items []StatusItem
	set   *command.Set

	// spans caches the x range of each item for click hit tests,
	// refreshed on every draw
	spans []geom.Rect
}

// NewStatusLine creates a status line across bounds
func NewStatusLine(bounds geom.Rect, items []StatusItem) *StatusLine {
	s := &StatusLine{Base: NewBase(bounds), items: items, set: command.Default()}
	s.layout()
	return s
}

// UseSet rebinds the line to a specific enablement set
func (s *StatusLine) UseSet(set *command.Set) { s.set = set }

// SetItems replaces the hint items
func (s *StatusLine) SetItems(items []StatusItem) {
	s.items = items
	s.layout()
}

func (s *StatusLine) layout() {
	s.spans = s.spans[:0]
	x := s.bounds.A.X + 1
	for _, it := range s.items {
		w := draw.StrWidth(it.Text)
		s.spans = append(s.spans, geom.NewRect(x, s.bounds.A.Y, x+w, s.bounds.A.Y+1))
		x += w + 3 // separator
	}
}

func (s *StatusLine) SetBounds(r geom.Rect) {
	s.Base.SetBounds(r)
	s.layout()
}

func (s *StatusLine) Draw(r *render.Renderer) {
	w := s.bounds.Width()
	if w < 1 {
		return
	}
	line := draw.NewBuffer(w)
	line.MoveChar(0, ' ', palette.StatusNormal, w)
	x := 1
	for i, it := range s.items {
		attr, short := palette.StatusNormal, palette.StatusShortcut
		if !s.set.Enabled(it.Cmd) {
			attr, short = palette.StatusDisabled, palette.StatusDisabled
		}
		line.MoveStrShortcut(x, it.Text, attr, short)
		x += draw.StrWidth(it.Text)
		if i < len(s.items)-1 {
			line.MoveStr(x, " │ ", palette.StatusNormal)
			x += 3
		}
	}
	r.WriteBuffer(s.bounds.A, line)
}

func (s *StatusLine) HandleEvent(ev *event.Event) {
	switch ev.What {
	case event.Keyboard:
		for _, it := range s.items {
			if it.Key != 0 && it.Key == ev.Key && s.set.Enabled(it.Cmd) {
				*ev = event.Cmd(it.Cmd)
				return
			}
		}
	case event.MouseDown:
		if !s.bounds.Contains(ev.Mouse.Pos) {
			return
		}
		for i, span := range s.spans {
			if span.Contains(ev.Mouse.Pos) && s.set.Enabled(s.items[i].Cmd) {
				*ev = event.Cmd(s.items[i].Cmd)
				return
			}
		}
		ev.Clear()
	}
}
