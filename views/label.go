package views

import (
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// Label is a non-focusable caption tied to a sibling control by index.
// Clicking the label or pressing its Alt shortcut moves focus to the
// linked control. The link is an index into the owning group's child
// list; an out-of-range index leaves the label inert.
type Label struct {
	Base
	text string
	link int
}

// NewLabel creates a label linked to the control at child index link.
// Pass a negative link for a free-standing caption.
func NewLabel(bounds geom.Rect, text string, link int) *Label {
	return &Label{Base: NewBase(bounds), text: text, link: link}
}

// LinkIndex returns the linked child index
func (l *Label) LinkIndex() int { return l.link }

// Shortcut returns the label's tilde-marked shortcut letter, 0 when none
func (l *Label) Shortcut() rune {
	runes := []rune(l.text)
	for i, ch := range runes {
		if ch == '~' && i+1 < len(runes) && runes[i+1] != '~' {
			return foldLetter(runes[i+1])
		}
	}
	return 0
}

func foldLetter(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func (l *Label) Draw(r *render.Renderer) {
	w := l.bounds.Width()
	if w < 1 {
		return
	}
	line := draw.NewBuffer(w)
	line.MoveChar(0, ' ', palette.LabelNormal, w)
	line.MoveStrShortcut(0, l.text, palette.LabelNormal, palette.LabelShortcut)
	r.WriteBuffer(l.bounds.A, line)
}

// HandleEvent is intentionally empty; the owning group performs the
// click-to-focus forwarding using LinkIndex
func (l *Label) HandleEvent(ev *event.Event) {}
