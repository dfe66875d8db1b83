package views

import (
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// Button is a push button bound to a command. Its enabled state mirrors
// the command enablement set: a CommandSetChanged broadcast makes it
// re-query the set.
//
// The bounds include one extra column on the right and one extra row at
// the bottom for the button's own shadow.
type Button struct {
	Base
	title     string
	cmd       command.Id
	isDefault bool
	set       *command.Set
}

// NewButton creates a button with title (tilde shortcut markup allowed)
// bound to cmd. Default buttons answer the dialog's Enter key.
func NewButton(bounds geom.Rect, title string, cmd command.Id, isDefault bool) *Button {
	b := &Button{
		Base:      NewBase(bounds),
		title:     title,
		cmd:       cmd,
		isDefault: isDefault,
		set:       command.Default(),
	}
	b.syncEnabled()
	return b
}

// UseSet rebinds the button to a specific enablement set
func (b *Button) UseSet(s *command.Set) {
	b.set = s
	b.syncEnabled()
}

// syncEnabled mirrors the command set into the disabled state flag
func (b *Button) syncEnabled() {
	if b.set.Enabled(b.cmd) {
		b.state &^= SfDisabled
	} else {
		b.state |= SfDisabled
	}
}

func (b *Button) disabled() bool { return b.state&SfDisabled != 0 }

// IsDefault reports whether the button answers Enter in a dialog
func (b *Button) IsDefault() bool { return b.isDefault }

// Command returns the bound command
func (b *Button) Command() command.Id { return b.cmd }

func (b *Button) CanFocus() bool { return !b.disabled() }

// face is the button area without the shadow column and line
func (b *Button) face() geom.Rect {
	return geom.NewRect(b.bounds.A.X, b.bounds.A.Y, b.bounds.B.X-1, b.bounds.B.Y-1)
}

func (b *Button) attr() palette.Attr {
	switch {
	case b.disabled():
		return palette.ButtonDisabled
	case b.Focused():
		return palette.ButtonSelected
	case b.isDefault:
		return palette.ButtonDefault
	default:
		return palette.ButtonNormal
	}
}

func (b *Button) Draw(r *render.Renderer) {
	face := b.face()
	w := face.Width()
	if w < 1 || face.Height() < 1 {
		return
	}
	attr := b.attr()
	shortcut := palette.ButtonShortcut
	if b.disabled() {
		shortcut = palette.ButtonDisabled
	}

	for y := face.A.Y; y < face.B.Y; y++ {
		line := draw.NewBuffer(w)
		line.MoveChar(0, ' ', attr, w)
		if y == face.A.Y {
			tw := draw.StrWidth(b.title)
			line.MoveStrShortcut((w-tw)/2, b.title, attr, shortcut)
		}
		r.WriteBuffer(geom.Pt(face.A.X, y), line)
	}

	// Shadow: half blocks down the right edge, full line underneath
	for y := face.A.Y; y < face.B.Y; y++ {
		r.WriteCell(geom.Pt(face.B.X, y), draw.Cell{Rune: '▄', Attr: palette.ButtonShadow})
	}
	bottom := draw.NewBuffer(w)
	bottom.MoveChar(0, '▀', palette.ButtonShadow, w)
	r.WriteBuffer(geom.Pt(face.A.X+1, face.B.Y), bottom)
}

// HandleEvent presses the button on Enter or Space while focused, or a
// left click on the face. A press bubbles the bound command.
func (b *Button) HandleEvent(ev *event.Event) {
	switch ev.What {
	case event.Keyboard:
		if b.Focused() && !b.disabled() &&
			(ev.Key == event.KbEnter || ev.Key == event.KbSpace) {
			*ev = event.Cmd(b.cmd)
		}
	case event.MouseDown:
		if !b.disabled() && ev.Mouse.Buttons&event.MbLeft != 0 &&
			b.face().Contains(ev.Mouse.Pos) {
			*ev = event.Cmd(b.cmd)
		}
	case event.Broadcast:
		if ev.Cmd == command.CommandSetChanged {
			was := b.disabled()
			b.syncEnabled()
			if b.disabled() && !was {
				b.SetFocus(false)
			}
		}
	}
}
