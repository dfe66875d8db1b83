package views

import (
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// Frame draws a window's border, centered title and close control.
// It belongs to a Window; the Window keeps its bounds in sync and
// tells it whether the window is active.
type Frame struct {
	Base
	title  string
	active bool
}

// NewFrame creates a frame covering bounds
func NewFrame(bounds geom.Rect, title string) *Frame {
	return &Frame{Base: NewBase(bounds), title: title}
}

// SetActive selects the active or passive border attribute
func (f *Frame) SetActive(active bool) { f.active = active }

// Title returns the frame title
func (f *Frame) Title() string { return f.title }

// SetTitle changes the frame title
func (f *Frame) SetTitle(title string) { f.title = title }

func (f *Frame) attr() palette.Attr {
	if f.active {
		return palette.FrameActive
	}
	return palette.FramePassive
}

func (f *Frame) Draw(r *render.Renderer) {
	w := f.bounds.Width()
	h := f.bounds.Height()
	if w < 2 || h < 2 {
		return
	}
	attr := f.attr()

	top := draw.NewBuffer(w)
	top.PutChar(0, '┌', attr)
	top.MoveChar(1, '─', attr, w-2)
	top.PutChar(w-1, '┐', attr)
	if f.title != "" {
		t := " " + f.title + " "
		if tw := len([]rune(t)); tw <= w-2 {
			top.MoveStr((w-tw)/2, t, attr)
		}
	}
	// Close control sits near the top-left corner of active frames
	if f.active && w >= 6 {
		top.MoveStr(1, "[", attr)
		top.PutChar(2, '■', palette.FrameIcon)
		top.MoveStr(3, "]", attr)
	}
	r.WriteBuffer(f.bounds.A, top)

	for y := f.bounds.A.Y + 1; y < f.bounds.B.Y-1; y++ {
		r.WriteCell(geom.Pt(f.bounds.A.X, y), draw.Cell{Rune: '│', Attr: attr})
		r.WriteCell(geom.Pt(f.bounds.B.X-1, y), draw.Cell{Rune: '│', Attr: attr})
	}

	bottom := draw.NewBuffer(w)
	bottom.PutChar(0, '└', attr)
	bottom.MoveChar(1, '─', attr, w-2)
	bottom.PutChar(w-1, '┘', attr)
	r.WriteBuffer(geom.Pt(f.bounds.A.X, f.bounds.B.Y-1), bottom)
}

// HandleEvent turns a click on the close control into a Close command
func (f *Frame) HandleEvent(ev *event.Event) {
	if ev.What != event.MouseDown || !f.active {
		return
	}
	p := ev.Mouse.Pos
	if p.Y == f.bounds.A.Y && p.X >= f.bounds.A.X+1 && p.X <= f.bounds.A.X+3 {
		*ev = event.Cmd(command.Close)
	}
}
