package views

import (
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// Window is a framed, shadowed container. The frame occupies the outer
// one-cell ring; controls live in the interior group inset by one.
type Window struct {
	Base
	frame    *Frame
	interior *Group
}

// NewWindow creates a window with a frame, a gray interior and a drop
// shadow enabled
func NewWindow(bounds geom.Rect, title string) *Window {
	w := &Window{
		Base:     NewBase(bounds),
		frame:    NewFrame(bounds, title),
		interior: NewGroup(bounds.Grow(-1, -1)),
	}
	w.interior.SetBackground(palette.DialogNormal)
	w.state |= SfShadow
	return w
}

// Interior returns the group holding the window's controls
func (w *Window) Interior() *Group { return w.interior }

// Frame returns the window frame
func (w *Window) Frame() *Frame { return w.frame }

// Add inserts a control with bounds relative to the interior origin
func (w *Window) Add(child View) {
	w.interior.Add(child)
}

func (w *Window) CanFocus() bool { return true }

// SetFocus hands focus into or out of the interior; an activating
// window seeds focus on its first focusable control
func (w *Window) SetFocus(focused bool) {
	w.Base.SetFocus(focused)
	w.frame.SetActive(focused)
	if focused {
		if w.interior.FocusedIndex() < 0 {
			w.interior.SetInitialFocus()
		}
	} else {
		w.interior.ClearFocus()
	}
}

func (w *Window) SetBounds(r geom.Rect) {
	w.Base.SetBounds(r)
	w.frame.SetBounds(r)
	w.interior.SetBounds(r.Grow(-1, -1))
}

// Draw paints the frame, the interior and the one-cell drop shadow to
// the right and below. The shadow darkens whatever is already there.
func (w *Window) Draw(r *render.Renderer) {
	w.frame.Draw(r)
	w.interior.Draw(r)
	if w.state&SfShadow != 0 {
		b := w.bounds
		r.DarkenRect(geom.NewRect(b.B.X, b.A.Y+1, b.B.X+1, b.B.Y+1))
		r.DarkenRect(geom.NewRect(b.A.X+1, b.B.Y, b.B.X, b.B.Y+1))
	}
}

// HandleEvent gives the frame first claim (close control), then routes
// to the interior. A command the frame itself produced stops here so
// the close control cannot leak into the interior; commands arriving
// from outside pass through to the focused control.
func (w *Window) HandleEvent(ev *event.Event) {
	wasCommand := ev.What == event.Command
	w.frame.HandleEvent(ev)
	if ev.What == event.Nothing {
		return
	}
	if ev.What == event.Command && !wasCommand {
		return
	}
	w.interior.HandleEvent(ev)
}

func (w *Window) UpdateCursor(r *render.Renderer) {
	w.interior.UpdateCursor(r)
}
