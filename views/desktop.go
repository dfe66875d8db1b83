package views

import (
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
)

// Desktop is the root container for application windows. It differs
// from a plain Group in two ways: adding a window grants it focus, and
// a mouse press raises the hit window to the top of the z-order.
type Desktop struct {
	Group
	background *Background
}

// NewDesktop creates a desktop with the classic dither background
func NewDesktop(bounds geom.Rect) *Desktop {
	d := &Desktop{Group: *NewGroup(bounds)}
	d.background = NewBackground(geom.NewRect(0, 0, bounds.Width(), bounds.Height()), '░', palette.Desktop)
	d.Group.Add(d.background)
	return d
}

// Add inserts a window on top and moves focus to it
func (d *Desktop) Add(child View) {
	d.Group.Add(child)
	d.ClearFocus()
	d.FocusChild(d.ChildCount() - 1)
}

// Remove drops the child at index i, refocusing the new topmost window
func (d *Desktop) Remove(i int) {
	if i <= 0 || i >= len(d.children) {
		// index 0 is the background
		return
	}
	if d.focused == i {
		d.ClearFocus()
	} else if d.focused > i {
		d.focused--
	}
	d.children = append(d.children[:i], d.children[i+1:]...)
	if d.focused < 0 && len(d.children) > 1 {
		d.FocusChild(len(d.children) - 1)
	}
}

// TopMost returns the topmost window, nil when only the background remains
func (d *Desktop) TopMost() View {
	if len(d.children) <= 1 {
		return nil
	}
	return d.children[len(d.children)-1]
}

// SetBounds resizes the desktop and stretches the background with it
func (d *Desktop) SetBounds(r geom.Rect) {
	d.Group.SetBounds(r)
	d.background.Resize(r)
}

// HandleEvent raises and focuses the window under a mouse press before
// normal dispatch. Hit testing runs top-down so an overlapping window
// on top wins.
func (d *Desktop) HandleEvent(ev *event.Event) {
	if ev.What == event.MouseDown {
		for i := len(d.children) - 1; i >= 1; i-- {
			c := d.children[i]
			if !c.Bounds().Contains(ev.Mouse.Pos) {
				continue
			}
			if i != len(d.children)-1 {
				d.bringToFront(i)
				c = d.children[len(d.children)-1]
			}
			if c.CanFocus() && d.focused != len(d.children)-1 {
				d.ClearFocus()
				d.FocusChild(len(d.children) - 1)
			}
			c.HandleEvent(ev)
			return
		}
		return
	}
	d.Group.HandleEvent(ev)
}

func (d *Desktop) bringToFront(i int) {
	c := d.children[i]
	wasFocused := d.focused == i
	if d.focused > i {
		d.focused--
	}
	d.children = append(d.children[:i], d.children[i+1:]...)
	d.children = append(d.children, c)
	if wasFocused {
		d.focused = len(d.children) - 1
	}
}
