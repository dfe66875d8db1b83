package views

import (
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// Group is a container view. Children are stored with absolute bounds;
// Add converts from parent-relative coordinates once at insertion.
// Later children draw on top of earlier ones.
type Group struct {
	Base
	children []View
	focused  int

	hasBackground bool
	background    palette.Attr
}

// NewGroup creates an empty container covering bounds
func NewGroup(bounds geom.Rect) *Group {
	return &Group{
		Base:    NewBase(bounds),
		focused: -1,
	}
}

// SetBackground makes the group fill its area before drawing children
func (g *Group) SetBackground(attr palette.Attr) {
	g.hasBackground = true
	g.background = attr
}

// Add inserts child at the end of the draw order. The child's bounds
// are interpreted relative to the group origin and converted to
// absolute here, exactly once.
func (g *Group) Add(child View) {
	b := child.Bounds()
	child.SetBounds(b.Move(g.bounds.A.X, g.bounds.A.Y))
	g.children = append(g.children, child)
}

// ChildCount returns the number of children
func (g *Group) ChildCount() int { return len(g.children) }

// ChildAt returns the child at index i, nil when out of range
func (g *Group) ChildAt(i int) View {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// FocusedIndex returns the index of the focused child, -1 when none
func (g *Group) FocusedIndex() int { return g.focused }

// Focused returns the focused child, nil when none
func (g *Group) FocusedChild() View {
	return g.ChildAt(g.focused)
}

// SetBounds moves the group and shifts every child by the same delta
// so absolute child positions stay consistent
func (g *Group) SetBounds(r geom.Rect) {
	dx := r.A.X - g.bounds.A.X
	dy := r.A.Y - g.bounds.A.Y
	g.bounds = r
	for _, c := range g.children {
		c.SetBounds(c.Bounds().Move(dx, dy))
	}
}

// Draw fills the optional background then draws children in insertion
// order, each clipped to the group bounds
func (g *Group) Draw(r *render.Renderer) {
	r.PushClip(g.bounds)
	defer r.PopClip()
	if g.hasBackground {
		r.FillRect(g.bounds, ' ', g.background)
	}
	for _, c := range g.children {
		if !c.Bounds().Intersects(g.bounds) {
			continue
		}
		c.Draw(r)
	}
}

// FocusChild moves focus to child i when it accepts focus.
// Returns true when focus changed.
func (g *Group) FocusChild(i int) bool {
	c := g.ChildAt(i)
	if c == nil || !c.CanFocus() {
		return false
	}
	if prev := g.FocusedChild(); prev != nil {
		prev.SetFocus(false)
	}
	g.focused = i
	c.SetFocus(true)
	return true
}

// ClearFocus removes focus from the current child
func (g *Group) ClearFocus() {
	if c := g.FocusedChild(); c != nil {
		c.SetFocus(false)
	}
	g.focused = -1
}

// SetInitialFocus focuses the first focusable child
func (g *Group) SetInitialFocus() {
	for i, c := range g.children {
		if c.CanFocus() {
			g.FocusChild(i)
			return
		}
	}
}

// SelectNext moves focus forward to the next focusable child, wrapping
// at the end. A full cycle without a focusable child leaves focus alone.
func (g *Group) SelectNext() {
	g.selectStep(1)
}

// SelectPrevious moves focus backward, wrapping at the start
func (g *Group) SelectPrevious() {
	g.selectStep(-1)
}

func (g *Group) selectStep(dir int) {
	n := len(g.children)
	if n == 0 {
		return
	}
	start := g.focused
	if start < 0 {
		if dir > 0 {
			start = n - 1
		} else {
			start = 0
		}
	}
	i := start
	for {
		i = (i + dir + n) % n
		if g.children[i].CanFocus() {
			g.FocusChild(i)
			return
		}
		if i == start {
			return
		}
	}
}

// HandleEvent implements the container dispatch rules. Broadcasts fan
// out to every child and are never consumed here. Mouse events route
// positionally to the first child containing the pointer. Keyboard and
// command events go to the focused child, with Tab and Shift-Tab
// intercepted for focus traversal.
func (g *Group) HandleEvent(ev *event.Event) {
	switch ev.What {
	case event.Broadcast:
		for _, c := range g.children {
			c.HandleEvent(ev)
		}
		return
	case event.Command:
		if c := g.FocusedChild(); c != nil {
			c.HandleEvent(ev)
		}
		return
	case event.MouseDown, event.MouseUp, event.MouseMove:
		g.routeMouse(ev)
		return
	case event.Keyboard:
		switch ev.Key {
		case event.KbTab:
			g.SelectNext()
			ev.Clear()
			return
		case event.KbShiftTab:
			g.SelectPrevious()
			ev.Clear()
			return
		}
		if ch, ok := ev.Key.IsAlt(); ok {
			for _, c := range g.children {
				l, isLabel := c.(*Label)
				if isLabel && l.Shortcut() == ch && g.FocusChild(l.LinkIndex()) {
					ev.Clear()
					return
				}
			}
		}
		if c := g.FocusedChild(); c != nil {
			c.HandleEvent(ev)
		}
	}
}

func (g *Group) routeMouse(ev *event.Event) {
	for i, c := range g.children {
		if !c.Bounds().Contains(ev.Mouse.Pos) {
			continue
		}
		if ev.What == event.MouseDown {
			target := i
			// A pressed label forwards focus to its linked control
			if lk, ok := c.(Linked); ok {
				if li := lk.LinkIndex(); g.ChildAt(li) != nil {
					target = li
				}
			}
			if t := g.ChildAt(target); t != nil && t.CanFocus() && target != g.focused {
				g.FocusChild(target)
			}
		}
		c.HandleEvent(ev)
		return
	}
}

// UpdateCursor hides the cursor then lets the focused child claim it
func (g *Group) UpdateCursor(r *render.Renderer) {
	r.HideCursor()
	if c := g.FocusedChild(); c != nil {
		c.UpdateCursor(r)
	}
}
