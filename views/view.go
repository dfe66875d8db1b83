// Package views implements the composable view tree: the View contract,
// the Group container with focus and dispatch rules, window and dialog
// machinery, and the basic controls the framework itself needs.
package views

import (
	"time"

	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/render"
)

// StateFlags is the per-view state bitset
type StateFlags uint8

const (
	SfFocused  StateFlags = 1 << 0
	SfModal    StateFlags = 1 << 1
	SfShadow   StateFlags = 1 << 2
	SfDisabled StateFlags = 1 << 3
)

// View is the capability set every displayable component implements.
// Draw assumes the caller has already clipped to the parent; HandleEvent
// may mutate the event (bubble a command) or clear it (stop propagation).
type View interface {
	Bounds() geom.Rect
	SetBounds(geom.Rect)
	Draw(r *render.Renderer)
	HandleEvent(ev *event.Event)
	CanFocus() bool
	SetFocus(focused bool)
	State() StateFlags
	SetState(StateFlags)
	UpdateCursor(r *render.Renderer)
}

// DefaultCommander is the optional capability of controls that can act
// as a dialog's default button. Views without it answer "none".
type DefaultCommander interface {
	IsDefault() bool
	Command() command.Id
}

// Linked is the optional capability of views associated with a sibling
// control by index. The handle is an offset into the owning Group's
// child list; out-of-range handles are inert.
type Linked interface {
	LinkIndex() int
}

// Host is the environment a modal dialog executes in. The application
// implements it; tests substitute a scripted one.
type Host interface {
	// Renderer returns the shared renderer
	Renderer() *render.Renderer

	// DrawBase repaints everything behind the modal view so dragging
	// or closing it leaves no stale cells
	DrawBase()

	// PollEvent waits up to timeout for a normalized event
	PollEvent(timeout time.Duration) (event.Event, bool)

	// CommandSet returns the enablement set the host broadcasts from
	CommandSet() *command.Set
}

// Base supplies the default View behavior: plain bounds and state
// storage, no focus, no drawing, no event interest. Concrete views
// embed it and override what they need.
type Base struct {
	bounds geom.Rect
	state  StateFlags
}

// NewBase creates a Base with the given bounds
func NewBase(bounds geom.Rect) Base {
	return Base{bounds: bounds}
}

func (b *Base) Bounds() geom.Rect             { return b.bounds }
func (b *Base) SetBounds(r geom.Rect)         { b.bounds = r }
func (b *Base) Draw(*render.Renderer)         {}
func (b *Base) HandleEvent(*event.Event)      {}
func (b *Base) CanFocus() bool                { return false }
func (b *Base) State() StateFlags             { return b.state }
func (b *Base) SetState(s StateFlags)         { b.state = s }
func (b *Base) UpdateCursor(*render.Renderer) {}

// SetFocus toggles the focused state bit
func (b *Base) SetFocus(focused bool) {
	if focused {
		b.state |= SfFocused
	} else {
		b.state &^= SfFocused
	}
}

// Focused reports the focused state bit
func (b *Base) Focused() bool {
	return b.state&SfFocused != 0
}
