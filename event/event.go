// Package event defines the normalized event vocabulary dispatched through
// the view tree.
package event

import (
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/geom"
)

// Type tags the event union.
type Type uint8

const (
	Nothing Type = iota
	Keyboard
	MouseDown
	MouseMove
	MouseUp
	Command
	Broadcast
)

// Mouse button bitmask values.
const (
	MbLeft   uint8 = 1 << 0
	MbMiddle uint8 = 1 << 1
	MbRight  uint8 = 1 << 2
)

// Mouse carries the pointer position and the held-button mask.
type Mouse struct {
	Pos     geom.Point
	Buttons uint8
}

// Event is the single mutable slot threaded through dispatch. A view
// handles an event either by replacing it with a Command (bubbling the
// command upward) or by calling Clear, which stops further propagation.
type Event struct {
	What  Type
	Key   KeyCode
	Mouse Mouse
	Cmd   command.Id
}

// Kb builds a keyboard event.
func Kb(code KeyCode) Event {
	return Event{What: Keyboard, Key: code}
}

// Cmd builds a command event.
func Cmd(id command.Id) Event {
	return Event{What: Command, Cmd: id}
}

// Bcast builds a broadcast event.
func Bcast(id command.Id) Event {
	return Event{What: Broadcast, Cmd: id}
}

// MouseEv builds a mouse event of the given kind.
func MouseEv(what Type, pos geom.Point, buttons uint8) Event {
	return Event{What: what, Mouse: Mouse{Pos: pos, Buttons: buttons}}
}

// Clear marks the event handled; no later dispatch stage will see it.
func (e *Event) Clear() {
	*e = Event{}
}

// IsMouse reports whether the event is one of the mouse kinds.
func (e *Event) IsMouse() bool {
	return e.What == MouseDown || e.What == MouseMove || e.What == MouseUp
}
