// Package input turns raw terminal events into the normalized events
// the view tree consumes. It owns the escape disambiguation state
// machine and the held-mouse-button tracking.
package input

import (
	"time"

	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/terminal"
)

// DoubleEscTimeout is the window inside which a second Escape press
// pairs with the first into the synthetic double-escape code, and an
// ESC-then-letter pair folds into an Alt chord. The terminal layer has
// already resolved escape byte sequences; this window covers the
// human-typed two-key gestures.
const DoubleEscTimeout = 500 * time.Millisecond

// Decoder is a pure transducer: terminal events in, framework events
// out. It holds at most one Escape press pending until the pairing
// window closes.
type Decoder struct {
	clock func() time.Time
	queue []event.Event

	escPending bool
	escAt      time.Time

	// Held-button mask, maintained across drag reports
	buttons uint8
}

// NewDecoder creates a decoder using the wall clock
func NewDecoder() *Decoder {
	return &Decoder{clock: time.Now}
}

// SetClock replaces the time source, for tests
func (d *Decoder) SetClock(clock func() time.Time) {
	d.clock = clock
}

// Poll pops the next decoded event, if any
func (d *Decoder) Poll() (event.Event, bool) {
	if len(d.queue) == 0 {
		return event.Event{}, false
	}
	ev := d.queue[0]
	copy(d.queue, d.queue[1:])
	d.queue = d.queue[:len(d.queue)-1]
	return ev, true
}

func (d *Decoder) push(ev event.Event) {
	d.queue = append(d.queue, ev)
}

// Idle resolves a pending Escape as a lone keypress once the pairing
// window has passed. Call it whenever the poll wait returns no event.
func (d *Decoder) Idle() {
	if d.escPending && d.clock().Sub(d.escAt) >= DoubleEscTimeout {
		d.escPending = false
		d.push(event.Kb(event.KbEsc))
	}
}

// Feed consumes one raw terminal event. Decoded events accumulate for
// Poll; an Escape press may produce nothing until a later Feed or Idle.
func (d *Decoder) Feed(tev terminal.Event) {
	switch tev.Type {
	case terminal.EventKey:
		d.feedKey(tev)
	case terminal.EventMouse:
		d.flushPendingEsc()
		d.feedMouse(tev)
	default:
		// Resize, error and close resolve any pending escape but
		// produce no keyboard event here
		d.flushPendingEsc()
	}
}

// flushPendingEsc emits the held Escape as a lone keypress
func (d *Decoder) flushPendingEsc() {
	if d.escPending {
		d.escPending = false
		d.push(event.Kb(event.KbEsc))
	}
}

func (d *Decoder) feedKey(tev terminal.Event) {
	now := d.clock()

	if d.escPending {
		within := now.Sub(d.escAt) < DoubleEscTimeout
		d.escPending = false

		if within && tev.Key == terminal.KeyEscape && tev.Modifiers == terminal.ModNone {
			d.push(event.Kb(event.KbEscEsc))
			return
		}
		if within && tev.Key == terminal.KeyRune && tev.Modifiers == terminal.ModNone &&
			isLetter(tev.Rune) {
			// ESC then letter is the two-step Alt gesture
			d.push(event.Kb(event.Alt(tev.Rune)))
			return
		}
		d.push(event.Kb(event.KbEsc))
		// Fall through and process the new key from idle state
	}

	// A burst of two ESC bytes arrives from the terminal layer as a
	// single modified Escape
	if tev.Key == terminal.KeyEscape && tev.Modifiers&terminal.ModAlt != 0 {
		d.push(event.Kb(event.KbEscEsc))
		return
	}

	if tev.Key == terminal.KeyEscape {
		d.escPending = true
		d.escAt = now
		return
	}

	if code, ok := translateKey(tev); ok {
		d.push(event.Kb(code))
	}
}

func (d *Decoder) feedMouse(tev terminal.Event) {
	pos := geom.Pt(tev.MouseX, tev.MouseY)

	switch tev.MouseAction {
	case terminal.MouseActionPress:
		if b := buttonBit(tev.MouseBtn); b != 0 {
			d.buttons |= b
			d.push(event.MouseEv(event.MouseDown, pos, d.buttons))
		}
	case terminal.MouseActionRelease:
		b := buttonBit(tev.MouseBtn)
		if b == 0 {
			// SGR release reports button 3; whatever was held is released
			b = d.buttons
		}
		d.buttons &^= b
		d.push(event.MouseEv(event.MouseUp, pos, d.buttons))
	case terminal.MouseActionMove, terminal.MouseActionDrag:
		// Report the tracked mask: a drag primitive does not always
		// repeat the held button
		d.push(event.MouseEv(event.MouseMove, pos, d.buttons))
	}
}

// Buttons returns the currently tracked held-button mask
func (d *Decoder) Buttons() uint8 {
	return d.buttons
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func buttonBit(b terminal.MouseButton) uint8 {
	switch b {
	case terminal.MouseBtnLeft:
		return event.MbLeft
	case terminal.MouseBtnMiddle:
		return event.MbMiddle
	case terminal.MouseBtnRight:
		return event.MbRight
	}
	return 0
}

// extendedKeys maps terminal keys with direct framework equivalents
var extendedKeys = map[terminal.Key]event.KeyCode{
	terminal.KeyEnter:     event.KbEnter,
	terminal.KeyTab:       event.KbTab,
	terminal.KeyBacktab:   event.KbShiftTab,
	terminal.KeyBackspace: event.KbBackspace,
	terminal.KeyDelete:    event.KbDel,
	terminal.KeyInsert:    event.KbIns,
	terminal.KeySpace:     event.KbSpace,
	terminal.KeyUp:        event.KbUp,
	terminal.KeyDown:      event.KbDown,
	terminal.KeyLeft:      event.KbLeft,
	terminal.KeyRight:     event.KbRight,
	terminal.KeyHome:      event.KbHome,
	terminal.KeyEnd:       event.KbEnd,
	terminal.KeyPageUp:    event.KbPgUp,
	terminal.KeyPageDown:  event.KbPgDn,
	terminal.KeyF1:        event.KbF1,
	terminal.KeyF2:        event.KbF2,
	terminal.KeyF3:        event.KbF3,
	terminal.KeyF4:        event.KbF4,
	terminal.KeyF5:        event.KbF5,
	terminal.KeyF6:        event.KbF6,
	terminal.KeyF7:        event.KbF7,
	terminal.KeyF8:        event.KbF8,
	terminal.KeyF9:        event.KbF9,
	terminal.KeyF10:       event.KbF10,
	terminal.KeyF11:       event.KbF11,
	terminal.KeyF12:       event.KbF12,
	terminal.KeyCtrlC:     event.KbCtrlC,
}

// translateKey maps a raw key event to a framework key code
func translateKey(tev terminal.Event) (event.KeyCode, bool) {
	if tev.Key == terminal.KeyRune {
		if tev.Modifiers&terminal.ModAlt != 0 {
			if isLetter(tev.Rune) {
				return event.Alt(tev.Rune), true
			}
			return 0, false
		}
		if tev.Rune >= 0x20 && tev.Rune < 0x7F {
			return event.KeyCode(tev.Rune), true
		}
		// Non-ASCII text input is outside the key code space
		return 0, false
	}

	if code, ok := extendedKeys[tev.Key]; ok {
		return code, true
	}
	return 0, false
}
