package views

import (
	"time"

	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
)

// pollTick bounds the modal wait so the dialog stays responsive to
// escape timeouts and command set changes
const pollTick = 50 * time.Millisecond

// Dialog is a modal window. Execute runs a nested event loop that owns
// the screen until the dialog produces a command; events never reach
// views outside the dialog subtree while it runs.
type Dialog struct {
	Window
}

// NewDialog creates a modal dialog
func NewDialog(bounds geom.Rect, title string) *Dialog {
	d := &Dialog{Window: *NewWindow(bounds, title)}
	return d
}

// HandleEvent adds the modal keyboard conventions on top of the window
// behavior: double escape cancels, Enter fires the default button.
func (d *Dialog) HandleEvent(ev *event.Event) {
	d.Window.HandleEvent(ev)
	if ev.What != event.Keyboard {
		return
	}
	switch ev.Key {
	case event.KbEscEsc:
		*ev = event.Cmd(command.Cancel)
	case event.KbEnter:
		if cmd, ok := d.defaultCommand(); ok {
			*ev = event.Cmd(cmd)
		} else {
			ev.Clear()
		}
	}
}

// defaultCommand finds the enabled default button's command
func (d *Dialog) defaultCommand() (command.Id, bool) {
	for i := 0; i < d.interior.ChildCount(); i++ {
		c := d.interior.ChildAt(i)
		dc, ok := c.(DefaultCommander)
		if !ok || !dc.IsDefault() || !c.CanFocus() {
			continue
		}
		return dc.Command(), true
	}
	return command.None, false
}

// Execute runs the dialog modally and returns the command that ended
// it. Cancellation paths (double escape, the close control) return
// command.Cancel. The previous focus and modal state are restored on
// return.
func (d *Dialog) Execute(h Host) command.Id {
	result := command.Cancel

	prevState := d.state
	d.state |= SfModal
	d.SetFocus(true)

	r := h.Renderer()
	for {
		h.DrawBase()
		d.Draw(r)
		d.UpdateCursor(r)
		r.Flush()

		ev, ok := h.PollEvent(pollTick)
		if h.CommandSet().Changed() {
			// Modal isolation: only the dialog subtree observes the
			// change now; the outer loop re-broadcasts after return
			bc := event.Bcast(command.CommandSetChanged)
			d.Window.HandleEvent(&bc)
		}
		if !ok {
			continue
		}

		d.HandleEvent(&ev)
		if ev.What == event.Command {
			if ev.Cmd == command.Close {
				result = command.Cancel
			} else {
				result = ev.Cmd
			}
			break
		}
	}

	d.SetFocus(false)
	d.state = prevState
	return result
}
