package views

import (
	"time"

	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
	"github.com/lixenwraith/vista/terminal"
)

// recorder is a scriptable child view for container tests
type recorder struct {
	Base
	focusable bool
	seen      []event.Event
}

func (p *recorder) CanFocus() bool { return p.focusable }

func (p *recorder) HandleEvent(ev *event.Event) {
	p.seen = append(p.seen, *ev)
}

// stubScreen satisfies terminal.Screen for renderer-backed tests
type stubScreen struct {
	w, h int
}

func (s *stubScreen) Init() error                       { return nil }
func (s *stubScreen) Fini()                             {}
func (s *stubScreen) Suspend() error                    { return nil }
func (s *stubScreen) Resume() error                     { return nil }
func (s *stubScreen) Size() (int, int)                  { return s.w, s.h }
func (s *stubScreen) ColorMode() terminal.ColorMode     { return terminal.ColorMode16 }
func (s *stubScreen) Flush([]draw.Cell, int, int) error { return nil }
func (s *stubScreen) Clear(palette.Attr)                {}
func (s *stubScreen) SetCursorVisible(bool)             {}
func (s *stubScreen) MoveCursor(int, int)               {}
func (s *stubScreen) Sync()                             {}
func (s *stubScreen) PollEvent() terminal.Event         { return terminal.Event{} }
func (s *stubScreen) PostEvent(terminal.Event)          {}
func (s *stubScreen) SetMouseEnabled(bool) error        { return nil }

func newTestRenderer(w, h int) *render.Renderer {
	return render.New(&stubScreen{w: w, h: h})
}

// scriptHost feeds Dialog.Execute a fixed event sequence
type scriptHost struct {
	r      *render.Renderer
	set    *command.Set
	events []event.Event
}

func newScriptHost(events ...event.Event) *scriptHost {
	return &scriptHost{
		r:      newTestRenderer(80, 25),
		set:    command.NewSet(),
		events: events,
	}
}

func (h *scriptHost) Renderer() *render.Renderer { return h.r }
func (h *scriptHost) DrawBase()                  {}
func (h *scriptHost) CommandSet() *command.Set   { return h.set }

// PollEvent pops the next scripted event. A Nothing entry models an
// empty poll tick.
func (h *scriptHost) PollEvent(time.Duration) (event.Event, bool) {
	if len(h.events) == 0 {
		return event.Event{}, false
	}
	ev := h.events[0]
	h.events = h.events[1:]
	return ev, ev.What != event.Nothing
}
