// Package tcellscreen adapts a tcell screen to the terminal.Screen
// interface. It trades the hand-rolled ANSI path for tcell's terminfo
// database, which covers terminals the raw driver does not.
package tcellscreen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/terminal"
)

type screen struct {
	ts       tcell.Screen
	mouseOn  bool
	lastBtns tcell.ButtonMask
}

// New creates a Screen backed by a tcell terminal screen
func New() (terminal.Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &screen{ts: ts}, nil
}

func (s *screen) Init() error {
	if err := s.ts.Init(); err != nil {
		return err
	}
	s.ts.HideCursor()
	return nil
}

func (s *screen) Fini() {
	s.ts.Fini()
}

func (s *screen) Suspend() error {
	return s.ts.Suspend()
}

func (s *screen) Resume() error {
	return s.ts.Resume()
}

func (s *screen) Size() (int, int) {
	return s.ts.Size()
}

func (s *screen) ColorMode() terminal.ColorMode {
	return terminal.ColorMode16
}

// attrStyle converts a packed palette attribute to a tcell style
func attrStyle(attr palette.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(attr.Fg()))).
		Background(tcell.PaletteColor(int(attr.Bg())))
}

func (s *screen) Flush(cells []draw.Cell, width, height int) error {
	if len(cells) < width*height {
		return nil
	}
	// tcell keeps its own front buffer and diffs on Show
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.ts.SetContent(x, y, r, nil, attrStyle(c.Attr))
		}
	}
	s.ts.Show()
	return nil
}

func (s *screen) Clear(attr palette.Attr) {
	s.ts.Fill(' ', attrStyle(attr))
	s.ts.Show()
}

func (s *screen) SetCursorVisible(visible bool) {
	if !visible {
		s.ts.HideCursor()
	}
}

func (s *screen) MoveCursor(x, y int) {
	s.ts.ShowCursor(x, y)
}

func (s *screen) Sync() {
	s.ts.Sync()
}

func (s *screen) PollEvent() terminal.Event {
	for {
		switch ev := s.ts.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			return terminal.Event{Type: terminal.EventResize, Width: w, Height: h}
		case *tcell.EventKey:
			if out, ok := convertKey(ev); ok {
				return out
			}
		case *tcell.EventMouse:
			return s.convertMouse(ev)
		case nil:
			return terminal.Event{Type: terminal.EventClosed}
		}
	}
}

func (s *screen) PostEvent(ev terminal.Event) {
	// Only key events are injected synthetically
	if ev.Type == terminal.EventKey && ev.Key == terminal.KeyRune {
		s.ts.PostEvent(tcell.NewEventKey(tcell.KeyRune, ev.Rune, tcell.ModNone))
	}
}

func (s *screen) SetMouseEnabled(enabled bool) error {
	if enabled == s.mouseOn {
		return nil
	}
	s.mouseOn = enabled
	if enabled {
		s.ts.EnableMouse()
	} else {
		s.ts.DisableMouse()
	}
	return nil
}

var tcellKeys = map[tcell.Key]terminal.Key{
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyEsc:        terminal.KeyEscape,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlX:      terminal.KeyCtrlX,
	tcell.KeyCtrlV:      terminal.KeyCtrlV,
	tcell.KeyCtrlZ:      terminal.KeyCtrlZ,
}

func convertKey(ev *tcell.EventKey) (terminal.Event, bool) {
	out := terminal.Event{Type: terminal.EventKey}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		out.Modifiers |= terminal.ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		out.Modifiers |= terminal.ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		out.Modifiers |= terminal.ModCtrl
	}

	if ev.Key() == tcell.KeyRune {
		out.Key = terminal.KeyRune
		out.Rune = ev.Rune()
		return out, true
	}
	if k, ok := tcellKeys[ev.Key()]; ok {
		out.Key = k
		return out, true
	}
	return terminal.Event{}, false
}

var tcellButtons = []struct {
	mask tcell.ButtonMask
	btn  terminal.MouseButton
}{
	{tcell.Button1, terminal.MouseBtnLeft},
	{tcell.Button2, terminal.MouseBtnMiddle},
	{tcell.Button3, terminal.MouseBtnRight},
}

// convertMouse turns tcell's button-state events into edge events,
// matching what the raw SGR decoder produces
func (s *screen) convertMouse(ev *tcell.EventMouse) terminal.Event {
	x, y := ev.Position()
	out := terminal.Event{Type: terminal.EventMouse, MouseX: x, MouseY: y}

	btns := ev.Buttons() &^ (tcell.WheelUp | tcell.WheelDown)
	prev := s.lastBtns
	s.lastBtns = btns

	if ev.Buttons()&tcell.WheelUp != 0 {
		out.MouseBtn = terminal.MouseBtnWheelUp
		out.MouseAction = terminal.MouseActionPress
		return out
	}
	if ev.Buttons()&tcell.WheelDown != 0 {
		out.MouseBtn = terminal.MouseBtnWheelDown
		out.MouseAction = terminal.MouseActionPress
		return out
	}

	for _, tb := range tcellButtons {
		pressed := btns&tb.mask != 0
		was := prev&tb.mask != 0
		if pressed && !was {
			out.MouseBtn = tb.btn
			out.MouseAction = terminal.MouseActionPress
			return out
		}
		if !pressed && was {
			out.MouseBtn = tb.btn
			out.MouseAction = terminal.MouseActionRelease
			return out
		}
	}

	// No edge: motion with or without a held button
	for _, tb := range tcellButtons {
		if btns&tb.mask != 0 {
			out.MouseBtn = tb.btn
			out.MouseAction = terminal.MouseActionDrag
			return out
		}
	}
	out.MouseBtn = terminal.MouseBtnNone
	out.MouseAction = terminal.MouseActionMove
	return out
}
