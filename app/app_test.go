package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vista/clipboard"
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/terminal"
	"github.com/lixenwraith/vista/views"
)

// scriptScreen feeds a fixed event sequence to the run loop
type scriptScreen struct {
	ch   chan terminal.Event
	w, h int
}

func newScriptScreen(events ...terminal.Event) *scriptScreen {
	s := &scriptScreen{ch: make(chan terminal.Event, len(events)+1), w: 80, h: 25}
	for _, ev := range events {
		s.ch <- ev
	}
	return s
}

func (s *scriptScreen) Init() error                       { return nil }
func (s *scriptScreen) Fini()                             {}
func (s *scriptScreen) Suspend() error                    { return nil }
func (s *scriptScreen) Resume() error                     { return nil }
func (s *scriptScreen) Size() (int, int)                  { return s.w, s.h }
func (s *scriptScreen) ColorMode() terminal.ColorMode     { return terminal.ColorMode16 }
func (s *scriptScreen) Flush([]draw.Cell, int, int) error { return nil }
func (s *scriptScreen) Clear(palette.Attr)                {}
func (s *scriptScreen) SetCursorVisible(bool)             {}
func (s *scriptScreen) MoveCursor(int, int)               {}
func (s *scriptScreen) Sync()                             {}
func (s *scriptScreen) PostEvent(ev terminal.Event)       { s.ch <- ev }
func (s *scriptScreen) SetMouseEnabled(bool) error        { return nil }

func (s *scriptScreen) PollEvent() terminal.Event {
	ev, ok := <-s.ch
	if !ok {
		return terminal.Event{Type: terminal.EventClosed}
	}
	return ev
}

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func runWithTimeout(t *testing.T, a *Application) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("run loop did not terminate")
		return nil
	}
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	scr := newScriptScreen(key(terminal.KeyCtrlC))
	a := New(Config{Screen: scr})

	err := runWithTimeout(t, a)

	assert.NoError(t, err)
}

func TestRunQuitsOnAltX(t *testing.T) {
	scr := newScriptScreen(terminal.Event{
		Type:      terminal.EventKey,
		Key:       terminal.KeyRune,
		Rune:      'x',
		Modifiers: terminal.ModAlt,
	})
	a := New(Config{Screen: scr})

	assert.NoError(t, runWithTimeout(t, a))
}

func TestRunStopsOnTerminalClose(t *testing.T) {
	scr := newScriptScreen(terminal.Event{Type: terminal.EventClosed})
	a := New(Config{Screen: scr})

	assert.NoError(t, runWithTimeout(t, a))
}

func TestLayoutReservesChromeRows(t *testing.T) {
	scr := newScriptScreen(key(terminal.KeyCtrlC))
	a := New(Config{
		Screen:      scr,
		Menus:       []views.Menu{{Title: "~F~ile"}},
		StatusItems: []views.StatusItem{{Text: "~F10~ Menu"}},
	})

	require.NoError(t, runWithTimeout(t, a))

	assert.Equal(t, geom.NewRect(0, 1, 80, 24), a.Desktop().Bounds(),
		"desktop sits between menu bar and status line")
}

func TestCloseCommandRemovesTopWindow(t *testing.T) {
	scr := newScriptScreen()
	a := New(Config{Screen: scr})
	a.desktop.Add(views.NewWindow(geom.NewRect(5, 2, 40, 15), "One"))
	a.desktop.Add(views.NewWindow(geom.NewRect(20, 5, 60, 20), "Two"))
	require.Equal(t, 3, a.desktop.ChildCount())

	a.handleCommand(command.Close)

	assert.Equal(t, 2, a.desktop.ChildCount())
	top := a.desktop.TopMost()
	require.NotNil(t, top)
	assert.Equal(t, geom.NewRect(5, 2, 40, 15), top.Bounds())
}

func TestUserCommandReachesHandler(t *testing.T) {
	var got command.Id
	scr := newScriptScreen()
	a := New(Config{
		Screen: scr,
		OnCommand: func(_ *Application, id command.Id) bool {
			got = id
			return true
		},
	})

	a.handleCommand(command.UserBase + 7)

	assert.Equal(t, command.UserBase+7, got)
}

func TestCommandSetChangeBroadcastsToChrome(t *testing.T) {
	scr := newScriptScreen(key(terminal.KeyCtrlC))
	set := command.NewSet()
	a := New(Config{Screen: scr, Commands: set})
	set.Disable(command.Save)

	require.NoError(t, runWithTimeout(t, a))

	assert.False(t, set.Changed(), "dirty flag cleared after the broadcast")
}

func TestConfigInjectsCommandSetAndClipboard(t *testing.T) {
	set := command.NewSet()
	clip := clipboard.New()
	a := New(Config{Screen: newScriptScreen(), Commands: set, Clipboard: clip})

	assert.Same(t, set, a.CommandSet())
	assert.Same(t, clip, a.Clipboard())
	assert.NotSame(t, command.Default(), a.CommandSet(),
		"an injected set leaves the process-wide set untouched")
}
