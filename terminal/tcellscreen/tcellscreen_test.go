package tcellscreen

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vista/terminal"
)

func TestConvertKeyRuneWithModifiers(t *testing.T) {
	ev, ok := convertKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	if !ok {
		t.Fatal("rune key not converted")
	}
	if ev.Key != terminal.KeyRune || ev.Rune != 'x' {
		t.Errorf("got key=%d rune=%q, want KeyRune 'x'", ev.Key, ev.Rune)
	}
	if ev.Modifiers&terminal.ModAlt == 0 {
		t.Error("alt modifier lost")
	}
}

func TestConvertKeySpecials(t *testing.T) {
	cases := []struct {
		in   tcell.Key
		want terminal.Key
	}{
		{tcell.KeyEnter, terminal.KeyEnter},
		{tcell.KeyBacktab, terminal.KeyBacktab},
		{tcell.KeyBackspace2, terminal.KeyBackspace},
		{tcell.KeyF10, terminal.KeyF10},
		{tcell.KeyCtrlC, terminal.KeyCtrlC},
	}
	for _, c := range cases {
		ev, ok := convertKey(tcell.NewEventKey(c.in, 0, tcell.ModNone))
		if !ok {
			t.Errorf("key %d not converted", c.in)
			continue
		}
		if ev.Key != c.want {
			t.Errorf("key %d: got %d, want %d", c.in, ev.Key, c.want)
		}
	}
}

func TestConvertKeyUnknownDropped(t *testing.T) {
	if _, ok := convertKey(tcell.NewEventKey(tcell.KeyPause, 0, tcell.ModNone)); ok {
		t.Error("unmapped key should be dropped")
	}
}

func mouse(s *screen, x, y int, btns tcell.ButtonMask) terminal.Event {
	return s.convertMouse(tcell.NewEventMouse(x, y, btns, tcell.ModNone))
}

func TestConvertMouseButtonEdges(t *testing.T) {
	s := &screen{}

	ev := mouse(s, 3, 4, tcell.Button1)
	if ev.MouseBtn != terminal.MouseBtnLeft || ev.MouseAction != terminal.MouseActionPress {
		t.Fatalf("press: got btn=%d action=%d", ev.MouseBtn, ev.MouseAction)
	}
	if ev.MouseX != 3 || ev.MouseY != 4 {
		t.Errorf("press at (%d,%d), want (3,4)", ev.MouseX, ev.MouseY)
	}

	// Same button still down at a new position reads as a drag
	ev = mouse(s, 5, 4, tcell.Button1)
	if ev.MouseAction != terminal.MouseActionDrag || ev.MouseBtn != terminal.MouseBtnLeft {
		t.Errorf("drag: got btn=%d action=%d", ev.MouseBtn, ev.MouseAction)
	}

	ev = mouse(s, 5, 4, tcell.ButtonNone)
	if ev.MouseAction != terminal.MouseActionRelease || ev.MouseBtn != terminal.MouseBtnLeft {
		t.Errorf("release: got btn=%d action=%d", ev.MouseBtn, ev.MouseAction)
	}

	ev = mouse(s, 6, 4, tcell.ButtonNone)
	if ev.MouseAction != terminal.MouseActionMove || ev.MouseBtn != terminal.MouseBtnNone {
		t.Errorf("move: got btn=%d action=%d", ev.MouseBtn, ev.MouseAction)
	}
}

func TestConvertMouseWheel(t *testing.T) {
	s := &screen{}

	ev := mouse(s, 0, 0, tcell.WheelUp)
	if ev.MouseBtn != terminal.MouseBtnWheelUp || ev.MouseAction != terminal.MouseActionPress {
		t.Errorf("wheel up: got btn=%d action=%d", ev.MouseBtn, ev.MouseAction)
	}

	ev = mouse(s, 0, 0, tcell.WheelDown)
	if ev.MouseBtn != terminal.MouseBtnWheelDown {
		t.Errorf("wheel down: got btn=%d", ev.MouseBtn)
	}

	// Wheel events must not disturb button edge tracking
	if ev := mouse(s, 0, 0, tcell.Button1); ev.MouseAction != terminal.MouseActionPress {
		t.Errorf("press after wheel: got action=%d", ev.MouseAction)
	}
}
