package terminal

import (
	"testing"
)

func parseAll(t *testing.T, data string) ([]Event, int) {
	t.Helper()
	r := newInputReader(nil, make(chan Event, 8))
	consumed := r.parseInput([]byte(data))
	return r.pending, consumed
}

func TestParsePrintableRun(t *testing.T) {
	evs, consumed := parseAll(t, "abc")
	if consumed != 3 {
		t.Fatalf("consumed = %d, want 3", consumed)
	}
	if len(evs) != 3 {
		t.Fatalf("got %d events, want 3", len(evs))
	}
	want := []rune{'a', 'b', 'c'}
	for i, ev := range evs {
		if ev.Key != KeyRune || ev.Rune != want[i] {
			t.Errorf("event %d: key=%d rune=%q, want KeyRune %q", i, ev.Key, ev.Rune, want[i])
		}
	}
}

func TestParseControlKeys(t *testing.T) {
	cases := []struct {
		in  string
		key Key
	}{
		{"\x0d", KeyEnter},
		{"\x0a", KeyEnter},
		{"\x09", KeyTab},
		{"\x08", KeyBackspace},
		{"\x7f", KeyBackspace},
		{"\x03", KeyCtrlC},
		{"\x18", KeyCtrlX},
	}
	for _, tc := range cases {
		evs, _ := parseAll(t, tc.in)
		if len(evs) != 1 || evs[0].Key != tc.key {
			t.Errorf("input %q: got %+v, want key %d", tc.in, evs, tc.key)
		}
	}
}

func TestParseCSISequences(t *testing.T) {
	cases := []struct {
		in  string
		key Key
		mod Modifier
	}{
		{"\x1b[A", KeyUp, ModNone},
		{"\x1b[B", KeyDown, ModNone},
		{"\x1b[C", KeyRight, ModNone},
		{"\x1b[D", KeyLeft, ModNone},
		{"\x1b[Z", KeyBacktab, ModShift},
		{"\x1b[H", KeyHome, ModNone},
		{"\x1b[F", KeyEnd, ModNone},
		{"\x1b[5~", KeyPageUp, ModNone},
		{"\x1b[6~", KeyPageDown, ModNone},
		{"\x1b[3~", KeyDelete, ModNone},
		{"\x1b[2~", KeyInsert, ModNone},
		{"\x1b[11~", KeyF1, ModNone},
		{"\x1b[21~", KeyF10, ModNone},
		{"\x1b[24~", KeyF12, ModNone},
		{"\x1b[1;5C", KeyRight, ModCtrl},
		{"\x1b[1;2A", KeyUp, ModShift},
	}
	for _, tc := range cases {
		evs, _ := parseAll(t, tc.in)
		if len(evs) != 1 {
			t.Errorf("input %q: got %d events, want 1", tc.in, len(evs))
			continue
		}
		if evs[0].Key != tc.key || evs[0].Modifiers != tc.mod {
			t.Errorf("input %q: key=%d mod=%d, want key=%d mod=%d",
				tc.in, evs[0].Key, evs[0].Modifiers, tc.key, tc.mod)
		}
	}
}

func TestParseSS3FunctionKeys(t *testing.T) {
	cases := []struct {
		in  string
		key Key
	}{
		{"\x1bOP", KeyF1},
		{"\x1bOQ", KeyF2},
		{"\x1bOR", KeyF3},
		{"\x1bOS", KeyF4},
		{"\x1bOA", KeyUp},
	}
	for _, tc := range cases {
		evs, _ := parseAll(t, tc.in)
		if len(evs) != 1 || evs[0].Key != tc.key {
			t.Errorf("input %q: got %+v, want key %d", tc.in, evs, tc.key)
		}
	}
}

func TestParseDoubleEscape(t *testing.T) {
	evs, consumed := parseAll(t, "\x1b\x1b")
	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2", consumed)
	}
	if len(evs) != 1 || evs[0].Key != KeyEscape || evs[0].Modifiers != ModAlt {
		t.Fatalf("got %+v, want alt-modified Escape", evs)
	}
}

func TestParseAltLetter(t *testing.T) {
	evs, _ := parseAll(t, "\x1bx")
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ev := evs[0]
	if ev.Key != KeyRune || ev.Rune != 'x' || ev.Modifiers != ModAlt {
		t.Fatalf("got %+v, want Alt+x", ev)
	}
}

func TestParseIncompleteEscapeWaits(t *testing.T) {
	for _, in := range []string{"\x1b", "\x1b[", "\x1b[1;5", "\x1b[<0;10"} {
		evs, consumed := parseAll(t, in)
		if consumed != 0 || len(evs) != 0 {
			t.Errorf("input %q: consumed=%d events=%d, want parser to wait", in, consumed, len(evs))
		}
	}
}

func TestParseSGRMousePress(t *testing.T) {
	evs, consumed := parseAll(t, "\x1b[<0;10;5M")
	if consumed != 10 {
		t.Fatalf("consumed = %d, want 10", consumed)
	}
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ev := evs[0]
	if ev.Type != EventMouse {
		t.Fatalf("type = %d, want EventMouse", ev.Type)
	}
	if ev.MouseX != 9 || ev.MouseY != 4 {
		t.Errorf("position = (%d,%d), want (9,4)", ev.MouseX, ev.MouseY)
	}
	if ev.MouseBtn != MouseBtnLeft || ev.MouseAction != MouseActionPress {
		t.Errorf("btn=%v action=%v, want Left Press", ev.MouseBtn, ev.MouseAction)
	}
}

func TestParseSGRMouseRelease(t *testing.T) {
	evs, _ := parseAll(t, "\x1b[<0;3;2m")
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ev := evs[0]
	if ev.MouseAction != MouseActionRelease {
		t.Errorf("action = %v, want Release", ev.MouseAction)
	}
	if ev.MouseX != 2 || ev.MouseY != 1 {
		t.Errorf("position = (%d,%d), want (2,1)", ev.MouseX, ev.MouseY)
	}
}

func TestParseSGRMouseDragAndWheel(t *testing.T) {
	evs, _ := parseAll(t, "\x1b[<32;5;6M")
	if len(evs) != 1 || evs[0].MouseAction != MouseActionDrag || evs[0].MouseBtn != MouseBtnLeft {
		t.Errorf("drag: got %+v", evs)
	}

	evs, _ = parseAll(t, "\x1b[<64;1;1M")
	if len(evs) != 1 || evs[0].MouseBtn != MouseBtnWheelUp {
		t.Errorf("wheel up: got %+v", evs)
	}

	evs, _ = parseAll(t, "\x1b[<65;1;1M")
	if len(evs) != 1 || evs[0].MouseBtn != MouseBtnWheelDown {
		t.Errorf("wheel down: got %+v", evs)
	}
}

func TestParseUTF8Rune(t *testing.T) {
	evs, consumed := parseAll(t, "\xc3\xa9")
	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2", consumed)
	}
	if len(evs) != 1 || evs[0].Rune != 'é' {
		t.Fatalf("got %+v, want rune é", evs)
	}
}

func TestParseIncompleteUTF8Waits(t *testing.T) {
	evs, consumed := parseAll(t, "\xc3")
	if consumed != 0 || len(evs) != 0 {
		t.Fatalf("consumed=%d events=%d, want parser to wait", consumed, len(evs))
	}
}

func TestParseUnknownCSISwallowed(t *testing.T) {
	evs, consumed := parseAll(t, "\x1b[99y")
	if consumed != 5 {
		t.Fatalf("consumed = %d, want 5", consumed)
	}
	if len(evs) != 0 {
		t.Fatalf("got %d events, want unknown sequence swallowed", len(evs))
	}
}

func TestParseMixedStream(t *testing.T) {
	evs, consumed := parseAll(t, "a\x1b[Ab\x1b[<0;1;1Mc")
	if consumed != 15 {
		t.Fatalf("consumed = %d, want 15", consumed)
	}
	if len(evs) != 5 {
		t.Fatalf("got %d events, want 5", len(evs))
	}
	if evs[0].Rune != 'a' || evs[1].Key != KeyUp || evs[2].Rune != 'b' ||
		evs[3].Type != EventMouse || evs[4].Rune != 'c' {
		t.Errorf("unexpected sequence: %+v", evs)
	}
}
