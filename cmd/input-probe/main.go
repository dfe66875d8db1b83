// Command input-probe shows raw terminal events and the decoded
// framework events side by side. Useful when chasing escape sequence
// or mouse reporting problems on a new terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/input"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
	"github.com/lixenwraith/vista/terminal"
)

const maxLog = 16

func main() {
	scr := terminal.New()
	if err := scr.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer scr.Fini()

	if err := scr.SetMouseEnabled(true); err != nil {
		fmt.Fprintf(os.Stderr, "mouse: %v\n", err)
	}

	r := render.New(scr)
	dec := input.NewDecoder()

	var rawLog, decLog []string
	addLog := func(log *[]string, s string) {
		if len(*log) >= maxLog {
			copy(*log, (*log)[1:])
			*log = (*log)[:maxLog-1]
		}
		*log = append(*log, s)
	}

	evCh := make(chan terminal.Event, 8)
	go func() {
		for {
			tev := scr.PollEvent()
			evCh <- tev
			if tev.Type == terminal.EventClosed {
				return
			}
		}
	}()

	for {
		drawProbe(r, rawLog, decLog)
		if err := r.Flush(); err != nil {
			return
		}

		select {
		case tev := <-evCh:
			switch tev.Type {
			case terminal.EventClosed:
				return
			case terminal.EventResize:
				r.Resize(tev.Width, tev.Height)
				scr.Sync()
				continue
			case terminal.EventError:
				addLog(&rawLog, fmt.Sprintf("error: %v", tev.Err))
				continue
			}
			addLog(&rawLog, formatRaw(tev))
			dec.Feed(tev)
		case <-time.After(100 * time.Millisecond):
			dec.Idle()
		}

		for {
			ev, ok := dec.Poll()
			if !ok {
				break
			}
			addLog(&decLog, formatDecoded(ev))
			if ev.What == event.Keyboard && ev.Key == event.KbCtrlC {
				return
			}
		}
	}
}

func formatRaw(tev terminal.Event) string {
	switch tev.Type {
	case terminal.EventKey:
		if tev.Key == terminal.KeyRune {
			return fmt.Sprintf("key rune %q mods=%d", tev.Rune, tev.Modifiers)
		}
		return fmt.Sprintf("key %v mods=%d", tev.Key, tev.Modifiers)
	case terminal.EventMouse:
		return fmt.Sprintf("mouse %v %v at (%d,%d)",
			tev.MouseAction, tev.MouseBtn, tev.MouseX, tev.MouseY)
	}
	return fmt.Sprintf("type=%d", tev.Type)
}

func formatDecoded(ev event.Event) string {
	switch ev.What {
	case event.Keyboard:
		if ch, ok := ev.Key.IsAlt(); ok {
			return fmt.Sprintf("kb Alt+%c", ch)
		}
		if ev.Key.IsChar() {
			return fmt.Sprintf("kb %q", rune(ev.Key))
		}
		return fmt.Sprintf("kb 0x%04X", uint16(ev.Key))
	case event.MouseDown, event.MouseUp, event.MouseMove:
		return fmt.Sprintf("mouse what=%d pos=(%d,%d) btns=%03b",
			ev.What, ev.Mouse.Pos.X, ev.Mouse.Pos.Y, ev.Mouse.Buttons)
	}
	return fmt.Sprintf("what=%d", ev.What)
}

func drawProbe(r *render.Renderer, rawLog, decLog []string) {
	w, h := r.Size()
	r.Clear(palette.Desktop)

	title := draw.NewBuffer(w)
	title.MoveChar(0, ' ', palette.MenuNormal, w)
	title.MoveStr(1, "input-probe  (Ctrl+C quits)", palette.MenuNormal)
	r.WriteBuffer(geom.Pt(0, 0), title)

	writeColumn(r, 1, 2, h, "raw terminal events:", rawLog)
	writeColumn(r, w/2, 2, h, "decoded events:", decLog)
}

func writeColumn(r *render.Renderer, x, y, h int, header string, log []string) {
	hdr := draw.NewBuffer(len(header))
	hdr.MoveStr(0, header, palette.NewAttr(palette.Yellow, palette.Blue))
	r.WriteBuffer(geom.Pt(x, y), hdr)
	for i, entry := range log {
		if y+2+i >= h {
			break
		}
		line := draw.NewBuffer(len([]rune(entry)))
		line.MoveStr(0, entry, palette.Desktop)
		r.WriteBuffer(geom.Pt(x, y+2+i), line)
	}
}
