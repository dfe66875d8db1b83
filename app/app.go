// Package app ties the screen, the input decoder and the view tree
// into an application run loop.
package app

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/lixenwraith/vista/clipboard"
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/input"
	"github.com/lixenwraith/vista/render"
	"github.com/lixenwraith/vista/terminal"
	"github.com/lixenwraith/vista/views"
)

// pollTick bounds the idle wait so escape timeouts and command set
// changes are observed promptly
const pollTick = 50 * time.Millisecond

// Config selects the application chrome. Zero-value fields fall back
// to defaults: an auto-detected screen, the process-wide command set
// and clipboard, no menu bar, no status line.
type Config struct {
	Screen      terminal.Screen
	Menus       []views.Menu
	StatusItems []views.StatusItem

	// Commands overrides the enablement set the chrome observes.
	// Leave nil for the process-wide set.
	Commands *command.Set

	// Clipboard overrides the shared text clipboard
	Clipboard *clipboard.Clipboard

	// OnCommand receives commands the framework does not consume.
	// Returning true marks the command handled.
	OnCommand func(a *Application, id command.Id) bool
}

// Application owns the run loop. It draws the desktop between the menu
// bar and the status line, decodes input, dispatches events through
// the chrome and the view tree, and reacts to the built-in commands.
type Application struct {
	screen   terminal.Screen
	renderer *render.Renderer
	decoder  *input.Decoder
	clip     *clipboard.Clipboard
	set      *command.Set

	desktop    *views.Desktop
	menuBar    *views.MenuBar
	statusLine *views.StatusLine

	onCommand func(a *Application, id command.Id) bool

	evCh    chan terminal.Event
	running bool
	lastErr error
}

// New builds an application from cfg. The screen is initialized in
// Run, not here.
func New(cfg Config) *Application {
	scr := cfg.Screen
	if scr == nil {
		scr = terminal.New()
	}
	set := cfg.Commands
	if set == nil {
		set = command.Default()
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = clipboard.Default()
	}
	a := &Application{
		screen:    scr,
		decoder:   input.NewDecoder(),
		clip:      clip,
		set:       set,
		onCommand: cfg.OnCommand,
		evCh:      make(chan terminal.Event, 8),
	}
	if len(cfg.Menus) > 0 {
		a.menuBar = views.NewMenuBar(geom.NewRect(0, 0, 0, 1), cfg.Menus)
		a.menuBar.UseSet(a.set)
	}
	if len(cfg.StatusItems) > 0 {
		a.statusLine = views.NewStatusLine(geom.NewRect(0, 0, 0, 1), cfg.StatusItems)
		a.statusLine.UseSet(a.set)
	}
	a.desktop = views.NewDesktop(geom.NewRect(0, 0, 0, 0))
	return a
}

// Desktop returns the window container
func (a *Application) Desktop() *views.Desktop { return a.desktop }

// Clipboard returns the shared text clipboard
func (a *Application) Clipboard() *clipboard.Clipboard { return a.clip }

// Renderer returns the shared renderer. Valid once Run has started.
func (a *Application) Renderer() *render.Renderer { return a.renderer }

// CommandSet returns the enablement set broadcasts are driven from
func (a *Application) CommandSet() *command.Set { return a.set }

// Quit ends the run loop after the current iteration
func (a *Application) Quit() { a.running = false }

// Run initializes the terminal and drives the event loop until a Quit
// command or a terminal failure. The terminal is restored on every
// exit path; a panic propagates after restoration.
func (a *Application) Run() (err error) {
	if err = a.screen.Init(); err != nil {
		return err
	}
	defer func() {
		a.screen.Fini()
		if r := recover(); r != nil {
			panic(r)
		}
		if err == nil {
			err = a.lastErr
		}
	}()

	if err = a.screen.SetMouseEnabled(true); err != nil {
		return err
	}

	w, h := a.screen.Size()
	a.renderer = render.New(a.screen)
	a.layout(w, h)

	go a.readEvents()

	a.running = true
	for a.running {
		a.drawFrame()

		ev, ok := a.pollEvent(pollTick)

		if a.set.Changed() {
			bc := event.Bcast(command.CommandSetChanged)
			a.dispatch(&bc)
			a.set.ClearChanged()
		}

		if ok {
			a.handleEvent(&ev)
		}
	}
	return nil
}

// readEvents pumps raw terminal events into the loop's channel
func (a *Application) readEvents() {
	for {
		tev := a.screen.PollEvent()
		a.evCh <- tev
		if tev.Type == terminal.EventClosed {
			return
		}
	}
}

// pollEvent waits up to timeout for a decoded event. Empty waits tick
// the decoder so a held escape resolves as a lone keypress.
func (a *Application) pollEvent(timeout time.Duration) (event.Event, bool) {
	if ev, ok := a.decoder.Poll(); ok {
		return ev, true
	}
	select {
	case tev := <-a.evCh:
		switch tev.Type {
		case terminal.EventResize:
			a.resize(tev.Width, tev.Height)
		case terminal.EventError:
			a.lastErr = tev.Err
			a.running = false
		case terminal.EventClosed:
			a.running = false
		default:
			a.decoder.Feed(tev)
		}
	case <-time.After(timeout):
		a.decoder.Idle()
	}
	return a.decoder.Poll()
}

// layout places the chrome and the desktop for a w by h terminal
func (a *Application) layout(w, h int) {
	top, bottom := 0, h
	if a.menuBar != nil {
		a.menuBar.SetBounds(geom.NewRect(0, 0, w, 1))
		top = 1
	}
	if a.statusLine != nil {
		a.statusLine.SetBounds(geom.NewRect(0, h-1, w, h))
		bottom = h - 1
	}
	if bottom < top {
		bottom = top
	}
	a.desktop.SetBounds(geom.NewRect(0, top, w, bottom))
}

func (a *Application) resize(w, h int) {
	a.renderer.Resize(w, h)
	a.layout(w, h)
	a.screen.Sync()
}

// drawFrame composes desktop, chrome and cursor, then flushes
func (a *Application) drawFrame() {
	a.DrawBase()
	a.desktop.UpdateCursor(a.renderer)
	if err := a.renderer.Flush(); err != nil {
		a.lastErr = err
		a.running = false
	}
}

// DrawBase repaints the desktop and the chrome without flushing.
// Modal loops call it to restore the background each tick.
func (a *Application) DrawBase() {
	a.desktop.Draw(a.renderer)
	if a.menuBar != nil {
		a.menuBar.Draw(a.renderer)
	}
	if a.statusLine != nil {
		a.statusLine.Draw(a.renderer)
	}
}

// PollEvent exposes the timed poll to modal loops
func (a *Application) PollEvent(timeout time.Duration) (event.Event, bool) {
	return a.pollEvent(timeout)
}

// dispatch walks the chrome and the desktop in priority order,
// stopping once a stage consumes the event. Broadcasts visit every
// stage regardless.
func (a *Application) dispatch(ev *event.Event) {
	stages := []views.View{}
	if a.menuBar != nil {
		stages = append(stages, a.menuBar)
	}
	stages = append(stages, a.desktop)
	if a.statusLine != nil {
		stages = append(stages, a.statusLine)
	}
	for _, s := range stages {
		s.HandleEvent(ev)
		if ev.What == event.Nothing {
			return
		}
	}
}

// handleEvent runs one event through dispatch and the fallback
// keyboard shortcuts, then reacts to any resulting command
func (a *Application) handleEvent(ev *event.Event) {
	a.dispatch(ev)

	if ev.What == event.Keyboard {
		switch ev.Key {
		case event.KbCtrlC, event.Alt('x'):
			*ev = event.Cmd(command.Quit)
		case event.KbF10:
			// Without a menu bar F10 falls through to quit
			*ev = event.Cmd(command.Quit)
		}
	}

	if ev.What == event.Command {
		a.handleCommand(ev.Cmd)
	}
}

// handleCommand reacts to the built-in commands and forwards the rest
func (a *Application) handleCommand(id command.Id) {
	switch id {
	case command.Quit:
		a.running = false
		return
	case command.Close:
		a.closeTopWindow()
		return
	case command.Suspend:
		a.suspend()
		return
	}
	if a.onCommand != nil && a.onCommand(a, id) {
		return
	}
}

// closeTopWindow removes the topmost desktop window
func (a *Application) closeTopWindow() {
	i := a.desktop.ChildCount() - 1
	if a.desktop.TopMost() != nil {
		a.desktop.Remove(i)
	}
}

// Suspend hands the terminal to the shell until the process is
// continued, as command.Suspend does
func (a *Application) Suspend() {
	a.suspend()
}

func (a *Application) suspend() {
	if err := a.screen.Suspend(); err != nil {
		a.lastErr = err
		a.running = false
		return
	}
	_ = unix.Kill(unix.Getpid(), unix.SIGTSTP)
	if err := a.screen.Resume(); err != nil {
		a.lastErr = err
		a.running = false
		return
	}
	a.screen.Sync()
}
