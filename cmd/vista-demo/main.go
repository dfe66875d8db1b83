// Command vista-demo shows the stock views: a desktop with windows, a
// menu bar, a status line and modal dialogs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/vista/app"
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/terminal"
	"github.com/lixenwraith/vista/terminal/tcellscreen"
	"github.com/lixenwraith/vista/views"
)

const (
	cmdAbout = command.UserBase + iota
	cmdNewWindow
	cmdConfirm
	cmdCopyGreeting
	cmdPasteInfo
)

func main() {
	useTcell := flag.Bool("tcell", false, "drive the terminal through tcell instead of the raw ANSI path")
	flag.Parse()

	var scr terminal.Screen
	if *useTcell {
		s, err := tcellscreen.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "vista-demo: %v\n", err)
			os.Exit(1)
		}
		scr = s
	}

	a := app.New(app.Config{
		Screen: scr,
		Menus: []views.Menu{
			{Title: "~F~ile", Items: []views.MenuItem{
				{Text: "~N~ew Window", Cmd: cmdNewWindow, Key: event.KbF3, KeyText: "F3"},
				{Text: "~C~onfirm...", Cmd: cmdConfirm},
				views.Separator(),
				{Text: "E~x~it", Cmd: command.Quit, Key: event.Alt('x'), KeyText: "Alt+X"},
			}},
			{Title: "~E~dit", Items: []views.MenuItem{
				{Text: "~C~opy Greeting", Cmd: cmdCopyGreeting},
				{Text: "~P~aste Info...", Cmd: cmdPasteInfo},
			}},
			{Title: "~H~elp", Items: []views.MenuItem{
				{Text: "~A~bout", Cmd: cmdAbout, Key: event.KbF1, KeyText: "F1"},
			}},
		},
		StatusItems: []views.StatusItem{
			{Text: "~F1~ About", Key: event.KbF1, Cmd: cmdAbout},
			{Text: "~F3~ New", Key: event.KbF3, Cmd: cmdNewWindow},
			{Text: "~Alt+X~ Exit", Key: event.Alt('x'), Cmd: command.Quit},
		},
		OnCommand: handleCommand,
	})

	addWindow(a)

	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vista-demo: %v\n", err)
		os.Exit(1)
	}
}

var windowSeq int

func addWindow(a *app.Application) {
	windowSeq++
	off := (windowSeq % 5) * 3
	w := views.NewWindow(
		geom.NewRect(4+off, 1+off, 44+off, 13+off),
		fmt.Sprintf("Window %d", windowSeq),
	)
	w.Add(views.NewStaticText(geom.NewRect(2, 1, 36, 3),
		"Tab cycles controls, Esc Esc cancels\ndialogs, click titles to open menus.", false))
	w.Add(views.NewButton(geom.NewRect(2, 5, 15, 8), "~A~bout", cmdAbout, false))
	w.Add(views.NewButton(geom.NewRect(17, 5, 30, 8), "Cl~o~se", command.Close, false))
	a.Desktop().Add(w)
}

func handleCommand(a *app.Application, id command.Id) bool {
	switch id {
	case cmdAbout:
		views.MessageBox(a, "vista-demo\n\nA text-mode windowing toy.",
			views.MfInformation|views.MfOKButton)
		return true
	case cmdNewWindow:
		addWindow(a)
		return true
	case cmdConfirm:
		r := views.MessageBox(a, "Close the topmost window?",
			views.MfConfirmation|views.MfYesButton|views.MfNoButton|views.MfCancelButton)
		if r == command.Yes && a.Desktop().TopMost() != nil {
			a.Desktop().Remove(a.Desktop().ChildCount() - 1)
		}
		return true
	case cmdCopyGreeting:
		a.Clipboard().Set("Hello from the vista clipboard")
		return true
	case cmdPasteInfo:
		text := a.Clipboard().Get()
		if !a.Clipboard().HasContent() {
			text = "(clipboard is empty)"
		}
		views.MessageBox(a, text, views.MfInformation|views.MfOKButton)
		return true
	}
	return false
}
