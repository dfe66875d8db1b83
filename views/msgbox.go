package views

import (
	"strings"

	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/geom"
)

// Message box option flags. The low bits pick the box type and title;
// the button bits pick which buttons appear, in Yes No OK Cancel order.
const (
	MfWarning      = 0x0000
	MfError        = 0x0001
	MfInformation  = 0x0002
	MfConfirmation = 0x0003

	MfYesButton    = 0x0100
	MfNoButton     = 0x0200
	MfOKButton     = 0x0400
	MfCancelButton = 0x0800

	MfTypeMask = 0x0003

	MfYesNoCancel = MfConfirmation | MfYesButton | MfNoButton | MfCancelButton
	MfOKCancel    = MfConfirmation | MfOKButton | MfCancelButton
)

var msgBoxTitles = [4]string{"Warning", "Error", "Information", "Confirm"}

type msgBoxButton struct {
	title string
	cmd   command.Id
	flag  int
}

var msgBoxButtons = []msgBoxButton{
	{"~Y~es", command.Yes, MfYesButton},
	{"~N~o", command.No, MfNoButton},
	{"O~K~", command.OK, MfOKButton},
	{"Cancel", command.Cancel, MfCancelButton},
}

// MessageBox builds a centered modal dialog around message and runs it,
// returning the command of the chosen button (command.Cancel when the
// box is dismissed). The first button present is the default.
func MessageBox(h Host, message string, flags int) command.Id {
	lines := strings.Split(message, "\n")
	msgW := 0
	for _, l := range lines {
		if lw := draw.StrWidth(l); lw > msgW {
			msgW = lw
		}
	}

	width := msgW + 6
	if width < 30 {
		width = 30
	}
	if width > 60 {
		width = 60
	}
	height := len(lines) + 6

	sw, sh := h.Renderer().Size()
	x := (sw - width) / 2
	y := (sh - height) / 2
	d := NewDialog(geom.NewRect(x, y, x+width, y+height), msgBoxTitles[flags&MfTypeMask])

	// Interior coordinates. The interior is the dialog inset by one.
	inW := width - 2
	d.Add(NewStaticText(geom.NewRect(2, 1, inW-2, 1+len(lines)), message, true))

	var present []msgBoxButton
	for _, b := range msgBoxButtons {
		if flags&b.flag != 0 {
			present = append(present, b)
		}
	}
	if len(present) == 0 {
		present = []msgBoxButton{{"O~K~", command.OK, MfOKButton}}
	}

	const btnW = 11 // 10 face columns plus the shadow column
	total := len(present)*btnW + (len(present)-1)*2
	bx := (inW - total) / 2
	by := height - 2 - 3
	for i, b := range present {
		r := geom.NewRect(bx, by, bx+btnW, by+3)
		d.Add(NewButton(r, b.title, b.cmd, i == 0))
		bx += btnW + 2
	}

	return d.Execute(h)
}
