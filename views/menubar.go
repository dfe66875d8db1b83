package views

import (
	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/render"
)

// MenuItem is one entry in a dropdown. An empty Text makes a separator
// line. KeyText is the right-aligned accelerator hint; Key is the
// matching global key, zero when the item has no accelerator.
type MenuItem struct {
	Text    string
	Cmd     command.Id
	Key     event.KeyCode
	KeyText string
}

// Separator returns a separator entry
func Separator() MenuItem { return MenuItem{} }

// Menu is one titled dropdown on the bar
type Menu struct {
	Title string
	Items []MenuItem
}

// MenuBar is the top-line menu. It opens on F10, Alt+letter title
// shortcuts or a title click, and bubbles the chosen item's command.
// Items whose command is disabled draw dim and cannot be chosen.
type MenuBar struct {
	Base
	menus []Menu
	set   *command.Set

	open int // open menu index, -1 when closed
	sel  int // highlighted item in the open menu
}

// NewMenuBar creates a menu bar across bounds
func NewMenuBar(bounds geom.Rect, menus []Menu) *MenuBar {
	return &MenuBar{
		Base:  NewBase(bounds),
		menus: menus,
		set:   command.Default(),
		open:  -1,
	}
}

// UseSet rebinds the bar to a specific enablement set
func (m *MenuBar) UseSet(s *command.Set) { m.set = s }

// IsOpen reports whether a dropdown is showing
func (m *MenuBar) IsOpen() bool { return m.open >= 0 }

// Close dismisses any open dropdown
func (m *MenuBar) Close() {
	m.open = -1
	m.sel = -1
}

// titleSpan returns the x range the i-th title occupies on the bar
func (m *MenuBar) titleSpan(i int) (x0, x1 int) {
	x := m.bounds.A.X + 1
	for j := 0; j < i; j++ {
		x += draw.StrWidth(m.menus[j].Title) + 2
	}
	return x, x + draw.StrWidth(m.menus[i].Title) + 2
}

func (m *MenuBar) itemEnabled(it MenuItem) bool {
	return it.Text != "" && m.set.Enabled(it.Cmd)
}

func titleShortcut(title string) rune {
	runes := []rune(title)
	for i, ch := range runes {
		if ch == '~' && i+1 < len(runes) && runes[i+1] != '~' {
			return foldLetter(runes[i+1])
		}
	}
	return 0
}

func (m *MenuBar) Draw(r *render.Renderer) {
	w := m.bounds.Width()
	if w < 1 {
		return
	}
	bar := draw.NewBuffer(w)
	bar.MoveChar(0, ' ', palette.MenuNormal, w)
	for i, menu := range m.menus {
		x0, _ := m.titleSpan(i)
		attr, short := palette.MenuNormal, palette.MenuShortcut
		if i == m.open {
			attr, short = palette.MenuSelected, palette.MenuSelected
		}
		bar.MoveStrShortcut(x0-m.bounds.A.X, " "+menu.Title+" ", attr, short)
	}
	r.WriteBuffer(m.bounds.A, bar)

	if m.open >= 0 {
		m.drawDropdown(r)
	}
}

// dropBounds computes the open dropdown's box including its border
func (m *MenuBar) dropBounds() geom.Rect {
	menu := m.menus[m.open]
	w := 0
	for _, it := range menu.Items {
		iw := draw.StrWidth(it.Text) + 2
		if it.KeyText != "" {
			iw += len(it.KeyText) + 2
		}
		if iw > w {
			w = iw
		}
	}
	w += 2 // border
	x0, _ := m.titleSpan(m.open)
	return geom.NewRect(x0, m.bounds.A.Y+1, x0+w, m.bounds.A.Y+2+len(menu.Items)+1)
}

func (m *MenuBar) drawDropdown(r *render.Renderer) {
	menu := m.menus[m.open]
	box := m.dropBounds()
	w := box.Width()

	top := draw.NewBuffer(w)
	top.PutChar(0, '┌', palette.MenuNormal)
	top.MoveChar(1, '─', palette.MenuNormal, w-2)
	top.PutChar(w-1, '┐', palette.MenuNormal)
	r.WriteBuffer(box.A, top)

	for i, it := range menu.Items {
		line := draw.NewBuffer(w)
		if it.Text == "" {
			line.PutChar(0, '├', palette.MenuNormal)
			line.MoveChar(1, '─', palette.MenuNormal, w-2)
			line.PutChar(w-1, '┤', palette.MenuNormal)
		} else {
			attr, short := palette.MenuNormal, palette.MenuShortcut
			if !m.itemEnabled(it) {
				attr, short = palette.MenuDisabled, palette.MenuDisabled
			} else if i == m.sel {
				attr, short = palette.MenuSelected, palette.MenuSelected
			}
			line.PutChar(0, '│', palette.MenuNormal)
			line.MoveChar(1, ' ', attr, w-2)
			line.MoveStrShortcut(2, it.Text, attr, short)
			if it.KeyText != "" {
				line.MoveStr(w-2-len(it.KeyText), it.KeyText, attr)
			}
			line.PutChar(w-1, '│', palette.MenuNormal)
		}
		r.WriteBuffer(geom.Pt(box.A.X, box.A.Y+1+i), line)
	}

	bottom := draw.NewBuffer(w)
	bottom.PutChar(0, '└', palette.MenuNormal)
	bottom.MoveChar(1, '─', palette.MenuNormal, w-2)
	bottom.PutChar(w-1, '┘', palette.MenuNormal)
	r.WriteBuffer(geom.Pt(box.A.X, box.B.Y-1), bottom)
}

func (m *MenuBar) openMenu(i int) {
	m.open = i
	m.sel = -1
	m.stepSel(1)
}

// stepSel moves the dropdown selection skipping separators and
// disabled items; a full cycle without a candidate clears it
func (m *MenuBar) stepSel(dir int) {
	items := m.menus[m.open].Items
	n := len(items)
	if n == 0 {
		return
	}
	start := m.sel
	if start < 0 {
		if dir > 0 {
			start = n - 1
		} else {
			start = 0
		}
	}
	i := start
	for {
		i = (i + dir + n) % n
		if m.itemEnabled(items[i]) {
			m.sel = i
			return
		}
		if i == start {
			return
		}
	}
}

// choose fires the selected item's command into the event
func (m *MenuBar) choose(ev *event.Event) {
	items := m.menus[m.open].Items
	if m.sel < 0 || m.sel >= len(items) || !m.itemEnabled(items[m.sel]) {
		ev.Clear()
		return
	}
	cmd := items[m.sel].Cmd
	m.Close()
	*ev = event.Cmd(cmd)
}

func (m *MenuBar) HandleEvent(ev *event.Event) {
	switch ev.What {
	case event.Keyboard:
		m.handleKey(ev)
	case event.MouseDown:
		m.handleMouse(ev)
	case event.MouseMove:
		if m.open >= 0 && ev.Mouse.Buttons != 0 {
			m.trackMouse(ev.Mouse.Pos)
		}
	}
}

func (m *MenuBar) handleKey(ev *event.Event) {
	if m.open < 0 {
		switch {
		case ev.Key == event.KbF10:
			if len(m.menus) > 0 {
				m.openMenu(0)
				ev.Clear()
			}
		default:
			if ch, ok := ev.Key.IsAlt(); ok {
				for i, menu := range m.menus {
					if titleShortcut(menu.Title) == ch {
						m.openMenu(i)
						ev.Clear()
						return
					}
				}
			}
			// Closed-bar accelerators fire item commands directly
			for _, menu := range m.menus {
				for _, it := range menu.Items {
					if it.Key != 0 && it.Key == ev.Key && m.itemEnabled(it) {
						*ev = event.Cmd(it.Cmd)
						return
					}
				}
			}
		}
		return
	}

	switch ev.Key {
	case event.KbLeft:
		m.openMenu((m.open - 1 + len(m.menus)) % len(m.menus))
	case event.KbRight:
		m.openMenu((m.open + 1) % len(m.menus))
	case event.KbUp:
		m.stepSel(-1)
	case event.KbDown:
		m.stepSel(1)
	case event.KbEnter, event.KbSpace:
		m.choose(ev)
		return
	case event.KbEsc, event.KbEscEsc:
		m.Close()
	default:
		// Item shortcut letters choose directly while open
		if ev.Key.IsChar() {
			items := m.menus[m.open].Items
			for i, it := range items {
				if m.itemEnabled(it) && itemShortcut(it.Text) == foldLetter(rune(ev.Key)) {
					m.sel = i
					m.choose(ev)
					return
				}
			}
		}
	}
	ev.Clear()
}

func itemShortcut(text string) rune {
	return titleShortcut(text)
}

func (m *MenuBar) handleMouse(ev *event.Event) {
	p := ev.Mouse.Pos
	if p.Y == m.bounds.A.Y {
		for i := range m.menus {
			x0, x1 := m.titleSpan(i)
			if p.X >= x0 && p.X < x1 {
				if m.open == i {
					m.Close()
				} else {
					m.openMenu(i)
				}
				ev.Clear()
				return
			}
		}
		if m.open >= 0 {
			m.Close()
			ev.Clear()
		}
		return
	}
	if m.open < 0 {
		return
	}
	box := m.dropBounds()
	if !box.Contains(p) {
		m.Close()
		ev.Clear()
		return
	}
	if i := p.Y - box.A.Y - 1; i >= 0 && i < len(m.menus[m.open].Items) {
		if m.itemEnabled(m.menus[m.open].Items[i]) {
			m.sel = i
			m.choose(ev)
			return
		}
	}
	ev.Clear()
}

func (m *MenuBar) trackMouse(p geom.Point) {
	box := m.dropBounds()
	if !box.Contains(p) {
		return
	}
	if i := p.Y - box.A.Y - 1; i >= 0 && i < len(m.menus[m.open].Items) {
		if m.itemEnabled(m.menus[m.open].Items[i]) {
			m.sel = i
		}
	}
}
