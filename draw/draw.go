// Package draw provides the character cell type and a line buffer for
// composing view output before it is written to the renderer.
package draw

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vista/palette"
)

// Cell is one terminal cell: a display rune and its color attribute.
// Cells compare with ==; two cells are equal iff rune and attribute match.
type Cell struct {
	Rune rune
	Attr palette.Attr
}

// normalize maps a rune onto exactly one terminal column. Wide and
// zero-width runes would desynchronize the grid, so they degrade to a
// placeholder instead.
func normalize(ch rune) rune {
	if ch == 0 {
		return ' '
	}
	if runewidth.RuneWidth(ch) != 1 {
		return '?'
	}
	return ch
}

// Buffer is a single line of cells that a view fills and then writes to
// the renderer in one call.
type Buffer struct {
	cells []Cell
}

// NewBuffer creates a line buffer of the given width, filled with spaces
// on the default dialog attribute.
func NewBuffer(width int) *Buffer {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Attr: palette.DialogNormal}
	}
	return &Buffer{cells: cells}
}

// Len returns the buffer width.
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Cells exposes the composed line for writing to the renderer.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// PutChar sets a single cell. Out-of-range positions are ignored.
func (b *Buffer) PutChar(x int, ch rune, attr palette.Attr) {
	if x < 0 || x >= len(b.cells) {
		return
	}
	b.cells[x] = Cell{Rune: normalize(ch), Attr: attr}
}

// MoveChar fills count cells starting at x with the same rune and attribute.
func (b *Buffer) MoveChar(x int, ch rune, attr palette.Attr, count int) {
	ch = normalize(ch)
	for i := 0; i < count; i++ {
		if x+i < 0 || x+i >= len(b.cells) {
			continue
		}
		b.cells[x+i] = Cell{Rune: ch, Attr: attr}
	}
}

// MoveStr writes a string starting at x, truncating at the buffer edge.
func (b *Buffer) MoveStr(x int, s string, attr palette.Attr) {
	for _, ch := range s {
		if x >= len(b.cells) {
			break
		}
		if x >= 0 {
			b.cells[x] = Cell{Rune: normalize(ch), Attr: attr}
		}
		x++
	}
}

// MoveStrShortcut writes a string where segments wrapped in tildes
// ("~O~pen") use the shortcut attribute. The tildes themselves occupy no
// cells.
func (b *Buffer) MoveStrShortcut(x int, s string, attr, shortcutAttr palette.Attr) {
	cur := attr
	for _, ch := range s {
		if ch == '~' {
			if cur == attr {
				cur = shortcutAttr
			} else {
				cur = attr
			}
			continue
		}
		if x >= len(b.cells) {
			break
		}
		if x >= 0 {
			b.cells[x] = Cell{Rune: normalize(ch), Attr: cur}
		}
		x++
	}
}

// StrWidth returns the number of cells s occupies, ignoring tilde markers.
func StrWidth(s string) int {
	n := 0
	for _, ch := range s {
		if ch == '~' {
			continue
		}
		n++
	}
	return n
}
