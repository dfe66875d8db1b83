// Package render owns the compose grid the view tree draws into and
// the clip stack that keeps children inside their parents. Flushing
// hands the grid to the screen layer, which diffs it against what the
// terminal currently shows.
package render

import (
	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
	"github.com/lixenwraith/vista/terminal"
)

// Renderer composes cell output and flushes it to a Screen
type Renderer struct {
	screen terminal.Screen
	cells  []draw.Cell
	width  int
	height int

	// Active clip is the intersection of every pushed rect
	clipStack []geom.Rect
	clip      geom.Rect

	cursorPos     geom.Point
	cursorVisible bool
}

// New creates a renderer sized to the screen
func New(screen terminal.Screen) *Renderer {
	w, h := screen.Size()
	r := &Renderer{screen: screen}
	r.Resize(w, h)
	return r
}

// Resize reallocates the grid and resets the clip stack
func (r *Renderer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width = width
	r.height = height
	r.cells = make([]draw.Cell, width*height)
	for i := range r.cells {
		r.cells[i] = draw.Cell{Rune: ' ', Attr: palette.Desktop}
	}
	r.clipStack = r.clipStack[:0]
	r.clip = geom.NewRect(0, 0, width, height)
}

// Size returns the grid dimensions
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Bounds returns the full-grid rectangle
func (r *Renderer) Bounds() geom.Rect {
	return geom.NewRect(0, 0, r.width, r.height)
}

// PushClip narrows the active clip to the intersection with rect
func (r *Renderer) PushClip(rect geom.Rect) {
	r.clipStack = append(r.clipStack, r.clip)
	r.clip = r.clip.Intersect(rect)
}

// PopClip restores the clip active before the matching PushClip
func (r *Renderer) PopClip() {
	n := len(r.clipStack)
	if n == 0 {
		return
	}
	r.clip = r.clipStack[n-1]
	r.clipStack = r.clipStack[:n-1]
}

// Clip returns the active clip rectangle
func (r *Renderer) Clip() geom.Rect {
	return r.clip
}

// WriteCell sets one cell. Writes outside the grid or the active clip
// are dropped, not errors: bounds arithmetic transiently exceeds the
// terminal size during resize.
func (r *Renderer) WriteCell(p geom.Point, c draw.Cell) {
	if !r.clip.Contains(p) {
		return
	}
	r.cells[p.Y*r.width+p.X] = c
}

// WriteRow writes a run of cells left to right starting at p, clipping
// each cell independently
func (r *Renderer) WriteRow(p geom.Point, cells []draw.Cell) {
	for i, c := range cells {
		r.WriteCell(geom.Pt(p.X+i, p.Y), c)
	}
}

// WriteBuffer writes a composed line buffer starting at p
func (r *Renderer) WriteBuffer(p geom.Point, b *draw.Buffer) {
	r.WriteRow(p, b.Cells())
}

// FillRect fills a rectangle with one rune and attribute
func (r *Renderer) FillRect(rect geom.Rect, ch rune, attr palette.Attr) {
	for y := rect.A.Y; y < rect.B.Y; y++ {
		for x := rect.A.X; x < rect.B.X; x++ {
			r.WriteCell(geom.Pt(x, y), draw.Cell{Rune: ch, Attr: attr})
		}
	}
}

// DarkenRect rewrites the attribute of every cell in the rectangle to
// the shadow attribute, keeping the runes. Used for window drop shadows.
func (r *Renderer) DarkenRect(rect geom.Rect) {
	for y := rect.A.Y; y < rect.B.Y; y++ {
		for x := rect.A.X; x < rect.B.X; x++ {
			p := geom.Pt(x, y)
			if !r.clip.Contains(p) {
				continue
			}
			idx := y*r.width + x
			r.cells[idx].Attr = r.cells[idx].Attr.Shadowed()
		}
	}
}

// At returns the composed cell at (x, y), or a zero cell out of range
func (r *Renderer) At(x, y int) draw.Cell {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return draw.Cell{}
	}
	return r.cells[y*r.width+x]
}

// Snapshot returns a copy of the composed grid for inspection or dump
func (r *Renderer) Snapshot() []draw.Cell {
	out := make([]draw.Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Clear fills the whole grid with spaces on the given attribute
func (r *Renderer) Clear(attr palette.Attr) {
	for i := range r.cells {
		r.cells[i] = draw.Cell{Rune: ' ', Attr: attr}
	}
}

// SetCursor requests the hardware cursor at p after the next flush
func (r *Renderer) SetCursor(p geom.Point) {
	r.cursorPos = p
	r.cursorVisible = true
}

// HideCursor hides the hardware cursor after the next flush
func (r *Renderer) HideCursor() {
	r.cursorVisible = false
}

// Flush writes the grid to the screen. I/O errors propagate; the next
// frame's flush repaints from scratch so no retry happens here.
func (r *Renderer) Flush() error {
	if err := r.screen.Flush(r.cells, r.width, r.height); err != nil {
		return err
	}
	if r.cursorVisible {
		r.screen.MoveCursor(r.cursorPos.X, r.cursorPos.Y)
	}
	r.screen.SetCursorVisible(r.cursorVisible)
	return nil
}
