package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/palette"
)

// outputBuffer manages double-buffered terminal output with diffing.
// The front buffer mirrors what the physical terminal currently shows;
// flush emits only the cells where the incoming grid differs.
type outputBuffer struct {
	front     []draw.Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastAttr  palette.Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions and invalidates the front buffer
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]draw.Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = draw.Cell{}
	}
	o.lastValid = false
	o.cursorValid = false
}

// flush writes the cell grid to the terminal, diffing against the
// front buffer. Identical grids produce zero output bytes.
func (o *outputBuffer) flush(cells []draw.Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}

	if len(cells) < width*height {
		return nil
	}

	w := o.writer
	wrote := false

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			if cells[idx] == o.front[idx] {
				x++
				continue
			}

			// Position cursor once for this dirty region
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			// Write the contiguous dirty run, emitting style only when
			// it changes
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]

				if c == o.front[cidx] {
					break
				}

				o.writeStyle(w, c.Attr)

				r := c.Rune
				if r == 0 {
					r = ' '
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}

				o.front[cidx] = c
				o.cursorX++
				x++
			}
			wrote = true
		}
	}

	if wrote {
		w.Write(csiSGR0)
		o.lastValid = false
		return w.Flush()
	}
	return nil
}

// writeStyle emits a combined SGR sequence when the attribute changed
// since the last emitted cell
func (o *outputBuffer) writeStyle(w *bufio.Writer, attr palette.Attr) {
	if o.lastValid && attr == o.lastAttr {
		return
	}

	fg := uint8(attr.Fg())
	bg := uint8(attr.Bg())

	switch o.colorMode {
	case ColorMode16:
		w.Write(csi)
		writeInt(w, sgrFg(fg))
		w.WriteByte(';')
		writeInt(w, sgrBg(bg))
		w.WriteByte('m')
	case ColorModeTrueColor:
		r, g, b := attr.Fg().RGB()
		w.Write(csiFgRGB)
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		w.WriteByte('m')
		r, g, b = attr.Bg().RGB()
		w.Write(csiBgRGB)
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		w.WriteByte('m')
	default:
		w.Write(csiFg256)
		writeInt(w, xterm256Index(fg))
		w.WriteByte('m')
		w.Write(csiBg256)
		writeInt(w, xterm256Index(bg))
		w.WriteByte('m')
	}

	o.lastAttr = attr
	o.lastValid = true
}

// forceFullRedraw clears the front buffer so the next flush repaints
// every cell
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = draw.Cell{}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear writes a clear screen with the given attribute's background
func (o *outputBuffer) clear(attr palette.Attr) {
	w := o.writer
	w.Write(csiSGR0)
	o.lastValid = false
	o.writeStyle(w, attr)
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false
	w.Flush()

	for i := range o.front {
		o.front[i] = draw.Cell{Rune: ' ', Attr: attr}
	}
}

// invalidateCursor marks cursor position as unknown
func (o *outputBuffer) invalidateCursor() {
	o.cursorValid = false
}
