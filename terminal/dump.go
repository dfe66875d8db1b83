package terminal

import (
	"bufio"
	"io"
	"os"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/geom"
	"github.com/lixenwraith/vista/palette"
)

// DumpGrid writes a row-major cell grid as ANSI text suitable for
// cat or less -R. Color codes are emitted only when the attribute
// changes within a row, and each row ends with a reset plus newline.
func DumpGrid(w io.Writer, cells []draw.Cell, width, height int) error {
	return DumpRegion(w, cells, width, height, geom.NewRect(0, 0, width, height))
}

// DumpRegion writes a rectangular region of a cell grid as ANSI text
func DumpRegion(w io.Writer, cells []draw.Cell, width, height int, r geom.Rect) error {
	if len(cells) < width*height {
		return nil
	}
	bw := bufio.NewWriter(w)

	clip := r.Intersect(geom.NewRect(0, 0, width, height))
	for y := clip.A.Y; y < clip.B.Y; y++ {
		valid := false
		var last palette.Attr

		for x := clip.A.X; x < clip.B.X; x++ {
			c := cells[y*width+x]
			if !valid || c.Attr != last {
				bw.Write(csi)
				writeInt(bw, sgrFg(uint8(c.Attr.Fg())))
				bw.WriteByte(';')
				writeInt(bw, sgrBg(uint8(c.Attr.Bg())))
				bw.WriteByte('m')
				last = c.Attr
				valid = true
			}
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			bw.WriteRune(ch)
		}

		bw.Write(csiSGR0)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// DumpToFile writes the grid to a new file at path
func DumpToFile(path string, cells []draw.Cell, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return DumpGrid(f, cells, width, height)
}
