package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/palette"
)

func testGrid(w, h int, ch rune, attr palette.Attr) []draw.Cell {
	cells := make([]draw.Cell, w*h)
	for i := range cells {
		cells[i] = draw.Cell{Rune: ch, Attr: attr}
	}
	return cells
}

func TestFlushIdenticalGridEmitsNothing(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode16)

	grid := testGrid(10, 4, '.', palette.NewAttr(palette.White, palette.Blue))
	if err := o.flush(grid, 10, 4); err != nil {
		t.Fatal(err)
	}
	if sink.Len() == 0 {
		t.Fatal("initial flush produced no output")
	}

	sink.Reset()
	if err := o.flush(grid, 10, 4); err != nil {
		t.Fatal(err)
	}
	if sink.Len() != 0 {
		t.Errorf("identical grid produced %d bytes: %q", sink.Len(), sink.String())
	}
}

func TestFlushWritesOnlyChangedCells(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode16)

	attr := palette.NewAttr(palette.White, palette.Blue)
	grid := testGrid(10, 4, '.', attr)
	o.flush(grid, 10, 4)

	grid[2*10+5] = draw.Cell{Rune: 'X', Attr: attr}
	sink.Reset()
	o.flush(grid, 10, 4)

	out := sink.String()
	if !strings.Contains(out, "\x1b[3;6H") {
		t.Errorf("output missing cursor move to row 3 col 6: %q", out)
	}
	if !strings.Contains(out, "X") {
		t.Errorf("output missing changed rune: %q", out)
	}
	if strings.Count(out, ".") != 0 {
		t.Errorf("output repainted unchanged cells: %q", out)
	}
}

func TestFlushUpdatesFrontBuffer(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode16)

	attr := palette.NewAttr(palette.Black, palette.LightGray)
	grid := testGrid(4, 2, 'a', attr)
	o.flush(grid, 4, 2)

	for i, c := range o.front {
		if c != grid[i] {
			t.Fatalf("front[%d] = %+v, want %+v", i, c, grid[i])
		}
	}
}

func TestFlushCoalescesStyle(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode16)

	// White on Blue maps to SGR 97;44
	grid := testGrid(8, 1, 'x', palette.NewAttr(palette.White, palette.Blue))
	o.flush(grid, 8, 1)

	out := sink.String()
	if n := strings.Count(out, "\x1b[97;44m"); n != 1 {
		t.Errorf("style sequence emitted %d times, want 1: %q", n, out)
	}
}

func TestFlushStyleChangeMidRun(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode16)

	a := palette.NewAttr(palette.White, palette.Blue)
	b := palette.NewAttr(palette.Yellow, palette.Green)
	grid := testGrid(4, 1, 'x', a)
	grid[2].Attr = b
	grid[3].Attr = b
	o.flush(grid, 4, 1)

	out := sink.String()
	if strings.Count(out, "\x1b[97;44m") != 1 {
		t.Errorf("first style not emitted once: %q", out)
	}
	// Yellow is bright (93), Green bg is 42
	if strings.Count(out, "\x1b[93;42m") != 1 {
		t.Errorf("second style not emitted once: %q", out)
	}
}

func TestFlushResizeInvalidatesFront(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode16)

	grid := testGrid(6, 2, 'a', palette.NewAttr(palette.White, palette.Blue))
	o.flush(grid, 6, 2)

	sink.Reset()
	grid2 := testGrid(8, 3, 'a', palette.NewAttr(palette.White, palette.Blue))
	o.flush(grid2, 8, 3)
	if sink.Len() == 0 {
		t.Error("flush after resize produced no output")
	}
}

func TestFlushShortSliceIgnored(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode16)
	o.resize(10, 10)

	if err := o.flush(make([]draw.Cell, 5), 10, 10); err != nil {
		t.Fatal(err)
	}
	if sink.Len() != 0 {
		t.Error("undersized slice should be dropped")
	}
}

func TestSGRTables(t *testing.T) {
	cases := []struct {
		color  palette.Color
		fg, bg int
	}{
		{palette.Black, 30, 40},
		{palette.Red, 31, 41},
		{palette.Green, 32, 42},
		{palette.Brown, 33, 43},
		{palette.Blue, 34, 44},
		{palette.Magenta, 35, 45},
		{palette.Cyan, 36, 46},
		{palette.LightGray, 37, 47},
		{palette.DarkGray, 90, 100},
		{palette.LightRed, 91, 101},
		{palette.LightGreen, 92, 102},
		{palette.Yellow, 93, 103},
		{palette.LightBlue, 94, 104},
		{palette.LightMagenta, 95, 105},
		{palette.LightCyan, 96, 106},
		{palette.White, 97, 107},
	}
	for _, tc := range cases {
		if got := sgrFg(uint8(tc.color)); got != tc.fg {
			t.Errorf("sgrFg(%v) = %d, want %d", tc.color, got, tc.fg)
		}
		if got := sgrBg(uint8(tc.color)); got != tc.bg {
			t.Errorf("sgrBg(%v) = %d, want %d", tc.color, got, tc.bg)
		}
	}
}
