// Package palette defines the 16-color text-mode palette and packed
// character attributes used by every view.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is one of the 16 classic text-mode colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// rgbTable holds the VGA-style RGB value for each palette entry.
var rgbTable = [16][3]uint8{
	Black:        {0, 0, 0},
	Blue:         {0, 0, 170},
	Green:        {0, 170, 0},
	Cyan:         {0, 170, 170},
	Red:          {170, 0, 0},
	Magenta:      {170, 0, 170},
	Brown:        {170, 85, 0},
	LightGray:    {170, 170, 170},
	DarkGray:     {85, 85, 85},
	LightBlue:    {85, 85, 255},
	LightGreen:   {85, 255, 85},
	LightCyan:    {85, 255, 255},
	LightRed:     {255, 85, 85},
	LightMagenta: {255, 85, 255},
	Yellow:       {255, 255, 85},
	White:        {255, 255, 255},
}

// RGB returns the display RGB components of the color.
func (c Color) RGB() (r, g, b uint8) {
	v := rgbTable[c&0x0F]
	return v[0], v[1], v[2]
}

// FromRGB returns the palette color perceptually closest to the given RGB
// value, using CIE Lab distance.
func FromRGB(r, g, b uint8) Color {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := Black
	bestDist := -1.0
	for i := 0; i < 16; i++ {
		v := rgbTable[i]
		entry := colorful.Color{R: float64(v[0]) / 255, G: float64(v[1]) / 255, B: float64(v[2]) / 255}
		d := target.DistanceLab(entry)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = Color(i)
		}
	}
	return best
}

// Attr packs a foreground and background color into one byte: the low
// nibble is the foreground, the high nibble the background.
type Attr uint8

// NewAttr builds an Attr from a foreground and background color.
func NewAttr(fg, bg Color) Attr {
	return Attr(uint8(fg&0x0F) | uint8(bg&0x0F)<<4)
}

// Fg returns the foreground color.
func (a Attr) Fg() Color {
	return Color(a & 0x0F)
}

// Bg returns the background color.
func (a Attr) Bg() Color {
	return Color(a >> 4)
}

// WithFg returns a copy of the attribute with the foreground replaced.
func (a Attr) WithFg(fg Color) Attr {
	return NewAttr(fg, a.Bg())
}

// WithBg returns a copy of the attribute with the background replaced.
func (a Attr) WithBg(bg Color) Attr {
	return NewAttr(a.Fg(), bg)
}

// Shadowed returns the darkened form of the attribute used for drop
// shadows: content stays legible as dark gray on black.
func (a Attr) Shadowed() Attr {
	return NewAttr(DarkGray, Black)
}
