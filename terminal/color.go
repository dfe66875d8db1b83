package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode16        ColorMode = iota // Classic 16-color ANSI
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ansiIndex maps a palette index (VGA ordering) to the ANSI color
// number used by SGR sequences. The two orderings disagree on the
// position of blue and red.
var ansiIndex = [16]uint8{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// sgrFg returns the classic SGR foreground code for a palette index
// (30-37 for the dark half, 90-97 for the bright half).
func sgrFg(idx uint8) int {
	a := ansiIndex[idx&0x0f]
	if a < 8 {
		return 30 + int(a)
	}
	return 90 + int(a-8)
}

// sgrBg returns the classic SGR background code for a palette index.
func sgrBg(idx uint8) int {
	a := ansiIndex[idx&0x0f]
	if a < 8 {
		return 40 + int(a)
	}
	return 100 + int(a-8)
}

// xterm256Index returns the xterm-256 palette slot for a palette index.
// The first 16 slots of the 256-color palette are the ANSI colors.
func xterm256Index(idx uint8) int {
	return int(ansiIndex[idx&0x0f])
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	if strings.Contains(term, "256color") {
		return ColorMode256
	}
	if term == "linux" || term == "vt100" || term == "ansi" {
		return ColorMode16
	}

	return ColorMode256
}
