package event

// KeyCode identifies a normalized keypress. Printable ASCII characters use
// their own value; control characters use their raw byte; extended keys
// live at 0x0100 and up; Alt-modified letters set the AltMask bit.
type KeyCode uint16

const (
	KbNone      KeyCode = 0
	KbCtrlC     KeyCode = 0x0003
	KbBackspace KeyCode = 0x0008
	KbTab       KeyCode = 0x0009
	KbEnter     KeyCode = 0x000D
	KbEsc       KeyCode = 0x001B
	KbSpace     KeyCode = 0x0020
)

// Extended keys.
const (
	KbShiftTab KeyCode = 0x0100 + iota
	KbUp
	KbDown
	KbLeft
	KbRight
	KbHome
	KbEnd
	KbPgUp
	KbPgDn
	KbIns
	KbDel
	KbF1
	KbF2
	KbF3
	KbF4
	KbF5
	KbF6
	KbF7
	KbF8
	KbF9
	KbF10
	KbF11
	KbF12

	// KbEscEsc is the synthetic double-escape code produced when two
	// escape presses arrive back to back. Modal views treat it as a
	// universal cancel gesture.
	KbEscEsc
)

// AltMask marks Alt+letter codes. Both a true Alt chord and the two-step
// ESC-then-letter gesture produce the same code.
const AltMask KeyCode = 0x0200

// Alt returns the code for Alt combined with a letter. Letters fold to
// lower case so Alt+X and Alt+x compare equal.
func Alt(ch rune) KeyCode {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	return AltMask | KeyCode(ch&0xFF)
}

// IsAlt reports whether the code is an Alt+letter chord, and returns the
// folded letter when it is.
func (k KeyCode) IsAlt() (rune, bool) {
	if k&AltMask == 0 {
		return 0, false
	}
	return rune(k &^ AltMask), true
}

// IsChar reports whether the code is a plain printable character.
func (k KeyCode) IsChar() bool {
	return k >= 0x20 && k < 0x7F
}
