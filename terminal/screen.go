package terminal

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vista/draw"
	"github.com/lixenwraith/vista/palette"
)

// Screen provides low-level terminal access for the framework
type Screen interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Suspend leaves raw mode and the alternate screen so a child
	// process or shell can use the terminal. Resume undoes it.
	Suspend() error
	Resume() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns detected color capability
	ColorMode() ColorMode

	// Flush writes the cell grid to the terminal, emitting only the
	// cells that changed since the previous flush
	// Cells are row-major: cells[y*width + x]
	Flush(cells []draw.Cell, width, height int) error

	// Clear fills the screen with the attribute's background
	Clear(attr palette.Attr)

	// SetCursorVisible shows/hides the hardware cursor
	SetCursorVisible(visible bool)

	// MoveCursor positions the hardware cursor (0-indexed)
	MoveCursor(x, y int)

	// Sync forces full redraw on next Flush
	Sync()

	// PollEvent blocks until the next input event
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)

	// SetMouseEnabled turns SGR mouse reporting on or off
	SetMouseEnabled(enabled bool) error
}

// ansiScreen implements Screen by writing ANSI sequences through a
// Backend
type ansiScreen struct {
	backend Backend

	output      *outputBuffer
	input       *inputReader
	eventCh     chan Event
	resizeCh    chan Event
	syntheticCh chan Event

	cursorVisible atomic.Bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
	suspended   bool
	mouseOn     bool
}

// backendWriter adapts a Backend to io.Writer for the output buffer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// New creates a Screen driving the process terminal
func New(colorMode ...ColorMode) Screen {
	var c ColorMode
	if len(colorMode) == 0 {
		c = DetectColorMode()
	} else {
		c = colorMode[0]
	}
	return newScreen(newBackend(), c)
}

// newScreen builds an ansiScreen on an explicit backend
func newScreen(b Backend, c ColorMode) *ansiScreen {
	s := &ansiScreen{
		backend:     b,
		eventCh:     make(chan Event, 256),
		syntheticCh: make(chan Event, 16),
		resizeCh:    make(chan Event, 1),
	}
	s.output = newOutputBuffer(backendWriter{b}, c)
	return s
}

// Init enters raw mode and sets up the terminal
func (s *ansiScreen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return err
	}

	w, h := s.backend.Size()
	s.output.resize(w, h)

	s.input = newInputReader(s.backend, s.eventCh)
	s.registerResizeHandler()

	s.enterScreen()
	s.input.start()

	s.initialized = true
	return nil
}

// registerResizeHandler installs the size-change callback. The backend
// drops its handler on Fini, so Resume must install it again.
func (s *ansiScreen) registerResizeHandler() {
	s.backend.SetResizeHandler(func(w, h int) {
		ev := Event{Type: EventResize, Width: w, Height: h}
		// Keep only the latest pending size
		select {
		case s.resizeCh <- ev:
		default:
			select {
			case <-s.resizeCh:
			default:
			}
			select {
			case s.resizeCh <- ev:
			default:
			}
		}
	})
}

// enterScreen switches to the alternate screen and clears it.
// Callers hold s.mu.
func (s *ansiScreen) enterScreen() {
	s.backend.Write(csiAltScreenEnter)
	s.backend.Write(csiCursorHide)
	s.backend.Write(csiAutoWrapOff)
	s.cursorVisible.Store(false)
	s.output.clear(palette.NewAttr(palette.LightGray, palette.Black))
}

// leaveScreen restores the primary screen. Callers hold s.mu.
func (s *ansiScreen) leaveScreen() {
	if s.mouseOn {
		s.backend.Write(csiMouseDragOff)
		s.backend.Write(csiMouseClickOff)
		s.backend.Write(csiMouseSGROff)
	}
	s.backend.Write(csiCursorShow)
	s.backend.Write(csiAltScreenExit)
	s.backend.Write(csiAutoWrapOn)
	s.backend.Write(csiSGR0)
}

// Fini restores terminal state
func (s *ansiScreen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	if s.input != nil {
		s.input.stop()
	}

	s.leaveScreen()
	s.backend.Fini()

	s.finalized = true
}

// Suspend restores the primary screen and cooked mode, keeping the
// Screen alive for a later Resume
func (s *ansiScreen) Suspend() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized || s.suspended {
		return nil
	}

	// The reader owns stdin while running; it must be stopped before
	// the terminal leaves raw mode. A quiet stop keeps EventClosed out
	// of the stream since the screen is coming back.
	s.input.stopQuiet()
	s.leaveScreen()
	s.backend.Fini()

	s.suspended = true
	return nil
}

// Resume re-enters raw mode and the alternate screen after Suspend
func (s *ansiScreen) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.suspended {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return err
	}

	s.enterScreen()
	if s.mouseOn {
		s.backend.Write(csiMouseSGROn)
		s.backend.Write(csiMouseClickOn)
		s.backend.Write(csiMouseDragOn)
	}
	s.output.forceFullRedraw()

	// stopCh is close-once, so a fresh reader is needed; it shares the
	// screen's event channel so PollEvent carries over. The backend
	// dropped its resize handler on Fini.
	s.input = newInputReader(s.backend, s.eventCh)
	s.input.start()
	s.registerResizeHandler()

	s.suspended = false
	return nil
}

// Size returns current terminal dimensions
func (s *ansiScreen) Size() (int, int) {
	return s.backend.Size()
}

// ColorMode returns detected color capability
func (s *ansiScreen) ColorMode() ColorMode {
	return s.output.colorMode
}

// Flush writes the cell grid to the terminal
// Holds the lock for the whole operation to avoid racing Clear/MoveCursor
func (s *ansiScreen) Flush(cells []draw.Cell, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized || s.suspended {
		return nil
	}

	// Drop the frame on a size mismatch; the resize event will trigger
	// a repaint at the new size
	currW, currH := s.backend.Size()
	if currW != width || currH != height {
		return nil
	}

	return s.output.flush(cells, width, height)
}

// Clear fills the screen with the attribute's background
func (s *ansiScreen) Clear(attr palette.Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized || s.suspended {
		return
	}

	s.output.clear(attr)
}

// SetCursorVisible shows/hides the hardware cursor
func (s *ansiScreen) SetCursorVisible(visible bool) {
	if s.cursorVisible.Swap(visible) == visible {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized || s.suspended {
		return
	}

	w := s.output.writer
	if visible {
		w.Write(csiCursorShow)
	} else {
		w.Write(csiCursorHide)
	}
	w.Flush()
}

// MoveCursor positions the hardware cursor (0-indexed)
func (s *ansiScreen) MoveCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized || s.suspended {
		return
	}

	s.output.invalidateCursor()

	w, h := s.backend.Size()
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= w {
		x = w - 1
	}
	if y >= h {
		y = h - 1
	}

	wBuf := s.output.writer
	writeCursorPos(wBuf, x, y)
	wBuf.Flush()
}

// Sync forces a full redraw
func (s *ansiScreen) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized || s.suspended {
		return
	}

	s.output.clear(palette.NewAttr(palette.LightGray, palette.Black))
	s.output.forceFullRedraw()
}

// PollEvent blocks until the next input event
func (s *ansiScreen) PollEvent() Event {
	select {
	case ev := <-s.syntheticCh:
		return ev
	default:
	}

	select {
	case ev := <-s.syntheticCh:
		return ev
	case ev := <-s.eventCh:
		return ev
	case ev := <-s.resizeCh:
		return ev
	}
}

// PostEvent injects a synthetic event
func (s *ansiScreen) PostEvent(ev Event) {
	select {
	case s.syntheticCh <- ev:
	default:
		// Channel full, drop
	}
}

// SetMouseEnabled turns SGR mouse reporting on or off
func (s *ansiScreen) SetMouseEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	if enabled == s.mouseOn {
		return nil
	}
	s.mouseOn = enabled

	w := s.output.writer
	if enabled {
		w.Write(csiMouseSGROn)
		w.Write(csiMouseClickOn)
		w.Write(csiMouseDragOn)
	} else {
		w.Write(csiMouseDragOff)
		w.Write(csiMouseClickOff)
		w.Write(csiMouseSGROff)
	}
	return w.Flush()
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call from panic recovery when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone cannot restore termios
	resetTerminalMode()
}
