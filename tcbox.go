package tcbox

import (
	"bufio"
	"os"
	"sync"
	"time"
)

// screen holds all process-wide state for one Init/Shutdown lifetime.
// The library is a singleton: state lives behind the package-level
// stateMu rather than a caller-visible handle, to match the reference's
// global-statics design. Every exported operation takes stateMu for its
// whole body. The SIGWINCH forwarding goroutine touches only the
// self-pipe, never screen's fields (pendingResize included), so no
// finer-grained locks are needed.
type screen struct {
	tty *os.File
	out *bufio.Writer

	term *terminal
	rend *renderer

	back, front *cellBuffer

	ring  *ringBuffer
	mode  InputMode
	raw   *rawMode
	rp    *resizePipe
	chunk int

	width, height int
	pendingResize bool
}

var (
	stateMu sync.Mutex
	state   *screen
)

// Init opens the controlling terminal, enters raw mode, detects a
// terminal capability table from the environment, and allocates the
// back/front cell buffers. It returns ErrAlreadyInitialized
// if called again without an intervening Shutdown.
func Init(opts ...Option) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	if state != nil {
		return ErrAlreadyInitialized
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tty, err := os.OpenFile(cfg.ttyPath, os.O_RDWR, 0)
	if err != nil {
		return newError(ErrCodeFailedToOpenTTY, "failed to open controlling terminal", err)
	}

	hint := os.Getenv(cfg.termEnvVar)
	t, err := detectTerminal(hint)
	if err != nil {
		tty.Close()
		return err
	}

	raw, err := enterRawMode(int(tty.Fd()))
	if err != nil {
		tty.Close()
		return newError(ErrCodeFailedToOpenTTY, "failed to enter raw mode", err)
	}

	rp, err := newResizePipe()
	if err != nil {
		raw.restore()
		tty.Close()
		return newError(ErrCodePipeTrapError, "failed to create resize self-pipe", err)
	}

	width, height, err := termSize(int(tty.Fd()))
	if err != nil {
		rp.close()
		raw.restore()
		tty.Close()
		return newError(ErrCodeFailedToOpenTTY, "failed to read terminal size", err)
	}

	s := &screen{
		tty:    tty,
		out:    bufio.NewWriter(tty),
		term:   t,
		back:   newCellBuffer(width, height),
		front:  newCellBuffer(width, height),
		ring:   newRingBuffer(cfg.ringCap),
		mode:   InputEsc,
		raw:    raw,
		rp:     rp,
		chunk:  cfg.pollChunk,
		width:  width,
		height: height,
	}
	s.rend = newRenderer(s.out, t)
	s.back.clear(ColorWhite, ColorBlack)
	s.front.clear(ColorWhite, ColorBlack)

	s.out.WriteString(t.funcs[tEnterCA])
	s.out.WriteString(t.funcs[tEnterKeypad])
	s.rend.cursorX, s.rend.cursorY = cursorHidden, cursorHidden
	s.out.WriteString(t.funcs[tHideCursor])
	s.rend.clearFg, s.rend.clearBg = ColorWhite, ColorBlack
	if err := s.rend.sendClear(); err != nil {
		rp.close()
		raw.restore()
		tty.Close()
		return err
	}

	state = s
	return nil
}

// Shutdown restores the terminal to its pre-Init state and releases all
// resources. Called without a prior successful Init (or a second time),
// it returns ErrNotInitialized.
func Shutdown() error {
	stateMu.Lock()
	defer stateMu.Unlock()

	if state == nil {
		return ErrNotInitialized
	}
	s := state
	state = nil

	s.out.WriteString(s.term.funcs[tShowCursor])
	s.out.WriteString(s.term.funcs[tSGR0])
	s.out.WriteString(s.term.funcs[tClearScreen])
	s.out.WriteString(s.term.funcs[tExitKeypad])
	s.out.WriteString(s.term.funcs[tExitCA])
	s.out.Flush()

	s.rp.close()
	err := s.raw.restore()
	s.tty.Close()
	return err
}

func current() (*screen, error) {
	if state == nil {
		return nil, ErrNotInitialized
	}
	return state, nil
}

// Size returns the terminal's current width and height in cells.
func Size() (width, height int, err error) {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return 0, 0, err
	}
	return s.width, s.height, nil
}

// PutCell writes a whole cell at (x, y) into the back buffer. Out-of-range
// coordinates are silently ignored.
func PutCell(x, y int, cell Cell) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return err
	}
	if !s.back.inBounds(x, y) {
		return nil
	}
	*s.back.at(x, y) = cell
	return nil
}

// ChangeCell writes a rune and attribute pair at (x, y) into the back
// buffer.
func ChangeCell(x, y int, ch rune, fg, bg Attribute) error {
	return PutCell(x, y, Cell{Ch: ch, Fg: fg, Bg: bg})
}

// Blit copies a w x h rectangle of cells into the back buffer at (x, y).
// The whole rectangle is discarded if it doesn't fit.
func Blit(x, y, w, h int, cells []Cell) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return err
	}
	if x+w > s.back.width || y+h > s.back.height || x < 0 || y < 0 {
		return nil
	}
	for row := 0; row < h; row++ {
		dstOff := s.back.index(x, y+row)
		srcOff := row * w
		copy(s.back.cells[dstOff:dstOff+w], cells[srcOff:srcOff+w])
	}
	return nil
}

// Clear resets every cell in the back buffer to the clear attributes set
// by SetClearAttributes.
func Clear() error {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return err
	}
	if err := s.applyPendingResize(); err != nil {
		return err
	}
	s.back.clear(s.rend.clearFg, s.rend.clearBg)
	return nil
}

// SetClearAttributes changes the foreground/background pair future
// Clear calls fill the back buffer with.
func SetClearAttributes(fg, bg Attribute) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return err
	}
	s.rend.clearFg, s.rend.clearBg = fg, bg
	return nil
}

// SetCursor moves the visible cursor to (x, y). Passing -1 for either
// coordinate hides it.
func SetCursor(x, y int) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return err
	}
	return s.rend.setCursor(x, y)
}

// HideCursor is a convenience wrapper for SetCursor(-1, -1).
func HideCursor() error {
	return SetCursor(cursorHidden, cursorHidden)
}

// Present diffs the back buffer against the front buffer and writes only
// the cells that changed, then repositions the cursor. If the
// terminal has been resized since the last Present or Clear, the buffers
// are grown/shrunk first.
func Present() error {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return err
	}
	if err := s.applyPendingResize(); err != nil {
		return err
	}
	return s.rend.present(s.back, s.front)
}

// SelectInputMode sets how a lone ESC byte is interpreted by subsequent
// Poll/Peek calls. Passing 0 leaves the current mode unchanged and
// returns it.
func SelectInputMode(mode InputMode) (InputMode, error) {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return 0, err
	}
	if mode != 0 {
		s.mode = mode
	}
	return s.mode, nil
}

// Poll blocks until the next event is available. A resize event
// also triggers the back/front buffers to be resized on the following
// Present or Clear call.
func Poll() (Event, error) {
	return pollTimeout(nil)
}

// Peek waits up to timeout for the next event, returning a zero
// (EventNone) Event if none arrives in time.
func Peek(timeout time.Duration) (Event, error) {
	return pollTimeout(&timeout)
}

func pollTimeout(timeout *time.Duration) (Event, error) {
	stateMu.Lock()
	defer stateMu.Unlock()
	s, err := current()
	if err != nil {
		return Event{}, err
	}

	ev, err := waitFillEvent(int(s.tty.Fd()), s.rp, s.ring, s.mode, s.term, s.chunk, timeout)
	if err != nil {
		return Event{}, err
	}
	if ev.Type == EventResize {
		s.pendingResize = true
	}
	return ev, nil
}

func (s *screen) applyPendingResize() error {
	if !s.pendingResize {
		return nil
	}
	s.pendingResize = false

	w, h, err := termSize(int(s.tty.Fd()))
	if err != nil {
		return err
	}
	s.width, s.height = w, h
	s.back.resize(w, h, s.rend.clearFg, s.rend.clearBg)
	s.front.resize(w, h, s.rend.clearFg, s.rend.clearBg)
	s.front.clear(s.rend.clearFg, s.rend.clearBg)
	return s.rend.sendClear()
}
