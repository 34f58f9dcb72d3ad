package tcbox

import (
	"time"

	"golang.org/x/sys/unix"
)

// defaultPollChunk is how many bytes are read from the tty per wakeup,
// matching the reference's ENOUGH_DATA_FOR_INPUT_PARSING.
const defaultPollChunk = 128

// waitFillEvent is the single-threaded, synchronous core of Poll/Peek
// (no background capture goroutine). It first tries to decode an
// event already sitting in rb; failing that, it attempts a non-blocking
// read of inFd; failing that, it blocks in select on {inFd, resize read
// fd} until one is readable or timeout elapses. timeout == nil blocks
// indefinitely, mirroring tb_poll_event's wait_fill_event(event, 0).
func waitFillEvent(inFd int, rp *resizePipe, rb *ringBuffer, mode InputMode, t *terminal, chunk int, timeout *time.Duration) (Event, error) {
	var pendingMod Modifier

	if ev, ok := decodeEvent(rb, mode, t, &pendingMod); ok {
		return ev, nil
	}
	if chunk <= 0 {
		chunk = defaultPollChunk
	}

	buf := make([]byte, chunk)
	if n, err := unix.Read(inFd, buf); err == nil && n > 0 {
		if !rb.Push(buf[:n]) {
			return Event{}, ErrInputOverflow
		}
		if ev, ok := decodeEvent(rb, mode, t, &pendingMod); ok {
			return ev, nil
		}
	}

	for {
		rFdSet := &unix.FdSet{}
		fdSet(rFdSet, inFd)
		fdSet(rFdSet, rp.readFd)
		maxFd := inFd
		if rp.readFd > maxFd {
			maxFd = rp.readFd
		}

		var tv *unix.Timeval
		if timeout != nil {
			val := unix.NsecToTimeval(timeout.Nanoseconds())
			tv = &val
		}

		n, err := unix.Select(maxFd+1, rFdSet, nil, nil, tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return Event{}, err
		}
		if n == 0 {
			return Event{}, nil // timeout, no event (EventType zero value is EventNone)
		}

		if fdIsSet(rFdSet, inFd) {
			n, err := unix.Read(inFd, buf)
			if err != nil {
				return Event{}, err
			}
			if n > 0 {
				if !rb.Push(buf[:n]) {
					return Event{}, ErrInputOverflow
				}
				if ev, ok := decodeEvent(rb, mode, t, &pendingMod); ok {
					return ev, nil
				}
			}
		}

		if fdIsSet(rFdSet, rp.readFd) {
			rp.drain()
			w, h, err := termSize(inFd)
			if err != nil {
				return Event{}, err
			}
			return Event{Type: EventResize, Width: w, Height: h}, nil
		}
	}
}
