//go:build !windows
// +build !windows

package tcbox

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// resizePipe is the self-pipe side of SIGWINCH delivery. Go cannot
// install a C-style async-signal-safe handler, but os/signal's channel
// delivery plays the same role: a dedicated goroutine receives on sigCh
// and performs the single async-signal-safe operation the C handler
// does, a non-blocking write to the pipe's write end, so the blocking
// select in the event loop observes the resize exactly as it would a
// byte written from a real signal handler.
type resizePipe struct {
	readFd, writeFd int
	sigCh           chan os.Signal
	done            chan struct{}
}

func newResizePipe() (*resizePipe, error) {
	var fdPair [2]int
	if err := unix.Pipe2(fdPair[:], unix.O_NONBLOCK); err != nil {
		return nil, err
	}

	p := &resizePipe{
		readFd:  fdPair[0],
		writeFd: fdPair[1],
		sigCh:   make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	signal.Notify(p.sigCh, unix.SIGWINCH)
	go p.forward()
	return p, nil
}

func (p *resizePipe) forward() {
	one := [1]byte{1}
	for {
		select {
		case <-p.sigCh:
			unix.Write(p.writeFd, one[:])
		case <-p.done:
			return
		}
	}
}

// drain consumes one wakeup byte after select reports the read end
// readable, mirroring the C loop's read(winch_fds[0], &zzz, ...).
func (p *resizePipe) drain() {
	var buf [1]byte
	unix.Read(p.readFd, buf[:])
}

func (p *resizePipe) close() {
	signal.Stop(p.sigCh)
	close(p.done)
	unix.Close(p.readFd)
	unix.Close(p.writeFd)
}
