//go:build !windows
// +build !windows

package tcbox

import "golang.org/x/sys/unix"

// rawMode captures a terminal's original termios so it can be restored,
// and applies the input/output flag changes tb_init's C counterpart
// makes: no echo, no line buffering, no signal-generating keys, 8-bit
// clean, non-blocking reads (VMIN=0, VTIME=0) since the
// event loop multiplexes the fd with select rather than blocking in
// read.
type rawMode struct {
	fd       int
	original unix.Termios
}

func enterRawMode(fd int) (*rawMode, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, err
	}
	return &rawMode{fd: fd, original: *orig}, nil
}

func (r *rawMode) restore() error {
	return unix.IoctlSetTermios(r.fd, ioctlSetTermios, &r.original)
}

// termSize reads the controlling terminal's current column/row count
// via TIOCGWINSZ.
func termSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
