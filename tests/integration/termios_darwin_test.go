//go:build darwin

package integration_test

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TIOCGETA

func getTermios(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, ioctlGetTermios)
}
