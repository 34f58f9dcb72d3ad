//go:build !windows
// +build !windows

package integration_test

import (
	"os"
	"testing"

	"github.com/tcbox/tcbox"
	"golang.org/x/sys/unix"
)

// TestInitEntersAndShutdownRestoresRawMode validates that Init puts the
// controlling terminal into raw mode and Shutdown restores it exactly,
// against a real tty. Skipped when no controlling terminal is available
// (e.g. under most CI runners).
func TestInitEntersAndShutdownRestoresRawMode(t *testing.T) {
	tty, ok := openControllingTTY(t)
	if !ok {
		t.Skip("skipping integration test: no controlling terminal")
	}
	tty.Close()

	fd := int(mustOpenTTY(t).Fd())
	original, err := getTermios(fd)
	if err != nil {
		t.Fatalf("getTermios: %v", err)
	}

	if err := tcbox.Init(); err != nil {
		t.Fatalf("tcbox.Init: %v", err)
	}

	raw, err := getTermios(fd)
	if err != nil {
		t.Fatalf("getTermios after Init: %v", err)
	}
	if raw.Lflag&unix.ICANON != 0 {
		t.Error("ICANON still set after Init")
	}
	if raw.Lflag&unix.ECHO != 0 {
		t.Error("ECHO still set after Init")
	}

	if err := tcbox.Shutdown(); err != nil {
		t.Fatalf("tcbox.Shutdown: %v", err)
	}

	restored, err := getTermios(fd)
	if err != nil {
		t.Fatalf("getTermios after Shutdown: %v", err)
	}
	if restored.Lflag != original.Lflag {
		t.Errorf("Lflag not restored: got %v, want %v", restored.Lflag, original.Lflag)
	}
	if restored.Iflag != original.Iflag {
		t.Errorf("Iflag not restored: got %v, want %v", restored.Iflag, original.Iflag)
	}
}

// TestDoubleInitFails validates the singleton contract: a second Init
// without an intervening Shutdown returns ErrAlreadyInitialized. The
// library is a singleton.
func TestDoubleInitFails(t *testing.T) {
	if _, ok := openControllingTTY(t); !ok {
		t.Skip("skipping integration test: no controlling terminal")
	}

	if err := tcbox.Init(); err != nil {
		t.Fatalf("first tcbox.Init: %v", err)
	}
	defer tcbox.Shutdown()

	if err := tcbox.Init(); err != tcbox.ErrAlreadyInitialized {
		t.Errorf("second tcbox.Init: err = %v, want ErrAlreadyInitialized", err)
	}
}

// TestShutdownWithoutInitFails validates that operations before Init
// report ErrNotInitialized rather than panicking.
func TestShutdownWithoutInitFails(t *testing.T) {
	if err := tcbox.Shutdown(); err != tcbox.ErrNotInitialized {
		t.Errorf("tcbox.Shutdown without Init: err = %v, want ErrNotInitialized", err)
	}
}

func openControllingTTY(t *testing.T) (*os.File, bool) {
	t.Helper()
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, false
	}
	return f, true
}

func mustOpenTTY(t *testing.T) *os.File {
	t.Helper()
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open /dev/tty: %v", err)
	}
	return f
}
