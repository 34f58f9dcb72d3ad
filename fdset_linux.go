//go:build linux

package tcbox

import "golang.org/x/sys/unix"

// fdSetWordBits matches NFDBITS on linux, where unix.FdSet.Bits is
// [16]int64.
const fdSetWordBits = 64

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/fdSetWordBits] |= 1 << (uint(fd) % fdSetWordBits)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/fdSetWordBits]&(1<<(uint(fd)%fdSetWordBits)) != 0
}
