//go:build darwin

package tcbox

import "golang.org/x/sys/unix"

// fdSetWordBits matches NFDBITS on darwin, where unix.FdSet.Bits is
// [32]int32.
const fdSetWordBits = 32

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/fdSetWordBits] |= 1 << (uint(fd) % fdSetWordBits)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/fdSetWordBits]&(1<<(uint(fd)%fdSetWordBits)) != 0
}
