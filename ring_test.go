package tcbox

import "testing"

func TestRingBufferPushReadPop(t *testing.T) {
	rb := newRingBuffer(8)

	if !rb.Push([]byte("ab")) {
		t.Fatal("Push() = false, want true")
	}
	if rb.Used() != 2 {
		t.Fatalf("Used() = %d, want 2", rb.Used())
	}
	if rb.Free() != 6 {
		t.Fatalf("Free() = %d, want 6", rb.Free())
	}

	dst := make([]byte, 2)
	n := rb.Read(dst, 2)
	if n != 2 || string(dst) != "ab" {
		t.Fatalf("Read() = %d,%q, want 2,\"ab\"", n, dst)
	}
	if rb.Used() != 2 {
		t.Fatalf("Read must not consume; Used() = %d, want 2", rb.Used())
	}

	rb.Pop(0, 1)
	if rb.Used() != 1 {
		t.Fatalf("Used() after Pop = %d, want 1", rb.Used())
	}
	dst = make([]byte, 1)
	rb.Read(dst, 1)
	if dst[0] != 'b' {
		t.Fatalf("Read() after Pop = %q, want \"b\"", dst)
	}
}

func TestRingBufferWraparound(t *testing.T) {
	rb := newRingBuffer(4)
	rb.Push([]byte{1, 2, 3})
	rb.Pop(0, 2)
	if !rb.Push([]byte{4, 5, 6}) {
		t.Fatal("Push() across wraparound = false, want true")
	}
	dst := make([]byte, 4)
	n := rb.Read(dst, 4)
	if n != 4 {
		t.Fatalf("Read() = %d, want 4", n)
	}
	want := []byte{3, 4, 5, 6}
	for i, b := range want {
		if dst[i] != b {
			t.Fatalf("Read()[%d] = %d, want %d", i, dst[i], b)
		}
	}
}

func TestRingBufferOverflowRejectsWhole(t *testing.T) {
	rb := newRingBuffer(4)
	rb.Push([]byte{1, 2, 3})
	if rb.Push([]byte{4, 5}) {
		t.Fatal("Push() beyond capacity = true, want false")
	}
	if rb.Used() != 3 {
		t.Fatalf("Used() after rejected Push = %d, want 3 (unchanged)", rb.Used())
	}
}

func TestRingBufferReset(t *testing.T) {
	rb := newRingBuffer(4)
	rb.Push([]byte{1, 2})
	rb.Reset()
	if rb.Used() != 0 || rb.Free() != 4 {
		t.Fatalf("after Reset: Used()=%d Free()=%d, want 0,4", rb.Used(), rb.Free())
	}
}

func TestNewRingBufferPanicsOnNonPositiveCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("newRingBuffer(0) did not panic")
		}
	}()
	newRingBuffer(0)
}
