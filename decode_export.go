package tcbox

// DecodeForTest exposes decodeEvent to black-box contract tests outside
// this package. It lives in a non-test file so that tests in other
// packages can reach it. termName must name an entry in terminals; it panics
// otherwise, since contract tests only ever pass fixed, known names.
func DecodeForTest(input []byte, mode InputMode, termName string) (Event, bool) {
	t := lookupTerminal(termName)
	if t == nil {
		panic("tcbox: DecodeForTest: unknown terminal " + termName)
	}
	rb := newRingBuffer(len(input) + 1)
	rb.Push(input)
	var pendingMod Modifier
	return decodeEvent(rb, mode, t, &pendingMod)
}
