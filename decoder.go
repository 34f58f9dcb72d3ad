package tcbox

// InputMode selects how a lone, unmatched ESC byte is interpreted.
type InputMode int

const (
	// InputEsc reports a lone ESC as KeyEsc.
	InputEsc InputMode = 1
	// InputAlt treats a lone ESC as an ALT modifier on the key that follows.
	InputAlt InputMode = 2
)

// peekWindow is the longest escape sequence length supported plus margin
// no table entry in terminfo.go is anywhere near this long.
const peekWindow = 16

// decodeEvent attempts to decode a single event from the head of rb. It
// returns ok=false (with a zero Event) when the buffered bytes don't yet
// form a complete event and the caller should wait for more input. It
// never returns an error: malformed UTF-8 and unmatched escapes are
// absorbed per the decoder's edge-case rules, not reported.
//
// pendingMod carries an ALT modifier already committed by a previous,
// incomplete call across the retry (the tail-recursion note: the
// leading ESC is popped before the ALT branch re-enters decoding, so the
// modifier must survive even if this call also reports retry). Callers
// that invoke decodeEvent repeatedly while filling one Poll/Peek request
// must reuse the same *Modifier across those calls, resetting it to 0
// only when starting a fresh request; a one-shot caller may pass a
// pointer to a local zero value.
func decodeEvent(rb *ringBuffer, mode InputMode, t *terminal, pendingMod *Modifier) (Event, bool) {
	mod := *pendingMod
	for {
		if rb.Used() == 0 {
			*pendingMod = mod
			return Event{}, false
		}

		n := rb.Used()
		if n > peekWindow {
			n = peekWindow
		}
		peek := make([]byte, n)
		rb.Read(peek, n)
		b0 := peek[0]

		if b0 == 0x1B {
			if key, length, matched := matchEscape(peek, t); matched {
				rb.Pop(0, length)
				*pendingMod = 0
				return Event{Type: EventKey, Mod: mod, Key: key}, true
			}

			switch mode {
			case InputEsc:
				rb.Pop(0, 1)
				*pendingMod = 0
				return Event{Type: EventKey, Mod: 0, Key: KeyEsc}, true
			case InputAlt:
				rb.Pop(0, 1)
				mod = ModAlt
				continue // re-decode the following bytes with ALT pending
			default:
				rb.Pop(0, 1)
				*pendingMod = 0
				return Event{Type: EventKey, Mod: 0, Key: KeyEsc}, true
			}
		}

		if b0 <= byte(KeySpace) || b0 == byte(KeyBackspace2) {
			rb.Pop(0, 1)
			*pendingMod = 0
			return Event{Type: EventKey, Mod: mod, Key: Key(b0)}, true
		}

		length := utf8CharLength(b0)
		if n < length {
			// Not enough buffered bytes for this code point yet. mod is
			// written back to *pendingMod so a caller that already
			// committed an ALT modifier (ESC byte popped above) and
			// retries after more input arrives does not lose it.
			*pendingMod = mod
			return Event{}, false
		}
		r, consumed, ok := utf8CharToUnicode(peek[:length])
		if !ok {
			*pendingMod = mod
			return Event{}, false
		}
		rb.Pop(0, consumed)
		*pendingMod = 0
		return Event{Type: EventKey, Mod: mod, Ch: r}, true
	}
}

// matchEscape tests each of t's escape sequences, in index order, as a
// prefix of peek. The first match wins; its table index maps to a Key via
// funcKeyOrder (key = 0xFFFF-index).
func matchEscape(peek []byte, t *terminal) (Key, int, bool) {
	for i, seq := range t.keys {
		if len(seq) == 0 || len(peek) < len(seq) {
			continue
		}
		if string(peek[:len(seq)]) == seq {
			return funcKeyOrder[i], len(seq), true
		}
	}
	return 0, 0, false
}
