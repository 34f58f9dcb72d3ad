package tcbox

import "fmt"

// Key is a normalized key identifier. Function and navigation keys are
// assigned high values (0xFFFF-index, matching the historical terminfo
// key table order); control characters and space/backspace reuse their
// raw byte value.
type Key uint16

// Function and navigation keys. Order matters: it is the same order as
// the escape-sequence tables in terminfo.go, and a table's index i maps
// to key 0xFFFF-i.
const (
	KeyF1 Key = 0xFFFF - iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// Control keys and other keys below or at SPACE, plus BACKSPACE2. These
// are delivered with their raw byte value.
const (
	KeyCtrlTilde      Key = 0x00
	KeyCtrl2          Key = 0x00
	KeyCtrlA          Key = 0x01
	KeyCtrlB          Key = 0x02
	KeyCtrlC          Key = 0x03
	KeyCtrlD          Key = 0x04
	KeyCtrlE          Key = 0x05
	KeyCtrlF          Key = 0x06
	KeyCtrlG          Key = 0x07
	KeyBackspace      Key = 0x08
	KeyCtrlH          Key = 0x08
	KeyTab            Key = 0x09
	KeyCtrlI          Key = 0x09
	KeyCtrlJ          Key = 0x0A
	KeyCtrlK          Key = 0x0B
	KeyCtrlL          Key = 0x0C
	KeyEnter          Key = 0x0D
	KeyCtrlM          Key = 0x0D
	KeyCtrlN          Key = 0x0E
	KeyCtrlO          Key = 0x0F
	KeyCtrlP          Key = 0x10
	KeyCtrlQ          Key = 0x11
	KeyCtrlR          Key = 0x12
	KeyCtrlS          Key = 0x13
	KeyCtrlT          Key = 0x14
	KeyCtrlU          Key = 0x15
	KeyCtrlV          Key = 0x16
	KeyCtrlW          Key = 0x17
	KeyCtrlX          Key = 0x18
	KeyCtrlY          Key = 0x19
	KeyCtrlZ          Key = 0x1A
	KeyEsc            Key = 0x1B
	KeyCtrlLsqBracket Key = 0x1B
	KeyCtrl3          Key = 0x1B
	KeyCtrl4          Key = 0x1C
	KeyCtrlBackslash  Key = 0x1C
	KeyCtrl5          Key = 0x1D
	KeyCtrlRsqBracket Key = 0x1D
	KeyCtrl6          Key = 0x1E
	KeyCtrl7          Key = 0x1F
	KeyCtrlSlash      Key = 0x1F
	KeyCtrlUnderscore Key = 0x1F
	KeySpace          Key = 0x20
	KeyBackspace2     Key = 0x7F
	KeyCtrl8          Key = 0x7F
)

// String returns a short human-readable name for well-known keys, and a
// numeric fallback otherwise.
func (k Key) String() string {
	switch k {
	case KeyF1:
		return "F1"
	case KeyF2:
		return "F2"
	case KeyF3:
		return "F3"
	case KeyF4:
		return "F4"
	case KeyF5:
		return "F5"
	case KeyF6:
		return "F6"
	case KeyF7:
		return "F7"
	case KeyF8:
		return "F8"
	case KeyF9:
		return "F9"
	case KeyF10:
		return "F10"
	case KeyF11:
		return "F11"
	case KeyF12:
		return "F12"
	case KeyInsert:
		return "Insert"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPgup:
		return "PgUp"
	case KeyPgdn:
		return "PgDn"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyEsc:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyBackspace2:
		return "Backspace2"
	case KeySpace:
		return "Space"
	default:
		if k <= 0x1A {
			return fmt.Sprintf("Ctrl+%c", 'A'+byte(k)-1)
		}
		return fmt.Sprintf("Key(0x%04X)", uint16(k))
	}
}

// Modifier is a bitset of key modifiers. Only ALT is currently
// recognized; it is set by the decoder when a lone ESC precedes a key
// while in ALT input mode.
type Modifier uint8

// ModAlt marks a key as ALT-modified.
const ModAlt Modifier = 0x01

// EventType distinguishes keyboard input from a resize notification. The
// numeric values match the reference's event-loop return codes: 1 is a
// key event, 2 is a resize event. EventNone (0) is the Type of the zero
// Event that Peek returns on timeout ("no event").
type EventType uint8

const (
	EventNone   EventType = 0
	EventKey    EventType = 1
	EventResize EventType = 2
)

// Event is a single decoded input event. For EventKey, exactly one of Key
// (nonzero) or Ch (nonzero) is meaningful: Key for function/control keys,
// Ch for a decoded Unicode scalar. For EventResize, only Width and Height
// are meaningful.
type Event struct {
	Type   EventType
	Mod    Modifier
	Key    Key
	Ch     rune
	Width  int
	Height int
}
