package tcbox

// Attribute packs a base color into its low nibble and style flags into
// the high bits. On a foreground attribute, BOLD and UNDERLINE are
// meaningful; on a background attribute, the BOLD bit is reinterpreted as
// BLINK. There is no separate blink flag.
type Attribute uint16

// Base colors occupy the low nibble of an Attribute.
const (
	ColorBlack Attribute = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Style flags.
const (
	AttrBold      Attribute = 0x10 // on background, reinterpreted as blink
	AttrUnderline Attribute = 0x20 // foreground only
)

// Cell is the unit of the grid: a Unicode scalar plus foreground and
// background attributes. Cells are value types; equality is bitwise over
// the triple.
type Cell struct {
	Ch rune
	Fg Attribute
	Bg Attribute
}
