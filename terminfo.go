package tcbox

import "strings"

// Output-control slot indices. Each terminal entry carries a string
// for every slot; an empty string means "no-op on this terminal". Slots 5
// and 10 are printf-style templates consumed with fmt.Fprintf; their verbs
// are %d rather than the reference's %u since Go's fmt has no unsigned verb.
const (
	tEnterCA = iota
	tExitCA
	tShowCursor
	tHideCursor
	tClearScreen
	tSGR
	tSGR0
	tUnderline
	tBold
	tBlink
	tMoveCursor
	tEnterKeypad
	tExitKeypad

	numFuncs
)

// Functional-key table index → Key. Index order is the stable
// contract shared by every terminal entry's keys array: key = 0xFFFF-index.
var funcKeyOrder = [...]Key{
	KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	KeyInsert, KeyDelete, KeyHome, KeyEnd, KeyPgup, KeyPgdn,
	KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight,
}

// terminal holds one named terminal's escape-sequence and control-template
// tables, ported verbatim from the historical term.c tables.
type terminal struct {
	name  string
	keys  []string // indexed like funcKeyOrder; terminated conceptually by len(keys)
	funcs [numFuncs]string
}

var terminals = []terminal{
	{
		name: "Eterm",
		keys: []string{
			"\033[11~", "\033[12~", "\033[13~", "\033[14~", "\033[15~", "\033[17~",
			"\033[18~", "\033[19~", "\033[20~", "\033[21~", "\033[23~", "\033[24~",
			"\033[2~", "\033[3~", "\033[7~", "\033[8~", "\033[5~", "\033[6~",
			"\033[A", "\033[B", "\033[D", "\033[C",
		},
		funcs: [numFuncs]string{
			"\0337\033[?47h", "\033[2J\033[?47l\0338", "\033[?25h", "\033[?25l",
			"\033[H\033[2J", "\033[3%d;4%dm", "\033[m", "\033[4m", "\033[1m",
			"\033[5m", "\033[%d;%dH", "", "",
		},
	},
	{
		name: "screen",
		keys: []string{
			"\033OP", "\033OQ", "\033OR", "\033OS", "\033[15~", "\033[17~",
			"\033[18~", "\033[19~", "\033[20~", "\033[21~", "\033[23~", "\033[24~",
			"\033[2~", "\033[3~", "\033[1~", "\033[4~", "\033[5~", "\033[6~",
			"\033OA", "\033OB", "\033OD", "\033OC",
		},
		funcs: [numFuncs]string{
			"\033[?1049h", "\033[?1049l", "\033[34h\033[?25h", "\033[?25l",
			"\033[H\033[J", "\033[3%d;4%dm", "\033[m", "\033[4m", "\033[1m",
			"\033[5m", "\033[%d;%dH", "\033[?1h\033=", "\033[?1l\033>",
		},
	},
	{
		name: "xterm",
		keys: []string{
			"\033OP", "\033OQ", "\033OR", "\033OS", "\033[15~", "\033[17~",
			"\033[18~", "\033[19~", "\033[20~", "\033[21~", "\033[23~", "\033[24~",
			"\033[2~", "\033[3~", "\033OH", "\033OF", "\033[5~", "\033[6~",
			"\033OA", "\033OB", "\033OD", "\033OC",
		},
		funcs: [numFuncs]string{
			"\033[?1049h", "\033[?1049l", "\033[?12l\033[?25h", "\033[?25l",
			"\033[H\033[2J", "\033[3%d;4%dm", "\033(B\033[m", "\033[4m", "\033[1m",
			"\033[5m", "\033[%d;%dH", "\033[?1h\033=", "\033[?1l\033>",
		},
	},
	{
		name: "rxvt-unicode",
		keys: []string{
			"\033[11~", "\033[12~", "\033[13~", "\033[14~", "\033[15~", "\033[17~",
			"\033[18~", "\033[19~", "\033[20~", "\033[21~", "\033[23~", "\033[24~",
			"\033[2~", "\033[3~", "\033[7~", "\033[8~", "\033[5~", "\033[6~",
			"\033[A", "\033[B", "\033[D", "\033[C",
		},
		funcs: [numFuncs]string{
			"\033[?1049h", "\033[r\033[?1049l", "\033[?25h", "\033[?25l",
			"\033[H\033[2J", "\033[3%d;4%dm", "\033[m\033(B", "\033[4m", "\033[1m",
			"\033[5m", "\033[%d;%dH", "\033=", "\033>",
		},
	},
	{
		name: "linux",
		keys: []string{
			"\033[[A", "\033[[B", "\033[[C", "\033[[D", "\033[[E", "\033[17~",
			"\033[18~", "\033[19~", "\033[20~", "\033[21~", "\033[23~", "\033[24~",
			"\033[2~", "\033[3~", "\033[1~", "\033[4~", "\033[5~", "\033[6~",
			"\033[A", "\033[B", "\033[D", "\033[C",
		},
		funcs: [numFuncs]string{
			"", "", "\033[?25h\033[?0c", "\033[?25l\033[?1c",
			"\033[H\033[J", "\033[3%d;4%dm", "\033[0;10m", "\033[4m", "\033[1m",
			"\033[5m", "\033[%d;%dH", "", "",
		},
	},
	{
		name: "rxvt-256color",
		keys: []string{
			"\033[11~", "\033[12~", "\033[13~", "\033[14~", "\033[15~", "\033[17~",
			"\033[18~", "\033[19~", "\033[20~", "\033[21~", "\033[23~", "\033[24~",
			"\033[2~", "\033[3~", "\033[7~", "\033[8~", "\033[5~", "\033[6~",
			"\033[A", "\033[B", "\033[D", "\033[C",
		},
		funcs: [numFuncs]string{
			"\0337\033[?47h", "\033[2J\033[?47l\0338", "\033[?25h", "\033[?25l",
			"\033[H\033[2J", "\033[3%d;4%dm", "\033[m", "\033[4m", "\033[1m",
			"\033[5m", "\033[%d;%dH", "\033=", "\033>",
		},
	},
}

// heuristics is the fixed-order substring fallback used when the
// environment hint doesn't exactly match a known terminal name.
// "cygwin" maps to the xterm entry, not a distinct table.
var heuristics = []struct {
	substr string
	table  string // name of the terminals[] entry to reuse
}{
	{"xterm", "xterm"},
	{"rxvt", "rxvt-unicode"},
	{"linux", "linux"},
	{"Eterm", "Eterm"},
	{"screen", "screen"},
	{"cygwin", "xterm"},
}

func lookupTerminal(byName string) *terminal {
	for i := range terminals {
		if terminals[i].name == byName {
			return &terminals[i]
		}
	}
	return nil
}

// detectTerminal selects a terminal entry for the given TERM-style
// environment hint, first by exact name match, then by the fixed-order
// substring heuristics. It returns ErrUnsupportedTerminal if
// nothing matches.
func detectTerminal(hint string) (*terminal, error) {
	if t := lookupTerminal(hint); t != nil {
		return t, nil
	}
	for _, h := range heuristics {
		if strings.Contains(hint, h.substr) {
			return lookupTerminal(h.table), nil
		}
	}
	return nil, newError(ErrCodeUnsupportedTerminal, "no terminal entry or heuristic match for TERM="+hint, nil)
}
