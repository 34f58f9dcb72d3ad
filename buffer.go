package tcbox

// cellBuffer is a width×height grid of cells in row-major order, with
// O(1) coordinate access. Two instances exist per screen: back
// (caller-writable) and front (shadow of the last-emitted frame).
type cellBuffer struct {
	width, height int
	cells         []Cell
}

func newCellBuffer(width, height int) *cellBuffer {
	b := &cellBuffer{}
	b.init(width, height)
	return b
}

func (b *cellBuffer) init(width, height int) {
	b.width, b.height = width, height
	b.cells = make([]Cell, width*height)
}

// index returns the offset of (x, y) into cells. Callers must bounds-check
// first; index itself does not.
func (b *cellBuffer) index(x, y int) int { return y*b.width + x }

// at returns a pointer to the cell at (x, y). Callers must bounds-check.
func (b *cellBuffer) at(x, y int) *Cell { return &b.cells[b.index(x, y)] }

func (b *cellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// clear resets every cell to (space, fg, bg).
func (b *cellBuffer) clear(fg, bg Attribute) {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Fg: fg, Bg: bg}
	}
}

// resize changes the grid's dimensions in place, preserving the top-left
// min(oldW,newW) x min(oldH,newH) overlap and filling new cells with
// (space, fg, bg). A no-op if dimensions are unchanged.
func (b *cellBuffer) resize(width, height int, fg, bg Attribute) {
	if width == b.width && height == b.height {
		return
	}
	old := b.cells
	oldW, oldH := b.width, b.height

	b.width, b.height = width, height
	b.cells = make([]Cell, width*height)
	b.clear(fg, bg)

	minW, minH := width, height
	if oldW < minW {
		minW = oldW
	}
	if oldH < minH {
		minH = oldH
	}
	for y := 0; y < minH; y++ {
		srcOff := y * oldW
		dstOff := y * width
		copy(b.cells[dstOff:dstOff+minW], old[srcOff:srcOff+minW])
	}
}
