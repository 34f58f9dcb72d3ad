package tcbox

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestRenderPresentOnlyEmitsChangedCells(t *testing.T) {
	term := lookupTerminal("xterm")
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	r := newRenderer(w, term)

	back := newCellBuffer(2, 1)
	front := newCellBuffer(2, 1)
	back.clear(ColorWhite, ColorBlack)
	front.clear(ColorWhite, ColorBlack)
	*back.at(0, 0) = Cell{Ch: 'x', Fg: ColorWhite, Bg: ColorBlack}

	if err := r.present(back, front); err != nil {
		t.Fatalf("present() error = %v", err)
	}
	if *front.at(0, 0) != *back.at(0, 0) {
		t.Error("front buffer not updated to match back after present")
	}
	if !strings.Contains(out.String(), "x") {
		t.Errorf("output %q does not contain the changed glyph", out.String())
	}
}

func TestRenderPresentSkipsIdenticalCells(t *testing.T) {
	term := lookupTerminal("xterm")
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	r := newRenderer(w, term)

	back := newCellBuffer(2, 1)
	front := newCellBuffer(2, 1)
	back.clear(ColorWhite, ColorBlack)
	front.clear(ColorWhite, ColorBlack)

	if err := r.present(back, front); err != nil {
		t.Fatalf("present() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty (no diffs)", out.String())
	}
}

func TestRenderSendAttrCachesLastAttributes(t *testing.T) {
	term := lookupTerminal("xterm")
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	r := newRenderer(w, term)

	if err := r.sendAttr(ColorRed, ColorBlack); err != nil {
		t.Fatalf("sendAttr() error = %v", err)
	}
	w.Flush()
	n1 := out.Len()
	if err := r.sendAttr(ColorRed, ColorBlack); err != nil {
		t.Fatalf("sendAttr() error = %v", err)
	}
	w.Flush()
	if out.Len() != n1 {
		t.Errorf("sendAttr() with unchanged attrs wrote %d more bytes, want 0", out.Len()-n1)
	}
}

// TestRenderPresentDiffMinimality verifies that a 3x1 grid presented in
// full, then with exactly one cell changed and presented again, emits
// only that cell's worth of output on the second call: no repeated
// attribute-set (colors are unchanged) and a cursor move directly to
// the changed column.
func TestRenderPresentDiffMinimality(t *testing.T) {
	term := lookupTerminal("xterm")
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	r := newRenderer(w, term)

	back := newCellBuffer(3, 1)
	front := newCellBuffer(3, 1)
	back.clear(ColorWhite, ColorBlack)
	// front stays zeroed, so every cell differs and the initial present
	// emits the full frame (and primes the attribute cache).

	if err := r.present(back, front); err != nil {
		t.Fatalf("initial present() error = %v", err)
	}

	*back.at(1, 0) = Cell{Ch: 'X', Fg: ColorWhite, Bg: ColorBlack}
	out.Reset()

	if err := r.present(back, front); err != nil {
		t.Fatalf("second present() error = %v", err)
	}
	got := out.String()

	if strings.Contains(got, term.funcs[tSGR0]) {
		t.Errorf("second present() re-emitted SGR reset for an unchanged attribute pair: %q", got)
	}
	wantMove := fmt.Sprintf(term.funcs[tMoveCursor], 1, 2)
	if !strings.Contains(got, wantMove) {
		t.Errorf("second present() = %q, want a cursor move to (row=1,col=2): %q", got, wantMove)
	}
	if !strings.Contains(got, "X") {
		t.Errorf("second present() = %q, want the changed glyph 'X'", got)
	}
	if *front.at(1, 0) != *back.at(1, 0) {
		t.Error("front buffer not updated to match back after second present")
	}
}

func TestRenderSetCursorTogglesVisibility(t *testing.T) {
	term := lookupTerminal("xterm")
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	r := newRenderer(w, term)

	if err := r.setCursor(2, 3); err != nil {
		t.Fatalf("setCursor() error = %v", err)
	}
	w.Flush()
	if !strings.Contains(out.String(), term.funcs[tShowCursor]) {
		t.Error("setCursor from hidden did not emit show-cursor sequence")
	}
	out.Reset()

	if err := r.setCursor(cursorHidden, cursorHidden); err != nil {
		t.Fatalf("setCursor() error = %v", err)
	}
	w.Flush()
	if !strings.Contains(out.String(), term.funcs[tHideCursor]) {
		t.Error("setCursor to hidden did not emit hide-cursor sequence")
	}
}
