package render

import (
	"strings"
	"testing"
)

func TestSetDotLightsBraillePattern(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetDot(0, 0, DimStyle)
	if got := c.Rune(0, 0); got != '⠁' {
		t.Fatalf("dot (0,0): rune %q, want %q", got, '⠁')
	}

	// Dots in the same cell accumulate into one pattern.
	c.SetDot(1, 3, DimStyle)
	if got := c.Rune(0, 0); got != rune(0x2801|0x2880) {
		t.Fatalf("dots (0,0)+(1,3): rune %#x", got)
	}
}

func TestExplicitRuneWinsOverDots(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetDot(0, 0, DimStyle)
	c.SetCell(0, 0, 'X', DimStyle)
	if got := c.Rune(0, 0); got != 'X' {
		t.Fatalf("rune %q, want X", got)
	}
}

func TestSetCellClipsOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetCell(-1, 0, 'X', DimStyle)
	c.SetCell(0, -1, 'X', DimStyle)
	c.SetCell(2, 0, 'X', DimStyle)
	c.SetCell(0, 2, 'X', DimStyle)
	c.SetDot(-1, 0, DimStyle)
	c.SetDot(99, 99, DimStyle)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c.Rune(x, y) != 0 {
				t.Fatalf("cell (%d,%d) written by clipped call", x, y)
			}
		}
	}
}

func TestDotLineCoversEndpoints(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DotLine(0, 0, 7, 7, DimStyle)
	if c.Rune(0, 0) == 0 {
		t.Fatal("line start cell empty")
	}
	if c.Rune(3, 1) == 0 {
		t.Fatal("line end cell empty")
	}
}

func TestBoxDrawsRoundedFrame(t *testing.T) {
	c := NewCanvas(5, 4)
	c.Box(0, 0, 5, 4, DimStyle)
	corners := map[[2]int]rune{
		{0, 0}: '╭', {4, 0}: '╮',
		{0, 3}: '╰', {4, 3}: '╯',
	}
	for pos, want := range corners {
		if got := c.Rune(pos[0], pos[1]); got != want {
			t.Fatalf("corner (%d,%d): %q, want %q", pos[0], pos[1], got, want)
		}
	}
	if c.Rune(2, 0) != '─' || c.Rune(0, 2) != '│' {
		t.Fatal("box edges missing")
	}
}

func TestStringEmitsExactGrid(t *testing.T) {
	c := NewCanvas(3, 2)
	c.WriteString(0, 0, "ab", DimStyle)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("%d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Fatalf("first line %q missing written text", lines[0])
	}
}
