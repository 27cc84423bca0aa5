package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBits maps a (dx, dy) dot position inside one cell to its bit in
// the braille pattern block. Cells hold 2x4 dots.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type cell struct {
	r     rune
	style lipgloss.Style
	dots  uint8
}

// Canvas is a fixed-size grid of styled cells with a braille dot layer
// for sub-cell line drawing. Explicit runes win over braille dots when
// both are present in a cell.
type Canvas struct {
	w, h  int
	cells []cell
}

// NewCanvas creates an empty canvas of w by h cells.
func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Canvas{w: w, h: h, cells: make([]cell, w*h)}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// SetCell places a rune at cell coordinates, clipping out-of-range writes.
func (c *Canvas) SetCell(x, y int, r rune, style lipgloss.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	cl := &c.cells[y*c.w+x]
	cl.r = r
	cl.style = style
}

// Rune returns the rune at cell coordinates ('\x00' when empty), with
// braille dots resolved. Used by tests to inspect drawn output.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0
	}
	cl := c.cells[y*c.w+x]
	if cl.r != 0 {
		return cl.r
	}
	if cl.dots != 0 {
		return rune(0x2800 + int(cl.dots))
	}
	return 0
}

// WriteString writes s left to right starting at (x, y), clipping at the
// canvas edge.
func (c *Canvas) WriteString(x, y int, s string, style lipgloss.Style) {
	for _, r := range s {
		c.SetCell(x, y, r, style)
		x++
	}
}

// FillRect fills a cell rectangle with one rune.
func (c *Canvas) FillRect(x, y, w, h int, r rune, style lipgloss.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.SetCell(x+dx, y+dy, r, style)
		}
	}
}

// Box draws a rounded border around a cell rectangle.
func (c *Canvas) Box(x, y, w, h int, style lipgloss.Style) {
	if w < 2 || h < 2 {
		return
	}
	c.SetCell(x, y, '╭', style)
	c.SetCell(x+w-1, y, '╮', style)
	c.SetCell(x, y+h-1, '╰', style)
	c.SetCell(x+w-1, y+h-1, '╯', style)
	for dx := 1; dx < w-1; dx++ {
		c.SetCell(x+dx, y, '─', style)
		c.SetCell(x+dx, y+h-1, '─', style)
	}
	for dy := 1; dy < h-1; dy++ {
		c.SetCell(x, y+dy, '│', style)
		c.SetCell(x+w-1, y+dy, '│', style)
	}
}

// SetDot lights one braille dot. Dot coordinates run over a grid twice as
// wide and four times as tall as the cell grid.
func (c *Canvas) SetDot(px, py int, style lipgloss.Style) {
	x, y := px/2, py/4
	if px < 0 || py < 0 || x >= c.w || y >= c.h {
		return
	}
	cl := &c.cells[y*c.w+x]
	cl.dots |= brailleBits[px%2][py%4]
	cl.style = style
}

// DotLine draws a straight line on the braille dot grid.
func (c *Canvas) DotLine(x0, y0, x1, y1 int, style lipgloss.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.SetDot(x0, y0, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas as styled terminal lines.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			switch {
			case cl.r != 0:
				sb.WriteString(cl.style.Render(string(cl.r)))
			case cl.dots != 0:
				sb.WriteString(cl.style.Render(string(rune(0x2800 + int(cl.dots)))))
			default:
				sb.WriteByte(' ')
			}
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
