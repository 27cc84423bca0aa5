package plot

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// Rectangle is an axis-aligned box whose center and size advance per
// tick from paired x/y/width/height streams.
type Rectangle struct {
	base
	style lipgloss.Style
	box   Box
	has   bool
}

// NewRectangle binds a rectangle to ax. All four streams must have the
// same length.
func NewRectangle(ax *render.Axis, xs, ys, widths, heights []float64) (*Rectangle, error) {
	if err := sameLen(KindRectangle,
		[]string{"x", "y", "width", "height"},
		[]int{len(xs), len(ys), len(widths), len(heights)}); err != nil {
		return nil, err
	}
	src, err := data.Columns(xs, ys, widths, heights)
	if err != nil {
		return nil, configErrf(KindRectangle, "%v", err)
	}
	b, cerr := newBase(KindRectangle, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &Rectangle{base: b, style: render.SeriesStyle(2)}
	p.base.apply = p.applySample
	for i := range xs {
		p.include(Point{xs[i] - widths[i]/2, ys[i] - heights[i]/2})
		p.include(Point{xs[i] + widths[i]/2, ys[i] + heights[i]/2})
	}
	return p, nil
}

func (p *Rectangle) SetStyle(s lipgloss.Style) { p.style = s }

func (p *Rectangle) applySample(row []float64) error {
	if len(row) < 4 {
		return configErrf(KindRectangle, "sample has %d values, need x, y, width, height", len(row))
	}
	p.box = Box{X: row[0], Y: row[1], W: row[2], H: row[3]}
	p.has = true
	return nil
}

func (p *Rectangle) State() State {
	st := State{Kind: KindRectangle, Index: p.idx, Exhausted: p.exhausted}
	if p.has {
		st.Box = p.box
	}
	return st
}

func (p *Rectangle) Render(ctx *render.Context) {
	if p.has {
		drawBox(ctx, p.box, p.style)
	}
}

func drawBox(ctx *render.Context, b Box, style lipgloss.Style) {
	c := b.Corners()
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		ctx.Line(c[i].X, c[i].Y, c[j].X, c[j].Y, style)
	}
}
