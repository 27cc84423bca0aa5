package plot

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// FancyBBox is a fixed-size box that follows a center/angle pose stream,
// rotating counter-clockwise from the positive y axis.
type FancyBBox struct {
	base
	style  lipgloss.Style
	width  float64
	height float64
	box    Box
	has    bool
}

// NewFancyBBox binds a pose-following box to ax. The x/y/angle streams
// must have the same length; width and height are fixed in axis units.
func NewFancyBBox(ax *render.Axis, xs, ys, angleDeg []float64, width, height float64) (*FancyBBox, error) {
	if err := sameLen(KindFancyBBox,
		[]string{"x", "y", "angle"},
		[]int{len(xs), len(ys), len(angleDeg)}); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, configErrf(KindFancyBBox, "non-positive size %gx%g", width, height)
	}
	src, err := data.Columns(xs, ys, angleDeg)
	if err != nil {
		return nil, configErrf(KindFancyBBox, "%v", err)
	}
	b, cerr := newBase(KindFancyBBox, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &FancyBBox{base: b, style: render.SeriesStyle(3), width: width, height: height}
	p.base.apply = p.applySample
	p.seedBounds(xs, ys)
	return p, nil
}

func (p *FancyBBox) SetStyle(s lipgloss.Style) { p.style = s }

func (p *FancyBBox) applySample(row []float64) error {
	if len(row) < 3 {
		return configErrf(KindFancyBBox, "sample has %d values, need x, y, angle", len(row))
	}
	p.box = Box{X: row[0], Y: row[1], W: p.width, H: p.height, AngleDeg: row[2]}
	p.has = true
	return nil
}

func (p *FancyBBox) State() State {
	st := State{Kind: KindFancyBBox, Index: p.idx, Exhausted: p.exhausted}
	if p.has {
		st.Box = p.box
	}
	return st
}

func (p *FancyBBox) Render(ctx *render.Context) {
	if p.has {
		drawBox(ctx, p.box, p.style)
	}
}
