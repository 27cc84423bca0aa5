package plot

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// Line is a marker that traverses paired x/y data one sample per tick,
// the live analog of a plain line trace.
type Line struct {
	base
	style lipgloss.Style
	cur   Point
	has   bool
}

// NewLine binds a live line to ax over equal-length x/y columns.
func NewLine(ax *render.Axis, xs, ys []float64) (*Line, error) {
	if err := sameLen(KindLine, []string{"x", "y"}, []int{len(xs), len(ys)}); err != nil {
		return nil, err
	}
	src, err := data.Columns(xs, ys)
	if err != nil {
		return nil, configErrf(KindLine, "%v", err)
	}
	p, cerr := NewLineSource(ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p.seedBounds(xs, ys)
	return p, nil
}

// NewLineSource binds a live line to ax over any source producing
// [x, y] samples, such as a channel or a followed file.
func NewLineSource(ax *render.Axis, src data.Source) (*Line, error) {
	b, cerr := newBase(KindLine, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &Line{base: b, style: render.SeriesStyle(0)}
	p.base.apply = p.applySample
	return p, nil
}

// SetStyle overrides the marker style.
func (p *Line) SetStyle(s lipgloss.Style) { p.style = s }

func (p *Line) applySample(row []float64) error {
	if len(row) < 2 {
		return configErrf(KindLine, "sample has %d values, need x and y", len(row))
	}
	p.cur = Point{row[0], row[1]}
	p.has = true
	p.include(p.cur)
	return nil
}

func (p *Line) State() State {
	st := State{Kind: KindLine, Index: p.idx, Exhausted: p.exhausted}
	if p.has {
		st.Points = []Point{p.cur}
	}
	return st
}

func (p *Line) Render(ctx *render.Context) {
	if p.has {
		ctx.Marker(p.cur.X, p.cur.Y, p.style)
	}
}

// VLine is a vertical line sweeping across the axis, tracking one x
// value per tick. Useful as a time cursor over a static trace.
type VLine struct {
	base
	style lipgloss.Style
	curX  float64
	has   bool
}

// NewVLine binds a live vertical line to ax over a 1-D x column.
func NewVLine(ax *render.Axis, xs []float64) (*VLine, error) {
	if len(xs) == 0 {
		return nil, configErrf(KindVLine, "empty x data")
	}
	src, err := data.Columns(xs)
	if err != nil {
		return nil, configErrf(KindVLine, "%v", err)
	}
	b, cerr := newBase(KindVLine, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &VLine{base: b, style: render.TraceStyle}
	p.base.apply = p.applySample
	return p, nil
}

func (p *VLine) SetStyle(s lipgloss.Style) { p.style = s }

func (p *VLine) applySample(row []float64) error {
	if len(row) < 1 {
		return configErrf(KindVLine, "empty sample")
	}
	p.curX = row[0]
	p.has = true
	return nil
}

func (p *VLine) State() State {
	st := State{Kind: KindVLine, Index: p.idx, Exhausted: p.exhausted}
	if p.has {
		st.Points = []Point{{X: p.curX}}
	}
	return st
}

// DataBounds is unknowable for a vline; it spans whatever the axis shows.
func (p *VLine) DataBounds() (render.Bounds, bool) { return render.Bounds{}, false }

func (p *VLine) Render(ctx *render.Context) {
	if p.has {
		ctx.VLine(p.curX, p.style)
	}
}
