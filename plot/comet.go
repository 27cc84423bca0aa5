package plot

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// Comet is a trace that grows one sample per tick: a highlighted head at
// the newest point with a tail through everything already shown.
type Comet struct {
	base
	headStyle lipgloss.Style
	tailStyle lipgloss.Style
	trail     []Point
}

// NewComet binds a comet to ax over equal-length 1-D x/y columns.
func NewComet(ax *render.Axis, xs, ys []float64) (*Comet, error) {
	if err := sameLen(KindComet, []string{"x", "y"}, []int{len(xs), len(ys)}); err != nil {
		return nil, err
	}
	src, err := data.Columns(xs, ys)
	if err != nil {
		return nil, configErrf(KindComet, "%v", err)
	}
	b, cerr := newBase(KindComet, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &Comet{
		base:      b,
		headStyle: render.SeriesStyle(1),
		tailStyle: render.SeriesStyle(0),
	}
	p.base.apply = p.applySample
	p.seedBounds(xs, ys)
	return p, nil
}

// SetStyles overrides the head and tail styles.
func (p *Comet) SetStyles(head, tail lipgloss.Style) {
	p.headStyle, p.tailStyle = head, tail
}

func (p *Comet) applySample(row []float64) error {
	if len(row) < 2 {
		return configErrf(KindComet, "sample has %d values, need x and y", len(row))
	}
	pt := Point{row[0], row[1]}
	p.trail = append(p.trail, pt)
	p.include(pt)
	return nil
}

// Seeking truncates or rebuilds the tail, so override the base behavior.
func (p *Comet) Step(delta int) { p.seekTrail(p.idx - 1 + delta) }
func (p *Comet) JumpToStart()   { p.seekTrail(0) }
func (p *Comet) JumpToEnd() {
	if sk, ok := p.src.(data.Seeker); ok {
		p.seekTrail(sk.Len() - 1)
	}
}

// seekTrail replays the source from the start so the tail matches the
// target index exactly.
func (p *Comet) seekTrail(i int) {
	sk, ok := p.src.(data.Seeker)
	if !ok || sk.Len() == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= sk.Len() {
		i = sk.Len() - 1
	}
	p.trail = p.trail[:0]
	sk.Seek(0)
	for n := 0; n <= i; n++ {
		row, st := p.src.Next()
		if st != data.OK {
			break
		}
		if err := p.applySample(row); err != nil {
			break
		}
	}
	p.idx = i + 1
	p.exhausted = false
}

func (p *Comet) State() State {
	st := State{Kind: KindComet, Index: p.idx, Exhausted: p.exhausted}
	if n := len(p.trail); n > 0 {
		st.Points = []Point{p.trail[n-1]}
		st.Trail = append([]Point(nil), p.trail...)
	}
	return st
}

func (p *Comet) Render(ctx *render.Context) {
	n := len(p.trail)
	if n == 0 {
		return
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, pt := range p.trail {
		xs[i], ys[i] = pt.X, pt.Y
	}
	ctx.Polyline(xs, ys, p.tailStyle)
	head := p.trail[n-1]
	ctx.Marker(head.X, head.Y, p.headStyle)
}
