package plot

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// StackBar draws one stacked bar per tick at x = sample index, each
// layer colored from the series palette. Layers stack bottom-up in the
// order the columns were given.
type StackBar struct {
	base
	styles []lipgloss.Style
	bars   [][]float64 // bars[i] = layer heights at tick i
	cur    []float64
}

// NewStackBar binds a stacked bar chart to ax over equal-length layer
// columns; layers[l][i] is the height of layer l at tick i.
func NewStackBar(ax *render.Axis, layers ...[]float64) (*StackBar, error) {
	if len(layers) == 0 {
		return nil, configErrf(KindStackBar, "no layers")
	}
	names := make([]string, len(layers))
	lens := make([]int, len(layers))
	for i, l := range layers {
		names[i] = "layer"
		lens[i] = len(l)
	}
	if err := sameLen(KindStackBar, names, lens); err != nil {
		return nil, err
	}
	src, err := data.Columns(layers...)
	if err != nil {
		return nil, configErrf(KindStackBar, "%v", err)
	}
	b, cerr := newBase(KindStackBar, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &StackBar{base: b}
	for i := range layers {
		p.styles = append(p.styles, render.SeriesStyle(i))
	}
	p.base.apply = p.applySample

	// Full extent is known up front: x spans the tick count, y the
	// tallest stack.
	var maxY float64
	n := len(layers[0])
	for i := 0; i < n; i++ {
		var sum float64
		for _, l := range layers {
			sum += l[i]
		}
		if sum > maxY {
			maxY = sum
		}
	}
	p.include(Point{0, 0})
	p.include(Point{float64(n), render.NiceCeil(maxY)})
	return p, nil
}

func (p *StackBar) applySample(row []float64) error {
	p.cur = append([]float64(nil), row...)
	p.bars = append(p.bars, p.cur)
	return nil
}

// Seeking rebuilds the bar history, so override the base behavior.
func (p *StackBar) Step(delta int) { p.seekBars(p.idx - 1 + delta) }
func (p *StackBar) JumpToStart()   { p.seekBars(0) }
func (p *StackBar) JumpToEnd() {
	if sk, ok := p.src.(data.Seeker); ok {
		p.seekBars(sk.Len() - 1)
	}
}

func (p *StackBar) seekBars(i int) {
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
	p.bars = p.bars[:0]
	sk.Seek(0)
	for n := 0; n <= i; n++ {
		row, st := p.src.Next()
		if st != data.OK {
			break
		}
		_ = p.applySample(row)
	}
	p.idx = i + 1
	p.exhausted = false
}

func (p *StackBar) State() State {
	st := State{Kind: KindStackBar, Index: p.idx, Exhausted: p.exhausted}
	st.Bars = append([]float64(nil), p.cur...)
	return st
}

func (p *StackBar) Render(ctx *render.Context) {
	for i, layers := range p.bars {
		x := float64(i) + 0.5
		var y float64
		for l, h := range layers {
			ctx.VBar(x, y, y+h, p.styles[l%len(p.styles)])
			y += h
		}
	}
}
