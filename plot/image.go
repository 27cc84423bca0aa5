package plot

import (
	"image"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// Image renders a picture inside a world-coordinate extent. Two modes:
// a fixed image following a center pose stream, or a fixed extent
// cycling through a sequence of frames (one per tick).
type Image struct {
	base
	img    image.Image
	frames []image.Image
	frame  int
	extent Box
	has    bool
}

// NewImage binds a fixed image to ax, its extent center following the
// x/y pose streams. The extent sets the drawn size in axis units.
func NewImage(ax *render.Axis, img image.Image, extent render.Bounds, xs, ys []float64) (*Image, error) {
	if img == nil {
		return nil, configErrf(KindImage, "nil image")
	}
	if err := sameLen(KindImage, []string{"x", "y"}, []int{len(xs), len(ys)}); err != nil {
		return nil, err
	}
	src, err := data.Columns(xs, ys)
	if err != nil {
		return nil, configErrf(KindImage, "%v", err)
	}
	b, cerr := newBase(KindImage, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &Image{
		base:   b,
		img:    img,
		extent: boundsBox(extent),
	}
	p.base.apply = p.applyPose
	p.seedBounds(xs, ys)
	return p, nil
}

// NewImageFrames binds a frame sequence to ax at a fixed extent; each
// tick shows the next frame.
func NewImageFrames(ax *render.Axis, frames []image.Image, extent render.Bounds) (*Image, error) {
	if len(frames) == 0 {
		return nil, configErrf(KindImage, "no frames")
	}
	for i, f := range frames {
		if f == nil {
			return nil, configErrf(KindImage, "frame %d is nil", i)
		}
	}
	src := data.FromFunc(len(frames), func(i int) []float64 { return []float64{float64(i)} })
	b, cerr := newBase(KindImage, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	p := &Image{
		base:   b,
		frames: frames,
		extent: boundsBox(extent),
		has:    true,
	}
	p.base.apply = p.applyFrame
	p.include(Point{extent.XMin, extent.YMin})
	p.include(Point{extent.XMax, extent.YMax})
	return p, nil
}

func boundsBox(b render.Bounds) Box {
	return Box{
		X: (b.XMin + b.XMax) / 2,
		Y: (b.YMin + b.YMax) / 2,
		W: b.XMax - b.XMin,
		H: b.YMax - b.YMin,
	}
}

func (p *Image) applyPose(row []float64) error {
	if len(row) < 2 {
		return configErrf(KindImage, "sample has %d values, need x and y", len(row))
	}
	p.extent.X, p.extent.Y = row[0], row[1]
	p.has = true
	p.include(Point{row[0], row[1]})
	return nil
}

func (p *Image) applyFrame(row []float64) error {
	p.frame = int(row[0])
	return nil
}

func (p *Image) current() image.Image {
	if p.frames != nil {
		return p.frames[p.frame]
	}
	return p.img
}

func (p *Image) State() State {
	st := State{Kind: KindImage, Index: p.idx, Exhausted: p.exhausted}
	if p.has {
		st.Box = p.extent
		st.Frame = p.current()
	}
	return st
}

func (p *Image) Render(ctx *render.Context) {
	if !p.has {
		return
	}
	hw, hh := p.extent.W/2, p.extent.H/2
	ctx.Blit(p.current(), render.Bounds{
		XMin: p.extent.X - hw,
		XMax: p.extent.X + hw,
		YMin: p.extent.Y - hh,
		YMax: p.extent.Y + hh,
	})
}
