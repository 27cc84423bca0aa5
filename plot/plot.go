package plot

import (
	"fmt"
	"image"
	"math"

	"github.com/google/uuid"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// Status is the outcome of one Advance call.
type Status int

const (
	// Updated means the plot committed (or kept) drawable state and
	// remains live.
	Updated Status = iota
	// Exhausted means the data source has no more samples. The plot's
	// drawable state is left untouched.
	Exhausted
)

// Kind tags the geometry variant of a live plot.
type Kind int

const (
	KindLine Kind = iota
	KindVLine
	KindComet
	KindRectangle
	KindFancyBBox
	KindImage
	KindVehicle
	KindStackBar
)

var kindNames = []string{"line", "vline", "comet", "rectangle", "fancybbox", "image", "vehicle", "stackbar"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Point is a world-coordinate position.
type Point struct {
	X, Y float64
}

// Box is a center-anchored rectangle with an optional rotation, measured
// counter-clockwise in degrees.
type Box struct {
	X, Y, W, H, AngleDeg float64
}

// Corners returns the four world-coordinate corners of the box.
func (b Box) Corners() [4]Point {
	hw, hh := b.W/2, b.H/2
	corners := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	sin, cos := math.Sincos(b.AngleDeg * math.Pi / 180)
	for i, c := range corners {
		corners[i] = Point{
			X: b.X + c.X*cos - c.Y*sin,
			Y: b.Y + c.X*sin + c.Y*cos,
		}
	}
	return corners
}

// State is the drawable state of a live plot, tagged by Kind. Only the
// fields relevant to the variant are populated.
type State struct {
	Kind      Kind
	Index     int  // samples consumed so far
	Exhausted bool // data source ran out

	Points []Point // current markers (Line), comet head, vehicle pose
	Trail  []Point // comet tail
	Box    Box     // rectangle / bbox / image extent
	Bars   []float64
	Frame  image.Image
}

// LivePlot is the capability contract every variant satisfies. Variants
// differ only in how a pulled sample becomes drawable state; the refresh
// contract is identical across all of them.
type LivePlot interface {
	// ID uniquely identifies the plot instance in logs and errors.
	ID() string
	Kind() Kind
	// Axis returns the axis the plot was bound to at construction.
	Axis() *render.Axis
	// Advance pulls the next sample and commits new drawable state.
	// On source exhaustion it returns Exhausted and mutates nothing.
	// A non-nil error means this plot can no longer advance safely;
	// the driver deactivates it and keeps the others running.
	Advance() (Status, error)
	// State returns a snapshot of the current drawable state.
	State() State
	// DataBounds reports the world extent of the data seen so far, used
	// for axis autoscale. ok is false before the first sample when the
	// full extent is unknown.
	DataBounds() (b render.Bounds, ok bool)
	// Render rasterizes the current drawable state onto its axis region.
	Render(ctx *render.Context)
}

// Stepper is implemented by plots whose source supports random access.
// The window uses it for interactive scrolling and jumps.
type Stepper interface {
	Step(delta int)
	JumpToStart()
	JumpToEnd()
}

// base carries the plumbing shared by every variant: identity, binding,
// the data source cursor, exhaustion, and running data bounds.
type base struct {
	id        string
	kind      Kind
	ax        *render.Axis
	src       data.Source
	apply     func(row []float64) error
	idx       int
	exhausted bool

	bounds    render.Bounds
	hasBounds bool
}

func newBase(k Kind, ax *render.Axis, src data.Source) (base, *ConfigError) {
	if ax == nil {
		return base{}, configErrf(k, "no axis bound")
	}
	return base{id: uuid.NewString(), kind: k, ax: ax, src: src}, nil
}

func (b *base) ID() string         { return b.id }
func (b *base) Kind() Kind         { return b.kind }
func (b *base) Axis() *render.Axis { return b.ax }
func (b *base) Index() int         { return b.idx }
func (b *base) IsExhausted() bool  { return b.exhausted }

func (b *base) DataBounds() (render.Bounds, bool) {
	return b.bounds, b.hasBounds
}

func (b *base) include(p Point) {
	pb := render.Bounds{XMin: p.X, XMax: p.X, YMin: p.Y, YMax: p.Y}
	if !b.hasBounds {
		b.bounds = pb
		b.hasBounds = true
		return
	}
	b.bounds = b.bounds.Union(pb)
}

// seedBounds pre-loads the full data extent so the axis scales once,
// up front, instead of chasing the animation.
func (b *base) seedBounds(xs, ys []float64) {
	for i := range xs {
		b.include(Point{xs[i], ys[i]})
	}
}

// Advance implements the shared half of the capability contract.
func (b *base) Advance() (Status, error) {
	if b.exhausted {
		return Exhausted, nil
	}
	row, st := b.src.Next()
	switch st {
	case data.Done:
		b.exhausted = true
		return Exhausted, nil
	case data.Pending:
		// Still live, nothing new this tick.
		return Updated, nil
	}
	if err := b.apply(row); err != nil {
		return Updated, err
	}
	b.idx++
	return Updated, nil
}

// seek repositions a seekable source so the plot shows sample i.
// Plots over non-seekable sources ignore seeks.
func (b *base) seek(i int) {
	sk, ok := b.src.(data.Seeker)
	if !ok || sk.Len() == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= sk.Len() {
		i = sk.Len() - 1
	}
	sk.Seek(i)
	row, st := b.src.Next()
	if st != data.OK {
		return
	}
	if err := b.apply(row); err != nil {
		return
	}
	b.idx = i + 1
	b.exhausted = false
}

// Step scrolls the plot by delta samples.
func (b *base) Step(delta int) { b.seek(b.idx - 1 + delta) }

// JumpToStart rewinds to the first sample.
func (b *base) JumpToStart() { b.seek(0) }

// JumpToEnd fast-forwards to the last sample.
func (b *base) JumpToEnd() {
	if sk, ok := b.src.(data.Seeker); ok {
		b.seek(sk.Len() - 1)
	}
}
