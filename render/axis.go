package render

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Headroom added around data bounds so traces don't touch the frame.
const boundsPad = 0.05

// Bounds is a world-coordinate rectangle.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

// Union returns the smallest bounds covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		XMin: math.Min(b.XMin, o.XMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// pad extends bounds by a fraction of their span on every side.
func (b Bounds) pad(f float64) Bounds {
	dx := (b.XMax - b.XMin) * f
	dy := (b.YMax - b.YMin) * f
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	return Bounds{b.XMin - dx, b.XMax + dx, b.YMin - dy, b.YMax + dy}
}

// series is one static trace plotted behind the live artists.
type series struct {
	xs, ys []float64
	style  lipgloss.Style
}

// Axis is one drawing surface in a tab's subplot grid. It owns the world
// coordinate bounds, static traces, and frame chrome; live plots draw on
// it through the Context handed out per render pass.
type Axis struct {
	title string

	// Occupied fraction of the tab area, from the subplot grid slot.
	fx0, fy0, fx1, fy1 float64

	bounds    Bounds
	hasBounds bool
	fixed     bool

	traces []series
}

// AxisOption configures an axis at creation.
type AxisOption func(*Axis)

// WithTitle sets the axis title shown in the frame.
func WithTitle(t string) AxisOption {
	return func(a *Axis) { a.title = t }
}

// WithBounds pins the world bounds, disabling autoscale.
func WithBounds(b Bounds) AxisOption {
	return func(a *Axis) {
		a.bounds = b
		a.hasBounds = true
		a.fixed = true
	}
}

// NewAxis creates an axis occupying slot index (1-based, row-major) of a
// rows-by-cols subplot grid, matching the usual subplot convention.
func NewAxis(rows, cols, index int, opts ...AxisOption) (*Axis, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("render: invalid grid %dx%d", rows, cols)
	}
	if index < 1 || index > rows*cols {
		return nil, fmt.Errorf("render: subplot index %d out of range for %dx%d grid", index, rows, cols)
	}
	row := (index - 1) / cols
	col := (index - 1) % cols
	a := &Axis{
		fx0: float64(col) / float64(cols),
		fx1: float64(col+1) / float64(cols),
		fy0: float64(row) / float64(rows),
		fy1: float64(row+1) / float64(rows),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Axis) Title() string { return a.title }

// Overlaps reports whether two axes claim intersecting regions of the
// tab area.
func (a *Axis) Overlaps(o *Axis) bool {
	return a.fx0 < o.fx1 && o.fx0 < a.fx1 && a.fy0 < o.fy1 && o.fy0 < a.fy1
}

// Region maps the axis grid slot onto a w-by-h cell area.
func (a *Axis) Region(w, h int) (x, y, rw, rh int) {
	x = int(a.fx0 * float64(w))
	y = int(a.fy0 * float64(h))
	rw = int(a.fx1*float64(w)) - x
	rh = int(a.fy1*float64(h)) - y
	return x, y, rw, rh
}

// Include grows the axis bounds to cover b. Ignored when bounds were
// pinned with WithBounds.
func (a *Axis) Include(b Bounds) {
	if a.fixed {
		return
	}
	if !a.hasBounds {
		a.bounds = b
		a.hasBounds = true
		return
	}
	a.bounds = a.bounds.Union(b)
}

// Bounds returns the effective (padded) world bounds.
func (a *Axis) Bounds() Bounds {
	if !a.hasBounds {
		return Bounds{0, 1, 0, 1}.pad(boundsPad)
	}
	if a.fixed {
		return a.bounds
	}
	return a.bounds.pad(boundsPad)
}

// Plot adds a static trace drawn behind the live artists.
func (a *Axis) Plot(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("render: static trace has %d x values and %d y values", len(xs), len(ys))
	}
	a.traces = append(a.traces, series{xs: xs, ys: ys, style: SeriesStyle(len(a.traces))})
	if len(xs) > 0 {
		a.Include(seriesBounds(xs, ys))
	}
	return nil
}

func seriesBounds(xs, ys []float64) Bounds {
	b := Bounds{xs[0], xs[0], ys[0], ys[0]}
	for i := range xs {
		b = b.Union(Bounds{xs[i], xs[i], ys[i], ys[i]})
	}
	return b
}

// Label margin inside the frame, wide enough for "-12.5k".
const axisLabelW = 7

// Render draws the frame, tick labels, and static traces into the given
// cell region and returns the Context live plots draw through.
func (a *Axis) Render(c *Canvas, x, y, w, h int) *Context {
	c.Box(x, y, w, h, DimStyle)
	if a.title != "" && w >= 5 {
		t := a.title
		if len(t) > w-4 {
			t = t[:w-4]
		}
		c.WriteString(x+2, y, t, TitleStyle)
	}

	b := a.Bounds()
	inX := x + 1 + axisLabelW
	inY := y + 1
	inW := w - 2 - axisLabelW
	inH := h - 3
	if inW < 1 {
		inW = 1
	}
	if inH < 1 {
		inH = 1
	}

	// Y tick labels at top and bottom of the plot area.
	c.WriteString(x+1, inY, padLabel(tickLabel(b.YMax)), DimStyle)
	c.WriteString(x+1, inY+inH-1, padLabel(tickLabel(b.YMin)), DimStyle)

	// X tick labels along the bottom row inside the frame.
	lo, hi := tickLabel(b.XMin), tickLabel(b.XMax)
	c.WriteString(inX, y+h-2, lo, DimStyle)
	if pos := inX + inW - len(hi); pos > inX+len(lo) {
		c.WriteString(pos, y+h-2, hi, DimStyle)
	}

	ctx := &Context{Canvas: c, X: inX, Y: inY, W: inW, H: inH, B: b}
	for _, s := range a.traces {
		ctx.Polyline(s.xs, s.ys, s.style)
	}
	return ctx
}

// tickLabel formats a world coordinate for the frame margin.
func tickLabel(v float64) string {
	if math.Abs(v) >= 10000 {
		return humanize.SIWithDigits(v, 1, "")
	}
	return humanize.FtoaWithDigits(v, 1)
}

func padLabel(s string) string {
	for len(s) < axisLabelW-1 {
		s = " " + s
	}
	if len(s) > axisLabelW-1 {
		s = s[:axisLabelW-1]
	}
	return s
}

// NiceCeil rounds v up to a 1-2-5 series value, giving charts a stable
// ceiling with headroom.
func NiceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

// Context couples a canvas region with an axis world transform for one
// render pass.
type Context struct {
	Canvas     *Canvas
	X, Y, W, H int
	B          Bounds
}

// ToDot maps world coordinates to braille dot coordinates.
func (ctx *Context) ToDot(wx, wy float64) (int, int) {
	spanX := ctx.B.XMax - ctx.B.XMin
	spanY := ctx.B.YMax - ctx.B.YMin
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	px := ctx.X*2 + int((wx-ctx.B.XMin)/spanX*float64(ctx.W*2-1)+0.5)
	py := ctx.Y*4 + int((1-(wy-ctx.B.YMin)/spanY)*float64(ctx.H*4-1)+0.5)
	return px, py
}

// ToCell maps world coordinates to cell coordinates.
func (ctx *Context) ToCell(wx, wy float64) (int, int) {
	px, py := ctx.ToDot(wx, wy)
	return px / 2, py / 4
}

// Contains reports whether the world point falls inside the plot region.
func (ctx *Context) Contains(wx, wy float64) bool {
	cx, cy := ctx.ToCell(wx, wy)
	return cx >= ctx.X && cx < ctx.X+ctx.W && cy >= ctx.Y && cy < ctx.Y+ctx.H
}

// Line draws a world-coordinate segment on the braille layer.
func (ctx *Context) Line(x0, y0, x1, y1 float64, style lipgloss.Style) {
	px0, py0 := ctx.ToDot(x0, y0)
	px1, py1 := ctx.ToDot(x1, y1)
	ctx.Canvas.DotLine(px0, py0, px1, py1, style)
}

// Polyline draws connected world-coordinate segments.
func (ctx *Context) Polyline(xs, ys []float64, style lipgloss.Style) {
	if len(xs) == 1 {
		px, py := ctx.ToDot(xs[0], ys[0])
		ctx.Canvas.SetDot(px, py, style)
		return
	}
	for i := 1; i < len(xs); i++ {
		ctx.Line(xs[i-1], ys[i-1], xs[i], ys[i], style)
	}
}

// Marker draws a one-cell marker at a world coordinate.
func (ctx *Context) Marker(wx, wy float64, style lipgloss.Style) {
	cx, cy := ctx.ToCell(wx, wy)
	if ctx.Contains(wx, wy) {
		ctx.Canvas.SetCell(cx, cy, '●', style)
	}
}

// VLine draws a vertical line spanning the plot area at world x.
func (ctx *Context) VLine(wx float64, style lipgloss.Style) {
	cx, _ := ctx.ToCell(wx, ctx.B.YMin)
	if cx < ctx.X || cx >= ctx.X+ctx.W {
		return
	}
	for cy := ctx.Y; cy < ctx.Y+ctx.H; cy++ {
		ctx.Canvas.SetCell(cx, cy, '│', style)
	}
}

// VBar fills a vertical bar from world y0 up to y1 at world x using block
// runes, one cell column wide.
func (ctx *Context) VBar(wx, y0, y1 float64, style lipgloss.Style) {
	cx, _ := ctx.ToCell(wx, 0)
	if cx < ctx.X || cx >= ctx.X+ctx.W {
		return
	}
	_, cy0 := ctx.ToCell(wx, y0)
	_, cy1 := ctx.ToCell(wx, y1)
	if cy1 > cy0 {
		cy0, cy1 = cy1, cy0
	}
	for cy := cy1; cy <= cy0; cy++ {
		if cy >= ctx.Y && cy < ctx.Y+ctx.H {
			ctx.Canvas.SetCell(cx, cy, '█', style)
		}
	}
}
