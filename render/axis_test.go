package render

import "testing"

func TestNewAxisRejectsBadGrid(t *testing.T) {
	if _, err := NewAxis(0, 1, 1); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if _, err := NewAxis(2, 2, 0); err == nil {
		t.Fatal("expected error for index below range")
	}
	if _, err := NewAxis(2, 2, 5); err == nil {
		t.Fatal("expected error for index beyond grid")
	}
}

func TestAxisRegionSplitsGrid(t *testing.T) {
	top, err := NewAxis(2, 1, 1)
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	bottom, err := NewAxis(2, 1, 2)
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}

	x, y, w, h := top.Region(80, 24)
	if x != 0 || y != 0 || w != 80 || h != 12 {
		t.Fatalf("top region (%d,%d,%d,%d)", x, y, w, h)
	}
	x, y, w, h = bottom.Region(80, 24)
	if x != 0 || y != 12 || w != 80 || h != 12 {
		t.Fatalf("bottom region (%d,%d,%d,%d)", x, y, w, h)
	}
}

func TestAxisOverlaps(t *testing.T) {
	left, _ := NewAxis(1, 2, 1)
	right, _ := NewAxis(1, 2, 2)
	full, _ := NewAxis(1, 1, 1)

	if left.Overlaps(right) {
		t.Fatal("disjoint halves must not overlap")
	}
	if !left.Overlaps(full) || !right.Overlaps(full) {
		t.Fatal("full-area axis must overlap both halves")
	}

	// Different grids with intersecting regions still collide.
	quad, _ := NewAxis(2, 2, 1)
	if !left.Overlaps(quad) {
		t.Fatal("left half must overlap the top-left quadrant")
	}
}

func TestAxisIncludeGrowsBounds(t *testing.T) {
	ax, _ := NewAxis(1, 1, 1)
	ax.Include(Bounds{0, 1, 0, 1})
	ax.Include(Bounds{-5, 0.5, 0, 10})

	b := ax.Bounds()
	if b.XMin > -5 || b.XMax < 1 || b.YMin > 0 || b.YMax < 10 {
		t.Fatalf("bounds %+v do not cover the union", b)
	}
	// Padding keeps traces off the frame.
	if b.XMin == -5 || b.YMax == 10 {
		t.Fatalf("bounds %+v not padded", b)
	}
}

func TestWithBoundsPinsAutoscale(t *testing.T) {
	ax, _ := NewAxis(1, 1, 1, WithBounds(Bounds{0, 10, 0, 10}))
	ax.Include(Bounds{-100, 100, -100, 100})

	b := ax.Bounds()
	if b != (Bounds{0, 10, 0, 10}) {
		t.Fatalf("pinned bounds %+v changed by Include", b)
	}
}

func TestAxisPlotRejectsMismatchedTrace(t *testing.T) {
	ax, _ := NewAxis(1, 1, 1)
	if err := ax.Plot([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched trace columns")
	}
}

func TestNiceCeil(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 1},
		{0.7, 1},
		{1, 1},
		{1.2, 2},
		{3, 5},
		{7, 10},
		{42, 50},
		{900, 1000},
	}
	for _, c := range cases {
		if got := NiceCeil(c.in); got != c.want {
			t.Errorf("NiceCeil(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestAxisRenderSurvivesNarrowRegion(t *testing.T) {
	ax, err := NewAxis(1, 1, 1, WithTitle("a long title"))
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	for _, w := range []int{1, 2, 3, 4, 5} {
		c := NewCanvas(w, 8)
		ax.Render(c, 0, 0, w, 8)
	}
}

func TestContextMapsCorners(t *testing.T) {
	c := NewCanvas(20, 10)
	ctx := &Context{Canvas: c, X: 2, Y: 1, W: 16, H: 8, B: Bounds{0, 1, 0, 1}}

	cx, cy := ctx.ToCell(0, 1)
	if cx != ctx.X || cy != ctx.Y {
		t.Fatalf("top-left world corner maps to (%d,%d), want (%d,%d)", cx, cy, ctx.X, ctx.Y)
	}
	cx, cy = ctx.ToCell(1, 0)
	if cx != ctx.X+ctx.W-1 || cy != ctx.Y+ctx.H-1 {
		t.Fatalf("bottom-right world corner maps to (%d,%d)", cx, cy)
	}

	if !ctx.Contains(0.5, 0.5) {
		t.Fatal("center must be inside the region")
	}
	if ctx.Contains(2, 0.5) {
		t.Fatal("point beyond XMax must be outside")
	}
}
