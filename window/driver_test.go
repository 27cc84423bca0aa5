package window

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/dynamicdesignlab/liveterm/plot"
	"github.com/dynamicdesignlab/liveterm/render"
)

// fakePlot is a scriptable LivePlot: it yields Updated for n advances,
// then Exhausted, and can be told to fail or panic on a given advance.
type fakePlot struct {
	id       string
	n        int
	advances int
	failAt   int // 1-based advance that returns an error; 0 = never
	panicAt  int // 1-based advance that panics; 0 = never
}

func (f *fakePlot) ID() string                        { return f.id }
func (f *fakePlot) Kind() plot.Kind                   { return plot.KindLine }
func (f *fakePlot) Axis() *render.Axis                { return nil }
func (f *fakePlot) State() plot.State                 { return plot.State{Index: f.advances} }
func (f *fakePlot) DataBounds() (render.Bounds, bool) { return render.Bounds{}, false }
func (f *fakePlot) Render(*render.Context)            {}

func (f *fakePlot) Advance() (plot.Status, error) {
	f.advances++
	if f.panicAt > 0 && f.advances == f.panicAt {
		panic("scripted panic")
	}
	if f.failAt > 0 && f.advances == f.failAt {
		return plot.Updated, fmt.Errorf("scripted failure")
	}
	if f.advances > f.n {
		return plot.Exhausted, nil
	}
	return plot.Updated, nil
}

func driverTab(t *testing.T, name string, plots ...plot.LivePlot) *Tab {
	t.Helper()
	tab := NewTab(name)
	tab.plots = append(tab.plots, plots...)
	return tab
}

func TestTickCoalescesToOneRedraw(t *testing.T) {
	plots := []plot.LivePlot{
		&fakePlot{id: "a", n: 10},
		&fakePlot{id: "b", n: 10},
		&fakePlot{id: "c", n: 10},
		&fakePlot{id: "d", n: 10},
	}
	tab := driverTab(t, "main", plots...)

	redraws := 0
	d := NewDriver(func() []*Tab { return []*Tab{tab} }, func() { redraws++ }, nil)

	d.Tick()
	if redraws != 1 {
		t.Fatalf("one tick over 4 plots triggered %d redraws, want 1", redraws)
	}
	d.Tick()
	d.Tick()
	if redraws != 3 {
		t.Fatalf("3 ticks triggered %d redraws, want 3", redraws)
	}
	if d.Ticks() != 3 {
		t.Fatalf("Ticks() = %d, want 3", d.Ticks())
	}
}

func TestFailingPlotIsDeactivatedAlone(t *testing.T) {
	bad := &fakePlot{id: "bad", n: 10, failAt: 2}
	good := &fakePlot{id: "good", n: 10}
	tab := driverTab(t, "main", bad, good)

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	d := NewDriver(func() []*Tab { return []*Tab{tab} }, nil, logger)

	for i := 0; i < 5; i++ {
		d.Tick()
	}

	if d.Active("bad") {
		t.Fatal("failing plot must be deactivated")
	}
	if !d.Active("good") {
		t.Fatal("healthy plot must keep running")
	}
	if bad.advances != 2 {
		t.Fatalf("failing plot advanced %d times, want 2", bad.advances)
	}
	if good.advances != 5 {
		t.Fatalf("healthy plot advanced %d times, want 5", good.advances)
	}
	if !strings.Contains(buf.String(), "deactivating") || !strings.Contains(buf.String(), "bad") {
		t.Fatalf("failure not reported: %q", buf.String())
	}
}

func TestPanickingPlotIsContained(t *testing.T) {
	tab := driverTab(t, "main",
		&fakePlot{id: "boom", n: 10, panicAt: 1},
		&fakePlot{id: "ok", n: 10})

	d := NewDriver(func() []*Tab { return []*Tab{tab} }, nil, nil)
	d.Tick() // must not propagate the panic

	if d.Active("boom") {
		t.Fatal("panicking plot must be deactivated")
	}
	if !d.Active("ok") {
		t.Fatal("other plot must survive the panic")
	}
}

func TestExhaustedPlotsDeactivateIndividually(t *testing.T) {
	short := &fakePlot{id: "short", n: 2}
	long := &fakePlot{id: "long", n: 5}
	tab := driverTab(t, "main", short, long)

	d := NewDriver(func() []*Tab { return []*Tab{tab} }, nil, nil)

	for i := 0; i < 3; i++ {
		d.Tick()
	}
	if d.Active("short") {
		t.Fatal("short plot must be deactivated after its data ends")
	}
	if !d.Active("long") || d.AllExhausted() {
		t.Fatal("long plot must still be running")
	}

	for i := 0; i < 3; i++ {
		d.Tick()
	}
	if !d.AllExhausted() {
		t.Fatal("all plots exhausted, AllExhausted must report it")
	}
	if d.ActiveCount() != 0 {
		t.Fatalf("ActiveCount = %d, want 0", d.ActiveCount())
	}

	// Further ticks stay safe no-ops for the plots.
	before := long.advances
	d.Tick()
	if long.advances != before {
		t.Fatal("deactivated plot must not be advanced again")
	}
}

func TestExhaustionSpansTabs(t *testing.T) {
	t1 := driverTab(t, "first", &fakePlot{id: "p1", n: 5})
	t2 := driverTab(t, "second", &fakePlot{id: "p2", n: 5})

	d := NewDriver(func() []*Tab { return []*Tab{t1, t2} }, nil, nil)
	for i := 0; i < 5; i++ {
		d.Tick()
		if d.AllExhausted() {
			t.Fatalf("exhausted after only %d ticks", i+1)
		}
	}
	d.Tick()
	if !d.AllExhausted() {
		t.Fatal("both 5-sample plots must be exhausted after 6 ticks")
	}
}

func TestReactivateResumesTicking(t *testing.T) {
	p := &fakePlot{id: "p", n: 1}
	tab := driverTab(t, "main", p)
	d := NewDriver(func() []*Tab { return []*Tab{tab} }, nil, nil)

	d.Tick()
	d.Tick()
	if d.Active("p") {
		t.Fatal("plot must be deactivated once exhausted")
	}

	p.advances = 0 // pretend a seek rewound the source
	d.Reactivate("p")
	d.Tick()
	if p.advances != 1 {
		t.Fatalf("reactivated plot advanced %d times, want 1", p.advances)
	}
}

func TestAllExhaustedFalseWithoutPlots(t *testing.T) {
	d := NewDriver(func() []*Tab { return []*Tab{NewTab("empty")} }, nil, nil)
	if d.AllExhausted() {
		t.Fatal("a window with no plots is not exhausted")
	}
}
