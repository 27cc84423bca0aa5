package window

import (
	"errors"
	"strings"
	"testing"

	"github.com/dynamicdesignlab/liveterm/plot"
	"github.com/dynamicdesignlab/liveterm/render"
)

func newLineOn(t *testing.T, ax *render.Axis) *plot.Line {
	t.Helper()
	p, err := plot.NewLine(ax, []float64{0, 1}, []float64{0, 1})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	return p
}

func TestRegisterTabRejectsDuplicateName(t *testing.T) {
	w := New("test")
	if err := w.RegisterTab(NewTab("main")); err != nil {
		t.Fatalf("first RegisterTab: %v", err)
	}
	err := w.RegisterTab(NewTab("main"))
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
}

func TestRegisterTabRejectsNil(t *testing.T) {
	w := New("test")
	var regErr *RegistrationError
	if !errors.As(w.RegisterTab(nil), &regErr) {
		t.Fatal("expected RegistrationError for nil tab")
	}
}

func TestRegisterPlotIsExclusivePerTab(t *testing.T) {
	tab := NewTab("main")
	ax, err := tab.AddAxis(1, 1, 1)
	if err != nil {
		t.Fatalf("AddAxis: %v", err)
	}
	p := newLineOn(t, ax)

	if err := tab.RegisterPlot(p); err != nil {
		t.Fatalf("first RegisterPlot: %v", err)
	}
	err = tab.RegisterPlot(p)
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError on re-registration, got %v", err)
	}
	if len(tab.Plots()) != 1 {
		t.Fatalf("tab holds %d plots, want 1", len(tab.Plots()))
	}
}

func TestRegisterPlotRejectsSecondTab(t *testing.T) {
	first := NewTab("first")
	ax, err := first.AddAxis(1, 1, 1)
	if err != nil {
		t.Fatalf("AddAxis: %v", err)
	}
	p := newLineOn(t, ax)
	if err := first.RegisterPlot(p); err != nil {
		t.Fatalf("RegisterPlot: %v", err)
	}

	second := NewTab("second")
	if _, err := second.AddAxis(1, 1, 1); err != nil {
		t.Fatalf("AddAxis: %v", err)
	}
	err = second.RegisterPlot(p)
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
	if !strings.Contains(regErr.Reason, "first") {
		t.Fatalf("reason %q does not name the owning tab", regErr.Reason)
	}
}

func TestUnregisterPlotReleasesOwnership(t *testing.T) {
	first := NewTab("first")
	ax, err := first.AddAxis(1, 1, 1)
	if err != nil {
		t.Fatalf("AddAxis: %v", err)
	}
	p := newLineOn(t, ax)
	if err := first.RegisterPlot(p); err != nil {
		t.Fatalf("RegisterPlot: %v", err)
	}
	if err := first.UnregisterPlot(p); err != nil {
		t.Fatalf("UnregisterPlot: %v", err)
	}
	if len(first.Plots()) != 0 {
		t.Fatalf("tab still holds %d plots", len(first.Plots()))
	}

	// Ownership is released, so the same instance registers again.
	if err := first.RegisterPlot(p); err != nil {
		t.Fatalf("re-register after unregister: %v", err)
	}

	// A tab that does not own the plot cannot unregister it.
	other := NewTab("unrelated")
	var regErr *RegistrationError
	if !errors.As(other.UnregisterPlot(p), &regErr) {
		t.Fatal("foreign unregister must fail with RegistrationError")
	}
}

func TestRegisterPlotRequiresOwnedAxis(t *testing.T) {
	other := NewTab("other")
	ax, err := other.AddAxis(1, 1, 1)
	if err != nil {
		t.Fatalf("AddAxis: %v", err)
	}
	p := newLineOn(t, ax)

	tab := NewTab("main")
	err = tab.RegisterPlot(p)
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
}

func TestAddAxisRejectsOverlap(t *testing.T) {
	tab := NewTab("main")
	if _, err := tab.AddAxis(2, 1, 1); err != nil {
		t.Fatalf("AddAxis: %v", err)
	}
	_, err := tab.AddAxis(2, 1, 1)
	var layErr *LayoutError
	if !errors.As(err, &layErr) {
		t.Fatalf("expected LayoutError, got %v", err)
	}

	// The other half of the grid is still free.
	if _, err := tab.AddAxis(2, 1, 2); err != nil {
		t.Fatalf("AddAxis on free slot: %v", err)
	}
}

func TestAddAxisRejectsBadSlot(t *testing.T) {
	tab := NewTab("main")
	_, err := tab.AddAxis(2, 2, 5)
	var layErr *LayoutError
	if !errors.As(err, &layErr) {
		t.Fatalf("expected LayoutError, got %v", err)
	}
}

func TestTabRenderFitsRequestedArea(t *testing.T) {
	tab := NewTab("main")
	ax, err := tab.AddAxis(1, 1, 1, render.WithTitle("wave"))
	if err != nil {
		t.Fatalf("AddAxis: %v", err)
	}
	p := newLineOn(t, ax)
	if err := tab.RegisterPlot(p); err != nil {
		t.Fatalf("RegisterPlot: %v", err)
	}
	p.Advance()

	out := tab.Render(40, 12)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("rendered %d lines, want 12", len(lines))
	}
	if !strings.Contains(out, "wave") {
		t.Fatal("axis title missing from render")
	}
}
