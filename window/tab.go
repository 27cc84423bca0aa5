package window

import (
	"sync"

	"github.com/dynamicdesignlab/liveterm/plot"
	"github.com/dynamicdesignlab/liveterm/render"
)

// plotOwners tracks which tab every registered plot belongs to, across
// all tabs in the process. Registration is exclusive: a plot bound to
// one tab can never be registered to another.
var (
	ownersMu   sync.Mutex
	plotOwners = map[string]*Tab{}
)

// Tab is a named page of axes and the live plots registered on them.
// Plots must be registered before the window loop starts; unregistered
// plots are simply never refreshed.
type Tab struct {
	name  string
	axes  []*render.Axis
	plots []plot.LivePlot
}

// NewTab creates an empty tab.
func NewTab(name string) *Tab {
	return &Tab{name: name}
}

func (t *Tab) Name() string { return t.name }

// Plots returns the registered plots in registration order.
func (t *Tab) Plots() []plot.LivePlot { return t.plots }

// AddAxis creates an axis at slot index (1-based, row-major) of a
// rows-by-cols subplot grid on this tab. The request fails with a
// LayoutError when the slot region overlaps an existing axis.
func (t *Tab) AddAxis(rows, cols, index int, opts ...render.AxisOption) (*render.Axis, error) {
	ax, err := render.NewAxis(rows, cols, index, opts...)
	if err != nil {
		return nil, &LayoutError{Tab: t.name, Reason: err.Error()}
	}
	for _, other := range t.axes {
		if ax.Overlaps(other) {
			return nil, &LayoutError{Tab: t.name, Reason: "subplot region already occupied"}
		}
	}
	t.axes = append(t.axes, ax)
	return ax, nil
}

// RegisterPlot appends p to the tab's refresh list. It fails with a
// RegistrationError when p is already registered (here or on another
// tab) or its bound axis does not belong to this tab.
func (t *Tab) RegisterPlot(p plot.LivePlot) error {
	if p == nil {
		return &RegistrationError{Subject: "plot", Reason: "nil plot"}
	}
	ownersMu.Lock()
	defer ownersMu.Unlock()
	if owner, ok := plotOwners[p.ID()]; ok {
		reason := "already registered to this tab"
		if owner != t {
			reason = "already registered to tab " + owner.name
		}
		return &RegistrationError{Subject: p.Kind().String() + " plot " + p.ID(), Reason: reason}
	}
	if !t.ownsAxis(p.Axis()) {
		return &RegistrationError{
			Subject: p.Kind().String() + " plot " + p.ID(),
			Reason:  "bound axis does not belong to tab " + t.name,
		}
	}
	plotOwners[p.ID()] = t
	t.plots = append(t.plots, p)
	return nil
}

// UnregisterPlot removes p from the tab's refresh list and releases its
// exclusive registration, so a rebuilt tab can register it again.
func (t *Tab) UnregisterPlot(p plot.LivePlot) error {
	if p == nil {
		return &RegistrationError{Subject: "plot", Reason: "nil plot"}
	}
	ownersMu.Lock()
	defer ownersMu.Unlock()
	if plotOwners[p.ID()] != t {
		return &RegistrationError{
			Subject: p.Kind().String() + " plot " + p.ID(),
			Reason:  "not registered to tab " + t.name,
		}
	}
	delete(plotOwners, p.ID())
	for i, q := range t.plots {
		if q.ID() == p.ID() {
			t.plots = append(t.plots[:i], t.plots[i+1:]...)
			break
		}
	}
	return nil
}

func (t *Tab) ownsAxis(ax *render.Axis) bool {
	for _, a := range t.axes {
		if a == ax {
			return true
		}
	}
	return false
}

// Render draws the tab's axes and live plots into a w-by-h cell area.
// Axis bounds grow to cover whatever the live plots have shown so far.
func (t *Tab) Render(w, h int) string {
	c := render.NewCanvas(w, h)
	for _, ax := range t.axes {
		for _, p := range t.plots {
			if p.Axis() != ax {
				continue
			}
			if b, ok := p.DataBounds(); ok {
				ax.Include(b)
			}
		}
		x, y, rw, rh := ax.Region(w, h)
		ctx := ax.Render(c, x, y, rw, rh)
		for _, p := range t.plots {
			if p.Axis() == ax {
				p.Render(ctx)
			}
		}
	}
	return c.String()
}
