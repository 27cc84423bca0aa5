package window

import (
	"fmt"
	"log"

	"github.com/dynamicdesignlab/liveterm/plot"
)

// Driver is the animation refresh scheduler. Each Tick advances every
// active plot across every tab, in registration order, then requests
// exactly one redraw regardless of how many plots changed.
//
// Tick only ever runs inside the event loop callback; the driver needs
// no locking of its own.
type Driver struct {
	tabs     func() []*Tab
	redraw   func()
	logger   *log.Logger
	inactive map[string]bool
	ticks    int
}

// NewDriver creates a driver over the window's tabs. redraw is invoked
// once per tick; logger (may be nil) receives per-plot failure reports.
func NewDriver(tabs func() []*Tab, redraw func(), logger *log.Logger) *Driver {
	return &Driver{
		tabs:     tabs,
		redraw:   redraw,
		logger:   logger,
		inactive: make(map[string]bool),
	}
}

// Tick advances all active plots and coalesces their changes into one
// redraw request. A plot that reports exhaustion is deactivated and
// skipped from then on; a plot whose Advance fails (error or panic) is
// deactivated and reported, and every other plot keeps running.
func (d *Driver) Tick() {
	for _, t := range d.tabs() {
		for _, p := range t.Plots() {
			if d.inactive[p.ID()] {
				continue
			}
			st, err := d.advance(p)
			if err != nil {
				d.inactive[p.ID()] = true
				if d.logger != nil {
					d.logger.Printf("liveterm: deactivating %s plot %s on tab %s: %v",
						p.Kind(), p.ID(), t.Name(), err)
				}
				continue
			}
			if st == plot.Exhausted {
				d.inactive[p.ID()] = true
			}
		}
	}
	d.ticks++
	if d.redraw != nil {
		d.redraw()
	}
}

// advance shields the loop from a panicking plot.
func (d *Driver) advance(p plot.LivePlot) (st plot.Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in advance: %v", r)
		}
	}()
	return p.Advance()
}

// Reactivate clears a plot's inactive mark, e.g. after a manual seek
// rewound its source.
func (d *Driver) Reactivate(id string) { delete(d.inactive, id) }

// Active reports whether the plot is still being ticked.
func (d *Driver) Active(id string) bool { return !d.inactive[id] }

// AllExhausted reports whether no plot remains active. The window loop
// keeps running regardless; ticks just stop doing work.
func (d *Driver) AllExhausted() bool {
	any := false
	for _, t := range d.tabs() {
		for _, p := range t.Plots() {
			any = true
			if !d.inactive[p.ID()] {
				return false
			}
		}
	}
	return any
}

// Ticks returns how many refresh passes have run.
func (d *Driver) Ticks() int { return d.ticks }

// ActiveCount returns how many plots are still advancing.
func (d *Driver) ActiveCount() int {
	n := 0
	for _, t := range d.tabs() {
		for _, p := range t.Plots() {
			if !d.inactive[p.ID()] {
				n++
			}
		}
	}
	return n
}
