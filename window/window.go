package window

import (
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dynamicdesignlab/liveterm/config"
)

// Window is the top-level container: an ordered set of tabs plus the
// event/redraw loop entry point. Build tabs and plots, register them,
// then call Loop; no caller code runs concurrently with the loop.
type Window struct {
	title    string
	tabs     []*Tab
	interval time.Duration
	logger   *log.Logger

	slowStep   int
	mediumStep int
	fastStep   int
}

// Option configures a Window.
type Option func(*Window)

// WithInterval sets the refresh interval, overriding the user config.
func WithInterval(d time.Duration) Option {
	return func(w *Window) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithLogger routes driver failure reports to l instead of discarding
// them. Useful when stderr is redirected away from the TUI.
func WithLogger(l *log.Logger) Option {
	return func(w *Window) { w.logger = l }
}

// WithSteps sets the slow/medium/fast manual scroll step sizes.
func WithSteps(slow, medium, fast int) Option {
	return func(w *Window) {
		w.slowStep, w.mediumStep, w.fastStep = slow, medium, fast
	}
}

// New creates a window titled title, with defaults from the user config.
func New(title string, opts ...Option) *Window {
	cfg := config.Load()
	w := &Window{
		title:      title,
		interval:   time.Duration(cfg.IntervalMS) * time.Millisecond,
		logger:     log.New(io.Discard, "", log.LstdFlags),
		slowStep:   cfg.SlowStep,
		mediumStep: cfg.MediumStep,
		fastStep:   cfg.FastStep,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Window) Title() string { return w.title }

// Tabs returns the registered tabs in registration order.
func (w *Window) Tabs() []*Tab { return w.tabs }

// RegisterTab appends t to the window. A second tab with the same name
// fails with a RegistrationError.
func (w *Window) RegisterTab(t *Tab) error {
	if t == nil {
		return &RegistrationError{Subject: "tab", Reason: "nil tab"}
	}
	for _, existing := range w.tabs {
		if existing.name == t.name {
			return &RegistrationError{Subject: "tab " + t.name, Reason: "name already registered"}
		}
	}
	w.tabs = append(w.tabs, t)
	return nil
}

// Loop runs the event loop until the user quits. It starts the
// animation timer, services input and resize events between ticks, and
// tears everything down together when the window closes. Exhausted data
// sources never close the window; only the user does.
func (w *Window) Loop() error {
	p := tea.NewProgram(newAppModel(w), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
