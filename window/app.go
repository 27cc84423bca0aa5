package window

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicdesignlab/liveterm/plot"
)

type tickMsg time.Time

// appModel is the bubbletea model driving the interactive session. Each
// timer tick advances the driver once; the single View render after
// Update is the coalesced repaint for that tick.
type appModel struct {
	win    *Window
	driver *Driver

	active int // current tab index
	width  int
	height int

	paused bool
	step   int
}

func newAppModel(w *Window) *appModel {
	m := &appModel{win: w, step: w.slowStep}
	m.driver = NewDriver(w.Tabs, nil, w.logger)
	return m
}

func (m *appModel) Init() tea.Cmd {
	return tick(m.win.interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused && !m.driver.AllExhausted() {
			m.driver.Tick()
		}
		// Keep the timer alive even when every source has run dry so a
		// rewind picks the animation back up; the loop itself only ends
		// when the user quits.
		if m.paused {
			return m, nil
		}
		return m, tick(m.win.interval)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if n := len(m.win.tabs); n > 0 {
			m.active = (m.active + 1) % n
		}
	case "shift+tab":
		if n := len(m.win.tabs); n > 0 {
			m.active = (m.active + n - 1) % n
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if i := int(msg.String()[0] - '1'); i < len(m.win.tabs) {
			m.active = i
		}
	case " ":
		m.paused = !m.paused
		if !m.paused {
			return m, tick(m.win.interval)
		}
	case "n":
		// Step one frame while paused.
		if m.paused {
			m.driver.Tick()
		}
	case "right":
		m.stepAll(m.step)
	case "left":
		m.stepAll(-m.step)
	case "up":
		m.jumpAll(true)
	case "down":
		m.jumpAll(false)
	case "s":
		m.step = m.win.slowStep
	case "m":
		m.step = m.win.mediumStep
	case "f":
		m.step = m.win.fastStep
	}
	return m, nil
}

// stepAll scrolls every seekable plot on every tab by delta samples and
// reactivates it, mirroring the mouse-wheel scrub of the desktop original.
func (m *appModel) stepAll(delta int) {
	for _, t := range m.win.tabs {
		for _, p := range t.Plots() {
			if s, ok := p.(plot.Stepper); ok {
				s.Step(delta)
				m.driver.Reactivate(p.ID())
			}
		}
	}
}

func (m *appModel) jumpAll(end bool) {
	for _, t := range m.win.tabs {
		for _, p := range t.Plots() {
			s, ok := p.(plot.Stepper)
			if !ok {
				continue
			}
			if end {
				s.JumpToEnd()
			} else {
				s.JumpToStart()
			}
			m.driver.Reactivate(p.ID())
		}
	}
}

func (m *appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	var sb strings.Builder
	sb.WriteString(m.renderTabBar())
	sb.WriteByte('\n')

	if len(m.win.tabs) > 0 {
		sb.WriteString(m.win.tabs[m.active].Render(m.width, m.height-2))
	}
	sb.WriteByte('\n')
	sb.WriteString(m.renderStatus())
	return sb.String()
}

func (m *appModel) renderTabBar() string {
	parts := []string{titleBarStyle.Render(" " + m.win.title + " ")}
	for i, t := range m.win.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Name())
		if i == m.active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *appModel) renderStatus() string {
	status := fmt.Sprintf(" tick %d  active %d  step %d", m.driver.Ticks(), m.driver.ActiveCount(), m.step)
	if m.paused {
		status += "  " + pausedStyle.Render("PAUSED")
	} else if m.driver.AllExhausted() {
		status += "  done"
	}
	help := "space pause · n frame · ←/→ scroll · ↑/↓ ends · s/m/f step · q quit "
	gap := m.width - lipgloss.Width(status) - lipgloss.Width(help)
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Render(status) + strings.Repeat(" ", gap) + statusStyle.Render(help)
}
