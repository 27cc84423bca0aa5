package window

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("#8BE9FD")
	colorWhite = lipgloss.Color("#F8F8F2")
	colorGray  = lipgloss.Color("#6272A4")
	colorPanel = lipgloss.Color("#44475A")

	titleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tabStyle      = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorPanel).
			Bold(true).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(colorGray)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")).Bold(true)
)
