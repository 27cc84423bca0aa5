package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	DimStyle   = lipgloss.NewStyle().Foreground(colorGray)
	TraceStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

// seriesPalette cycles through trace colors as series are added to an axis.
var seriesPalette = []lipgloss.Color{
	colorCyan, colorGreen, colorMagenta, colorYellow, colorOrange, colorRed, colorWhite,
}

// SeriesStyle returns the default style for the i-th series on an axis.
func SeriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesPalette[i%len(seriesPalette)])
}
