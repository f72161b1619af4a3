package watch

import "github.com/charmbracelet/lipgloss"

// Colour palette
var (
	primaryColor = lipgloss.Color("#7D56F4") // Purple
	nearColor    = lipgloss.Color("#43BF6D") // Green
	midColor     = lipgloss.Color("#FFA500") // Orange
	farColor     = lipgloss.Color("#FF8B94") // Pink
	subtleColor  = lipgloss.Color("#626262") // Gray
	errorColor   = lipgloss.Color("#FF0000") // Red
)

// Common styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(1, 0)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	rowStyle = lipgloss.NewStyle()

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// distanceStyle colours a distance cell by proximity band: under 5 m
// green, under 20 m orange, beyond that pink.
func distanceStyle(metres float64) lipgloss.Style {
	switch {
	case metres < 5:
		return lipgloss.NewStyle().Foreground(nearColor)
	case metres < 20:
		return lipgloss.NewStyle().Foreground(midColor)
	default:
		return lipgloss.NewStyle().Foreground(farColor)
	}
}
