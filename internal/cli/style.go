package cli

import (
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorPurple = lipgloss.Color("#d3869b")
	colorGreen  = lipgloss.Color("#8ec07c")
	colorDim    = lipgloss.Color("#928374")
	colorGold   = lipgloss.Color("#fabd2f")
)

var (
	styleDim  = lipgloss.NewStyle().Foreground(colorDim)
	stylePoem = lipgloss.NewStyle().Foreground(colorGold)
)

// themeStyle maps a scenario's theme colour onto the terminal palette.
func themeStyle(theme string) lipgloss.Style {
	switch theme {
	case "red":
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	case "blue":
		return lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	case "purple":
		return lipgloss.NewStyle().Foreground(colorPurple).Bold(true)
	case "green":
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	default:
		return lipgloss.NewStyle().Bold(true)
	}
}

func scenarioStyle(id string) lipgloss.Style {
	return themeStyle(fortune.ResolveScenario(id).ThemeColor)
}
