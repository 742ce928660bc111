package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used across the terminal output.

var darkBackground = termenv.HasDarkBackground()

func adaptive(light, dark string) lipgloss.Color {
	if darkBackground {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	workloadTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(adaptive("63", "212")).
				MarginTop(1)

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(adaptive("240", "252"))

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// browser TUI
	browserAppStyle = lipgloss.NewStyle().Margin(1, 2)
	detailsStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)
