package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7C3AED") // purple
	accentColor  = lipgloss.Color("#06B6D4") // cyan
	successColor = lipgloss.Color("#10B981") // green
	errorColor   = lipgloss.Color("#EF4444") // red
	mutedColor   = lipgloss.Color("#6B7280") // gray
	textColor    = lipgloss.Color("#F9FAFB")

	titleStyle = lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		PaddingBottom(1)

	labelStyle = lipgloss.NewStyle().
		Foreground(textColor).
		Bold(true)

	buttonStyle = lipgloss.NewStyle().
		Foreground(textColor).
		Background(primaryColor).
		Padding(0, 1)

	disabledButtonStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Background(lipgloss.Color("#374151")).
		Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
		Foreground(accentColor)

	successStyle = lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	documentStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor)

	helpStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true)
)
