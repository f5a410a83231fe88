package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Status line colours.
var (
	colorSuccess = lipgloss.Color("#A6E3A1") // Green
	colorWarning = lipgloss.Color("#F9E2AF") // Yellow
	colorError   = lipgloss.Color("#F38BA8") // Red
	colorMuted   = lipgloss.Color("#6C7086") // Medium gray
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headingStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

func successLine(msg string) string {
	return successStyle.Render("✓ " + msg)
}

func warningLine(msg string) string {
	return warningStyle.Render("! " + msg)
}

func errorLine(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

func mutedLine(msg string) string {
	return mutedStyle.Render("• " + msg)
}

func heading(title string) string {
	return headingStyle.Render(title)
}
