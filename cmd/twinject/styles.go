package main

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// styleCyan is used for section headers and watch status lines.
	styleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleYellow is used for warnings.
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// styleGreen is used for success summaries.
	styleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// styleGray is used for hints and skipped-file notes.
	styleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
