package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	bodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// renderCompletion highlights the first non-empty line of a completion message.
func renderCompletion(msg string) string {
	lines := strings.Split(strings.TrimLeft(msg, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if i == 0 {
			lines[i] = headlineStyle.Render(line)
		} else {
			lines[i] = bodyStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
