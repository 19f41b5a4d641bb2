// Package style holds the lipgloss styles used for smartpush console output.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"smartpush.dev/smartpush/internal/remedy"
)

var (
	// Title renders failure headings
	Title = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	// Success renders the final success line
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	// Recommended renders the recommended action
	Recommended = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	// Dim renders secondary text such as raw command output
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	// Option renders the option number
	Option = lipgloss.NewStyle().Bold(true)
)

// RenderChoice renders the heading block shown above a remediation menu.
// When numbered is true the options are listed as "1. label".
func RenderChoice(choice remedy.Choice, numbered bool) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Title.Render("❗ " + choice.Title))
	b.WriteString("\n")
	b.WriteString(choice.Description)
	b.WriteString("\n")
	if choice.RecommendedAction != "" {
		b.WriteString(Recommended.Render("Recommended: " + choice.RecommendedAction))
		b.WriteString("\n")
	}
	if numbered {
		for i, opt := range choice.Options {
			b.WriteString(Option.Render(fmt.Sprintf("%d.", i+1)))
			b.WriteString(" ")
			b.WriteString(opt)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderOutput indents and dims raw command output.
func RenderOutput(output string) string {
	if output == "" {
		return ""
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return Dim.Render(strings.Join(lines, "\n"))
}
