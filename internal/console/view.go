package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/brig/internal/ui/style"
)

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	bar := scrollbar(m.viewport.Height, m.viewport.TotalLineCount(), m.viewport.YOffset)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), strings.Join(bar, "\n")))
	b.WriteString("\n")
	b.WriteString(m.input.View())

	if m.running {
		b.WriteString("\n")
		b.WriteString(style.Muted("running... ctrl+c to cancel"))
		return b.String()
	}

	for _, line := range m.suggestionLines() {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// suggestionLines renders the visible suggestions aligned under the prompt,
// the first one highlighted as the one Tab accepts.
func (m model) suggestionLines() []string {
	list := m.suggestions.List
	if len(list) > m.opts.MaxSuggestions {
		list = list[:m.opts.MaxSuggestions]
	}

	indent := strings.Repeat(" ", lipgloss.Width(m.opts.Prompt)+m.suggestions.Range.Start)
	width := 0
	for _, s := range list {
		width = max(width, len(s.Text))
	}

	lines := make([]string, 0, len(list))
	for i, s := range list {
		text := s.Text + strings.Repeat(" ", width-len(s.Text))
		if i == 0 {
			text = style.Active(text)
		} else {
			text = style.Dim(text)
		}
		if s.Tooltip != "" {
			text += "  " + style.Muted(s.Tooltip)
		}
		lines = append(lines, indent+text)
	}
	return lines
}
