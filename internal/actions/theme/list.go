package theme

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
)

func List(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return list(c, deps)
	}
}

func list(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	current = style.ResolveThemeName(current)

	s.Println("Available themes (* = current)")
	s.Println()

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		s.Printf("%s%-14s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}

	s.Println()
	s.Println("Use 'theme set <name>' to change")

	return len(deps.ThemeNames), nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	if !style.Enabled() {
		return ""
	}

	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("literal ", cfg.Color1) +
		colorize("<argument> ", cfg.Color2) +
		colorize("-> ", cfg.Color3) +
		colorize("user ", cfg.Color4) +
		colorize("42", cfg.Color5)
}
