package config

import (
	"context"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
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

	configMap, err := deps.GetAll()
	if err != nil {
		return 0, err
	}

	shown := 0
	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value, exists := configMap[key.Name]
			if !exists || (key.HideIfEmpty && value == "") {
				continue
			}
			lines = append(lines, key.Name+"="+value)
		}
		if len(lines) == 0 {
			continue
		}

		if shown > 0 {
			s.Println()
		}
		s.Println(style.Header(section))
		for _, line := range lines {
			s.Println(line)
			shown++
		}
	}

	return shown, nil
}
