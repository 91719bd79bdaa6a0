package config

import (
	"context"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/usage"
)

func Unset(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return unset(c, deps)
	}
}

func unset(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	key, err := arguments.GetString(c, KeyArg)
	if err != nil {
		return 0, err
	}

	if !domain.IsValidConfigKey(key) {
		return 0, usage.InvalidConfigKey(key)
	}

	if err := deps.Unset(key); err != nil {
		return 0, err
	}

	def, _ := domain.GetDefaultValue(key)
	if def == "" {
		s.Printf("unset %s\n", key)
	} else {
		s.Printf("unset %s (default: %s)\n", key, def)
	}
	return 1, nil
}
