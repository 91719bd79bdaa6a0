package config

import (
	"context"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// ValueArg is the name of the config value argument.
const ValueArg = "value"

func Set(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return set(c, deps)
	}
}

func set(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	key, err := arguments.GetString(c, KeyArg)
	if err != nil {
		return 0, err
	}
	value, err := arguments.GetString(c, ValueArg)
	if err != nil {
		return 0, err
	}

	if !domain.IsValidConfigKey(key) {
		return 0, usage.InvalidConfigKey(key)
	}

	if err := deps.Set(key, value); err != nil {
		return 0, err
	}

	s.Printf("%s=%s\n", key, style.Success(value))
	return 1, nil
}
