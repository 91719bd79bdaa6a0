package config

import (
	"context"
	"strings"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

// KeyArg is the name of the config key argument.
const KeyArg = "key"

func Get(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return get(c, deps)
	}
}

func get(c *dispatchers.CommandContext, deps Deps) (int, error) {
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

	value, found := deps.Get(key)
	if !found {
		return 0, usage.InvalidConfigKey(key)
	}

	s.Println(value)
	return 1, nil
}

// SuggestKeys completes visible config key names.
func SuggestKeys(_ context.Context, _ *dispatchers.CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
	remaining := b.RemainingLowerCase()
	for _, key := range domain.VisibleConfigKeys() {
		if strings.HasPrefix(key.Name, remaining) {
			b.SuggestWithTooltip(key.Name, key.Description)
		}
	}
	return b.Build(), nil
}
