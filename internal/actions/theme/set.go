package theme

import (
	"context"
	"slices"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// NameArg is the name of the theme argument.
const NameArg = "name"

func Set(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return setTheme(c, deps)
	}
}

func setTheme(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	themeName, err := arguments.GetString(c, NameArg)
	if err != nil {
		return 0, err
	}

	if !slices.Contains(deps.Names(), themeName) {
		return 0, usage.InvalidTheme(themeName)
	}

	if err := deps.Set("theme", themeName); err != nil {
		return 0, err
	}

	if deps.Apply != nil {
		all, err := deps.GetAll()
		if err != nil {
			return 0, err
		}
		deps.Apply(all)
	}

	s.Printf("theme set to %s\n", style.Success(themeName))
	return 1, nil
}
