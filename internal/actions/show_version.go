package actions

import (
	"context"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
)

func ShowVersion(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	return showVersion(c, defaultDeps())
}

func showVersion(c *dispatchers.CommandContext, deps actionDependencies) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}
	s.Printf("brig version %v\n", deps.Version())
	return 1, nil
}
