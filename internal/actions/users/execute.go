package users

import (
	"context"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/usage"
)

// MinLevelArg is the name of the level argument of `execute if level`.
const MinLevelArg = "min"

// As switches the source to a registered user. A session cannot become a
// user with a higher level than its own.
func As(deps Deps) dispatchers.SingleRedirectModifier {
	return func(_ context.Context, c *dispatchers.CommandContext) (any, error) {
		s, err := session.From(c)
		if err != nil {
			return nil, err
		}

		name, err := arguments.GetString(c, NameArg)
		if err != nil {
			return nil, err
		}

		user, found, err := deps.Store.GetUser(name)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, usage.UnknownUser(name)
		}
		if err := session.Require(s, user.Level); err != nil {
			return nil, err
		}

		deps.Logger.Debug("execute: %s as %s", s.Name(), user.Name)
		return s.As(user), nil
	}
}

// Everyone forks the rest of the command to every user at or below the
// source's level, in name order.
func Everyone(deps Deps) dispatchers.RedirectModifier {
	return func(_ context.Context, c *dispatchers.CommandContext) ([]any, error) {
		s, err := session.From(c)
		if err != nil {
			return nil, err
		}

		all, err := deps.Store.ListUsers()
		if err != nil {
			return nil, err
		}

		var sources []any
		for _, u := range all {
			if u.Level <= s.Level() {
				sources = append(sources, s.As(u))
			}
		}
		deps.Logger.Debug("execute: %s forks to %d users", s.Name(), len(sources))
		return sources, nil
	}
}

// IfLevel keeps the source when its level is at least the min argument and
// drops it otherwise.
func IfLevel(_ context.Context, c *dispatchers.CommandContext) ([]any, error) {
	s, err := session.From(c)
	if err != nil {
		return nil, err
	}

	minLevel, err := arguments.GetInteger(c, MinLevelArg)
	if err != nil {
		return nil, err
	}

	if s.Level() < minLevel {
		return nil, nil
	}
	return []any{s}, nil
}
