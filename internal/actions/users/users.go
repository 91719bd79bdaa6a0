// Package users manages the users commands run as and the execute
// redirects that switch between them.
package users

import (
	"context"
	"strconv"
	"strings"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// Argument names.
const (
	NameArg  = "name"
	LevelArg = "level"
)

// LevelType parses a permission level.
func LevelType() *arguments.Numeric[int] {
	return arguments.Integer(domain.LevelGuest, domain.LevelOwner)
}

// Add creates a user or changes its level. Nobody may grant a level above
// their own.
func Add(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return add(c, deps)
	}
}

func add(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	name, err := arguments.GetString(c, NameArg)
	if err != nil {
		return 0, err
	}

	level := domain.LevelGuest
	if c.HasArgument(LevelArg) {
		if level, err = arguments.GetInteger(c, LevelArg); err != nil {
			return 0, err
		}
	}

	if err := session.Require(s, level); err != nil {
		return 0, err
	}

	existing, existed, err := deps.Store.GetUser(name)
	if err != nil {
		return 0, err
	}
	if existed {
		if err := session.Require(s, existing.Level); err != nil {
			return 0, err
		}
	}

	if err := deps.Store.AddUser(domain.User{Name: name, Level: level}); err != nil {
		return 0, err
	}
	deps.Logger.Info("users: %s set %s to level %d", s.Name(), name, level)

	action := "added"
	if existed {
		action = "updated"
	}
	s.Printf("%s %s (level %s)\n", action, style.User(name), style.Number(strconv.Itoa(level)))
	return 1, nil
}

// Remove deletes a user.
func Remove(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return remove(c, deps)
	}
}

func remove(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	name, err := arguments.GetString(c, NameArg)
	if err != nil {
		return 0, err
	}

	user, found, err := deps.Store.GetUser(name)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, usage.UnknownUser(name)
	}
	if err := session.Require(s, user.Level); err != nil {
		return 0, err
	}

	if _, err := deps.Store.RemoveUser(name); err != nil {
		return 0, err
	}
	deps.Logger.Info("users: %s removed %s", s.Name(), name)

	s.Printf("removed %s\n", style.User(name))
	return 1, nil
}

// List prints every user.
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

	all, err := deps.Store.ListUsers()
	if err != nil {
		return 0, err
	}

	if len(all) == 0 {
		s.Println(style.Muted("no users"))
		return 0, nil
	}

	width := 0
	for _, u := range all {
		width = max(width, len(u.Name))
	}

	for _, u := range all {
		marker := "  "
		if u.Name == s.Name() {
			marker = style.Success("* ")
		}
		s.Printf("%s%s%s  level %s  %s\n",
			marker,
			style.User(u.Name),
			strings.Repeat(" ", width-len(u.Name)),
			style.Number(strconv.Itoa(u.Level)),
			style.Muted("since "+deps.Formatter.DateTime(u.Created.Local())),
		)
	}
	return len(all), nil
}

// SuggestNames completes registered user names.
func SuggestNames(deps Deps) dispatchers.SuggestionProvider {
	return func(_ context.Context, _ *dispatchers.CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
		all, err := deps.Store.ListUsers()
		if err != nil {
			return suggestion.Empty(), err
		}

		remaining := b.RemainingLowerCase()
		for _, u := range all {
			if strings.HasPrefix(strings.ToLower(u.Name), remaining) {
				b.SuggestWithTooltip(u.Name, "level "+strconv.Itoa(u.Level))
			}
		}
		return b.Build(), nil
	}
}
