// Package history shows and clears the record of executed command lines.
package history

import (
	"context"
	"strconv"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/format"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
)

// Argument names.
const (
	LimitArg = "limit"
	UserArg  = "user"
)

const fallbackLimit = 20

type Deps struct {
	Store     domain.HistoryStore
	Formatter *format.Formatter
	// Limit is the number of entries shown when none is given.
	Limit func() int
}

// NewDeps reads the default limit from the history_limit config key.
func NewDeps(store domain.HistoryStore, cfg domain.ConfigProvider) Deps {
	return Deps{
		Store:     store,
		Formatter: format.New(cfg),
		Limit: func() int {
			raw, _ := cfg.Get("history_limit")
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return fallbackLimit
			}
			return n
		},
	}
}

// Show prints the newest executions, optionally for one user.
func Show(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return show(c, deps)
	}
}

func show(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	filter := domain.HistoryFilter{Limit: deps.Limit()}
	if c.HasArgument(LimitArg) {
		if filter.Limit, err = arguments.GetInteger(c, LimitArg); err != nil {
			return 0, err
		}
	}
	if c.HasArgument(UserArg) {
		if filter.User, err = arguments.GetString(c, UserArg); err != nil {
			return 0, err
		}
	}

	entries, err := deps.Store.Recent(filter)
	if err != nil {
		return 0, err
	}

	if len(entries) == 0 {
		s.Println(style.Muted("no history"))
		return 0, nil
	}

	// Oldest first so the newest line sits next to the prompt.
	for i := len(entries) - 1; i >= 0; i-- {
		s.Println(formatEntry(entries[i], deps.Formatter))
	}
	return len(entries), nil
}

func formatEntry(e domain.HistoryEntry, f *format.Formatter) string {
	status := style.Success("ok")
	if !e.Success {
		status = style.Error("err")
	}

	line := style.Muted(f.DateTimeShort(e.Timestamp.Local())) + "  " +
		style.User(e.User) + "  " +
		status + " " + style.Number(strconv.Itoa(e.Result)) + "  " +
		e.Input
	if e.Forked {
		line += style.Muted(" (forked)")
	}
	if e.Error != "" {
		line += "  " + style.Error(e.Error)
	}
	return line
}

// Clear removes every recorded execution.
func Clear(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		s, err := session.From(c)
		if err != nil {
			return 0, err
		}

		n, err := deps.Store.Clear()
		if err != nil {
			return 0, err
		}

		s.Printf("removed %d history entries\n", n)
		return int(n), nil
	}
}
