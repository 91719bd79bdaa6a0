// Package help renders usage for the commands a session may run.
package help

import (
	"context"
	"fmt"
	"strings"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// CommandArg is the name of the command argument of `help <command>`.
const CommandArg = "command"

// Overview lists every root command the session may use, grouped by category.
func Overview(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return overview(c, deps)
	}
}

func overview(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	d := deps.Dispatcher
	usages := d.SmartUsage(d.Root(), s)

	byCategory := make(map[dispatchers.CommandCategory][]dispatchers.Usage)
	width := 0
	for _, u := range usages {
		byCategory[u.Node.Category] = append(byCategory[u.Node.Category], u)
		width = max(width, len(u.Text))
	}

	s.Println("usage: <command> [<args>]")

	for _, category := range dispatchers.CategoryOrder() {
		group := byCategory[category]
		if len(group) == 0 {
			continue
		}

		s.Println()
		s.Println(style.Header(category.String()))
		for _, u := range group {
			s.Printf("  %s  %s\n", padRight(u.Text, width), style.Muted(u.Node.Summary))
		}
	}

	s.Println()
	s.Println("Run 'help <command>' for the forms of one command.")
	return len(usages), nil
}

// Command shows the condensed usage of every form of one command.
func Command(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return command(c, deps)
	}
}

func command(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	input, err := arguments.GetString(c, CommandArg)
	if err != nil {
		return 0, err
	}

	d := deps.Dispatcher
	parse := d.Parse(input, s)
	nodes := parse.Context.Nodes()
	if len(nodes) == 0 {
		return 0, unknownCommand(input, s, deps)
	}

	prefix := parse.Reader.String()[:parse.Context.Range().End]
	last := nodes[len(nodes)-1].Node

	if last.Summary != "" {
		s.Println(style.Muted(last.Summary))
	}

	usages := d.SmartUsage(last, s)
	if len(usages) == 0 {
		s.Println(prefix)
		return 1, nil
	}

	if last.Command() != nil {
		s.Println(prefix)
	}
	for _, u := range usages {
		s.Println(prefix + dispatchers.ArgumentSeparatorString + u.Text)
	}
	return len(usages), nil
}

func unknownCommand(input string, s *session.Session, deps Deps) error {
	name, _, _ := strings.Cut(input, dispatchers.ArgumentSeparatorString)
	similar := dispatchers.SimilarLiterals(name, deps.Dispatcher.Root(), s, deps.MaxSimilar)
	if len(similar) == 0 {
		return usage.CommandFailed("unknown command '%s'", name)
	}
	return usage.CommandFailed("unknown command '%s', did you mean %s?", name, quoteAll(similar))
}

// AllUsage prints one line per executable path.
func AllUsage(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		s, err := session.From(c)
		if err != nil {
			return 0, err
		}

		d := deps.Dispatcher
		lines := d.AllUsage(d.Root(), s, true)
		for _, line := range lines {
			s.Println(line)
		}
		return len(lines), nil
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	return strings.Join(quoted, " or ")
}
