// Package grammar exposes the command tree itself: completion of partial
// input for shells and a report of ambiguous sibling nodes.
package grammar

import (
	"context"
	"strings"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
)

// TextArg is the partial command line given to `complete`.
const TextArg = "text"

type Deps struct {
	Dispatcher *dispatchers.Dispatcher
}

func NewDeps(d *dispatchers.Dispatcher) Deps {
	return Deps{Dispatcher: d}
}

// Complete prints the completion candidates for a partial command line, one
// per line. Without text it completes the empty line.
func Complete(deps Deps) dispatchers.Command {
	return func(ctx context.Context, c *dispatchers.CommandContext) (int, error) {
		return complete(ctx, c, deps)
	}
}

func complete(ctx context.Context, c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	var text string
	if c.HasArgument(TextArg) {
		if text, err = arguments.GetString(c, TextArg); err != nil {
			return 0, err
		}
	}

	parse := deps.Dispatcher.Parse(text, s)
	suggestions, err := deps.Dispatcher.CompletionSuggestions(ctx, parse)
	if err != nil {
		return 0, err
	}

	texts := suggestions.Texts()
	for _, t := range texts {
		s.Println(t)
	}
	return len(texts), nil
}

// Ambiguities lists sibling nodes that accept each other's example inputs.
func Ambiguities(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		s, err := session.From(c)
		if err != nil {
			return 0, err
		}

		d := deps.Dispatcher
		count := 0
		d.FindAmbiguities(func(parent, child, sibling *dispatchers.Node, inputs []string) {
			count++
			where := dispatchers.JoinPath(d.Path(parent))
			if where == "" {
				where = "<root>"
			}
			s.Printf("%s: %s and %s both accept %s\n",
				style.Literal(where),
				style.Argument(child.UsageText()),
				style.Argument(sibling.UsageText()),
				strings.Join(inputs, ", "))
		})

		if count == 0 {
			s.Println(style.Success("no ambiguities"))
		}
		return count, nil
	}
}
