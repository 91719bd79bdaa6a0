package dispatchers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

func execute(t *testing.T, d *Dispatcher, input string) (int, error) {
	t.Helper()
	return d.ExecuteInput(context.Background(), input, nil)
}

func TestDispatcher_ExecuteCommand(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Executes(returns(42)))

	got, err := execute(t, d, "foo")
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestDispatcher_ExecuteOffsetInput(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Executes(returns(42)))

	r := reader.New("/foo")
	r.Skip()
	got, err := d.Execute(context.Background(), d.ParseReader(r, nil))
	require.NoError(t, err)
	require.Equal(t, 42, got)
	require.Equal(t, 1, r.Cursor())
}

func TestDispatcher_MergeCommands(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Then(Literal("bar").Executes(returns(1))))
	d.Register(Literal("foo").Executes(returns(2)))

	got, err := execute(t, d, "foo")
	require.NoError(t, err)
	require.Equal(t, 2, got)

	got, err = execute(t, d, "foo bar")
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestDispatcher_ExecuteErrors(t *testing.T) {
	newDispatcher := func() *Dispatcher {
		d := New()
		d.Register(Literal("foo").Executes(returns(1)).
			Then(Literal("bar")).
			Then(Literal("baz")))
		d.Register(Literal("num").Then(Argument("n", intType{}).Executes(returns(1))))
		d.Register(Literal("orphan").Then(Argument("n", intType{})))
		d.Register(Literal("secret").Requires(func(any) bool { return false }).Executes(returns(1)))
		return d
	}

	tests := []struct {
		name   string
		input  string
		kind   usage.ErrorKind
		cursor int
	}{
		{"unknown command", "bar", usage.ErrUnknownCommand, 0},
		{"empty input", "", usage.ErrUnknownCommand, 0},
		{"impermissible", "secret", usage.ErrUnknownCommand, 0},
		{"unknown subcommand", "foo unknown", usage.ErrUnknownArgument, 4},
		{"incorrect literal", "foo bax", usage.ErrUnknownArgument, 4},
		{"invalid argument", "num bar", usage.ErrExpectedInt, 4},
		{"missing separator after literal", "num123", usage.ErrExpectedSeparator, 3},
		{"missing separator after argument", "num 12x", usage.ErrExpectedSeparator, 6},
		{"orphaned argument", "orphan 5", usage.ErrUnknownCommand, 8},
		{"incomplete command", "num", usage.ErrUnknownCommand, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, newDispatcher(), tt.input)
			ue := requireUsageKind(t, err, tt.kind)
			require.Equal(t, tt.cursor, ue.Cursor)
		})
	}
}

func TestDispatcher_Subcommand(t *testing.T) {
	d := New()
	d.Register(Literal("foo").
		Then(Literal("a")).
		Then(Literal("=").Executes(returns(100))).
		Then(Literal("c")).
		Executes(returns(42)))

	got, err := execute(t, d, "foo =")
	require.NoError(t, err)
	require.Equal(t, 100, got)
}

func TestDispatcher_ParseIncomplete(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Then(Literal("bar").Executes(returns(1))))
	d.Register(Literal("num").Then(Argument("n", intType{}).Executes(returns(1))))

	parse := d.Parse("foo ", nil)
	require.Equal(t, " ", parse.Reader.Remaining())
	require.Len(t, parse.Context.Nodes(), 1)

	parse = d.Parse("num ", nil)
	require.Equal(t, " ", parse.Reader.Remaining())
	require.Len(t, parse.Context.Nodes(), 1)
}

func TestDispatcher_ParseCollectsArguments(t *testing.T) {
	d := New()
	d.Register(Literal("add").Then(Argument("a", intType{}).Then(Argument("b", intType{}).Executes(
		func(_ context.Context, c *CommandContext) (int, error) {
			a, err := ArgumentAs[int](c, "a")
			if err != nil {
				return 0, err
			}
			b, err := ArgumentAs[int](c, "b")
			if err != nil {
				return 0, err
			}
			return a + b, nil
		}))))

	got, err := execute(t, d, "add 2 40")
	require.NoError(t, err)
	require.Equal(t, 42, got)

	parse := d.Parse("add 2 40", nil)
	c := parse.Context.Build("add 2 40")
	require.Equal(t, reader.Between(4, 5), c.Arguments()["a"].Range)
	require.Equal(t, reader.Between(0, 8), c.Range())
}

func TestDispatcher_ParseWrapsForeignErrors(t *testing.T) {
	d := New()
	d.Register(Literal("bad").Then(Argument("x", failingType{panics: false}).Executes(returns(1))))
	d.Register(Literal("worse").Then(Argument("x", failingType{panics: true}).Executes(returns(1))))

	_, err := execute(t, d, "bad 1")
	ue := requireUsageKind(t, err, usage.ErrParseException)
	require.Contains(t, ue.Message, "type exploded")

	_, err = execute(t, d, "worse 1")
	ue = requireUsageKind(t, err, usage.ErrParseException)
	require.Contains(t, ue.Message, "type panicked")
}

type failingType struct {
	wordType
	panics bool
}

func (f failingType) Parse(*reader.StringReader) (any, error) {
	if f.panics {
		panic("type panicked")
	}
	return nil, errors.New("type exploded")
}

func TestDispatcher_ParseIsTotal(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Then(Argument("n", intType{}).Executes(returns(1))))
	d.Register(Literal("bar").Redirect(d.Root()))
	d.Register(Literal("q").Then(Argument("x", failingType{panics: true})))

	inputs := []string{"", " ", "  ", "foo", "foo ", "foo  1", "foo 1 ", "bar bar bar", "bar ", "\"", "q x", "f\\o", "héllo wörld", "foo -", "foo ..."}
	for _, input := range inputs {
		require.NotPanics(t, func() {
			d.Parse(input, nil)
		}, input)
	}
}

func TestDispatcher_Deterministic(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Then(Argument("n", intType{}).Executes(returns(7))))
	d.Register(Literal("bar").Redirect(d.Root()))

	for _, input := range []string{"foo 1", "bar foo 2", "foo x", "baz"} {
		a := d.Parse(input, nil)
		b := d.Parse(input, nil)
		require.Equal(t, a.Reader.Cursor(), b.Reader.Cursor())
		require.Equal(t, len(a.Errors), len(b.Errors))
		require.Equal(t, a.Context.Range(), b.Context.Range())

		want, wantErr := d.Execute(context.Background(), a)
		got, gotErr := execute(t, d, input)
		require.Equal(t, want, got)
		require.Equal(t, wantErr, gotErr)
	}
}

func TestDispatcher_Redirect(t *testing.T) {
	d := New()
	d.Register(Literal("actual").Executes(returns(42)))
	d.Register(Literal("redirected").Redirect(d.Root()))

	input := "redirected redirected actual"
	parse := d.Parse(input, nil)
	require.Equal(t, "redirected", parse.Context.Range().Get(input))
	require.NotNil(t, parse.Context.Child())
	require.NotNil(t, parse.Context.Child().Child())
	require.Equal(t, "actual", parse.Context.LastChild().Range().Get(input))

	got, err := d.Execute(context.Background(), parse)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestDispatcher_RedirectWithSingleModifier(t *testing.T) {
	d := New()
	d.Register(Literal("whoami").Executes(func(_ context.Context, c *CommandContext) (int, error) {
		return c.Source().(int), nil
	}))
	d.Register(Literal("as").Then(Argument("n", intType{}).RedirectWith(d.Root(),
		func(_ context.Context, c *CommandContext) (any, error) {
			return ArgumentAs[int](c, "n")
		})))

	got, err := d.ExecuteInput(context.Background(), "as 9 whoami", 1)
	require.NoError(t, err)
	require.Equal(t, 9, got)

	got, err = d.ExecuteInput(context.Background(), "whoami", 1)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

type consumed struct {
	success bool
	result  int
}

func forkDispatcher(fork bool, handler Command) (*Dispatcher, *[]consumed) {
	var calls []consumed
	d := New(WithResultConsumer(func(_ *CommandContext, success bool, result int) {
		calls = append(calls, consumed{success, result})
	}))
	d.Register(Literal("actual").Executes(handler))
	d.Register(Literal("each").Forward(d.Root(), func(context.Context, *CommandContext) ([]any, error) {
		return []any{1, 2, 3}, nil
	}, fork))
	return d, &calls
}

func sourceAsResult(_ context.Context, c *CommandContext) (int, error) {
	return c.Source().(int) * 10, nil
}

func TestDispatcher_ForkCountsSuccesses(t *testing.T) {
	d, calls := forkDispatcher(true, sourceAsResult)

	got, err := execute(t, d, "each actual")
	require.NoError(t, err)
	require.Equal(t, 3, got)
	require.Equal(t, []consumed{{true, 10}, {true, 20}, {true, 30}}, *calls)
}

func TestParseResults_Forks(t *testing.T) {
	forking, _ := forkDispatcher(true, sourceAsResult)
	require.True(t, forking.Parse("each actual", 0).Forks())
	require.False(t, forking.Parse("actual", 0).Forks())

	plain, _ := forkDispatcher(false, sourceAsResult)
	require.False(t, plain.Parse("each actual", 0).Forks())
}

func TestDispatcher_NonForkSumsResults(t *testing.T) {
	d, _ := forkDispatcher(false, sourceAsResult)

	got, err := execute(t, d, "each actual")
	require.NoError(t, err)
	require.Equal(t, 60, got)
}

func TestDispatcher_ForkIsolatesSyntaxErrors(t *testing.T) {
	d, calls := forkDispatcher(true, func(_ context.Context, c *CommandContext) (int, error) {
		if c.Source().(int) == 2 {
			return 0, usage.CommandFailed("source %d refused", 2)
		}
		return 1, nil
	})

	got, err := execute(t, d, "each actual")
	require.NoError(t, err)
	require.Equal(t, 2, got)
	require.Equal(t, []consumed{{true, 1}, {false, 0}, {true, 1}}, *calls)
}

func TestDispatcher_NonForkStopsOnSyntaxError(t *testing.T) {
	d, calls := forkDispatcher(false, func(_ context.Context, c *CommandContext) (int, error) {
		if c.Source().(int) == 2 {
			return 0, usage.CommandFailed("source %d refused", 2)
		}
		return 1, nil
	})

	_, err := execute(t, d, "each actual")
	requireUsageKind(t, err, usage.ErrCommandFailed)
	require.Equal(t, []consumed{{true, 1}, {false, 0}}, *calls)
}

func TestDispatcher_ForkPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	d, calls := forkDispatcher(true, func(context.Context, *CommandContext) (int, error) {
		return 0, boom
	})

	_, err := execute(t, d, "each actual")
	require.ErrorIs(t, err, boom)
	require.Empty(t, *calls)
}

func TestDispatcher_ForkModifierSyntaxErrorIsSkipped(t *testing.T) {
	var calls []consumed
	d := New(WithResultConsumer(func(_ *CommandContext, success bool, result int) {
		calls = append(calls, consumed{success, result})
	}))
	d.Register(Literal("actual").Executes(returns(1)))
	d.Register(Literal("outer").Fork(d.Root(), func(context.Context, *CommandContext) ([]any, error) {
		return []any{1, 2}, nil
	}))
	d.Register(Literal("inner").Fork(d.Root(), func(_ context.Context, c *CommandContext) ([]any, error) {
		if c.Source().(int) == 1 {
			return nil, usage.CommandFailed("nope")
		}
		return []any{c.Source()}, nil
	}))

	got, err := execute(t, d, "outer inner actual")
	require.NoError(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, []consumed{{false, 0}, {true, 1}}, calls)
}

func TestDispatcher_UnknownCommandNotifiesConsumer(t *testing.T) {
	var calls []consumed
	d := New(WithResultConsumer(func(_ *CommandContext, success bool, result int) {
		calls = append(calls, consumed{success, result})
	}))
	d.Register(Literal("foo").Then(Literal("bar").Executes(returns(1))))

	_, err := execute(t, d, "foo")
	requireUsageKind(t, err, usage.ErrUnknownCommand)
	require.Equal(t, []consumed{{false, 0}}, calls)
}

func TestDispatcher_ExecuteHonoursCancellation(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Executes(returns(1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.ExecuteInput(ctx, "foo", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDispatcher_PathRoundTrip(t *testing.T) {
	d := New()
	d.Register(Literal("a").Then(Literal("b").Then(Argument("n", intType{}).Executes(returns(1)))))
	d.Register(Literal("c").Executes(returns(1)))
	d.Register(Literal("r").Redirect(d.Root()))

	var walk func(n *Node)
	count := 0
	walk = func(n *Node) {
		count++
		require.Same(t, n, d.FindNode(d.Path(n)), "path %v", d.Path(n))
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(d.Root())
	require.Equal(t, 6, count)

	require.Equal(t, []string{"a", "b", "n"}, d.Path(d.FindNode([]string{"a", "b", "n"})))
	require.Empty(t, d.Path(d.Root()))
	require.Nil(t, d.Path(Literal("stray").Build()))
	require.Nil(t, d.FindNode([]string{"a", "missing"}))
	require.Equal(t, "a b n", JoinPath([]string{"a", "b", "n"}))
}

func suggestionDispatcher() *Dispatcher {
	d := New()
	d.Register(Literal("foo"))
	d.Register(Literal("bar"))
	d.Register(Literal("baz"))
	d.Register(Literal("parent").
		Then(Literal("foo")).
		Then(Literal("bar")).
		Then(Literal("baz")))
	actual := d.Register(Literal("actual").Then(Literal("sub").Executes(returns(1))))
	d.Register(Literal("redirect").Redirect(actual))
	return d
}

func TestDispatcher_CompletionSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rng   reader.StringRange
		want  []string
	}{
		{"root", "", reader.At(0), []string{"actual", "bar", "baz", "foo", "parent", "redirect"}},
		{"partial root", "b", reader.Between(0, 1), []string{"bar", "baz"}},
		{"subcommands", "parent ", reader.At(7), []string{"bar", "baz", "foo"}},
		{"partial subcommand", "parent b", reader.Between(7, 8), []string{"bar", "baz"}},
		{"case insensitive", "parent B", reader.Between(7, 8), []string{"bar", "baz"}},
		{"redirect", "redirect ", reader.At(9), []string{"sub"}},
		{"partial redirect", "redirect s", reader.Between(9, 10), []string{"sub"}},
	}

	d := suggestionDispatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.CompletionSuggestions(context.Background(), d.Parse(tt.input, nil))
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Texts())
			require.Equal(t, tt.rng, got.Range)
		})
	}
}

func TestDispatcher_CompletionSuggestionsAtCursor(t *testing.T) {
	d := suggestionDispatcher()

	parse := d.Parse("parent bar", nil)
	got, err := d.CompletionSuggestionsAt(context.Background(), parse, 8)
	require.NoError(t, err)
	require.Equal(t, reader.Between(7, 8), got.Range)
	require.Equal(t, []string{"bar", "baz"}, got.Texts())
}

func TestDispatcher_CompletionSuggestionsToleratesFailingProviders(t *testing.T) {
	d := New()
	d.Register(Literal("give").
		Then(Literal("gold")).
		Then(Argument("item", wordType{}).Suggests(
			func(context.Context, *CommandContext, *suggestion.Builder) (suggestion.Suggestions, error) {
				return suggestion.Empty(), errors.New("provider down")
			})).
		Then(Argument("count", intType{}).Suggests(
			func(context.Context, *CommandContext, *suggestion.Builder) (suggestion.Suggestions, error) {
				panic("provider panicked")
			})))

	got, err := d.CompletionSuggestions(context.Background(), d.Parse("give g", nil))
	require.NoError(t, err)
	require.Equal(t, []string{"gold"}, got.Texts())
}

func TestDispatcher_CompletionSuggestionsCustomProvider(t *testing.T) {
	d := New()
	d.Register(Literal("user").Then(Argument("name", wordType{}).Suggests(
		func(_ context.Context, _ *CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
			for _, name := range []string{"alice", "bob", "alfred"} {
				if len(name) >= len(b.RemainingLowerCase()) && name[:len(b.RemainingLowerCase())] == b.RemainingLowerCase() {
					b.SuggestWithTooltip(name, "known user")
				}
			}
			return b.Build(), nil
		})))

	got, err := d.CompletionSuggestions(context.Background(), d.Parse("user al", nil))
	require.NoError(t, err)
	require.Equal(t, []string{"alfred", "alice"}, got.Texts())
	require.Equal(t, "known user", got.List[0].Tooltip)
}

func TestDispatcher_CompletionSuggestionsCancelled(t *testing.T) {
	d := suggestionDispatcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.CompletionSuggestions(ctx, d.Parse("", nil))
	require.ErrorIs(t, err, context.Canceled)
}
