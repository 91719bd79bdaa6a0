package dispatchers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/suggestion"
)

func TestBuilder_Literal(t *testing.T) {
	node := Literal("foo").
		Describe("Do foo").
		InCategory(CategoryScripting).
		Executes(returns(1)).
		Requires(func(s any) bool { return s == "ok" }).
		Build()

	require.Equal(t, KindLiteral, node.Kind())
	require.Equal(t, "foo", node.Name())
	require.Equal(t, "Do foo", node.Summary)
	require.Equal(t, CategoryScripting, node.Category)
	require.NotNil(t, node.Command())
	require.True(t, node.CanUse("ok"))
	require.False(t, node.CanUse("nope"))
	require.Equal(t, "<literal foo>", node.String())
}

func TestBuilder_Argument(t *testing.T) {
	provider := func(_ context.Context, _ *CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
		return b.Suggest("x").Build(), nil
	}
	node := Argument("n", intType{}).Suggests(provider).Build()

	require.Equal(t, KindArgument, node.Kind())
	require.Equal(t, intType{}, node.Type())
	require.NotNil(t, node.CustomSuggestions())
	require.Equal(t, "<argument n>", node.String())
}

func TestBuilder_Then(t *testing.T) {
	b := Literal("foo").
		Then(Literal("bar")).
		ThenNode(Argument("n", intType{}).Build())

	require.Len(t, b.Arguments(), 2)
	node := b.Build()
	require.NotNil(t, node.Child("bar"))
	require.NotNil(t, node.Child("n"))
}

func TestBuilder_Redirects(t *testing.T) {
	target := NewRoot()
	modifier := func(context.Context, *CommandContext) ([]any, error) { return nil, nil }

	plain := Literal("a").Redirect(target)
	require.Same(t, target, plain.RedirectTarget())
	require.Nil(t, plain.RedirectModifier())
	require.False(t, plain.IsFork())

	fork := Literal("b").Fork(target, modifier)
	require.NotNil(t, fork.RedirectModifier())
	require.True(t, fork.IsFork())

	single := Literal("c").RedirectWith(target, func(context.Context, *CommandContext) (any, error) {
		return "other", nil
	})
	sources, err := single.RedirectModifier()(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, []any{"other"}, sources)

	node := fork.Build()
	require.Same(t, target, node.Redirect())
	require.True(t, node.IsFork())
	require.NotNil(t, node.RedirectModifier())
}

func TestBuilder_Panics(t *testing.T) {
	require.Panics(t, func() {
		Literal("a").Redirect(NewRoot()).Then(Literal("b"))
	})
	require.Panics(t, func() {
		Literal("a").Then(Literal("b")).Redirect(NewRoot())
	})
	require.Panics(t, func() {
		Literal("a").Suggests(nil)
	})
}
