package scripting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/testutil"
	"github.com/footprint-tools/brig/internal/usage"
)

func newScriptingTree() *dispatchers.Dispatcher {
	d := dispatchers.New()
	d.Register(dispatchers.Literal("echo").
		Then(dispatchers.Argument(MessageArg, arguments.Greedy()).Executes(Echo)))

	calc := dispatchers.Literal("calc")
	for _, op := range Operators() {
		calc.Then(dispatchers.Literal(op.Name).
			Then(dispatchers.Argument(LeftArg, arguments.AnyInteger()).
				Then(dispatchers.Argument(RightArg, arguments.AnyInteger()).Executes(Calc(op)))))
	}
	d.Register(calc)

	name := func() *dispatchers.Builder {
		return dispatchers.Argument(NameArg, arguments.Word()).Suggests(SuggestVarNames)
	}
	d.Register(dispatchers.Literal("var").
		Then(dispatchers.Literal("set").Then(name().Then(dispatchers.Argument(ValueArg, arguments.AnyInteger()).Executes(SetVar)))).
		Then(dispatchers.Literal("get").Then(name().Executes(GetVar))).
		Then(dispatchers.Literal("add").Then(name().Then(dispatchers.Argument(AmountArg, arguments.AnyInteger()).Executes(AddVar)))).
		Then(dispatchers.Literal("unset").Then(name().Executes(UnsetVar))).
		Then(dispatchers.Literal("list").Executes(ListVars)))
	return d
}

func TestEcho(t *testing.T) {
	d := newScriptingTree()
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, result, err := testutil.Run(t, d, s, buf, `echo hello "quoted" world`)
	require.NoError(t, err)
	require.Equal(t, 1, result)
	require.Equal(t, "hello \"quoted\" world\n", out)
}

func TestCalc(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"calc add 2 3", 5},
		{"calc sub 2 3", -1},
		{"calc mul -4 3", -12},
		{"calc div 7 2", 3},
		{"calc mod 7 2", 1},
	}

	d := newScriptingTree()
	s, buf := testutil.NewSession(t, domain.DefaultUser)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, result, err := testutil.Run(t, d, s, buf, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, result)
		})
	}
}

func TestCalc_DivisionByZero(t *testing.T) {
	d := newScriptingTree()
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	for _, input := range []string{"calc div 1 0", "calc mod 1 0"} {
		_, _, err := testutil.Run(t, d, s, buf, input)
		require.True(t, usage.HasKind(err, usage.ErrCommandFailed), input)
		require.ErrorContains(t, err, "division by zero")
	}
}

func TestCalc_BadOperand(t *testing.T) {
	d := newScriptingTree()
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	_, _, err := testutil.Run(t, d, s, buf, "calc add 1 x")
	require.True(t, usage.HasKind(err, usage.ErrExpectedInt))
}

func TestVars_Lifecycle(t *testing.T) {
	d := newScriptingTree()
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, result, err := testutil.Run(t, d, s, buf, "var set x 10")
	require.NoError(t, err)
	require.Equal(t, 10, result)
	require.Equal(t, "x = 10\n", out)

	_, result, err = testutil.Run(t, d, s, buf, "var add x -3")
	require.NoError(t, err)
	require.Equal(t, 7, result)

	_, result, err = testutil.Run(t, d, s, buf, "var add fresh 2")
	require.NoError(t, err)
	require.Equal(t, 2, result)

	out, result, err = testutil.Run(t, d, s, buf, "var list")
	require.NoError(t, err)
	require.Equal(t, 2, result)
	require.Equal(t, "fresh = 2\nx = 7\n", out)

	out, result, err = testutil.Run(t, d, s, buf, "var get x")
	require.NoError(t, err)
	require.Equal(t, 7, result)
	require.Equal(t, "7\n", out)

	_, _, err = testutil.Run(t, d, s, buf, "var unset x")
	require.NoError(t, err)

	_, _, err = testutil.Run(t, d, s, buf, "var get x")
	require.True(t, usage.HasKind(err, usage.ErrCommandFailed))

	_, _, err = testutil.Run(t, d, s, buf, "var unset x")
	require.ErrorContains(t, err, "is not set")
}

func TestVars_PerUser(t *testing.T) {
	d := newScriptingTree()
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	_, _, err := testutil.Run(t, d, s, buf, "var set x 1")
	require.NoError(t, err)

	bob := s.As(domain.User{Name: "bob"})
	out, result, err := testutil.Run(t, d, bob, buf, "var list")
	require.NoError(t, err)
	require.Zero(t, result)
	require.Contains(t, out, "no variables set for bob")
}

func TestSuggestVarNames(t *testing.T) {
	d := newScriptingTree()
	s, buf := testutil.NewSession(t, domain.DefaultUser)
	for _, input := range []string{"var set apple 1", "var set apricot 2", "var set banana 3"} {
		_, _, err := testutil.Run(t, d, s, buf, input)
		require.NoError(t, err)
	}

	got, err := d.CompletionSuggestions(context.Background(), d.Parse("var get ap", s))
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "apricot"}, got.Texts())
}
