package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func denied(any) bool { return false }

func usageDispatcher() *Dispatcher {
	d := New()
	d.Register(Literal("a").
		Then(Literal("1").Then(Literal("i").Executes(returns(1))).Then(Literal("ii").Executes(returns(1)))).
		Then(Literal("2").Then(Literal("i").Executes(returns(1))).Then(Literal("ii").Executes(returns(1)))))
	d.Register(Literal("b").Then(Literal("1").Executes(returns(1))))
	d.Register(Literal("c").Executes(returns(1)))
	d.Register(Literal("d").Requires(denied).Executes(returns(1)))
	d.Register(Literal("e").Executes(returns(1)).
		Then(Literal("1").Executes(returns(1)).Then(Literal("i").Executes(returns(1))).Then(Literal("ii").Executes(returns(1)))))
	d.Register(Literal("f").
		Then(Literal("1").Then(Literal("i").Executes(returns(1))).Then(Literal("ii").Executes(returns(1)).Requires(denied))).
		Then(Literal("2").Then(Literal("i").Executes(returns(1)).Requires(denied)).Then(Literal("ii").Executes(returns(1)))))
	d.Register(Literal("g").Executes(returns(1)).
		Then(Literal("1").Then(Literal("i").Executes(returns(1)))))
	d.Register(Literal("h").Executes(returns(1)).
		Then(Literal("1").Then(Literal("i").Executes(returns(1)))).
		Then(Literal("2").Then(Literal("i").Then(Literal("ii").Executes(returns(1))))).
		Then(Literal("3").Executes(returns(1))))
	d.Register(Literal("i").Executes(returns(1)).
		Then(Literal("1").Executes(returns(1))).
		Then(Literal("2").Executes(returns(1))))
	d.Register(Literal("j").Redirect(d.Root()))
	d.Register(Literal("k").Redirect(d.FindNode([]string{"h"})))
	return d
}

func TestDispatcher_AllUsage(t *testing.T) {
	d := usageDispatcher()

	got := d.AllUsage(d.Root(), nil, true)
	require.Equal(t, []string{
		"a 1 i", "a 1 ii", "a 2 i", "a 2 ii",
		"b 1",
		"c",
		"e", "e 1", "e 1 i", "e 1 ii",
		"f 1 i", "f 2 ii",
		"g", "g 1 i",
		"h", "h 1 i", "h 2 i ii", "h 3",
		"i", "i 1", "i 2",
		"j ...",
		"k -> h",
	}, got)

	unrestricted := d.AllUsage(d.Root(), nil, false)
	require.Contains(t, unrestricted, "d")
	require.Contains(t, unrestricted, "f 1 ii")
}

func TestDispatcher_SmartUsage(t *testing.T) {
	d := usageDispatcher()

	got := make(map[string]string)
	var order []string
	for _, u := range d.SmartUsage(d.Root(), nil) {
		got[u.Node.Name()] = u.Text
		order = append(order, u.Node.Name())
	}

	require.Equal(t, map[string]string{
		"a": "a (1|2)",
		"b": "b 1",
		"c": "c",
		"e": "e [1]",
		"f": "f (1|2)",
		"g": "g [1]",
		"h": "h [1|2|3]",
		"i": "i [1|2]",
		"j": "j ...",
		"k": "k -> h",
	}, got)
	require.Equal(t, []string{"a", "b", "c", "e", "f", "g", "h", "i", "j", "k"}, order)
}

func TestDispatcher_SmartUsageSubcommand(t *testing.T) {
	d := usageDispatcher()

	got := d.SmartUsage(d.FindNode([]string{"h"}), nil)
	texts := make([]string, len(got))
	for i, u := range got {
		texts[i] = u.Text
	}
	require.Equal(t, []string{"[1] i", "[2] i ii", "[3]"}, texts)
}

func TestDispatcher_UsageOptionalArgument(t *testing.T) {
	d := New()
	d.Register(Literal("foo").Executes(returns(1)).Then(Argument("int", intType{}).Executes(returns(1))))

	smart := d.SmartUsage(d.Root(), nil)
	require.Len(t, smart, 1)
	require.Equal(t, "foo [<int>]", smart[0].Text)

	require.Equal(t, []string{"foo", "foo <int>"}, d.AllUsage(d.Root(), nil, false))
}
