package dispatchers

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/footprint-tools/brig/internal/reader"
)

// ParsedArgument is a typed value together with the input it came from.
type ParsedArgument struct {
	Range reader.StringRange
	Value any
}

// ParsedCommandNode records which input range matched which node.
type ParsedCommandNode struct {
	Node  *Node
	Range reader.StringRange
}

// SuggestionContext names the node whose children should complete the input
// and the offset completions start at.
type SuggestionContext struct {
	Parent   *Node
	StartPos int
}

// CommandContext is the immutable result of a parse, handed to commands and
// redirect modifiers. Child links to the context of a redirected subtree.
type CommandContext struct {
	source    any
	input     string
	arguments map[string]ParsedArgument
	command   Command
	rootNode  *Node
	nodes     []ParsedCommandNode
	rng       reader.StringRange
	child     *CommandContext
	modifier  RedirectModifier
	forks     bool
}

// CopyFor returns the context with its source replaced. The receiver is
// returned as is when source is the same value.
func (c *CommandContext) CopyFor(source any) *CommandContext {
	if sameSource(c.source, source) {
		return c
	}
	out := *c
	out.source = source
	return &out
}

// sameSource compares sources without panicking on uncomparable dynamic types.
func sameSource(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func (c *CommandContext) Child() *CommandContext {
	return c.child
}

// LastChild follows child links to the innermost context.
func (c *CommandContext) LastChild() *CommandContext {
	result := c
	for result.child != nil {
		result = result.child
	}
	return result
}

func (c *CommandContext) Command() Command {
	return c.command
}

func (c *CommandContext) Source() any {
	return c.source
}

func (c *CommandContext) Input() string {
	return c.input
}

func (c *CommandContext) RootNode() *Node {
	return c.rootNode
}

func (c *CommandContext) Nodes() []ParsedCommandNode {
	return c.nodes
}

func (c *CommandContext) HasNodes() bool {
	return len(c.nodes) > 0
}

func (c *CommandContext) Range() reader.StringRange {
	return c.rng
}

func (c *CommandContext) RedirectModifier() RedirectModifier {
	return c.modifier
}

func (c *CommandContext) IsForked() bool {
	return c.forks
}

// Arguments returns a copy of the parsed arguments keyed by name.
func (c *CommandContext) Arguments() map[string]ParsedArgument {
	return maps.Clone(c.arguments)
}

// Argument returns the raw value parsed for name.
func (c *CommandContext) Argument(name string) (any, error) {
	arg, ok := c.arguments[name]
	if !ok {
		return nil, fmt.Errorf("no such argument '%s' exists on this command", name)
	}
	return arg.Value, nil
}

// HasArgument reports whether name was parsed, for optional trailing arguments.
func (c *CommandContext) HasArgument(name string) bool {
	_, ok := c.arguments[name]
	return ok
}

// ArgumentAs returns the value parsed for name as a T.
func ArgumentAs[T any](c *CommandContext, name string) (T, error) {
	var zero T
	raw, err := c.Argument(name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("argument '%s' is defined as %T, not %T", name, raw, zero)
	}
	return v, nil
}
