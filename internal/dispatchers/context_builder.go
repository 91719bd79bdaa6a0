package dispatchers

import (
	"errors"
	"maps"
	"slices"

	"github.com/footprint-tools/brig/internal/reader"
)

var errNoSuggestionContext = errors.New("can't find node before cursor")

// ContextBuilder accumulates the state of a parse in progress. The
// dispatcher copies it at every branch so sibling attempts never share state.
type ContextBuilder struct {
	source    any
	rootNode  *Node
	arguments map[string]ParsedArgument
	nodes     []ParsedCommandNode
	command   Command
	child     *ContextBuilder
	rng       reader.StringRange
	modifier  RedirectModifier
	forks     bool
}

// NewContextBuilder starts a parse rooted at root from offset start.
func NewContextBuilder(source any, root *Node, start int) *ContextBuilder {
	return &ContextBuilder{
		source:    source,
		rootNode:  root,
		arguments: make(map[string]ParsedArgument),
		rng:       reader.At(start),
	}
}

// Copy returns a builder that shares nothing mutable with b.
func (b *ContextBuilder) Copy() *ContextBuilder {
	out := *b
	out.arguments = maps.Clone(b.arguments)
	out.nodes = slices.Clone(b.nodes)
	return &out
}

func (b *ContextBuilder) WithSource(source any) *ContextBuilder {
	b.source = source
	return b
}

func (b *ContextBuilder) Source() any {
	return b.source
}

func (b *ContextBuilder) RootNode() *Node {
	return b.rootNode
}

func (b *ContextBuilder) WithArgument(name string, arg ParsedArgument) *ContextBuilder {
	b.arguments[name] = arg
	return b
}

func (b *ContextBuilder) Arguments() map[string]ParsedArgument {
	return b.arguments
}

func (b *ContextBuilder) WithCommand(cmd Command) *ContextBuilder {
	b.command = cmd
	return b
}

func (b *ContextBuilder) Command() Command {
	return b.command
}

// WithNode appends node, grows the range over r and takes the node's
// redirect behaviour.
func (b *ContextBuilder) WithNode(node *Node, r reader.StringRange) *ContextBuilder {
	b.nodes = append(b.nodes, ParsedCommandNode{Node: node, Range: r})
	b.rng = reader.Encompassing(b.rng, r)
	b.modifier = node.modifier
	b.forks = node.forks
	return b
}

func (b *ContextBuilder) Nodes() []ParsedCommandNode {
	return b.nodes
}

func (b *ContextBuilder) WithChild(child *ContextBuilder) *ContextBuilder {
	b.child = child
	return b
}

func (b *ContextBuilder) Child() *ContextBuilder {
	return b.child
}

func (b *ContextBuilder) LastChild() *ContextBuilder {
	result := b
	for result.child != nil {
		result = result.child
	}
	return result
}

func (b *ContextBuilder) Range() reader.StringRange {
	return b.rng
}

func (b *ContextBuilder) RedirectModifier() RedirectModifier {
	return b.modifier
}

func (b *ContextBuilder) IsForked() bool {
	return b.forks
}

// Build freezes the builder, and its children, against input.
func (b *ContextBuilder) Build(input string) *CommandContext {
	c := &CommandContext{
		source:    b.source,
		input:     input,
		arguments: maps.Clone(b.arguments),
		command:   b.command,
		rootNode:  b.rootNode,
		nodes:     slices.Clone(b.nodes),
		rng:       b.rng,
		modifier:  b.modifier,
		forks:     b.forks,
	}
	if b.child != nil {
		c.child = b.child.Build(input)
	}
	return c
}

// FindSuggestionContext locates the node whose children complete the input
// at cursor.
func (b *ContextBuilder) FindSuggestionContext(cursor int) (SuggestionContext, error) {
	if b.rng.Start > cursor {
		return SuggestionContext{}, errNoSuggestionContext
	}

	if b.rng.End < cursor {
		if b.child != nil {
			return b.child.FindSuggestionContext(cursor)
		}
		if len(b.nodes) > 0 {
			last := b.nodes[len(b.nodes)-1]
			return SuggestionContext{Parent: last.Node, StartPos: last.Range.End + 1}, nil
		}
		return SuggestionContext{Parent: b.rootNode, StartPos: b.rng.Start}, nil
	}

	prev := b.rootNode
	for _, node := range b.nodes {
		if node.Range.Start <= cursor && cursor <= node.Range.End {
			return SuggestionContext{Parent: prev, StartPos: node.Range.Start}, nil
		}
		prev = node.Node
	}
	return SuggestionContext{Parent: prev, StartPos: b.rng.Start}, nil
}
