package dispatchers

import (
	"context"
	"strings"

	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

// Command runs a fully parsed command and returns its integer result.
// Returning a *usage.Error marks a syntax-category failure that forked
// dispatches tolerate; any other error always aborts the dispatch.
type Command func(ctx context.Context, c *CommandContext) (int, error)

// Requirement decides whether a source may use a node.
type Requirement func(source any) bool

// RedirectModifier maps the context reaching a redirect to the sources the
// redirected subtree runs for. Returning several sources forks the dispatch.
type RedirectModifier func(ctx context.Context, c *CommandContext) ([]any, error)

// SingleRedirectModifier swaps the source of a redirect.
type SingleRedirectModifier func(ctx context.Context, c *CommandContext) (any, error)

// SuggestionProvider overrides an argument type's own suggestions.
type SuggestionProvider func(ctx context.Context, c *CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error)

// ArgumentType parses one typed argument. Implementations live in the
// arguments package.
type ArgumentType interface {
	Parse(r *reader.StringReader) (any, error)
	ListSuggestions(ctx context.Context, c *CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error)
	Examples() []string
}

type NodeKind int

const (
	KindRoot NodeKind = iota
	KindLiteral
	KindArgument
)

// Node is one vertex of the command tree: the root, a literal keyword or a
// typed argument.
//
// Children keep insertion order for usage text and are looked up by name.
// A redirect is a plain pointer to a node that the tree does not own; it may
// point back at the root or an ancestor. Children of a redirected node are
// never reached.
type Node struct {
	kind NodeKind
	name string

	argType           ArgumentType
	customSuggestions SuggestionProvider

	children  map[string]*Node
	literals  map[string]*Node
	arguments []*Node
	order     []*Node

	command     Command
	requirement Requirement
	redirect    *Node
	modifier    RedirectModifier
	forks       bool

	Summary  string
	Category CommandCategory
}

// NewRoot returns an empty root node.
func NewRoot() *Node {
	return newNode(KindRoot, "")
}

func newNode(kind NodeKind, name string) *Node {
	return &Node{
		kind:     kind,
		name:     name,
		children: make(map[string]*Node),
		literals: make(map[string]*Node),
	}
}

func (n *Node) Kind() NodeKind {
	return n.kind
}

// Name is the literal text, the argument name, or "" for the root.
func (n *Node) Name() string {
	return n.name
}

func (n *Node) Command() Command {
	return n.command
}

func (n *Node) Redirect() *Node {
	return n.redirect
}

func (n *Node) RedirectModifier() RedirectModifier {
	return n.modifier
}

func (n *Node) IsFork() bool {
	return n.forks
}

func (n *Node) Requirement() Requirement {
	return n.requirement
}

// Type returns the argument type of an argument node.
func (n *Node) Type() ArgumentType {
	return n.argType
}

func (n *Node) CustomSuggestions() SuggestionProvider {
	return n.customSuggestions
}

// Children returns the children in insertion order. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.order
}

func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// CanUse reports whether source passes the node's requirement.
func (n *Node) CanUse(source any) bool {
	if n.requirement == nil {
		return true
	}
	return n.requirement(source)
}

// AddChild attaches child. A child with the same name as an existing one is
// merged into it: its command wins and its own children are added recursively.
func (n *Node) AddChild(child *Node) {
	if child.kind == KindRoot {
		panic("dispatchers: cannot add a root node as a child")
	}

	if existing, ok := n.children[child.name]; ok {
		if child.command != nil {
			existing.command = child.command
		}
		if existing.Summary == "" {
			existing.Summary = child.Summary
		}
		if existing.Category == CategoryUncategorized {
			existing.Category = child.Category
		}
		for _, grandchild := range child.order {
			existing.AddChild(grandchild)
		}
		return
	}

	n.children[child.name] = child
	n.order = append(n.order, child)

	switch child.kind {
	case KindLiteral:
		n.literals[child.name] = child
	case KindArgument:
		n.arguments = append(n.arguments, child)
	}
}

// RelevantNodes returns the children worth trying at the reader's position.
// A literal child that spells the next token exactly is the only candidate.
// Otherwise every argument child is tried, along with literals that are a
// prefix of the token so a missing separator is reported as such. The reader
// is left where it was.
func (n *Node) RelevantNodes(r *reader.StringReader) []*Node {
	if len(n.literals) == 0 {
		return n.arguments
	}

	cursor := r.Cursor()
	for r.CanRead() && r.Peek() != ArgumentSeparator {
		r.Skip()
	}
	text := r.String()[cursor:r.Cursor()]
	r.SetCursor(cursor)

	if literal, ok := n.literals[text]; ok {
		return []*Node{literal}
	}

	var relevant []*Node
	for _, child := range n.order {
		if child.kind == KindLiteral && strings.HasPrefix(text, child.name) && child.name != "" {
			relevant = append(relevant, child)
		}
	}
	if relevant == nil {
		return n.arguments
	}
	return append(relevant, n.arguments...)
}

// Parse consumes this node's token and records it on b. The separator that
// must follow is checked by the dispatcher.
func (n *Node) Parse(r *reader.StringReader, b *ContextBuilder) error {
	switch n.kind {
	case KindLiteral:
		start := r.Cursor()
		if !r.CanReadN(len(n.name)) || r.String()[start:start+len(n.name)] != n.name {
			return usage.LiteralIncorrect(r, n.name)
		}
		r.SetCursor(start + len(n.name))
		b.WithNode(n, reader.Between(start, r.Cursor()))
		return nil

	case KindArgument:
		start := r.Cursor()
		value, err := n.argType.Parse(r)
		if err != nil {
			return err
		}
		parsed := ParsedArgument{Range: reader.Between(start, r.Cursor()), Value: value}
		b.WithArgument(n.name, parsed)
		b.WithNode(n, parsed.Range)
		return nil
	}
	return nil
}

// parseLiteral returns the end offset of the literal or -1 when the input
// does not start with the literal followed by a separator or the end.
func (n *Node) parseLiteral(r *reader.StringReader) int {
	start := r.Cursor()
	if !r.CanReadN(len(n.name)) {
		return -1
	}

	end := start + len(n.name)
	if r.String()[start:end] != n.name {
		return -1
	}

	r.SetCursor(end)
	if !r.CanRead() || r.Peek() == ArgumentSeparator {
		return end
	}
	r.SetCursor(start)
	return -1
}

// ListSuggestions returns completions for the text the builder is anchored on.
func (n *Node) ListSuggestions(ctx context.Context, c *CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
	switch n.kind {
	case KindLiteral:
		if strings.HasPrefix(strings.ToLower(n.name), b.RemainingLowerCase()) {
			return b.Suggest(n.name).Build(), nil
		}
	case KindArgument:
		if n.customSuggestions != nil {
			return n.customSuggestions(ctx, c, b)
		}
		return n.argType.ListSuggestions(ctx, c, b)
	}
	return suggestion.Empty(), nil
}

// IsValidInput reports whether input alone would be accepted by this node.
func (n *Node) IsValidInput(input string) bool {
	r := reader.New(input)
	switch n.kind {
	case KindLiteral:
		return n.parseLiteral(r) > -1
	case KindArgument:
		if _, err := n.argType.Parse(r); err != nil {
			return false
		}
		return !r.CanRead() || r.Peek() == ArgumentSeparator
	}
	return false
}

// UsageText is how the node appears in usage strings.
func (n *Node) UsageText() string {
	switch n.kind {
	case KindLiteral:
		return n.name
	case KindArgument:
		return "<" + n.name + ">"
	}
	return ""
}

// Examples returns sample inputs the node accepts.
func (n *Node) Examples() []string {
	switch n.kind {
	case KindLiteral:
		return []string{n.name}
	case KindArgument:
		return n.argType.Examples()
	}
	return nil
}

func (n *Node) String() string {
	switch n.kind {
	case KindLiteral:
		return "<literal " + n.name + ">"
	case KindArgument:
		return "<argument " + n.name + ">"
	}
	return "<root>"
}
