package dispatchers

import "context"

// Builder assembles a literal or argument node and its subtree.
//
// Builders are single use: Build shares the already built children with the
// returned node.
type Builder struct {
	kind    NodeKind
	name    string
	argType ArgumentType

	arguments         *Node
	command           Command
	requirement       Requirement
	target            *Node
	modifier          RedirectModifier
	forks             bool
	customSuggestions SuggestionProvider
	summary           string
	category          CommandCategory
}

// Literal starts a builder for the keyword name.
func Literal(name string) *Builder {
	return &Builder{kind: KindLiteral, name: name, arguments: NewRoot()}
}

// Argument starts a builder for an argument called name parsed by t.
func Argument(name string, t ArgumentType) *Builder {
	return &Builder{kind: KindArgument, name: name, argType: t, arguments: NewRoot()}
}

// Then adds child below the node being built.
func (b *Builder) Then(child *Builder) *Builder {
	return b.ThenNode(child.Build())
}

// ThenNode adds an already built node as a child.
func (b *Builder) ThenNode(child *Node) *Builder {
	if b.target != nil {
		panic("dispatchers: cannot add children to a redirected node")
	}
	b.arguments.AddChild(child)
	return b
}

// Executes sets the command run when input ends at this node.
func (b *Builder) Executes(cmd Command) *Builder {
	b.command = cmd
	return b
}

// Requires hides the node from sources that fail req.
func (b *Builder) Requires(req Requirement) *Builder {
	b.requirement = req
	return b
}

// Redirect continues parsing at target with the same source.
func (b *Builder) Redirect(target *Node) *Builder {
	return b.Forward(target, nil, false)
}

// RedirectWith continues parsing at target with the source chosen by m.
func (b *Builder) RedirectWith(target *Node, m SingleRedirectModifier) *Builder {
	var modifier RedirectModifier
	if m != nil {
		modifier = func(ctx context.Context, c *CommandContext) ([]any, error) {
			source, err := m(ctx, c)
			if err != nil {
				return nil, err
			}
			return []any{source}, nil
		}
	}
	return b.Forward(target, modifier, false)
}

// Fork continues at target once for every source m returns.
func (b *Builder) Fork(target *Node, m RedirectModifier) *Builder {
	return b.Forward(target, m, true)
}

// Forward sets the redirect target, modifier and fork flag at once.
func (b *Builder) Forward(target *Node, m RedirectModifier, fork bool) *Builder {
	if len(b.arguments.Children()) > 0 {
		panic("dispatchers: cannot forward a node with children")
	}
	b.target = target
	b.modifier = m
	b.forks = fork
	return b
}

// Suggests replaces the argument type's suggestions with p.
func (b *Builder) Suggests(p SuggestionProvider) *Builder {
	if b.kind != KindArgument {
		panic("dispatchers: only argument nodes take custom suggestions")
	}
	b.customSuggestions = p
	return b
}

// Describe sets the one-line summary shown by help.
func (b *Builder) Describe(summary string) *Builder {
	b.summary = summary
	return b
}

func (b *Builder) InCategory(c CommandCategory) *Builder {
	b.category = c
	return b
}

func (b *Builder) Name() string {
	return b.name
}

func (b *Builder) Arguments() []*Node {
	return b.arguments.Children()
}

func (b *Builder) Command() Command {
	return b.command
}

func (b *Builder) Requirement() Requirement {
	return b.requirement
}

func (b *Builder) RedirectTarget() *Node {
	return b.target
}

func (b *Builder) RedirectModifier() RedirectModifier {
	return b.modifier
}

func (b *Builder) IsFork() bool {
	return b.forks
}

// Build returns the node with its children attached.
func (b *Builder) Build() *Node {
	node := newNode(b.kind, b.name)
	node.argType = b.argType
	node.customSuggestions = b.customSuggestions
	node.command = b.command
	node.requirement = b.requirement
	node.redirect = b.target
	node.modifier = b.modifier
	node.forks = b.forks
	node.Summary = b.summary
	node.Category = b.category

	for _, child := range b.arguments.Children() {
		node.AddChild(child)
	}
	return node
}
