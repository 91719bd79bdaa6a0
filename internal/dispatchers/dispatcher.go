package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

const (
	ArgumentSeparator       = ' '
	ArgumentSeparatorString = " "
)

// ResultConsumer observes every command that completes or fails during a
// dispatch. It runs synchronously on the dispatching goroutine.
type ResultConsumer func(c *CommandContext, success bool, result int)

// Dispatcher parses and executes input against a command tree.
type Dispatcher struct {
	root     *Node
	consumer ResultConsumer
	logger   domain.Logger
}

type Option func(*Dispatcher)

// WithRoot uses an existing tree instead of a fresh root.
func WithRoot(root *Node) Option {
	return func(d *Dispatcher) {
		d.root = root
	}
}

func WithResultConsumer(fn ResultConsumer) Option {
	return func(d *Dispatcher) {
		d.consumer = fn
	}
}

func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New returns a dispatcher over an empty root unless WithRoot is given.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		root:     NewRoot(),
		consumer: func(*CommandContext, bool, int) {},
		logger:   log.NopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Root() *Node {
	return d.root
}

// Register builds b and adds it under the root, merging with any existing
// command of the same name.
func (d *Dispatcher) Register(b *Builder) *Node {
	node := b.Build()
	d.root.AddChild(node)
	return d.root.Child(node.Name())
}

func (d *Dispatcher) SetResultConsumer(fn ResultConsumer) {
	if fn == nil {
		fn = func(*CommandContext, bool, int) {}
	}
	d.consumer = fn
}

// Parse parses input for source without running anything.
func (d *Dispatcher) Parse(input string, source any) ParseResults {
	return d.ParseReader(reader.New(input), source)
}

// ParseReader parses from the reader's cursor. The reader is not modified.
func (d *Dispatcher) ParseReader(r *reader.StringReader, source any) ParseResults {
	b := NewContextBuilder(source, d.root, r.Cursor())
	results := d.parseNodes(d.root, r, b)
	d.logger.Debug("dispatch: parsed %q up to %d of %d (%d errors)",
		r.String(), results.Reader.Cursor(), results.Reader.TotalLength(), len(results.Errors))
	return results
}

func (d *Dispatcher) parseNodes(node *Node, original *reader.StringReader, soFar *ContextBuilder) ParseResults {
	source := soFar.Source()
	var errs map[*Node]*usage.Error
	var potentials []ParseResults

	for _, child := range node.RelevantNodes(original) {
		if !child.CanUse(source) {
			continue
		}

		b := soFar.Copy()
		r := original.Clone()

		if err := parseChild(child, r, b); err != nil {
			if errs == nil {
				errs = make(map[*Node]*usage.Error)
			}
			errs[child] = err
			continue
		}

		b.WithCommand(child.Command())

		need := 2
		if child.Redirect() != nil {
			need = 1
		}
		if !r.CanReadN(need) {
			potentials = append(potentials, ParseResults{Context: b, Reader: r, Errors: map[*Node]*usage.Error{}})
			continue
		}

		r.Skip()
		if target := child.Redirect(); target != nil {
			sub := d.parseNodes(target, r, NewContextBuilder(source, target, r.Cursor()))
			b.WithChild(sub.Context)
			return ParseResults{Context: b, Reader: sub.Reader, Errors: sub.Errors}
		}
		potentials = append(potentials, d.parseNodes(child, r, b))
	}

	if len(potentials) == 0 {
		if errs == nil {
			errs = map[*Node]*usage.Error{}
		}
		return ParseResults{Context: soFar, Reader: original, Errors: errs}
	}

	if len(potentials) > 1 {
		slices.SortStableFunc(potentials, comparePotentials)
	}
	return potentials[0]
}

// comparePotentials prefers results that consumed all input, then results
// without errors.
func comparePotentials(a, b ParseResults) int {
	if !a.Reader.CanRead() && b.Reader.CanRead() {
		return -1
	}
	if a.Reader.CanRead() && !b.Reader.CanRead() {
		return 1
	}
	if len(a.Errors) == 0 && len(b.Errors) > 0 {
		return -1
	}
	if len(a.Errors) > 0 && len(b.Errors) == 0 {
		return 1
	}
	return 0
}

// parseChild parses one child and checks it ends on a separator. Failures of
// any kind come back as usage errors.
func parseChild(child *Node, r *reader.StringReader, b *ContextBuilder) (perr *usage.Error) {
	defer func() {
		if rec := recover(); rec != nil {
			perr = usage.ParseException(r, fmt.Sprint(rec))
		}
	}()

	if err := child.Parse(r, b); err != nil {
		if ue, ok := usage.As(err); ok {
			return ue
		}
		return usage.ParseException(r, err.Error())
	}
	if r.CanRead() && r.Peek() != ArgumentSeparator {
		return usage.ExpectedSeparator(r)
	}
	return nil
}

// ExecuteInput parses and executes input in one step.
func (d *Dispatcher) ExecuteInput(ctx context.Context, input string, source any) (int, error) {
	return d.Execute(ctx, d.Parse(input, source))
}

// Execute runs previously parsed input.
//
// Redirect modifiers and commands run breadth first, one context at a time.
// Without a fork the first error aborts and the results of all commands are
// summed. Once forked, usage errors are reported to the result consumer and
// skipped, and the number of successful commands is returned. Errors that
// are not usage errors always abort.
func (d *Dispatcher) Execute(ctx context.Context, parse ParseResults) (int, error) {
	if err := parse.Err(); err != nil {
		return 0, err
	}

	result := 0
	successfulForks := 0
	forked := false
	foundCommand := false
	original := parse.Context.Build(parse.Reader.String())

	contexts := []*CommandContext{original}
	for len(contexts) > 0 {
		var next []*CommandContext

		for _, c := range contexts {
			if err := ctx.Err(); err != nil {
				return 0, err
			}

			if child := c.Child(); child != nil {
				forked = forked || c.IsForked()
				if !child.HasNodes() {
					continue
				}
				foundCommand = true

				modifier := c.RedirectModifier()
				if modifier == nil {
					next = append(next, child.CopyFor(c.Source()))
					continue
				}

				sources, err := modifier(ctx, c)
				if err != nil {
					if !isUsageError(err) {
						return 0, err
					}
					d.consumer(c, false, 0)
					if !forked {
						return 0, err
					}
					d.logger.Debug("dispatch: redirect in fork failed: %v", err)
					continue
				}
				for _, source := range sources {
					next = append(next, child.CopyFor(source))
				}
				continue
			}

			cmd := c.Command()
			if cmd == nil {
				continue
			}
			foundCommand = true

			value, err := cmd(ctx, c)
			if err != nil {
				if !isUsageError(err) {
					return 0, err
				}
				d.consumer(c, false, 0)
				if !forked {
					return 0, err
				}
				d.logger.Debug("dispatch: command in fork failed: %v", err)
				continue
			}
			result += value
			d.consumer(c, true, value)
			successfulForks++
		}

		contexts = next
	}

	if !foundCommand {
		d.consumer(original, false, 0)
		return 0, usage.UnknownCommand(parse.Reader)
	}
	if forked {
		return successfulForks, nil
	}
	return result, nil
}

func isUsageError(err error) bool {
	var ue *usage.Error
	return errors.As(err, &ue)
}

// CompletionSuggestions completes the parsed input at its end.
func (d *Dispatcher) CompletionSuggestions(ctx context.Context, parse ParseResults) (suggestion.Suggestions, error) {
	return d.CompletionSuggestionsAt(ctx, parse, parse.Reader.TotalLength())
}

// CompletionSuggestionsAt completes the parsed input at cursor. Every child
// of the suggestion node is asked concurrently; a child that fails
// contributes nothing.
func (d *Dispatcher) CompletionSuggestionsAt(ctx context.Context, parse ParseResults, cursor int) (suggestion.Suggestions, error) {
	full := parse.Reader.String()
	cursor = max(0, min(cursor, len(full)))

	sc, err := parse.Context.FindSuggestionContext(cursor)
	if err != nil {
		return suggestion.Empty(), err
	}

	start := min(sc.StartPos, cursor)
	truncated := full[:cursor]
	truncatedLower := suggestion.Lower(truncated)
	built := parse.Context.Build(truncated)

	children := sc.Parent.Children()
	results := make([]suggestion.Suggestions, len(children))

	g, gctx := errgroup.WithContext(ctx)
	for i, node := range children {
		g.Go(func() error {
			b := suggestion.NewBuilderLower(truncated, truncatedLower, start)
			s, err := listSuggestions(gctx, node, built, b)
			if err != nil {
				d.logger.Debug("dispatch: suggestions for %s failed: %v", node, err)
				s = suggestion.Empty()
			}
			results[i] = s
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return suggestion.Empty(), err
	}
	return suggestion.Merge(full, results), nil
}

func listSuggestions(ctx context.Context, node *Node, c *CommandContext, b *suggestion.Builder) (s suggestion.Suggestions, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("suggestion provider panicked: %v", rec)
		}
	}()
	return node.ListSuggestions(ctx, c, b)
}

// Path returns the names leading from the root to target, or nil when
// target is not in the tree.
func (d *Dispatcher) Path(target *Node) []string {
	var paths [][]*Node
	addPaths(d.root, nil, &paths)

	for _, list := range paths {
		if list[len(list)-1] != target {
			continue
		}
		out := make([]string, 0, len(list))
		for _, node := range list {
			if node != d.root {
				out = append(out, node.Name())
			}
		}
		return out
	}
	return nil
}

func addPaths(node *Node, parents []*Node, out *[][]*Node) {
	current := append(slices.Clone(parents), node)
	*out = append(*out, current)
	for _, child := range node.Children() {
		addPaths(child, current, out)
	}
}

// FindNode follows path from the root by child name.
func (d *Dispatcher) FindNode(path []string) *Node {
	node := d.root
	for _, name := range path {
		node = node.Child(name)
		if node == nil {
			return nil
		}
	}
	return node
}

// JoinPath renders a path the way it is typed.
func JoinPath(path []string) string {
	return strings.Join(path, ArgumentSeparatorString)
}
