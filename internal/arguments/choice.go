package arguments

import (
	"context"
	"slices"
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

// ChoiceType accepts one word out of a fixed set and suggests the set.
type ChoiceType struct {
	values []string
	source func() []string
}

// Choice accepts one of values.
func Choice(values ...string) *ChoiceType {
	return &ChoiceType{values: values}
}

// DynamicChoice accepts one of the values returned by source at parse time.
func DynamicChoice(source func() []string) *ChoiceType {
	return &ChoiceType{source: source}
}

// Values returns the accepted words.
func (c *ChoiceType) Values() []string {
	if c.source != nil {
		return c.source()
	}
	return c.values
}

func (c *ChoiceType) Parse(r *reader.StringReader) (any, error) {
	start := r.Cursor()
	v := r.ReadUnquotedString()
	values := c.Values()
	if !slices.Contains(values, v) {
		r.SetCursor(start)
		return nil, usage.InvalidChoice(r, v, values)
	}
	return v, nil
}

func (c *ChoiceType) ListSuggestions(_ context.Context, _ *dispatchers.CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
	for _, v := range c.Values() {
		if strings.HasPrefix(strings.ToLower(v), b.RemainingLowerCase()) {
			b.Suggest(v)
		}
	}
	return b.Build(), nil
}

func (c *ChoiceType) Examples() []string {
	values := c.Values()
	if len(values) > 3 {
		return values[:3]
	}
	return values
}

func (c *ChoiceType) String() string {
	return "choice(" + strings.Join(c.Values(), ", ") + ")"
}
