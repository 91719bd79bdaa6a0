package arguments

import (
	"context"
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
)

type boolType struct{}

// Bool accepts exactly true or false.
func Bool() dispatchers.ArgumentType {
	return boolType{}
}

func (boolType) Parse(r *reader.StringReader) (any, error) {
	v, err := r.ReadBoolean()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (boolType) ListSuggestions(_ context.Context, _ *dispatchers.CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
	for _, s := range []string{"true", "false"} {
		if strings.HasPrefix(s, b.RemainingLowerCase()) {
			b.Suggest(s)
		}
	}
	return b.Build(), nil
}

func (boolType) Examples() []string {
	return []string{"true", "false"}
}

func (boolType) String() string {
	return "bool()"
}

func GetBool(c *dispatchers.CommandContext, name string) (bool, error) {
	return dispatchers.ArgumentAs[bool](c, name)
}
