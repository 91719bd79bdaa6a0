package arguments

import (
	"context"
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
)

// StringKind selects how much input a string argument consumes.
type StringKind int

const (
	// SingleWord reads one unquoted token.
	SingleWord StringKind = iota
	// QuotablePhrase reads a quoted string or one unquoted token.
	QuotablePhrase
	// GreedyPhrase reads the rest of the input verbatim.
	GreedyPhrase
)

type stringType struct {
	kind StringKind
}

func Word() dispatchers.ArgumentType {
	return stringType{kind: SingleWord}
}

func Quotable() dispatchers.ArgumentType {
	return stringType{kind: QuotablePhrase}
}

func Greedy() dispatchers.ArgumentType {
	return stringType{kind: GreedyPhrase}
}

// Kind returns the string flavour.
func (s stringType) Kind() StringKind {
	return s.kind
}

func (s stringType) Parse(r *reader.StringReader) (any, error) {
	switch s.kind {
	case GreedyPhrase:
		text := r.Remaining()
		r.SetCursor(r.TotalLength())
		return text, nil
	case SingleWord:
		return r.ReadUnquotedString(), nil
	default:
		v, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (stringType) ListSuggestions(context.Context, *dispatchers.CommandContext, *suggestion.Builder) (suggestion.Suggestions, error) {
	return suggestion.Empty(), nil
}

func (s stringType) Examples() []string {
	switch s.kind {
	case GreedyPhrase:
		return []string{"word", "words with spaces", `"and symbols"`}
	case SingleWord:
		return []string{"word", "words_with_underscores"}
	default:
		return []string{`"quoted phrase"`, "word", `""`}
	}
}

func (s stringType) String() string {
	switch s.kind {
	case GreedyPhrase:
		return "string(greedy)"
	case SingleWord:
		return "string(word)"
	default:
		return "string(quotable)"
	}
}

// EscapeIfRequired returns input unchanged when it can be read back as an
// unquoted string, otherwise quoted with backslashes and quotes escaped.
func EscapeIfRequired(input string) string {
	for i := 0; i < len(input); i++ {
		if !reader.IsAllowedInUnquotedString(input[i]) {
			return escape(input)
		}
	}
	return input
}

func escape(input string) string {
	var b strings.Builder
	b.Grow(len(input) + 2)
	b.WriteByte('"')
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func GetString(c *dispatchers.CommandContext, name string) (string, error) {
	return dispatchers.ArgumentAs[string](c, name)
}
