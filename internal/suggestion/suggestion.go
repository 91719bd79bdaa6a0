// Package suggestion holds the completion candidates produced for partial
// command input and the rules for merging them.
package suggestion

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/brig/internal/reader"
)

// Suggestion replaces Range of the input with Text.
// Integer suggestions order numerically among themselves.
type Suggestion struct {
	Range   reader.StringRange
	Text    string
	Tooltip string

	numeric bool
	value   int
}

// New returns a text suggestion.
func New(r reader.StringRange, text string) Suggestion {
	return Suggestion{Range: r, Text: text}
}

// NewWithTooltip returns a text suggestion with a tooltip.
func NewWithTooltip(r reader.StringRange, text, tooltip string) Suggestion {
	return Suggestion{Range: r, Text: text, Tooltip: tooltip}
}

// NewInt returns a suggestion whose text is the decimal form of value.
func NewInt(r reader.StringRange, value int, tooltip string) Suggestion {
	return Suggestion{Range: r, Text: strconv.Itoa(value), Tooltip: tooltip, numeric: true, value: value}
}

// IsInt reports whether s was created by NewInt, and its value.
func (s Suggestion) IsInt() (int, bool) {
	return s.value, s.numeric
}

// Apply returns input with the suggestion's range replaced by its text.
func (s Suggestion) Apply(input string) string {
	if s.Range.Start == 0 && s.Range.End == len(input) {
		return s.Text
	}
	var b strings.Builder
	b.WriteString(input[:s.Range.Start])
	b.WriteString(s.Text)
	if s.Range.End < len(input) {
		b.WriteString(input[s.Range.End:])
	}
	return b.String()
}

// Expand widens the suggestion to r, filling the gap from command.
func (s Suggestion) Expand(command string, r reader.StringRange) Suggestion {
	if r == s.Range {
		return s
	}
	var b strings.Builder
	if r.Start < s.Range.Start {
		b.WriteString(command[r.Start:s.Range.Start])
	}
	b.WriteString(s.Text)
	if r.End > s.Range.End {
		b.WriteString(command[s.Range.End:r.End])
	}
	return Suggestion{Range: r, Text: b.String(), Tooltip: s.Tooltip}
}

// compareIgnoreCase orders two suggestions for display.
func compareIgnoreCase(a, b Suggestion) int {
	if a.numeric && b.numeric {
		return cmp.Compare(a.value, b.value)
	}
	return strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
}

// Suggestions is a set of candidates sharing one input range.
type Suggestions struct {
	Range reader.StringRange
	List  []Suggestion
}

// Empty returns the empty set anchored at 0.
func Empty() Suggestions {
	return Suggestions{Range: reader.At(0)}
}

func (s Suggestions) IsEmpty() bool {
	return len(s.List) == 0
}

// Texts returns the suggestion texts in order.
func (s Suggestions) Texts() []string {
	out := make([]string, len(s.List))
	for i, sg := range s.List {
		out[i] = sg.Text
	}
	return out
}

// Merge combines several result sets computed over the same command.
func Merge(command string, input []Suggestions) Suggestions {
	switch len(input) {
	case 0:
		return Empty()
	case 1:
		return input[0]
	}

	var all []Suggestion
	for _, s := range input {
		all = append(all, s.List...)
	}
	return Create(command, all)
}

// Create expands every suggestion to the union of their ranges, removes
// duplicates and sorts them case-insensitively.
func Create(command string, list []Suggestion) Suggestions {
	if len(list) == 0 {
		return Empty()
	}

	r := list[0].Range
	for _, s := range list[1:] {
		r = reader.Encompassing(r, s.Range)
	}

	seen := make(map[Suggestion]struct{}, len(list))
	out := make([]Suggestion, 0, len(list))
	for _, s := range list {
		e := s.Expand(command, r)
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	slices.SortStableFunc(out, compareIgnoreCase)
	return Suggestions{Range: r, List: out}
}
