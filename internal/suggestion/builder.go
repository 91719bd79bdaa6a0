package suggestion

import (
	"unicode"
	"unicode/utf8"

	"github.com/footprint-tools/brig/internal/reader"
)

// Builder collects suggestions for the text between Start and the end of input.
type Builder struct {
	input          string
	inputLowerCase string
	start          int
	result         []Suggestion
}

// NewBuilder anchors a builder at start.
func NewBuilder(input string, start int) *Builder {
	return NewBuilderLower(input, Lower(input), start)
}

// NewBuilderLower is NewBuilder with a precomputed lower-case input, shared
// by every node asked for suggestions on the same line.
func NewBuilderLower(input, inputLowerCase string, start int) *Builder {
	return &Builder{input: input, inputLowerCase: inputLowerCase, start: start}
}

func (b *Builder) Input() string {
	return b.input
}

func (b *Builder) Start() int {
	return b.start
}

// Remaining is the text the suggestions will replace.
func (b *Builder) Remaining() string {
	return b.input[b.start:]
}

func (b *Builder) RemainingLowerCase() string {
	return b.inputLowerCase[b.start:]
}

// Suggest adds text unless it equals what is already typed.
func (b *Builder) Suggest(text string) *Builder {
	return b.SuggestWithTooltip(text, "")
}

func (b *Builder) SuggestWithTooltip(text, tooltip string) *Builder {
	if text == b.Remaining() {
		return b
	}
	b.result = append(b.result, NewWithTooltip(reader.Between(b.start, len(b.input)), text, tooltip))
	return b
}

func (b *Builder) SuggestInt(value int) *Builder {
	return b.SuggestIntWithTooltip(value, "")
}

func (b *Builder) SuggestIntWithTooltip(value int, tooltip string) *Builder {
	b.result = append(b.result, NewInt(reader.Between(b.start, len(b.input)), value, tooltip))
	return b
}

// Add appends everything other has collected.
func (b *Builder) Add(other *Builder) *Builder {
	b.result = append(b.result, other.result...)
	return b
}

// CreateOffset returns an empty builder over the same input anchored at start.
func (b *Builder) CreateOffset(start int) *Builder {
	return NewBuilderLower(b.input, b.inputLowerCase, start)
}

// Restart returns an empty builder with the same anchor.
func (b *Builder) Restart() *Builder {
	return b.CreateOffset(b.start)
}

func (b *Builder) Build() Suggestions {
	return Create(b.input, b.result)
}

// Lower lower-cases s without changing its byte length, so offsets into s
// stay valid in the result. Runes whose lower-case form encodes to a
// different width are left alone.
func Lower(s string) string {
	out := []byte(s)
	for i := 0; i < len(out); {
		r, size := utf8.DecodeRune(out[i:])
		if l := unicode.ToLower(r); l != r && utf8.RuneLen(l) == size {
			utf8.EncodeRune(out[i:], l)
		}
		i += size
	}
	return string(out)
}
