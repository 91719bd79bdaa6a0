// Package reader provides a cursor-based scanner over command input.
//
// All typed reads restore the cursor when they fail, so a caller can try
// another interpretation of the same input without copying the reader.
// Offsets are byte offsets; every character the scanner treats specially is
// ASCII, so multi-byte UTF-8 content passes through quoted strings untouched.
package reader

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/brig/internal/usage"
)

const (
	escape      = '\\'
	doubleQuote = '"'
	singleQuote = '\''
)

// StringReader reads tokens from an immutable string.
// Invariant: 0 <= cursor <= len(input).
type StringReader struct {
	input  string
	cursor int
}

// New creates a reader positioned at the start of input.
func New(input string) *StringReader {
	return &StringReader{input: input}
}

// Clone returns an independent reader at the same position.
func (r *StringReader) Clone() *StringReader {
	return &StringReader{input: r.input, cursor: r.cursor}
}

// String returns the full input, regardless of the cursor.
func (r *StringReader) String() string {
	return r.input
}

func (r *StringReader) Cursor() int {
	return r.cursor
}

// SetCursor moves the cursor, clamping it into [0, len(input)].
func (r *StringReader) SetCursor(cursor int) {
	r.cursor = max(0, min(cursor, len(r.input)))
}

func (r *StringReader) TotalLength() int {
	return len(r.input)
}

func (r *StringReader) RemainingLength() int {
	return len(r.input) - r.cursor
}

// Read returns the consumed part of the input.
func (r *StringReader) Read() string {
	return r.input[:r.cursor]
}

// Remaining returns the unconsumed part of the input.
func (r *StringReader) Remaining() string {
	return r.input[r.cursor:]
}

// CanReadN reports whether n more bytes are available.
func (r *StringReader) CanReadN(n int) bool {
	return r.cursor+n <= len(r.input)
}

func (r *StringReader) CanRead() bool {
	return r.CanReadN(1)
}

// Peek returns the byte under the cursor. The caller must check CanRead first.
func (r *StringReader) Peek() byte {
	return r.input[r.cursor]
}

func (r *StringReader) PeekAt(offset int) byte {
	return r.input[r.cursor+offset]
}

// Next consumes and returns the byte under the cursor.
func (r *StringReader) Next() byte {
	c := r.input[r.cursor]
	r.cursor++
	return c
}

func (r *StringReader) Skip() {
	r.cursor++
}

func IsAllowedNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}

func IsQuotedStringStart(c byte) bool {
	return c == doubleQuote || c == singleQuote
}

func IsAllowedInUnquotedString(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c == '_' || c == '-' ||
		c == '.' || c == '+'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (r *StringReader) SkipWhitespace() {
	for r.CanRead() && isWhitespace(r.Peek()) {
		r.Skip()
	}
}

// scanNumber consumes the longest run of number characters and returns it
// together with the position it started at.
func (r *StringReader) scanNumber() (string, int) {
	start := r.cursor
	for r.CanRead() && IsAllowedNumber(r.Peek()) {
		r.Skip()
	}
	return r.input[start:r.cursor], start
}

// ReadInt reads a 32-bit integer.
func (r *StringReader) ReadInt() (int32, error) {
	number, start := r.scanNumber()
	if number == "" {
		return 0, usage.ExpectedInt(r)
	}
	v, err := strconv.ParseInt(number, 10, 32)
	if err != nil {
		r.cursor = start
		return 0, usage.InvalidInt(r, number)
	}
	return int32(v), nil
}

// ReadLong reads a 64-bit integer.
func (r *StringReader) ReadLong() (int64, error) {
	number, start := r.scanNumber()
	if number == "" {
		return 0, usage.ExpectedLong(r)
	}
	v, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		r.cursor = start
		return 0, usage.InvalidLong(r, number)
	}
	return v, nil
}

// ReadFloat reads a 32-bit floating point number.
func (r *StringReader) ReadFloat() (float32, error) {
	number, start := r.scanNumber()
	if number == "" {
		return 0, usage.ExpectedFloat(r)
	}
	v, err := strconv.ParseFloat(number, 32)
	if err != nil {
		r.cursor = start
		return 0, usage.InvalidFloat(r, number)
	}
	return float32(v), nil
}

// ReadDouble reads a 64-bit floating point number.
func (r *StringReader) ReadDouble() (float64, error) {
	number, start := r.scanNumber()
	if number == "" {
		return 0, usage.ExpectedDouble(r)
	}
	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		r.cursor = start
		return 0, usage.InvalidDouble(r, number)
	}
	return v, nil
}

// ReadUnquotedString consumes [0-9A-Za-z_\-.+]*.
func (r *StringReader) ReadUnquotedString() string {
	start := r.cursor
	for r.CanRead() && IsAllowedInUnquotedString(r.Peek()) {
		r.Skip()
	}
	return r.input[start:r.cursor]
}

// ReadQuotedString reads a string wrapped in single or double quotes.
// It returns "" without error when the input is exhausted.
func (r *StringReader) ReadQuotedString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	next := r.Peek()
	if !IsQuotedStringStart(next) {
		return "", usage.ExpectedStartOfQuote(r)
	}
	r.Skip()
	return r.ReadStringUntil(next)
}

// ReadStringUntil reads up to and including terminator. A backslash escapes
// the terminator or another backslash; any other escape is an error.
func (r *StringReader) ReadStringUntil(terminator byte) (string, error) {
	var b strings.Builder
	escaped := false

	for r.CanRead() {
		c := r.Next()
		switch {
		case escaped:
			if c != terminator && c != escape {
				r.cursor--
				return "", usage.InvalidEscape(r, c)
			}
			b.WriteByte(c)
			escaped = false
		case c == escape:
			escaped = true
		case c == terminator:
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}

	return "", usage.ExpectedEndOfQuote(r)
}

// ReadString reads a quoted string if one starts at the cursor, otherwise an
// unquoted one. Exhausted input yields "" so optional arguments can be parsed.
func (r *StringReader) ReadString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	next := r.Peek()
	if IsQuotedStringStart(next) {
		r.Skip()
		return r.ReadStringUntil(next)
	}
	return r.ReadUnquotedString(), nil
}

// ReadBoolean accepts exactly "true" or "false".
func (r *StringReader) ReadBoolean() (bool, error) {
	start := r.cursor
	value, err := r.ReadString()
	if err != nil {
		return false, err
	}
	switch value {
	case "":
		return false, usage.ExpectedBool(r)
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	r.cursor = start
	return false, usage.InvalidBool(r, value)
}

// Expect consumes c or fails without moving.
func (r *StringReader) Expect(c byte) error {
	if !r.CanRead() || r.Peek() != c {
		return usage.ExpectedSymbol(r, c)
	}
	r.Skip()
	return nil
}
