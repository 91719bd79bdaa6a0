package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/usage"
)

func requireKind(t *testing.T, err error, kind usage.ErrorKind) *usage.Error {
	t.Helper()
	ue, ok := usage.As(err)
	require.True(t, ok, "expected usage error, got %v", err)
	require.Equal(t, kind, ue.Kind, "unexpected error: %v", err)
	return ue
}

func TestStringReader_CanRead(t *testing.T) {
	r := New("abc")
	require.True(t, r.CanRead())
	r.Skip()
	require.True(t, r.CanReadN(2))
	require.False(t, r.CanReadN(3))
	r.Skip()
	r.Skip()
	require.False(t, r.CanRead())
	require.Equal(t, 0, r.RemainingLength())
}

func TestStringReader_PeekAndRead(t *testing.T) {
	r := New("abc")
	require.Equal(t, byte('a'), r.Peek())
	require.Equal(t, byte('c'), r.PeekAt(2))
	require.Equal(t, byte('a'), r.Next())
	require.Equal(t, "a", r.Read())
	require.Equal(t, "bc", r.Remaining())
	require.Equal(t, 1, r.Cursor())
}

func TestStringReader_SetCursorClamps(t *testing.T) {
	r := New("abc")
	r.SetCursor(10)
	require.Equal(t, 3, r.Cursor())
	r.SetCursor(-4)
	require.Equal(t, 0, r.Cursor())
}

func TestStringReader_Clone(t *testing.T) {
	r := New("hello world")
	r.SetCursor(5)
	c := r.Clone()
	c.Skip()
	require.Equal(t, 5, r.Cursor())
	require.Equal(t, 6, c.Cursor())
}

func TestStringReader_SkipWhitespace(t *testing.T) {
	r := New(" \t \nHello")
	r.SkipWhitespace()
	require.Equal(t, "Hello", r.Remaining())

	r = New("Hello")
	r.SkipWhitespace()
	require.Equal(t, 0, r.Cursor())
}

func TestStringReader_ReadUnquotedString(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		remaining string
	}{
		{"hello world", "hello", " world"},
		{"a_b-c.d+e", "a_b-c.d+e", ""},
		{"\"quoted\"", "", "\"quoted\""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := New(tt.input)
			require.Equal(t, tt.want, r.ReadUnquotedString())
			require.Equal(t, tt.remaining, r.Remaining())
		})
	}
}

func TestStringReader_ReadQuotedString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		remaining string
	}{
		{"double quotes", `"hello world"`, "hello world", ""},
		{"single quotes", `'hello world'`, "hello world", ""},
		{"mixed inside double", `"it's"`, "it's", ""},
		{"mixed inside single", `'say "hi"'`, `say "hi"`, ""},
		{"empty", `""`, "", ""},
		{"escaped quote", `"a\"b"`, `a"b`, ""},
		{"escaped backslash", `"a\\b"`, `a\b`, ""},
		{"trailing data", `"hello" world`, "hello", " world"},
		{"nothing to read", "", "", ""},
		{"utf8 content", `"héllo wörld"`, "héllo wörld", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.input)
			got, err := r.ReadQuotedString()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.remaining, r.Remaining())
		})
	}
}

func TestStringReader_ReadQuotedString_Errors(t *testing.T) {
	t.Run("no opening quote", func(t *testing.T) {
		r := New("hello")
		_, err := r.ReadQuotedString()
		ue := requireKind(t, err, usage.ErrExpectedStartOfQuote)
		require.Equal(t, 0, ue.Cursor)
	})

	t.Run("unclosed", func(t *testing.T) {
		r := New(`"hello`)
		_, err := r.ReadQuotedString()
		ue := requireKind(t, err, usage.ErrExpectedEndOfQuote)
		require.Equal(t, 6, ue.Cursor)
	})

	t.Run("invalid escape stays on offending character", func(t *testing.T) {
		r := New(`"a\qb"`)
		_, err := r.ReadQuotedString()
		ue := requireKind(t, err, usage.ErrInvalidEscape)
		require.Equal(t, 3, ue.Cursor)
		require.Equal(t, 3, r.Cursor())
		require.Equal(t, byte('q'), r.Peek())
	})
}

func TestStringReader_ReadString(t *testing.T) {
	r := New("hello world")
	got, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	r = New(`"hello world" x`)
	got, err = r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello world", got)

	r = New("")
	got, err = r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestStringReader_ReadInt(t *testing.T) {
	r := New("1234567890 foo")
	v, err := r.ReadInt()
	require.NoError(t, err)
	require.Equal(t, int32(1234567890), v)
	require.Equal(t, " foo", r.Remaining())

	r = New("-1234")
	v, err = r.ReadInt()
	require.NoError(t, err)
	require.Equal(t, int32(-1234), v)
}

func TestStringReader_ReadInt_Errors(t *testing.T) {
	t.Run("invalid rewinds", func(t *testing.T) {
		r := New("12.34")
		_, err := r.ReadInt()
		ue := requireKind(t, err, usage.ErrInvalidInt)
		require.Equal(t, 0, ue.Cursor)
		require.Equal(t, 0, r.Cursor())
		require.Contains(t, ue.Message, "12.34")
	})

	t.Run("none", func(t *testing.T) {
		r := New("foo")
		_, err := r.ReadInt()
		requireKind(t, err, usage.ErrExpectedInt)
		require.Equal(t, 0, r.Cursor())
	})

	t.Run("overflow", func(t *testing.T) {
		r := New("99999999999")
		_, err := r.ReadInt()
		requireKind(t, err, usage.ErrInvalidInt)
	})
}

func TestStringReader_ReadLong(t *testing.T) {
	r := New("99999999999 x")
	v, err := r.ReadLong()
	require.NoError(t, err)
	require.Equal(t, int64(99999999999), v)

	r = New("1-2")
	_, err = r.ReadLong()
	requireKind(t, err, usage.ErrInvalidLong)
	require.Equal(t, 0, r.Cursor())

	r = New("")
	_, err = r.ReadLong()
	requireKind(t, err, usage.ErrExpectedLong)
}

func TestStringReader_ReadDouble(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"123", 123},
		{"12.34", 12.34},
		{".5", 0.5},
		{"-.5", -0.5},
		{"-1234.56 rest", -1234.56},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := New(tt.input)
			v, err := r.ReadDouble()
			require.NoError(t, err)
			require.InDelta(t, tt.want, v, 1e-9)
		})
	}

	r := New("12.34.56")
	_, err := r.ReadDouble()
	requireKind(t, err, usage.ErrInvalidDouble)
	require.Equal(t, 0, r.Cursor())
}

func TestStringReader_ReadFloat(t *testing.T) {
	r := New("1.5")
	v, err := r.ReadFloat()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), v)

	r = New("x")
	_, err = r.ReadFloat()
	requireKind(t, err, usage.ErrExpectedFloat)
}

func TestStringReader_ReadBoolean(t *testing.T) {
	r := New("true")
	v, err := r.ReadBoolean()
	require.NoError(t, err)
	require.True(t, v)

	r = New("false ")
	v, err = r.ReadBoolean()
	require.NoError(t, err)
	require.False(t, v)
	require.Equal(t, " ", r.Remaining())

	r = New("tuesday")
	_, err = r.ReadBoolean()
	requireKind(t, err, usage.ErrInvalidBool)
	require.Equal(t, 0, r.Cursor())

	r = New("")
	_, err = r.ReadBoolean()
	requireKind(t, err, usage.ErrExpectedBool)
}

func TestStringReader_Expect(t *testing.T) {
	r := New("abc")
	require.NoError(t, r.Expect('a'))
	require.Equal(t, 1, r.Cursor())

	err := r.Expect('x')
	ue := requireKind(t, err, usage.ErrExpectedSymbol)
	require.Equal(t, 1, ue.Cursor)

	r = New("")
	requireKind(t, r.Expect('a'), usage.ErrExpectedSymbol)
}

func TestStringRange(t *testing.T) {
	a := Between(2, 5)
	b := Between(4, 9)
	require.Equal(t, Between(2, 9), Encompassing(a, b))
	require.Equal(t, Between(2, 9), Encompassing(b, a))
	require.True(t, At(3).IsEmpty())
	require.Equal(t, 3, a.Len())
	require.Equal(t, "llo", a.Get("hello world"))
}

func TestErrorContext(t *testing.T) {
	r := New("a really long command input")
	r.SetCursor(20)
	err := usage.UnknownArgument(r)
	require.Equal(t, "...ong comman<--[HERE]", err.Context())
	require.Equal(t, "Incorrect argument for command at position 20: ...ong comman<--[HERE]", err.Error())

	r = New("short")
	r.SetCursor(2)
	require.Equal(t, "sh<--[HERE]", usage.UnknownCommand(r).Context())
}
