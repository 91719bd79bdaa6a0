package arguments

import (
	"context"
	"fmt"
	"math"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

type number interface {
	~int | ~int64 | ~float32 | ~float64
}

// Numeric is a bounded number argument. Values outside [Min, Max] are
// rejected with the cursor moved back to the start of the number.
type Numeric[T number] struct {
	name     string
	min, max T
	read     func(r *reader.StringReader) (T, error)
	tooLow   usage.ErrorKind
	tooHigh  usage.ErrorKind
	examples []string
}

var integerExamples = []string{"0", "123", "-123"}

var floatExamples = []string{"0", "1.2", ".5", "-1", "-.5", "-1234.56"}

func readInt(r *reader.StringReader) (int, error) {
	v, err := r.ReadInt()
	return int(v), err
}

// Integer accepts 32-bit integers within [min, max] and yields an int.
func Integer(min, max int) *Numeric[int] {
	return &Numeric[int]{
		name: "integer", min: min, max: max, read: readInt,
		tooLow: usage.ErrIntegerTooLow, tooHigh: usage.ErrIntegerTooHigh,
		examples: integerExamples,
	}
}

// AnyInteger is Integer over the whole 32-bit range.
func AnyInteger() *Numeric[int] {
	return Integer(math.MinInt32, math.MaxInt32)
}

// Long accepts 64-bit integers within [min, max].
func Long(min, max int64) *Numeric[int64] {
	return &Numeric[int64]{
		name: "long", min: min, max: max, read: (*reader.StringReader).ReadLong,
		tooLow: usage.ErrLongTooLow, tooHigh: usage.ErrLongTooHigh,
		examples: integerExamples,
	}
}

func AnyLong() *Numeric[int64] {
	return Long(math.MinInt64, math.MaxInt64)
}

// Float accepts 32-bit floats within [min, max].
func Float(min, max float32) *Numeric[float32] {
	return &Numeric[float32]{
		name: "float", min: min, max: max, read: (*reader.StringReader).ReadFloat,
		tooLow: usage.ErrFloatTooLow, tooHigh: usage.ErrFloatTooHigh,
		examples: floatExamples,
	}
}

func AnyFloat() *Numeric[float32] {
	return Float(-math.MaxFloat32, math.MaxFloat32)
}

// Double accepts 64-bit floats within [min, max].
func Double(min, max float64) *Numeric[float64] {
	return &Numeric[float64]{
		name: "double", min: min, max: max, read: (*reader.StringReader).ReadDouble,
		tooLow: usage.ErrDoubleTooLow, tooHigh: usage.ErrDoubleTooHigh,
		examples: floatExamples,
	}
}

func AnyDouble() *Numeric[float64] {
	return Double(-math.MaxFloat64, math.MaxFloat64)
}

func (n *Numeric[T]) Min() T {
	return n.min
}

func (n *Numeric[T]) Max() T {
	return n.max
}

func (n *Numeric[T]) Parse(r *reader.StringReader) (any, error) {
	start := r.Cursor()
	v, err := n.read(r)
	if err != nil {
		return nil, err
	}
	if v < n.min {
		r.SetCursor(start)
		return nil, usage.TooLow(r, n.tooLow, n.min, v)
	}
	if v > n.max {
		r.SetCursor(start)
		return nil, usage.TooHigh(r, n.tooHigh, n.max, v)
	}
	return v, nil
}

func (n *Numeric[T]) ListSuggestions(context.Context, *dispatchers.CommandContext, *suggestion.Builder) (suggestion.Suggestions, error) {
	return suggestion.Empty(), nil
}

func (n *Numeric[T]) Examples() []string {
	return n.examples
}

func (n *Numeric[T]) String() string {
	return fmt.Sprintf("%s(%v, %v)", n.name, n.min, n.max)
}

// GetInteger returns the int argument called name.
func GetInteger(c *dispatchers.CommandContext, name string) (int, error) {
	return dispatchers.ArgumentAs[int](c, name)
}

func GetLong(c *dispatchers.CommandContext, name string) (int64, error) {
	return dispatchers.ArgumentAs[int64](c, name)
}

func GetFloat(c *dispatchers.CommandContext, name string) (float32, error) {
	return dispatchers.ArgumentAs[float32](c, name)
}

func GetDouble(c *dispatchers.CommandContext, name string) (float64, error) {
	return dispatchers.ArgumentAs[float64](c, name)
}
