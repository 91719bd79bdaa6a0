package scripting

import (
	"context"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// Operand argument names.
const (
	LeftArg  = "a"
	RightArg = "b"
)

// Operator combines two integers.
type Operator struct {
	Name  string
	Apply func(a, b int) (int, error)
}

// Operators lists the calc operations in display order.
func Operators() []Operator {
	return []Operator{
		{Name: "add", Apply: func(a, b int) (int, error) { return a + b, nil }},
		{Name: "sub", Apply: func(a, b int) (int, error) { return a - b, nil }},
		{Name: "mul", Apply: func(a, b int) (int, error) { return a * b, nil }},
		{Name: "div", Apply: divide},
		{Name: "mod", Apply: modulo},
	}
}

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, usage.CommandFailed("division by zero")
	}
	return a / b, nil
}

func modulo(a, b int) (int, error) {
	if b == 0 {
		return 0, usage.CommandFailed("division by zero")
	}
	return a % b, nil
}

// Calc runs op on the two operands, prints the value and returns it as the
// command result.
func Calc(op Operator) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		s, err := session.From(c)
		if err != nil {
			return 0, err
		}

		a, err := arguments.GetInteger(c, LeftArg)
		if err != nil {
			return 0, err
		}
		b, err := arguments.GetInteger(c, RightArg)
		if err != nil {
			return 0, err
		}

		value, err := op.Apply(a, b)
		if err != nil {
			return 0, err
		}

		s.Println(style.Number(itoa(value)))
		return value, nil
	}
}
