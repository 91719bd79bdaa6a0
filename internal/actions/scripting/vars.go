package scripting

import (
	"context"
	"strconv"
	"strings"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// Variable argument names.
const (
	NameArg   = "name"
	ValueArg  = "value"
	AmountArg = "amount"
)

func itoa(v int) string {
	return strconv.Itoa(v)
}

func varName(c *dispatchers.CommandContext) (*session.Session, string, error) {
	s, err := session.From(c)
	if err != nil {
		return nil, "", err
	}
	name, err := arguments.GetString(c, NameArg)
	if err != nil {
		return nil, "", err
	}
	return s, name, nil
}

// SetVar stores a value for the running user.
func SetVar(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	s, name, err := varName(c)
	if err != nil {
		return 0, err
	}
	value, err := arguments.GetInteger(c, ValueArg)
	if err != nil {
		return 0, err
	}

	s.Vars().Set(name, value)
	s.Printf("%s = %s\n", name, style.Number(itoa(value)))
	return value, nil
}

// GetVar prints a variable and returns its value.
func GetVar(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	s, name, err := varName(c)
	if err != nil {
		return 0, err
	}

	value, ok := s.Vars().Get(name)
	if !ok {
		return 0, usage.CommandFailed("variable '%s' is not set for %s", name, s.Name())
	}

	s.Println(style.Number(itoa(value)))
	return value, nil
}

// AddVar adds an amount to a variable, starting from zero.
func AddVar(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	s, name, err := varName(c)
	if err != nil {
		return 0, err
	}
	amount, err := arguments.GetInteger(c, AmountArg)
	if err != nil {
		return 0, err
	}

	value := s.Vars().Add(name, amount)
	s.Printf("%s = %s\n", name, style.Number(itoa(value)))
	return value, nil
}

// UnsetVar forgets a variable.
func UnsetVar(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	s, name, err := varName(c)
	if err != nil {
		return 0, err
	}

	if !s.Vars().Unset(name) {
		return 0, usage.CommandFailed("variable '%s' is not set for %s", name, s.Name())
	}
	s.Printf("unset %s\n", name)
	return 1, nil
}

// ListVars prints the running user's variables in name order.
func ListVars(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	names := s.Vars().Names()
	if len(names) == 0 {
		s.Println(style.Muted("no variables set for " + s.Name()))
		return 0, nil
	}

	for _, name := range names {
		value, _ := s.Vars().Get(name)
		s.Printf("%s = %s\n", name, style.Number(itoa(value)))
	}
	return len(names), nil
}

// SuggestVarNames completes the names of the running user's variables.
func SuggestVarNames(_ context.Context, c *dispatchers.CommandContext, b *suggestion.Builder) (suggestion.Suggestions, error) {
	s, ok := c.Source().(*session.Session)
	if !ok {
		return suggestion.Empty(), nil
	}

	remaining := b.RemainingLowerCase()
	for _, name := range s.Vars().Names() {
		if strings.HasPrefix(strings.ToLower(name), remaining) {
			value, _ := s.Vars().Get(name)
			b.SuggestWithTooltip(name, itoa(value))
		}
	}
	return b.Build(), nil
}
