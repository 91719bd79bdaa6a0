package usage

import "fmt"

// TooLow is returned by numeric argument types when a value is under the minimum.
// kind selects the numeric flavour (ErrIntegerTooLow, ErrLongTooLow, ...).
func TooLow(p Position, kind ErrorKind, minimum, found any) *Error {
	return At(kind, fmt.Sprintf("%s must not be less than %v, found %v", numericName(kind), minimum, found), p)
}

// TooHigh is the upper-bound counterpart of TooLow.
func TooHigh(p Position, kind ErrorKind, maximum, found any) *Error {
	return At(kind, fmt.Sprintf("%s must not be more than %v, found %v", numericName(kind), maximum, found), p)
}

func numericName(kind ErrorKind) string {
	switch kind {
	case ErrIntegerTooLow, ErrIntegerTooHigh:
		return "Integer"
	case ErrLongTooLow, ErrLongTooHigh:
		return "Long"
	case ErrFloatTooLow, ErrFloatTooHigh:
		return "Float"
	case ErrDoubleTooLow, ErrDoubleTooHigh:
		return "Double"
	default:
		return "Value"
	}
}

// LiteralIncorrect is returned when a literal node does not match the input.
func LiteralIncorrect(p Position, literal string) *Error {
	return At(ErrLiteralIncorrect, fmt.Sprintf("Expected literal %s", literal), p)
}

// InvalidChoice is returned when a value is not one of an enumerated set.
func InvalidChoice(p Position, value string, choices []string) *Error {
	return At(ErrInvalidChoice, fmt.Sprintf("Invalid value '%s', expected one of %v", value, choices), p)
}
