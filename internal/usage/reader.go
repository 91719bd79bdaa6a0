package usage

import "fmt"

func ExpectedInt(p Position) *Error {
	return At(ErrExpectedInt, "Expected integer", p)
}

func InvalidInt(p Position, value string) *Error {
	return At(ErrInvalidInt, fmt.Sprintf("Invalid integer '%s'", value), p)
}

func ExpectedLong(p Position) *Error {
	return At(ErrExpectedLong, "Expected long", p)
}

func InvalidLong(p Position, value string) *Error {
	return At(ErrInvalidLong, fmt.Sprintf("Invalid long '%s'", value), p)
}

func ExpectedFloat(p Position) *Error {
	return At(ErrExpectedFloat, "Expected float", p)
}

func InvalidFloat(p Position, value string) *Error {
	return At(ErrInvalidFloat, fmt.Sprintf("Invalid float '%s'", value), p)
}

func ExpectedDouble(p Position) *Error {
	return At(ErrExpectedDouble, "Expected double", p)
}

func InvalidDouble(p Position, value string) *Error {
	return At(ErrInvalidDouble, fmt.Sprintf("Invalid double '%s'", value), p)
}

func ExpectedBool(p Position) *Error {
	return At(ErrExpectedBool, "Expected bool", p)
}

func InvalidBool(p Position, value string) *Error {
	return At(ErrInvalidBool, fmt.Sprintf("Invalid bool, expected true or false but found '%s'", value), p)
}

func ExpectedStartOfQuote(p Position) *Error {
	return At(ErrExpectedStartOfQuote, "Expected quote to start a string", p)
}

func ExpectedEndOfQuote(p Position) *Error {
	return At(ErrExpectedEndOfQuote, "Unclosed quoted string", p)
}

// InvalidEscape is positioned on the offending character, not after it.
func InvalidEscape(p Position, c byte) *Error {
	return At(ErrInvalidEscape, fmt.Sprintf("Invalid escape sequence '%c' in quoted string", c), p)
}

func ExpectedSymbol(p Position, symbol byte) *Error {
	return At(ErrExpectedSymbol, fmt.Sprintf("Expected '%c'", symbol), p)
}
