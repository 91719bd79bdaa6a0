package usage

import "fmt"

// UnknownCommand is returned when nothing in the tree matched the input.
func UnknownCommand(p Position) *Error {
	return At(ErrUnknownCommand, "Unknown command", p)
}

// UnknownArgument is returned when a command matched but its arguments did not.
func UnknownArgument(p Position) *Error {
	return At(ErrUnknownArgument, "Incorrect argument for command", p)
}

// ExpectedSeparator is returned when an argument is followed by anything but a space.
func ExpectedSeparator(p Position) *Error {
	return At(ErrExpectedSeparator, "Expected whitespace to end one argument, but found trailing data", p)
}

// ParseException wraps a non-syntax failure raised by an argument type's parser.
func ParseException(p Position, message string) *Error {
	return At(ErrParseException, fmt.Sprintf("Could not parse command: %s", message), p)
}
