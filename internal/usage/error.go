package usage

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind represents the type of syntax error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota

	// Dispatcher
	ErrUnknownCommand
	ErrUnknownArgument
	ErrExpectedSeparator
	ErrParseException

	// Reader
	ErrExpectedInt
	ErrInvalidInt
	ErrExpectedLong
	ErrInvalidLong
	ErrExpectedFloat
	ErrInvalidFloat
	ErrExpectedDouble
	ErrInvalidDouble
	ErrExpectedBool
	ErrInvalidBool
	ErrExpectedStartOfQuote
	ErrExpectedEndOfQuote
	ErrInvalidEscape
	ErrExpectedSymbol

	// Argument bounds
	ErrIntegerTooLow
	ErrIntegerTooHigh
	ErrLongTooLow
	ErrLongTooHigh
	ErrFloatTooLow
	ErrFloatTooHigh
	ErrDoubleTooLow
	ErrDoubleTooHigh
	ErrLiteralIncorrect
	ErrInvalidChoice

	// Console
	ErrInvalidConfigKey
	ErrInvalidTheme
	ErrUnknownUser
	ErrPermissionDenied
	ErrCommandFailed
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Failed console commands
//
//	Exit 2: User input errors
//	  - Everything the reader or an argument type rejects
//	  - Unknown argument, missing separator
//	  - Invalid config key, theme or user
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrUnknownCommand:   1,
	ErrCommandFailed:    1,
	ErrPermissionDenied: 1,
}

// contextAmount is how many characters of input are echoed before the cursor.
const contextAmount = 10

// Position is anything that knows the input being read and where it stopped.
// *reader.StringReader satisfies it.
type Position interface {
	String() string
	Cursor() int
}

// Error represents a user-facing syntax error with semantic type information.
// Input and Cursor locate the failure; Cursor is -1 when there is no position.
type Error struct {
	Kind     ErrorKind
	Message  string
	Input    string
	Cursor   int
	ExitCode int // computed from Kind if zero
}

// New returns an error without position context.
func New(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message, Cursor: -1}
}

// At returns an error positioned at the reader's current cursor.
func At(kind ErrorKind, message string, p Position) *Error {
	if p == nil {
		return New(kind, message)
	}
	return &Error{Kind: kind, Message: message, Input: p.String(), Cursor: p.Cursor()}
}

// Error implements the error interface.
func (e *Error) Error() string {
	ctx := e.Context()
	if ctx == "" {
		return e.Message
	}
	return e.Message + " at position " + strconv.Itoa(e.Cursor) + ": " + ctx
}

// Context renders up to ten characters of input before the cursor followed
// by a <--[HERE] marker. It is empty when the error carries no position.
func (e *Error) Context() string {
	if e.Cursor < 0 {
		return ""
	}

	var b strings.Builder
	cursor := min(len(e.Input), e.Cursor)

	if cursor > contextAmount {
		b.WriteString("...")
	}

	b.WriteString(e.Input[max(0, cursor-contextAmount):cursor])
	b.WriteString("<--[HERE]")

	return b.String()
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 2
}

// As extracts a usage error from err's chain.
func As(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// HasKind reports whether err wraps a usage error of the given kind.
func HasKind(err error, kind ErrorKind) bool {
	ue, ok := As(err)
	return ok && ue.Kind == kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
