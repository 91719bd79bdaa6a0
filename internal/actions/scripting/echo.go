// Package scripting holds the commands that compute and remember values:
// echo, calc and per-user variables.
package scripting

import (
	"context"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
)

// MessageArg is the name of the echo argument.
const MessageArg = "message"

// Echo prints its message for the running user.
func Echo(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	message, err := arguments.GetString(c, MessageArg)
	if err != nil {
		return 0, err
	}

	s.Println(message)
	return 1, nil
}
