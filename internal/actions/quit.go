package actions

import (
	"context"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
)

// Quit asks the console driving the session to stop.
func Quit(_ context.Context, c *dispatchers.CommandContext) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}
	s.Quit()
	return 1, nil
}
