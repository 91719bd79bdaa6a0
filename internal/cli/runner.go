package cli

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
)

// Runner executes whole command lines for a session and records each one
// in the history store.
type Runner struct {
	dispatcher *dispatchers.Dispatcher
	history    domain.HistoryStore
	logger     domain.Logger
	now        func() time.Time
}

// NewRunner returns a runner over d. A nil history disables recording.
func NewRunner(d *dispatchers.Dispatcher, history domain.HistoryStore, logger domain.Logger) *Runner {
	return &Runner{dispatcher: d, history: history, logger: logger, now: time.Now}
}

// Dispatcher returns the dispatcher the runner executes on.
func (r *Runner) Dispatcher() *dispatchers.Dispatcher {
	return r.dispatcher
}

// Run parses and executes input as s. Blank input does nothing.
func (r *Runner) Run(ctx context.Context, input string, s *session.Session) (int, error) {
	if strings.TrimSpace(input) == "" {
		return 0, nil
	}

	started := r.now()
	parse := r.dispatcher.Parse(input, s)
	result, err := r.dispatcher.Execute(ctx, parse)

	r.logger.Debug("run: %q as %s -> %d (err=%v, took %s)", input, s.Name(), result, err, r.now().Sub(started))
	r.record(domain.HistoryEntry{
		ID:        uuid.New(),
		Input:     input,
		User:      s.Name(),
		Result:    result,
		Success:   err == nil,
		Forked:    parse.Forks(),
		Error:     errorText(err),
		Timestamp: started,
	})

	return result, err
}

func (r *Runner) record(e domain.HistoryEntry) {
	if r.history == nil {
		return
	}
	if err := r.history.Record(e); err != nil {
		r.logger.Warn("run: record history: %v", err)
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
