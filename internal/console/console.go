// Package console is the interactive prompt: a transcript above an input
// line with live completion suggestions below it.
package console

import (
	"bytes"
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/footprint-tools/brig/internal/cli"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui"
)

// Options configures a console.
type Options struct {
	Prompt         string
	MaxSuggestions int
	// SuggestEvery is the minimum time between two suggestion lookups.
	SuggestEvery time.Duration
}

// DefaultOptions returns the options used when config has nothing to say.
func DefaultOptions() Options {
	return Options{
		Prompt:         "> ",
		MaxSuggestions: 8,
		SuggestEvery:   40 * time.Millisecond,
	}
}

// Run starts the console for user and blocks until it quits or ctx ends.
func Run(ctx context.Context, runner *cli.Runner, user domain.User, opts Options) error {
	m := newModel(runner, user, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// outputBuffer collects command output written from the goroutine running
// the command until the model drains it.
type outputBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *outputBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Drain returns everything written since the last call.
func (b *outputBuffer) Drain() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buf.String()
	b.buf.Reset()
	return s
}

func newSession(user domain.User, out *outputBuffer) *session.Session {
	return session.New(user, ui.NewWriterTo(out, ui.WithPagerDisabled()))
}

func newLimiter(every time.Duration) *rate.Limiter {
	if every <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(every), 1)
}
