package dispatchers

import (
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/usage"
)

// ParseResults is the outcome of Dispatcher.Parse. Reader is positioned
// where parsing stopped; Errors holds the failure of every child tried at
// that point.
type ParseResults struct {
	Context *ContextBuilder
	Reader  *reader.StringReader
	Errors  map[*Node]*usage.Error
}

// Err returns the error executing these results would fail with before any
// command runs, or nil when the input was fully consumed.
func (p ParseResults) Err() error {
	if !p.Reader.CanRead() {
		return nil
	}
	if len(p.Errors) == 1 {
		for _, err := range p.Errors {
			return err
		}
	}
	if p.Context.Range().IsEmpty() {
		return usage.UnknownCommand(p.Reader)
	}
	return usage.UnknownArgument(p.Reader)
}

// Forks reports whether any redirect on the parsed path forks execution.
func (p ParseResults) Forks() bool {
	for b := p.Context; b != nil; b = b.Child() {
		if b.IsForked() {
			return true
		}
	}
	return false
}
