package cli

import (
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

const maxSimilar = 3

// ErrorLines renders err for a person: the message, then the input up to
// where parsing failed for syntax errors, then close command names when
// the first word named no command.
func ErrorLines(err error, d *dispatchers.Dispatcher, source any) []string {
	ue, ok := usage.As(err)
	if !ok {
		return []string{style.Error(err.Error())}
	}

	lines := []string{style.Error(ue.Message)}
	if ctx := ue.Context(); ctx != "" {
		lines = append(lines, style.Muted(ctx))
	}

	if ue.Kind == usage.ErrUnknownCommand && d != nil {
		word, _, _ := strings.Cut(strings.TrimSpace(ue.Input), dispatchers.ArgumentSeparatorString)
		if similar := dispatchers.SimilarLiterals(word, d.Root(), source, maxSimilar); len(similar) > 0 {
			lines = append(lines, "did you mean: "+style.Literal(strings.Join(similar, ", "))+"?")
		}
	}
	return lines
}
