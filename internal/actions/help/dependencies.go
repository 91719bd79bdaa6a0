package help

import (
	"github.com/footprint-tools/brig/internal/dispatchers"
)

type Deps struct {
	Dispatcher *dispatchers.Dispatcher
	// MaxSimilar caps the "did you mean" list for unknown commands.
	MaxSimilar int
}

func NewDeps(d *dispatchers.Dispatcher) Deps {
	return Deps{Dispatcher: d, MaxSimilar: 3}
}
