package users

import (
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/format"
)

type Deps struct {
	Store     domain.UserStore
	Formatter *format.Formatter
	Logger    domain.Logger
}
