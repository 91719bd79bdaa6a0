package config

import (
	"github.com/footprint-tools/brig/internal/domain"
)

type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(string, string) error
	Unset  func(string) error
}

// NewDeps binds the config commands to cfg.
func NewDeps(cfg domain.ConfigProvider) Deps {
	return Deps{
		Get:    cfg.Get,
		GetAll: cfg.GetAll,
		Set:    cfg.Set,
		Unset:  cfg.Unset,
	}
}
