package config

import (
	"fmt"

	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/paths"
)

// Provider reads and edits one config file and implements domain.ConfigProvider.
type Provider struct {
	path   string
	logger domain.Logger
}

// NewProvider returns a provider for the config file at path.
func NewProvider(path string, logger domain.Logger) *Provider {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Provider{path: path, logger: logger}
}

// NewDefaultProvider returns a provider for the user's config file.
func NewDefaultProvider(logger domain.Logger) (*Provider, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, fmt.Errorf("config: locate config file: %w", err)
	}
	return NewProvider(path, logger), nil
}

// Path returns the config file location.
func (p *Provider) Path() string {
	return p.path
}

// Set sets a configuration value.
func (p *Provider) Set(key, value string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}

		lines, updated := Set(lines, key, quoteValue(value))
		p.logger.Debug("config: set %s (updated=%t)", key, updated)
		return WriteLines(p.path, lines)
	})
}

// Unset removes a configuration value.
func (p *Provider) Unset(key string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}

		lines, removed := Unset(lines, key)
		p.logger.Debug("config: unset %s (removed=%t)", key, removed)
		return WriteLines(p.path, lines)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
