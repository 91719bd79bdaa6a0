package config

import "github.com/footprint-tools/brig/internal/domain"

// Defaults returns the built-in value of every known key.
func Defaults() map[string]string {
	out := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		out[key.Name] = key.Default
	}
	return out
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func (p *Provider) Get(key string) (string, bool) {
	cfg, err := p.read()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	} else {
		p.logger.Warn("config: falling back to defaults: %v", err)
	}

	return domain.GetDefaultValue(key)
}

// GetAll returns all config values (user overrides merged with defaults).
// Unknown keys found in the file are kept.
func (p *Provider) GetAll() (map[string]string, error) {
	result := Defaults()

	cfg, err := p.read()
	if err != nil {
		p.logger.Warn("config: falling back to defaults: %v", err)
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func (p *Provider) read() (map[string]string, error) {
	lines, err := ReadLines(p.path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
