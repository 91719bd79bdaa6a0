package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns config lines into a key/value map. Blank lines and lines
// starting with '#' are skipped, values may be wrapped in double quotes and
// a " #" starts an inline comment. Later keys override earlier ones.
func Parse(lines []string) (map[string]string, error) {
	out := make(map[string]string, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, trimmed)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		out[key] = parseValue(value)
	}

	return out, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)
	if idx := strings.Index(value, " #"); idx >= 0 && !strings.HasPrefix(value, `"`) {
		value = strings.TrimSpace(value[:idx])
	}
	if len(value) >= 2 && strings.HasPrefix(value, `"`) {
		if end := strings.LastIndex(value, `"`); end > 0 {
			return value[1:end]
		}
	}
	return value
}

// quoteValue wraps values containing spaces so Parse reads them back whole.
func quoteValue(value string) string {
	if strings.ContainsAny(value, " #") {
		return `"` + value + `"`
	}
	return value
}
