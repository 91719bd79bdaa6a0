package config

import "strings"

// Set rewrites the line holding key in place, keeping its inline comment,
// or appends key=value when no line holds it. It reports whether an
// existing line was rewritten. value must already be quoted if needed.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		lineKey, raw, ok := splitEntry(line, i == 0)
		if !ok || lineKey != key {
			continue
		}

		lines[i] = key + "=" + value
		if comment := inlineComment(raw); comment != "" {
			lines[i] += " " + comment
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line holding key and reports whether any was dropped.
// Comments, blank lines and unparseable lines are kept as they are.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for i, line := range lines {
		if lineKey, _, ok := splitEntry(line, i == 0); ok && lineKey == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// splitEntry returns the key and raw value of a key=value line.
func splitEntry(line string, first bool) (string, string, bool) {
	if first {
		line = strings.TrimPrefix(line, bom)
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, raw, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), raw, true
}

// inlineComment finds the comment Parse would drop from raw. A '#' inside a
// quoted value is part of the value.
func inlineComment(raw string) string {
	value := strings.TrimSpace(raw)

	if strings.HasPrefix(value, `"`) {
		end := strings.LastIndex(value, `"`)
		if end <= 0 {
			return ""
		}
		rest := value[end+1:]
		if idx := strings.Index(rest, "#"); idx >= 0 {
			return strings.TrimSpace(rest[idx:])
		}
		return ""
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimSpace(value[idx+1:])
	}
	return ""
}
