package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui/style"
)

const (
	defaultLogLimit = 50

	// LinesArg is the name of the optional line count argument.
	LinesArg = "lines"
)

// View shows the last lines of the log file.
func View(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return view(c, deps, false)
	}
}

// JSON shows the last lines of the log file as a JSON array.
func JSON(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return view(c, deps, true)
	}
}

func view(c *dispatchers.CommandContext, deps Deps, jsonOutput bool) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	limit := defaultLogLimit
	if c.HasArgument(LinesArg) {
		if limit, err = arguments.GetInteger(c, LinesArg); err != nil {
			return 0, err
		}
	}

	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		if jsonOutput {
			s.Println("[]")
		} else {
			s.Println(style.Muted("No log file found at " + logPath))
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			s.Println("[]")
		} else {
			s.Println(style.Muted("Log file is empty"))
		}
		return 0, nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return 0, fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	start := 0
	if len(lines) > limit {
		start = len(lines) - limit
	}
	lines = lines[start:]

	if jsonOutput {
		return len(lines), viewJSON(s, lines)
	}

	for _, line := range lines {
		s.Println(colorizeLogLine(line))
	}
	return len(lines), nil
}

// logEntryRegex matches log lines like: [2025-01-29 10:30:45] INFO: message
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

type logEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
	Raw       bool   `json:"raw,omitempty"`
}

func parseLogLine(line string) logEntry {
	matches := logEntryRegex.FindStringSubmatch(line)
	if matches == nil {
		return logEntry{Message: line, Raw: true}
	}
	return logEntry{
		Timestamp: matches[1],
		Level:     matches[2],
		Message:   matches[3],
	}
}

func viewJSON(s *session.Session, lines []string) error {
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, parseLogLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	s.Println(string(data))
	return nil
}

// Tail follows the log file until ctx is cancelled.
func Tail(deps Deps) dispatchers.Command {
	return func(ctx context.Context, c *dispatchers.CommandContext) (int, error) {
		return tail(ctx, c, deps)
	}
}

func tail(ctx context.Context, c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return 0, fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return 0, fmt.Errorf("seek log file: %w", err)
	}

	s.Println(style.Muted("Following logs at " + logPath))
	s.Println()

	interval := deps.PollInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r := bufio.NewReader(file)
	shown := 0
	var pending string
	for {
		chunk, err := r.ReadString('\n')
		pending += chunk
		if err == nil {
			s.Println(colorizeLogLine(strings.TrimSuffix(pending, "\n")))
			pending = ""
			shown++
			continue
		}
		if err != io.EOF {
			return shown, fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return shown, nil
		case <-ticker.C:
		}
	}
}

// Clear empties the log file.
func Clear(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return clearLog(c, deps)
	}
}

func clearLog(c *dispatchers.CommandContext, deps Deps) (int, error) {
	s, err := session.From(c)
	if err != nil {
		return 0, err
	}

	if err := deps.Truncate(); err != nil {
		return 0, fmt.Errorf("clear log file: %w", err)
	}

	s.Println(style.Success("Log file cleared"))
	return 1, nil
}

// colorizeLogLine adds color to log lines based on level.
func colorizeLogLine(line string) string {
	switch parseLogLine(line).Level {
	case "ERROR":
		return style.Error(line)
	case "WARN":
		return style.Warning(line)
	case "INFO":
		return style.Info(line)
	case "DEBUG":
		return style.Muted(line)
	}
	return line
}
