package logs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/testutil"
)

func newLogsTree(deps Deps) *dispatchers.Dispatcher {
	lines := func(cmd dispatchers.Command) *dispatchers.Builder {
		return dispatchers.Argument(LinesArg, arguments.Integer(1, 10000)).Executes(cmd)
	}
	d := dispatchers.New()
	d.Register(dispatchers.Literal("logs").Executes(View(deps)).
		Then(lines(View(deps))).
		Then(dispatchers.Literal("json").Executes(JSON(deps)).Then(lines(JSON(deps)))).
		Then(dispatchers.Literal("tail").Executes(Tail(deps))).
		Then(dispatchers.Literal("clear").Executes(Clear(deps))))
	return d
}

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brig.log")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func truncateFile(path string) func() error {
	return func() error { return os.Truncate(path, 0) }
}

// =========== VIEW TESTS ===========

func TestView_FileNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")
	d := newLogsTree(NewDeps(path, truncateFile(path)))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, result, err := testutil.Run(t, d, s, buf, "logs")
	require.NoError(t, err)
	require.Equal(t, 0, result)
	require.Contains(t, out, "No log file found")
}

func TestView_StatError(t *testing.T) {
	deps := NewDeps("/tmp/test.log", nil)
	deps.Stat = func(string) (os.FileInfo, error) { return nil, errors.New("stat error") }
	d := newLogsTree(deps)
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	_, _, err := testutil.Run(t, d, s, buf, "logs")
	require.ErrorContains(t, err, "stat log file")
}

func TestView_EmptyFile(t *testing.T) {
	path := writeLog(t)
	d := newLogsTree(NewDeps(path, truncateFile(path)))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, _, err := testutil.Run(t, d, s, buf, "logs")
	require.NoError(t, err)
	require.Contains(t, out, "Log file is empty")

	out, _, err = testutil.Run(t, d, s, buf, "logs json")
	require.NoError(t, err)
	require.Equal(t, "[]\n", out)
}

func TestView_LastLines(t *testing.T) {
	path := writeLog(t,
		"[2025-01-29 10:30:45] INFO: one",
		"[2025-01-29 10:30:46] WARN: two",
		"[2025-01-29 10:30:47] ERROR: three",
	)
	d := newLogsTree(NewDeps(path, truncateFile(path)))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, result, err := testutil.Run(t, d, s, buf, "logs 2")
	require.NoError(t, err)
	require.Equal(t, 2, result)
	require.NotContains(t, out, "one")
	require.Contains(t, out, "two")
	require.Contains(t, out, "three")
}

func TestView_LinesOutOfRange(t *testing.T) {
	path := writeLog(t, "x")
	d := newLogsTree(NewDeps(path, truncateFile(path)))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	_, _, err := testutil.Run(t, d, s, buf, "logs 0")
	require.ErrorContains(t, err, "must not be less than 1")
}

func TestView_JSON(t *testing.T) {
	path := writeLog(t,
		"[2025-01-29 10:30:45] DEBUG: parsed 'calc add 1 2'",
		"not a log line",
	)
	d := newLogsTree(NewDeps(path, truncateFile(path)))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, _, err := testutil.Run(t, d, s, buf, "logs json")
	require.NoError(t, err)

	var entries []logEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Equal(t, []logEntry{
		{Timestamp: "2025-01-29 10:30:45", Level: "DEBUG", Message: "parsed 'calc add 1 2'"},
		{Message: "not a log line", Raw: true},
	}, entries)
}

// =========== CLEAR TESTS ===========

func TestClear(t *testing.T) {
	path := writeLog(t, "[2025-01-29 10:30:45] INFO: one")
	d := newLogsTree(NewDeps(path, truncateFile(path)))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, _, err := testutil.Run(t, d, s, buf, "logs clear")
	require.NoError(t, err)
	require.Contains(t, out, "Log file cleared")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestClear_Error(t *testing.T) {
	deps := NewDeps("/tmp/test.log", func() error { return errors.New("denied") })
	d := newLogsTree(deps)
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	_, _, err := testutil.Run(t, d, s, buf, "logs clear")
	require.ErrorContains(t, err, "clear log file: denied")
}

// =========== TAIL TESTS ===========

func TestTail_FollowsUntilCancelled(t *testing.T) {
	path := writeLog(t, "[2025-01-29 10:30:45] INFO: old")
	deps := NewDeps(path, truncateFile(path))
	deps.PollInterval = 5 * time.Millisecond
	d := newLogsTree(deps)
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	ctx, cancel := context.WithCancel(context.Background())
	type outcome struct {
		result int
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := d.ExecuteInput(ctx, "logs tail", s)
		done <- outcome{result, err}
	}()

	time.Sleep(50 * time.Millisecond)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.WriteString("[2025-01-29 10:30:46] INFO: new\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	time.Sleep(100 * time.Millisecond)

	cancel()
	got := <-done
	require.NoError(t, got.err)
	require.Equal(t, 1, got.result)
	require.Contains(t, buf.String(), "INFO: new")
	require.NotContains(t, buf.String(), "INFO: old")
}

func TestColorizeLogLine_PlainWhenDisabled(t *testing.T) {
	line := "[2025-01-29 10:30:45] ERROR: boom"
	require.Equal(t, line, colorizeLogLine(line))
}
