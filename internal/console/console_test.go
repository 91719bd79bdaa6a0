package console

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/cli"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/testutil"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	st := testutil.NewTestStore(t)
	app := &domain.Application{
		Store:  st,
		Config: testutil.MapConfig{},
		Logger: log.NopLogger{},
	}
	d := cli.BuildDispatcher(app, cli.Env{})
	opts := DefaultOptions()
	opts.SuggestEvery = 0
	m := newModel(cli.NewRunner(d, st, log.NopLogger{}), domain.DefaultUser, opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(model)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

// execDone runs cmd and the commands it batches until one reports the end
// of an execution.
func execDone(t *testing.T, cmd tea.Cmd) execDoneMsg {
	t.Helper()
	require.NotNil(t, cmd)

	switch msg := cmd().(type) {
	case execDoneMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if done, ok := c().(execDoneMsg); ok {
				return done
			}
		}
	}
	t.Fatal("command did not finish an execution")
	return execDoneMsg{}
}

// submit types line, presses enter and feeds the result back.
func submit(t *testing.T, m model, line string) (model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.running)
	return update(t, m, execDone(t, cmd))
}

func TestModel_SubmitRunsCommand(t *testing.T) {
	m := newTestModel(t)

	m, _ = submit(t, m, "calc add 2 3")
	require.False(t, m.running)
	require.Equal(t, []string{"> calc add 2 3", "5"}, m.lines)
	require.Empty(t, m.input.Value())
}

func TestModel_ErrorsAreRendered(t *testing.T) {
	m := newTestModel(t)

	m, _ = submit(t, m, "calc div 1 0")
	require.Contains(t, m.lines, "brig: division by zero")

	m, _ = submit(t, m, "calc add 1 x")
	require.Contains(t, m.lines, "...alc add 1 <--[HERE]")
}

func TestModel_QuitCommandEndsProgram(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(t, m, "quit")
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}

func TestModel_BlankLineDoesNotRun(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.running)
	require.Equal(t, []string{"> "}, m.lines)
	require.Empty(t, m.history)
}

func TestModel_SuggestionsAndTab(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("ca")
	msg := m.requestSuggestions()()
	m, _ = update(t, m, msg)
	require.Equal(t, []string{"calc"}, m.suggestions.Texts())
	require.Contains(t, m.View(), "calc")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "calc", m.input.Value())
	require.True(t, m.suggestions.IsEmpty())
}

func TestModel_StaleSuggestionsAreDropped(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("ca")
	stale := m.requestSuggestions()()
	m.input.SetValue("ec")
	_ = m.requestSuggestions()

	m, _ = update(t, m, stale)
	require.True(t, m.suggestions.IsEmpty())
}

func TestModel_SupersededLookupIsSkipped(t *testing.T) {
	m := newTestModel(t)

	first := m.requestSuggestions()
	_ = m.requestSuggestions()
	require.Nil(t, first())
}

func TestModel_HistoryRecall(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "echo one")
	m, _ = submit(t, m, "echo two")

	m.input.SetValue("draft")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "echo two", m.input.Value())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "echo one", m.input.Value())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "echo one", m.input.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "draft", m.input.Value())
}

func TestModel_CtrlDQuitsOnEmptyLine(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("echo")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Nil(t, cmd)
	require.False(t, m.quitting)

	m.input.SetValue("")
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.quitting)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CtrlCCancelsRunningCommand(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("echo hi")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.running)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Nil(t, cmd)
	require.False(t, m.quitting)
}

func TestModel_TypingRequestsSuggestions(t *testing.T) {
	m := newTestModel(t)

	before := m.latest.Load()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.Equal(t, "e", m.input.Value())
	require.NotNil(t, cmd)
	require.Greater(t, m.latest.Load(), before)
}

func TestOutputBuffer_Drain(t *testing.T) {
	var b outputBuffer
	_, _ = b.Write([]byte("a\n"))
	_, _ = b.Write([]byte("b\n"))
	require.Equal(t, "a\nb\n", b.Drain())
	require.Empty(t, b.Drain())
}
