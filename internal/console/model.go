package console

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/footprint-tools/brig/internal/cli"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/ui/style"
)

const (
	maxTranscriptLines = 2000
	outputPollInterval = 100 * time.Millisecond
	suggestTimeout     = 2 * time.Second
)

// Messages

type suggestionsMsg struct {
	seq   int64
	input string
	list  suggestion.Suggestions
}

type execDoneMsg struct {
	result int
	err    error
}

type outputTickMsg struct{}

type model struct {
	runner  *cli.Runner
	session *session.Session
	out     *outputBuffer
	opts    Options

	input    textinput.Model
	viewport viewport.Model
	lines    []string

	suggestions suggestion.Suggestions
	limiter     *rate.Limiter
	latest      *atomic.Int64

	running bool
	cancel  context.CancelFunc

	history    []string
	historyPos int
	draft      string

	width, height int
	quitting      bool
}

func newModel(runner *cli.Runner, user domain.User, opts Options) model {
	out := &outputBuffer{}

	in := textinput.New()
	in.Prompt = style.Active(opts.Prompt)
	in.Placeholder = "type help"
	in.Focus()

	return model{
		runner:   runner,
		session:  newSession(user, out),
		out:      out,
		opts:     opts,
		input:    in,
		viewport: viewport.New(80, 20),
		limiter:  newLimiter(opts.SuggestEvery),
		latest:   new(atomic.Int64),
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.requestSuggestions())
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case suggestionsMsg:
		if msg.seq == m.latest.Load() && msg.input == m.input.Value() {
			m.suggestions = msg.list
		}
		return m, nil

	case outputTickMsg:
		m.flushOutput()
		if m.running {
			return m, outputTickCmd()
		}
		return m, nil

	case execDoneMsg:
		return m.finish(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			m.cancel()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlD:
		if !m.running && m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.running {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()

	case tea.KeyTab:
		if m.suggestions.IsEmpty() {
			return m, nil
		}
		m.input.SetValue(m.suggestions.List[0].Apply(m.input.Value()))
		m.input.CursorEnd()
		m.suggestions = suggestion.Empty()
		return m, m.requestSuggestions()

	case tea.KeyUp:
		m.recall(-1)
		return m, m.requestSuggestions()

	case tea.KeyDown:
		m.recall(1)
		return m, m.requestSuggestions()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.requestSuggestions())
	}
	return m, cmd
}

// submit echoes the line into the transcript and starts running it.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.appendLines(m.opts.Prompt + line)
	m.input.Reset()
	m.suggestions = suggestion.Empty()

	if strings.TrimSpace(line) == "" {
		return m, m.requestSuggestions()
	}

	if len(m.history) == 0 || m.history[len(m.history)-1] != line {
		m.history = append(m.history, line)
	}
	m.historyPos = len(m.history)
	m.draft = ""

	ctx, cancel := context.WithCancel(context.Background())
	m.running = true
	m.cancel = cancel
	return m, tea.Batch(m.execute(ctx, line), outputTickCmd())
}

func (m model) execute(ctx context.Context, line string) tea.Cmd {
	runner, s := m.runner, m.session
	return func() tea.Msg {
		result, err := runner.Run(ctx, line, s)
		return execDoneMsg{result: result, err: err}
	}
}

// finish renders the outcome of the running command.
func (m model) finish(msg execDoneMsg) (tea.Model, tea.Cmd) {
	m.flushOutput()
	m.running = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	if msg.err != nil {
		m.appendLines(cli.ErrorLines(msg.err, m.runner.Dispatcher(), m.session)...)
	}

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.requestSuggestions()
}

// requestSuggestions looks up completions for the current input once the
// limiter allows it. A lookup superseded while waiting is dropped.
func (m model) requestSuggestions() tea.Cmd {
	seq := m.latest.Add(1)
	input := m.input.Value()
	latest, limiter := m.latest, m.limiter
	d, s := m.runner.Dispatcher(), m.session

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
		defer cancel()

		if err := limiter.Wait(ctx); err != nil {
			return nil
		}
		if latest.Load() != seq {
			return nil
		}

		list, err := d.CompletionSuggestions(ctx, d.Parse(input, s))
		if err != nil {
			return nil
		}
		return suggestionsMsg{seq: seq, input: input, list: list}
	}
}

func outputTickCmd() tea.Cmd {
	return tea.Tick(outputPollInterval, func(time.Time) tea.Msg {
		return outputTickMsg{}
	})
}

// recall moves through previously submitted lines. Moving past the newest
// line restores what was being typed.
func (m *model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	if m.historyPos == len(m.history) {
		m.draft = m.input.Value()
	}

	m.historyPos = max(0, min(len(m.history), m.historyPos+delta))
	if m.historyPos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.historyPos])
	}
	m.input.CursorEnd()
}

func (m *model) flushOutput() {
	out := m.out.Drain()
	if out == "" {
		return
	}
	m.appendLines(strings.Split(strings.TrimSuffix(out, "\n"), "\n")...)
}

func (m *model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if over := len(m.lines) - maxTranscriptLines; over > 0 {
		m.lines = m.lines[over:]
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) resize() {
	m.input.Width = max(1, m.width-len(m.opts.Prompt)-1)
	m.viewport.Width = max(1, m.width-1)
	m.viewport.Height = max(1, m.height-1-m.opts.MaxSuggestions)
	m.viewport.GotoBottom()
}
