// Package player is the interactive terminal presentation of one session.
// Each player owns its own simulation.Store and re-renders whenever the store
// reports a toggle.
package player

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/logging"
	"github.com/bnema/med-cli/internal/simulation"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultTick = time.Second

type Options struct {
	// Tick is how much session time passes per frame while running.
	Tick   time.Duration
	Logger *slog.Logger
}

type frameMsg time.Time

type storeEventMsg struct {
	event simulation.Event
	ok    bool
}

type Model struct {
	session  domain.Session
	store    *simulation.Store
	events   <-chan simulation.Event
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	styles   styles
	logger   *slog.Logger
	tick     time.Duration
	elapsed  time.Duration
	frames   int
	finished bool
	quitting bool
}

func New(session domain.Session, store *simulation.Store, opts Options) Model {
	if opts.Tick <= 0 {
		opts.Tick = defaultTick
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Pulse),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("115"))),
	)

	return Model{
		session: session,
		store:   store,
		events:  store.Subscribe(4),
		spinner: s,
		help:    help.New(),
		keys:    defaultKeyMap(),
		styles:  newStyles(),
		logger:  opts.Logger,
		tick:    opts.Tick,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events), m.frame())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			running := m.store.Toggle()
			m.logger.Debug("simulation toggled", "session", m.session.ID, "running", running)
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case storeEventMsg:
		if !msg.ok {
			return m, nil
		}
		cmds := []tea.Cmd{waitForEvent(m.events)}
		if msg.event.Running {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.store.Running() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case frameMsg:
		if m.store.Running() {
			m.elapsed += m.tick
			m.frames++
			m.logger.Log(context.Background(), logging.LevelTrace, "frame", "session", m.session.ID, "elapsed", m.elapsed)
		}
		if m.elapsed >= m.total() {
			m.elapsed = m.total()
			m.finished = true
			return m, tea.Quit
		}
		return m, m.frame()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m)
}

func (m Model) Running() bool {
	return m.store.Running()
}

func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

func (m Model) Finished() bool {
	return m.finished
}

func (m Model) total() time.Duration {
	return time.Duration(m.session.Duration) * time.Minute
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func waitForEvent(events <-chan simulation.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		return storeEventMsg{event: event, ok: ok}
	}
}

// Run plays session until it finishes or the user quits. The store is closed
// when Run returns.
func Run(ctx context.Context, session domain.Session, store *simulation.Store, in io.Reader, out io.Writer, opts Options) (Model, error) {
	defer store.Close()

	p := tea.NewProgram(
		New(session, store, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Model{}, err
	}

	result, ok := finalModel.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected final player model type %T", finalModel)
	}

	return result, nil
}
