package player

import (
	"testing"
	"time"

	"github.com/bnema/med-cli/internal/catalog"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/simulation"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyP = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}

func sampleSession(t *testing.T) domain.Session {
	t.Helper()
	session, err := catalog.Sample().Get("1")
	require.NoError(t, err)
	return session
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewPlayerStartsRunning(t *testing.T) {
	m := New(sampleSession(t), simulation.New(), Options{})

	assert.True(t, m.Running())
	assert.Contains(t, m.View(), "Morning Calm")
	assert.Contains(t, m.View(), "running")
	assert.Contains(t, m.View(), "Breathe in")
	assert.Contains(t, m.View(), "00:00 / 10:00")
}

func TestToggleKeyFlipsStoreAndNotifies(t *testing.T) {
	store := simulation.New()
	m := New(sampleSession(t), store, Options{})

	m, _ = update(t, m, keyP)
	assert.False(t, store.Running())

	msg := waitForEvent(m.events)()
	event, ok := msg.(storeEventMsg)
	require.True(t, ok)
	assert.True(t, event.ok)
	assert.False(t, event.event.Running)

	m, _ = update(t, m, event)
	assert.Contains(t, m.View(), "paused")
	assert.NotContains(t, m.View(), "Breathe in")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, store.Running())
	assert.Contains(t, m.View(), "running")
}

func TestFramesAdvanceOnlyWhileRunning(t *testing.T) {
	store := simulation.New()
	m := New(sampleSession(t), store, Options{Tick: 5 * time.Second})

	m, cmd := update(t, m, frameMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, 5*time.Second, m.Elapsed())
	assert.Contains(t, m.View(), "Hold")

	store.Toggle()
	m, _ = update(t, m, frameMsg(time.Now()))
	m, _ = update(t, m, frameMsg(time.Now()))
	assert.Equal(t, 5*time.Second, m.Elapsed())

	store.Toggle()
	m, _ = update(t, m, frameMsg(time.Now()))
	assert.Equal(t, 10*time.Second, m.Elapsed())
}

func TestSessionFinishesAfterDuration(t *testing.T) {
	session := domain.Session{ID: "s", Title: "Short", Category: "Guided", Tier: domain.TierFree, Duration: 1}
	m := New(session, simulation.New(), Options{Tick: 40 * time.Second})

	m, cmd := update(t, m, frameMsg(time.Now()))
	assert.False(t, m.Finished())
	require.NotNil(t, cmd)

	m, cmd = update(t, m, frameMsg(time.Now()))
	assert.True(t, m.Finished())
	assert.Equal(t, time.Minute, m.Elapsed())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "Session complete.")
}

func TestQuitKey(t *testing.T) {
	m := New(sampleSession(t), simulation.New(), Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestClosedStoreStopsWaitingForEvents(t *testing.T) {
	store := simulation.New()
	m := New(sampleSession(t), store, Options{})
	store.Close()

	msg := waitForEvent(m.events)()
	event, ok := msg.(storeEventMsg)
	require.True(t, ok)
	assert.False(t, event.ok)

	_, cmd := update(t, m, event)
	assert.Nil(t, cmd)
}

func TestPhaseCycle(t *testing.T) {
	assert.Equal(t, "Breathe in", phaseAt(0).String())
	assert.Equal(t, "Breathe in", phaseAt(3*time.Second).String())
	assert.Equal(t, "Hold", phaseAt(4*time.Second).String())
	assert.Equal(t, "Breathe out", phaseAt(8*time.Second).String())
	assert.Equal(t, "Breathe in", phaseAt(12*time.Second).String())
	assert.Equal(t, "Breathe in", phaseAt(-time.Second).String())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "01:05", formatClock(65*time.Second))
	assert.Equal(t, "15:00", formatClock(15*time.Minute))
	assert.Equal(t, "00:00", formatClock(-time.Second))
}
