package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newScoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	runs := []storage.Run{
		{Variant: "snake", Score: 120, Length: 14, Duration: 30 * time.Second, EndReason: storage.EndCollision},
		{Variant: "snake", Score: 60, Length: 8, Duration: 12 * time.Second, EndReason: storage.EndPoison},
		{Variant: "snake_classic", Score: 7, Length: 9, EndReason: storage.EndQuit},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}
	return store
}

func TestScoreboardLoadsVariant(t *testing.T) {
	store := newScoreboardStore(t)
	m := NewScoreboardModel(store, log.New(io.Discard), "snake", 100, 30)

	require.Len(t, m.runs, 2)
	assert.Equal(t, 120, m.runs[0].Score)
	assert.Contains(t, m.View(), "HIGH SCORES - Snake")
	assert.Contains(t, m.View(), "2 runs  best 120")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "snake_classic", m.variants[m.cursor].ID)
	require.Len(t, m.runs, 1)
	assert.Equal(t, storage.EndQuit, m.runs[0].EndReason)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "snake", m.variants[m.cursor].ID)
}

func TestScoreboardEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewScoreboardModel(store, log.New(io.Discard), "snake_classic", 80, 24)
	assert.Equal(t, "snake_classic", m.variants[m.cursor].ID)
	assert.Contains(t, m.View(), "No runs recorded yet.")
}

func TestScoreboardQuit(t *testing.T) {
	store := newScoreboardStore(t)
	m := NewScoreboardModel(store, log.New(io.Discard), "snake", 80, 24)

	next, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestRunRows(t *testing.T) {
	created := time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC)
	rows := runRows([]storage.Run{{Score: 40, Length: 6, Duration: 1234 * time.Millisecond, EndReason: storage.EndPoison, CreatedAt: created}})

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"#1", "40", "6", "1.2s", "poison", "Jan 02 15:04"}, []string(rows[0]))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   abcd", centerText("abcd", 10))
	assert.Equal(t, "toolong", centerText("toolong", 4))
}
