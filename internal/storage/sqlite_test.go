package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/snake.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".arcade", "snake.db"))
	assert.NoError(t, err)
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Variant: "snake", Score: 100, Length: 12, Ticks: 300, Duration: 42 * time.Second, EndReason: EndCollision, Seed: 7},
		{Variant: "snake", Score: 50, Length: 7, EndReason: EndQuit},
		{Variant: "snake", Score: 200, Length: 18, EndReason: EndPoison},
		{Variant: "snake", Score: 100, Length: 15, EndReason: EndCollision},
		{Variant: "snake_classic", Score: 9, Length: 11, EndReason: EndCollision},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	top, err := store.TopRuns("snake", 10)
	require.NoError(t, err)
	require.Len(t, top, 4)

	var scores, lengths []int
	for _, r := range top {
		scores = append(scores, r.Score)
		lengths = append(lengths, r.Length)
	}
	assert.Equal(t, []int{200, 100, 100, 50}, scores)
	assert.Equal(t, []int{18, 15, 12, 7}, lengths, "ties break on length")

	first := top[2]
	assert.Equal(t, uint64(300), first.Ticks)
	assert.Equal(t, 42*time.Second, first.Duration)
	assert.Equal(t, EndCollision, first.EndReason)
	assert.Equal(t, int64(7), first.Seed)
	assert.False(t, first.CreatedAt.IsZero())

	classic, err := store.TopRuns("snake_classic", 10)
	require.NoError(t, err)
	assert.Len(t, classic, 1)
}

func TestSaveRunRequiresVariant(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(Run{Score: 10})
	assert.Error(t, err)
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		_, err := store.SaveRun(Run{Variant: "snake", Score: i * 10, Length: 2, EndReason: EndCollision})
		require.NoError(t, err)
	}

	top, err := store.TopRuns("snake", 5)
	require.NoError(t, err)
	assert.Len(t, top, 5)
	assert.Equal(t, 140, top[0].Score)

	top, err = store.TopRuns("snake", 0)
	require.NoError(t, err)
	assert.Len(t, top, 10, "non-positive limit defaults to 10")
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("snake")
	require.NoError(t, err)
	assert.Zero(t, score)

	for _, s := range []int{30, -5, 80, 10} {
		_, err := store.SaveRun(Run{Variant: "snake", Score: s, Length: 2, EndReason: EndCollision})
		require.NoError(t, err)
	}

	score, err = store.HighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 80, score)
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	for _, v := range []string{"snake", "snake", "snake_classic"} {
		_, err := store.SaveRun(Run{Variant: v, Score: 1, Length: 2, EndReason: EndQuit})
		require.NoError(t, err)
	}

	n, err := store.ClearRuns("snake")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	top, err := store.TopRuns("snake", 10)
	require.NoError(t, err)
	assert.Empty(t, top)

	top, err = store.TopRuns("snake_classic", 10)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Empty(t, stats)

	runs := []Run{
		{Variant: "snake", Score: 40, Length: 6, Duration: 10 * time.Second, EndReason: EndCollision},
		{Variant: "snake", Score: 20, Length: 9, Duration: 5 * time.Second, EndReason: EndPoison},
		{Variant: "snake_classic", Score: 3, Length: 5, Duration: time.Second, EndReason: EndQuit},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err = store.Stats()
	require.NoError(t, err)
	require.Contains(t, stats, "snake")
	require.Contains(t, stats, "snake_classic")

	st := stats["snake"]
	assert.Equal(t, 2, st.Runs)
	assert.Equal(t, 40, st.HighScore)
	assert.InDelta(t, 30.0, st.AvgScore, 0.001)
	assert.Equal(t, 9, st.MaxLength)
	assert.Equal(t, 15*time.Second, st.TotalTime)
	assert.False(t, st.LastPlayed.IsZero())
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, now, parseTime(now))
	assert.Equal(t, now, parseTime("2024-03-01 12:30:00"))
	assert.True(t, parseTime("garbage").IsZero())
	assert.True(t, parseTime(nil).IsZero())
}
