package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/med-cli/internal/catalog"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSource(t *testing.T) *Source {
	t.Helper()

	src, err := Open(context.Background(), filepath.Join(t.TempDir(), "db", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestEmptyDatabaseLoadsNoSessions(t *testing.T) {
	src := openTestSource(t)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplaceThenLoadKeepsOrder(t *testing.T) {
	src := openTestSource(t)

	sessions := []domain.Session{
		{ID: "z", Title: "Last Light", Category: "Sleep", Tier: domain.TierPremium, Duration: 30},
		{ID: "a", Title: "Wake", Category: "Guided", Tier: domain.TierFree, Duration: 5, IsAvailable: true, AudioFilePath: "audio/wake.mp3"},
	}
	require.NoError(t, src.Replace(context.Background(), sessions))

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sessions, got)
}

func TestReplaceOverwritesPreviousCatalog(t *testing.T) {
	src := openTestSource(t)

	require.NoError(t, src.Replace(context.Background(), []domain.Session{
		{ID: "old", Title: "Old", Tier: domain.TierFree, Duration: 1},
	}))
	require.NoError(t, src.Replace(context.Background(), catalog.Sample().List()))

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Sample().List(), got)
}

func TestReplaceRejectsInvalidCatalog(t *testing.T) {
	src := openTestSource(t)
	require.NoError(t, src.Replace(context.Background(), catalog.Sample().List()))

	err := src.Replace(context.Background(), []domain.Session{
		{ID: "1", Title: "A", Tier: domain.TierFree, Duration: 1},
		{ID: "1", Title: "B", Tier: domain.TierFree, Duration: 1},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateSessionID)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	first, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, first.Replace(context.Background(), catalog.Sample().List()))
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestPathSourceLoadsSeededDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	src, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, src.Replace(context.Background(), catalog.Sample().List()))
	require.NoError(t, src.Close())

	pathSource, err := NewPathSource(path)
	require.NoError(t, err)

	got, err := pathSource.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Sample().List(), got)
}

func TestPathSourceMissingDatabase(t *testing.T) {
	pathSource, err := NewPathSource(filepath.Join(t.TempDir(), "absent.db"))
	require.NoError(t, err)

	_, err = pathSource.Load(context.Background())
	assert.ErrorIs(t, err, ErrDatabaseNotFound)
}
