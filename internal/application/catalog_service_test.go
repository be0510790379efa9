package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/med-cli/internal/catalog"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func TestCatalogServiceLoadsSourceOnce(t *testing.T) {
	source := mocks.NewMockSessionSource(t)
	clock := mocks.NewMockClock(t)
	loadedAt := time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)

	source.EXPECT().Load(mockAnyContext()).Return(catalog.Sample().List(), nil).Once()
	clock.EXPECT().Now().Return(loadedAt).Once()

	svc := NewCatalogService(source, clock, nil)

	first, err := svc.ListSessions(context.Background())
	require.NoError(t, err)
	second, err := svc.ListSessions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, domain.SessionID("1"), first[0].ID)
	assert.Equal(t, domain.SessionID("2"), first[1].ID)
}

func TestCatalogServiceRetriesAfterLoadFailure(t *testing.T) {
	source := mocks.NewMockSessionSource(t)
	clock := mocks.NewMockClock(t)
	loadErr := errors.New("disk on fire")

	source.EXPECT().Load(mockAnyContext()).Return(nil, loadErr).Once()
	source.EXPECT().Load(mockAnyContext()).Return(catalog.Sample().List(), nil).Once()
	clock.EXPECT().Now().Return(time.Time{}).Once()

	svc := NewCatalogService(source, clock, nil)

	err := svc.Open(context.Background())
	require.ErrorIs(t, err, loadErr)

	require.NoError(t, svc.Open(context.Background()))
}

func TestCatalogServiceRejectsInvalidSource(t *testing.T) {
	source := mocks.NewMockSessionSource(t)
	source.EXPECT().Load(mockAnyContext()).Return([]domain.Session{
		{ID: "1", Title: "A", Tier: domain.TierFree, Duration: 5},
		{ID: "1", Title: "B", Tier: domain.TierFree, Duration: 5},
	}, nil)

	svc := NewCatalogService(source, mocks.NewMockClock(t), nil)

	_, err := svc.ListSessions(context.Background())
	assert.ErrorIs(t, err, domain.ErrDuplicateSessionID)
}

func TestCatalogServiceHonoursCancelledContext(t *testing.T) {
	svc := NewCatalogService(mocks.NewMockSessionSource(t), mocks.NewMockClock(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalogServiceGetSession(t *testing.T) {
	source := mocks.NewMockSessionSource(t)
	clock := mocks.NewMockClock(t)
	source.EXPECT().Load(mockAnyContext()).Return(catalog.Sample().List(), nil)
	clock.EXPECT().Now().Return(time.Time{})

	svc := NewCatalogService(source, clock, nil)

	session, err := svc.GetSession(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Deep Sleep Journey", session.Title)

	_, err = svc.GetSession(context.Background(), "9")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCatalogServiceFilterAndSummarize(t *testing.T) {
	source := mocks.NewMockSessionSource(t)
	clock := mocks.NewMockClock(t)
	loadedAt := time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)
	source.EXPECT().Load(mockAnyContext()).Return(catalog.Sample().List(), nil)
	clock.EXPECT().Now().Return(loadedAt)

	svc := NewCatalogService(source, clock, nil)

	free, err := svc.FilterSessions(context.Background(), ByTier(domain.TierFree))
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, domain.SessionID("1"), free[0].ID)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Sessions)
	assert.Equal(t, 2, summary.Available)
	assert.Equal(t, 25, summary.Minutes)
	assert.Equal(t, loadedAt, summary.LoadedAt)
	assert.Equal(t, []TierSummary{
		{Tier: domain.TierFree, Sessions: 1, Minutes: 10},
		{Tier: domain.TierStandard, Sessions: 1, Minutes: 15},
		{Tier: domain.TierPremium},
	}, summary.Tiers)
}
