package catalog

import (
	"strings"
	"testing"

	"github.com/bnema/med-cli/internal/application"
	samplecatalog "github.com/bnema/med-cli/internal/catalog"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSampleCatalog(t *testing.T) {
	output, err := Render(samplecatalog.Sample().List(), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Meditation Sessions")
	assert.Contains(t, output, "sessions: 2")
	assert.Contains(t, output, "Morning Calm (1)")
	assert.Contains(t, output, "Deep Sleep Journey (2)")
	assert.Contains(t, output, "Guided")
	assert.Contains(t, output, "Free")
	assert.Contains(t, output, "Standard")
	assert.Contains(t, output, "10 min")
	assert.Contains(t, output, "15 min")
	assert.Contains(t, output, "audio: audio/morning-calm.mp3")
	assert.NotContains(t, output, "[unavailable]")
}

func TestRenderOrdersSessionsAsGiven(t *testing.T) {
	output, err := Render(samplecatalog.Sample().List(), RenderOptions{})
	require.NoError(t, err)

	assert.Less(t, strings.Index(output, "Morning Calm"), strings.Index(output, "Deep Sleep Journey"))
}

func TestRenderEmptyList(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "sessions: 0")
	assert.Contains(t, output, "No sessions match.")
}

func TestRenderMarksUnavailableSession(t *testing.T) {
	output, err := Render([]domain.Session{
		{ID: "9", Title: "Coming Soon", Tier: domain.TierPremium, Duration: 25},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Coming Soon (9)")
	assert.Contains(t, output, "[unavailable]")
	assert.Contains(t, output, "Uncategorized")
	assert.NotContains(t, output, "audio:")
}

func TestRenderWithSummary(t *testing.T) {
	summary := application.Summary{
		Sessions:  2,
		Available: 2,
		Minutes:   25,
		Tiers: []application.TierSummary{
			{Tier: domain.TierFree, Sessions: 1, Minutes: 10},
			{Tier: domain.TierStandard, Sessions: 1, Minutes: 15},
			{Tier: domain.TierPremium},
		},
	}

	output, err := Render(samplecatalog.Sample().List(), RenderOptions{Summary: &summary})

	require.NoError(t, err)
	assert.Contains(t, output, "total: 2 sessions, 2 available, 25 min")
	assert.Contains(t, output, "1 sessions, 15 min")
	assert.Contains(t, output, "0 sessions, 0 min")
}

func TestRenderDurationBarScalesToLongest(t *testing.T) {
	s := newStyles()

	assert.Contains(t, renderDurationBar(15, 15, 10, s), "==========")
	assert.Contains(t, renderDurationBar(0, 15, 10, s), "----------")
	assert.Empty(t, renderDurationBar(5, 15, 0, s))
}
