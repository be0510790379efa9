package catalog

import "github.com/bnema/med-cli/internal/domain"

var sampleSessions = []domain.Session{
	{
		ID:            "1",
		Title:         "Morning Calm",
		Category:      "Guided",
		Tier:          domain.TierFree,
		Duration:      10,
		IsAvailable:   true,
		AudioFilePath: "audio/morning-calm.mp3",
	},
	{
		ID:            "2",
		Title:         "Deep Sleep Journey",
		Category:      "Sleep",
		Tier:          domain.TierStandard,
		Duration:      15,
		IsAvailable:   true,
		AudioFilePath: "audio/deep-sleep-journey.mp3",
	},
}

// Sample returns the built-in catalog used when no other source is configured.
func Sample() *Catalog {
	c, err := New(sampleSessions)
	if err != nil {
		panic(err)
	}
	return c
}
