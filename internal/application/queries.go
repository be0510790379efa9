package application

import (
	"time"

	"github.com/bnema/med-cli/internal/domain"
)

type TierSummary struct {
	Tier     domain.Tier
	Sessions int
	Minutes  int
}

type Summary struct {
	Sessions  int
	Available int
	Minutes   int
	Tiers     []TierSummary
	LoadedAt  time.Time
}

func summarize(sessions []domain.Session, loadedAt time.Time) Summary {
	summary := Summary{
		Sessions: len(sessions),
		LoadedAt: loadedAt,
	}

	byTier := make(map[domain.Tier]*TierSummary, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		summary.Tiers = append(summary.Tiers, TierSummary{Tier: tier})
	}
	for i := range summary.Tiers {
		byTier[summary.Tiers[i].Tier] = &summary.Tiers[i]
	}

	for _, session := range sessions {
		summary.Minutes += session.Duration
		if session.IsAvailable {
			summary.Available++
		}
		if entry, ok := byTier[session.Tier]; ok {
			entry.Sessions++
			entry.Minutes += session.Duration
		}
	}

	return summary
}
