package application

import (
	"strings"

	"github.com/bnema/med-cli/internal/domain"
)

// Predicate selects sessions for a filtered view. The catalog itself never
// filters; callers pass predicates explicitly.
type Predicate func(domain.Session) bool

func ByTier(tier domain.Tier) Predicate {
	return func(s domain.Session) bool {
		return s.Tier == tier
	}
}

// UpToTier keeps sessions whose tier ranks at or below tier.
func UpToTier(tier domain.Tier) Predicate {
	return func(s domain.Session) bool {
		return s.Tier.Rank() >= 0 && s.Tier.Rank() <= tier.Rank()
	}
}

func ByCategory(category string) Predicate {
	want := strings.TrimSpace(category)
	return func(s domain.Session) bool {
		return strings.EqualFold(strings.TrimSpace(s.Category), want)
	}
}

func AvailableOnly() Predicate {
	return func(s domain.Session) bool {
		return s.IsAvailable
	}
}

func MaxDuration(minutes int) Predicate {
	return func(s domain.Session) bool {
		return s.Duration <= minutes
	}
}

func All(preds ...Predicate) Predicate {
	return func(s domain.Session) bool {
		for _, pred := range preds {
			if pred != nil && !pred(s) {
				return false
			}
		}
		return true
	}
}

// Filter returns the sessions matching every predicate, preserving order.
func Filter(sessions []domain.Session, preds ...Predicate) []domain.Session {
	match := All(preds...)
	out := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if match(session) {
			out = append(out, session)
		}
	}
	return out
}
