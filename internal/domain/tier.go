package domain

import (
	"fmt"
	"strings"
)

type Tier string

const (
	TierFree     Tier = "free"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Tiers lists every known tier from lowest to highest access level.
var Tiers = []Tier{TierFree, TierStandard, TierPremium}

func ParseTier(raw string) (Tier, error) {
	tier := Tier(strings.ToLower(strings.TrimSpace(raw)))
	if !tier.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, raw)
	}

	return tier, nil
}

func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierStandard, TierPremium:
		return true
	default:
		return false
	}
}

func (t Tier) Label() string {
	switch t {
	case TierFree:
		return "Free"
	case TierStandard:
		return "Standard"
	case TierPremium:
		return "Premium"
	default:
		return string(t)
	}
}

// Rank orders tiers by access level. Unknown tiers rank below free.
func (t Tier) Rank() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}

	return -1
}
