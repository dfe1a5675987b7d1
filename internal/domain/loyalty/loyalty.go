// internal/domain/loyalty/loyalty.go
package loyalty

import "github.com/shopspring/decimal"

// DefaultPointsUnit is the spend that earns one point
const DefaultPointsUnit int64 = 1000

// Tier is a loyalty level derived from the points balance
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// PointsFor returns floor(amount / unit). Non-positive amounts or units earn nothing.
func PointsFor(amount decimal.Decimal, unit int64) int64 {
	if unit <= 0 || !amount.IsPositive() {
		return 0
	}
	return amount.Div(decimal.NewFromInt(unit)).Floor().IntPart()
}

// TierFor maps a points balance to its tier
func TierFor(points int64) Tier {
	switch {
	case points >= 500:
		return TierPlatinum
	case points >= 300:
		return TierGold
	case points >= 100:
		return TierSilver
	default:
		return TierBronze
	}
}

// Status is the loyalty summary shown on the account dashboard
type Status struct {
	Points       int64 `json:"points"`
	Tier         Tier  `json:"tier"`
	NextTier     Tier  `json:"next_tier,omitempty"`
	PointsToNext int64 `json:"points_to_next,omitempty"`
}

// StatusFor builds the dashboard summary for a balance
func StatusFor(points int64) Status {
	status := Status{Points: points, Tier: TierFor(points)}
	thresholds := []struct {
		tier Tier
		min  int64
	}{
		{TierSilver, 100},
		{TierGold, 300},
		{TierPlatinum, 500},
	}
	for _, th := range thresholds {
		if points < th.min {
			status.NextTier = th.tier
			status.PointsToNext = th.min - points
			break
		}
	}
	return status
}
