package model

import "fmt"

// Tier identifies one aggregation granularity of the pipeline.
type Tier int

const (
	TierDaily Tier = iota
	TierWeekly
	TierMonthly
	TierYearly
)

// String returns the tier name, used for CLI modes and storage directories.
func (t Tier) String() string {
	switch t {
	case TierDaily:
		return "daily"
	case TierWeekly:
		return "weekly"
	case TierMonthly:
		return "monthly"
	case TierYearly:
		return "yearly"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseTier maps a mode name onto a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "daily":
		return TierDaily, nil
	case "weekly":
		return TierWeekly, nil
	case "monthly":
		return TierMonthly, nil
	case "yearly":
		return TierYearly, nil
	default:
		return TierDaily, fmt.Errorf("unknown mode: %s", s)
	}
}
