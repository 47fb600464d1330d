package roadmap

import (
	"time"

	"github.com/rsoares/roadmap/internal/domain"
)

// Schedule is the result of comparing an item's reported progress against
// the progress a linear plan would expect by now.
type Schedule struct {
	// ExpectedProgress is the time-proportional progress in [0,100].
	ExpectedProgress float64
	// Gap is expected minus actual; positive means behind schedule.
	Gap  float64
	Tier domain.RiskTier
}

// Tier thresholds use strict greater-than: a gap of exactly 30 is medium,
// exactly 15 is low.
const (
	tierHighGap   = 30
	tierMediumGap = 15
)

// atRiskGap is the separate aggregate at-risk threshold. It coincides with
// the medium tier boundary numerically but is a distinct rule: at-risk
// additionally requires the item not to be done.
const atRiskGap = 15

// ComputeSchedule scores a single item against "now".
func ComputeSchedule(it *domain.Item, now time.Time) Schedule {
	expected := expectedProgress(it, now)
	gap := expected - float64(it.Progress)

	tier := domain.TierLow
	switch {
	case gap > tierHighGap:
		tier = domain.TierHigh
	case gap > tierMediumGap:
		tier = domain.TierMedium
	}

	return Schedule{
		ExpectedProgress: expected,
		Gap:              gap,
		Tier:             tier,
	}
}

// AtRisk reports whether the item counts as at risk for aggregate
// purposes: more than 15 points behind the expected line and not done.
func AtRisk(it *domain.Item, now time.Time) bool {
	if it.Status == domain.StatusDone {
		return false
	}
	s := ComputeSchedule(it, now)
	return s.Gap > atRiskGap
}

// expectedProgress returns clamp(elapsed/total*100, 0, 100). A zero or
// negative date range cannot be divided through: such an item counts as
// fully expected once its end date has passed and not at all before,
// which leaves a start==end==now item at 0 (tier low).
func expectedProgress(it *domain.Item, now time.Time) float64 {
	total := it.EndDate.Sub(it.StartDate)
	if total <= 0 {
		if now.After(it.EndDate) {
			return 100
		}
		return 0
	}

	elapsed := now.Sub(it.StartDate)
	pct := float64(elapsed) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
