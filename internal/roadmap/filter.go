package roadmap

import (
	"github.com/rsoares/roadmap/internal/domain"
)

// Filter returns the items matching every facet of the criteria, in input
// order. It is pure: the input slice is never modified. An empty selection
// for a facet means that facet admits everything.
//
// Filter assumes the criteria are internally consistent; mutual exclusion
// between conflicting half and quarter selections is the UI's job.
func Filter(items []*domain.Item, c domain.Criteria) []*domain.Item {
	out := make([]*domain.Item, 0, len(items))
	for _, it := range items {
		if matches(it, c) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it *domain.Item, c domain.Criteria) bool {
	return matchesFacet(c.Areas, it.Area) &&
		matchesFacet(c.Teams, it.TeamName) &&
		matchesFacet(c.Statuses, it.Status) &&
		matchesPeriod(it, c.Period)
}

// matchesPeriod applies the year/half/quarter rule. Both the half and the
// quarter bucket are derived from the item's start month. When any quarter
// is selected the quarter set alone decides; halves only decide when no
// quarter is selected.
func matchesPeriod(it *domain.Item, p domain.Period) bool {
	if !p.Active() {
		return true
	}
	if it.StartDate.Year() != p.Year {
		return false
	}

	month := int(it.StartDate.Month())

	if len(p.Quarters) > 0 {
		return matchesFacet(p.Quarters, quarterOf(month))
	}

	half := domain.HalfH1
	if month > 6 {
		half = domain.HalfH2
	}
	return matchesFacet(p.Halves, half)
}

func quarterOf(month int) domain.Quarter {
	switch (month + 2) / 3 {
	case 1:
		return domain.QuarterQ1
	case 2:
		return domain.QuarterQ2
	case 3:
		return domain.QuarterQ3
	default:
		return domain.QuarterQ4
	}
}

// matchesFacet reports whether v is admitted by the selection: an empty
// selection admits everything, otherwise v must be a member.
func matchesFacet[T comparable](selected []T, v T) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == v {
			return true
		}
	}
	return false
}
