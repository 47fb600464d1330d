package domain

type Half string

const (
	HalfH1 Half = "H1"
	HalfH2 Half = "H2"
)

type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

// Period selects a year plus optional half-year and quarter buckets.
// The period constraint only applies when at least one half or quarter
// is selected; the year alone never excludes anything.
type Period struct {
	Year     int
	Halves   []Half
	Quarters []Quarter
}

// Active reports whether the period constraint participates in filtering.
func (p Period) Active() bool {
	return len(p.Halves) > 0 || len(p.Quarters) > 0
}

// Criteria is a transient filter selection. An empty slice for a facet
// means that facet is unconstrained.
type Criteria struct {
	Areas    []Area
	Teams    []string
	Statuses []ItemStatus
	Period   Period
}
