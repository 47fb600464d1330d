package cli

import (
	"fmt"
	"strings"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/spf13/pflag"
)

// filterFlags collects the shared filter selection used by every
// listing command. The same flag set backs "item list", "dashboard"
// and "timeline" so filters behave identically everywhere.
type filterFlags struct {
	areas    []string
	teams    []string
	statuses []string
	year     int
	halves   []string
	quarters []string
}

// register adds the filter flags to the given flag set.
func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.areas, "area", nil, "Filter by area (engineering|product|infrastructure)")
	fs.StringSliceVar(&f.teams, "team", nil, "Filter by team name")
	fs.StringSliceVar(&f.statuses, "status", nil, "Filter by status (todo|in_progress|done)")
	fs.IntVar(&f.year, "year", 0, "Period year (required for --half/--quarter)")
	fs.StringSliceVar(&f.halves, "half", nil, "Filter by half (H1|H2)")
	fs.StringSliceVar(&f.quarters, "quarter", nil, "Filter by quarter (Q1..Q4)")
}

// criteria validates the flag values and converts them into a filter
// selection.
func (f *filterFlags) criteria() (domain.Criteria, error) {
	var c domain.Criteria

	for _, a := range f.areas {
		area := domain.Area(strings.ToLower(a))
		if !area.Valid() {
			return c, fmt.Errorf("unknown area %q", a)
		}
		c.Areas = append(c.Areas, area)
	}
	c.Teams = f.teams
	for _, s := range f.statuses {
		status := domain.ItemStatus(strings.ToLower(s))
		if !status.Valid() {
			return c, fmt.Errorf("unknown status %q", s)
		}
		c.Statuses = append(c.Statuses, status)
	}

	if (len(f.halves) > 0 || len(f.quarters) > 0) && f.year == 0 {
		return c, fmt.Errorf("--half and --quarter require --year")
	}
	c.Period.Year = f.year
	for _, h := range f.halves {
		switch strings.ToUpper(h) {
		case string(domain.HalfH1):
			c.Period.Halves = append(c.Period.Halves, domain.HalfH1)
		case string(domain.HalfH2):
			c.Period.Halves = append(c.Period.Halves, domain.HalfH2)
		default:
			return c, fmt.Errorf("unknown half %q (use H1 or H2)", h)
		}
	}
	for _, q := range f.quarters {
		quarter := domain.Quarter(strings.ToUpper(q))
		switch quarter {
		case domain.QuarterQ1, domain.QuarterQ2, domain.QuarterQ3, domain.QuarterQ4:
			c.Period.Quarters = append(c.Period.Quarters, quarter)
		default:
			return c, fmt.Errorf("unknown quarter %q (use Q1..Q4)", q)
		}
	}

	return c, nil
}
