package roadmap

import (
	"testing"
	"time"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilter_EmptyCriteria_Identity(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("Auth revamp"),
		testutil.NewTestItem("Billing v2", testutil.WithArea(domain.AreaProduct)),
		testutil.NewTestItem("Cluster upgrade", testutil.WithArea(domain.AreaInfrastructure)),
	}

	got := Filter(items, domain.Criteria{})
	require.Len(t, got, 3)
	for i := range items {
		assert.Same(t, items[i], got[i], "order must be preserved")
	}
}

func TestFilter_AreaFacet(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("A", testutil.WithArea(domain.AreaEngineering)),
		testutil.NewTestItem("B", testutil.WithArea(domain.AreaProduct)),
		testutil.NewTestItem("C", testutil.WithArea(domain.AreaEngineering)),
	}

	got := Filter(items, domain.Criteria{Areas: []domain.Area{domain.AreaEngineering}})
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
}

func TestFilter_TeamAndStatusFacets(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("A", testutil.WithTeam("Atlas"), testutil.WithStatus(domain.StatusDone)),
		testutil.NewTestItem("B", testutil.WithTeam("Atlas"), testutil.WithStatus(domain.StatusTodo)),
		testutil.NewTestItem("C", testutil.WithTeam("Borealis"), testutil.WithStatus(domain.StatusDone)),
	}

	got := Filter(items, domain.Criteria{
		Teams:    []string{"Atlas"},
		Statuses: []domain.ItemStatus{domain.StatusDone},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestFilter_PeriodYearMismatchExcludes(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("2024 item", testutil.WithDates(date(2024, 3, 1), date(2024, 6, 1))),
		testutil.NewTestItem("2025 item", testutil.WithDates(date(2025, 3, 1), date(2025, 6, 1))),
	}

	criteria := domain.Criteria{Period: domain.Period{
		Year:   2025,
		Halves: []domain.Half{domain.HalfH1},
	}}

	got := Filter(items, criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "2025 item", got[0].Name)
}

func TestFilter_YearAloneIsNoConstraint(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("2024 item", testutil.WithDates(date(2024, 3, 1), date(2024, 6, 1))),
	}

	// No halves or quarters selected: the year never excludes by itself.
	got := Filter(items, domain.Criteria{Period: domain.Period{Year: 2025}})
	assert.Len(t, got, 1)
}

func TestFilter_HalfSelection_UsesStartMonth(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("June start", testutil.WithDates(date(2025, 6, 15), date(2025, 9, 1))),
		testutil.NewTestItem("July start", testutil.WithDates(date(2025, 7, 1), date(2025, 8, 1))),
	}

	got := Filter(items, domain.Criteria{Period: domain.Period{
		Year:   2025,
		Halves: []domain.Half{domain.HalfH1},
	}})
	require.Len(t, got, 1)
	assert.Equal(t, "June start", got[0].Name)
}

func TestFilter_QuarterSelection(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("Q1", testutil.WithDates(date(2025, 2, 1), date(2025, 4, 1))),
		testutil.NewTestItem("Q2", testutil.WithDates(date(2025, 4, 1), date(2025, 7, 1))),
		testutil.NewTestItem("Q3", testutil.WithDates(date(2025, 8, 1), date(2025, 10, 1))),
		testutil.NewTestItem("Q4", testutil.WithDates(date(2025, 11, 1), date(2025, 12, 31))),
	}

	got := Filter(items, domain.Criteria{Period: domain.Period{
		Year:     2025,
		Quarters: []domain.Quarter{domain.QuarterQ2, domain.QuarterQ4},
	}})
	require.Len(t, got, 2)
	assert.Equal(t, "Q2", got[0].Name)
	assert.Equal(t, "Q4", got[1].Name)
}

func TestFilter_QuarterPriorityOverHalf(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("Jan", testutil.WithDates(date(2025, 1, 10), date(2025, 3, 1))),
		testutil.NewTestItem("Aug", testutil.WithDates(date(2025, 8, 10), date(2025, 10, 1))),
	}

	// Q1 + H2 is inconsistent; the quarter set alone must decide.
	inconsistent := domain.Criteria{Period: domain.Period{
		Year:     2025,
		Halves:   []domain.Half{domain.HalfH2},
		Quarters: []domain.Quarter{domain.QuarterQ1},
	}}
	quarterOnly := domain.Criteria{Period: domain.Period{
		Year:     2025,
		Quarters: []domain.Quarter{domain.QuarterQ1},
	}}

	got := Filter(items, inconsistent)
	want := Filter(items, quarterOnly)
	assert.Equal(t, want, got)
	require.Len(t, got, 1)
	assert.Equal(t, "Jan", got[0].Name)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	items := []*domain.Item{
		testutil.NewTestItem("A", testutil.WithArea(domain.AreaProduct)),
		testutil.NewTestItem("B"),
	}

	_ = Filter(items, domain.Criteria{Areas: []domain.Area{domain.AreaEngineering}})
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "B", items[1].Name)
}
