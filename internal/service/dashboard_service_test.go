package service

import (
	"context"
	"testing"
	"time"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
	"github.com/rsoares/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardFixtures(t *testing.T) (DashboardService, repository.ItemRepo, repository.AlertRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	items := repository.NewSQLiteItemRepo(database)
	alerts := repository.NewSQLiteAlertRepo(database)
	return NewDashboardService(items, alerts), items, alerts
}

func TestDashboardService_MetricsAppliesCriteria(t *testing.T) {
	svc, items, _ := newDashboardFixtures(t)
	ctx := context.Background()

	require.NoError(t, items.Create(ctx, testutil.NewTestItem("Eng A",
		testutil.WithArea(domain.AreaEngineering), testutil.WithProgress(50))))
	require.NoError(t, items.Create(ctx, testutil.NewTestItem("Eng B",
		testutil.WithArea(domain.AreaEngineering), testutil.WithProgress(70))))
	require.NoError(t, items.Create(ctx, testutil.NewTestItem("Prod",
		testutil.WithArea(domain.AreaProduct), testutil.WithProgress(10))))

	m, err := svc.Metrics(ctx, domain.Criteria{Areas: []domain.Area{domain.AreaEngineering}})
	require.NoError(t, err)

	require.Len(t, m.Allocation, 3, "allocation always covers the fixed area set")
	assert.Equal(t, 2, m.Allocation[0].Count)
	assert.InDelta(t, 60.0, m.Allocation[0].MeanProgress, 0.001)
	assert.Equal(t, 0, m.Allocation[1].Count, "product filtered out")
	assert.Len(t, m.Deliveries, 6)
}

func TestDashboardService_GenerateAlerts(t *testing.T) {
	svc, items, alerts := newDashboardFixtures(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Halfway through its window with nothing done: expected 50, gap 50.
	behind := testutil.NewTestItem("Way behind",
		testutil.WithDates(now.AddDate(0, -1, 0), now.AddDate(0, 1, 0)),
		testutil.WithProgress(0),
		testutil.WithStatus(domain.StatusInProgress))
	onTrack := testutil.NewTestItem("On track",
		testutil.WithDates(now.AddDate(0, -1, 0), now.AddDate(0, 1, 0)),
		testutil.WithProgress(50),
		testutil.WithStatus(domain.StatusInProgress))
	require.NoError(t, items.Create(ctx, behind))
	require.NoError(t, items.Create(ctx, onTrack))

	created, err := svc.GenerateAlerts(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	open, err := alerts.List(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, domain.AlertRisk, open[0].Kind)
	require.NotNil(t, open[0].ItemID)
	assert.Equal(t, behind.ID, *open[0].ItemID)

	// A second run finds the open alert and creates nothing new.
	created, err = svc.GenerateAlerts(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	// Dismissing while still behind re-alerts on the next run.
	require.NoError(t, alerts.Dismiss(ctx, open[0].ID))
	created, err = svc.GenerateAlerts(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}
