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

func TestTeamService_EnsureIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTeamService(repository.NewSQLiteTeamRepo(database))
	ctx := context.Background()

	first, err := svc.Ensure(ctx, "Platform")
	require.NoError(t, err)
	second, err := svc.Ensure(ctx, "Platform")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	teams, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestAreaService_EnsureIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewAreaService(repository.NewSQLiteAreaRepo(database))
	ctx := context.Background()

	first, err := svc.Ensure(ctx, string(domain.AreaInfrastructure))
	require.NoError(t, err)
	second, err := svc.Ensure(ctx, string(domain.AreaInfrastructure))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestMilestoneService_CreateValidates(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewMilestoneService(repository.NewSQLiteMilestoneRepo(database))
	ctx := context.Background()

	require.Error(t, svc.Create(ctx, &domain.Milestone{Name: ""}))

	m := &domain.Milestone{Name: "GA launch", Date: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.Create(ctx, m))
	assert.NotEmpty(t, m.ID)

	milestones, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, milestones, 1)
}

func TestAlertService_CreateValidatesKind(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewAlertService(repository.NewSQLiteAlertRepo(database))
	ctx := context.Background()

	assert.Error(t, svc.Create(ctx, &domain.Alert{Kind: "bogus", Title: "x"}))
	assert.Error(t, svc.Create(ctx, &domain.Alert{Title: ""}))

	a := &domain.Alert{Title: "Heads up"}
	require.NoError(t, svc.Create(ctx, a))
	assert.Equal(t, domain.AlertInfo, a.Kind, "kind defaults to info")
}
