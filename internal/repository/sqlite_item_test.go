package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteItemRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(database)
	ctx := context.Background()

	item := testutil.NewTestItem("Checkout rewrite",
		testutil.WithArea(domain.AreaProduct),
		testutil.WithTeam("Payments"),
		testutil.WithProgress(35),
		testutil.WithStatus(domain.StatusInProgress),
		testutil.WithLinks("https://example.com/rfc", "https://example.com/board"),
		testutil.WithSwimlane("Q3 bets"),
	)
	item.Comments = "waiting on fraud review"

	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout rewrite", got.Name)
	assert.Equal(t, domain.AreaProduct, got.Area)
	assert.Equal(t, "Payments", got.TeamName)
	assert.Equal(t, 35, got.Progress)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, "waiting on fraud review", got.Comments)
	assert.Equal(t, []string{"https://example.com/rfc", "https://example.com/board"}, got.Links)
	assert.Equal(t, "Q3 bets", got.Swimlane)
	assert.True(t, got.ManualEdit)
	assert.Equal(t, item.StartDate.Format("2006-01-02"), got.StartDate.Format("2006-01-02"))
}

func TestSQLiteItemRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteItemRepo_ListOrderedByCreation(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(database)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		it := testutil.NewTestItem(name)
		it.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		it.UpdatedAt = it.CreatedAt
		require.NoError(t, repo.Create(ctx, it))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "third", items[2].Name)
}

func TestSQLiteItemRepo_UpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(database)
	ctx := context.Background()

	item := testutil.NewTestItem("Original")
	require.NoError(t, repo.Create(ctx, item))

	item.Name = "Renamed"
	item.Progress = 80
	item.Status = domain.StatusDone
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 80, got.Progress)
	assert.Equal(t, domain.StatusDone, got.Status)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.GetByID(ctx, item.ID)
	assert.Error(t, err)
}

func TestSQLiteItemRepo_UpsertFromTracker_CreatesThenUpdates(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(database)
	ctx := context.Background()

	mirrored := testutil.NewTestItem("PROJ-42 summary",
		testutil.WithSource("Tracker - PROJ-42"),
		testutil.WithManualEdit(false),
		testutil.WithProgress(10),
	)

	written, err := repo.UpsertFromTracker(ctx, mirrored)
	require.NoError(t, err)
	assert.True(t, written)

	// Second sync for the same issue updates in place.
	mirrored2 := testutil.NewTestItem("PROJ-42 updated summary",
		testutil.WithSource("Tracker - PROJ-42"),
		testutil.WithManualEdit(false),
		testutil.WithProgress(60),
	)
	written, err = repo.UpsertFromTracker(ctx, mirrored2)
	require.NoError(t, err)
	assert.True(t, written)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "upsert must not duplicate by source")
	assert.Equal(t, mirrored.ID, items[0].ID, "row identity survives updates")
	assert.Equal(t, "PROJ-42 updated summary", items[0].Name)
	assert.Equal(t, 60, items[0].Progress)
}

func TestSQLiteItemRepo_UpsertFromTracker_ManualEditWins(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(database)
	ctx := context.Background()

	// A human has edited the mirrored item.
	manual := testutil.NewTestItem("Curated name",
		testutil.WithSource("Tracker - PROJ-7"),
		testutil.WithManualEdit(true),
		testutil.WithProgress(55),
	)
	require.NoError(t, repo.Create(ctx, manual))

	incoming := testutil.NewTestItem("Tracker name",
		testutil.WithSource("Tracker - PROJ-7"),
		testutil.WithManualEdit(false),
		testutil.WithProgress(5),
	)
	written, err := repo.UpsertFromTracker(ctx, incoming)
	require.NoError(t, err)
	assert.False(t, written, "manual items must not be overwritten")

	got, err := repo.GetByID(ctx, manual.ID)
	require.NoError(t, err)
	assert.Equal(t, "Curated name", got.Name)
	assert.Equal(t, 55, got.Progress)
	assert.True(t, got.ManualEdit)
}
