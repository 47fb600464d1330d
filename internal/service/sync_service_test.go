package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rsoares/roadmap/internal/repository"
	"github.com/rsoares/roadmap/internal/testutil"
	"github.com/rsoares/roadmap/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	cfg       tracker.Config
	connectOK bool
	issues    []tracker.Issue
}

func (f *fakeClient) SearchIssues(ctx context.Context, jql string, startAt, maxResults int) (*tracker.SearchResult, error) {
	return &tracker.SearchResult{
		Issues:     f.issues,
		StartAt:    startAt,
		MaxResults: maxResults,
		Total:      len(f.issues),
	}, nil
}

func (f *fakeClient) SearchChildIssues(ctx context.Context, parentKey string) (*tracker.SearchResult, error) {
	return &tracker.SearchResult{}, nil
}

func (f *fakeClient) TestConnection(ctx context.Context) bool {
	return f.connectOK
}

func newSyncFixtures(t *testing.T) (*syncService, *fakeClient, repository.ItemRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	items := repository.NewSQLiteItemRepo(database)
	issues := repository.NewSQLiteTrackerIssueRepo(database)
	config := repository.NewSQLiteTrackerConfigRepo(database)

	fake := &fakeClient{connectOK: true}
	svc := NewSyncService(config, issues, items).(*syncService)
	svc.newClient = func(cfg tracker.Config) tracker.Client {
		fake.cfg = cfg
		return fake
	}
	return svc, fake, items
}

func TestSyncService_ConfigureObscuresToken(t *testing.T) {
	svc, _, _ := newSyncFixtures(t)
	ctx := context.Background()

	require.NoError(t, svc.Configure(ctx, "https://example.atlassian.net", "pm@example.com", "raw-token"))

	stored, err := svc.Config(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "raw-token", stored.APIToken, "token must not be stored in the clear")

	revealed, err := tracker.RevealToken(stored.APIToken)
	require.NoError(t, err)
	assert.Equal(t, "raw-token", revealed)

	assert.Error(t, svc.Configure(ctx, "", "pm@example.com", "raw-token"))
}

func TestSyncService_ConfigureKeepsCreationTime(t *testing.T) {
	svc, _, _ := newSyncFixtures(t)
	ctx := context.Background()

	require.NoError(t, svc.Configure(ctx, "https://example.atlassian.net", "pm@example.com", "one"))
	first, err := svc.Config(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Configure(ctx, "https://example.atlassian.net", "lead@example.com", "two"))
	second, err := svc.Config(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "lead@example.com", second.Email)
}

func TestSyncService_RequiresConfiguration(t *testing.T) {
	svc, _, _ := newSyncFixtures(t)
	ctx := context.Background()

	// Make sure ambient environment configuration does not leak in.
	t.Setenv("ROADMAP_TRACKER_URL", "")
	t.Setenv("ROADMAP_TRACKER_EMAIL", "")
	t.Setenv("ROADMAP_TRACKER_TOKEN", "")

	_, err := svc.TestConnection(ctx)
	assert.True(t, errors.Is(err, tracker.ErrNotConfigured), "got: %v", err)

	_, err = svc.Sync(ctx)
	assert.True(t, errors.Is(err, tracker.ErrNotConfigured), "got: %v", err)
}

func TestSyncService_SyncUsesStoredCredentials(t *testing.T) {
	svc, fake, items := newSyncFixtures(t)
	ctx := context.Background()

	fake.issues = []tracker.Issue{
		{Key: "PROJ-1", Type: "Story", Summary: "Synced story", StatusName: "In Progress"},
	}

	require.NoError(t, svc.Configure(ctx, "https://example.atlassian.net", "pm@example.com", "raw-token"))

	result, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	assert.Equal(t, "https://example.atlassian.net", fake.cfg.BaseURL)
	assert.Equal(t, "raw-token", fake.cfg.APIToken, "client receives the revealed token")

	stored, err := items.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Synced story", stored[0].Name)

	mirrored, err := svc.Issues(ctx)
	require.NoError(t, err)
	assert.Len(t, mirrored, 1)
}
