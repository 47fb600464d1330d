package service

import (
	"context"
	"time"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/roadmap"
	"github.com/rsoares/roadmap/internal/syncer"
)

type ItemService interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	// ListFiltered returns items matching the criteria, preserving
	// repository order.
	ListFiltered(ctx context.Context, c domain.Criteria) ([]*domain.Item, error)
	Update(ctx context.Context, it *domain.Item) error
	Delete(ctx context.Context, id string) error
}

type AreaService interface {
	// List returns areas most-used first.
	List(ctx context.Context) ([]*domain.AreaRecord, error)
	// Ensure returns the named area, creating it if absent.
	Ensure(ctx context.Context, name string) (*domain.AreaRecord, error)
}

type TeamService interface {
	// List returns teams most-used first.
	List(ctx context.Context) ([]*domain.Team, error)
	// Ensure returns the named team, creating it if absent.
	Ensure(ctx context.Context, name string) (*domain.Team, error)
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	List(ctx context.Context) ([]*domain.Milestone, error)
}

type AlertService interface {
	Create(ctx context.Context, a *domain.Alert) error
	List(ctx context.Context) ([]*domain.Alert, error)
	Dismiss(ctx context.Context, id string) error
}

type DashboardService interface {
	// Metrics filters the item list by the criteria and aggregates it.
	Metrics(ctx context.Context, c domain.Criteria) (*roadmap.Metrics, error)
	// GenerateAlerts creates a risk alert for every at-risk item that
	// does not already have one, returning the number created.
	GenerateAlerts(ctx context.Context, now time.Time) (int, error)
}

// SyncService owns the tracker connection lifecycle and the sync run.
type SyncService interface {
	// Configure stores the tracker connection, obscuring the token.
	Configure(ctx context.Context, baseURL, email, token string) error
	// Config returns the stored connection, nil when unconfigured.
	Config(ctx context.Context) (*domain.TrackerConfig, error)
	// TestConnection checks the stored credentials against the tracker.
	TestConnection(ctx context.Context) (bool, error)
	// Issues lists mirrored tracker issues, most recently synced first.
	Issues(ctx context.Context) ([]*domain.TrackerIssue, error)
	// Sync runs one reconciliation pass against the tracker.
	Sync(ctx context.Context) (*syncer.Result, error)
}
