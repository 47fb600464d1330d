package repository

import (
	"context"

	"github.com/rsoares/roadmap/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, it *domain.Item) error
	Delete(ctx context.Context, id string) error

	// UpsertFromTracker writes a tracker-projected item keyed by its
	// source label. Items whose manual-edit flag is set are never
	// touched; the return value reports whether a row was written.
	UpsertFromTracker(ctx context.Context, it *domain.Item) (bool, error)
}

type AreaRepo interface {
	Create(ctx context.Context, a *domain.AreaRecord) error
	GetByName(ctx context.Context, name string) (*domain.AreaRecord, error)
	// List returns areas ordered by usage count descending.
	List(ctx context.Context) ([]*domain.AreaRecord, error)
	IncrementUsage(ctx context.Context, id string) error
}

type TeamRepo interface {
	Create(ctx context.Context, tm *domain.Team) error
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	// List returns teams ordered by usage count descending.
	List(ctx context.Context) ([]*domain.Team, error)
	IncrementUsage(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	List(ctx context.Context) ([]*domain.Milestone, error)
}

type AlertRepo interface {
	Create(ctx context.Context, a *domain.Alert) error
	List(ctx context.Context) ([]*domain.Alert, error)
	Dismiss(ctx context.Context, id string) error
}

type TrackerIssueRepo interface {
	// Upsert replaces any existing mirrored row with the same issue id.
	Upsert(ctx context.Context, issue *domain.TrackerIssue) error
	// List returns mirrored issues ordered by last sync, newest first.
	List(ctx context.Context) ([]*domain.TrackerIssue, error)
}

type TrackerConfigRepo interface {
	// Get returns nil, nil when no configuration has been saved yet.
	Get(ctx context.Context) (*domain.TrackerConfig, error)
	Save(ctx context.Context, cfg *domain.TrackerConfig) error
}
