package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/rsoares/roadmap/internal/domain"
)

// Item options
type ItemOption func(*domain.Item)

func WithArea(a domain.Area) ItemOption {
	return func(it *domain.Item) {
		it.Area = a
	}
}

func WithTeam(name string) ItemOption {
	return func(it *domain.Item) {
		it.TeamName = name
	}
}

func WithDates(start, end time.Time) ItemOption {
	return func(it *domain.Item) {
		it.StartDate = start
		it.EndDate = end
	}
}

func WithProgress(pct int) ItemOption {
	return func(it *domain.Item) {
		it.Progress = pct
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(it *domain.Item) {
		it.Status = s
	}
}

func WithSource(source string) ItemOption {
	return func(it *domain.Item) {
		it.Source = source
	}
}

func WithManualEdit(manual bool) ItemOption {
	return func(it *domain.Item) {
		it.ManualEdit = manual
	}
}

func WithLinks(links ...string) ItemOption {
	return func(it *domain.Item) {
		it.Links = links
	}
}

func WithSwimlane(lane string) ItemOption {
	return func(it *domain.Item) {
		it.Swimlane = lane
	}
}

// NewTestItem builds a valid manual item spanning a three-month window
// around the current date. Options override individual fields.
func NewTestItem(name string, opts ...ItemOption) *domain.Item {
	now := time.Now().UTC()
	it := &domain.Item{
		ID:         uuid.New().String(),
		Name:       name,
		Area:       domain.AreaEngineering,
		TeamName:   "Platform",
		StartDate:  now.AddDate(0, -1, 0),
		EndDate:    now.AddDate(0, 2, 0),
		Progress:   0,
		Status:     domain.StatusTodo,
		Source:     domain.SourceManual,
		ManualEdit: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// NewTestMilestone builds a milestone on the given date.
func NewTestMilestone(name string, date time.Time) *domain.Milestone {
	return &domain.Milestone{
		ID:        uuid.New().String(),
		Name:      name,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestIssue builds a mirrored tracker issue.
func NewTestIssue(key string, issueType domain.IssueType, statusText string, progress int) *domain.TrackerIssue {
	now := time.Now().UTC()
	return &domain.TrackerIssue{
		IssueID:      key,
		IssueType:    issueType,
		Summary:      "Issue " + key,
		StatusText:   statusText,
		Progress:     progress,
		LastSyncedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
