package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
	"github.com/rsoares/roadmap/internal/tracker"
)

// searchJQL selects every issue type the roadmap mirrors, newest
// activity first.
const searchJQL = "issuetype in (Epic, Story, Task) ORDER BY updated DESC"

// Result summarizes one reconciliation run.
type Result struct {
	// Processed counts issues mirrored during this run.
	Processed int
	// Skipped counts items left alone because a human edited them.
	Skipped int
	// Errors holds non-fatal per-issue problems, such as a failed
	// child lookup for one epic.
	Errors  []string
	Message string
}

// Reconciler pulls issues from the tracker and projects them into the
// local stores. Each page is written as it is fetched, so a failure
// partway through leaves earlier pages durable.
type Reconciler struct {
	client   tracker.Client
	items    repository.ItemRepo
	issues   repository.TrackerIssueRepo
	pageSize int
	now      func() time.Time
}

func NewReconciler(client tracker.Client, items repository.ItemRepo, issues repository.TrackerIssueRepo, pageSize int) *Reconciler {
	if pageSize <= 0 {
		pageSize = tracker.DefaultConfig().PageSize
	}
	return &Reconciler{
		client:   client,
		items:    items,
		issues:   issues,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// Sync runs one full reconciliation pass: page through the tracker's
// search results, mirror each issue, and project it into the item
// store. A failed search aborts the run; pages already written stay.
func (r *Reconciler) Sync(ctx context.Context) (*Result, error) {
	result := &Result{}

	startAt := 0
	for {
		page, err := r.client.SearchIssues(ctx, searchJQL, startAt, r.pageSize)
		if err != nil {
			result.Message = fmt.Sprintf("sync aborted at offset %d: %v", startAt, err)
			return result, fmt.Errorf("searching tracker issues: %w", err)
		}

		for i := range page.Issues {
			if err := r.processIssue(ctx, &page.Issues[i], result); err != nil {
				result.Message = fmt.Sprintf("sync aborted on issue %s: %v", page.Issues[i].Key, err)
				return result, err
			}
		}

		startAt += r.pageSize
		if startAt >= page.Total {
			break
		}
	}

	result.Message = fmt.Sprintf("sync complete: %d issues processed, %d manual items skipped",
		result.Processed, result.Skipped)
	return result, nil
}

func (r *Reconciler) processIssue(ctx context.Context, issue *tracker.Issue, result *Result) error {
	progress := 0
	if issue.Type == string(domain.IssueEpic) {
		children, err := r.client.SearchChildIssues(ctx, issue.Key)
		if err != nil {
			// One epic's child lookup failing should not sink the
			// whole run; the epic just reports zero progress.
			result.Errors = append(result.Errors,
				fmt.Sprintf("epic %s: child lookup failed: %v", issue.Key, err))
		} else {
			progress = rollupProgress(children.Issues)
		}
	}

	now := r.now().UTC()
	mirrored := &domain.TrackerIssue{
		IssueID:      issue.Key,
		IssueType:    domain.IssueType(issue.Type),
		Summary:      issue.Summary,
		StartDate:    issue.StartDate,
		DueDate:      issue.DueDate,
		StatusText:   issue.StatusName,
		Progress:     progress,
		LastSyncedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.issues.Upsert(ctx, mirrored); err != nil {
		return fmt.Errorf("mirroring issue %s: %w", issue.Key, err)
	}

	written, err := r.items.UpsertFromTracker(ctx, projectItem(issue, progress, now))
	if err != nil {
		return fmt.Errorf("projecting issue %s: %w", issue.Key, err)
	}

	result.Processed++
	if !written {
		result.Skipped++
	}
	return nil
}

// projectItem maps a tracker issue onto the local item shape. Issues
// carry no area or team, so projected items land in engineering until a
// human reassigns them (which also flips the manual-edit guard).
func projectItem(issue *tracker.Issue, progress int, now time.Time) *domain.Item {
	start := now
	if issue.StartDate != nil {
		start = *issue.StartDate
	}
	end := start.AddDate(0, 1, 0)
	if issue.DueDate != nil && !issue.DueDate.Before(start) {
		end = *issue.DueDate
	}

	return &domain.Item{
		ID:        uuid.New().String(),
		Name:      issue.Summary,
		Area:      domain.AreaEngineering,
		StartDate: start,
		EndDate:   end,
		Progress:  progress,
		Status:    classifyStatus(issue.StatusName),
		Source:    SourceLabel(issue.Key),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SourceLabel is the item source recorded for issues mirrored from the
// tracker, keyed by issue so repeated syncs update in place.
func SourceLabel(issueKey string) string {
	return "Tracker - " + issueKey
}
