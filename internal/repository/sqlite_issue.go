package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/domain"
)

// SQLiteTrackerIssueRepo implements TrackerIssueRepo on the mirrored
// tracker_issues table.
type SQLiteTrackerIssueRepo struct {
	db db.DBTX
}

func NewSQLiteTrackerIssueRepo(db db.DBTX) *SQLiteTrackerIssueRepo {
	return &SQLiteTrackerIssueRepo{db: db}
}

func (r *SQLiteTrackerIssueRepo) Upsert(ctx context.Context, issue *domain.TrackerIssue) error {
	query := `INSERT INTO tracker_issues
		(issue_id, issue_type, summary, start_date, due_date, status, progress,
		 last_synced_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(issue_id) DO UPDATE SET
			issue_type = excluded.issue_type,
			summary = excluded.summary,
			start_date = excluded.start_date,
			due_date = excluded.due_date,
			status = excluded.status,
			progress = excluded.progress,
			last_synced_at = excluded.last_synced_at,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		issue.IssueID,
		string(issue.IssueType),
		issue.Summary,
		nullableTimeToString(issue.StartDate, dateLayout),
		nullableTimeToString(issue.DueDate, dateLayout),
		issue.StatusText,
		issue.Progress,
		issue.LastSyncedAt.Format(time.RFC3339),
		issue.CreatedAt.Format(time.RFC3339),
		issue.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting tracker issue: %w", err)
	}
	return nil
}

func (r *SQLiteTrackerIssueRepo) List(ctx context.Context) ([]*domain.TrackerIssue, error) {
	query := `SELECT issue_id, issue_type, summary, start_date, due_date,
		status, progress, last_synced_at, created_at, updated_at
		FROM tracker_issues ORDER BY last_synced_at DESC, issue_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tracker issues: %w", err)
	}
	defer rows.Close()

	var issues []*domain.TrackerIssue
	for rows.Next() {
		var issue domain.TrackerIssue
		var typeStr, syncedStr, createdStr, updatedStr string
		var startStr, dueStr sql.NullString
		if err := rows.Scan(
			&issue.IssueID, &typeStr, &issue.Summary, &startStr, &dueStr,
			&issue.StatusText, &issue.Progress, &syncedStr, &createdStr, &updatedStr,
		); err != nil {
			return nil, fmt.Errorf("scanning tracker issue row: %w", err)
		}
		issue.IssueType = domain.IssueType(typeStr)
		issue.StartDate = parseNullableTime(startStr, dateLayout)
		issue.DueDate = parseNullableTime(dueStr, dateLayout)
		if issue.LastSyncedAt, err = time.Parse(time.RFC3339, syncedStr); err != nil {
			return nil, fmt.Errorf("parsing last_synced_at: %w", err)
		}
		if issue.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if issue.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		issues = append(issues, &issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracker issues: %w", err)
	}
	return issues, nil
}
