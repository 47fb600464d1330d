package domain

import "time"

// TrackerIssue is a mirrored record of an external tracker issue, keyed
// by the tracker's issue id. Mirrored rows are written only by the sync
// path; the tracker owns their content.
type TrackerIssue struct {
	IssueID      string
	IssueType    IssueType
	Summary      string
	StartDate    *time.Time
	DueDate      *time.Time
	StatusText   string
	Progress     int
	LastSyncedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
