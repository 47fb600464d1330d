package formatter

import (
	"fmt"
	"strconv"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/syncer"
)

// FormatAreaList renders stored areas, most used first.
func FormatAreaList(areas []*domain.AreaRecord) string {
	rows := make([][]string, 0, len(areas))
	for _, a := range areas {
		rows = append(rows, []string{a.Name, strconv.Itoa(a.UsageCount)})
	}
	return RenderTable([]string{"AREA", "USED"}, rows)
}

// FormatTeamList renders stored teams, most used first.
func FormatTeamList(teams []*domain.Team) string {
	rows := make([][]string, 0, len(teams))
	for _, tm := range teams {
		rows = append(rows, []string{tm.Name, strconv.Itoa(tm.UsageCount)})
	}
	return RenderTable([]string{"TEAM", "USED"}, rows)
}

// FormatMilestoneList renders milestones in date order.
func FormatMilestoneList(milestones []*domain.Milestone) string {
	rows := make([][]string, 0, len(milestones))
	for _, m := range milestones {
		rows = append(rows, []string{
			StylePurple.Render(markerRune),
			m.Date.Format("2006-01-02"),
			m.Name,
			m.Area,
		})
	}
	return RenderTable([]string{"", "DATE", "MILESTONE", "AREA"}, rows)
}

// FormatIssueList renders mirrored tracker issues, newest sync first.
func FormatIssueList(issues []*domain.TrackerIssue) string {
	rows := make([][]string, 0, len(issues))
	for _, is := range issues {
		due := ""
		if is.DueDate != nil {
			due = is.DueDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			Bold(is.IssueID),
			string(is.IssueType),
			is.Summary,
			is.StatusText,
			RenderProgress(is.Progress, 10),
			due,
			Dim(is.LastSyncedAt.Format("2006-01-02 15:04")),
		})
	}
	return RenderTable([]string{"KEY", "TYPE", "SUMMARY", "STATUS", "PROGRESS", "DUE", "SYNCED"}, rows)
}

// FormatSyncResult renders the outcome of a sync run.
func FormatSyncResult(r *syncer.Result) string {
	out := StyleGreen.Render(r.Message)
	if len(r.Errors) > 0 {
		out = r.Message
		for _, e := range r.Errors {
			out += "\n" + StyleYellow.Render(fmt.Sprintf("warning: %s", e))
		}
	}
	return out
}
