package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/roadmap"
)

// FormatItemList renders the item table shown by "item list".
func FormatItemList(items []*domain.Item, now time.Time) string {
	headers := []string{"ID", "NAME", "AREA", "TEAM", "WINDOW", "PROGRESS", "STATUS", "RISK"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		sched := roadmap.ComputeSchedule(it, now)
		rows = append(rows, []string{
			Dim(it.DisplayID()),
			it.Name,
			string(it.Area),
			it.TeamName,
			fmt.Sprintf("%s → %s", it.StartDate.Format("2006-01-02"), it.EndDate.Format("2006-01-02")),
			RenderProgress(it.Progress, 10),
			StatusLabel(it.Status),
			TierIndicator(sched.Tier),
		})
	}
	return RenderTable(headers, rows)
}

// FormatItemInspect renders the full detail view for one item.
func FormatItemInspect(it *domain.Item, now time.Time) string {
	sched := roadmap.ComputeSchedule(it, now)

	var b strings.Builder
	b.WriteString(Header(it.Name) + "\n\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(padRight(label+":", 14)), value))
	}

	field("ID", it.ID)
	field("Area", string(it.Area))
	if it.TeamName != "" {
		field("Team", it.TeamName)
	}
	field("Window", fmt.Sprintf("%s → %s",
		it.StartDate.Format("2006-01-02"), it.EndDate.Format("2006-01-02")))
	field("Progress", RenderProgress(it.Progress, 20))
	field("Expected", fmt.Sprintf("%.0f%%", sched.ExpectedProgress))
	field("Risk", fmt.Sprintf("%s %s", TierIndicator(sched.Tier), Dim(fmt.Sprintf("(gap %.0f)", sched.Gap))))
	field("Status", StatusLabel(it.Status))
	field("Source", it.Source)
	if it.ManualEdit {
		field("Edited", "manually (sync will not overwrite)")
	}
	if it.Swimlane != "" {
		field("Swimlane", it.Swimlane)
	}
	if len(it.Links) > 0 {
		field("Links", strings.Join(it.Links, ", "))
	}
	if len(it.DependencyIDs) > 0 {
		field("Depends on", strings.Join(it.DependencyIDs, ", "))
	}
	if it.Comments != "" {
		b.WriteString("\n" + it.Comments + "\n")
	}

	return b.String()
}
