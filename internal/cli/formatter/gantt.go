package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/roadmap"
)

// Timeline layout constants. Each month column is cellWidth runes wide;
// the window is capped so wide roadmaps stay readable in a terminal.
const (
	cellWidth  = 4
	maxMonths  = 12
	barBlock   = "■"
	markerRune = "◆"
)

// RenderTimeline draws a month-bucketed gantt chart of the items plus a
// marker row per milestone. The window starts at the earliest start
// month and is clipped to maxMonths.
func RenderTimeline(items []*domain.Item, milestones []*domain.Milestone, now time.Time) string {
	if len(items) == 0 && len(milestones) == 0 {
		return Dim("Nothing to show on the timeline.")
	}

	start, months := timelineWindow(items, milestones, now)

	nameWidth := 0
	for _, it := range items {
		if w := lipgloss.Width(it.Name); w > nameWidth {
			nameWidth = w
		}
	}
	for _, m := range milestones {
		if w := lipgloss.Width(m.Name) + 2; w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder

	// Month axis.
	b.WriteString(strings.Repeat(" ", nameWidth+2))
	for i := 0; i < months; i++ {
		label := monthAt(start, i).Format("Jan")
		b.WriteString(StyleHeader.Render(padCell(label)))
	}
	b.WriteString("\n")

	for _, it := range items {
		tier := roadmap.ComputeSchedule(it, now).Tier
		b.WriteString(padRight(it.Name, nameWidth) + "  ")
		for i := 0; i < months; i++ {
			cell := monthAt(start, i)
			if overlapsMonth(it, cell) {
				b.WriteString(TierColor(tier).Render(strings.Repeat(barBlock, cellWidth)))
			} else {
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		b.WriteString("  " + Dim(fmt.Sprintf("%d%%", it.Progress)))
		b.WriteString("\n")
	}

	for _, m := range milestones {
		b.WriteString(padRight(StylePurple.Render(markerRune+" ")+m.Name, nameWidth) + "  ")
		for i := 0; i < months; i++ {
			cell := monthAt(start, i)
			if m.Date.Year() == cell.Year() && m.Date.Month() == cell.Month() {
				b.WriteString(StylePurple.Render(padCell(markerRune)))
			} else {
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		b.WriteString("  " + Dim(m.Date.Format("2006-01-02")))
		b.WriteString("\n")
	}

	return b.String()
}

// timelineWindow picks the first month shown and how many months follow.
func timelineWindow(items []*domain.Item, milestones []*domain.Milestone, now time.Time) (time.Time, int) {
	earliest := now
	latest := now
	for _, it := range items {
		if it.StartDate.Before(earliest) {
			earliest = it.StartDate
		}
		if it.EndDate.After(latest) {
			latest = it.EndDate
		}
	}
	for _, m := range milestones {
		if m.Date.Before(earliest) {
			earliest = m.Date
		}
		if m.Date.After(latest) {
			latest = m.Date
		}
	}

	start := time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := (latest.Year()-start.Year())*12 + int(latest.Month()-start.Month()) + 1
	if months < 1 {
		months = 1
	}
	if months > maxMonths {
		months = maxMonths
	}
	return start, months
}

func monthAt(start time.Time, offset int) time.Time {
	return time.Date(start.Year(), start.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// overlapsMonth reports whether the item's date range touches the given
// calendar month.
func overlapsMonth(it *domain.Item, month time.Time) bool {
	monthEnd := monthAt(month, 1)
	return it.StartDate.Before(monthEnd) && !it.EndDate.Before(month)
}

func padCell(s string) string {
	if w := lipgloss.Width(s); w < cellWidth {
		return s + strings.Repeat(" ", cellWidth-w)
	}
	return s
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
