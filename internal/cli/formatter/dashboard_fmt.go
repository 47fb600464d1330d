package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/roadmap"
)

// FormatMetrics renders the three dashboard groups: allocation by area,
// at-risk items, and the forward delivery histogram.
func FormatMetrics(m *roadmap.Metrics, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Allocation by area") + "\n")
	allocRows := make([][]string, 0, len(m.Allocation))
	for _, a := range m.Allocation {
		allocRows = append(allocRows, []string{
			string(a.Area),
			strconv.Itoa(a.Count),
			RenderProgress(int(a.MeanProgress+0.5), 16),
		})
	}
	b.WriteString(RenderTable([]string{"AREA", "ITEMS", "MEAN PROGRESS"}, allocRows))

	b.WriteString("\n" + Header("At risk") + "\n")
	if len(m.AtRisk) == 0 {
		b.WriteString(StyleGreen.Render("No items behind schedule.") + "\n")
	} else {
		riskRows := make([][]string, 0, len(m.AtRisk))
		for _, it := range m.AtRisk {
			sched := roadmap.ComputeSchedule(it, now)
			riskRows = append(riskRows, []string{
				it.Name,
				string(it.Area),
				fmt.Sprintf("%d%% of %.0f%%", it.Progress, sched.ExpectedProgress),
				TierIndicator(sched.Tier),
			})
		}
		b.WriteString(RenderTable([]string{"ITEM", "AREA", "PROGRESS", "RISK"}, riskRows))
	}

	b.WriteString("\n" + Header("Deliveries (next 6 months)") + "\n")
	b.WriteString(renderDeliveries(m.Deliveries))

	return b.String()
}

// renderDeliveries draws a small horizontal histogram of end dates per
// month.
func renderDeliveries(buckets []roadmap.DeliveryBucket) string {
	max := 0
	for _, bucket := range buckets {
		if bucket.Count > max {
			max = bucket.Count
		}
	}

	var b strings.Builder
	for _, bucket := range buckets {
		bar := ""
		if max > 0 && bucket.Count > 0 {
			bar = StyleBlue.Render(strings.Repeat(barBlock, bucket.Count*20/max))
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim(padRight(bucket.Label, 9)), padRight(bar, 20), strconv.Itoa(bucket.Count)))
	}
	return b.String()
}

// FormatAlertList renders open alerts.
func FormatAlertList(alerts []*domain.Alert) string {
	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		kind := Dim(string(a.Kind))
		if a.Kind == domain.AlertRisk {
			kind = StyleRed.Render(string(a.Kind))
		}
		rows = append(rows, []string{
			Dim(shortID(a.ID)),
			kind,
			a.Title,
			a.Description,
		})
	}
	return RenderTable([]string{"ID", "KIND", "ALERT", "DETAIL"}, rows)
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
