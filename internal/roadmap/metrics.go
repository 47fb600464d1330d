package roadmap

import (
	"time"

	"github.com/rsoares/roadmap/internal/domain"
)

// DeliveryWindowMonths is the length of the forward-looking delivery
// histogram, starting at the current month.
const DeliveryWindowMonths = 6

// AreaAllocation is the item count and mean progress for one area.
type AreaAllocation struct {
	Area         domain.Area
	Count        int
	MeanProgress float64
}

// DeliveryBucket counts items whose end date falls in one calendar month.
type DeliveryBucket struct {
	Label string
	Month time.Month
	Year  int
	Count int
}

// Metrics is the dashboard aggregate over an already-filtered item list.
type Metrics struct {
	Allocation []AreaAllocation
	AtRisk     []*domain.Item
	Deliveries []DeliveryBucket
}

// Aggregate computes dashboard metrics from the filtered items. The
// allocation always covers the full fixed area set, the at-risk list
// preserves input order, and the delivery histogram covers the next
// DeliveryWindowMonths calendar months regardless of the data's range.
func Aggregate(items []*domain.Item, now time.Time) Metrics {
	m := Metrics{
		Allocation: make([]AreaAllocation, 0, len(domain.Areas)),
		Deliveries: make([]DeliveryBucket, 0, DeliveryWindowMonths),
	}

	for _, area := range domain.Areas {
		var count, sum int
		for _, it := range items {
			if it.Area == area {
				count++
				sum += it.Progress
			}
		}
		alloc := AreaAllocation{Area: area, Count: count}
		if count > 0 {
			alloc.MeanProgress = float64(sum) / float64(count)
		}
		m.Allocation = append(m.Allocation, alloc)
	}

	for _, it := range items {
		if AtRisk(it, now) {
			m.AtRisk = append(m.AtRisk, it)
		}
	}

	// Anchoring at the first of the month keeps the AddDate-style month
	// arithmetic stable on the 29th-31st.
	for i := 0; i < DeliveryWindowMonths; i++ {
		anchor := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		bucket := DeliveryBucket{
			Label: anchor.Format("Jan 2006"),
			Month: anchor.Month(),
			Year:  anchor.Year(),
		}
		for _, it := range items {
			if it.EndDate.Month() == bucket.Month && it.EndDate.Year() == bucket.Year {
				bucket.Count++
			}
		}
		m.Deliveries = append(m.Deliveries, bucket)
	}

	return m
}
