package domain

import "time"

// AreaRecord is a stored owning-area row. UsageCount ranks areas in
// selection UIs; it is incremented each time an item references the area.
type AreaRecord struct {
	ID         string
	Name       string
	UsageCount int
	CreatedAt  time.Time
}

// Team is a stored working-group row, ranked by usage like AreaRecord.
type Team struct {
	ID         string
	Name       string
	UsageCount int
	CreatedAt  time.Time
}
