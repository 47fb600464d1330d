package domain

import "time"

// Alert is an ephemeral advisory shown until explicitly dismissed.
type Alert struct {
	ID          string
	Kind        AlertKind
	Title       string
	Description string
	ItemID      *string
	CreatedAt   time.Time
}
