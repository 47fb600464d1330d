package domain

import (
	"fmt"
	"time"
)

// Milestone is a dated marker on the timeline, not tied to any item.
type Milestone struct {
	ID        string
	Name      string
	Date      time.Time
	Area      string // optional area tag, free text
	CreatedAt time.Time
}

func (m *Milestone) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("milestone name is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("milestone date is required")
	}
	return nil
}
