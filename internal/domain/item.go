package domain

import (
	"fmt"
	"time"
)

// SourceManual labels items created or last shaped by a human. Items
// mirrored from the tracker carry "Tracker - <issue key>" instead.
const SourceManual = "Manual"

// Item is a single trackable unit of work on the roadmap.
type Item struct {
	ID        string
	Name      string
	Area      Area
	TeamID    *string
	TeamName  string
	StartDate time.Time
	EndDate   time.Time
	Progress  int
	Status    ItemStatus
	Comments  string
	Links     []string
	Source    string
	// ManualEdit is set whenever a human creates or edits the item. The
	// sync path never overwrites an item with this flag set.
	ManualEdit    bool
	DependencyIDs []string
	Swimlane      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the field invariants enforced at the service boundary.
// The pure filter/risk/metrics functions assume items have passed here.
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if !i.Area.Valid() {
		return fmt.Errorf("unknown area %q", i.Area)
	}
	if !i.Status.Valid() {
		return fmt.Errorf("unknown status %q", i.Status)
	}
	if i.Progress < 0 || i.Progress > 100 {
		return fmt.Errorf("progress %d out of range 0-100", i.Progress)
	}
	if i.StartDate.IsZero() || i.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if i.EndDate.Before(i.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			i.EndDate.Format("2006-01-02"), i.StartDate.Format("2006-01-02"))
	}
	return nil
}

// DisplayID returns a short identifier for table output.
func (i *Item) DisplayID() string {
	if len(i.ID) >= 8 {
		return i.ID[:8]
	}
	return i.ID
}
