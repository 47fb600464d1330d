package domain

import "time"

// TrackerConfig is the stored tracker connection record. APIToken is held
// base64-obscured at rest; this is encoding, not encryption, and the CLI
// documents it as such.
type TrackerConfig struct {
	BaseURL   string
	Email     string
	APIToken  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
