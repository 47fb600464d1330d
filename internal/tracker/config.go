package tracker

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
)

// Config holds the tracker connection settings. Credentials are passed on
// every call as HTTP basic auth (email + API token).
type Config struct {
	BaseURL  string
	Email    string
	APIToken string
	// TimeoutMs bounds every individual tracker call.
	TimeoutMs int
	// PageSize is the search page size used by the sync pagination loop.
	PageSize int
}

// DefaultConfig returns a Config with connection fields empty and sane
// call parameters.
func DefaultConfig() Config {
	return Config{
		TimeoutMs: 15000,
		PageSize:  100,
	}
}

// LoadConfig reads tracker settings from environment variables, falling
// back to defaults for any unset value. Stored credentials from the
// repository take precedence over the environment; see the sync service.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ROADMAP_TRACKER_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ROADMAP_TRACKER_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("ROADMAP_TRACKER_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("ROADMAP_TRACKER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ROADMAP_TRACKER_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}

	return cfg
}

// Configured reports whether the connection fields are all present.
func (c Config) Configured() bool {
	return c.BaseURL != "" && c.Email != "" && c.APIToken != ""
}

// ObscureToken encodes the API token for storage at rest. This is
// base64 encoding, not encryption; it only keeps the token out of
// casual view of the database file.
func ObscureToken(token string) string {
	return base64.StdEncoding.EncodeToString([]byte(token))
}

// RevealToken decodes a token stored with ObscureToken.
func RevealToken(obscured string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(obscured)
	if err != nil {
		return "", fmt.Errorf("decoding stored token: %w", err)
	}
	return string(data), nil
}
