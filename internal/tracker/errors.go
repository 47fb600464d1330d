package tracker

import "errors"

var (
	// ErrNotConfigured indicates no tracker connection has been saved.
	ErrNotConfigured = errors.New("tracker connection not configured")

	// ErrUnavailable indicates the tracker host could not be reached.
	ErrUnavailable = errors.New("tracker unreachable")

	// ErrTimeout indicates a tracker request exceeded the configured timeout.
	ErrTimeout = errors.New("tracker request timed out")

	// ErrAuthFailed indicates the tracker rejected the credentials.
	ErrAuthFailed = errors.New("tracker authentication failed")
)
