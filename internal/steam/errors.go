package steam

import "errors"

var (
	// ErrUnavailable means the upstream kept failing after the limiter's
	// retry budget. Callers degrade to the queue or to cached data.
	ErrUnavailable = errors.New("steam: upstream unavailable")

	// ErrNotFound means the catalog has no entry for the requested app.
	ErrNotFound = errors.New("steam: app not found")
)
