package session

import (
	"time"

	"github.com/google/uuid"
)

// Invocation is the immutable per-query snapshot of session state.
//
// It is created once by the caller before compiling a query and passed by
// value into the rewriter and marshaller, so every decision inside one
// query sees the same report zone and week convention. Components never
// re-resolve configuration mid-query.
type Invocation struct {
	// ID is a time-sortable UUIDv7 identifying this query invocation,
	// used for trace correlation in CLI output and logs.
	ID string

	// Zone is the configured report zone snapshot. Zero value when no
	// report zone is configured.
	Zone Zone

	// StartOfWeek is the host's week-start convention. Presto's native
	// week boundary is Monday; truncation and day-of-week extraction
	// adjust to this setting.
	StartOfWeek time.Weekday
}

// NewInvocation mints an invocation snapshot with a fresh UUIDv7 token.
//
// UUIDv7 embeds a timestamp in the most significant bits, making tokens
// sortable by creation time - helpful when correlating rewrites across a
// trace. Panics if UUID generation fails (should never happen in practice).
func NewInvocation(zone Zone, startOfWeek time.Weekday) Invocation {
	return Invocation{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Zone:        zone,
		StartOfWeek: startOfWeek,
	}
}
