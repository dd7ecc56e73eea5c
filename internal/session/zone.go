// Package session resolves the per-query session context the rewriter and
// marshaller consume: the configured report zone and the zone of the live
// Presto connection.
//
// The report zone is resolved exactly once per query invocation by the
// caller and passed by value into every entry point. Neither the rewriter
// nor the marshaller reads ambient configuration - an Invocation is an
// immutable snapshot for the duration of one query.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Zone is an optional IANA report zone. The zero value means "no report
// zone configured, use the connection default".
//
// Zone is immutable and safe to copy; it is resolved once per query and
// never mutated by the components that consume it.
type Zone struct {
	id  string
	loc *time.Location
}

// ResolveZone loads an IANA zone identifier into a Zone.
// An empty identifier resolves to the unconfigured zero Zone.
func ResolveZone(id string) (Zone, error) {
	if id == "" {
		return Zone{}, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return Zone{}, fmt.Errorf("resolve report zone %q: %w", id, err)
	}
	return Zone{id: id, loc: loc}, nil
}

// Configured reports whether a report zone is set.
func (z Zone) Configured() bool {
	return z.id != ""
}

// ID returns the IANA zone identifier, or "" when unconfigured.
func (z Zone) ID() string {
	return z.id
}

// Location returns the loaded location, or nil when unconfigured.
func (z Zone) Location() *time.Location {
	return z.loc
}

// Querier is the slice of database/sql this package needs to read the live
// connection zone. *sql.DB, *sql.Conn, and *sql.Tx all satisfy it.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ConnZone reads the session time zone from the live connection.
//
// This is distinct from the configured report zone: inbound timestamp
// decoding must undo shifts Presto has already applied using the zone the
// session is actually running in, which the configuration may lag behind.
// Returns nil when the zone cannot be read or loaded - callers treat nil as
// "no session zone available" and skip the undo step.
func ConnZone(ctx context.Context, q Querier) *time.Location {
	var id string
	if err := q.QueryRowContext(ctx, "SELECT current_timezone()").Scan(&id); err != nil {
		return nil
	}
	return LoadZone(id)
}

// LoadZone loads an IANA zone identifier, returning nil when it cannot be
// loaded. Fixed-offset identifiers like "+07:00" and "-03:30", which Presto
// reports for sessions pinned to an offset, are handled explicitly since
// time.LoadLocation does not accept them.
func LoadZone(id string) *time.Location {
	if id == "" {
		return nil
	}
	if len(id) == 6 && (id[0] == '+' || id[0] == '-') && id[3] == ':' {
		var h, m int
		if _, err := fmt.Sscanf(id[1:], "%02d:%02d", &h, &m); err == nil {
			sec := (h*60 + m) * 60
			if id[0] == '-' {
				sec = -sec
			}
			return time.FixedZone(id, sec)
		}
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil
	}
	return loc
}
