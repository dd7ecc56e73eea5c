// Package testutil provides shared helpers for zone-sensitive tests.
package testutil

import (
	"testing"
	"time"

	"github.com/roach88/prestoql/internal/session"
)

// MustZone resolves an IANA zone identifier into a session zone, failing
// the test when the zone database does not know it.
func MustZone(t *testing.T, id string) session.Zone {
	t.Helper()
	zone, err := session.ResolveZone(id)
	if err != nil {
		t.Fatalf("resolve zone %s: %v", id, err)
	}
	return zone
}

// MustLocation loads an IANA location, failing the test when unknown.
func MustLocation(t *testing.T, id string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(id)
	if err != nil {
		t.Fatalf("load location %s: %v", id, err)
	}
	return loc
}

// Invocation builds a fixed invocation snapshot with a stable ID, so test
// output does not vary run to run.
func Invocation(zone session.Zone, startOfWeek time.Weekday) session.Invocation {
	return session.Invocation{
		ID:          "00000000-0000-7000-8000-000000000000",
		Zone:        zone,
		StartOfWeek: startOfWeek,
	}
}
