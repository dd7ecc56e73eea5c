package temporal

import "strings"

// WireType is the coarse type code result-set metadata reports for a
// column. Presto conflates semantically distinct native types under one
// code - both time kinds share WireTime - so decoding always takes the
// native type name alongside the wire type.
type WireType int

const (
	// WireTime covers both "time" and "time with time zone".
	WireTime WireType = iota

	// WireTimestamp covers both "timestamp" and "timestamp with time
	// zone"; the textual form distinguishes them at decode time.
	WireTimestamp
)

// String returns the wire type's display name.
func (w WireType) String() string {
	switch w {
	case WireTime:
		return "TIME"
	case WireTimestamp:
		return "TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

// WireTypeForName maps a Presto native type name to its wire type.
// The second result is false for non-temporal names.
func WireTypeForName(name string) (WireType, bool) {
	n := normalizeTypeName(name)
	switch {
	case n == "time", n == "time with time zone":
		return WireTime, true
	case n == "timestamp", n == "timestamp with time zone":
		return WireTimestamp, true
	default:
		return 0, false
	}
}

// zoneAware reports whether a native type name names a zone-aware type.
func zoneAware(name string) bool {
	return strings.Contains(normalizeTypeName(name), "with time zone")
}

func normalizeTypeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if open := strings.IndexByte(n, '('); open >= 0 {
		if end := strings.IndexByte(n[open:], ')'); end >= 0 {
			n = n[:open] + n[open+end+1:]
		}
	}
	return strings.Join(strings.Fields(n), " ")
}
