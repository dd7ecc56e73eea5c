package temporal

import (
	"strings"
	"time"
)

// parseTemporal is the generic temporal text parser for engine output.
//
// Presto renders timestamps in several shapes depending on type and client
// version: zone-naive ("2024-01-15 10:30:00.000"), offset-qualified
// ("2024-01-15 10:30:00.000 -07:00"), and zone-ID-qualified
// ("2024-01-15 10:30:00.000 America/Denver" or "... UTC"). Parsing is
// best-effort: the second result is false when no recognized form matches.
func parseTemporal(text string) (Value, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	// Zone-ID-qualified form: the final field names a zone rather than a
	// numeric offset. Try it first since time.Parse cannot handle it.
	if v, ok := parseZoneQualified(text); ok {
		return v, ok
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return NewOffsetDateTime(t, zoneOffsetSec(t)), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return NewLocalDateTime(t), true
		}
	}
	return nil, false
}

var offsetLayouts = []string{
	"2006-01-02 15:04:05.999999999 -07:00",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-07:00",
}

var naiveLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// parseZoneQualified handles "<date-time> <zone-id>" where zone-id is an
// IANA name like America/Denver or an abbreviation like UTC.
func parseZoneQualified(text string) (Value, bool) {
	idx := strings.LastIndexByte(text, ' ')
	if idx < 0 {
		return nil, false
	}
	zoneID := text[idx+1:]
	// Numeric offsets belong to the layout-based paths.
	if zoneID == "" || zoneID[0] == '+' || zoneID[0] == '-' || zoneID[0] >= '0' && zoneID[0] <= '9' {
		return nil, false
	}
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return nil, false
	}
	head := strings.TrimSpace(text[:idx])
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, head, loc); err == nil {
			return NewZonedDateTime(t, loc), true
		}
	}
	return nil, false
}

// zoneOffsetSec returns the parsed time's fixed offset in seconds.
func zoneOffsetSec(t time.Time) int {
	_, off := t.Zone()
	return off
}
