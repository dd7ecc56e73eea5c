package temporal

import (
	"fmt"
	"time"
)

// Decode converts a raw result cell plus its declared wire type into a host
// temporal value, undoing Presto's implicit zone adjustments.
//
// The return is a tri-state so callers branch on outcome rather than on
// control flow:
//
//	(value, true, nil)   - decoded value
//	(nil, false, nil)    - absent: raw was null, or no recognized temporal
//	                       text form matched; never aborts the row
//	(nil, false, error)  - programming error (unknown wire type, raw value
//	                       of a shape the driver never produces)
//
// connZone is the LIVE connection's session zone (see session.ConnZone),
// not the configured report zone; nil means no session zone is available
// and the naive-timestamp undo step is skipped.
func Decode(wire WireType, nativeType string, raw any, connZone *time.Location) (Value, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	switch wire {
	case WireTime:
		return decodeTime(nativeType, raw)
	case WireTimestamp:
		return decodeTimestamp(nativeType, raw, connZone)
	default:
		return nil, false, fmt.Errorf("decode: unknown wire type %d", int(wire))
	}
}

// decodeTime decodes the single wire type Presto reports for both time
// kinds, disambiguating with the native type name.
//
// Milliseconds are recovered from the raw value's sub-second component
// directly; going through a seconds-granularity intermediate here silently
// truncates them. Zone-aware times always come back from Presto already
// expressed at offset zero, so the offset wrapper is pinned at UTC with no
// further shifting.
func decodeTime(nativeType string, raw any) (Value, bool, error) {
	lt, ok, err := rawTimeOfDay(raw)
	if err != nil || !ok {
		return nil, false, err
	}
	if zoneAware(nativeType) {
		return OffsetTime{Time: lt, OffsetSec: 0}, true, nil
	}
	return lt, true, nil
}

func rawTimeOfDay(raw any) (LocalTime, bool, error) {
	switch v := raw.(type) {
	case time.Time:
		h, m, s := v.Clock()
		return LocalTime{Hour: h, Minute: m, Second: s, Milli: v.Nanosecond() / int(time.Millisecond)}, true, nil
	case int64:
		// Milliseconds of day.
		const dayMillis = 24 * 60 * 60 * 1000
		if v < 0 || v >= dayMillis {
			return LocalTime{}, false, nil
		}
		return localTimeFromMillis(int(v)), true, nil
	case string:
		return parseTimeText(v)
	default:
		return LocalTime{}, false, fmt.Errorf("decode time: unsupported raw value type %T", raw)
	}
}

// Textual time layouts. Zone-aware cells render with an offset suffix;
// offset layouts are tried first so the suffix never masks a parse.
var (
	timeOffsetLayouts = []string{
		"15:04:05.999999999Z07:00",
		"15:04:05.999999999 -07:00",
	}
	timeNaiveLayouts = []string{
		"15:04:05.999999999",
		"15:04:05",
	}
)

// parseTimeText parses a textual time of day. An offset suffix folds into
// the value: the result is always normalized to offset zero, so the caller's
// zero-offset wrapper stays correct for zone-aware columns.
func parseTimeText(text string) (LocalTime, bool, error) {
	for _, layout := range timeOffsetLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			h, m, s := t.Clock()
			lt := LocalTime{Hour: h, Minute: m, Second: s, Milli: t.Nanosecond() / int(time.Millisecond)}
			_, off := t.Zone()
			return OffsetTime{Time: lt, OffsetSec: off}.AtUTC().Time, true, nil
		}
	}
	for _, layout := range timeNaiveLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			h, m, s := t.Clock()
			return LocalTime{Hour: h, Minute: m, Second: s, Milli: t.Nanosecond() / int(time.Millisecond)}, true, nil
		}
	}
	return LocalTime{}, false, nil
}

// decodeTimestamp decodes the timestamp wire type from its textual form.
//
// Zone-aware columns render with an explicit offset or zone and normalize
// to UTC offset. Zone-naive columns have already been shifted by Presto as
// if the stored value were local to the session zone; when the live session
// zone is known the shift is undone by reinterpreting the naive value in
// that zone and re-expressing it in UTC. With no session zone available the
// parsed value is returned unchanged.
func decodeTimestamp(nativeType string, raw any, connZone *time.Location) (Value, bool, error) {
	switch v := raw.(type) {
	case string:
		parsed, ok := parseTemporal(v)
		if !ok {
			// Unparseable display value degrades to absent.
			return nil, false, nil
		}
		switch val := parsed.(type) {
		case ZonedDateTime:
			return toUTCOffset(val.T), true, nil
		case OffsetDateTime:
			return toUTCOffset(val.T), true, nil
		case LocalDateTime:
			return undoSessionShift(val, connZone), true, nil
		default:
			return nil, false, fmt.Errorf("decode timestamp: parser produced %T", parsed)
		}
	case time.Time:
		// Driver already decoded the cell. The native type name decides
		// zone-awareness; the value's location cannot, since UTC instants
		// from zone-aware columns also arrive located at time.UTC.
		if zoneAware(nativeType) {
			return toUTCOffset(v), true, nil
		}
		return undoSessionShift(NewLocalDateTime(v), connZone), true, nil
	default:
		return nil, false, fmt.Errorf("decode timestamp: unsupported raw value type %T", raw)
	}
}

// toUTCOffset normalizes a zone-carrying instant to UTC offset.
// Downstream consumers assume UTC-normalized zone-aware output.
func toUTCOffset(t time.Time) OffsetDateTime {
	return NewOffsetDateTime(t, 0)
}

// undoSessionShift reinterprets a naive value as being local to the session
// zone, converts to the equivalent UTC instant, and returns it as a
// zone-naive value expressed in UTC.
func undoSessionShift(v LocalDateTime, connZone *time.Location) LocalDateTime {
	if connZone == nil {
		return v
	}
	y, mo, d := v.T.Date()
	h, mi, s := v.T.Clock()
	local := time.Date(y, mo, d, h, mi, s, v.T.Nanosecond(), connZone)
	return NewLocalDateTime(local.UTC())
}
