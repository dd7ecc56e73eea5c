package temporal

import "fmt"

// String renders the time of day as "15:04:05.000".
func (lt LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", lt.Hour, lt.Minute, lt.Second, lt.Milli)
}

// String renders the offset time as "15:04:05.000+07:00".
func (ot OffsetTime) String() string {
	return ot.Time.String() + offsetName(ot.OffsetSec)
}

// castLayout is the text form Presto's varchar-to-timestamp-with-zone cast
// accepts: space-separated, numeric offset.
const castLayout = "2006-01-02 15:04:05.000 -07:00"

// CastText renders an instant in the text form accepted by an explicit
// CAST to timestamp with time zone. The instant keeps its own offset; the
// cast target carries the zone semantics, so no report-zone conversion
// happens here.
func (v ZonedDateTime) CastText() (string, error) {
	if err := checkYear(v.T); err != nil {
		return "", err
	}
	return v.T.Format(castLayout), nil
}

// CastText renders an instant in the text form accepted by an explicit
// CAST to timestamp with time zone.
func (v OffsetDateTime) CastText() (string, error) {
	if err := checkYear(v.T); err != nil {
		return "", err
	}
	return v.T.Format(castLayout), nil
}
