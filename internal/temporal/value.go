package temporal

import (
	"fmt"
	"time"
)

// Value is a sealed interface representing the temporal value kinds this
// layer round-trips between the host and Presto. Only ZonedDateTime,
// OffsetDateTime, LocalDateTime, LocalTime, and OffsetTime implement it.
//
// Every variant carries at most millisecond precision. Presto's time wire
// type cannot represent anything finer, so constructors truncate eagerly
// rather than letting sub-millisecond digits survive to the wire and get
// silently dropped there.
type Value interface {
	temporalValue() // Sealed - only these types implement it
}

// ZonedDateTime is an instant carried with a named IANA zone.
// The wrapped time's Location is the named zone.
type ZonedDateTime struct {
	T time.Time
}

func (ZonedDateTime) temporalValue() {}

// OffsetDateTime is an instant carried with a fixed UTC offset.
// The wrapped time's Location is a fixed-offset zone.
type OffsetDateTime struct {
	T time.Time
}

func (OffsetDateTime) temporalValue() {}

// LocalDateTime is a zone-naive date-time: a bag of wall-clock components
// with no attached zone. The wrapped time's Location is UTC purely as a
// component holder; it does not denote an instant.
type LocalDateTime struct {
	T time.Time
}

func (LocalDateTime) temporalValue() {}

// LocalTime is a zone-naive time of day with millisecond precision.
type LocalTime struct {
	Hour   int
	Minute int
	Second int
	Milli  int
}

func (LocalTime) temporalValue() {}

// OffsetTime is a time of day with a fixed UTC offset in seconds.
type OffsetTime struct {
	Time      LocalTime
	OffsetSec int
}

func (OffsetTime) temporalValue() {}

// NewZonedDateTime builds a ZonedDateTime in the given named zone,
// truncated to millisecond precision.
func NewZonedDateTime(t time.Time, zone *time.Location) ZonedDateTime {
	return ZonedDateTime{T: truncMillis(t.In(zone))}
}

// NewOffsetDateTime builds an OffsetDateTime at a fixed offset (seconds
// east of UTC), truncated to millisecond precision.
func NewOffsetDateTime(t time.Time, offsetSec int) OffsetDateTime {
	loc := time.FixedZone(offsetName(offsetSec), offsetSec)
	return OffsetDateTime{T: truncMillis(t.In(loc))}
}

// NewLocalDateTime builds a zone-naive LocalDateTime from the wall-clock
// components of t, truncated to millisecond precision.
func NewLocalDateTime(t time.Time) LocalDateTime {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ms := t.Nanosecond() / int(time.Millisecond)
	return LocalDateTime{T: time.Date(y, mo, d, h, mi, s, ms*int(time.Millisecond), time.UTC)}
}

// NewLocalTime builds a LocalTime, validating component ranges.
func NewLocalTime(hour, minute, second, milli int) (LocalTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 ||
		second < 0 || second > 59 || milli < 0 || milli > 999 {
		return LocalTime{}, &ConversionError{
			Code:    ErrCodeOutOfRange,
			Message: fmt.Sprintf("time of day out of range: %02d:%02d:%02d.%03d", hour, minute, second, milli),
		}
	}
	return LocalTime{Hour: hour, Minute: minute, Second: second, Milli: milli}, nil
}

// MillisOfDay returns the time of day as milliseconds since midnight.
func (lt LocalTime) MillisOfDay() int {
	return ((lt.Hour*60+lt.Minute)*60+lt.Second)*1000 + lt.Milli
}

// AtUTC shifts the offset time to offset zero, preserving the same absolute
// time of day. Wraps around midnight when the shift crosses a day boundary.
func (ot OffsetTime) AtUTC() OffsetTime {
	if ot.OffsetSec == 0 {
		return ot
	}
	ms := ot.Time.MillisOfDay() - ot.OffsetSec*1000
	const dayMillis = 24 * 60 * 60 * 1000
	ms = ((ms % dayMillis) + dayMillis) % dayMillis
	return OffsetTime{Time: localTimeFromMillis(ms), OffsetSec: 0}
}

// localTimeFromMillis builds a LocalTime from milliseconds since midnight.
// The argument must already be normalized to [0, 24h).
func localTimeFromMillis(ms int) LocalTime {
	return LocalTime{
		Hour:   ms / 3600000,
		Minute: ms / 60000 % 60,
		Second: ms / 1000 % 60,
		Milli:  ms % 1000,
	}
}

// truncMillis drops sub-millisecond precision.
func truncMillis(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}

// offsetName renders a fixed offset as "+07:00" / "-03:30", matching the
// identifiers Presto itself reports for offset-pinned sessions.
func offsetName(offsetSec int) string {
	sign := "+"
	if offsetSec < 0 {
		sign = "-"
		offsetSec = -offsetSec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetSec/3600, offsetSec%3600/60)
}
