package temporal

import (
	"fmt"
	"time"

	"github.com/roach88/prestoql/internal/exprir"
	"github.com/roach88/prestoql/internal/session"
)

// Layouts for outbound ISO-8601 text. The offset form is mandatory for
// instants: from_iso8601_timestamp only accepts numeric offsets, never a
// bare zone-ID form like "[America/Denver]".
const (
	isoOffsetLayout = "2006-01-02T15:04:05.000Z07:00"
	isoLocalLayout  = "2006-01-02T15:04:05.000"
)

// ToLiteral converts a host temporal value into the SQL fragment the query
// substitution mechanism must splice in, with the formatted text as the
// sole bound parameter.
//
// Zoned and offset instants are first converted to the report zone (same
// instant) when one is configured. Zone-naive date-times are formatted
// without any adjustment - Presto interprets them in its own session zone
// at execution time, which is the intended semantics for naive values.
//
// Formatting and binding are atomic per value: on error no fragment is
// produced, never partial text.
func ToLiteral(v Value, zone session.Zone) (exprir.Fragment, error) {
	text, err := literalText(v, zone)
	if err != nil {
		return exprir.Fragment{}, err
	}
	return exprir.Render(exprir.FuncCall{
		Name: "from_iso8601_timestamp",
		Args: []exprir.Expr{exprir.Param{Value: text}},
	})
}

func literalText(v Value, zone session.Zone) (string, error) {
	switch val := v.(type) {
	case ZonedDateTime:
		return formatInstant(val.T, zone)
	case OffsetDateTime:
		// Offset form is already compatible with the offset layout.
		return formatInstant(val.T, zone)
	case LocalDateTime:
		if err := checkYear(val.T); err != nil {
			return "", err
		}
		return val.T.Format(isoLocalLayout), nil
	default:
		return "", &ConversionError{
			Code:    ErrCodeUnsupportedKind,
			Message: fmt.Sprintf("value kind %T has no timestamp literal form", v),
		}
	}
}

func formatInstant(t time.Time, zone session.Zone) (string, error) {
	if zone.Configured() {
		t = t.In(zone.Location())
	}
	if err := checkYear(t); err != nil {
		return "", err
	}
	return t.Format(isoOffsetLayout), nil
}

// checkYear guards the fixed-width year field of the ISO layouts.
func checkYear(t time.Time) error {
	if y := t.Year(); y < 1 || y > 9999 {
		return &ConversionError{
			Code:    ErrCodeOutOfRange,
			Message: fmt.Sprintf("year %d outside formattable range [1, 9999]", y),
		}
	}
	return nil
}

// BindParameter binds a time-of-day value at the given positional index in
// args, as the driver's native time parameter type.
//
// Offset times are shifted to offset zero before the time-of-day component
// is extracted: the driver has no offset-time parameter overload, so the
// offset must be folded into the value rather than passed alongside it.
func BindParameter(args []any, index int, v Value) error {
	if index < 0 || index >= len(args) {
		return fmt.Errorf("bind parameter: index %d out of range for %d args", index, len(args))
	}
	switch val := v.(type) {
	case LocalTime:
		args[index] = timeOfDayArg(val)
		return nil
	case OffsetTime:
		args[index] = timeOfDayArg(val.AtUTC().Time)
		return nil
	default:
		return &ConversionError{
			Code:    ErrCodeUnsupportedKind,
			Message: fmt.Sprintf("value kind %T cannot bind as a time parameter", v),
		}
	}
}

// timeOfDayArg renders a time of day as the driver's native time parameter.
// The date component is the zero epoch day the driver ignores for time
// columns; milliseconds are preserved.
func timeOfDayArg(lt LocalTime) time.Time {
	return time.Date(1970, time.January, 1, lt.Hour, lt.Minute, lt.Second,
		lt.Milli*int(time.Millisecond), time.UTC)
}
