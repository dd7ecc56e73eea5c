package prestosql

import (
	"fmt"

	"github.com/roach88/prestoql/internal/exprir"
	"github.com/roach88/prestoql/internal/temporal"
)

// TimeLiteral rewrites a time-of-day literal.
//
// Offset times are always constructed at UTC (offset zero), never in the
// report zone: the inbound decoding path already undoes zone shifts, and a
// report-zone literal here would get shifted a second time. The cast
// target carries the timezone semantics independently of the session zone.
func (r *Rewriter) TimeLiteral(v temporal.Value) (exprir.Expr, error) {
	switch val := v.(type) {
	case temporal.LocalTime:
		return exprir.Cast{
			Inner:    exprir.StringLit{Value: val.String()},
			TypeName: "time",
		}, nil
	case temporal.OffsetTime:
		return exprir.Cast{
			Inner:    exprir.StringLit{Value: val.AtUTC().String()},
			TypeName: "time with time zone",
		}, nil
	default:
		return nil, &temporal.ConversionError{
			Code:    temporal.ErrCodeUnsupportedKind,
			Message: fmt.Sprintf("value kind %T has no time literal form", v),
		}
	}
}

// TimestampTZLiteral rewrites a zoned or offset instant literal as an
// explicit cast of its formatted text to timestamp with time zone.
//
// The cast is never omitted: implicit literal typing in Presto resolves
// the text against the connection's default zone, which silently moves the
// instant when connection and report zones disagree.
func (r *Rewriter) TimestampTZLiteral(v temporal.Value) (exprir.Expr, error) {
	var (
		text string
		err  error
	)
	switch val := v.(type) {
	case temporal.ZonedDateTime:
		text, err = val.CastText()
	case temporal.OffsetDateTime:
		text, err = val.CastText()
	default:
		return nil, &temporal.ConversionError{
			Code:    temporal.ErrCodeUnsupportedKind,
			Message: fmt.Sprintf("value kind %T has no zoned timestamp literal form", v),
		}
	}
	if err != nil {
		return nil, err
	}
	return exprir.Cast{
		Inner:    exprir.StringLit{Value: text},
		TypeName: "timestamp with time zone",
	}, nil
}
