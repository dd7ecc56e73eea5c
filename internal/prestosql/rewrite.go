package prestosql

import (
	"github.com/shopspring/decimal"

	"github.com/roach88/prestoql/internal/exprir"
	"github.com/roach88/prestoql/internal/session"
)

// Kind identifies an expression kind in the closed rewrite set.
type Kind string

// Function-style kinds.
const (
	KindLog10           Kind = "log10"
	KindCountWhere      Kind = "count-where"
	KindCurrentDateTime Kind = "current-datetime"
	KindUnixSeconds     Kind = "unix-seconds"
	KindUnixMillis      Kind = "unix-millis"
	KindUnixMicros      Kind = "unix-micros"
)

// TruncUnit is a supported date truncation granularity.
type TruncUnit string

const (
	TruncMinute  TruncUnit = "minute"
	TruncHour    TruncUnit = "hour"
	TruncDay     TruncUnit = "day"
	TruncWeek    TruncUnit = "week"
	TruncMonth   TruncUnit = "month"
	TruncQuarter TruncUnit = "quarter"
	TruncYear    TruncUnit = "year"
)

// TruncUnits lists every supported truncation granularity.
var TruncUnits = []TruncUnit{
	TruncMinute, TruncHour, TruncDay, TruncWeek, TruncMonth, TruncQuarter, TruncYear,
}

// ExtractUnit is a supported date extraction granularity.
type ExtractUnit string

const (
	ExtractMinute     ExtractUnit = "minute-of-hour"
	ExtractHour       ExtractUnit = "hour-of-day"
	ExtractDayOfWeek  ExtractUnit = "day-of-week"
	ExtractDayOfMonth ExtractUnit = "day-of-month"
	ExtractDayOfYear  ExtractUnit = "day-of-year"
	ExtractMonth      ExtractUnit = "month-of-year"
	ExtractQuarter    ExtractUnit = "quarter-of-year"
)

// ExtractUnits lists every supported extraction granularity.
var ExtractUnits = []ExtractUnit{
	ExtractMinute, ExtractHour, ExtractDayOfWeek, ExtractDayOfMonth,
	ExtractDayOfYear, ExtractMonth, ExtractQuarter,
}

// extractFuncs maps extraction granularities to Presto built-in names.
// Read-only after initialization.
var extractFuncs = map[ExtractUnit]string{
	ExtractMinute:     "minute",
	ExtractHour:       "hour",
	ExtractDayOfWeek:  "day_of_week",
	ExtractDayOfMonth: "day",
	ExtractDayOfYear:  "day_of_year",
	ExtractMonth:      "month",
	ExtractQuarter:    "quarter",
}

// KindTrunc returns the dispatch kind for a truncation granularity.
func KindTrunc(unit TruncUnit) Kind { return Kind("trunc:" + string(unit)) }

// KindExtract returns the dispatch kind for an extraction granularity.
func KindExtract(unit ExtractUnit) Kind { return Kind("extract:" + string(unit)) }

// Rewriter maps abstract expression nodes to Presto SQL fragments for one
// query invocation.
//
// A Rewriter holds only the invocation snapshot (report zone, start of
// week); it is pure and safe for concurrent use, though normal usage
// creates one per query compilation.
type Rewriter struct {
	inv session.Invocation
}

// New creates a rewriter bound to an invocation snapshot.
func New(inv session.Invocation) *Rewriter {
	return &Rewriter{inv: inv}
}

// handler rewrites one expression kind given already-rewritten children.
type handler func(r *Rewriter, args []exprir.Expr) (exprir.Expr, error)

// dispatch is the closed rewrite table. Built once at package
// initialization, read-only afterwards; concurrent queries share it with
// no synchronization.
var dispatch map[Kind]handler

func init() {
	dispatch = map[Kind]handler{
		KindLog10: func(r *Rewriter, args []exprir.Expr) (exprir.Expr, error) {
			if err := arity(KindLog10, args, 1); err != nil {
				return nil, err
			}
			return r.Log10(args[0]), nil
		},
		KindCountWhere: func(r *Rewriter, args []exprir.Expr) (exprir.Expr, error) {
			if err := arity(KindCountWhere, args, 1); err != nil {
				return nil, err
			}
			return r.CountWhere(args[0]), nil
		},
		KindCurrentDateTime: func(r *Rewriter, args []exprir.Expr) (exprir.Expr, error) {
			if err := arity(KindCurrentDateTime, args, 0); err != nil {
				return nil, err
			}
			return r.CurrentDateTime(), nil
		},
		KindUnixSeconds: epochHandler(KindUnixSeconds, EpochSeconds),
		KindUnixMillis:  epochHandler(KindUnixMillis, EpochMillis),
		KindUnixMicros:  epochHandler(KindUnixMicros, EpochMicros),
	}
	for _, unit := range TruncUnits {
		unit := unit
		kind := KindTrunc(unit)
		dispatch[kind] = func(r *Rewriter, args []exprir.Expr) (exprir.Expr, error) {
			if err := arity(kind, args, 1); err != nil {
				return nil, err
			}
			return r.TruncateDate(unit, args[0]), nil
		}
	}
	for _, unit := range ExtractUnits {
		unit := unit
		kind := KindExtract(unit)
		dispatch[kind] = func(r *Rewriter, args []exprir.Expr) (exprir.Expr, error) {
			if err := arity(kind, args, 1); err != nil {
				return nil, err
			}
			return r.ExtractDate(unit, args[0]), nil
		}
	}
}

func epochHandler(kind Kind, unit EpochUnit) handler {
	return func(r *Rewriter, args []exprir.Expr) (exprir.Expr, error) {
		if err := arity(kind, args, 1); err != nil {
			return nil, err
		}
		return r.UnixTimestamp(args[0], unit), nil
	}
}

func arity(kind Kind, args []exprir.Expr, want int) error {
	if len(args) != want {
		return malformed(kind, "expected %d argument(s), got %d", want, len(args))
	}
	for i, a := range args {
		if a == nil {
			return malformed(kind, "argument %d is nil", i)
		}
	}
	return nil
}

// Rewrite is the generic per-node entry point the host query compiler
// calls bottom-up: children in args are already rewritten. Unknown kinds
// fail fast - the kind set is closed.
func (r *Rewriter) Rewrite(kind Kind, args []exprir.Expr) (exprir.Expr, error) {
	h, ok := dispatch[kind]
	if !ok {
		return nil, &RewriteError{
			Code:    ErrCodeUnknownKind,
			Kind:    kind,
			Message: "kind is not in the rewrite set",
		}
	}
	return h(r, args)
}

// Log10 rewrites a base-10 logarithm. Presto does not support the generic
// log name; log10 is the only spelling.
func (r *Rewriter) Log10(x exprir.Expr) exprir.Expr {
	return exprir.FuncCall{Name: "log10", Args: []exprir.Expr{x}}
}

// countLiteral is the fixed-scale decimal the conditional count sums.
// Exactly two digits of scale, preserved verbatim in the rendered SQL: an
// integer 1 would lose precision to truncation in Presto's surrounding
// aggregate arithmetic.
var countLiteral = decimal.New(100, -2)

// CountWhere rewrites "count rows matching predicate" as a sum of a
// fixed-scale decimal gated by the predicate. Rows failing the predicate
// contribute NULL, which sum ignores.
func (r *Rewriter) CountWhere(pred exprir.Expr) exprir.Expr {
	return exprir.FuncCall{
		Name: "sum",
		Args: []exprir.Expr{exprir.Case{
			When: pred,
			Then: exprir.DecimalLit{Value: countLiteral},
		}},
	}
}

// CurrentDateTime rewrites the current-timestamp built-in. Presto's now()
// is always zone-aware, so the result type is timestamp with time zone
// regardless of the host's default assumption of a bare timestamp.
func (r *Rewriter) CurrentDateTime() exprir.Expr {
	return exprir.FuncCall{Name: "now"}
}

// InReportZone applies the AT TIME ZONE zone correction when, and only
// when, it is legal and needed:
//
//   - a report zone must be configured
//   - the declared type must be a timestamp or time (Presto raises a
//     dialect error shifting anything else)
//   - the expression must not already carry a wrapper from this pass
//
// In every other case the expression is returned unchanged. Wrapping twice
// is impossible by construction: the wrapper's Applied marker is checked
// before wrapping.
func (r *Rewriter) InReportZone(e exprir.Expr) exprir.Expr {
	if !r.inv.Zone.Configured() {
		return e
	}
	if az, ok := e.(exprir.AtTimeZone); ok && az.Applied {
		return e
	}
	if !exprir.TypeOf(e).ZoneShiftable() {
		return e
	}
	return exprir.AtTimeZone{Inner: e, Zone: r.inv.Zone.ID(), Applied: true}
}

// TruncateDate rewrites date truncation to date_trunc over the
// zone-corrected operand.
//
// Week truncation honors the host's configured start of week rather than
// Presto's native Monday boundary: the operand is shifted back by the
// offset between the two conventions, truncated, then shifted forward
// again, so each bucket begins on the configured weekday.
func (r *Rewriter) TruncateDate(unit TruncUnit, e exprir.Expr) exprir.Expr {
	operand := r.InReportZone(e)
	if unit == TruncWeek {
		return r.truncateWeek(operand)
	}
	return dateTrunc(string(unit), operand)
}

func (r *Rewriter) truncateWeek(operand exprir.Expr) exprir.Expr {
	// Days between the configured week start and Presto's Monday.
	offset := (int(r.inv.StartOfWeek) + 6) % 7
	if offset == 0 {
		return dateTrunc("week", operand)
	}
	shifted := dateAddDays(-offset, operand)
	return dateAddDays(offset, dateTrunc("week", shifted))
}

func dateTrunc(unit string, e exprir.Expr) exprir.Expr {
	return exprir.FuncCall{
		Name: "date_trunc",
		Args: []exprir.Expr{exprir.StringLit{Value: unit}, e},
	}
}

func dateAddDays(n int, e exprir.Expr) exprir.Expr {
	return exprir.FuncCall{
		Name: "date_add",
		Args: []exprir.Expr{
			exprir.StringLit{Value: "day"},
			exprir.IntLit{Value: int64(n)},
			e,
		},
	}
}

// ExtractDate rewrites date extraction to the corresponding Presto
// built-in over the zone-corrected operand.
//
// Day-of-week is re-numbered: Presto counts ISO Monday=1..Sunday=7, while
// the host convention counts from the configured start of week with day 1
// being that weekday (Sunday=1..Saturday=7 under the default Sunday start).
func (r *Rewriter) ExtractDate(unit ExtractUnit, e exprir.Expr) exprir.Expr {
	operand := r.InReportZone(e)
	fn := extractFuncs[unit]
	call := exprir.FuncCall{Name: fn, Args: []exprir.Expr{operand}}
	if unit == ExtractDayOfWeek {
		return r.adjustDayOfWeek(call)
	}
	return call
}

// adjustDayOfWeek maps Presto's ISO numbering onto the host convention:
//
//	mod(iso + 7 - offset, 7) + 1
//
// where offset counts days from Sunday to the configured week start. The
// +7 keeps the mod operand positive for every offset; mod is a named
// function in Presto, never an infix operator.
func (r *Rewriter) adjustDayOfWeek(iso exprir.Expr) exprir.Expr {
	offset := int(r.inv.StartOfWeek)
	sum := exprir.Infix{Op: "+", Left: iso, Right: exprir.IntLit{Value: int64(7 - offset)}}
	m := exprir.FuncCall{
		Name: "mod",
		Args: []exprir.Expr{sum, exprir.IntLit{Value: 7}},
	}
	return exprir.Infix{Op: "+", Left: m, Right: exprir.IntLit{Value: 1}}
}

// EpochUnit is the granularity of a unix epoch value.
type EpochUnit int

const (
	// EpochSeconds is a whole-seconds epoch value.
	EpochSeconds EpochUnit = iota

	// EpochMillis is a milliseconds epoch value.
	EpochMillis

	// EpochMicros is a microseconds epoch value.
	EpochMicros
)

// UnixTimestamp rewrites epoch-to-timestamp conversion via from_unixtime,
// supplying the report zone (or UTC when unconfigured) as an explicit zone
// argument.
//
// from_unixtime only accepts whole seconds, so milliseconds decompose as
// the floor-divided seconds conversion plus a date_add of the remainder
// milliseconds, with the remainder computed by the named mod function over
// the original value. Microseconds cannot be represented at all; they
// integer-divide down to milliseconds first.
func (r *Rewriter) UnixTimestamp(e exprir.Expr, unit EpochUnit) exprir.Expr {
	zone := "UTC"
	if r.inv.Zone.Configured() {
		zone = r.inv.Zone.ID()
	}
	switch unit {
	case EpochMillis:
		seconds := exprir.FuncCall{
			Name: "floor",
			Args: []exprir.Expr{exprir.Infix{Op: "/", Left: e, Right: exprir.IntLit{Value: 1000}}},
		}
		remainder := exprir.FuncCall{
			Name: "mod",
			Args: []exprir.Expr{e, exprir.IntLit{Value: 1000}},
		}
		return exprir.FuncCall{
			Name: "date_add",
			Args: []exprir.Expr{
				exprir.StringLit{Value: "millisecond"},
				remainder,
				exprir.FuncCall{
					Name: "from_unixtime",
					Args: []exprir.Expr{seconds, exprir.StringLit{Value: zone}},
				},
			},
		}
	case EpochMicros:
		millis := exprir.Infix{Op: "/", Left: e, Right: exprir.IntLit{Value: 1000}}
		return r.UnixTimestamp(millis, EpochMillis)
	default:
		return exprir.FuncCall{
			Name: "from_unixtime",
			Args: []exprir.Expr{e, exprir.StringLit{Value: zone}},
		}
	}
}
