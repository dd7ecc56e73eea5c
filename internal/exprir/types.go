package exprir

import "strings"

// BaseType is the declared Presto base type of an expression, as far as this
// layer needs to distinguish types: zone-shift eligibility and the
// time/timestamp zone-awareness split.
type BaseType int

const (
	// TypeUnknown means no declared type. Unknown expressions are never
	// zone-shifted - Presto raises an execution error when AT TIME ZONE is
	// applied to a non-temporal operand, so eligibility must be provable.
	TypeUnknown BaseType = iota

	// TypeTimestamp is a zone-naive timestamp.
	TypeTimestamp

	// TypeTimestampTZ is a timestamp with time zone.
	TypeTimestampTZ

	// TypeTime is a zone-naive time of day.
	TypeTime

	// TypeTimeTZ is a time of day with time zone.
	TypeTimeTZ

	// TypeDate is a calendar date.
	TypeDate
)

// String returns the Presto type name for the base type.
func (t BaseType) String() string {
	switch t {
	case TypeTimestamp:
		return "timestamp"
	case TypeTimestampTZ:
		return "timestamp with time zone"
	case TypeTime:
		return "time"
	case TypeTimeTZ:
		return "time with time zone"
	case TypeDate:
		return "date"
	default:
		return "unknown"
	}
}

// ZoneShiftable reports whether AT TIME ZONE may be applied to an expression
// of this type. Presto only accepts the operator on timestamps and times;
// anything else fails at execution time, so the rewriter refuses up front.
func (t BaseType) ZoneShiftable() bool {
	switch t {
	case TypeTimestamp, TypeTimestampTZ, TypeTime, TypeTimeTZ:
		return true
	default:
		return false
	}
}

// BaseTypeForName maps a Presto native type name to a BaseType.
// Parameterized forms ("timestamp(3) with time zone", "decimal(10,2)") are
// recognized by their base name. Unrecognized names map to TypeUnknown.
func BaseTypeForName(name string) BaseType {
	n := strings.ToLower(strings.TrimSpace(name))
	// Strip a precision suffix from the head token: "timestamp(3) with
	// time zone" → "timestamp with time zone".
	if open := strings.IndexByte(n, '('); open >= 0 {
		if end := strings.IndexByte(n[open:], ')'); end >= 0 {
			n = n[:open] + n[open+end+1:]
		}
	}
	n = strings.Join(strings.Fields(n), " ")

	switch n {
	case "timestamp":
		return TypeTimestamp
	case "timestamp with time zone":
		return TypeTimestampTZ
	case "time":
		return TypeTime
	case "time with time zone":
		return TypeTimeTZ
	case "date":
		return TypeDate
	default:
		return TypeUnknown
	}
}

// funcResultTypes declares the result types of the Presto built-ins this
// layer emits, for the few cases where a rewrite inspects the type of an
// already-rewritten child. Built once; read-only after initialization.
var funcResultTypes = map[string]BaseType{
	"now":                    TypeTimestampTZ, // always zone-aware in Presto
	"from_unixtime":          TypeTimestampTZ,
	"from_iso8601_timestamp": TypeTimestampTZ,
	"date_trunc":             TypeTimestamp,
	"date_add":               TypeTimestamp,
	"current_timestamp":      TypeTimestampTZ,
}

// TypeOf returns the declared base type of an expression.
//
// Column references carry their declared type; casts resolve through the
// cast target name; a zone-shift wrapper always yields a timestamp with
// time zone; known built-ins resolve through funcResultTypes. Everything
// else is TypeUnknown.
func TypeOf(e Expr) BaseType {
	switch v := e.(type) {
	case ColumnRef:
		return v.Type
	case Cast:
		return BaseTypeForName(v.TypeName)
	case AtTimeZone:
		return TypeTimestampTZ
	case FuncCall:
		if t, ok := funcResultTypes[v.Name]; ok {
			return t
		}
		return TypeUnknown
	default:
		return TypeUnknown
	}
}
