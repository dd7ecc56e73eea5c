package exprir

import "github.com/shopspring/decimal"

// Expr represents a Presto SQL expression fragment.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the renderer and rewriter.
//
// Expr types:
//   - FuncCall: function invocation with ordered arguments
//   - ColumnRef: column reference with a declared base type
//   - Cast: explicit CAST to a Presto type name
//   - AtTimeZone: zone-shift wrapper (AT TIME ZONE operator)
//   - Case: searched CASE expression
//   - Infix: binary operator expression
//   - StringLit, IntLit, DecimalLit: inline SQL literals
//   - Param: bound statement parameter (renders as "?")
type Expr interface {
	exprNode() // Marker method - seals interface to this package
}

// FuncCall represents a Presto function invocation.
//
// Arguments are rendered in order, comma-separated. The name is emitted
// verbatim, so callers must supply Presto names (log10, date_trunc, mod,
// from_unixtime), not engine-agnostic ones. Presto has no infix modulo;
// remainder arithmetic must go through FuncCall{Name: "mod"}.
type FuncCall struct {
	Name string
	Args []Expr
}

func (FuncCall) exprNode() {}

// ColumnRef represents a reference to a result column.
//
// Type carries the declared Presto base type of the column, which the
// rewriter consults for zone-shift eligibility. TypeUnknown is valid and
// means "never zone-shift this".
type ColumnRef struct {
	Name string
	Type BaseType
}

func (ColumnRef) exprNode() {}

// Cast represents an explicit CAST(inner AS typename).
//
// Timestamp-with-zone literals always go through an explicit Cast: implicit
// literal typing in Presto resolves against the connection default zone,
// which is exactly the ambiguity this layer exists to remove.
type Cast struct {
	Inner    Expr
	TypeName string
}

func (Cast) exprNode() {}

// AtTimeZone represents the Presto AT TIME ZONE operator, reinterpreting a
// temporal expression in an explicitly named zone.
//
// Applied is the idempotence marker: the rewriter sets it when it wraps an
// expression and checks it before wrapping, so a tree passes through any
// number of rewrite steps with at most one wrapper. The marker is part of
// the node, not out-of-band metadata, and has no printed form.
type AtTimeZone struct {
	Inner   Expr
	Zone    string
	Applied bool
}

func (AtTimeZone) exprNode() {}

// Case represents a searched CASE expression with a single branch.
// Else may be nil, in which case the ELSE arm is omitted (yields NULL for
// unmatched rows, which aggregate functions ignore).
type Case struct {
	When Expr
	Then Expr
	Else Expr
}

func (Case) exprNode() {}

// Infix represents a binary operator expression, always parenthesized when
// rendered. Used for the arithmetic the epoch decomposition needs (integer
// division); modulo is NOT an Infix in Presto, use FuncCall "mod".
type Infix struct {
	Op    string
	Left  Expr
	Right Expr
}

func (Infix) exprNode() {}

// StringLit represents an inline single-quoted SQL string literal.
// Used where Presto requires a literal rather than a parameter: zone names,
// date_trunc units, date_add units.
type StringLit struct {
	Value string
}

func (StringLit) exprNode() {}

// IntLit represents an inline integer literal.
type IntLit struct {
	Value int64
}

func (IntLit) exprNode() {}

// DecimalLit represents an inline fixed-scale decimal literal.
//
// The scale of the wrapped decimal is preserved verbatim when rendered:
// decimal.New(100, -2) renders as "1.00", never "1". Conditional counting
// depends on this - an integer literal would be truncated by Presto in the
// surrounding aggregate arithmetic.
type DecimalLit struct {
	Value decimal.Decimal
}

func (DecimalLit) exprNode() {}

// Param represents a bound statement parameter. Renders as "?" and appends
// its value to the fragment's parameter list.
type Param struct {
	Value any
}

func (Param) exprNode() {}
