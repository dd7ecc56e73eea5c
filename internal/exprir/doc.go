// Package exprir provides the intermediate representation for Presto SQL
// expression fragments.
//
// The IR sits between the engine-agnostic query layer and the rendered SQL
// text sent to Presto:
//
//	[abstract query node] → [exprir tree] → [SQL text + bound params]
//
// Trees are immutable after construction. Rewriting never mutates a node in
// place: a rewrite produces a new node wrapping the old one. This is what
// makes the AT TIME ZONE idempotence guarantee checkable - the wrapper
// variant carries its own applied marker, so a second wrap attempt can see
// the first.
//
// SEALED INTERFACE:
//
// Expr is a sealed interface using the marker method pattern. Only types in
// this package implement it, which enables exhaustive type switches in the
// renderer and the rewriter's eligibility checks.
//
// Example:
//
//	switch e := expr.(type) {
//	case exprir.FuncCall:
//	    // Handle call
//	case exprir.AtTimeZone:
//	    // Handle zone shift
//	default:
//	    // Impossible - compiler knows all Expr types
//	}
//
// RENDERING:
//
// Render walks a tree and produces (sql, params). Values that must travel as
// bound parameters use the Param variant and render as "?"; values Presto
// needs inline (zone names, date_trunc units, fixed-scale decimals) use the
// literal variants and render as SQL literals.
package exprir
