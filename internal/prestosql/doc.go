// Package prestosql rewrites engine-agnostic query expression nodes into
// Presto SQL fragments.
//
// The host query compiler walks expression trees bottom-up and calls the
// rewriter once per node with already-rewritten children. The rewriter maps
// each node of a fixed, closed kind set to Presto's built-ins, applying
// zone correction exactly where Presto's semantics require it:
//
//   - date_trunc and the extraction built-ins see their operand through an
//     AT TIME ZONE wrapper when a report zone is configured, so buckets and
//     fields land in the zone the user reads results in
//   - the wrapper is applied at most once per tree (idempotence marker on
//     the wrapper node) and only to declared timestamp/time types, since
//     Presto raises on anything else
//   - week boundaries and day-of-week numbering are re-based from Presto's
//     ISO Monday convention to the host's configured start of week
//   - epoch conversion decomposes milliseconds through date_add and a
//     named-function mod, because from_unixtime only accepts whole seconds
//     and Presto has no infix modulo
//
// Dispatch is a closed table over Kind built at package initialization and
// read-only afterwards, so concurrent queries rewrite without coordination.
// The rewriter is pure: same invocation snapshot, same inputs, same output.
package prestosql
