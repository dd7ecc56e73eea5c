// Package temporal round-trips temporal values between the host and
// Presto's session-zone-sensitive wire format.
//
// Presto makes three choices that turn naive marshalling into silent data
// corruption:
//
//  1. A single wire type covers both time and time with time zone; only the
//     native type name distinguishes them.
//  2. Zone-naive timestamps come back already shifted into the session
//     zone, with nothing marking them as shifted. A stored midnight reads
//     as 07:00 when the session runs seven hours behind UTC.
//  3. Sub-second precision stops at milliseconds, and the obvious decode
//     path truncates even those.
//
// The outbound path (outbound.go) formats values so Presto parses exactly
// the intended instant or local value: instants travel as offset-qualified
// ISO-8601 text through from_iso8601_timestamp, never as bare zone-ID text
// the parse function rejects. The inbound path (decode.go) undoes the
// shifts Presto applied, using the live connection's session zone rather
// than configuration.
//
// Decoding is best-effort by contract: an unparseable cell yields absent,
// never an error, because one driver-specific display quirk must not abort
// a whole result set. Conversion errors on the outbound path, by contrast,
// are loud and synchronous - a value that cannot be formatted must abort
// the query before a garbled literal reaches the engine.
package temporal
