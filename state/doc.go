// Package state persists an entity Transform as a small human-readable text
// file.
//
// # File format
//
// A .state file is UTF-8 text, one value per line, LF-terminated including
// the last line:
//
//	v0
//
//	translation:
//	<x>
//	<y>
//	<z>
//
//	rotation:
//	<x>
//	<y>
//	<z>
//	<w>
//
//	scale:
//	<x>
//	<y>
//	<z>
//
// The first line is the format version; only "v0" is recognized. Each float
// is written with the shortest decimal representation that round-trips a
// float32, so Decode(Encode(t)) reproduces t bit-for-bit.
//
// Decoding is strictly positional. The blank and label lines exist for human
// readers only: they must be present, but their content is never inspected.
// Files hand-edited to carry other text in those positions still load. This
// leniency is part of the format; tightening it would orphan existing saves.
//
// # Errors
//
// All decode failures are reported as *ParseError, which carries a message
// and nothing else: a fixed string for a missing line, "Wrong version: ..."
// for an unrecognized first line, and the underlying strconv or I/O error
// text verbatim for the rest.
package state
