// Package repair implements a tolerant JSON repair engine: it consumes text
// that may not be valid JSON and produces a syntactically valid JSON
// document that preserves the author's apparent intent, or reports a
// position-tagged error when no reasonable repair exists.
//
// ARCHITECTURE:
//
// Single-Pass Recursive Descent:
// Repair is one recursive-descent parser with one function per grammar
// production (value, object, array, string, number, keyword, unquoted,
// regex, comment, whitespace, markdown fence). Each production either
// consumes input and emits into an output buffer, possibly with repair
// edits, or leaves the cursor untouched and reports no match. No AST is
// built — the output buffer is the sole product of a call.
//
// State:
// A call owns exactly three pieces of state: an immutable rune slice
// (the input), a monotonically-advancing cursor into it, and an
// append-biased output buffer. Apart from small local cursor steps back
// (a number that turns out not to be one resets the cursor to its start,
// and an unquoted run gives back its trailing whitespace), state moves
// backwards only in a checkpoint restore, and only the string production
// ever takes one: unlike every other production, the string grammar cannot always tell
// where a string ends by looking only forward from its start, so it
// retries with different termination policies when a naive read produces
// a wrong-looking result.
//
// Checkpoints:
// A checkpoint is a (cursor, output length) pair. Restoring a checkpoint
// resets the cursor and truncates the output buffer back to that length.
// No other rollback mechanism exists; this is deliberately cheaper and
// more auditable than an exception-based backtracking scheme.
//
// Recursion depth:
// Object and array values recurse into parseValue for their members, so
// pathological input ("[[[[[...") can recurse arbitrarily deep. A depth
// counter aborts with a distinct error once nesting exceeds a fixed
// bound rather than letting the process overflow its stack — the same
// role a step-quota plays in bounding runaway evaluation elsewhere in
// this codebase's lineage, just measured in call-stack depth instead of
// steps.
package repair
