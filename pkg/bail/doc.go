// Package bail provides the middle path between Must-style unwrapping and
// full error propagation: unwrap a fallible value in place, or bail out of
// the enclosing function or loop, optionally logging first.
//
// Compared to panicking on failure, bailing returns or continues instead.
// Compared to returning the error, bailing logs or ignores it instead of
// making every caller up the stack handle it.
//
// A fallible value is first classified into an Outcome:
// - Try: the (value, error) shape, error discarded
// - Ptr: optional value behind a pointer
// - From: the comma-ok shape (map index, type assertion, channel receive)
// - When: a boolean condition
// - NotNil: interface values, including interfaces holding nil pointers
// - Classify: any type implementing Classifiable
//
// The outcome is then unwrapped by one of the expanders, which differ only
// in verbosity:
// - Get: logs every failure
// - Once: logs the first failure per call site, process-wide
// - Quiet: never logs
//
// Each expander returns (payload, ok). Go has no macro expansion, so the
// exit action is the caller's own statement after the ok check: return with
// a zero value or explicit fallback, continue, break, or a labeled variant
// of either. The expander guarantees the diagnostic is emitted before ok
// reaches the caller.
//
// Diagnostics carry the call site and the literal source text of the failed
// expression:
//
//	Bailed at /src/app/intake.go:42:12: `bail.Try(strconv.Atoi(s))` is an error
//
// Backend and severity selection live in the sink subpackage.
package bail
