// Package assert provides debug-only invariant checking for the set and
// hasher packages.
//
// Every check in this package compiles away entirely in a normal build;
// it only runs when the binary (or test) is built with the "debug" build
// tag. This mirrors how expensive whole-array invariant scans are kept
// out of the hot insert/remove/lookup paths while still being available
// to catch a violated invariant during development.
package assert

// Enabled reports whether debug-only checks are compiled in.
const Enabled = false

// Invariant is a no-op in a normal build.
func Invariant(cond bool, format string, args ...any) {}

// Trace is a no-op in a normal build.
func Trace(format string, args ...any) {}
