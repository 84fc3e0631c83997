//go:build debug

package assert

import (
	"fmt"
	"log"
)

// Enabled reports whether debug-only checks are compiled in.
const Enabled = true

// Invariant panics with a formatted message if cond is false.
//
// Callers use this to whole-array-scan a set's per-variant invariant
// after every mutation. It must never be used to validate caller-
// supplied input — use the set packages' InvalidArgument error for
// that instead.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("assert: invariant violated: "+format, args...))
	}
}

// Trace writes a debug trace line via the standard logger.
func Trace(format string, args ...any) {
	log.Printf("[trace] "+format, args...)
}
