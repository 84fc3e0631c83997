package intset

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidArgumentError is returned by a constructor when N <= 0 or alpha
// is not in (0, 1].
//
// A key value of 0 passed to Contains/Add/Remove is also a precondition
// violation, but since those methods' signatures carry no error return,
// that one panics instead (see checkKey) rather than surfacing here.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("intset: invalid argument: %s", e.Reason)
}

func newInvalidArgument(format string, args ...any) error {
	return errors.WithStack(&InvalidArgumentError{Reason: fmt.Sprintf(format, args...)})
}

// TableFullError is returned by Add when no empty cell could be found
// for the new element within the variant's probe-length guarantee (one
// full revolution for LP/RH, both directions for BLP). It is fatal for
// that Add call: the table is left in the same state it was in before
// the call started.
type TableFullError struct {
	Capacity int
}

func (e *TableFullError) Error() string {
	return fmt.Sprintf("intset: table full: no empty cell found in a table of capacity %d", e.Capacity)
}

func newTableFull(capacity int) error {
	return errors.WithStack(&TableFullError{Capacity: capacity})
}

// checkKey panics if k is the reserved empty-cell sentinel. Passing 0 to
// any set operation is a programmer error, not a recoverable runtime
// error, so unlike InvalidArgumentError this is never returned - it
// terminates.
func checkKey(k uint32) {
	if k == 0 {
		panic("intset: key must not be 0 (0 is the reserved empty-cell sentinel)")
	}
}
