package sched

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedBlock is returned when the block handed to the scheduler does not
// satisfy the operand model's contract. The block is left untouched.
var ErrMalformedBlock = errors.New("malformed block")

// invariant panics when an internal scheduling invariant is broken. These are
// programming errors; a wrong instruction order must never be emitted.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(errors.Errorf("sched: invariant violated: %s", fmt.Sprintf(format, args...)))
	}
}
