package interp

import (
	"fmt"

	"github.com/you-not-fish/splat/internal/syntax"
)

// ExecutionError is a runtime fault: an unknown name, a call with the
// wrong arguments, division by zero or an ill-typed operand.
type ExecutionError struct {
	Pos syntax.Pos
	Msg string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func errorf(pos syntax.Pos, format string, args ...interface{}) error {
	return &ExecutionError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
