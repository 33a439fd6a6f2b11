// Package types2 implements semantic analysis for the SPLAT language:
// scoping, type checking and return reachability.
package types2

import (
	"fmt"

	"github.com/you-not-fish/splat/internal/syntax"
)

// SemanticError represents a scoping, typing, duplicate-declaration or
// reachability violation.
type SemanticError struct {
	Pos syntax.Pos
	Msg string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is called with the error that stops analysis.
type ErrorHandler func(pos syntax.Pos, msg string)

// bailout is panicked to abandon analysis after the first error.
type bailout struct{}

// errorf reports a semantic error at the given position and aborts.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if c.first == nil {
		c.first = &SemanticError{Pos: pos, Msg: msg}
		if c.conf.Error != nil {
			c.conf.Error(pos, msg)
		}
	}
	panic(bailout{})
}

// invalidOp reports an invalid operation error.
func (c *Checker) invalidOp(x *operand, format string, args ...interface{}) {
	c.errorf(x.pos, "invalid operation: "+format, args...)
}
