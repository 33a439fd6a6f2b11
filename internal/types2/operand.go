package types2

import (
	"go/constant"

	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	invalid   operandMode = iota // operand is invalid
	novalue                      // operand has no value (void function call)
	constant_                    // operand is a constant value
	variable                     // operand is a variable
	value                        // operand is a computed value
)

// operand represents the result of checking an expression.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
	val  constant.Value // constant value (only valid when mode == constant_)
	expr syntax.Expr    // source expression (for error reporting)
}

// String returns a string representation of the operand for debugging.
func (x *operand) String() string {
	if x.mode == invalid {
		return "invalid operand"
	}
	if x.typ == nil {
		return "no value"
	}
	return x.typ.String()
}

// setConst sets the operand to a constant value.
func (x *operand) setConst(pos syntax.Pos, typ types.Type, val constant.Value) {
	x.mode = constant_
	x.pos = pos
	x.typ = typ
	x.val = val
}

// setVar sets the operand to a variable.
func (x *operand) setVar(pos syntax.Pos, typ types.Type) {
	x.mode = variable
	x.pos = pos
	x.typ = typ
	x.val = nil
}

// setValue sets the operand to a computed value.
func (x *operand) setValue(pos syntax.Pos, typ types.Type) {
	x.mode = value
	x.pos = pos
	x.typ = typ
	x.val = nil
}
