package interp

import (
	"strconv"

	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

const (
	intKind  = types.Integer
	boolKind = types.Boolean
)

// expr evaluates an expression in frame f.
func (in *Interpreter) expr(f *frame, e syntax.Expr) (Value, error) {
	if in.info != nil {
		if tv, ok := in.info.Types[e]; ok && tv.IsConstant() {
			if v, ok := FromConstant(tv.Value); ok {
				return v, nil
			}
		}
	}

	switch e := e.(type) {
	case *syntax.Name:
		v, ok := f.lookup(e.Value)
		if !ok {
			return Value{}, errorf(e.Pos(), "undefined: %s", e.Value)
		}
		return v, nil

	case *syntax.BasicLit:
		return literal(e)

	case *syntax.Operation:
		if e.Y == nil {
			return in.unary(f, e)
		}
		return in.binary(f, e)

	case *syntax.CallExpr:
		v, err := in.call(f, e)
		if err != nil {
			return Value{}, err
		}
		if v.Kind() == types.Void {
			return Value{}, errorf(e.Pos(), "%s returns no value and cannot be used in an expression", e.Fun.Value)
		}
		return v, nil
	}
	return Value{}, errorf(e.Pos(), "unexpected expression %T", e)
}

// literal evaluates a literal from its raw lexeme.
func literal(e *syntax.BasicLit) (Value, error) {
	switch e.Kind {
	case syntax.IntLit:
		i, err := strconv.ParseInt(e.Value, 10, 64)
		if err != nil {
			return Value{}, errorf(e.Pos(), "integer literal %s overflows Integer", e.Value)
		}
		return IntValue(i), nil
	case syntax.StringLit:
		return StringValue(syntax.Unquote(e.Value)), nil
	case syntax.BoolLit:
		return BoolValue(e.Value == "true"), nil
	}
	return Value{}, errorf(e.Pos(), "unknown literal %s", e.Value)
}

// unary evaluates - and not.
func (in *Interpreter) unary(f *frame, e *syntax.Operation) (Value, error) {
	x, err := in.expr(f, e.X)
	if err != nil {
		return Value{}, err
	}
	switch e.Op {
	case syntax.Sub:
		if x.Kind() != intKind {
			return Value{}, errorf(e.Pos(), "operator - requires an Integer operand, got %s", x.Type())
		}
		return IntValue(-x.Int()), nil
	case syntax.Not:
		if x.Kind() != boolKind {
			return Value{}, errorf(e.Pos(), "operator not requires a Boolean operand, got %s", x.Type())
		}
		return BoolValue(!x.Bool()), nil
	}
	return Value{}, errorf(e.Pos(), "unknown unary operator %s", e.Op)
}

// binary evaluates a binary operation. Both operands are always
// evaluated, left to right, including for and and or.
func (in *Interpreter) binary(f *frame, e *syntax.Operation) (Value, error) {
	x, err := in.expr(f, e.X)
	if err != nil {
		return Value{}, err
	}
	y, err := in.expr(f, e.Y)
	if err != nil {
		return Value{}, err
	}

	op := e.Op
	switch {
	case op.IsEquality():
		eq := Equal(x, y)
		if op == syntax.Neq {
			eq = !eq
		}
		return BoolValue(eq), nil

	case op.IsLogical():
		if x.Kind() != boolKind || y.Kind() != boolKind {
			return Value{}, errorf(e.Pos(), "operator %s requires Boolean operands, got %s and %s", op, x.Type(), y.Type())
		}
		if op == syntax.And {
			return BoolValue(x.Bool() && y.Bool()), nil
		}
		return BoolValue(x.Bool() || y.Bool()), nil
	}

	if x.Kind() != intKind || y.Kind() != intKind {
		return Value{}, errorf(e.Pos(), "operator %s requires Integer operands, got %s and %s", op, x.Type(), y.Type())
	}
	a, b := x.Int(), y.Int()
	switch op {
	case syntax.Add:
		return IntValue(a + b), nil
	case syntax.Sub:
		return IntValue(a - b), nil
	case syntax.Mul:
		return IntValue(a * b), nil
	case syntax.Div, syntax.Rem:
		if b == 0 {
			return Value{}, errorf(e.Pos(), "Divide by zero")
		}
		if op == syntax.Div {
			return IntValue(a / b), nil
		}
		return IntValue(a % b), nil
	case syntax.Lss:
		return BoolValue(a < b), nil
	case syntax.Leq:
		return BoolValue(a <= b), nil
	case syntax.Gtr:
		return BoolValue(a > b), nil
	case syntax.Geq:
		return BoolValue(a >= b), nil
	}
	return Value{}, errorf(e.Pos(), "unknown binary operator %s", op)
}
