package types2

import (
	"go/constant"
	"go/token"

	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// expr checks an expression that must produce a value and records its
// type. A void call is an error here.
func (c *Checker) expr(x *operand, e syntax.Expr) {
	c.rawExpr(x, e)
	if x.mode == novalue {
		c.errorf(e.Pos(), "%s returns no value and cannot be used in an expression", x.expr.(*syntax.CallExpr).Fun.Value)
	}
}

// rawExpr checks e and records its type, allowing void calls.
func (c *Checker) rawExpr(x *operand, e syntax.Expr) {
	x.expr = e
	x.pos = e.Pos()

	switch e := e.(type) {
	case *syntax.Name:
		c.ident(x, e)

	case *syntax.BasicLit:
		c.basicLit(x, e)

	case *syntax.Operation:
		if e.Y == nil {
			c.unary(x, e)
		} else {
			c.binary(x, e)
		}

	case *syntax.CallExpr:
		c.call(x, e)

	default:
		c.errorf(e.Pos(), "unexpected expression %T", e)
	}

	c.recordType(e, x)
}

// ident checks a variable reference.
func (c *Checker) ident(x *operand, e *syntax.Name) {
	obj := c.resolve(e)
	v, ok := obj.(*types.Var)
	if !ok {
		c.errorf(e.Pos(), "function %s used as a value without a call", e.Value)
	}
	x.setVar(e.Pos(), v.Type())
}

// basicLit checks a literal. Character literals have no type in the
// language and are rejected.
func (c *Checker) basicLit(x *operand, e *syntax.BasicLit) {
	switch e.Kind {
	case syntax.IntLit:
		val := constant.MakeFromLiteral(e.Value, token.INT, 0)
		if _, exact := constant.Int64Val(val); !exact {
			c.errorf(e.Pos(), "integer literal %s overflows Integer", e.Value)
		}
		x.setConst(e.Pos(), types.Typ[types.Integer], val)

	case syntax.StringLit:
		x.setConst(e.Pos(), types.Typ[types.String], constant.MakeString(syntax.Unquote(e.Value)))

	case syntax.BoolLit:
		x.setConst(e.Pos(), types.Typ[types.Boolean], constant.MakeBool(e.Value == "true"))

	default:
		c.errorf(e.Pos(), "unknown literal %s", e.Value)
	}
}

// unary checks - and not.
func (c *Checker) unary(x *operand, e *syntax.Operation) {
	c.expr(x, e.X)
	x.expr = e
	x.pos = e.Pos()

	switch e.Op {
	case syntax.Sub:
		if !types.IsInteger(x.typ) {
			c.invalidOp(x, "operator - requires an Integer operand, got %s", x.typ)
		}
		if x.mode == constant_ {
			c.fold(x, constant.UnaryOp(token.SUB, x.val, 0))
			return
		}
	case syntax.Not:
		if !types.IsBoolean(x.typ) {
			c.invalidOp(x, "operator not requires a Boolean operand, got %s", x.typ)
		}
		if x.mode == constant_ {
			c.fold(x, constant.UnaryOp(token.NOT, x.val, 0))
			return
		}
	default:
		c.invalidOp(x, "unknown unary operator %s", e.Op)
	}
	x.setValue(e.Pos(), x.typ)
}

// binary checks a binary operation.
func (c *Checker) binary(x *operand, e *syntax.Operation) {
	var y operand
	c.expr(x, e.X)
	c.expr(&y, e.Y)
	x.expr = e
	x.pos = e.Pos()

	op := e.Op
	var result types.Type
	switch {
	case op.IsArith():
		if !types.IsInteger(x.typ) || !types.IsInteger(y.typ) {
			c.invalidOp(x, "operator %s requires Integer operands, got %s and %s", op, x.typ, y.typ)
		}
		result = types.Typ[types.Integer]

	case op.IsEquality():
		if !types.Identical(x.typ, y.typ) {
			c.invalidOp(x, "mismatched types %s and %s in %s", x.typ, y.typ, op)
		}
		result = types.Typ[types.Boolean]

	case op.IsComparison():
		if !types.IsInteger(x.typ) || !types.IsInteger(y.typ) {
			c.invalidOp(x, "operator %s requires Integer operands, got %s and %s", op, x.typ, y.typ)
		}
		result = types.Typ[types.Boolean]

	case op.IsLogical():
		if !types.IsBoolean(x.typ) || !types.IsBoolean(y.typ) {
			c.invalidOp(x, "operator %s requires Boolean operands, got %s and %s", op, x.typ, y.typ)
		}
		result = types.Typ[types.Boolean]

	default:
		c.invalidOp(x, "unknown binary operator %s", op)
	}

	if x.mode == constant_ && y.mode == constant_ {
		if val := c.foldBinary(op, x.val, y.val); val != nil {
			x.typ = result
			c.fold(x, val)
			return
		}
	}
	x.setValue(e.Pos(), result)
}

// binaryTokens maps operators to their go/token equivalents for folding.
// Integer division uses QUO_ASSIGN, which go/constant treats as truncated
// division.
var binaryTokens = map[syntax.Kind]token.Token{
	syntax.Add: token.ADD,
	syntax.Sub: token.SUB,
	syntax.Mul: token.MUL,
	syntax.Div: token.QUO_ASSIGN,
	syntax.Rem: token.REM,
	syntax.Eql: token.EQL,
	syntax.Neq: token.NEQ,
	syntax.Lss: token.LSS,
	syntax.Leq: token.LEQ,
	syntax.Gtr: token.GTR,
	syntax.Geq: token.GEQ,
	syntax.And: token.LAND,
	syntax.Or:  token.LOR,
}

// foldBinary evaluates a constant binary operation. It returns nil when
// the result is left to run time: division or modulo by zero.
func (c *Checker) foldBinary(op syntax.Kind, x, y constant.Value) constant.Value {
	tok := binaryTokens[op]
	switch {
	case op.IsComparison():
		return constant.MakeBool(constant.Compare(x, tok, y))
	case (op == syntax.Div || op == syntax.Rem) && constant.Sign(y) == 0:
		return nil
	}
	return constant.BinaryOp(x, tok, y)
}

// fold records a folded constant. Integer results outside the Integer
// range wrap at run time, so they are kept as plain values.
func (c *Checker) fold(x *operand, val constant.Value) {
	if val.Kind() == constant.Int {
		if _, exact := constant.Int64Val(val); !exact {
			x.setValue(x.pos, x.typ)
			return
		}
	}
	x.setConst(x.pos, x.typ, val)
}

// assignment checks that x can be stored in a slot of type T.
// No conversions exist: the types must be identical.
func (c *Checker) assignment(x *operand, T types.Type, context string) {
	if !types.Identical(x.typ, T) {
		c.errorf(x.pos, "cannot use %s as %s in %s", x.typ, T, context)
	}
}
