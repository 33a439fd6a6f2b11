package types2

import (
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// call checks a function call. Argument count and types must match the
// parameter list exactly. A void callee leaves x in novalue mode.
func (c *Checker) call(x *operand, e *syntax.CallExpr) {
	obj := c.resolve(e.Fun)
	fn, ok := obj.(*types.FuncObj)
	if !ok {
		c.errorf(e.Fun.Pos(), "cannot call non-function %s (variable of type %s)", e.Fun.Value, obj.Type())
	}
	sig := fn.Signature()

	c.checkCallArgs(e, sig)

	x.expr = e
	if types.IsVoid(sig.Result()) {
		x.mode = novalue
		x.pos = e.Pos()
		x.typ = nil
		x.val = nil
		return
	}
	x.setValue(e.Pos(), sig.Result())
}

// checkCallArgs checks the arguments of a call against sig.
func (c *Checker) checkCallArgs(e *syntax.CallExpr, sig *types.Func) {
	name := e.Fun.Value
	if len(e.Args) != sig.NumParams() {
		c.errorf(e.Pos(), "wrong number of arguments in call to %s: have %d, want %d",
			name, len(e.Args), sig.NumParams())
	}

	for i, arg := range e.Args {
		var a operand
		c.expr(&a, arg)
		p := sig.Param(i)
		if !types.Identical(a.typ, p.Type()) {
			c.errorf(arg.Pos(), "cannot use %s as %s in argument %d (%s) to %s",
				a.typ, p.Type(), i+1, p.Name(), name)
		}
	}
}
