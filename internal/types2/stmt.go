package types2

import (
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// stmts checks a list of statements.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		c.assignStmt(s)

	case *syntax.IfStmt:
		c.condition(s.Cond, "if")
		c.stmts(s.Then)
		c.stmts(s.Else)

	case *syntax.WhileStmt:
		c.condition(s.Cond, "while")
		c.stmts(s.Body)

	case *syntax.PrintStmt:
		if s.X != nil {
			var x operand
			c.expr(&x, s.X)
		}

	case *syntax.ReturnStmt:
		c.returnStmt(s)

	case *syntax.BlockStmt:
		c.stmts(s.Stmts)

	case *syntax.CallStmt:
		c.callStmt(s)

	default:
		c.errorf(s.Pos(), "unexpected statement %T", s)
	}
}

// condition checks the condition of an if or while statement.
func (c *Checker) condition(e syntax.Expr, kind string) {
	var x operand
	c.expr(&x, e)
	if !types.IsBoolean(x.typ) {
		c.errorf(e.Pos(), "non-boolean condition in %s statement (%s)", kind, x.typ)
	}
}

// assignStmt checks an assignment. The value's type must equal the
// target's declared type exactly.
func (c *Checker) assignStmt(s *syntax.AssignStmt) {
	obj := c.resolve(s.Target)
	v, ok := obj.(*types.Var)
	if !ok {
		c.errorf(s.Target.Pos(), "cannot assign to function %s", s.Target.Value)
	}

	var x operand
	c.expr(&x, s.Value)
	c.assignment(&x, v.Type(), "assignment to "+s.Target.Value)
}

// returnStmt checks a return statement against the result slot of the
// enclosing function scope.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) {
	result := c.scope.Result()
	if result == nil {
		c.errorf(s.Pos(), "return statement outside function")
	}

	if s.Result == nil {
		if !types.IsVoid(result) {
			c.errorf(s.Pos(), "missing return value (want %s)", result)
		}
		return
	}

	if types.IsVoid(result) {
		c.errorf(s.Result.Pos(), "unexpected return value in void function")
	}

	var x operand
	c.expr(&x, s.Result)
	c.assignment(&x, result, "return statement")
}

// callStmt checks a call used as a statement; the callee must be void.
func (c *Checker) callStmt(s *syntax.CallStmt) {
	var x operand
	c.rawExpr(&x, s.Call)
	if x.mode != novalue {
		c.errorf(s.Pos(), "%s returns %s and cannot be called as a statement", s.Call.Fun.Value, x.typ)
	}
}
