package types2

import (
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// checkFuncSignature resolves a function's parameter and result types.
func (c *Checker) checkFuncSignature(decl *syntax.FuncDecl) {
	fn := c.funcs[decl]

	params := make([]*types.Var, len(decl.Params))
	for i, p := range decl.Params {
		typ := c.varType(p, "parameter")
		params[i] = types.NewVar(p.Name.Pos(), p.Name.Value, typ, types.ParamVar)
	}

	var result types.Type
	if decl.Result != nil {
		result = c.resolveType(decl.Result)
	}
	fn.SetSignature(types.NewFunc(params, result))
}

// checkFuncBody analyzes a function body in its own scope. The scope holds
// the result slot, the parameters and the locals; its parent is the global
// scope.
func (c *Checker) checkFuncBody(decl *syntax.FuncDecl) {
	fn := c.funcs[decl]
	sig := fn.Signature()
	name := decl.Name.Value

	c.openScope(decl, "function "+name)
	defer c.closeScope()

	c.scope.Insert(types.NewResult(decl.Pos(), sig.Result()))

	for i, p := range decl.Params {
		c.checkNotFunc(p.Name)
		c.declare(p.Name, sig.Param(i))
	}
	for _, l := range decl.Locals {
		c.checkNotFunc(l.Name)
		typ := c.varType(l, "local variable")
		c.declare(l.Name, types.NewVar(l.Name.Pos(), l.Name.Value, typ, types.LocalVar))
	}

	c.stmts(decl.Body)

	if !types.IsVoid(sig.Result()) && !c.mustReturn(decl.Body) {
		c.errorf(decl.Name.Pos(), "missing return statement in function %s returning %s", name, sig.Result())
	}
}

// checkNotFunc reports an error if a parameter or local is named after a
// declared function.
func (c *Checker) checkNotFunc(name *syntax.Name) {
	if c.isFunc(name.Value) {
		c.errorf(name.Pos(), "%s collides with function %s", name.Value, name.Value)
	}
}
