package types2

import (
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// collectDecls declares all top-level variables and functions in the
// global scope. Labels must be unique across both kinds.
func (c *Checker) collectDecls(decls []syntax.Decl) {
	for _, d := range decls {
		switch decl := d.(type) {
		case *syntax.VarDecl:
			c.collectVarDecl(decl)
		case *syntax.FuncDecl:
			c.collectFuncDecl(decl)
		}
	}
}

// collectVarDecl declares a global variable.
func (c *Checker) collectVarDecl(decl *syntax.VarDecl) {
	typ := c.varType(decl, "global variable")
	c.declare(decl.Name, types.NewVar(decl.Name.Pos(), decl.Name.Value, typ, types.GlobalVar))
}

// collectFuncDecl declares a function.
// Its signature is resolved in checkFuncSignature.
func (c *Checker) collectFuncDecl(decl *syntax.FuncDecl) {
	obj := types.NewFuncObj(decl.Name.Pos(), decl.Name.Value)
	c.declare(decl.Name, obj)
	c.funcs[decl] = obj
}

// resolve resolves a name to an object.
// Reports an error if the name is undefined.
func (c *Checker) resolve(name *syntax.Name) types.Object {
	obj := c.lookup(name.Value)
	if obj == nil {
		c.errorf(name.Pos(), "undefined: %s", name.Value)
	}
	c.recordUse(name, obj)
	return obj
}

// isFunc reports whether name denotes a declared function.
func (c *Checker) isFunc(name string) bool {
	_, ok := c.global.Lookup(name).(*types.FuncObj)
	return ok
}
