package types2

import (
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// resolveType resolves a type name. Type names are matched
// case-insensitively against Integer, Boolean, String and Void.
func (c *Checker) resolveType(name *syntax.Name) types.Type {
	typ := types.LookupType(name.Value)
	if typ == nil {
		c.errorf(name.Pos(), "unknown type %s", name.Value)
	}
	return typ
}

// varType resolves the type of a variable, parameter or local, which must
// not be Void. what describes the declaration for error messages.
func (c *Checker) varType(decl *syntax.VarDecl, what string) types.Type {
	typ := c.resolveType(decl.Type)
	if types.IsVoid(typ) {
		c.errorf(decl.Type.Pos(), "%s %s cannot have type %s", what, decl.Name.Value, typ)
	}
	return typ
}
