package types2

import (
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// Checker is the semantic analyzer.
type Checker struct {
	conf *Config
	info *Info

	global *types.Scope // program-level variables and functions
	scope  *types.Scope // current scope

	// Function objects keyed by declaration.
	// Lifecycle: allocated per Check invocation.
	funcs map[*syntax.FuncDecl]*types.FuncObj

	first *SemanticError // the error that stopped analysis
}

// checkProgram analyzes a whole program.
func (c *Checker) checkProgram(prog *syntax.Program) {
	c.global = types.NewScope(nil, prog.Pos(), syntax.NoPos, "program")
	c.scope = c.global
	c.recordScope(prog, c.global)

	// Phase 1: Collect top-level declarations
	c.collectDecls(prog.Decls)

	// Phase 2: Resolve function signatures so calls may precede declarations
	for _, decl := range prog.Decls {
		if fd, ok := decl.(*syntax.FuncDecl); ok {
			c.checkFuncSignature(fd)
		}
	}

	// Phase 3: Check function bodies in declaration order
	for _, decl := range prog.Decls {
		if fd, ok := decl.(*syntax.FuncDecl); ok {
			c.checkFuncBody(fd)
		}
	}

	// Phase 4: Check the program body against the global scope
	c.stmts(prog.Body)
}

// openScope creates a new scope as a child of the current scope.
func (c *Checker) openScope(n syntax.Node, comment string) *types.Scope {
	s := types.NewScope(c.scope, n.Pos(), syntax.NoPos, comment)
	c.scope = s
	c.recordScope(n, s)
	return s
}

// closeScope returns to the parent scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

// declare declares an object in the current scope.
// Reports an error if the name is already declared there.
func (c *Checker) declare(name *syntax.Name, obj types.Object) {
	if existing := c.scope.Insert(obj); existing != nil {
		c.errorf(name.Pos(), "%s redeclared in %s (previous declaration at %s)",
			name.Value, c.scope.Comment(), existing.Pos())
	}
	c.recordDef(name, obj)
}

// recordType records the type information for an expression.
func (c *Checker) recordType(e syntax.Expr, x *operand) {
	if c.info == nil {
		return
	}
	c.info.Types[e] = TypeAndValue{
		Type:  x.typ,
		Value: x.val,
		mode:  x.mode,
	}
}

// recordDef records the definition of an object.
func (c *Checker) recordDef(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}

// recordScope records the scope opened for a node.
func (c *Checker) recordScope(n syntax.Node, s *types.Scope) {
	if c.info != nil {
		c.info.Scopes[n] = s
	}
}
