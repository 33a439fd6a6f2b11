package types

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/splat/internal/syntax"
)

// Helper function to create a scope for testing
func testScope(parent *Scope, comment string) *Scope {
	return NewScope(parent, syntax.NoPos, syntax.NoPos, comment)
}

func TestScopeInsertAndLookup(t *testing.T) {
	scope := testScope(nil, "test")

	obj := NewVar(syntax.NoPos, "x", Typ[Integer], GlobalVar)
	be.True(t, scope.Insert(obj) == nil)
	be.Equal(t, scope.Lookup("x"), Object(obj))

	// Insert duplicate
	obj2 := NewVar(syntax.NoPos, "x", Typ[String], GlobalVar)
	be.Equal(t, scope.Insert(obj2), Object(obj))
	be.Equal(t, scope.Lookup("x").Type(), Type(Typ[Integer]))
}

func TestScopeLookupParent(t *testing.T) {
	parent := testScope(nil, "parent")
	child := testScope(parent, "child")

	obj := NewVar(syntax.NoPos, "x", Typ[Integer], GlobalVar)
	parent.Insert(obj)

	found, foundScope := child.LookupParent("x")
	be.Equal(t, found, Object(obj))
	be.Equal(t, foundScope, parent)

	// Direct lookup in child should fail
	be.True(t, child.Lookup("x") == nil)

	found, foundScope = child.LookupParent("missing")
	be.True(t, found == nil)
	be.True(t, foundScope == nil)
}

func TestScopeShadowing(t *testing.T) {
	global := testScope(nil, "program")
	fn := testScope(global, "function f")

	globalX := NewVar(syntax.NoPos, "x", Typ[Integer], GlobalVar)
	global.Insert(globalX)
	localX := NewVar(syntax.NoPos, "x", Typ[Boolean], LocalVar)
	fn.Insert(localX)

	found, foundScope := fn.LookupParent("x")
	be.Equal(t, found, Object(localX))
	be.Equal(t, foundScope, fn)
}

func TestScopeResult(t *testing.T) {
	global := testScope(nil, "program")
	fn := testScope(global, "function f")
	fn.Insert(NewResult(syntax.NoPos, Typ[Boolean]))

	be.True(t, global.Result() == nil)
	be.Equal(t, fn.Result(), Type(Typ[Boolean]))

	// The reserved slot never collides with a real identifier.
	be.True(t, fn.Insert(NewVar(syntax.NoPos, "result", Typ[Integer], LocalVar)) == nil)
}

func TestScopeNames(t *testing.T) {
	scope := testScope(nil, "test")

	scope.Insert(NewVar(syntax.NoPos, "c", Typ[Boolean], GlobalVar))
	scope.Insert(NewVar(syntax.NoPos, "a", Typ[Integer], GlobalVar))
	scope.Insert(NewVar(syntax.NoPos, "b", Typ[String], GlobalVar))

	be.Equal(t, scope.Names(), []string{"a", "b", "c"})
	be.Equal(t, scope.NumObjects(), 3)
}

func TestScopeTree(t *testing.T) {
	parent := testScope(nil, "program")
	child1 := testScope(parent, "function f")
	child2 := testScope(parent, "function g")

	be.Equal(t, child1.Parent(), parent)
	be.True(t, parent.Parent() == nil)
	be.Equal(t, parent.NumChildren(), 2)
	be.Equal(t, parent.Children(), []*Scope{child1, child2})
	be.Equal(t, child2.Comment(), "function g")
}

func TestObjectParentScope(t *testing.T) {
	scope := testScope(nil, "test")
	obj := NewVar(syntax.NoPos, "x", Typ[Integer], ParamVar)

	be.True(t, obj.Parent() == nil)
	scope.Insert(obj)
	be.Equal(t, obj.Parent(), scope)
	be.Equal(t, obj.Kind(), ParamVar)
}

func TestScopeString(t *testing.T) {
	global := testScope(nil, "program")
	global.Insert(NewVar(syntax.NoPos, "count", Typ[Integer], GlobalVar))
	fn := testScope(global, "function bump")
	fn.Insert(NewVar(syntax.NoPos, "n", Typ[String], LocalVar))

	s := global.String()
	be.True(t, strings.Contains(s, "scope program {"))
	be.True(t, strings.Contains(s, "  count: Integer\n"))
	be.True(t, strings.Contains(s, "    n: String\n"))
}
