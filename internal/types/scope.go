package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/splat/internal/syntax"
)

// Scope represents a lexical scope.
// Programs use a two-level tree: one global scope and one scope per
// function whose parent is the global scope. Type names live in the
// separate Universe scope.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]Object
	pos, end syntax.Pos
	comment  string // debugging comment (e.g., "function foo", "program")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, pos, end syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		pos:     pos,
		end:     end,
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// NumChildren returns the number of child scopes.
func (s *Scope) NumChildren() int {
	return len(s.children)
}

// Pos returns the start position of the scope in source.
func (s *Scope) Pos() syntax.Pos {
	return s.pos
}

// End returns the end position of the scope in source.
func (s *Scope) End() syntax.Pos {
	return s.end
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the object with the given name in the current scope.
// Returns nil if not found in this scope (does not search parent scopes).
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent returns the object with the given name by searching
// from the current scope up through all parent scopes.
// Returns the object and the scope in which it was found.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, returns the existing object.
// Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	obj.setParent(s)
	return nil
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumObjects returns the number of objects in the scope.
func (s *Scope) NumObjects() int {
	return len(s.elems)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		obj := s.elems[name]
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, obj.Type())
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}

// Result returns the declared result type of the innermost function scope
// enclosing s, or nil if s is not inside a function.
func (s *Scope) Result() Type {
	if obj, _ := s.LookupParent(ResultName); obj != nil {
		return obj.Type()
	}
	return nil
}
