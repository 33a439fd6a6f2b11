package types

import (
	"strings"

	"github.com/you-not-fish/splat/internal/syntax"
)

// Universe is the root scope holding the predeclared type names.
// Type names are stored lower-case and matched case-insensitively.
var Universe *Scope

func init() {
	Universe = NewScope(nil, syntax.NoPos, syntax.NoPos, "universe")
	for _, kind := range []BasicKind{Integer, Boolean, String, Void} {
		t := Typ[kind]
		Universe.Insert(NewTypeName(syntax.NoPos, strings.ToLower(t.name), t))
	}
}

// LookupType resolves a type name such as "Integer", "integer" or "VOID".
// It returns nil if name does not denote a type.
func LookupType(name string) Type {
	if tn, ok := Universe.Lookup(strings.ToLower(name)).(*TypeName); ok {
		return tn.Type()
	}
	return nil
}
