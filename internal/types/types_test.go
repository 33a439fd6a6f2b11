package types

import (
	"testing"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/splat/internal/syntax"
)

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		kind BasicKind
		name string
	}{
		{Integer, "Integer"},
		{Boolean, "Boolean"},
		{String, "String"},
		{Void, "Void"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := Typ[tt.kind]
			be.Equal(t, typ.Kind(), tt.kind)
			be.Equal(t, typ.Name(), tt.name)
			be.Equal(t, typ.String(), tt.name)
		})
	}
	be.True(t, Typ[Invalid] == nil)
}

func TestLookupType(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"Integer", Typ[Integer]},
		{"integer", Typ[Integer]},
		{"INTEGER", Typ[Integer]},
		{"Boolean", Typ[Boolean]},
		{"string", Typ[String]},
		{"void", Typ[Void]},
		{"Void", Typ[Void]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, LookupType(tt.name), tt.want)
		})
	}

	for _, name := range []string{"int", "Float", "", "count"} {
		be.True(t, LookupType(name) == nil)
	}
}

func TestPredicates(t *testing.T) {
	be.True(t, IsInteger(Typ[Integer]))
	be.True(t, !IsInteger(Typ[Boolean]))
	be.True(t, IsBoolean(Typ[Boolean]))
	be.True(t, IsString(Typ[String]))
	be.True(t, IsVoid(Typ[Void]))
	be.True(t, !IsVoid(nil))

	be.True(t, IsValue(Typ[Integer]))
	be.True(t, IsValue(Typ[String]))
	be.True(t, !IsValue(Typ[Void]))
	be.True(t, !IsValue(nil))
	be.True(t, !IsValue(NewFunc(nil, nil)))
}

func TestIdentical(t *testing.T) {
	be.True(t, Identical(Typ[Integer], Typ[Integer]))
	be.True(t, !Identical(Typ[Integer], Typ[Boolean]))
	be.True(t, !Identical(Typ[Integer], nil))
	be.True(t, Identical(nil, nil))

	p := func(name string, typ Type) *Var { return NewVar(syntax.NoPos, name, typ, ParamVar) }
	f1 := NewFunc([]*Var{p("a", Typ[Integer])}, Typ[Boolean])
	f2 := NewFunc([]*Var{p("b", Typ[Integer])}, Typ[Boolean])
	f3 := NewFunc([]*Var{p("a", Typ[String])}, Typ[Boolean])
	f4 := NewFunc(nil, nil)
	be.True(t, Identical(f1, f2))
	be.True(t, !Identical(f1, f3))
	be.True(t, !Identical(f1, f4))
	be.True(t, !Identical(f1, Typ[Boolean]))
}

func TestFuncSignature(t *testing.T) {
	params := []*Var{
		NewVar(syntax.NoPos, "a", Typ[Integer], ParamVar),
		NewVar(syntax.NoPos, "s", Typ[String], ParamVar),
	}
	sig := NewFunc(params, Typ[Integer])
	be.Equal(t, sig.NumParams(), 2)
	be.Equal(t, sig.Param(1).Name(), "s")
	be.Equal(t, sig.Result(), Type(Typ[Integer]))
	be.Equal(t, sig.String(), "func(a: Integer, s: String): Integer")

	proc := NewFunc(nil, nil)
	be.True(t, IsVoid(proc.Result()))
	be.Equal(t, proc.String(), "func()")
}

func TestFuncObj(t *testing.T) {
	f := NewFuncObj(syntax.NewPos("", 2, 1), "incr")
	be.True(t, f.Signature() == nil)

	sig := NewFunc(nil, Typ[Integer])
	f.SetSignature(sig)
	be.Equal(t, f.Signature(), sig)
	be.Equal(t, f.Type(), Type(sig))
	be.Equal(t, f.Pos().Line(), uint32(2))
}

func TestVarKindString(t *testing.T) {
	be.Equal(t, GlobalVar.String(), "global")
	be.Equal(t, ParamVar.String(), "param")
	be.Equal(t, LocalVar.String(), "local")
	be.Equal(t, ResultVar.String(), "result")
}
