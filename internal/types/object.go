package types

import "github.com/you-not-fish/splat/internal/syntax"

// Object represents a declared entity: variable, type name, or function.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// VarKind tells where a variable was declared.
type VarKind int

const (
	GlobalVar VarKind = iota // program-level declaration
	ParamVar                 // function parameter
	LocalVar                 // function local
	ResultVar                // reserved result slot of a function scope
)

var varKindNames = [...]string{
	GlobalVar: "global",
	ParamVar:  "param",
	LocalVar:  "local",
	ResultVar: "result",
}

func (k VarKind) String() string {
	if int(k) < len(varKindNames) {
		return varKindNames[k]
	}
	return "var"
}

// ResultName is the name of the reserved slot holding a function's
// declared result type. It cannot be spelled as an identifier.
const ResultName = "$result"

// Var represents a variable.
type Var struct {
	object
	kind VarKind
}

// NewVar creates a new variable object.
func NewVar(pos syntax.Pos, name string, typ Type, kind VarKind) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, kind: kind}
}

// NewResult creates the reserved result slot for a function returning typ.
func NewResult(pos syntax.Pos, typ Type) *Var {
	return NewVar(pos, ResultName, typ, ResultVar)
}

// Kind reports where the variable was declared.
func (v *Var) Kind() VarKind {
	return v.kind
}

// TypeName represents a predeclared type name.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// FuncObj represents a declared function.
type FuncObj struct {
	object
	sig *Func // function signature (set after construction)
}

// NewFuncObj creates a new function object.
// The signature should be set later using SetSignature.
func NewFuncObj(pos syntax.Pos, name string) *FuncObj {
	return &FuncObj{object: object{name: name, pos: pos}}
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.sig
}

// SetSignature sets the function signature.
// This is called during type checking once the signature is resolved.
func (f *FuncObj) SetSignature(sig *Func) {
	f.sig = sig
	f.typ = sig
}
