package types

import "strings"

// Func represents a function signature.
type Func struct {
	typ
	params []*Var
	result Type // Typ[Void] for procedures
}

// NewFunc creates a new function signature. A nil result means Void.
func NewFunc(params []*Var, result Type) *Func {
	if result == nil {
		result = Typ[Void]
	}
	return &Func{params: params, result: result}
}

// Params returns the parameter list.
func (f *Func) Params() []*Var {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the i'th parameter.
func (f *Func) Param(i int) *Var {
	return f.params[i]
}

// Result returns the result type.
func (f *Func) Result() Type {
	return f.result
}

// String implements Type.
func (f *Func) String() string {
	var b strings.Builder
	b.WriteString("func(")
	for i, p := range f.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name())
		b.WriteString(": ")
		b.WriteString(p.Type().String())
	}
	b.WriteString(")")
	if !IsVoid(f.result) {
		b.WriteString(": ")
		b.WriteString(f.result.String())
	}
	return b.String()
}
