package interp

import (
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// call evaluates the arguments of a call in the caller's frame and runs
// the callee.
func (in *Interpreter) call(caller *frame, e *syntax.CallExpr) (Value, error) {
	name := e.Fun.Value
	fn, ok := in.funcs[name]
	if !ok {
		return Value{}, errorf(e.Pos(), "unknown function %s", name)
	}
	if len(e.Args) != len(fn.Params) {
		return Value{}, errorf(e.Pos(), "wrong number of arguments in call to %s: have %d, want %d",
			name, len(e.Args), len(fn.Params))
	}

	args := make([]Value, len(e.Args))
	for i, arg := range e.Args {
		v, err := in.expr(caller, arg)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return in.activate(fn, caller, args)
}

// activate runs one activation of fn called from caller. The callee frame
// is seeded with the unshadowed globals, then the arguments, then the
// locals at their default values. Whether the body returns or falls off its end, the callee's
// globals are merged back before the result is produced.
func (in *Interpreter) activate(fn *syntax.FuncDecl, caller *frame, args []Value) (Value, error) {
	callee := newFrame(fn, caller)
	callee.copyIn(in.globals)
	for i, p := range fn.Params {
		callee.set(p.Name.Value, args[i])
	}
	for _, l := range fn.Locals {
		typ, err := varType(l)
		if err != nil {
			return Value{}, err
		}
		callee.set(l.Name.Value, Default(typ))
	}

	fl, err := in.stmts(callee, fn.Body)
	if err != nil {
		return Value{}, err
	}
	merge(in.globals, callee)

	if fl.returned {
		return fl.val, nil
	}
	var result types.Type = types.Typ[types.Void]
	if fn.Result != nil {
		if result = types.LookupType(fn.Result.Value); result == nil {
			return Value{}, errorf(fn.Result.Pos(), "unknown type %s", fn.Result.Value)
		}
	}
	return Default(result), nil
}
