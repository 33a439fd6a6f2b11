// Package interp executes analyzed SPLAT programs by walking the syntax tree.
//
// The program body runs in the global frame. Each function call runs in a
// fresh frame holding copies of the globals it does not shadow, its
// parameters and its locals. When the call ends, the copies of globals are
// merged back into the global frame and into the nearest enclosing
// activation that sees them.
package interp

import (
	"io"
	"os"

	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
	"github.com/you-not-fish/splat/internal/types2"
)

// Config controls program execution.
type Config struct {
	// Stdout receives the output of print statements.
	// If nil, os.Stdout is used.
	Stdout io.Writer

	// Info, if set, supplies the constants folded during analysis
	// so they are not re-evaluated.
	Info *types2.Info
}

// Interpreter holds the run-time state of one program.
type Interpreter struct {
	prog *syntax.Program
	out  io.Writer
	info *types2.Info

	funcs   map[string]*syntax.FuncDecl
	globals *frame
}

// New prepares prog for execution. Every global starts at the default
// value of its type.
func New(prog *syntax.Program, conf *Config) (*Interpreter, error) {
	if conf == nil {
		conf = &Config{}
	}
	in := &Interpreter{
		prog:    prog,
		out:     conf.Stdout,
		info:    conf.Info,
		funcs:   make(map[string]*syntax.FuncDecl),
		globals: newFrame(nil, nil),
	}
	if in.out == nil {
		in.out = os.Stdout
	}

	for _, d := range prog.Decls {
		switch d := d.(type) {
		case *syntax.FuncDecl:
			in.funcs[d.Name.Value] = d
		case *syntax.VarDecl:
			typ, err := varType(d)
			if err != nil {
				return nil, err
			}
			in.globals.set(d.Name.Value, Default(typ))
		}
	}
	return in, nil
}

// Run executes the program body.
func (in *Interpreter) Run() error {
	fl, err := in.stmts(in.globals, in.prog.Body)
	if err != nil {
		return err
	}
	if fl.returned {
		return errorf(fl.pos, "return statement outside function")
	}
	return nil
}

// Call invokes the named function with already evaluated arguments, as if
// called from the program body, and returns its result.
func (in *Interpreter) Call(name string, args ...Value) (Value, error) {
	fn, ok := in.funcs[name]
	if !ok {
		return Value{}, errorf(syntax.NoPos, "unknown function %s", name)
	}
	if len(args) != len(fn.Params) {
		return Value{}, errorf(fn.Pos(), "wrong number of arguments in call to %s: have %d, want %d",
			name, len(args), len(fn.Params))
	}
	for i, p := range fn.Params {
		typ, err := varType(p)
		if err != nil {
			return Value{}, err
		}
		if !types.Identical(args[i].Type(), typ) {
			return Value{}, errorf(fn.Pos(), "cannot use %s as %s in argument %d (%s) to %s",
				args[i].Type(), typ, i+1, p.Name.Value, name)
		}
	}
	return in.activate(fn, in.globals, args)
}

// Global returns the current value of a global variable.
func (in *Interpreter) Global(name string) (Value, bool) {
	return in.globals.lookup(name)
}

// Globals returns the names of all global variables in sorted order.
func (in *Interpreter) Globals() []string {
	return in.globals.names()
}

// varType resolves the declared type of a variable.
func varType(d *syntax.VarDecl) (types.Type, error) {
	typ := types.LookupType(d.Type.Value)
	if typ == nil {
		return nil, errorf(d.Type.Pos(), "unknown type %s", d.Type.Value)
	}
	return typ, nil
}
