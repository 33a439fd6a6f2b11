package interp

import (
	"sort"

	"github.com/you-not-fish/splat/internal/syntax"
)

// frame holds the bindings of one statement-list execution: the program
// body or a single function activation.
type frame struct {
	fn     *syntax.FuncDecl // nil for the program body
	caller *frame           // nil for the program body
	vars   map[string]Value
	shadow map[string]bool // parameter and local names of fn
}

func newFrame(fn *syntax.FuncDecl, caller *frame) *frame {
	f := &frame{
		fn:     fn,
		caller: caller,
		vars:   make(map[string]Value),
		shadow: make(map[string]bool),
	}
	if fn != nil {
		for _, p := range fn.Params {
			f.shadow[p.Name.Value] = true
		}
		for _, l := range fn.Locals {
			f.shadow[l.Name.Value] = true
		}
	}
	return f
}

func (f *frame) lookup(name string) (Value, bool) {
	v, ok := f.vars[name]
	return v, ok
}

func (f *frame) set(name string, v Value) {
	f.vars[name] = v
}

// names returns the bound names in sorted order.
func (f *frame) names() []string {
	names := make([]string, 0, len(f.vars))
	for name := range f.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// holder returns the frame holding the current value of the global name
// as seen from f: the innermost activation on the call stack that does
// not shadow it, or globals.
func (f *frame) holder(name string, globals *frame) *frame {
	for fr := f; fr != nil && fr != globals; fr = fr.caller {
		if !fr.shadow[name] {
			return fr
		}
	}
	return globals
}

// copyIn seeds f with every global that f's function does not shadow,
// taking each value from the caller's view of it.
func (f *frame) copyIn(globals *frame) {
	for name := range globals.vars {
		if f.shadow[name] {
			continue
		}
		v, _ := f.caller.holder(name, globals).lookup(name)
		f.vars[name] = v
	}
}

// merge copies the callee's unshadowed bindings of global names back into
// globals after an activation ends. The enclosing activation that holds
// each of those globals is refreshed too.
func merge(globals, callee *frame) {
	for _, name := range callee.names() {
		if callee.shadow[name] {
			continue
		}
		if _, ok := globals.vars[name]; !ok {
			continue
		}
		v := callee.vars[name]
		globals.set(name, v)
		if h := callee.caller.holder(name, globals); h != globals {
			h.set(name, v)
		}
	}
}
