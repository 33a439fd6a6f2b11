package types2

import (
	"go/constant"

	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types"
)

// Config specifies the configuration for semantic analysis.
type Config struct {
	// Error is called with the first semantic error, if any.
	Error ErrorHandler
}

// Info holds the results of semantic analysis.
type Info struct {
	// Types maps expressions to their type and value information.
	Types map[syntax.Expr]TypeAndValue

	// Defs maps defining identifiers to their declared objects:
	// globals, functions, parameters and locals.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to their referenced objects.
	// This covers variable references, assignment targets and callees.
	Uses map[*syntax.Name]types.Object

	// Scopes maps the Program to the global scope and each FuncDecl
	// to its function scope.
	Scopes map[syntax.Node]*types.Scope
}

// TypeAndValue holds the type and value information for an expression.
type TypeAndValue struct {
	Type  types.Type     // expression type
	Value constant.Value // constant value (nil if not constant)
	mode  operandMode    // operand mode
}

// IsVoid reports whether the expression has no value (void function call).
func (tv TypeAndValue) IsVoid() bool {
	return tv.mode == novalue
}

// IsConstant reports whether the expression is a constant.
func (tv TypeAndValue) IsConstant() bool {
	return tv.mode == constant_
}

// IsAddressable reports whether the expression is a variable.
func (tv TypeAndValue) IsAddressable() bool {
	return tv.mode == variable
}

// IsValue reports whether the expression has a value.
func (tv TypeAndValue) IsValue() bool {
	return tv.mode == constant_ || tv.mode == variable || tv.mode == value
}

// Check analyzes a parsed program. It returns the global scope and the
// first *SemanticError encountered, if any. Analysis stops at the first
// error.
func Check(prog *syntax.Program, conf *Config, info *Info) (global *types.Scope, err error) {
	if conf == nil {
		conf = &Config{}
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]TypeAndValue)
		}
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
		if info.Scopes == nil {
			info.Scopes = make(map[syntax.Node]*types.Scope)
		}
	}

	c := &Checker{
		conf:  conf,
		info:  info,
		funcs: make(map[*syntax.FuncDecl]*types.FuncObj),
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			global, err = c.global, c.first
		}
	}()

	c.checkProgram(prog)
	return c.global, nil
}
