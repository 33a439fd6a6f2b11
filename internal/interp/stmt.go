package interp

import (
	"io"

	"github.com/you-not-fish/splat/internal/syntax"
)

// flow reports how a statement list finished. A return stops the
// remaining statements of the enclosing activation and carries its value.
type flow struct {
	returned bool
	val      Value      // Void for a bare return
	pos      syntax.Pos // position of the return statement
}

// stmts executes a list of statements in order.
func (in *Interpreter) stmts(f *frame, list []syntax.Stmt) (flow, error) {
	for _, s := range list {
		fl, err := in.stmt(f, s)
		if err != nil || fl.returned {
			return fl, err
		}
	}
	return flow{}, nil
}

// stmt executes a single statement.
func (in *Interpreter) stmt(f *frame, s syntax.Stmt) (flow, error) {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		return flow{}, in.assignStmt(f, s)

	case *syntax.IfStmt:
		cond, err := in.condition(f, s.Cond, "if")
		if err != nil {
			return flow{}, err
		}
		if cond {
			return in.stmts(f, s.Then)
		}
		return in.stmts(f, s.Else)

	case *syntax.WhileStmt:
		for {
			cond, err := in.condition(f, s.Cond, "while")
			if err != nil || !cond {
				return flow{}, err
			}
			fl, err := in.stmts(f, s.Body)
			if err != nil || fl.returned {
				return fl, err
			}
		}

	case *syntax.PrintStmt:
		return flow{}, in.printStmt(f, s)

	case *syntax.ReturnStmt:
		fl := flow{returned: true, val: Void, pos: s.Pos()}
		if s.Result != nil {
			v, err := in.expr(f, s.Result)
			if err != nil {
				return flow{}, err
			}
			fl.val = v
		}
		return fl, nil

	case *syntax.BlockStmt:
		return in.stmts(f, s.Stmts)

	case *syntax.CallStmt:
		_, err := in.call(f, s.Call)
		return flow{}, err
	}
	return flow{}, errorf(s.Pos(), "unexpected statement %T", s)
}

// assignStmt replaces the binding of the target. The new value must have
// the kind of the old one.
func (in *Interpreter) assignStmt(f *frame, s *syntax.AssignStmt) error {
	name := s.Target.Value
	old, ok := f.lookup(name)
	if !ok {
		return errorf(s.Target.Pos(), "undefined: %s", name)
	}
	v, err := in.expr(f, s.Value)
	if err != nil {
		return err
	}
	if v.Kind() != old.Kind() {
		return errorf(s.Value.Pos(), "cannot use %s as %s in assignment to %s", v.Type(), old.Type(), name)
	}
	f.set(name, v)
	return nil
}

// condition evaluates the condition of an if or while statement.
func (in *Interpreter) condition(f *frame, e syntax.Expr, kind string) (bool, error) {
	v, err := in.expr(f, e)
	if err != nil {
		return false, err
	}
	if v.Kind() != boolKind {
		return false, errorf(e.Pos(), "non-boolean condition in %s statement (%s)", kind, v.Type())
	}
	return v.Bool(), nil
}

// printStmt writes a value's printed form. print_line ends the line.
func (in *Interpreter) printStmt(f *frame, s *syntax.PrintStmt) error {
	var text string
	if s.X != nil {
		v, err := in.expr(f, s.X)
		if err != nil {
			return err
		}
		text = v.String()
	}
	if s.Line {
		text += "\n"
	}
	if _, err := io.WriteString(in.out, text); err != nil {
		return errorf(s.Pos(), "print: %v", err)
	}
	return nil
}
