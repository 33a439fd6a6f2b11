package types2

import "github.com/you-not-fish/splat/internal/syntax"

// mustReturn reports whether executing list is guaranteed to reach a
// return statement along every path.
func (c *Checker) mustReturn(list []syntax.Stmt) bool {
	for _, s := range list {
		if c.stmtMustReturn(s) {
			return true
		}
	}
	return false
}

// stmtMustReturn reports whether s always ends in a return statement.
// An if needs both branches to return; a while counts when its body does.
func (c *Checker) stmtMustReturn(s syntax.Stmt) bool {
	switch s := s.(type) {
	case *syntax.ReturnStmt:
		return true
	case *syntax.BlockStmt:
		return c.mustReturn(s.Stmts)
	case *syntax.IfStmt:
		return c.mustReturn(s.Then) && c.mustReturn(s.Else)
	case *syntax.WhileStmt:
		return c.mustReturn(s.Body)
	}
	return false
}
