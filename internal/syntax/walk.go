package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		if n.Name != nil {
			Walk(n.Name, v)
		}
		for _, d := range n.Decls {
			Walk(d, v)
		}
		walkStmts(n.Body, v)

	case *VarDecl:
		Walk(n.Name, v)
		Walk(n.Type, v)

	case *FuncDecl:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Result != nil {
			Walk(n.Result, v)
		}
		for _, l := range n.Locals {
			Walk(l, v)
		}
		walkStmts(n.Body, v)

	case *BlockStmt:
		walkStmts(n.Stmts, v)

	case *IfStmt:
		Walk(n.Cond, v)
		walkStmts(n.Then, v)
		walkStmts(n.Else, v)

	case *WhileStmt:
		Walk(n.Cond, v)
		walkStmts(n.Body, v)

	case *PrintStmt:
		if n.X != nil {
			Walk(n.X, v)
		}

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *AssignStmt:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *CallStmt:
		Walk(n.Call, v)

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	// Leaf nodes: Name, BasicLit
	// No children to visit
	}
}

func walkStmts(list []Stmt, v Visitor) {
	for _, s := range list {
		Walk(s, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
