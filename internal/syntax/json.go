package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		m := map[string]interface{}{
			"type":  "Program",
			"pos":   n.pos.String(),
			"decls": mapSlice(n.Decls, declJSON),
			"body":  mapSlice(n.Body, stmtJSON),
		}
		if n.Name != nil {
			m["name"] = n.Name.Value
		}
		return m

	case *VarDecl:
		return map[string]interface{}{
			"type":    "VarDecl",
			"pos":     n.pos.String(),
			"name":    n.Name.Value,
			"vartype": n.Type.Value,
		}

	case *FuncDecl:
		m := map[string]interface{}{
			"type":   "FuncDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"params": mapSlice(n.Params, func(d *VarDecl) interface{} { return toJSON(d) }),
			"locals": mapSlice(n.Locals, func(d *VarDecl) interface{} { return toJSON(d) }),
			"body":   mapSlice(n.Body, stmtJSON),
		}
		if n.Result != nil {
			m["result"] = n.Result.Value
		}
		return m

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": mapSlice(n.Then, stmtJSON),
		}
		if n.Else != nil {
			m["else"] = mapSlice(n.Else, stmtJSON)
		}
		return m

	case *WhileStmt:
		return map[string]interface{}{
			"type": "WhileStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": mapSlice(n.Body, stmtJSON),
		}

	case *PrintStmt:
		m := map[string]interface{}{
			"type": "PrintStmt",
			"pos":  n.pos.String(),
			"line": n.Line,
		}
		if n.X != nil {
			m["x"] = toJSON(n.X)
		}
		return m

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *AssignStmt:
		return map[string]interface{}{
			"type":   "AssignStmt",
			"pos":    n.pos.String(),
			"target": n.Target.Value,
			"value":  toJSON(n.Value),
		}

	case *CallStmt:
		return map[string]interface{}{
			"type": "CallStmt",
			"pos":  n.pos.String(),
			"call": toJSON(n.Call),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *Operation:
		m := map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}
		if n.Y != nil {
			m["y"] = toJSON(n.Y)
		}
		return m

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, exprJSON),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func declJSON(d Decl) interface{} { return toJSON(d) }
func stmtJSON(s Stmt) interface{} { return toJSON(s) }
func exprJSON(x Expr) interface{} { return toJSON(x) }

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
