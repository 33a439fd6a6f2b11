package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	FprintWith(w, node, nil)
}

// FprintWith is like Fprint, but appends annot(x) to the line of every
// expression x for which it returns a non-empty string.
func FprintWith(w io.Writer, node Node, annot func(Expr) string) {
	p := &printer{w: w, annot: annot}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
	annot  func(Expr) string
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// exprf prints an expression header line with its optional annotation.
func (p *printer) exprf(x Expr, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if p.annot != nil {
		if a := p.annot(x); a != "" {
			line += " : " + a
		}
	}
	p.printf("%s\n", line)
}

// section prints a labelled, indented statement list.
func (p *printer) section(label string, list []Stmt) {
	p.printf("%s:\n", label)
	p.indent++
	for _, s := range list {
		p.print(s)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		if n.Name != nil {
			p.printf("Name: %s\n", n.Name.Value)
		}
		for _, d := range n.Decls {
			p.print(d)
		}
		p.section("Body", n.Body)
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s %s %s\n", n.pos, n.Name.Value, n.Type.Value)

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, f := range n.Params {
				p.printf("%s %s\n", f.Name.Value, f.Type.Value)
			}
			p.indent--
		}
		if n.Result != nil {
			p.printf("Result: %s\n", n.Result.Value)
		}
		if len(n.Locals) > 0 {
			p.printf("Locals:\n")
			p.indent++
			for _, f := range n.Locals {
				p.printf("%s %s\n", f.Name.Value, f.Type.Value)
			}
			p.indent--
		}
		p.section("Body", n.Body)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.section("Then", n.Then)
		if n.Else != nil {
			p.section("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.section("Body", n.Body)
		p.indent--

	case *PrintStmt:
		kw := "print"
		if n.Line {
			kw = "print_line"
		}
		p.printf("PrintStmt %s %s\n", n.pos, kw)
		if n.X != nil {
			p.indent++
			p.print(n.X)
			p.indent--
		}

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *AssignStmt:
		p.printf("AssignStmt %s %s\n", n.pos, n.Target.Value)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *CallStmt:
		p.printf("CallStmt %s\n", n.pos)
		p.indent++
		p.print(n.Call)
		p.indent--

	case *Name:
		p.exprf(n, "Name %s %q", n.pos, n.Value)

	case *BasicLit:
		p.exprf(n, "BasicLit %s %s %s", n.pos, n.Kind, n.Value)

	case *Operation:
		if n.Y == nil {
			p.exprf(n, "UnaryOp %s %s", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.indent--
		} else {
			p.exprf(n, "BinaryOp %s %s", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.print(n.Y)
			p.indent--
		}

	case *CallExpr:
		p.exprf(n, "CallExpr %s %s", n.pos, n.Fun.Value)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}
