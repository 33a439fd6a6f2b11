package syntax

import (
	"fmt"
	"io"
)

// SyntaxError represents a syntax error. Lit is the offending token's
// lexeme, or the last token's lexeme when input ended early.
type SyntaxError struct {
	Pos Pos
	Msg string
	Lit string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// bailout is panicked to unwind the recursive descent after the first error.
type bailout struct{}

// Parser performs syntax analysis on a SPLAT token sequence.
// Parsing stops at the first error.
type Parser struct {
	toks []Token
	next int // index of the token after tok

	tok Token // current token; Kind is _EOF past the end

	first *SyntaxError

	printLineValue bool // print_line accepts an optional expression
}

// NewParser creates a Parser over toks, as produced by Tokenize.
func NewParser(toks []Token) *Parser {
	p := &Parser{toks: toks}
	p.advance()
	return p
}

// SetPrintLineValue controls whether print_line may be followed by an
// expression. By default it may not.
func (p *Parser) SetPrintLineValue(enabled bool) {
	p.printLineValue = enabled
}

// ParseFile tokenizes and parses src. Lexical errors are returned as
// *LexError, syntax errors as *SyntaxError.
func ParseFile(filename string, src io.Reader) (*Program, error) {
	toks, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return NewParser(toks).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// advance moves to the next token.
func (p *Parser) advance() {
	if p.next < len(p.toks) {
		p.tok = p.toks[p.next]
		p.next++
		return
	}
	p.next = len(p.toks) + 1
	p.tok = Token{Kind: _EOF}
}

// peek returns the kind of the token n positions after the current one.
func (p *Parser) peek(n int) Kind {
	i := p.next + n - 1
	if i < len(p.toks) {
		return p.toks[i].Kind
	}
	return _EOF
}

// got reports whether the current token is of kind k.
// If so, it consumes the token.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.advance()
		return true
	}
	return false
}

// want consumes the current token if it is of kind k.
// Otherwise, it reports an error.
func (p *Parser) want(k Kind) {
	if !p.got(k) {
		p.syntaxError("expected " + k.String() + ", found " + p.found())
	}
}

// expect is like want but returns the position of the expected token.
func (p *Parser) expect(k Kind) Pos {
	pos := p.tok.Pos
	p.want(k)
	return pos
}

// ----------------------------------------------------------------------------
// Error handling

// offending returns the token an error is reported against: the current
// token, or the last token at end of input.
func (p *Parser) offending() Token {
	if p.tok.Kind != _EOF {
		return p.tok
	}
	if len(p.toks) > 0 {
		return p.toks[len(p.toks)-1]
	}
	return p.tok
}

// found describes the current token for error messages.
func (p *Parser) found() string {
	if p.tok.Kind == _EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", p.tok.Lit)
}

// syntaxError reports a syntax error at the offending token and aborts.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.offending(), msg)
}

func (p *Parser) syntaxErrorAt(tok Token, msg string) {
	if p.first == nil {
		lit := tok.Lit
		if tok.Kind == _EOF {
			lit = "EOF"
		}
		p.first = &SyntaxError{Pos: tok.Pos, Msg: msg, Lit: lit}
	}
	panic(bailout{})
}

// FirstError returns the error that stopped parsing, or nil.
func (p *Parser) FirstError() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program. On failure it returns a *SyntaxError
// and no tree.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			prog, err = nil, p.first
		}
	}()
	return p.program(), nil
}

// program parses: program [Name] Decls begin Body end [;]
func (p *Parser) program() *Program {
	prog := &Program{}
	prog.pos = p.expect(_Program)

	// An identifier directly followed by ':' or '(' starts a declaration.
	if p.tok.Kind == _Name && p.peek(1) != _Colon && p.peek(1) != _Lparen {
		prog.Name = p.name()
	}

	for p.tok.Kind == _Name {
		prog.Decls = append(prog.Decls, p.decl())
	}

	p.want(_Begin)
	prog.Body = p.stmtList()
	p.want(_End)
	p.got(_Semi)

	if p.tok.Kind != _EOF {
		p.syntaxError("unexpected " + p.found() + " after end of program")
	}
	return prog
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	if p.tok.Kind != _Name {
		p.syntaxError("expected identifier, found " + p.found())
	}
	n := &Name{Value: p.tok.Lit}
	n.pos = p.tok.Pos
	p.advance()
	return n
}

// ----------------------------------------------------------------------------
// Declarations

// decl parses a top-level declaration starting with its name.
func (p *Parser) decl() Decl {
	name := p.name()
	switch p.tok.Kind {
	case _Colon:
		return p.varDecl(name)
	case _Lparen:
		return p.funcDecl(name)
	}
	p.syntaxError("unexpected " + p.found() + " after identifier " + name.Value)
	return nil
}

// varDecl parses the rest of: Name : Type ;
func (p *Parser) varDecl(name *Name) *VarDecl {
	d := &VarDecl{Name: name}
	d.pos = name.pos
	p.want(_Colon)
	d.Type = p.name()
	p.want(_Semi)
	return d
}

// funcDecl parses the rest of:
//
//	Name ( Params ) [: Result] is Locals begin Locals Body end [Name] ;
func (p *Parser) funcDecl(name *Name) *FuncDecl {
	d := &FuncDecl{Name: name}
	d.pos = name.pos
	d.Params = p.paramList()
	if p.got(_Colon) {
		d.Result = p.name()
	}
	p.want(_Is)
	d.Locals = p.localList(nil)
	p.want(_Begin)
	d.Locals = p.localList(d.Locals)
	d.Body = p.stmtList()
	p.want(_End)

	if p.tok.Kind == _Name {
		if p.tok.Lit != name.Value {
			p.syntaxError(fmt.Sprintf("end label %s does not match function %s", p.tok.Lit, name.Value))
		}
		p.advance()
	}
	p.want(_Semi)
	return d
}

// paramList parses ( [Name : Type {, Name : Type}] )
func (p *Parser) paramList() []*VarDecl {
	p.want(_Lparen)
	var params []*VarDecl
	if p.tok.Kind != _Rparen {
		for {
			v := &VarDecl{Name: p.name()}
			v.pos = v.Name.pos
			p.want(_Colon)
			v.Type = p.name()
			params = append(params, v)
			if !p.got(_Comma) {
				break
			}
		}
	}
	p.want(_Rparen)
	return params
}

// localList appends local variable declarations (Name : Type ;) to list.
func (p *Parser) localList(list []*VarDecl) []*VarDecl {
	for p.tok.Kind == _Name && p.peek(1) == _Colon {
		list = append(list, p.varDecl(p.name()))
	}
	return list
}

// ----------------------------------------------------------------------------
// Statements

// stmtList parses statements up to, but not including, end or else.
func (p *Parser) stmtList() []Stmt {
	var list []Stmt
	for p.tok.Kind != _End && p.tok.Kind != _Else && p.tok.Kind != _EOF {
		list = append(list, p.stmt())
	}
	return list
}

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok.Kind {
	case _If:
		return p.ifStmt()
	case _While:
		return p.whileStmt()
	case _Print, _PrintLine:
		return p.printStmt()
	case _Return:
		return p.returnStmt()
	case _Begin:
		return p.blockStmt()
	case _Name:
		switch p.peek(1) {
		case _Assign:
			return p.assignStmt()
		case _Lparen:
			s := &CallStmt{Call: p.call(p.name())}
			s.pos = s.Call.pos
			p.want(_Semi)
			return s
		}
	}
	p.syntaxError("unexpected " + p.found() + " in statement")
	return nil
}

// assignStmt parses: Name := Value ;
//
// An arithmetic right-hand side must be wrapped in parentheses.
func (p *Parser) assignStmt() Stmt {
	s := &AssignStmt{Target: p.name()}
	s.pos = s.Target.pos
	p.want(_Assign)
	if p.tok.Kind != _Lparen && p.arithAhead() {
		p.syntaxError("arithmetic expressions must be enclosed in parentheses")
	}
	s.Value = p.expr()
	p.want(_Semi)
	return s
}

// arithAhead reports whether an arithmetic operator appears outside
// parentheses between the current token and the next ;, end or else.
func (p *Parser) arithAhead() bool {
	depth := 0
	for i := p.next - 1; i < len(p.toks); i++ {
		switch k := p.toks[i].Kind; {
		case k == _Lparen:
			depth++
		case k == _Rparen:
			if depth > 0 {
				depth--
			}
		case depth == 0 && k.IsArith():
			return true
		case k == _Semi || k == _End || k == _Else:
			return false
		}
	}
	return false
}

// ifStmt parses: if Cond then Then [else Else] end if ;
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.expect(_If)
	s.Cond = p.expr()
	p.want(_Then)
	s.Then = p.stmtList()
	if p.got(_Else) {
		s.Else = p.stmtList()
		if s.Else == nil {
			s.Else = []Stmt{}
		}
	}
	p.want(_End)
	p.want(_If)
	p.want(_Semi)
	return s
}

// whileStmt parses: while Cond do|loop Body end while|loop ;
func (p *Parser) whileStmt() Stmt {
	s := &WhileStmt{}
	s.pos = p.expect(_While)
	s.Cond = p.expr()
	if !p.got(_Do) && !p.got(_Loop) {
		p.syntaxError("expected do or loop after while condition, found " + p.found())
	}
	s.Body = p.stmtList()
	p.want(_End)
	if !p.got(_While) && !p.got(_Loop) {
		p.syntaxError("expected while or loop after end, found " + p.found())
	}
	p.want(_Semi)
	return s
}

// printStmt parses: print X ; or print_line [X] ;
func (p *Parser) printStmt() Stmt {
	s := &PrintStmt{Line: p.tok.Kind == _PrintLine}
	s.pos = p.tok.Pos
	p.advance()

	switch {
	case s.Line:
		if p.startsExpr() {
			if !p.printLineValue {
				p.syntaxError("print_line does not take an argument")
			}
			s.X = p.expr()
		}
	case !p.startsExpr():
		p.syntaxError("print requires an expression")
	default:
		if p.tok.Kind == _Lparen && p.peek(2) == _Rparen &&
			p.peek(1) == _Literal && p.toks[p.next].LitKind == StringLit {
			p.syntaxErrorAt(p.toks[p.next], "print string literals must not be parenthesized")
		}
		s.X = p.expr()
	}
	p.want(_Semi)
	return s
}

// returnStmt parses: return [Result] ;
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.expect(_Return)
	if p.startsExpr() {
		s.Result = p.expr()
	}
	p.want(_Semi)
	return s
}

// blockStmt parses: begin Stmts end ;
func (p *Parser) blockStmt() Stmt {
	s := &BlockStmt{}
	s.pos = p.expect(_Begin)
	s.Stmts = p.stmtList()
	p.want(_End)
	p.want(_Semi)
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// startsExpr reports whether the current token can begin an expression.
func (p *Parser) startsExpr() bool {
	switch p.tok.Kind {
	case _Lparen, _Not, _Sub, _Literal, _Name:
		return true
	}
	return false
}

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Operators of equal precedence associate to the left.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()
	for {
		oprec := p.tok.Kind.Precedence()
		if oprec <= prec {
			return x
		}

		op := &Operation{Op: p.tok.Kind, X: x}
		op.pos = p.tok.Pos
		p.advance()
		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a unary expression.
func (p *Parser) unaryExpr() Expr {
	switch p.tok.Kind {
	case _Not, _Sub:
		op := &Operation{Op: p.tok.Kind}
		op.pos = p.tok.Pos
		p.advance()
		op.X = p.unaryExpr()
		return op
	}
	return p.operand()
}

// operand parses a literal, a name, a call, or a parenthesized expression.
func (p *Parser) operand() Expr {
	switch p.tok.Kind {
	case _Lparen:
		p.advance()
		x := p.expr()
		p.want(_Rparen)
		return x

	case _Literal:
		lit := &BasicLit{Value: p.tok.Lit, Kind: p.tok.LitKind}
		lit.pos = p.tok.Pos
		p.advance()
		return lit

	case _Name:
		n := p.name()
		if p.tok.Kind == _Lparen {
			return p.call(n)
		}
		return n
	}
	p.syntaxError("unexpected " + p.found() + " in expression")
	return nil
}

// call parses the argument list of a call to fun: ( [X {, X}] )
func (p *Parser) call(fun *Name) *CallExpr {
	c := &CallExpr{Fun: fun}
	c.pos = fun.pos
	p.want(_Lparen)
	if p.tok.Kind != _Rparen {
		for {
			c.Args = append(c.Args, p.expr())
			if !p.got(_Comma) {
				break
			}
		}
	}
	p.want(_Rparen)
	return c
}
