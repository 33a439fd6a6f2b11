package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Expressions, Statements, and Declarations.
// All nodes implement the Node interface. Expression, Statement, and Declaration
// nodes further implement their respective interfaces.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the token the node originates from
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Program and Declarations

// Program is the root of a parsed source file:
//
//	program [Name] Decls begin Body end [;]
type Program struct {
	node
	Name  *Name  // program name (nil if omitted)
	Decls []Decl // global variables and functions, in source order
	Body  []Stmt // main statement list
}

// VarDecl declares a global variable, parameter, or local: Name : Type
type VarDecl struct {
	decl
	Name *Name
	Type *Name // type name, resolved case-insensitively by the checker
}

// FuncDecl declares a function:
//
//	Name ( Params ) [: Result] is Locals begin Body end [Name] ;
type FuncDecl struct {
	decl
	Name   *Name
	Params []*VarDecl
	Result *Name // return type name (nil means void)
	Locals []*VarDecl
	Body   []Stmt
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier as written
}

// BasicLit represents a literal value. Value is the lexeme exactly as
// scanned, including quotes and escape backslashes for strings and chars.
type BasicLit struct {
	expr
	Value string
	Kind  LitKind
}

// String returns the literal's source text. Scanning the result yields a
// single token of the same kind.
func (x *BasicLit) String() string { return x.Value }

// Operation represents a unary or binary operation.
// For unary operations (- and not), Y is nil.
type Operation struct {
	expr
	Op Kind // operator
	X  Expr // left operand (or only operand for unary)
	Y  Expr // right operand (nil for unary)
}

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  *Name  // callee
	Args []Expr // argument list
}

// ----------------------------------------------------------------------------
// Statements

// AssignStmt represents an assignment: Target := Value ;
type AssignStmt struct {
	stmt
	Target *Name
	Value  Expr
}

// IfStmt represents: if Cond then Then [else Else] end if ;
type IfStmt struct {
	stmt
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if there is no else branch
}

// WhileStmt represents: while Cond do|loop Body end while|loop ;
type WhileStmt struct {
	stmt
	Cond Expr
	Body []Stmt
}

// PrintStmt represents print X ; or print_line [X] ;
type PrintStmt struct {
	stmt
	Line bool // print_line
	X    Expr // nil only for a bare print_line
}

// ReturnStmt represents: return [Result] ;
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare return
}

// BlockStmt represents: begin Stmts end ;
type BlockStmt struct {
	stmt
	Stmts []Stmt
}

// CallStmt is a function call used as a statement: Call ;
type CallStmt struct {
	stmt
	Call *CallExpr
}
