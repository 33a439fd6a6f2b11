// Package syntax implements lexical and syntactic analysis for the SPLAT language.
package syntax

import (
	"fmt"
	"strings"
)

// Kind classifies a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF Kind = iota // end of input

	// Literals
	_Name    // identifier: foo, Count, Integer
	_Literal // literal value (used with LitKind)

	// Operators
	_Assign // :=
	_Equals // =

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators (additive)
	_Add // +
	_Sub // -

	// Arithmetic operators (multiplicative)
	_Mul // *
	_Div // /
	_Rem // %

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Comma  // ,
	_Semi   // ;
	_Colon  // :
	_Dot    // .

	// Keywords
	_And
	_Begin
	_Do
	_Else
	_End
	_For
	_If
	_Is
	_Loop
	_Not
	_Or
	_Print
	_PrintLine
	_Program
	_Return
	_Then
	_While

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	_EOF: "EOF",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: ":=",
	_Equals: "=",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",

	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Lparen: "(",
	_Rparen: ")",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",
	_Dot:    ".",

	_And:       "and",
	_Begin:     "begin",
	_Do:        "do",
	_Else:      "else",
	_End:       "end",
	_For:       "for",
	_If:        "if",
	_Is:        "is",
	_Loop:      "loop",
	_Not:       "not",
	_Or:        "or",
	_Print:     "print",
	_PrintLine: "print_line",
	_Program:   "program",
	_Return:    "return",
	_Then:      "then",
	_While:     "while",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Precedence returns the binary operator precedence of k, or 0 if k is not
// a binary operator. Higher binds tighter:
//
//	1: or
//	2: and
//	3: == != < <= > >=
//	4: + -
//	5: * / %
func (k Kind) Precedence() int {
	switch k {
	case _Or:
		return 1
	case _And:
		return 2
	case _Eql, _Neq, _Lss, _Leq, _Gtr, _Geq:
		return 3
	case _Add, _Sub:
		return 4
	case _Mul, _Div, _Rem:
		return 5
	}
	return 0
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= _And && k <= _While
}

// IsOperator reports whether k is a unary or binary operator.
func (k Kind) IsOperator() bool {
	return k.Precedence() > 0 || k == _Not
}

// IsArith reports whether k is one of + - * / %.
func (k Kind) IsArith() bool {
	return k >= _Add && k <= _Rem
}

// IsComparison reports whether k is an ordering or equality operator.
func (k Kind) IsComparison() bool {
	return k >= _Eql && k <= _Geq
}

// IsEquality reports whether k is == or !=.
func (k Kind) IsEquality() bool {
	return k == _Eql || k == _Neq
}

// IsLogical reports whether k is and/or.
func (k Kind) IsLogical() bool {
	return k == _And || k == _Or
}

// IsEOF reports whether k is the EOF kind.
func (k Kind) IsEOF() bool {
	return k == _EOF
}

// IsLiteral reports whether k is the literal kind; Token.LitKind then
// tells which.
func (k Kind) IsLiteral() bool {
	return k == _Literal
}

// Exported operator kinds for the checker and interpreter.
const (
	Add Kind = _Add
	Sub Kind = _Sub
	Mul Kind = _Mul
	Div Kind = _Div
	Rem Kind = _Rem
	Eql Kind = _Eql
	Neq Kind = _Neq
	Lss Kind = _Lss
	Leq Kind = _Leq
	Gtr Kind = _Gtr
	Geq Kind = _Geq
	And Kind = _And
	Or  Kind = _Or
	Not Kind = _Not
)

// LitKind is the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123
	StringLit                // "hello", "a\"b"
	CharLit                  // 'x', '\n'
	BoolLit                  // true, false
)

var litKindNames = [...]string{
	IntLit:    "int",
	StringLit: "string",
	CharLit:   "char",
	BoolLit:   "bool",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if int(k) < len(litKindNames) {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// Token is one lexeme together with its classification and source position.
// Tokens are plain values; two tokens are equal when all fields are equal.
type Token struct {
	Kind    Kind
	LitKind LitKind // only meaningful when Kind == _Literal
	Lit     string  // lexeme exactly as written (keywords lower-cased)
	Pos     Pos
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Lit)
}

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsName reports whether the token is an identifier.
func (t Token) IsName() bool { return t.Kind == _Name }

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool { return t.Kind == _Literal }

// keywords maps lower-case keyword spellings to their kind.
// true and false are not keywords; they scan as BoolLit literals.
var keywords = map[string]Kind{
	"and":        _And,
	"begin":      _Begin,
	"do":         _Do,
	"else":       _Else,
	"end":        _End,
	"for":        _For,
	"if":         _If,
	"is":         _Is,
	"loop":       _Loop,
	"not":        _Not,
	"or":         _Or,
	"print":      _Print,
	"print_line": _PrintLine,
	"program":    _Program,
	"return":     _Return,
	"then":       _Then,
	"while":      _While,
}

// LookupKeyword matches ident case-insensitively against the keyword set.
// For a keyword it returns the keyword kind and the normalized lower-case
// spelling; otherwise _Name and ident unchanged.
func LookupKeyword(ident string) (Kind, string) {
	lower := strings.ToLower(ident)
	if k, ok := keywords[lower]; ok {
		return k, lower
	}
	return _Name, ident
}
