package syntax

import (
	"fmt"
	"io"
	"strings"
)

// LexError reports a malformed character sequence.
type LexError struct {
	Pos Pos
	Msg string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Scanner performs lexical analysis on SPLAT source code.
// Scanning stops at the first error: from then on Next yields only EOF and
// Err reports the error.
type Scanner struct {
	source // embedded character reader

	tok   Token     // current token
	first *LexError // first error, if any

	litBuf strings.Builder
}

// NewScanner creates a Scanner reading all of src.
func NewScanner(filename string, src io.Reader) *Scanner {
	s := &Scanner{}
	s.filename = filename
	s.source = *newSource(filename, src, s.report)
	return s
}

// Tokenize scans all of src and returns its tokens in order, without a
// trailing EOF token. It fails with a *LexError on the first illegal
// character sequence.
func Tokenize(filename string, src io.Reader) ([]Token, error) {
	s := NewScanner(filename, src)
	var toks []Token
	for {
		s.Next()
		if err := s.Err(); err != nil {
			return nil, err
		}
		if s.tok.Kind == _EOF {
			return toks, nil
		}
		toks = append(toks, s.tok)
	}
}

// report records the first lexical error.
func (s *Scanner) report(line, col uint32, msg string) {
	if s.first == nil {
		s.first = &LexError{Pos: NewPos(s.filename, line, col), Msg: msg}
	}
}

// Err returns the first lexical error, or nil.
func (s *Scanner) Err() error {
	if s.first == nil {
		return nil
	}
	return s.first
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Next advances to the next token.
func (s *Scanner) Next() {
	if s.first != nil {
		s.tok = Token{Kind: _EOF, Pos: s.pos()}
		return
	}

redo:
	for isWhitespace(s.ch) || s.ch == '\n' {
		s.nextch()
	}

	s.tok = Token{Pos: s.pos()}

	switch {
	case s.ch < 0:
		s.tok.Kind = _EOF

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case s.ch == '\'':
		s.scanChar()

	case s.ch == '/' && s.peek() == '/':
		s.skipLineComment()
		goto redo

	case s.ch == '/' && s.peek() == '*':
		if s.skipBlockComment() {
			goto redo
		}

	default:
		s.scanOperator()
	}

	if s.first != nil {
		s.tok = Token{Kind: _EOF, Pos: s.tok.Pos}
	}
}

func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier, keyword or boolean literal.
func (s *Scanner) scanIdent() {
	s.startLit()
	s.nextch()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.tok.Kind, s.tok.Lit = LookupKeyword(s.stopLit())
	if s.tok.Kind == _Name && (s.tok.Lit == "true" || s.tok.Lit == "false") {
		s.tok.Kind = _Literal
		s.tok.LitKind = BoolLit
	}
}

// scanNumber scans a maximal run of decimal digits.
func (s *Scanner) scanNumber() {
	s.startLit()
	s.nextch()
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
	s.tok.Kind = _Literal
	s.tok.LitKind = IntLit
	s.tok.Lit = s.stopLit()
}

// scanString scans a double-quoted string literal. The lexeme keeps the
// quotes and escape backslashes; a backslash escapes exactly one character.
func (s *Scanner) scanString() {
	start := s.tok.Pos
	s.startLit() // opening "
	s.nextch()

	for {
		switch {
		case s.ch == '"':
			s.continueLit()
			s.nextch()
			s.tok.Kind = _Literal
			s.tok.LitKind = StringLit
			s.tok.Lit = s.stopLit()
			return

		case s.ch == '\\':
			s.continueLit()
			s.nextch()
			if s.ch < 0 || s.ch == '\n' {
				s.errorAt(start.line, start.col, "unterminated string literal")
				return
			}
			s.continueLit()
			s.nextch()

		case s.ch < 0 || s.ch == '\n':
			s.errorAt(start.line, start.col, "unterminated string literal")
			return

		default:
			s.continueLit()
			s.nextch()
		}
	}
}

// scanChar scans a single-quoted character literal holding exactly one,
// possibly escaped, character.
func (s *Scanner) scanChar() {
	start := s.tok.Pos
	s.startLit() // opening '
	s.nextch()

	switch {
	case s.ch < 0 || s.ch == '\n':
		s.errorAt(start.line, start.col, "unterminated char literal")
		return
	case s.ch == '\'':
		s.errorAt(start.line, start.col, "empty char literal")
		return
	case s.ch == '\\':
		s.continueLit()
		s.nextch()
		if s.ch < 0 || s.ch == '\n' {
			s.errorAt(start.line, start.col, "invalid char escape sequence")
			return
		}
	}
	s.continueLit()
	s.nextch()

	if s.ch != '\'' {
		s.errorAt(start.line, start.col, "invalid char literal")
		return
	}
	s.continueLit()
	s.nextch()

	s.tok.Kind = _Literal
	s.tok.LitKind = CharLit
	s.tok.Lit = s.stopLit()
}

// scanOperator scans an operator or delimiter. Two-character operators are
// preferred over their one-character prefixes.
func (s *Scanner) scanOperator() {
	ch := s.ch
	if !isPrintable(ch) {
		s.error(fmt.Sprintf("unexpected character %q", ch))
		return
	}
	s.nextch()

	two := func(next rune, long, short Kind) {
		if s.ch == next {
			s.nextch()
			s.tok.Kind = long
		} else {
			s.tok.Kind = short
		}
	}

	switch ch {
	case '=':
		two('=', _Eql, _Equals)
	case '<':
		two('=', _Leq, _Lss)
	case '>':
		two('=', _Geq, _Gtr)
	case ':':
		two('=', _Assign, _Colon)
	case '!':
		if s.ch != '=' {
			s.errorAt(s.tok.Pos.line, s.tok.Pos.col, "unexpected character '!'")
			return
		}
		s.nextch()
		s.tok.Kind = _Neq
	case '+':
		s.tok.Kind = _Add
	case '-':
		s.tok.Kind = _Sub
	case '*':
		s.tok.Kind = _Mul
	case '/':
		s.tok.Kind = _Div
	case '%':
		s.tok.Kind = _Rem
	case '(':
		s.tok.Kind = _Lparen
	case ')':
		s.tok.Kind = _Rparen
	case ',':
		s.tok.Kind = _Comma
	case ';':
		s.tok.Kind = _Semi
	case '.':
		s.tok.Kind = _Dot
	default:
		s.errorAt(s.tok.Pos.line, s.tok.Pos.col, fmt.Sprintf("unexpected character %q", ch))
		return
	}
	s.tok.Lit = s.tok.Kind.String()
}

// skipLineComment skips from // to the end of the line.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// skipBlockComment skips a /* ... */ comment and reports whether it was
// closed before the end of input.
func (s *Scanner) skipBlockComment() bool {
	s.nextch() // /
	s.nextch() // *
	var prev rune
	for s.ch >= 0 {
		if prev == '*' && s.ch == '/' {
			s.nextch()
			return true
		}
		prev = s.ch
		s.nextch()
	}
	s.error("unterminated comment")
	return false
}
