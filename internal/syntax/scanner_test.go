package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

// scan tokenizes src and returns the token lexemes.
func scan(t *testing.T, src string) []string {
	t.Helper()
	toks, err := Tokenize("", strings.NewReader(src))
	be.Err(t, err, nil)
	lits := make([]string, len(toks))
	for i, tok := range toks {
		lits[i] = tok.Lit
	}
	return lits
}

// scanErr tokenizes src and returns the lexical error.
func scanErr(t *testing.T, src string) *LexError {
	t.Helper()
	_, err := Tokenize("", strings.NewReader(src))
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Tokenize(%q) error = %v, want *LexError", src, err)
	}
	return lexErr
}

func TestScanAssignment(t *testing.T) {
	toks, err := Tokenize("", strings.NewReader("x := 1 + 2;"))
	be.Err(t, err, nil)

	want := []Token{
		{Kind: _Name, Lit: "x", Pos: NewPos("", 1, 1)},
		{Kind: _Assign, Lit: ":=", Pos: NewPos("", 1, 3)},
		{Kind: _Literal, LitKind: IntLit, Lit: "1", Pos: NewPos("", 1, 6)},
		{Kind: _Add, Lit: "+", Pos: NewPos("", 1, 8)},
		{Kind: _Literal, LitKind: IntLit, Lit: "2", Pos: NewPos("", 1, 10)},
		{Kind: _Semi, Lit: ";", Pos: NewPos("", 1, 11)},
	}
	be.Equal(t, toks, want)
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []Kind
		lits  []string
	}{
		// Identifiers keep their casing
		{"ident", "foo", []Kind{_Name}, []string{"foo"}},
		{"ident_underscore", "_bar", []Kind{_Name}, []string{"_bar"}},
		{"ident_mixed", "foo123", []Kind{_Name}, []string{"foo123"}},
		{"ident_caps", "FooBar", []Kind{_Name}, []string{"FooBar"}},
		{"type_name", "Integer", []Kind{_Name}, []string{"Integer"}},

		// Keywords are normalized to lower case
		{"kw_program", "PROGRAM", []Kind{_Program}, []string{"program"}},
		{"kw_print_line", "Print_Line", []Kind{_PrintLine}, []string{"print_line"}},
		{"kw_and_or_not", "AND Or not", []Kind{_And, _Or, _Not}, []string{"and", "or", "not"}},
		{"kw_for", "for", []Kind{_For}, []string{"for"}},

		// Boolean literals are exact lexemes
		{"bool_true", "true", []Kind{_Literal}, []string{"true"}},
		{"bool_false", "false", []Kind{_Literal}, []string{"false"}},
		{"bool_cased", "True", []Kind{_Name}, []string{"True"}},

		// Integers are maximal digit runs
		{"int", "123", []Kind{_Literal}, []string{"123"}},
		{"int_leading_zero", "007", []Kind{_Literal}, []string{"007"}},
		{"int_then_ident", "12ab", []Kind{_Literal, _Name}, []string{"12", "ab"}},

		// Strings keep quotes and escapes verbatim
		{"string", `"hello"`, []Kind{_Literal}, []string{`"hello"`}},
		{"string_empty", `""`, []Kind{_Literal}, []string{`""`}},
		{"string_escape_quote", `"a\"b"`, []Kind{_Literal}, []string{`"a\"b"`}},
		{"string_escape_backslash", `"a\\"`, []Kind{_Literal}, []string{`"a\\"`}},
		{"string_comment_chars", `"/* x */"`, []Kind{_Literal}, []string{`"/* x */"`}},

		// Chars
		{"char", "'a'", []Kind{_Literal}, []string{"'a'"}},
		{"char_escape", `'\n'`, []Kind{_Literal}, []string{`'\n'`}},
		{"char_quote", `'\''`, []Kind{_Literal}, []string{`'\''`}},

		// Two-char operators win over their prefixes
		{"op_eql", "==", []Kind{_Eql}, []string{"=="}},
		{"op_neq", "!=", []Kind{_Neq}, []string{"!="}},
		{"op_leq", "<=", []Kind{_Leq}, []string{"<="}},
		{"op_geq", ">=", []Kind{_Geq}, []string{">="}},
		{"op_assign", ":=", []Kind{_Assign}, []string{":="}},
		{"op_equals_twice", "= =", []Kind{_Equals, _Equals}, []string{"=", "="}},
		{"op_eql_assign", "===", []Kind{_Eql, _Equals}, []string{"==", "="}},

		// Single characters
		{"singles", ";:,()+-*/%<>.=", []Kind{
			_Semi, _Colon, _Comma, _Lparen, _Rparen, _Add, _Sub, _Mul, _Div, _Rem, _Lss, _Gtr, _Dot, _Equals,
		}, []string{";", ":", ",", "(", ")", "+", "-", "*", "/", "%", "<", ">", ".", "="}},

		// Comments and whitespace
		{"line_comment", "a // b c\nd", []Kind{_Name, _Name}, []string{"a", "d"}},
		{"line_comment_eof", "a // b", []Kind{_Name}, []string{"a"}},
		{"block_comment", "a /* b\n c */ d", []Kind{_Name, _Name}, []string{"a", "d"}},
		{"block_comment_stars", "a /***/ d", []Kind{_Name, _Name}, []string{"a", "d"}},
		{"tabs_cr", "a\t\r\nb", []Kind{_Name, _Name}, []string{"a", "b"}},
		{"empty", "", nil, nil},
		{"only_comment", "// nothing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize("", strings.NewReader(tt.src))
			be.Err(t, err, nil)

			var kinds []Kind
			var lits []string
			for _, tok := range toks {
				kinds = append(kinds, tok.Kind)
				lits = append(lits, tok.Lit)
			}
			be.Equal(t, kinds, tt.kinds)
			be.Equal(t, lits, tt.lits)
		})
	}
}

func TestScanLitKinds(t *testing.T) {
	toks, err := Tokenize("", strings.NewReader(`1 "s" 'c' true`))
	be.Err(t, err, nil)
	be.Equal(t, len(toks), 4)
	be.Equal(t, toks[0].LitKind, IntLit)
	be.Equal(t, toks[1].LitKind, StringLit)
	be.Equal(t, toks[2].LitKind, CharLit)
	be.Equal(t, toks[3].LitKind, BoolLit)
}

func TestScanPositions(t *testing.T) {
	src := "program\n  x: Integer;\n/* c\n */ begin"
	toks, err := Tokenize("p.splat", strings.NewReader(src))
	be.Err(t, err, nil)

	want := []string{
		"p.splat:1:1",
		"p.splat:2:3",
		"p.splat:2:4",
		"p.splat:2:6",
		"p.splat:2:13",
		"p.splat:4:5",
	}
	be.Equal(t, len(toks), len(want))
	for i, tok := range toks {
		be.Equal(t, tok.Pos.String(), want[i])
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
		line uint32
		col  uint32
	}{
		{"unterminated_comment", "a /* b\nc", "unterminated comment", 2, 2},
		{"unterminated_string", `x "abc`, "unterminated string literal", 1, 3},
		{"string_newline", "\"ab\ncd\"", "unterminated string literal", 1, 1},
		{"string_escape_eof", `"ab\`, "unterminated string literal", 1, 1},
		{"char_empty", "''", "empty char literal", 1, 1},
		{"char_too_long", "'ab'", "invalid char literal", 1, 1},
		{"char_unterminated", "'a", "invalid char literal", 1, 1},
		{"char_eof", "'", "unterminated char literal", 1, 1},
		{"bang", "a ! b", "unexpected character '!'", 1, 3},
		{"unknown_char", "a # b", "unexpected character '#'", 1, 3},
		{"brace", "{", "unexpected character '{'", 1, 1},
		{"non_ascii", "x := é;", "unexpected character 'é'", 1, 6},
		{"control", "a\x01", "unexpected character '\\x01'", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scanErr(t, tt.src)
			be.Equal(t, err.Msg, tt.msg)
			be.Equal(t, err.Pos.Line(), tt.line)
			be.Equal(t, err.Pos.Col(), tt.col)
		})
	}
}

func TestScanStopsAtFirstError(t *testing.T) {
	s := NewScanner("", strings.NewReader("a # b"))
	s.Next()
	be.Equal(t, s.Token().Kind, _Name)
	be.Err(t, s.Err(), nil)

	s.Next()
	be.Equal(t, s.Token().Kind, _EOF)
	be.Err(t, s.Err(), "unexpected character")

	s.Next()
	be.Equal(t, s.Token().Kind, _EOF)
}

func TestScanNonASCIIInsideStringAndComment(t *testing.T) {
	lits := scan(t, `"héllo" // ünïcode`+"\n/* ß */ x")
	be.Equal(t, lits, []string{`"héllo"`, "x"})
}

func TestLexErrorString(t *testing.T) {
	err := scanErr(t, "\n  @")
	be.Equal(t, err.Error(), "2:3: unexpected character '@'")
}

func TestLiteralRoundTrip(t *testing.T) {
	srcs := []string{"0", "42", `"a\"b\\c"`, `"tab\t"`, "'x'", `'\n'`, "true", "false"}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			prog, err := ParseFile("", strings.NewReader("program begin print "+src+"; end"))
			be.Err(t, err, nil)
			lit := prog.Body[0].(*PrintStmt).X.(*BasicLit)

			toks, err := Tokenize("", strings.NewReader(lit.String()))
			be.Err(t, err, nil)
			be.Equal(t, len(toks), 1)
			be.Equal(t, toks[0].Kind, _Literal)
			be.Equal(t, toks[0].LitKind, lit.Kind)
			be.Equal(t, toks[0].Lit, src)
		})
	}
}
