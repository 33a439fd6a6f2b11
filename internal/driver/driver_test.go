package driver

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/splat/internal/interp"
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types2"
)

func runSource(t *testing.T, src string, conf *Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	conf.Stdout = &out
	err := Run(strings.NewReader(src), conf)
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := runSource(t, `
program demo
	count: Integer;
	incr(n: Integer): Integer is
	begin
		return n + 1;
	end incr;
	bump() is
	begin
		count := (count + 1);
	end bump;
begin
	bump();
	print incr(5);
	print_line;
	print count;
end;`, &Config{})
	be.Err(t, err, nil)
	be.Equal(t, out, "6\n1")
}

func TestPrintLineValue(t *testing.T) {
	src := `program begin print_line true; print "x"; end;`

	out, err := runSource(t, src, &Config{PrintLineValue: true})
	be.Err(t, err, nil)
	be.Equal(t, out, "true\nx")

	_, err = runSource(t, src, &Config{})
	phase, ok := PhaseOf(err)
	be.True(t, ok)
	be.Equal(t, phase, PhaseParse)
	be.Err(t, err, "print_line does not take an argument")
}

func TestErrorPhases(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		phase Phase
		msg   string
		out   string // output before the failure
	}{
		{"lex", "program begin print 1 # 2; end;", PhaseLex, "unexpected character '#'", ""},
		{"unterminated_comment", "program /* begin end;", PhaseLex, "unterminated comment", ""},
		{"parse", "program x: Integer; begin x := 1 + 2; end;", PhaseParse, "arithmetic expressions must be enclosed in parentheses", ""},
		{"parse_eof", "program begin", PhaseParse, "found end of input", ""},
		{"semantic", "program f(): Integer is begin end f; begin end;", PhaseSemantic, "missing return statement", ""},
		{"semantic_return", "program begin return; end;", PhaseSemantic, "return statement outside function", ""},
		{"execution", "program x: Integer; begin print 1; x := (1 / x); print 2; end;", PhaseExecution, "Divide by zero", "1"},
		{"execution_mod", "program x: Integer; begin x := (5 % x); end;", PhaseExecution, "Divide by zero", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSource(t, tt.src, &Config{Filename: "t.splat"})
			var e *Error
			be.True(t, errors.As(err, &e))
			be.Equal(t, e.Phase, tt.phase)
			be.True(t, strings.Contains(e.Msg, tt.msg))
			be.True(t, e.Pos.IsValid())
			be.Equal(t, e.Pos.Filename(), "t.splat")
			be.Equal(t, out, tt.out)
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	_, err := runSource(t, "program begin 'ab'", &Config{})
	var lexErr *syntax.LexError
	be.True(t, errors.As(err, &lexErr))

	_, err = runSource(t, "program begin end; end", &Config{})
	var synErr *syntax.SyntaxError
	be.True(t, errors.As(err, &synErr))
	be.Equal(t, synErr.Lit, "end")

	_, err = runSource(t, "program begin print x; end;", &Config{})
	var semErr *types2.SemanticError
	be.True(t, errors.As(err, &semErr))

	_, err = runSource(t, "program x: Integer; begin print (2 % x); end;", &Config{})
	var execErr *interp.ExecutionError
	be.True(t, errors.As(err, &execErr))
}

func TestErrorString(t *testing.T) {
	_, err := runSource(t, "program\nbegin\n  print y;\nend;", &Config{Filename: "a.splat"})
	be.Equal(t, err.Error(), "a.splat:3:9: semantic error: undefined: y")

	e := &Error{Phase: PhaseExecution, Msg: "boom"}
	be.Equal(t, e.Error(), "execution error: boom")
}

func TestCheck(t *testing.T) {
	r, err := Check(strings.NewReader("program x: Integer; begin x := 1; end;"), nil)
	be.Err(t, err, nil)
	be.Equal(t, len(r.Tokens), 12)
	be.Equal(t, len(r.Program.Decls), 1)
	be.True(t, r.Info != nil)

	r, err = Check(strings.NewReader("program begin x := 1; end;"), nil)
	be.Err(t, err, "undefined: x")
	be.True(t, r.Program != nil)
	be.True(t, r.Info == nil)
}

func TestTrace(t *testing.T) {
	var trace bytes.Buffer
	_, err := runSource(t, "program begin print 1; end;", &Config{Trace: &trace})
	be.Err(t, err, nil)

	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	be.Equal(t, len(lines), 4)
	for i, name := range []string{"lex", "parse", "semantic", "execution"} {
		be.True(t, strings.HasPrefix(lines[i], "phase "+name+": "))
		be.True(t, strings.HasSuffix(lines[i], " ok"))
	}

	trace.Reset()
	_, err = runSource(t, "program begin print x; end;", &Config{Trace: &trace})
	be.Err(t, err)
	lines = strings.Split(strings.TrimSpace(trace.String()), "\n")
	be.Equal(t, len(lines), 3)
	be.True(t, strings.HasSuffix(lines[2], " failed"))
}

func TestPhaseNames(t *testing.T) {
	for _, p := range []Phase{PhaseLex, PhaseParse, PhaseSemantic, PhaseExecution} {
		got, ok := ParsePhase(p.String())
		be.True(t, ok)
		be.Equal(t, got, p)
	}
	_, ok := ParsePhase("link")
	be.True(t, !ok)
	be.Equal(t, Phase(9).String(), "phase(9)")
}
