// Package main implements the SPLAT interpreter entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/you-not-fish/splat/internal/driver"
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types2"
)

// Interpreter flags
var (
	emitTokens     = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST        = flag.Bool("emit-ast", false, "Output AST")
	astFormat      = flag.String("ast-format", "text", "AST output format (text or json)")
	emitTypedAST   = flag.Bool("emit-typed-ast", false, "Output typed AST")
	check          = flag.Bool("check", false, "Stop after semantic analysis")
	printLineValue = flag.Bool("print-line-value", false, "Allow print_line to take an expression")
	trace          = flag.Bool("trace", false, "Output timing trace")
	version        = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "SPLAT Interpreter %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: splat [options] <file.splat>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("splat version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: splat [options] <file.splat>")
		os.Exit(1)
	}

	filename := args[0]

	switch {
	case *emitTokens:
		os.Exit(runEmitTokens(filename))
	case *emitAST:
		os.Exit(runEmitAST(filename))
	case *emitTypedAST:
		os.Exit(runEmitTypedAST(filename))
	case *check:
		os.Exit(runCheck(filename))
	}
	os.Exit(runProgram(filename))
}

// config returns the pipeline configuration selected by the flags.
func config(filename string) *driver.Config {
	conf := &driver.Config{
		Filename:       filename,
		Stdout:         os.Stdout,
		PrintLineValue: *printLineValue,
	}
	if *trace {
		conf.Trace = os.Stderr
	}
	return conf
}

// runProgram runs the whole pipeline on the input file.
func runProgram(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := driver.Run(f, config(filename)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runCheck lexes, parses and analyzes the input file without running it.
func runCheck(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	if _, err := driver.Check(f, config(filename)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	s := syntax.NewScanner(filename, f)

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		if s.Err() != nil {
			break
		}
		tok := s.Token()

		kind := tok.Kind.String()
		if tok.Kind.IsLiteral() {
			kind = tok.LitKind.String()
		}
		fmt.Printf("%-20s %-12s %s\n", tok.Pos, kind, formatLiteral(tok.Lit))

		if tok.Kind.IsEOF() {
			break
		}
	}

	if err := s.Err(); err != nil {
		fmt.Println()
		fmt.Println("Errors:")
		fmt.Printf("  %s\n", err)
		return 1
	}
	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	toks, err := syntax.Tokenize(filename, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	p := syntax.NewParser(toks)
	p.SetPrintLineValue(*printLineValue)
	prog, err := p.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Output AST
	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, prog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, prog)
	}
	return 0
}

// runEmitTypedAST analyzes the input file and outputs the AST with the
// type of every expression.
func runEmitTypedAST(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	conf := config(filename)
	conf.Trace = nil
	r, err := driver.Check(f, conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	syntax.FprintWith(os.Stdout, r.Program, func(x syntax.Expr) string {
		return typedExprString(r.Info, x)
	})
	return 0
}

// typedExprString describes the type of x: its type, its constant value
// if folded, or void for a call without a result.
func typedExprString(info *types2.Info, x syntax.Expr) string {
	tv, ok := info.Types[x]
	switch {
	case !ok:
		return ""
	case tv.IsVoid():
		return "void"
	case tv.IsConstant():
		return fmt.Sprintf("%s = %s", tv.Type, tv.Value.ExactString())
	}
	return tv.Type.String()
}
