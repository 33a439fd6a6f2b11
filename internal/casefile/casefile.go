// Package casefile extracts SPLAT test cases from Markdown documents.
//
// A test case starts at a heading "Test: <name>" and holds fenced code
// blocks identified by their info string:
//
//	splat    the program (required)
//	output   the expected standard output
//	error    the failing phase on the first line and, optionally, a
//	         substring of the error message on the second
//	options  pipeline options, one per line (print-line-value)
//
// Every case needs exactly one of output and error. A single trailing
// newline of each fence body is dropped, so an output fence ending in a
// blank line expects output that ends in a newline.
package casefile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/you-not-fish/splat/internal/driver"
)

// Fence languages.
const (
	FenceProgram = "splat"
	FenceOutput  = "output"
	FenceError   = "error"
	FenceOptions = "options"
)

// OptionPrintLineValue lets print_line take an expression.
const OptionPrintLineValue = "print-line-value"

// Expected describes a failing run.
type Expected struct {
	Phase driver.Phase
	Msg   string // substring of the error message; may be empty
}

// Case is one test case.
type Case struct {
	Name    string
	Line    int // line of the heading
	Program string
	Output  string
	Error   *Expected // nil when the program must succeed
	Options []string

	hasOutput bool
}

// Config returns the pipeline configuration the case asks for.
func (c *Case) Config() *driver.Config {
	conf := &driver.Config{Filename: c.Name}
	for _, opt := range c.Options {
		if opt == OptionPrintLineValue {
			conf.PrintLineValue = true
		}
	}
	return conf
}

// ParseFile reads and parses a Markdown file of test cases.
func ParseFile(filename string) ([]Case, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cases, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cases, nil
}

// Parse extracts the test cases of a Markdown document.
func Parse(src []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var cases []Case
	var cur *Case

	finish := func() error {
		if cur == nil {
			return nil
		}
		if err := cur.validate(); err != nil {
			return err
		}
		cases = append(cases, *cur)
		return nil
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Heading:
			title := nodeText(n, src)
			if !strings.HasPrefix(title, "Test: ") {
				return ast.WalkContinue, nil
			}
			if err := finish(); err != nil {
				return ast.WalkStop, err
			}
			cur = &Case{
				Name: strings.TrimSpace(strings.TrimPrefix(title, "Test: ")),
				Line: lineOf(n, src),
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lang := string(n.Language(src))
			line := lineOf(n, src)
			if cur == nil {
				if lang != "" {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test case", line, lang)
				}
				return ast.WalkContinue, nil
			}
			if err := cur.addFence(lang, fenceBody(n, src)); err != nil {
				return ast.WalkStop, fmt.Errorf("line %d: %w", line, err)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return cases, nil
}

func (c *Case) addFence(lang, body string) error {
	switch lang {
	case FenceProgram:
		if c.Program != "" {
			return fmt.Errorf("multiple splat fences in test %q", c.Name)
		}
		c.Program = body

	case FenceOutput:
		if c.hasOutput {
			return fmt.Errorf("multiple output fences in test %q", c.Name)
		}
		c.Output, c.hasOutput = body, true

	case FenceError:
		if c.Error != nil {
			return fmt.Errorf("multiple error fences in test %q", c.Name)
		}
		name, msg, _ := strings.Cut(body, "\n")
		phase, ok := driver.ParsePhase(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("unknown phase %q in test %q", name, c.Name)
		}
		c.Error = &Expected{Phase: phase, Msg: strings.TrimSpace(msg)}

	case FenceOptions:
		for _, opt := range strings.Fields(body) {
			if opt != OptionPrintLineValue {
				return fmt.Errorf("unknown option %q in test %q", opt, c.Name)
			}
			c.Options = append(c.Options, opt)
		}

	case "":
		// Unlabeled fences are commentary.

	default:
		return fmt.Errorf("unknown fence language %q in test %q", lang, c.Name)
	}
	return nil
}

func (c *Case) validate() error {
	if c.Program == "" {
		return fmt.Errorf("test %q has no splat fence", c.Name)
	}
	if c.hasOutput == (c.Error != nil) {
		return fmt.Errorf("test %q needs exactly one of an output or an error fence", c.Name)
	}
	return nil
}

// nodeText returns the plain text of a node.
func nodeText(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// fenceBody returns the content of a fenced code block without its final
// newline.
func fenceBody(n *ast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// lineOf returns the 1-based source line on which node's content starts.
func lineOf(node ast.Node, src []byte) int {
	start := -1
	if node.Lines().Len() > 0 {
		start = node.Lines().At(0).Start
	}
	if start < 0 {
		return 1
	}
	return bytes.Count(src[:start], []byte("\n")) + 1
}
