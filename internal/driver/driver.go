// Package driver composes the SPLAT pipeline: lexing, parsing, semantic
// analysis and execution, in that order. The first phase to fail stops
// the pipeline with an *Error naming that phase.
package driver

import (
	"io"
	"time"

	"github.com/you-not-fish/splat/internal/interp"
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types2"
)

// Config controls a pipeline run.
type Config struct {
	// Filename is used in error positions. It may be empty.
	Filename string

	// Stdout receives program output. If nil, os.Stdout is used.
	Stdout io.Writer

	// PrintLineValue lets print_line take an optional expression.
	PrintLineValue bool

	// Trace, if set, receives one timing line per phase.
	Trace io.Writer
}

// Result holds the products of the front-end phases.
type Result struct {
	Tokens  []syntax.Token
	Program *syntax.Program
	Info    *types2.Info
}

// pass is one pipeline stage.
type pass struct {
	phase Phase
	fn    func(r *Result) error
}

// Run lexes, parses, analyzes and executes the program read from src.
func Run(src io.Reader, conf *Config) error {
	if conf == nil {
		conf = &Config{}
	}
	r := &Result{}
	return conf.run(r, append(conf.frontEnd(src), pass{PhaseExecution, conf.execute}))
}

// Check runs the front-end phases only and returns their products. On
// failure the Result holds whatever the successful phases produced.
func Check(src io.Reader, conf *Config) (*Result, error) {
	if conf == nil {
		conf = &Config{}
	}
	r := &Result{}
	err := conf.run(r, conf.frontEnd(src))
	return r, err
}

// run executes passes in order and stops at the first failure.
func (c *Config) run(r *Result, passes []pass) error {
	for _, p := range passes {
		start := time.Now()
		err := p.fn(r)
		c.trace(p.phase, time.Since(start), err)
		if err != nil {
			return wrap(p.phase, err)
		}
	}
	return nil
}

func (c *Config) frontEnd(src io.Reader) []pass {
	return []pass{
		{PhaseLex, func(r *Result) error {
			toks, err := syntax.Tokenize(c.Filename, src)
			r.Tokens = toks
			return err
		}},
		{PhaseParse, c.parse},
		{PhaseSemantic, c.analyze},
	}
}

func (c *Config) parse(r *Result) error {
	p := syntax.NewParser(r.Tokens)
	p.SetPrintLineValue(c.PrintLineValue)
	prog, err := p.Parse()
	r.Program = prog
	return err
}

func (c *Config) analyze(r *Result) error {
	info := &types2.Info{}
	if _, err := types2.Check(r.Program, nil, info); err != nil {
		return err
	}
	r.Info = info
	return nil
}

func (c *Config) execute(r *Result) error {
	in, err := interp.New(r.Program, &interp.Config{Stdout: c.Stdout, Info: r.Info})
	if err != nil {
		return err
	}
	return in.Run()
}
