package driver

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/splat/internal/interp"
	"github.com/you-not-fish/splat/internal/syntax"
	"github.com/you-not-fish/splat/internal/types2"
)

// Phase identifies a pipeline stage.
type Phase int

const (
	PhaseLex Phase = iota
	PhaseParse
	PhaseSemantic
	PhaseExecution
)

var phaseNames = [...]string{
	PhaseLex:       "lex",
	PhaseParse:     "parse",
	PhaseSemantic:  "semantic",
	PhaseExecution: "execution",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ParsePhase returns the phase with the given name.
func ParsePhase(name string) (Phase, bool) {
	for p, n := range phaseNames {
		if n == name {
			return Phase(p), true
		}
	}
	return 0, false
}

// Error is a pipeline failure: the phase that failed and the position and
// message of its first error. Err is the phase's own error value
// (*syntax.LexError, *syntax.SyntaxError, *types2.SemanticError or
// *interp.ExecutionError).
type Error struct {
	Phase Phase
	Pos   syntax.Pos
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return fmt.Sprintf("%s error: %s", e.Phase, e.Msg)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Pos, e.Phase, e.Msg)
}

// Unwrap returns the phase's own error.
func (e *Error) Unwrap() error {
	return e.Err
}

// PhaseOf reports the phase at which err failed, if err is an *Error.
func PhaseOf(err error) (Phase, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Phase, true
	}
	return 0, false
}

// wrap classifies a phase error.
func wrap(phase Phase, err error) *Error {
	e := &Error{Phase: phase, Msg: err.Error(), Err: err}

	var (
		lexErr  *syntax.LexError
		synErr  *syntax.SyntaxError
		semErr  *types2.SemanticError
		execErr *interp.ExecutionError
	)
	switch {
	case errors.As(err, &lexErr):
		e.Pos, e.Msg = lexErr.Pos, lexErr.Msg
	case errors.As(err, &synErr):
		e.Pos, e.Msg = synErr.Pos, synErr.Msg
	case errors.As(err, &semErr):
		e.Pos, e.Msg = semErr.Pos, semErr.Msg
	case errors.As(err, &execErr):
		e.Pos, e.Msg = execErr.Pos, execErr.Msg
	}
	return e
}
