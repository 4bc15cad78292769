package regex

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedQuantifier = errors.New("unexpected quantifier")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnmatchedGroup       = errors.New("unmatched group")
	ErrUnterminatedClass    = errors.New("unterminated character class")

	// ErrUnsupported marks constructs the engine recognizes but does not
	// implement. It is never wrapped together with the parse sentinels.
	ErrUnsupported = errors.New("not implemented")
)

// Error describes why a pattern could not be compiled.
type Error struct {
	Code   error  // one of the Err* sentinels
	Pos    int    // byte offset in Expr
	Detail string // offending pattern text, if any
	Expr   string // set by Compile
}

func (e *Error) Error() string {
	msg := "regex: " + e.Code.Error()
	if e.Detail != "" {
		msg += fmt.Sprintf(" %q", e.Detail)
	}
	msg += fmt.Sprintf(" at position %d", e.Pos)
	if e.Expr != "" {
		msg += fmt.Sprintf(" in %q", e.Expr)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Code }

// IsUnsupported reports whether err was caused by a construct the engine
// does not implement, as opposed to a malformed pattern.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}
