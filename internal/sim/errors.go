package sim

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrMalformed    = errors.New("malformed field")
	ErrBadOperation = errors.New("unsupported operation")
	ErrIDMismatch   = errors.New("actor id does not match its position")
	ErrNoActors     = errors.New("no actor records")
)

// ParseError locates a malformed record. Record is the 0-based block index,
// Line the 1-based line number in the whole input (0 when unknown).
type ParseError struct {
	Record int
	Line   int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse record %d (line %d) %s: %v", e.Record, e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("parse record %d %s: %v", e.Record, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigValidationError reports a definition or tunable that would make the
// simulation ill-formed. Actor is -1 for errors not tied to one actor.
type ConfigValidationError struct {
	Actor  int
	Field  string
	Reason string
}

func (e *ConfigValidationError) Error() string {
	if e.Actor < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid actor %d %s: %s", e.Actor, e.Field, e.Reason)
}
