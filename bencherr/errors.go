// Package bencherr creates and classifies the errors surfaced by the
// benchmark harness.  Every failure belongs to one Kind so that callers
// (the CLI, tests) can tell a bad argument from a broken sort variant
// without matching on message text.
package bencherr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// A Kind represents a class of error.  No kind is transient: nothing in
// the harness is ever retried.
type Kind int

const (
	Other Kind = iota
	// Invalid is a caller-class error such as a negative size or a
	// non-positive iteration count.  It is reported before any timing.
	Invalid
	// ContractViolation means a sort variant returned an array that is
	// not non-decreasing.
	ContractViolation
	// GenerationFailure means a mapper could not produce the requested
	// number of distinct, monotonic values.
	GenerationFailure
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case Invalid:
		return "invalid argument"
	case ContractViolation:
		return "algorithm contract violation"
	case GenerationFailure:
		return "generation failure"
	}
	return "unknown error kind"
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != Other {
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an error from any mix of a Kind, an existing error, and a
// format string with optional arguments (including %w).  The format
// string, if present, must come last.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("no args to bencherr.E")
	}
	e := &Error{}
	for i, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.Err = arg
		case string:
			e.Err = fmt.Errorf(arg, args[i+1:]...)
			return e
		default:
			_, file, line, _ := runtime.Caller(1)
			return fmt.Errorf("unknown type %T value %v in bencherr.E call at %v:%v", arg, arg, file, line)
		}
	}
	return e
}

// KindOf returns the Kind of the outermost *Error in err's chain or Other.
func KindOf(err error) Kind {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return Other
		}
		if e.Kind != Other {
			return e.Kind
		}
		err = e.Err
	}
	return Other
}

func IsInvalid(err error) bool {
	return KindOf(err) == Invalid
}

func IsContractViolation(err error) bool {
	return KindOf(err) == ContractViolation
}

func IsGenerationFailure(err error) bool {
	return KindOf(err) == GenerationFailure
}
