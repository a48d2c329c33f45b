package cdr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tags the two error categories the codec can raise.
type Kind int

const (
	// KindInsufficientSpace covers a write that could not grow the buffer
	// to fit, or a read that would exceed the populated region. The name
	// mirrors the historical "NOT_ENOUGH_MEMORY" wording: it means "input
	// exhausted" just as often as "allocation failed".
	KindInsufficientSpace Kind = iota
	// KindBadParameter covers a byte value that violated a contract: a
	// boolean outside {0, 1}, a PL bit set under plain CDR, or an
	// unexpected encapsulation header byte.
	KindBadParameter
)

func (k Kind) String() string {
	switch k {
	case KindInsufficientSpace:
		return "insufficient-space"
	case KindBadParameter:
		return "bad-parameter"
	default:
		return "unknown"
	}
}

// Error is the error type every Codec operation returns. It carries a Kind
// so callers can branch on failure category (As/Is both work) plus a
// pkg/errors stack trace captured at the point of failure.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, cdr.ErrInsufficientSpace) style checks against
// the sentinel values below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// Sentinel values for errors.Is comparisons; Kind is all that is compared.
var (
	ErrInsufficientSpace = &Error{Kind: KindInsufficientSpace}
	ErrBadParameter      = &Error{Kind: KindBadParameter}
)

func newInsufficientSpace(format string, args ...any) error {
	return &Error{
		Kind: KindInsufficientSpace,
		msg:  fmt.Sprintf(format, args...),
		err:  errors.Errorf(format, args...),
	}
}

func newBadParameter(format string, args ...any) error {
	return &Error{
		Kind: KindBadParameter,
		msg:  fmt.Sprintf(format, args...),
		err:  errors.Errorf(format, args...),
	}
}
