package value

import (
	"errors"
	"fmt"

	"github.com/signadot/serialization/token"
)

var (
	ErrEmpty               = errors.New("empty")
	ErrInvalidLiteral      = errors.New("invalid literal")
	ErrOverflow            = errors.New("overflow")
	ErrMalformedString     = errors.New("malformed string")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrElement             = errors.New("element error")
	ErrUnrecognizedElement = errors.New("unrecognized element")
	ErrMalformedEntry      = errors.New("malformed entry")
	ErrKindMismatch        = errors.New("kind mismatch")
	ErrNoSuchPath          = errors.New("no such path")
)

// ElementError locates a failure inside a container. Index is the position
// of the failing member; Key is set as well for a Collection entry whose key
// was parsed.
type ElementError struct {
	Index int
	Key   string
	Keyed bool
	Err   error
}

func (e *ElementError) Error() string {
	if e.Keyed {
		return fmt.Sprintf("%s at key %s: %v", ErrElement, token.Quote(e.Key), e.Err)
	}
	return fmt.Sprintf("%s at index %d: %v", ErrElement, e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

func (e *ElementError) Is(target error) bool {
	return target == ErrElement
}

// KindMismatchError is returned by the typed accessors of Object.
type KindMismatchError struct {
	Want, Got Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrKindMismatch, e.Want, e.Got)
}

func (e *KindMismatchError) Is(target error) bool {
	return target == ErrKindMismatch
}

func memberErr(err error) error {
	if errors.Is(err, token.ErrBalance) {
		return fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
	}
	return fmt.Errorf("%w: %w", ErrMalformedString, err)
}
