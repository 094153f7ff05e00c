package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrBalance        = errors.New("imbalanced structure")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrUnicodeControl = errors.New("unicode control")
	ErrNotQuoted      = errors.New("not quoted")
	ErrTrailing       = errors.New("trailing characters")
)

// ErrImbalancedStructure reports a closing bracket without a matching
// opener, a mismatched closer, or an opener that is never closed.
type ErrImbalancedStructure struct {
	Open, Close byte
	Offset      int
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrBalance
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == 0 {
		return fmt.Sprintf("%s: unexpected %q at offset %d", ErrBalance, i.Close, i.Offset)
	}
	if i.Close == 0 {
		return fmt.Sprintf("%s: unmatched %q at offset %d", ErrBalance, i.Open, i.Offset)
	}
	return fmt.Sprintf("%s: %q closed by %q at offset %d", ErrBalance, i.Open, i.Close, i.Offset)
}
