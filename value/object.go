package value

import (
	"fmt"
	"strings"

	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/token"
)

// Object holds at most one Value. The zero Object is empty.
type Object struct {
	v Value
}

// New wraps v. Containers passed to New are not copied; the Object takes
// them over.
func New(v Value) Object {
	return Object{v: v}
}

func (o Object) Kind() Kind {
	if o.v == nil {
		return KindEmpty
	}
	return o.v.Kind()
}

func (o Object) Value() Value {
	return o.v
}

func (o Object) IsEmpty() bool {
	return o.v == nil
}

func (o Object) Render() string {
	if o.v == nil {
		return "empty"
	}
	return o.v.Render()
}

func (o Object) String() string {
	return o.Render()
}

func (o Object) Equal(other Object) bool {
	if o.v == nil || other.v == nil {
		return o.v == nil && other.v == nil
	}
	return o.v.Equal(other.v)
}

// Clone returns a copy of o sharing no containers with it.
func (o Object) Clone() Object {
	if o.v == nil {
		return o
	}
	return Object{v: cloneValue(o.v)}
}

func (o Object) MarshalText() ([]byte, error) {
	return []byte(o.Render()), nil
}

func (o *Object) UnmarshalText(d []byte) error {
	x, err := ParseAny(string(d))
	if err != nil {
		return err
	}
	*o = x
	return nil
}

func as[T Value](o Object, want Kind) (T, error) {
	x, ok := o.v.(T)
	if !ok {
		var zero T
		return zero, &KindMismatchError{Want: want, Got: o.Kind()}
	}
	return x, nil
}

func (o Object) AsBoolean() (Boolean, error) {
	return as[Boolean](o, KindBoolean)
}

func (o Object) AsInteger() (Integer, error) {
	return as[Integer](o, KindInteger)
}

func (o Object) AsUnsignedInteger() (UnsignedInteger, error) {
	return as[UnsignedInteger](o, KindUnsignedInteger)
}

func (o Object) AsDecimal() (Decimal, error) {
	return as[Decimal](o, KindDecimal)
}

func (o Object) AsString() (String, error) {
	return as[String](o, KindString)
}

func (o Object) AsIPAddress() (IPAddress, error) {
	return as[IPAddress](o, KindIPAddress)
}

func (o Object) AsIntegerVector() (IntegerVector, error) {
	return as[IntegerVector](o, KindIntegerVector)
}

func (o Object) AsUnsignedIntegerVector() (UnsignedIntegerVector, error) {
	return as[UnsignedIntegerVector](o, KindUnsignedIntegerVector)
}

// AsVector returns the stored vector itself, not a copy.
func (o Object) AsVector() (*Vector, error) {
	return as[*Vector](o, KindVector)
}

// AsCollection returns the stored collection itself, not a copy.
func (o Object) AsCollection() (*Collection, error) {
	return as[*Collection](o, KindCollection)
}

// ParseAny parses text of any kind, choosing the kind from the text itself.
// Leading and trailing whitespace is ignored.
func ParseAny(s string) (Object, error) {
	return parseMember(strings.TrimSpace(s))
}

// parseMember picks a kind for s by the dispatch order documented on the
// package. s must already be trimmed.
func parseMember(s string) (Object, error) {
	if s == "" {
		return Object{}, ErrEmpty
	}
	o, err := sniff(s)
	if debug.Parse() {
		debug.Logf("parse %q: %s %v", s, o.Kind(), err)
	}
	return o, err
}

func sniff(s string) (Object, error) {
	var (
		v   Value
		err error
	)
	switch s[0] {
	case '{':
		v, err = ParseCollection(s)
	case '[':
		v, err = ParseVector(s)
	case '(':
		v, err = ParseIntegerVector(s)
	case '<':
		v, err = ParseUnsignedIntegerVector(s)
	case '"':
		v, err = ParseString(s)
	default:
		return sniffWord(s)
	}
	if err != nil {
		return Object{}, err
	}
	return Object{v: v}, nil
}

func sniffWord(s string) (Object, error) {
	var (
		v   Value
		err error
	)
	switch token.ClassifyNumber(s) {
	case token.SignedNumber:
		v, err = ParseInteger(s)
	case token.UnsignedNumber:
		v, err = ParseUnsignedInteger(s)
	case token.DecimalNumber:
		v, err = ParseDecimal(s)
	default:
		switch s {
		case "true", "false":
			v, err = ParseBoolean(s)
		case "empty":
			return Object{}, nil
		default:
			if !addrLike(s) {
				return Object{}, fmt.Errorf("%w: %q", ErrUnrecognizedElement, s)
			}
			if v, err = ParseIPAddress(s); err != nil {
				return Object{}, fmt.Errorf("%w: %w", ErrUnrecognizedElement, err)
			}
		}
	}
	if err != nil {
		return Object{}, err
	}
	return Object{v: v}, nil
}

// addrLike reports whether s is made of the characters of an address and
// contains at least one '.' or ':'.
func addrLike(s string) bool {
	sep := false
	for i := range len(s) {
		c := s[i]
		switch {
		case c == '.' || c == ':':
			sep = true
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F', c == '%':
		default:
			return false
		}
	}
	return sep
}
