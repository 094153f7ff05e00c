package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/serialization/token"
)

type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (Boolean) isValue()   {}

func (b Boolean) Render() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Boolean) Equal(v Value) bool {
	o, ok := v.(Boolean)
	return ok && o == b
}

func (b Boolean) MarshalText() ([]byte, error) {
	return []byte(b.Render()), nil
}

func (b *Boolean) UnmarshalText(d []byte) error {
	v, err := ParseBoolean(string(d))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBoolean accepts exactly "true" and "false"; case matters.
func ParseBoolean(s string) (Boolean, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "":
		return false, ErrEmpty
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidLiteral, s)
}

type Integer int64

func (Integer) Kind() Kind { return KindInteger }
func (Integer) isValue()   {}

// Render always includes the sign so the text cannot be mistaken for an
// UnsignedInteger.
func (i Integer) Render() string {
	if i >= 0 {
		return "+" + strconv.FormatInt(int64(i), 10)
	}
	return strconv.FormatInt(int64(i), 10)
}

func (i Integer) Equal(v Value) bool {
	o, ok := v.(Integer)
	return ok && o == i
}

func (i Integer) MarshalText() ([]byte, error) {
	return []byte(i.Render()), nil
}

func (i *Integer) UnmarshalText(d []byte) error {
	v, err := ParseInteger(string(d))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// ParseInteger accepts an optional sign followed by decimal digits.
func ParseInteger(s string) (Integer, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	switch token.ClassifyNumber(s) {
	case token.SignedNumber, token.UnsignedNumber:
	default:
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidLiteral, s)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, numErr(s, err)
	}
	return Integer(i), nil
}

type UnsignedInteger uint64

func (UnsignedInteger) Kind() Kind { return KindUnsignedInteger }
func (UnsignedInteger) isValue()   {}

func (u UnsignedInteger) Render() string {
	return strconv.FormatUint(uint64(u), 10)
}

func (u UnsignedInteger) Equal(v Value) bool {
	o, ok := v.(UnsignedInteger)
	return ok && o == u
}

func (u UnsignedInteger) MarshalText() ([]byte, error) {
	return []byte(u.Render()), nil
}

func (u *UnsignedInteger) UnmarshalText(d []byte) error {
	v, err := ParseUnsignedInteger(string(d))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ParseUnsignedInteger accepts decimal digits only; any sign is rejected.
func ParseUnsignedInteger(s string) (UnsignedInteger, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	if token.ClassifyNumber(s) != token.UnsignedNumber {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidLiteral, s)
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, numErr(s, err)
	}
	return UnsignedInteger(u), nil
}

func numErr(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %s", ErrOverflow, s)
	}
	return fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
}

type Decimal float64

func (Decimal) Kind() Kind { return KindDecimal }
func (Decimal) isValue()   {}

// Render uses the shortest digits which parse back to the same float64, and
// always includes a '.' or an exponent.
func (d Decimal) Render() string {
	f := float64(d)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Equal compares numerically, except that NaN equals NaN.
func (d Decimal) Equal(v Value) bool {
	o, ok := v.(Decimal)
	if !ok {
		return false
	}
	if math.IsNaN(float64(d)) {
		return math.IsNaN(float64(o))
	}
	return o == d
}

func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.Render()), nil
}

func (d *Decimal) UnmarshalText(b []byte) error {
	v, err := ParseDecimal(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDecimal accepts the decimal grammar, including plain integers.
// Magnitudes beyond float64 saturate to infinity instead of failing.
func ParseDecimal(s string) (Decimal, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	if token.ClassifyNumber(s) == token.NotNumber {
		return 0, fmt.Errorf("%w: %q is not a decimal", ErrInvalidLiteral, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
	}
	return Decimal(f), nil
}

type String string

func (String) Kind() Kind { return KindString }
func (String) isValue()   {}

func (s String) Render() string {
	return token.Quote(string(s))
}

func (s String) Equal(v Value) bool {
	o, ok := v.(String)
	return ok && o == s
}

func (s String) MarshalText() ([]byte, error) {
	return []byte(s.Render()), nil
}

func (s *String) UnmarshalText(d []byte) error {
	v, err := ParseString(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseString parses one quoted string.
func ParseString(s string) (String, error) {
	if s == "" {
		return "", ErrEmpty
	}
	v, err := token.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedString, err)
	}
	return String(v), nil
}
