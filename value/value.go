package value

import (
	"fmt"
	"slices"
)

// Value is implemented by exactly the concrete kinds of this package.
type Value interface {
	Kind() Kind
	// Render returns the canonical text of the value. It never fails.
	Render() string
	// Equal reports whether other has the same kind and content.
	Equal(other Value) bool

	isValue()
}

// Parse parses s as a value of kind k.
func Parse(k Kind, s string) (Value, error) {
	switch k {
	case KindBoolean:
		return ParseBoolean(s)
	case KindInteger:
		return ParseInteger(s)
	case KindUnsignedInteger:
		return ParseUnsignedInteger(s)
	case KindDecimal:
		return ParseDecimal(s)
	case KindString:
		return ParseString(s)
	case KindIPAddress:
		return ParseIPAddress(s)
	case KindIntegerVector:
		return ParseIntegerVector(s)
	case KindUnsignedIntegerVector:
		return ParseUnsignedIntegerVector(s)
	case KindVector:
		return ParseVector(s)
	case KindCollection:
		return ParseCollection(s)
	default:
		return nil, fmt.Errorf("cannot parse kind %s", k)
	}
}

func cloneValue(v Value) Value {
	switch x := v.(type) {
	case *Vector:
		return x.Clone()
	case *Collection:
		return x.Clone()
	case IntegerVector:
		return slices.Clone(x)
	case UnsignedIntegerVector:
		return slices.Clone(x)
	default:
		return v
	}
}
