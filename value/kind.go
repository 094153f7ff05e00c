package value

import "fmt"

type Kind int

const (
	KindEmpty Kind = iota
	KindBoolean
	KindInteger
	KindUnsignedInteger
	KindDecimal
	KindString
	KindIPAddress
	KindIntegerVector
	KindUnsignedIntegerVector
	KindVector
	KindCollection
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindEmpty:                 "Empty",
		KindBoolean:               "Boolean",
		KindInteger:               "Integer",
		KindUnsignedInteger:       "UnsignedInteger",
		KindDecimal:               "Decimal",
		KindString:                "String",
		KindIPAddress:             "IpAddress",
		KindIntegerVector:         "IntegerVector",
		KindUnsignedIntegerVector: "UnsignedIntegerVector",
		KindVector:                "Vector",
		KindCollection:            "Collection",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Empty":                 KindEmpty,
		"Boolean":               KindBoolean,
		"Integer":               KindInteger,
		"UnsignedInteger":       KindUnsignedInteger,
		"Decimal":               KindDecimal,
		"String":                KindString,
		"IpAddress":             KindIPAddress,
		"IntegerVector":         KindIntegerVector,
		"UnsignedIntegerVector": KindUnsignedIntegerVector,
		"Vector":                KindVector,
		"Collection":            KindCollection,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindEmpty,
		KindBoolean,
		KindInteger,
		KindUnsignedInteger,
		KindDecimal,
		KindString,
		KindIPAddress,
		KindIntegerVector,
		KindUnsignedIntegerVector,
		KindVector,
		KindCollection,
	}
}

// IsScalar reports whether values of kind k have no members.
func (k Kind) IsScalar() bool {
	switch k {
	case KindIntegerVector, KindUnsignedIntegerVector, KindVector, KindCollection:
		return false
	default:
		return true
	}
}
