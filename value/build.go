package value

import (
	"net/netip"
	"slices"
)

func FromBool(b bool) Object {
	return Object{v: Boolean(b)}
}

func FromInt(i int64) Object {
	return Object{v: Integer(i)}
}

func FromUint(u uint64) Object {
	return Object{v: UnsignedInteger(u)}
}

func FromFloat(f float64) Object {
	return Object{v: Decimal(f)}
}

func FromString(s string) Object {
	return Object{v: String(s)}
}

// FromAddr returns an empty Object if a is invalid or has a zone.
func FromAddr(a netip.Addr) Object {
	ip, err := AddrFrom(a)
	if err != nil {
		return Object{}
	}
	return Object{v: ip}
}

func FromInts(is ...int64) Object {
	return Object{v: IntegerVector(slices.Clone(is))}
}

func FromUints(us ...uint64) Object {
	return Object{v: UnsignedIntegerVector(slices.Clone(us))}
}

func FromSlice(objs []Object) Object {
	return Object{v: NewVector(objs...)}
}

type KeyVal struct {
	Key string
	Val Object
}

// FromKeyVals builds a collection in the order of kvs.
func FromKeyVals(kvs []KeyVal) Object {
	c := NewCollection()
	for _, kv := range kvs {
		c.Set(kv.Key, kv.Val)
	}
	return Object{v: c}
}

// FromMap builds a collection with its keys sorted.
func FromMap(m map[string]Object) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	c := NewCollection()
	for _, k := range keys {
		c.Set(k, m[k])
	}
	return Object{v: c}
}
