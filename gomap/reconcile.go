package gomap

import (
	"math"

	"github.com/signadot/serialization/value"
)

// Reconcile returns got with kinds lost in a JSON or YAML round trip
// restored from hint, which is typically the document before it was
// converted. Parts of got with no counterpart in hint, or which cannot
// take the hinted kind, are returned unchanged. got is not modified.
func Reconcile(hint, got value.Object) value.Object {
	switch h := hint.Value().(type) {
	case value.UnsignedInteger:
		if i, err := got.AsInteger(); err == nil && i >= 0 {
			return value.FromUint(uint64(i))
		}
	case value.Integer:
		if u, err := got.AsUnsignedInteger(); err == nil && u <= math.MaxInt64 {
			return value.FromInt(int64(u))
		}
	case value.Decimal:
		if f, ok := asFloat(got); ok {
			return value.FromFloat(f)
		}
	case value.IPAddress:
		if s, err := got.AsString(); err == nil {
			if ip, err := value.ParseIPAddress(string(s)); err == nil {
				return value.New(ip)
			}
		}
	case value.IntegerVector:
		if xs, ok := asInts(got); ok {
			return value.FromInts(xs...)
		}
	case value.UnsignedIntegerVector:
		if xs, ok := asUints(got); ok {
			return value.FromUints(xs...)
		}
	case *value.Vector:
		gv, err := got.AsVector()
		if err != nil {
			break
		}
		res := value.NewVector()
		for i, e := range gv.All() {
			if i < h.Len() {
				e = Reconcile(h.At(i), e)
			}
			res.Append(e)
		}
		return value.New(res)
	case *value.Collection:
		gc, err := got.AsCollection()
		if err != nil {
			break
		}
		res := value.NewCollection()
		for k, e := range gc.All() {
			if he, ok := h.Get(k); ok {
				e = Reconcile(he, e)
			}
			res.Set(k, e)
		}
		return value.New(res)
	}
	return got.Clone()
}

func asFloat(o value.Object) (float64, bool) {
	switch x := o.Value().(type) {
	case value.Integer:
		return float64(x), true
	case value.UnsignedInteger:
		return float64(x), true
	case value.Decimal:
		return float64(x), true
	}
	return 0, false
}

func asInts(o value.Object) ([]int64, bool) {
	v, err := o.AsVector()
	if err != nil {
		return nil, false
	}
	res := make([]int64, 0, v.Len())
	for _, e := range v.All() {
		switch x := e.Value().(type) {
		case value.Integer:
			res = append(res, int64(x))
		case value.UnsignedInteger:
			if x > math.MaxInt64 {
				return nil, false
			}
			res = append(res, int64(x))
		default:
			return nil, false
		}
	}
	return res, true
}

func asUints(o value.Object) ([]uint64, bool) {
	v, err := o.AsVector()
	if err != nil {
		return nil, false
	}
	res := make([]uint64, 0, v.Len())
	for _, e := range v.All() {
		switch x := e.Value().(type) {
		case value.Integer:
			if x < 0 {
				return nil, false
			}
			res = append(res, uint64(x))
		case value.UnsignedInteger:
			res = append(res, uint64(x))
		default:
			return nil, false
		}
	}
	return res, true
}
