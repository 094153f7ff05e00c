package gomap

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/serialization/value"
)

var ErrUnsupported = errors.New("unsupported")

// ToAny converts o to plain Go values: nil, bool, int64, uint64, float64,
// string, netip.Addr, []int64, []uint64, []any and map[string]any.
func ToAny(o value.Object) any {
	switch x := o.Value().(type) {
	case nil:
		return nil
	case value.Boolean:
		return bool(x)
	case value.Integer:
		return int64(x)
	case value.UnsignedInteger:
		return uint64(x)
	case value.Decimal:
		return float64(x)
	case value.String:
		return string(x)
	case value.IPAddress:
		return x.Addr()
	case value.IntegerVector:
		return slices.Clone([]int64(x))
	case value.UnsignedIntegerVector:
		return slices.Clone([]uint64(x))
	case *value.Vector:
		res := make([]any, 0, x.Len())
		for _, e := range x.All() {
			res = append(res, ToAny(e))
		}
		return res
	case *value.Collection:
		res := make(map[string]any, x.Len())
		for k, e := range x.All() {
			res[k] = ToAny(e)
		}
		return res
	default:
		panic("kind")
	}
}

// FromAny is the inverse of ToAny. It also accepts the other Go integer and
// float types, json.Number, yaml.MapSlice, []value.Object,
// map[string]value.Object, value.Value and value.Object.
func FromAny(v any) (value.Object, error) {
	switch x := v.(type) {
	case nil:
		return value.Object{}, nil
	case value.Object:
		return x.Clone(), nil
	case value.Value:
		return value.New(x).Clone(), nil
	case bool:
		return value.FromBool(x), nil
	case int:
		return value.FromInt(int64(x)), nil
	case int8:
		return value.FromInt(int64(x)), nil
	case int16:
		return value.FromInt(int64(x)), nil
	case int32:
		return value.FromInt(int64(x)), nil
	case int64:
		return value.FromInt(x), nil
	case uint:
		return value.FromUint(uint64(x)), nil
	case uint8:
		return value.FromUint(uint64(x)), nil
	case uint16:
		return value.FromUint(uint64(x)), nil
	case uint32:
		return value.FromUint(uint64(x)), nil
	case uint64:
		return value.FromUint(x), nil
	case float32:
		return value.FromFloat(float64(x)), nil
	case float64:
		return value.FromFloat(x), nil
	case string:
		return value.FromString(x), nil
	case json.Number:
		return fromNumber(string(x))
	case netip.Addr:
		o := value.FromAddr(x)
		if o.IsEmpty() {
			return o, fmt.Errorf("%w: %v", value.ErrInvalidAddress, x)
		}
		return o, nil
	case []int64:
		return value.FromInts(x...), nil
	case []uint64:
		return value.FromUints(x...), nil
	case []value.Object:
		return value.FromSlice(x), nil
	case []any:
		vec := value.NewVector()
		for i, e := range x {
			o, err := FromAny(e)
			if err != nil {
				return value.Object{}, &value.ElementError{Index: i, Err: err}
			}
			vec.Append(o)
		}
		return value.New(vec), nil
	case map[string]value.Object:
		return value.FromMap(x), nil
	case map[string]any:
		m := make(map[string]value.Object, len(x))
		for k, e := range x {
			o, err := FromAny(e)
			if err != nil {
				return value.Object{}, &value.ElementError{Key: k, Keyed: true, Err: err}
			}
			m[k] = o
		}
		return value.FromMap(m), nil
	case yaml.MapSlice:
		c := value.NewCollection()
		for i, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				return value.Object{}, &value.ElementError{Index: i, Err: fmt.Errorf("%w: key of type %T", ErrUnsupported, item.Key)}
			}
			o, err := FromAny(item.Value)
			if err != nil {
				return value.Object{}, &value.ElementError{Index: i, Key: k, Keyed: true, Err: err}
			}
			c.Set(k, o)
		}
		return value.New(c), nil
	default:
		return value.Object{}, fmt.Errorf("%w: type %T", ErrUnsupported, v)
	}
}

// fromNumber gives integers that fit in int64 the Integer kind, larger
// ones UnsignedInteger and everything else Decimal.
func fromNumber(s string) (value.Object, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return value.FromInt(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return value.FromUint(u), nil
		}
	}
	d, err := value.ParseDecimal(s)
	if err != nil {
		return value.Object{}, err
	}
	return value.New(d), nil
}
