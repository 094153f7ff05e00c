package gomap

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/serialization/value"
)

// MarshalYAML encodes o as a YAML document, keeping collection order.
func MarshalYAML(o value.Object) ([]byte, error) {
	return yaml.Marshal(toYAML(o))
}

func toYAML(o value.Object) any {
	switch x := o.Value().(type) {
	case value.IPAddress:
		return x.Render()
	case *value.Vector:
		res := make([]any, 0, x.Len())
		for _, e := range x.All() {
			res = append(res, toYAML(e))
		}
		return res
	case *value.Collection:
		res := make(yaml.MapSlice, 0, x.Len())
		for k, e := range x.All() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(e)})
		}
		return res
	default:
		return ToAny(o)
	}
}

// UnmarshalYAML decodes one YAML document with the same number rules as
// UnmarshalJSON. Mapping order is kept and mapping keys must be strings.
func UnmarshalYAML(d []byte) (value.Object, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return value.Object{}, fmt.Errorf("%w: %w", value.ErrInvalidLiteral, err)
	}
	return FromAny(normalizeYAML(v))
}

func normalizeYAML(v any) any {
	switch x := v.(type) {
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x)
		}
	case int:
		return int64(x)
	case uint:
		return normalizeYAML(uint64(x))
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
	case yaml.MapSlice:
		for i := range x {
			x[i].Value = normalizeYAML(x[i].Value)
		}
	}
	return v
}
