package gomap

import (
	"encoding/json"

	"github.com/signadot/serialization/value"
)

// Load parses d as text and stores the result in p the way encoding/json
// would store the equivalent JSON.
func Load(d []byte, p any) error {
	o, err := value.ParseAny(string(d))
	if err != nil {
		return err
	}
	return Into(o, p)
}

// Into stores o in p through its JSON form.
func Into(o value.Object, p any) error {
	d, err := MarshalJSON(o)
	if err != nil {
		return err
	}
	return json.Unmarshal(d, p)
}

// Dump converts any JSON-marshalable Go value to an object. Struct field
// order is kept.
func Dump(v any) (value.Object, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return value.Object{}, err
	}
	return UnmarshalJSON(d)
}
