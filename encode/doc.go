// Package encode writes objects as text, JSON or YAML.
//
// # Usage
//
//	obj := value.FromMap(map[string]value.Object{
//	    "name": value.FromString("alice"),
//	    "age":  value.FromUint(30),
//	})
//	err := encode.Encode(obj, os.Stdout)
//
//	// single line, as value.Object.Render would give
//	err = encode.Encode(obj, w, encode.EncodeWire(true))
//
//	// JSON
//	err = encode.Encode(obj, w, encode.EncodeFormat(format.JSONFormat))
//
// Text output without colours always parses back with value.ParseAny to an
// equal object. Containers whose single line rendering is at least the
// configured width are written one member per line.
package encode
