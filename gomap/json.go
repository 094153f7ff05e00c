package gomap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/serialization/value"
)

// MarshalJSON encodes o as compact JSON, keeping collection order.
// Integer vectors become arrays and addresses become strings. NaN and
// infinite decimals cannot be encoded.
func MarshalJSON(o value.Object) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, o value.Object) error {
	switch x := o.Value().(type) {
	case nil:
		buf.WriteString("null")
	case value.Boolean:
		buf.WriteString(x.Render())
	case value.Integer:
		buf.WriteString(strconv.FormatInt(int64(x), 10))
	case value.UnsignedInteger:
		buf.WriteString(x.Render())
	case value.Decimal:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s in json", ErrUnsupported, x.Render())
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case value.String:
		writeJSONString(buf, string(x))
	case value.IPAddress:
		writeJSONString(buf, x.Render())
	case value.IntegerVector:
		buf.WriteByte('[')
		for i, n := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatInt(n, 10))
		}
		buf.WriteByte(']')
	case value.UnsignedIntegerVector:
		buf.WriteByte('[')
		for i, n := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatUint(n, 10))
		}
		buf.WriteByte(']')
	case *value.Vector:
		buf.WriteByte('[')
		for i, e := range x.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return &value.ElementError{Index: i, Err: err}
			}
		}
		buf.WriteByte(']')
	case *value.Collection:
		buf.WriteByte('{')
		i := 0
		for k, e := range x.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := writeJSON(buf, e); err != nil {
				return &value.ElementError{Index: i, Key: k, Keyed: true, Err: err}
			}
			i++
		}
		buf.WriteByte('}')
	default:
		panic("kind")
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}

// UnmarshalJSON decodes one JSON document. Object member order is kept.
// Integers which fit in int64 become Integer, larger ones UnsignedInteger,
// all other numbers Decimal and null the empty object.
func UnmarshalJSON(d []byte) (value.Object, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	o, err := decodeJSON(dec)
	if err != nil {
		return value.Object{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return value.Object{}, fmt.Errorf("%w: trailing data after json value", value.ErrInvalidLiteral)
	}
	return o, nil
}

func decodeJSON(dec *json.Decoder) (value.Object, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Object{}, err
	}
	switch x := tok.(type) {
	case nil:
		return value.Object{}, nil
	case bool:
		return value.FromBool(x), nil
	case string:
		return value.FromString(x), nil
	case json.Number:
		return fromNumber(x.String())
	case json.Delim:
		switch x {
		case '[':
			vec := value.NewVector()
			for i := 0; dec.More(); i++ {
				o, err := decodeJSON(dec)
				if err != nil {
					return value.Object{}, &value.ElementError{Index: i, Err: err}
				}
				vec.Append(o)
			}
			if _, err := dec.Token(); err != nil {
				return value.Object{}, err
			}
			return value.New(vec), nil
		case '{':
			c := value.NewCollection()
			for i := 0; dec.More(); i++ {
				kt, err := dec.Token()
				if err != nil {
					return value.Object{}, err
				}
				k := kt.(string)
				o, err := decodeJSON(dec)
				if err != nil {
					return value.Object{}, &value.ElementError{Index: i, Key: k, Keyed: true, Err: err}
				}
				c.Set(k, o)
			}
			if _, err := dec.Token(); err != nil {
				return value.Object{}, err
			}
			return value.New(c), nil
		}
	}
	return value.Object{}, fmt.Errorf("%w: unexpected json token %v", value.ErrInvalidLiteral, tok)
}
