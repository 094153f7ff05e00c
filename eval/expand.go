package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/value"
)

// ExpandString replaces each $[expr] or .[expr] in v with the rendering of
// its result; results which are strings are inserted without quotes.
// Inside an expression brackets nest and a backslash escapes the next
// character. An expression with no closing ] is kept as literal text.
func ExpandString(v string, env value.Object) (string, error) {
	var (
		out   strings.Builder
		key   []byte
		start = -1
		depth = 0
	)
	for i := 0; i < len(v); i++ {
		c := v[i]
		if start == -1 {
			if (c == '$' || c == '.') && i+1 < len(v) && v[i+1] == '[' {
				start = i
				key = key[:0]
				depth = 0
				i++
				continue
			}
			out.WriteByte(c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < len(v) {
				i++
				key = append(key, v[i])
			}
		case '[':
			depth++
			key = append(key, c)
		case ']':
			if depth > 0 {
				depth--
				key = append(key, c)
				continue
			}
			s, err := expandOne(strings.TrimSpace(string(key)), env)
			if err != nil {
				return "", err
			}
			out.WriteString(s)
			start = -1
		default:
			key = append(key, c)
		}
	}
	if start != -1 {
		out.WriteString(v[start:])
	}
	return out.String(), nil
}

func expandOne(src string, env value.Object) (string, error) {
	o, err := Eval(src, env)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("expand %q gave %s", src, o)
	}
	if s, err := o.AsString(); err == nil {
		return string(s), nil
	}
	return o.Render(), nil
}

// GetRaw returns the expression of a string which consists of exactly one
// .[expr], or "" if it is not of that form.
func GetRaw(v string) string {
	if !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return v[2 : len(v)-1]
}

// Expand returns a copy of o with every string expanded against env. A
// string which is exactly .[expr] is replaced by the object the
// expression evaluates to.
func Expand(o value.Object, env value.Object) (value.Object, error) {
	switch x := o.Value().(type) {
	case value.String:
		if raw := GetRaw(string(x)); raw != "" {
			return Eval(raw, env)
		}
		s, err := ExpandString(string(x), env)
		if err != nil {
			return value.Object{}, err
		}
		return value.FromString(s), nil
	case *value.Vector:
		res := value.NewVector()
		for i, e := range x.All() {
			ee, err := Expand(e, env)
			if err != nil {
				return value.Object{}, &value.ElementError{Index: i, Err: err}
			}
			res.Append(ee)
		}
		return value.New(res), nil
	case *value.Collection:
		res := value.NewCollection()
		for k, e := range x.All() {
			ee, err := Expand(e, env)
			if err != nil {
				return value.Object{}, &value.ElementError{Key: k, Keyed: true, Err: err}
			}
			res.Set(k, ee)
		}
		return value.New(res), nil
	}
	return o.Clone(), nil
}
