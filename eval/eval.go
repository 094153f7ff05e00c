package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/gomap"
	"github.com/signadot/serialization/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env = map[string]any

var ErrEnv = errors.New("environment must be a collection")

// EnvFrom converts a Collection into expression variables. The empty
// object gives an empty environment.
func EnvFrom(o value.Object) (Env, error) {
	if o.IsEmpty() {
		return Env{}, nil
	}
	c, err := o.AsCollection()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnv, err)
	}
	return gomap.ToAny(value.New(c)).(map[string]any), nil
}

// Eval runs src with the entries of env as variables and converts the
// result to an object.
func Eval(src string, env value.Object) (value.Object, error) {
	res, err := run(src, env)
	if err != nil {
		return value.Object{}, err
	}
	return fromResult(res)
}

// Test runs src like Eval and reports whether the result is true by
// value.Truth.
func Test(src string, env value.Object) (bool, error) {
	o, err := Eval(src, env)
	if err != nil {
		return false, err
	}
	return value.Truth(o), nil
}

func run(src string, env value.Object) (any, error) {
	vars, err := EnvFrom(env)
	if err != nil {
		return nil, err
	}
	program, err := expr.Compile(src, exprOpts(env)...)
	if err != nil {
		return nil, err
	}
	res, err := vm.Run(program, vars)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v", src, res)
	}
	return res, nil
}

// fromResult converts expression results, in which integers are plain
// ints, to objects.
func fromResult(v any) (value.Object, error) {
	switch x := v.(type) {
	case int:
		return value.FromInt(int64(x)), nil
	case []any:
		vec := value.NewVector()
		for i, e := range x {
			o, err := fromResult(e)
			if err != nil {
				return value.Object{}, &value.ElementError{Index: i, Err: err}
			}
			vec.Append(o)
		}
		return value.New(vec), nil
	case map[string]any:
		m := make(map[string]value.Object, len(x))
		for k, e := range x {
			o, err := fromResult(e)
			if err != nil {
				return value.Object{}, &value.ElementError{Key: k, Keyed: true, Err: err}
			}
			m[k] = o
		}
		return value.FromMap(m), nil
	}
	return gomap.FromAny(v)
}
