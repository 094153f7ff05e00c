package eval

import (
	"os"

	"github.com/signadot/serialization/gomap"
	"github.com/signadot/serialization/value"

	"github.com/expr-lang/expr"
)

func exprOpts(doc value.Object) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			objs, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(objs))
			for i, item := range objs {
				res[i] = gomap.ToAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("kind", func(params ...any) (any, error) {
			o, err := fromResult(params[0])
			if err != nil {
				return nil, err
			}
			return o.Kind().String(), nil
		},
			new(func(any) string)),
		expr.Function("render", func(params ...any) (any, error) {
			o, err := fromResult(params[0])
			if err != nil {
				return nil, err
			}
			return o.Render(), nil
		},
			new(func(any) string)),
		expr.Function("parse", func(params ...any) (any, error) {
			o, err := value.ParseAny(params[0].(string))
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(o), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
