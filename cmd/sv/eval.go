package main

import (
	"fmt"
	"strings"

	"github.com/signadot/serialization/eval"
	"github.com/signadot/serialization/value"

	"github.com/scott-cotton/cli"
)

func svEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	env, err := loadEnv(cfg.Env)
	if err != nil {
		return err
	}
	n := 0
	for _, file := range inputs(args[1:]) {
		docs, err := getDocs(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, doc := range docs {
			dEnv := env.Clone()
			dEnv.Set("doc", doc)
			res, err := eval.Eval(src, value.New(dEnv))
			if err != nil {
				return fmt.Errorf("error evaluating document %d of %s: %w", i, file, err)
			}
			if n > 0 {
				if err := writeSep(cc.Out); err != nil {
					return err
				}
			}
			if err := viewDoc(cfg.MainConfig, cc.Out, res); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		return err
	}
	env, err := loadEnv(cfg.Env)
	if err != nil {
		return err
	}
	n := 0
	for _, file := range inputs(args) {
		docs, err := getDocs(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, doc := range docs {
			res, err := eval.Expand(doc, value.New(env))
			if err != nil {
				return fmt.Errorf("error expanding document %d of %s: %w", i, file, err)
			}
			if n > 0 {
				if err := writeSep(cc.Out); err != nil {
					return err
				}
			}
			if err := viewDoc(cfg.MainConfig, cc.Out, res); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

// loadEnv merges the command line environment over the one from
// $SERIAL_ENV.
func loadEnv(args *value.Collection) (*value.Collection, error) {
	base, err := eval.LoadEnv()
	if err != nil {
		return nil, err
	}
	if base.IsEmpty() {
		return args.Clone(), nil
	}
	res, err := base.AsCollection()
	if err != nil {
		return nil, err
	}
	mergeEnv(res, args)
	return res, nil
}

func mergeEnv(dst, src *value.Collection) {
	for k, o := range src.All() {
		sc, err := o.AsCollection()
		if err != nil {
			dst.Set(k, o)
			continue
		}
		d, _ := dst.Get(k)
		if dc, err := d.AsCollection(); err == nil {
			mergeEnv(dc, sc)
			continue
		}
		dst.Set(k, o)
	}
}

// envFunc sets the dotted path key of a key=val argument in env. val is
// parsed as a value, falling back to a string.
func envFunc(env *value.Collection, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	v, err := value.ParseAny(val)
	if err != nil {
		v = value.FromString(val)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv.Set(part, v)
			break
		}
		sub, ok := tmpEnv.Get(part)
		if c, err := sub.AsCollection(); ok && err == nil {
			tmpEnv = c
			continue
		}
		c := value.NewCollection()
		tmpEnv.Set(part, value.New(c))
		// Set stores a copy
		sub, _ = tmpEnv.Get(part)
		tmpEnv, _ = sub.AsCollection()
	}
	return nil
}
