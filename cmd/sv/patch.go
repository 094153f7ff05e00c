package main

import (
	"fmt"

	"github.com/signadot/serialization/libdiff"
	"github.com/signadot/serialization/mergeop"
	"github.com/signadot/serialization/value"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Kinds {
		fmt.Fprintf(cc.Out, "available patch kinds:\n")
		for _, s := range mergeop.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument followed by files to patch", cli.ErrUsage)
	}
	if mergeop.Lookup(cfg.Kind) == nil {
		return fmt.Errorf("%w: %w: %q", cli.ErrUsage, mergeop.ErrNoSymbol, cfg.Kind)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	n := 0
	for _, file := range inputs(args[1:]) {
		docs, err := getDocs(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i, doc := range docs {
			res, err := mergeop.Patch(cfg.Kind, doc, p)
			if err != nil {
				return fmt.Errorf("error patching document %d of %s: %w", i, file, err)
			}
			if n > 0 {
				if err := writeSep(cc.Out); err != nil {
					return err
				}
			}
			if err := viewDoc(cfg.MainConfig, cc.Out, res); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			n++
		}
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (value.Object, error) {
	res, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return value.Object{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if !cfg.Reverse {
		return res, nil
	}
	if cfg.Kind != mergeop.DiffPatch().String() {
		return value.Object{}, fmt.Errorf("%w: -r only applies to -k %s", cli.ErrUsage, mergeop.DiffPatch())
	}
	changes, err := libdiff.FromObject(res)
	if err != nil {
		return value.Object{}, err
	}
	return libdiff.ToObject(libdiff.Reverse(changes)), nil
}
