package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/serialization/value"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("get", args)
	if err != nil {
		return err
	}
	for _, arg := range inputs(args) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("list", args)
	if err != nil {
		return err
	}
	for _, arg := range inputs(args) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, true); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func pathArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg, path string, list bool) error {
	docs, err := getDocs(cc, arg, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	for i, doc := range docs {
		if err := queryDoc(cfg, cc.Out, doc, path, list); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return nil
}

func queryDoc(cfg *MainConfig, w io.Writer, doc value.Object, path string, list bool) error {
	if list {
		res, err := doc.ListPath(nil, path)
		if err != nil {
			return err
		}
		return viewDoc(cfg, w, value.FromSlice(res))
	}
	res, err := doc.GetPath(path)
	if errors.Is(err, value.ErrNoSuchPath) {
		// nothing there, and nothing to complain about
		return nil
	}
	if err != nil {
		return err
	}
	return viewDoc(cfg, w, res)
}
