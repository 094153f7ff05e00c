package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func kind(cfg *KindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kind.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		docs, err := getDocs(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for _, doc := range docs {
			fmt.Fprintln(cc.Out, doc.Kind())
		}
	}
	return nil
}
