package main

import (
	"fmt"
	"io"

	"github.com/signadot/serialization/encode"
	"github.com/signadot/serialization/value"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
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
			if n > 0 {
				if err := writeSep(cc.Out); err != nil {
					return err
				}
			}
			if err := viewDoc(cfg.MainConfig, cc.Out, doc); err != nil {
				return fmt.Errorf("error encoding document %d of %s: %w", i, file, err)
			}
			n++
		}
	}
	return nil
}

// viewDoc encodes doc on its own line.
func viewDoc(cfg *MainConfig, w io.Writer, doc value.Object) error {
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	if !cfg.WireOut {
		return nil
	}
	_, err := w.Write([]byte("\n"))
	return err
}
