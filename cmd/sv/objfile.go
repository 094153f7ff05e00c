package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/serialization/parse"
	"github.com/signadot/serialization/value"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (value.Object, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return value.Object{}, err
	}
	return parse.Parse(d, opts...)
}

func getDocs(cc *cli.Context, path string, opts ...parse.ParseOption) ([]value.Object, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.ParseDocs(d, opts...)
}

// inputs returns the file arguments, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (value.Object, error) {
	if s == f && s {
		return value.Object{}, fmt.Errorf("%w: only one of -str, -f may be specified", cli.ErrUsage)
	}
	var d []byte
	if f {
		fd, err := readFile(cc, arg)
		if err != nil {
			return value.Object{}, err
		}
		d = fd
	} else {
		d = []byte(strings.TrimSpace(arg))
	}
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return value.Object{}, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return res, nil
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
