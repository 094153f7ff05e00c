package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/serialization/encode"
	"github.com/signadot/serialization/format"
	"github.com/signadot/serialization/parse"
	"github.com/signadot/serialization/value"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Width   int  `cli:"name=width desc='line width for text output'"`

	S bool `cli:"name=s aliases=text desc='do i/o in text'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat(override *format.Format) format.Format {
	var fmat format.Format
	switch {
	case cfg.S:
		fmat = format.TextFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if override != nil {
		fmat = *override
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.ioFormat(cfg.InFormat)),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.ioFormat(cfg.OutFormat)),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Width > 0 {
		res = append(res, encode.Width(cfg.Width))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main == nil {
		return res
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return res
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type KindConfig struct {
	*MainConfig

	Kind *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse   bool   `cli:"name=r desc='reverse the diff'"`
	Object    bool   `cli:"name=obj desc='output the diff as an object'"`
	Merge     bool   `cli:"name=m aliases=merge desc='output a merge patch'"`
	Loop      string `cli:"name=loop desc='command to produce objects to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int  `cli:"name=loopLim desc='max number of times to loop'"`
	Gops      bool `cli:"name=gops desc='run a gops agent while looping'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig
	Kind    string `cli:"name=k aliases=kind desc='patch kind'"`
	Reverse bool   `cli:"name=r desc='apply diff reversed'"`
	String  bool   `cli:"name=str desc='patch arg as string'"`
	File    bool   `cli:"name=f desc='patch arg as file'"`
	Kinds   bool   `cli:"name=kinds desc='show available patch kinds'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env *value.Collection

	Eval *cli.Command
}

type ExpandConfig struct {
	*MainConfig
	Env *value.Collection

	Expand *cli.Command
}
