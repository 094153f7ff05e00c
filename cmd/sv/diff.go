package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/signadot/serialization/libdiff"
	"github.com/signadot/serialization/mergeop"
	"github.com/signadot/serialization/parse"
	"github.com/signadot/serialization/value"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc, a, b, false)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	last := value.Object{}
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for i := 0; i != cfg.LoopLim; i++ {
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		next, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
		}
		last = next
		<-ticker.C
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b value.Object, sep bool) (bool, error) {
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	w := cc.Out
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
		a, b = b, a
	}
	if sep {
		if err := writeSep(w); err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if cfg.Loop != "" {
		when := time.Now().Format(time.RFC3339Nano)
		if _, err := fmt.Fprintf(w, "# difference found at %s\n", when); err != nil {
			return false, err
		}
	}
	switch {
	case cfg.Merge:
		mp, err := mergeop.CreateMergePatch(a, b)
		if err != nil {
			return false, fmt.Errorf("error creating merge patch: %w", err)
		}
		return true, viewDoc(cfg.MainConfig, w, mp)
	case cfg.Object:
		return true, viewDoc(cfg.MainConfig, w, libdiff.ToObject(changes))
	}
	return true, libdiff.Format(w, changes)
}
