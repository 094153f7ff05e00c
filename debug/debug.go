package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	LoadEnv bool
	Patch   bool
	Diff    bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SERIAL_DEBUG_PARSE")
	d.LoadEnv = boolEnv("SERIAL_DEBUG_LOAD_ENV")
	d.Patch = boolEnv("SERIAL_DEBUG_PATCH")
	d.Diff = boolEnv("SERIAL_DEBUG_DIFF")
	d.Eval = boolEnv("SERIAL_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func LoadEnv() bool {
	return d.LoadEnv
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}

// Logf writes a formatted line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
