package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/value"
)

const EnvVar = "SERIAL_ENV"

// LoadEnv reads an environment from $SERIAL_ENV, which holds either the
// text of a Collection or "@" followed by the name of a file containing
// one. An unset variable gives the empty object.
func LoadEnv() (value.Object, error) {
	v := strings.TrimSpace(os.Getenv(EnvVar))
	if v == "" {
		return value.Object{}, nil
	}
	if name, ok := strings.CutPrefix(v, "@"); ok {
		d, err := os.ReadFile(name)
		if err != nil {
			return value.Object{}, fmt.Errorf("$%s: %w", EnvVar, err)
		}
		v = string(d)
	}
	o, err := value.ParseAny(v)
	if err != nil {
		return value.Object{}, fmt.Errorf("$%s: %w", EnvVar, err)
	}
	if o.Kind() != value.KindCollection {
		return value.Object{}, fmt.Errorf("$%s: %w, got %s", EnvVar, ErrEnv, o.Kind())
	}
	if debug.LoadEnv() {
		debug.Logf("loaded env %s", o)
	}
	return o, nil
}
