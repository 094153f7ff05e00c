package mergeop

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/serialization/value"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

var (
	ErrSymbolExists = errors.New("symbol exists")
	ErrNoSymbol     = errors.New("no such patch kind")
)

func Register(s Symbol) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[s.String()]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[s.String()] = s
	return nil
}

func init() {
	for _, s := range []Symbol{JSONPatch(), MergePatch(), DiffPatch()} {
		if err := Register(s); err != nil {
			panic(err)
		}
	}
}

func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Symbols returns the registered patch kinds, sorted.
func Symbols() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for k := range d {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Patch applies patch of the named kind to doc.
func Patch(kind string, doc, patch value.Object) (value.Object, error) {
	sym := Lookup(kind)
	if sym == nil {
		return value.Object{}, fmt.Errorf("%w: %q", ErrNoSymbol, kind)
	}
	op, err := sym.Instance(patch)
	if err != nil {
		return value.Object{}, err
	}
	return op.Patch(doc)
}
