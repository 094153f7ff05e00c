package mergeop

import (
	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/gomap"
	"github.com/signadot/serialization/value"

	jsonpatch "github.com/evanphx/json-patch"
)

var jPatchSym = &jPatchSymbol{name: jPatchName}

func JSONPatch() Symbol {
	return jPatchSym
}

const (
	jPatchName name = "json-patch"
)

type jPatchSymbol struct {
	name
}

func (s jPatchSymbol) Instance(patch value.Object) (Op, error) {
	d, err := gomap.MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, err
	}
	return &jPatchOp{ops: ops, op: op{name: s.name}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc value.Object) (value.Object, error) {
	if debug.Patch() {
		debug.Logf("json-patch %d ops on %s", len(jp.ops), doc.Kind())
	}
	d, err := gomap.MarshalJSON(doc)
	if err != nil {
		return value.Object{}, err
	}
	jOut, err := jp.ops.Apply(d)
	if err != nil {
		return value.Object{}, err
	}
	res, err := gomap.UnmarshalJSON(jOut)
	if err != nil {
		return value.Object{}, err
	}
	return gomap.Reconcile(doc, res), nil
}
