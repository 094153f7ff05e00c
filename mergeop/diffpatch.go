package mergeop

import (
	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/libdiff"
	"github.com/signadot/serialization/value"
)

var dPatchSym = &dPatchSymbol{name: dPatchName}

// DiffPatch applies a diff given in the form of libdiff.ToObject.
func DiffPatch() Symbol {
	return dPatchSym
}

const (
	dPatchName name = "diff"
)

type dPatchSymbol struct {
	name
}

func (s dPatchSymbol) Instance(patch value.Object) (Op, error) {
	changes, err := libdiff.FromObject(patch)
	if err != nil {
		return nil, err
	}
	return &dPatchOp{changes: changes, op: op{name: s.name}}, nil
}

type dPatchOp struct {
	op
	changes []libdiff.Change
}

func (dp dPatchOp) Patch(doc value.Object) (value.Object, error) {
	if debug.Patch() {
		debug.Logf("diff patch with %d changes on %s", len(dp.changes), doc.Kind())
	}
	return libdiff.Apply(doc, dp.changes)
}
