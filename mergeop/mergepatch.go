package mergeop

import (
	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/gomap"
	"github.com/signadot/serialization/value"

	jsonpatch "github.com/evanphx/json-patch"
)

var mPatchSym = &mPatchSymbol{name: mPatchName}

func MergePatch() Symbol {
	return mPatchSym
}

const (
	mPatchName name = "merge-patch"
)

type mPatchSymbol struct {
	name
}

func (s mPatchSymbol) Instance(patch value.Object) (Op, error) {
	d, err := gomap.MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	return &mPatchOp{patch: d, op: op{name: s.name}}, nil
}

type mPatchOp struct {
	op
	patch []byte
}

func (mp mPatchOp) Patch(doc value.Object) (value.Object, error) {
	if debug.Patch() {
		debug.Logf("merge-patch %s on %s", mp.patch, doc.Kind())
	}
	d, err := gomap.MarshalJSON(doc)
	if err != nil {
		return value.Object{}, err
	}
	jOut, err := jsonpatch.MergePatch(d, mp.patch)
	if err != nil {
		return value.Object{}, err
	}
	res, err := gomap.UnmarshalJSON(jOut)
	if err != nil {
		return value.Object{}, err
	}
	return gomap.Reconcile(doc, res), nil
}

// CreateMergePatch returns the merge patch which turns from into to.
func CreateMergePatch(from, to value.Object) (value.Object, error) {
	fd, err := gomap.MarshalJSON(from)
	if err != nil {
		return value.Object{}, err
	}
	td, err := gomap.MarshalJSON(to)
	if err != nil {
		return value.Object{}, err
	}
	pd, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return value.Object{}, err
	}
	res, err := gomap.UnmarshalJSON(pd)
	if err != nil {
		return value.Object{}, err
	}
	return gomap.Reconcile(to, res), nil
}
