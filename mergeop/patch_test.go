package mergeop

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/serialization/libdiff"
	"github.com/signadot/serialization/value"
)

func parse(t *testing.T, s string) value.Object {
	t.Helper()
	o, err := value.ParseAny(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return o
}

const doc = `{"name": "svc", "port": 8080, "addr": 10.0.0.1, "ids": <1, 2>, "ratio": 1.0}`

func TestJSONPatch(t *testing.T) {
	ops := parse(t, `[
		{"op": "replace", "path": "/name", "value": "api"},
		{"op": "add", "path": "/ids/-", "value": 3},
		{"op": "remove", "path": "/ratio"}
	]`)
	got, err := Patch("json-patch", parse(t, doc), ops)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name": "api", "port": 8080, "addr": 10.0.0.1, "ids": <1, 2, 3>}`
	if !got.Equal(parse(t, want)) {
		t.Errorf("got %s want %s", got, want)
	}
	bad := parse(t, `[{"op": "remove", "path": "/nope"}]`)
	if _, err := Patch("json-patch", parse(t, doc), bad); err == nil {
		t.Error("expected error")
	}
}

func TestMergePatch(t *testing.T) {
	merge := parse(t, `{"port": 9090, "ratio": empty, "extra": {"on": true}}`)
	got, err := Patch("merge-patch", parse(t, doc), merge)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name": "svc", "port": 9090, "addr": 10.0.0.1, "ids": <1, 2>, "extra": {"on": true}}`
	if !got.Equal(parse(t, want)) {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestCreateMergePatch(t *testing.T) {
	from := parse(t, doc)
	to := parse(t, `{"name": "svc", "port": 1, "addr": ::1, "ids": <1, 2>, "ratio": 1.0}`)
	mp, err := CreateMergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if want := parse(t, `{"port": 1, "addr": ::1}`); !mp.Equal(want) {
		t.Errorf("patch %s, want %s", mp, want)
	}
	got, err := Patch("merge-patch", from, mp)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(to) {
		t.Errorf("got %s want %s", got, to)
	}
}

func TestDiffPatch(t *testing.T) {
	from := parse(t, doc)
	to := parse(t, `{"name": "svc2", "addr": 10.0.0.2, "ids": (1, 2), "ratio": nan}`)
	got, err := Patch("diff", from, libdiff.ToObject(libdiff.Diff(from, to)))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(to) {
		t.Errorf("got %s want %s", got, to)
	}
}

func TestSymbols(t *testing.T) {
	if diff := cmp.Diff([]string{"diff", "json-patch", "merge-patch"}, Symbols()); diff != "" {
		t.Error(diff)
	}
	for _, s := range []Symbol{JSONPatch(), MergePatch(), DiffPatch()} {
		if Lookup(s.String()) != s {
			t.Errorf("%s is not registered", s)
		}
	}
	if err := Register(JSONPatch()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("got %v", err)
	}
	if _, err := Patch("nope", value.Object{}, value.Object{}); !errors.Is(err, ErrNoSymbol) {
		t.Errorf("got %v", err)
	}
}
