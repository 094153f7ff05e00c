package main

import (
	"bytes"
	"testing"

	"github.com/signadot/serialization/value"
)

func TestEnvFunc(t *testing.T) {
	env := value.NewCollection()
	for _, a := range []string{"a.b=1", "a.c=10.0.0.1", "name=svc", "a.b=+2", "s=\"x\""} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	want := `{"a": {"b": +2, "c": 10.0.0.1}, "name": "svc", "s": "x"}`
	if got := env.Render(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("expected usage error")
	}
}

func TestMergeEnv(t *testing.T) {
	base, err := value.ParseCollection(`{"a": {"b": 1, "c": 2}, "d": true}`)
	if err != nil {
		t.Fatal(err)
	}
	over, err := value.ParseCollection(`{"a": {"b": 3}, "e": (1)}`)
	if err != nil {
		t.Fatal(err)
	}
	mergeEnv(base, over)
	want := `{"a": {"b": 3, "c": 2}, "d": true, "e": (+1)}`
	if got := base.Render(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestQueryDoc(t *testing.T) {
	doc, err := value.ParseAny(`{"items": [{"n": 1}, {"n": 2}]}`)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{S: true}
	buf := bytes.NewBuffer(nil)
	if err := queryDoc(cfg, buf, doc, "$.items[1].n", false); err != nil {
		t.Fatal(err)
	}
	if err := queryDoc(cfg, buf, doc, "$.missing", false); err != nil {
		t.Fatal(err)
	}
	if err := queryDoc(cfg, buf, doc, "$.items[*].n", true); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "2\n[1, 2]\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
