package eval

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

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

const envText = `{"name": "svc", "port": 8080, "delta": -2, "ratio": 0.5, "tags": ["a", "b"], "addr": 10.0.0.1, "nested": {"x": [1, {"y": "deep"}]}}`

func TestEval(t *testing.T) {
	env := parse(t, envText)
	tests := []struct {
		src  string
		want string
	}{
		{`name + "-x"`, `"svc-x"`},
		{`port + 1`, "+8081"},
		{`delta * 2`, "-4"},
		{`ratio * 2`, "1.0"},
		{`len(tags)`, "+2"},
		{`getpath("$.nested.x[1].y")`, `"deep"`},
		{`listpath("$..y")`, `["deep"]`},
		{`kind(port)`, `"UnsignedInteger"`},
		{`kind(getpath("$.addr"))`, `"IpAddress"`},
		{`render(tags)`, `"[\"a\", \"b\"]"`},
		{`parse("<1, 2>")`, "<1, 2>"},
		{`{"a": 1}`, `{"a": +1}`},
		{`nil`, "empty"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(tc.src, env)
			if err != nil {
				t.Fatal(err)
			}
			if got.Render() != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	env := parse(t, envText)
	for _, src := range []string{`getpath("$.nope")`, `parse("[1,")`, `1 +`} {
		if _, err := Eval(src, env); err == nil {
			t.Errorf("%s: expected error", src)
		}
	}
	if _, err := Eval("1", parse(t, "[1]")); !errors.Is(err, ErrEnv) {
		t.Errorf("got %v", err)
	}
}

func TestTest(t *testing.T) {
	env := parse(t, envText)
	for src, want := range map[string]bool{
		`port > 8000`:            true,
		`name == "x"`:            false,
		`tags`:                   true,
		`filter(tags, # == "c")`: false,
		`""`:                     false,
	} {
		got, err := Test(src, env)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if got != want {
			t.Errorf("%s: got %v", src, got)
		}
	}
}

func TestExpand(t *testing.T) {
	env := parse(t, envText)
	s, err := ExpandString(`$[name]:$[port] .[tags[0]] $[nested] .[unclosed`, env)
	if err != nil {
		t.Fatal(err)
	}
	want := `svc:8080 a {"x": [1, {"y": "deep"}]} .[unclosed`
	if s != want {
		t.Errorf("got %q want %q", s, want)
	}
	s, err = ExpandString(`$["a\]b"]`, env)
	if err != nil {
		t.Fatal(err)
	}
	if s != "a]b" {
		t.Errorf("got %q", s)
	}

	doc := parse(t, `{"url": "http://$[addr]:$[port]", "tags": ".[tags]", "n": 1}`)
	got, err := Expand(doc, env)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"url": "http://10.0.0.1:8080", "tags": ["a", "b"], "n": 1}`; got.Render() != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	o, err := LoadEnv()
	if err != nil || !o.IsEmpty() {
		t.Errorf("unset: got %s %v", o, err)
	}
	t.Setenv(EnvVar, `{"a": 1}`)
	o, err = LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if o.Render() != `{"a": 1}` {
		t.Errorf("got %s", o)
	}
	name := filepath.Join(t.TempDir(), "env.sv")
	if err := os.WriteFile(name, []byte(`{"b": true}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, "@"+name)
	o, err = LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if o.Render() != `{"b": true}` {
		t.Errorf("got %s", o)
	}
	t.Setenv(EnvVar, "[1]")
	if _, err := LoadEnv(); !errors.Is(err, ErrEnv) {
		t.Errorf("got %v", err)
	}
}
