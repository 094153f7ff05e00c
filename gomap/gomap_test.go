package gomap

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/serialization/value"
)

func mustParse(t *testing.T, s string) value.Object {
	t.Helper()
	o, err := value.ParseAny(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return o
}

func TestJSON(t *testing.T) {
	tests := []struct {
		in   string
		json string
		back string
	}{
		{"empty", "null", "empty"},
		{"-3", "-3", "-3"},
		{"3", "3", "+3"},
		{"18446744073709551615", "18446744073709551615", "18446744073709551615"},
		{"1.5", "1.5", "1.5"},
		{`"a<b\n"`, `"a<b\n"`, `"a<b\n"`},
		{"::1", `"::1"`, `"::1"`},
		{"(1, -1)", "[1,-1]", "[+1, -1]"},
		{"<1, 2>", "[1,2]", "[+1, +2]"},
		{`{"z": [true, {}], "a": empty}`, `{"z":[true,{}],"a":null}`, `{"z": [true, {}], "a": empty}`},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			o := mustParse(t, tc.in)
			d, err := MarshalJSON(o)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tc.json {
				t.Errorf("json %s, want %s", d, tc.json)
			}
			back, err := UnmarshalJSON(d)
			if err != nil {
				t.Fatal(err)
			}
			if got := back.Render(); got != tc.back {
				t.Errorf("back %s, want %s", got, tc.back)
			}
			if r := Reconcile(o, back); !r.Equal(o) {
				t.Errorf("reconcile %s, want %s", r, o)
			}
		})
	}
}

func TestJSONErrors(t *testing.T) {
	if _, err := MarshalJSON(mustParse(t, "[1, nan]")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
	for _, in := range []string{"", "[1,", "{} {}", `{"a" 1}`} {
		if _, err := UnmarshalJSON([]byte(in)); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestYAML(t *testing.T) {
	o := mustParse(t, `{"name": "x", "port": 8080, "ratio": 0.5, "addr": 10.0.0.1, "tags": ["a", "b"], "neg": -2}`)
	d, err := MarshalYAML(o)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	c, err := back.AsCollection()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "port", "ratio", "addr", "tags", "neg"}, c.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	if p, _ := c.Get("port"); !p.Equal(value.FromInt(8080)) {
		t.Errorf("port %s", p)
	}
	if r := Reconcile(o, back); !r.Equal(o) {
		t.Errorf("reconcile %s, want %s", r, o)
	}
}

func TestAny(t *testing.T) {
	o := mustParse(t, `{"a": [1, -1, 0.5, "s", true, empty], "b": (1), "c": <2>, "d": 1.2.3.4}`)
	want := map[string]any{
		"a": []any{uint64(1), int64(-1), 0.5, "s", true, nil},
		"b": []int64{1},
		"c": []uint64{2},
		"d": netip.MustParseAddr("1.2.3.4"),
	}
	got := ToAny(o)
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b netip.Addr) bool { return a == b })); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
	back, err := FromAny(got)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(o) {
		t.Errorf("got %s want %s", back, o)
	}
	if _, err := FromAny(map[string]any{"x": struct{}{}}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
}

func TestReconcile(t *testing.T) {
	hint := mustParse(t, `{"u": 1, "i": -1, "d": 2.0, "ip": ::1, "v": [(1), "x"]}`)
	got := mustParse(t, `{"u": +1, "i": 1, "d": +2, "ip": "::2", "v": [[+3], "y"], "new": +5}`)
	want := `{"u": 1, "i": +1, "d": 2.0, "ip": ::2, "v": [(+3), "y"], "new": +5}`
	if r := Reconcile(hint, got); r.Render() != want {
		t.Errorf("got %s want %s", r, want)
	}
	if r := Reconcile(mustParse(t, "1"), mustParse(t, "-1")); r.Render() != "-1" {
		t.Errorf("negative cannot be unsigned: %s", r)
	}
}

type config struct {
	Name  string   `json:"name"`
	Ports []int    `json:"ports"`
	Ratio float64  `json:"ratio"`
	Tags  []string `json:"tags,omitempty"`
}

func TestLoadDump(t *testing.T) {
	var c config
	if err := Load([]byte(`{"name": "svc", "ports": <80, 443>, "ratio": 0.25}`), &c); err != nil {
		t.Fatal(err)
	}
	want := config{Name: "svc", Ports: []int{80, 443}, Ratio: 0.25}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	o, err := Dump(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Render(); got != `{"name": "svc", "ports": [+80, +443], "ratio": 0.25}` {
		t.Errorf("got %s", got)
	}
}
