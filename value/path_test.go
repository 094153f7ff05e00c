package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   []string
	NoGet bool
}

var pathTests = []pathTest{
	{Path: "$", Doc: "+1", Res: []string{"+1"}},
	{Path: "$.f", Doc: `{"f": 1}`, Res: []string{"1"}},
	{Path: "$[0]", Doc: "[1, 2, 3]", Res: []string{"1"}},
	{Path: "$[1]", Doc: "(1, 2, 3)", Res: []string{"+2"}},
	{Path: "$[1].f", Doc: `[0, {"f": 2, "g": 3}]`, Res: []string{"2"}},
	{Path: "$.f[3]", Doc: `{"a": [1, 2], "f": [0, 1, 2, "three"]}`, Res: []string{`"three"`}},
	{Path: "$.'f[3]'[2]", Doc: `{"a": [1, 2], "f[3]": [0, 1, 2, "three"]}`, Res: []string{"2"}},
	{Path: "$.'it\\'s'", Doc: `{"it's": true}`, Res: []string{"true"}},
	{Path: "$[*]", Doc: "<4, 5>", Res: []string{"4", "5"}, NoGet: true},
	{Path: "$[*].a", Doc: `[{"a": 1}, {"b": 2}, {"a": 3}]`, Res: []string{"1", "3"}, NoGet: true},
	{Path: "$..a", Doc: `{"a": 1, "b": [{"a": 2}, {"c": {"a": 3}}]}`, Res: []string{"1", "2", "3"}, NoGet: true},
	{Path: "$.x", Doc: `{"a": 1}`, Res: nil},
	{Path: "$[5]", Doc: `[1]`, Res: nil},
}

func TestPaths(t *testing.T) {
	for _, pt := range pathTests {
		t.Run(pt.Path, func(t *testing.T) {
			doc, err := ParseAny(pt.Doc)
			if err != nil {
				t.Fatal(err)
			}
			list, err := doc.ListPath(nil, pt.Path)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, o := range list {
				got = append(got, o.Render())
			}
			if diff := cmp.Diff(pt.Res, got); diff != "" {
				t.Errorf("list (-want +got):\n%s", diff)
			}
			if pt.NoGet {
				return
			}
			o, err := doc.GetPath(pt.Path)
			if len(pt.Res) == 0 {
				if !errors.Is(err, ErrNoSuchPath) {
					t.Errorf("get: got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if o.Render() != pt.Res[0] {
				t.Errorf("get: got %s want %s", o, pt.Res[0])
			}
		})
	}
}

func TestPathString(t *testing.T) {
	for _, p := range []string{"$", "$.a", "$.'a.b'[3]", "$[*].x", "$..x", "$..[0]"} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Fatal(err)
		}
		if got := pp.String(); got != p {
			t.Errorf("got %q want %q", got, p)
		}
	}
	for _, p := range []string{"", "a", "$.", "$[x]", "$[1", "$..", "$.'a"} {
		if _, err := ParsePath(p); err == nil {
			t.Errorf("%q: expected error", p)
		}
	}
	if got := IndexPath(FieldPath("$", "a b"), 2); got != "$.'a b'[2]" {
		t.Errorf("got %q", got)
	}
}

func TestSetDeletePath(t *testing.T) {
	doc, err := ParseAny(`{"a": [1, 2], "b": {"c": "x"}, "d": (1, 2)}`)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPath("$.a[1]", FromString("two")); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPath("$.b.e", FromBool(true)); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPath("$.d[0]", FromInt(-1)); err != nil {
		t.Fatal(err)
	}
	if err := doc.DeletePath("$.b.c"); err != nil {
		t.Fatal(err)
	}
	if err := doc.DeletePath("$.a[0]"); err != nil {
		t.Fatal(err)
	}
	want := `{"a": ["two"], "b": {"e": true}, "d": (-1, +2)}`
	if got := doc.Render(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	for _, p := range []string{"$", "$.a[5]", "$.zz.y", "$[*]"} {
		if err := doc.SetPath(p, FromUint(1)); err == nil {
			t.Errorf("set %s: expected error", p)
		}
	}
	if err := doc.DeletePath("$.nope"); !errors.Is(err, ErrNoSuchPath) {
		t.Errorf("got %v", err)
	}
}

func TestFieldPathQuoting(t *testing.T) {
	keys := []string{`C:\dir x`, `a.b\`, `it's`, `\'`, `plain\`, "", "a b"}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			path := FieldPath("$", key)
			p, err := ParsePath(path)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			if p.Field == nil || *p.Field != key || p.Next != nil {
				t.Fatalf("%s parsed to %+v", path, p)
			}
			doc := FromKeyVals([]KeyVal{{Key: key, Val: FromInt(1)}})
			got, err := doc.GetPath(path)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(FromInt(1)) {
				t.Errorf("got %s", got)
			}
		})
	}
}
