package libdiff

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
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

type diffTest struct {
	from, to string
	n        int
}

var diffTests = []diffTest{
	{"1", "1", 0},
	{"1", "2", 1},
	{"1", `"1"`, 1},
	{`{"a": 1}`, `{"a": 1, "b": 2}`, 1},
	{`{"a": 1, "b": 2}`, `{"b": 2}`, 1},
	{`{"a": {"b": [1, 2]}}`, `{"a": {"b": [1, 3]}}`, 1},
	{"[1, 2, 3]", "[0, 1, 2, 3, 4]", 2},
	{"[1, 2, 3]", "[3]", 2},
	{"[1, 2, 3]", "[3, 2, 1]", -1},
	{`[{"a": 1}, {"b": 2}]`, `[{"b": 2}]`, -1},
	{`["a", [1], (1, 2), empty]`, `[[1, 2], (1), "b"]`, -1},
	{`"the quick brown fox"`, `"the quick red fox"`, 1},
	{`{"s": "abcdefgh"}`, `{"s": "xyz"}`, 1},
	{"[]", `[1, "two", {"three": 3}]`, 3},
	{`{"k": empty}`, `{"k": 1.0.0.1}`, 1},
	{`{"C:\\dir x": 1}`, `{"C:\\dir x": 2}`, 1},
	{`{"a.b\\": [1]}`, `{"a.b\\": [1, 2], "it's\\": 3}`, 2},
}

func TestDiffApply(t *testing.T) {
	for _, dt := range diffTests {
		t.Run(dt.from+" -> "+dt.to, func(t *testing.T) {
			from, to := parse(t, dt.from), parse(t, dt.to)
			orig := from.Clone()
			changes := Diff(from, to)
			if dt.n >= 0 && len(changes) != dt.n {
				buf := bytes.NewBuffer(nil)
				Format(buf, changes)
				t.Errorf("got %d changes, want %d:\n%s", len(changes), dt.n, buf)
			}
			got, err := Apply(from, changes)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(to) {
				t.Errorf("apply: got %s want %s", got, to)
			}
			back, err := Apply(to, Reverse(changes))
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(from) {
				t.Errorf("reverse: got %s want %s", back, from)
			}
			if !from.Equal(orig) {
				t.Errorf("apply modified its input: %s", from)
			}
		})
	}
}

func TestStringEdit(t *testing.T) {
	changes := Diff(parse(t, `"the quick brown fox"`), parse(t, `"the quick red fox"`))
	if len(changes) != 1 || changes[0].Op != StringEdit {
		t.Fatalf("got %v", changes)
	}
	buf := bytes.NewBuffer(nil)
	if err := Format(buf, changes); err != nil {
		t.Fatal(err)
	}
	want := `~ $: "the quick [-brown-]{+red+} fox"` + "\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf, want)
	}
	changes = Diff(parse(t, `"abcdefgh"`), parse(t, `"xyz"`))
	if len(changes) != 1 || changes[0].Op != Replace {
		t.Errorf("got %v", changes)
	}
}

func TestFormat(t *testing.T) {
	changes := Diff(parse(t, `{"a": 1, "b": [true], "c": "x"}`), parse(t, `{"a": 2, "b": [], "d": -1}`))
	buf := bytes.NewBuffer(nil)
	if err := Format(buf, changes); err != nil {
		t.Fatal(err)
	}
	want := `~ $.a: 1 -> 2
- $.b[0]: true
- $.c: "x"
+ $.d: -1
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApplyConflict(t *testing.T) {
	changes := Diff(parse(t, `{"a": 1}`), parse(t, `{"a": 2}`))
	_, err := Apply(parse(t, `{"a": 3}`), changes)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("got %v", err)
	}
	_, err = Apply(parse(t, `{"b": 1}`), changes)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("got %v", err)
	}
	ins := Diff(parse(t, `{}`), parse(t, `{"a": 1}`))
	_, err = Apply(parse(t, `{"a": 0}`), ins)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("got %v", err)
	}
}

func TestObjectForm(t *testing.T) {
	from := parse(t, `{"a": 1, "s": "the quick brown fox", "v": [1, 2]}`)
	to := parse(t, `{"s": "the quick red fox", "v": [1, 2, 3], "b": empty}`)
	changes := Diff(from, to)
	o := ToObject(changes)
	back, err := value.ParseAny(o.Render())
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := FromObject(back)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Apply(from, decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(to) {
		t.Errorf("got %s want %s", got, to)
	}
	for _, bad := range []string{`{}`, `[{"op": "frob", "path": "$"}]`, `[{"op": "insert", "path": "x"}]`, `[{"op": "strdiff", "path": "$", "edits": ["?x"]}]`} {
		if _, err := FromObject(parse(t, bad)); err == nil {
			t.Errorf("%s: expected error", bad)
		}
	}
}
