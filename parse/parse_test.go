package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/serialization/format"
	"github.com/signadot/serialization/value"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
		want string
	}{
		{"text", ` {"a": <1>} `, nil, `{"a": <1>}`},
		{"json", `{"b": 1, "a": [true, null, "x"]}`, []ParseOption{ParseJSON()}, `{"b": +1, "a": [true, empty, "x"]}`},
		{"yaml", "b: 1\na:\n  - x\n  - 1.5\n", []ParseOption{ParseYAML()}, `{"b": +1, "a": ["x", 1.5]}`},
		{"explicit text", "1.2.3.4", []ParseOption{ParseText()}, "1.2.3.4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Parse([]byte(tc.in), tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got := o.Render(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("[1, nope]")
	if !errors.Is(err, ErrParse) || !errors.Is(err, value.ErrUnrecognizedElement) {
		t.Errorf("got %v", err)
	}
	_, err = ParseString("{", ParseFormat(format.JSONFormat))
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
	_, err = ParseString("1", ParseFormat(format.Format(42)))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestParseDocs(t *testing.T) {
	in := "---\n1\n---\n[2]\n---\n\n---\n\"three\"\n"
	objs, err := ParseDocs([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, o := range objs {
		got = append(got, o.Render())
	}
	if diff := cmp.Diff([]string{"1", "[2]", `"three"`}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseDocs([]byte("1\n---\nx")); err == nil {
		t.Error("expected error")
	}
}
