package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/serialization/format"
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

func TestEncodeShort(t *testing.T) {
	for _, in := range []string{
		"empty",
		"-1",
		`"x"`,
		"[]",
		`{"a": [1, 2], "b": (+1)}`,
	} {
		o := parse(t, in)
		if got := MustString(o); got != in {
			t.Errorf("got %q want %q", got, in)
		}
	}
}

func TestEncodePretty(t *testing.T) {
	in := `{"name": "a fairly long service name", "ports": <80, 443, 8080>, "peers": [10.0.0.1, 10.0.0.2, {"weight": 0.5}]}`
	want := strings.Join([]string{
		`{`,
		`    "name": "a fairly long service name",`,
		`    "ports": <80, 443, 8080>,`,
		`    "peers": [10.0.0.1, 10.0.0.2, {"weight": 0.5}]`,
		`}`,
	}, "\n")
	o := parse(t, in)
	got := MustString(o)
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
	back := parse(t, got)
	if !back.Equal(o) {
		t.Errorf("re-parse: got %s", back)
	}
	got = MustString(o, Width(20), Indent(2))
	back = parse(t, got)
	if !back.Equal(o) {
		t.Errorf("narrow re-parse: got %s from\n%s", back, got)
	}
	if !strings.Contains(got, "\n  \"name\"") || !strings.Contains(got, "\n    10.0.0.1,") {
		t.Errorf("narrow layout:\n%s", got)
	}
}

func TestEncodeWire(t *testing.T) {
	o := parse(t, `{"k": ["`+strings.Repeat("x", 100)+`", <1, 2>]}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(o, buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != o.Render() {
		t.Errorf("got %s", buf)
	}
}

func TestEncodeColors(t *testing.T) {
	o := parse(t, `{"a": [1, "50%"]}`)
	c := NewColors()
	c.Default = colorDefault
	for k := range c.Map {
		c.Map[k] = func(s string, _ ...any) string { return "<" + s + ">" }
	}
	got := MustString(o, EncodeColors(c))
	want := `<{><"a"><:> <[><1><,> <"50%"><]><}>`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeFormats(t *testing.T) {
	o := parse(t, `{"b": [1, -2], "a": 1.5}`)
	got := MustString(o, EncodeFormat(format.JSONFormat), Indent(2))
	want := "{\n  \"b\": [\n    1,\n    -2\n  ],\n  \"a\": 1.5\n}"
	if got != want {
		t.Errorf("json: got\n%s", got)
	}
	got = MustString(o, EncodeFormat(format.JSONFormat), EncodeWire(true))
	if got != `{"b":[1,-2],"a":1.5}` {
		t.Errorf("json wire: got %s", got)
	}
	got = MustString(o, EncodeFormat(format.YAMLFormat))
	if !strings.HasPrefix(got, "b:") || !strings.Contains(got, "a: 1.5") {
		t.Errorf("yaml: got\n%s", got)
	}
	if FormatFromOpts(EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Error("format from opts")
	}
}
