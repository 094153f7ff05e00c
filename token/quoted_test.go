package token

import (
	"errors"
	"testing"
)

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		``,
		`"`,
		`'`,
		"\t\n\v\r\b\f",
		"\x00\x1f\x7f",
		"∞∞",
		`"""''`,
		`a,b]c`,
		`A`,
		"\xff\xfe",
		"ok\x80ok",
		"\u0085",
	} {
		do(s, t)
	}
}

func do(v string, t *testing.T) {
	q := Quote(v)
	uq, err := Unquote(q)
	if err != nil {
		t.Errorf("error unquoting %q (from %q): %v", q, v, err)
		return
	}
	if uq != v {
		t.Errorf("unquote(quote(%q)) = %q via %q", v, uq, q)
	}
}

func TestQuoteTable(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{"\x01", `"\u0001"`},
		{"\xff", `"\xff"`},
		{"é", `"é"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.out {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`"abc`, ErrUnterminated},
		{`abc"`, ErrNotQuoted},
		{`"a\qb"`, ErrBadEscape},
		{`"a\u12"`, ErrBadUnicode},
		{`"\ud800"`, ErrBadUnicode},
		{`"\x4"`, ErrBadEscape},
		{"\"a\nb\"", ErrUnicodeControl},
		{"\"\xff\"", ErrBadUTF8},
		{`"a"b`, ErrTrailing},
		{`"a\`, ErrUnterminated},
	}
	for _, tt := range tests {
		_, err := Unquote(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("Unquote(%q): got %v, want %v", tt.in, err, tt.err)
		}
	}
}
