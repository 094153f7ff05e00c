package token

import (
	"encoding/hex"
	"fmt"
	"unicode"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns v enclosed in double quotes.
//
// The escape table is fixed: \" \\ \b \f \n \r \t, \uXXXX for any other
// control code point and \xHH for a byte which is not part of valid UTF-8.
// Everything else is copied verbatim.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for i := 0; i < len(v); {
		r, sz := utf8.DecodeRuneInString(v[i:])
		if r == utf8.RuneError && sz == 1 {
			c := v[i]
			d = append(d, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
			i++
			continue
		}
		i += sz
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote is the inverse of [Quote]. v must consist of exactly one quoted
// string.
func Unquote(v string) (string, error) {
	n, err := ScanQuoted(v)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", fmt.Errorf("%w: %q after closing quote", ErrTrailing, v[n:])
	}
	b := make([]byte, 0, n)
	for i := 1; i < n-1; {
		c := v[i]
		if c != '\\' {
			b = append(b, c)
			i++
			continue
		}
		switch v[i+1] {
		case '"', '\\':
			b = append(b, v[i+1])
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'x':
			b = append(b, unhex(v[i+2])<<4|unhex(v[i+3]))
			i += 4
			continue
		case 'u':
			r := rune(unhex(v[i+2]))<<12 | rune(unhex(v[i+3]))<<8 | rune(unhex(v[i+4]))<<4 | rune(unhex(v[i+5]))
			b = utf8.AppendRune(b, r)
			i += 6
			continue
		}
		i += 2
	}
	return string(b), nil
}

// ScanQuoted validates the quoted string at the start of d and returns the
// offset just past its closing quote.
func ScanQuoted(d string) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrNotQuoted
	}
	n := len(d)
	i := 1
	for i < n {
		r, sz := utf8.DecodeRuneInString(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i, ErrBadUTF8
		}
		switch r {
		case '"':
			return i + 1, nil
		case '\\':
			if i+1 >= n {
				return i, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'x':
				if i+4 > n || !allHex(d[i+2:i+4]) {
					return i, fmt.Errorf("%w: \\x needs 2 hex digits", ErrBadEscape)
				}
				i += 4
			case 'u':
				if i+6 > n || !allHex(d[i+2:i+6]) {
					return i, fmt.Errorf("%w: \\u needs 4 hex digits", ErrBadUnicode)
				}
				r := rune(unhex(d[i+2]))<<12 | rune(unhex(d[i+3]))<<8 | rune(unhex(d[i+4]))<<4 | rune(unhex(d[i+5]))
				if !utf8.ValidRune(r) {
					return i, fmt.Errorf("%w: surrogate \\u%s", ErrBadUnicode, d[i+2:i+6])
				}
				i += 6
			default:
				return i, fmt.Errorf("%w: \\%c", ErrBadEscape, d[i+1])
			}
		default:
			if unicode.IsControl(r) {
				return i, fmt.Errorf("%w: %U", ErrUnicodeControl, r)
			}
			i += sz
		}
	}
	return n, ErrUnterminated
}

// skipQuoted returns the offset just past the quoted string at the start of
// d, honouring backslash escapes but not validating them.
func skipQuoted(d string) (int, error) {
	esc := false
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			esc = !esc
		case '"':
			if !esc {
				return i + 1, nil
			}
			esc = false
		default:
			esc = false
		}
	}
	return len(d), ErrUnterminated
}

func allHex(d string) bool {
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
