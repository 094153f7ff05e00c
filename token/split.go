package token

import "strings"

func closer(c byte) byte {
	switch c {
	case '[':
		return ']'
	case '{':
		return '}'
	case '(':
		return ')'
	case '<':
		return '>'
	}
	return 0
}

// topLevel calls f with the offset of every sep in s which is outside any
// bracket pair and quoted string. Scanning stops early when f returns false.
func topLevel(s string, sep byte, f func(int) bool) error {
	var stack []int
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			n, err := skipQuoted(s[i:])
			if err != nil {
				return err
			}
			i += n - 1
		case '[', '{', '(', '<':
			stack = append(stack, i)
		case ']', '}', ')', '>':
			if len(stack) == 0 {
				return &ErrImbalancedStructure{Close: c, Offset: i}
			}
			top := s[stack[len(stack)-1]]
			if closer(top) != c {
				return &ErrImbalancedStructure{Open: top, Close: c, Offset: i}
			}
			stack = stack[:len(stack)-1]
		default:
			if c == sep && len(stack) == 0 {
				if !f(i) {
					return nil
				}
			}
		}
	}
	if len(stack) != 0 {
		off := stack[len(stack)-1]
		return &ErrImbalancedStructure{Open: s[off], Offset: off}
	}
	return nil
}

// Split slices s into the substrings between each top-level sep. The
// substrings are not trimmed. Split of "" is a single empty substring.
func Split(s string, sep byte) ([]string, error) {
	var res []string
	start := 0
	err := topLevel(s, sep, func(i int) bool {
		res = append(res, s[start:i])
		start = i + 1
		return true
	})
	if err != nil {
		return nil, err
	}
	return append(res, s[start:]), nil
}

// Cut slices s around its first top-level sep. The whole of s is still
// checked for balance.
func Cut(s string, sep byte) (before, after string, found bool, err error) {
	at := -1
	err = topLevel(s, sep, func(i int) bool {
		if at == -1 {
			at = i
		}
		return true
	})
	if err != nil {
		return "", "", false, err
	}
	if at == -1 {
		return s, "", false, nil
	}
	return s[:at], s[at+1:], true, nil
}

// Enclosed returns the text between the outer open and close brackets of s.
func Enclosed(s string, open byte) (string, bool) {
	cl := closer(open)
	if cl == 0 || len(s) < 2 || s[0] != open || s[len(s)-1] != cl {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// Members splits the body of a container into trimmed members. An all
// whitespace body has no members.
func Members(body string) ([]string, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	parts, err := Split(body, ',')
	if err != nil {
		return nil, err
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
