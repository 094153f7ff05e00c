package value

import (
	"fmt"
	"strings"

	"github.com/signadot/serialization/token"
)

func renderList(open, close byte, items []string) string {
	var b strings.Builder
	b.WriteByte(open)
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item)
	}
	b.WriteByte(close)
	return b.String()
}

// parseList parses the members of a bracketed list with parse. The first
// member to fail aborts the list.
func parseList[T any](s string, open byte, what string, parse func(string) (T, error)) ([]T, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	body, ok := token.Enclosed(s, open)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be enclosed in %c", ErrInvalidLiteral, what, open)
	}
	members, err := token.Members(body)
	if err != nil {
		return nil, memberErr(err)
	}
	res := make([]T, 0, len(members))
	for i, m := range members {
		v, err := parse(m)
		if err != nil {
			if ke, ok := err.(*keyedErr); ok {
				return nil, &ElementError{Index: i, Key: ke.key, Keyed: true, Err: ke.err}
			}
			return nil, &ElementError{Index: i, Err: err}
		}
		res = append(res, v)
	}
	return res, nil
}

// keyedErr carries the key of a failing collection entry up to parseList.
type keyedErr struct {
	key string
	err error
}

func (e *keyedErr) Error() string { return e.err.Error() }
