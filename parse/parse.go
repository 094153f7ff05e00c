package parse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/signadot/serialization/format"
	"github.com/signadot/serialization/gomap"
	"github.com/signadot/serialization/value"
)

// Parse parses a single document, as text unless another format is given.
func Parse(d []byte, opts ...ParseOption) (value.Object, error) {
	pOpts := &parseOpts{format: format.TextFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		o   value.Object
		err error
	)
	switch pOpts.format {
	case format.TextFormat:
		o, err = value.ParseAny(string(d))
	case format.JSONFormat:
		o, err = gomap.UnmarshalJSON(d)
	case format.YAMLFormat:
		o, err = gomap.UnmarshalYAML(d)
	default:
		return value.Object{}, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return value.Object{}, fmt.Errorf("%w: %s: %w", ErrParse, pOpts.format, err)
	}
	return o, nil
}

func ParseString(s string, opts ...ParseOption) (value.Object, error) {
	return Parse([]byte(s), opts...)
}

// ParseDocs parses every document of d. Documents are separated by lines
// consisting of "---"; blank documents are skipped.
func ParseDocs(d []byte, opts ...ParseOption) ([]value.Object, error) {
	var res []value.Object
	for i, doc := range SplitDocs(d) {
		o, err := Parse(doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, o)
	}
	return res, nil
}

// SplitDocs splits d at "---" lines and drops documents which are only
// whitespace.
func SplitDocs(d []byte) [][]byte {
	var res [][]byte
	for _, doc := range bytes.Split(d, []byte("\n---\n")) {
		doc = bytes.TrimPrefix(doc, []byte("---\n"))
		doc = bytes.TrimSuffix(doc, []byte("\n---"))
		if strings.TrimSpace(string(doc)) == "" {
			continue
		}
		res = append(res, doc)
	}
	return res
}
