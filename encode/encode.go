package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/serialization/format"
	"github.com/signadot/serialization/gomap"
	"github.com/signadot/serialization/value"
)

const (
	DefaultIndent = 4
	DefaultWidth  = 70
)

type EncState struct {
	depth, indent int
	width         int

	format format.Format
	wire   bool

	Color func(value.Kind, ColorAttr, string) string
}

type member struct {
	key   string
	keyed bool
	obj   value.Object
}

func Encode(o value.Object, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: DefaultIndent,
		width:  DefaultWidth,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(o, w, es)
	case format.YAMLFormat:
		d, err := gomap.MarshalYAML(o)
		if err != nil {
			return err
		}
		return writeString(w, string(d))
	case format.TextFormat:
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if err := encode(o, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encodeJSON(o value.Object, w io.Writer, es *EncState) error {
	d, err := gomap.MarshalJSON(o)
	if err != nil {
		return err
	}
	if es.wire {
		return writeString(w, string(d))
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) color(k value.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func encode(o value.Object, w io.Writer, es *EncState) error {
	k := o.Kind()
	switch x := o.Value().(type) {
	case *value.Vector:
		ms := make([]member, 0, x.Len())
		for _, e := range x.All() {
			ms = append(ms, member{obj: e})
		}
		return encodeList(o, ms, "[", "]", w, es)
	case *value.Collection:
		ms := make([]member, 0, x.Len())
		for key, e := range x.All() {
			ms = append(ms, member{key: key, keyed: true, obj: e})
		}
		return encodeList(o, ms, "{", "}", w, es)
	case value.IntegerVector:
		ms := make([]member, len(x))
		for i, n := range x {
			ms[i].obj = value.FromInt(n)
		}
		return encodeList(o, ms, "(", ")", w, es)
	case value.UnsignedIntegerVector:
		ms := make([]member, len(x))
		for i, n := range x {
			ms[i].obj = value.FromUint(n)
		}
		return encodeList(o, ms, "<", ">", w, es)
	default:
		return writeString(w, es.color(k, ValueColor, o.Render()))
	}
}

// flat reports whether o fits on the current line.
func (es *EncState) flat(o value.Object) bool {
	if es.wire {
		return true
	}
	return es.depth*es.indent+len(o.Render()) < es.width
}

func encodeList(o value.Object, ms []member, open, close string, w io.Writer, es *EncState) error {
	k := o.Kind()
	if err := writeString(w, es.color(k, SepColor, open)); err != nil {
		return err
	}
	if len(ms) == 0 {
		return writeString(w, es.color(k, SepColor, close))
	}
	multi := !es.flat(o)
	inner := es
	if !multi && !es.wire {
		cp := *es
		cp.wire = true
		inner = &cp
	}
	if multi {
		es.depth++
	}
	for i := range ms {
		m := &ms[i]
		if multi {
			if err := writeNL(w, es); err != nil {
				return err
			}
		} else if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if m.keyed {
			key := es.color(k, FieldColor, value.String(m.key).Render())
			if err := writeString(w, key+es.color(k, SepColor, ":")+" "); err != nil {
				return err
			}
		}
		if err := encode(m.obj, w, inner); err != nil {
			return err
		}
		if i < len(ms)-1 {
			if err := writeString(w, es.color(k, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	if multi {
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(k, SepColor, close))
}
