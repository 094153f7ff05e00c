package value

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed selector over nested objects, written as "$" followed by
// any of ".field", ".'quoted field'", "[index]", "[*]" and "..".
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	sub := false
	for x != nil {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !sub {
				buf.WriteByte('.')
			}
			buf.WriteString(pathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		sub = x.Subtree
		x = x.Next
	}
	return buf.String()
}

// FieldPath extends the path text p with field f, quoting f if needed.
func FieldPath(p, f string) string {
	return p + "." + pathField(f)
}

// IndexPath extends the path text p with index i.
func IndexPath(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + fieldQuoter.Replace(f) + "'"
}

var fieldQuoter = strings.NewReplacer(`\`, `\\`, "'", `\'`)

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if len(rest) == 0 {
				return fmt.Errorf("'..' must be followed by a selector")
			}
			if rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, fmt.Errorf("bad index %q", is)
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the single object selected by path. Wildcards are not
// allowed; a missing field or index is ErrNoSuchPath.
func (o Object) GetPath(path string) (Object, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Object{}, err
	}
	res := o
	for x := p; x != nil; x = x.Next {
		if x.IndexAll || x.Subtree {
			return Object{}, fmt.Errorf("wildcard in get path %q", path)
		}
		var ok bool
		switch {
		case x.Field != nil:
			res, ok = res.field(*x.Field)
		case x.Index != nil:
			res, ok = res.index(*x.Index)
		default:
			ok = true
		}
		if !ok {
			return Object{}, fmt.Errorf("%w: %s", ErrNoSuchPath, path)
		}
	}
	return res, nil
}

// ListPath appends every object selected by path to dst. Selectors which
// do not apply to an object select nothing.
func (o Object) ListPath(dst []Object, path string) ([]Object, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return o.listPath(dst, p), nil
}

func (o Object) field(f string) (Object, bool) {
	c, ok := o.v.(*Collection)
	if !ok {
		return Object{}, false
	}
	return c.Get(f)
}

func (o Object) index(i int) (Object, bool) {
	switch x := o.v.(type) {
	case *Vector:
		if i < x.Len() {
			return x.At(i), true
		}
	case IntegerVector:
		if i < len(x) {
			return FromInt(x[i]), true
		}
	case UnsignedIntegerVector:
		if i < len(x) {
			return FromUint(x[i]), true
		}
	}
	return Object{}, false
}

func (o Object) children() []Object {
	switch x := o.v.(type) {
	case *Vector:
		return x.objects
	case *Collection:
		res := make([]Object, 0, x.Len())
		for _, c := range x.All() {
			res = append(res, c)
		}
		return res
	case IntegerVector:
		res := make([]Object, len(x))
		for i, n := range x {
			res[i] = FromInt(n)
		}
		return res
	case UnsignedIntegerVector:
		res := make([]Object, len(x))
		for i, n := range x {
			res[i] = FromUint(n)
		}
		return res
	}
	return nil
}

func (o Object) listPath(dst []Object, p *Path) []Object {
	if p == nil {
		return append(dst, o)
	}
	switch {
	case p.Subtree:
		dst = o.listPath(dst, p.Next)
		for _, c := range o.children() {
			dst = c.listPath(dst, p)
		}
		return dst
	case p.IndexAll:
		if o.Kind() == KindCollection {
			return dst
		}
		for _, c := range o.children() {
			dst = c.listPath(dst, p.Next)
		}
		return dst
	case p.Field != nil:
		if c, ok := o.field(*p.Field); ok {
			dst = c.listPath(dst, p.Next)
		}
		return dst
	case p.Index != nil:
		if c, ok := o.index(*p.Index); ok {
			dst = c.listPath(dst, p.Next)
		}
		return dst
	}
	return o.listPath(dst, p.Next)
}

// SetPath stores a copy of v at path, which must name an existing index or
// a field of an existing collection. The root path "$" cannot be set.
func (o Object) SetPath(path string, v Object) error {
	parent, last, err := o.parentOf(path)
	if err != nil {
		return err
	}
	switch x := parent.v.(type) {
	case *Collection:
		if last.Field != nil {
			x.Set(*last.Field, v)
			return nil
		}
	case *Vector:
		if last.Index != nil && *last.Index < x.Len() {
			x.Replace(*last.Index, v)
			return nil
		}
	case IntegerVector:
		if n, err := v.AsInteger(); err == nil && last.Index != nil && *last.Index < len(x) {
			x[*last.Index] = int64(n)
			return nil
		}
	case UnsignedIntegerVector:
		if n, err := v.AsUnsignedInteger(); err == nil && last.Index != nil && *last.Index < len(x) {
			x[*last.Index] = uint64(n)
			return nil
		}
	}
	return fmt.Errorf("%w: cannot set %s", ErrNoSuchPath, path)
}

// DeletePath removes the field or vector element named by path.
func (o Object) DeletePath(path string) error {
	parent, last, err := o.parentOf(path)
	if err != nil {
		return err
	}
	switch x := parent.v.(type) {
	case *Collection:
		if last.Field != nil && x.Remove(*last.Field) {
			return nil
		}
	case *Vector:
		if last.Index != nil && *last.Index < x.Len() {
			x.Delete(*last.Index)
			return nil
		}
	}
	return fmt.Errorf("%w: cannot delete %s", ErrNoSuchPath, path)
}

func (o Object) parentOf(path string) (Object, *Path, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Object{}, nil, err
	}
	if p.Field == nil && p.Index == nil {
		if p.Next == nil && !p.IndexAll && !p.Subtree {
			return Object{}, nil, fmt.Errorf("cannot modify the root")
		}
		return Object{}, nil, fmt.Errorf("wildcard in path %q", path)
	}
	last := p
	var prefix []*Path
	for last.Next != nil {
		prefix = append(prefix, last)
		last = last.Next
	}
	parent := o
	for _, x := range prefix {
		var ok bool
		switch {
		case x.Field != nil:
			parent, ok = parent.field(*x.Field)
		case x.Index != nil:
			parent, ok = parent.index(*x.Index)
		}
		if !ok {
			return Object{}, nil, fmt.Errorf("%w: %s", ErrNoSuchPath, path)
		}
	}
	if last.Field == nil && last.Index == nil {
		return Object{}, nil, fmt.Errorf("wildcard in path %q", path)
	}
	return parent, last, nil
}
