package libdiff

import (
	"fmt"

	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/value"
)

// Apply returns a copy of doc with changes applied in order. Every change
// must find what it expects at its path, otherwise Apply fails with
// ErrConflict and doc is left as it was.
func Apply(doc value.Object, changes []Change) (value.Object, error) {
	res := doc.Clone()
	for i := range changes {
		c := &changes[i]
		if debug.Diff() {
			debug.Logf("apply %s at %s", c.Op, c.Path)
		}
		var err error
		res, err = apply(res, c)
		if err != nil {
			return value.Object{}, fmt.Errorf("change %d (%s %s): %w", i, c.Op, c.Path, err)
		}
	}
	return res, nil
}

func apply(doc value.Object, c *Change) (value.Object, error) {
	parentPath, last, err := splitPath(c.Path)
	if err != nil {
		return doc, err
	}
	if c.Op != Insert {
		cur, err := doc.GetPath(c.Path)
		if err != nil {
			return doc, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		if !cur.Equal(c.From) {
			return doc, fmt.Errorf("%w: found %s, expected %s", ErrConflict, cur, c.From)
		}
	}
	if last == nil {
		switch c.Op {
		case Replace, StringEdit:
			return c.To.Clone(), nil
		}
		return doc, fmt.Errorf("%w: cannot %s the root", ErrConflict, c.Op)
	}
	switch c.Op {
	case Delete:
		return doc, doc.DeletePath(c.Path)
	case Replace:
		return doc, doc.SetPath(c.Path, c.To)
	case StringEdit:
		s, _ := c.From.AsString()
		if _, ok := applyEdits(string(s), c.Edits); !ok {
			return doc, fmt.Errorf("%w: edits do not match %s", ErrConflict, c.From)
		}
		return doc, doc.SetPath(c.Path, c.To)
	case Insert:
		parent, err := doc.GetPath(parentPath)
		if err != nil {
			return doc, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return doc, insert(parent, last, c.To)
	}
	return doc, fmt.Errorf("unknown op %s", c.Op)
}

func insert(parent value.Object, last *value.Path, o value.Object) error {
	switch x := parent.Value().(type) {
	case *value.Collection:
		if last.Field != nil {
			if x.Has(*last.Field) {
				return fmt.Errorf("%w: field %q exists", ErrConflict, *last.Field)
			}
			x.Set(*last.Field, o)
			return nil
		}
	case *value.Vector:
		if last.Index != nil && *last.Index <= x.Len() {
			x.Insert(*last.Index, o)
			return nil
		}
	}
	return fmt.Errorf("%w: cannot insert into %s", ErrConflict, parent.Kind())
}

// splitPath returns the path of the parent of path and the final selector,
// which is nil for the root.
func splitPath(path string) (string, *value.Path, error) {
	p, err := value.ParsePath(path)
	if err != nil {
		return "", nil, err
	}
	if p.Field == nil && p.Index == nil && p.Next == nil {
		return "", nil, nil
	}
	if p.Next == nil {
		return "$", p, nil
	}
	prev := p
	for prev.Next.Next != nil {
		prev = prev.Next
	}
	last := prev.Next
	prev.Next = nil
	return p.String(), last, nil
}
