package libdiff

import (
	"fmt"

	"github.com/signadot/serialization/value"
)

var editOps = map[EditOp]string{
	EditEqual:  "=",
	EditInsert: "+",
	EditDelete: "-",
}

// ToObject encodes changes as a vector of collections with the fields
// "op", "path", "from", "to" and, for string edits, "edits". Each edit is
// a string starting with "=", "+" or "-".
func ToObject(changes []Change) value.Object {
	vec := value.NewVector()
	for i := range changes {
		c := &changes[i]
		kvs := []value.KeyVal{
			{Key: "op", Val: value.FromString(c.Op.String())},
			{Key: "path", Val: value.FromString(c.Path)},
		}
		if c.Op != Insert {
			kvs = append(kvs, value.KeyVal{Key: "from", Val: c.From})
		}
		if c.Op != Delete {
			kvs = append(kvs, value.KeyVal{Key: "to", Val: c.To})
		}
		if c.Op == StringEdit {
			edits := make([]value.Object, len(c.Edits))
			for j, e := range c.Edits {
				edits[j] = value.FromString(editOps[e.Op] + e.Text)
			}
			kvs = append(kvs, value.KeyVal{Key: "edits", Val: value.FromSlice(edits)})
		}
		vec.Append(value.FromKeyVals(kvs))
	}
	return value.New(vec)
}

// FromObject decodes the output of ToObject.
func FromObject(o value.Object) ([]Change, error) {
	vec, err := o.AsVector()
	if err != nil {
		return nil, err
	}
	res := make([]Change, 0, vec.Len())
	for i, e := range vec.All() {
		c, err := changeFrom(e)
		if err != nil {
			return nil, &value.ElementError{Index: i, Err: err}
		}
		res = append(res, c)
	}
	return res, nil
}

func changeFrom(o value.Object) (Change, error) {
	var c Change
	col, err := o.AsCollection()
	if err != nil {
		return c, err
	}
	opName, err := getString(col, "op")
	if err != nil {
		return c, err
	}
	found := false
	for _, op := range []Op{Insert, Delete, Replace, StringEdit} {
		if op.String() == opName {
			c.Op, found = op, true
		}
	}
	if !found {
		return c, fmt.Errorf("unknown op %q", opName)
	}
	if c.Path, err = getString(col, "path"); err != nil {
		return c, err
	}
	if _, err := value.ParsePath(c.Path); err != nil {
		return c, err
	}
	c.From, _ = col.Get("from")
	c.To, _ = col.Get("to")
	if c.Op != StringEdit {
		return c, nil
	}
	eo, ok := col.Get("edits")
	if !ok {
		return c, fmt.Errorf("%s without edits", c.Op)
	}
	ev, err := eo.AsVector()
	if err != nil {
		return c, fmt.Errorf("edits: %w", err)
	}
	for _, x := range ev.All() {
		s, err := x.AsString()
		if err != nil || len(s) == 0 {
			return c, fmt.Errorf("bad edit %s", x)
		}
		e := Edit{Text: string(s[1:])}
		found := false
		for op, pre := range editOps {
			if string(s[:1]) == pre {
				e.Op, found = op, true
			}
		}
		if !found {
			return c, fmt.Errorf("bad edit %s", x)
		}
		c.Edits = append(c.Edits, e)
	}
	return c, nil
}

func getString(c *value.Collection, key string) (string, error) {
	o, ok := c.Get(key)
	if !ok {
		return "", fmt.Errorf("missing %q", key)
	}
	s, err := o.AsString()
	if err != nil {
		return "", fmt.Errorf("%q: %w", key, err)
	}
	return string(s), nil
}
