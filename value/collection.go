package value

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/serialization/token"
)

// Collection maps unique string keys to objects. Keys keep their insertion
// order for rendering; equality ignores order.
type Collection struct {
	keys    []string
	entries map[string]Object
}

func NewCollection() *Collection {
	return &Collection{entries: map[string]Object{}}
}

func (*Collection) Kind() Kind { return KindCollection }
func (*Collection) isValue()   {}

func (c *Collection) Render() string {
	items := make([]string, c.Len())
	for i := range items {
		k := c.keys[i]
		items[i] = token.Quote(k) + ": " + c.entries[k].Render()
	}
	return renderList('{', '}', items)
}

func (c *Collection) Equal(o Value) bool {
	oc, ok := o.(*Collection)
	if !ok || c.Len() != oc.Len() {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	return maps.EqualFunc(c.entries, oc.entries, Object.Equal)
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

func (c *Collection) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[key]
	return ok
}

// Get returns the object stored at key. Changes made through a composite
// object are visible in c.
func (c *Collection) Get(key string) (Object, bool) {
	if c == nil {
		return Object{}, false
	}
	o, ok := c.entries[key]
	return o, ok
}

// Set stores a copy of o at key. An existing key keeps its position and
// its previous object is replaced.
func (c *Collection) Set(key string, o Object) {
	if c.entries == nil {
		c.entries = map[string]Object{}
	}
	if _, ok := c.entries[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.entries[key] = o.Clone()
}

// Remove deletes key and reports whether it was present.
func (c *Collection) Remove(key string) bool {
	if !c.Has(key) {
		return false
	}
	delete(c.entries, key)
	c.keys = slices.DeleteFunc(c.keys, func(k string) bool { return k == key })
	return true
}

// Keys returns the keys in insertion order.
func (c *Collection) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.keys)
}

func (c *Collection) All() iter.Seq2[string, Object] {
	return func(yield func(string, Object) bool) {
		for i := range c.Len() {
			k := c.keys[i]
			if !yield(k, c.entries[k]) {
				return
			}
		}
	}
}

func (c *Collection) Clone() *Collection {
	res := &Collection{
		keys:    c.Keys(),
		entries: make(map[string]Object, c.Len()),
	}
	for k, o := range c.All() {
		res.entries[k] = o.Clone()
	}
	return res
}

func (c *Collection) MarshalText() ([]byte, error) {
	return []byte(c.Render()), nil
}

func (c *Collection) UnmarshalText(d []byte) error {
	x, err := ParseCollection(string(d))
	if err != nil {
		return err
	}
	*c = *x
	return nil
}

type entry struct {
	key string
	obj Object
}

// ParseCollection parses a braced list of "key": value entries. A key which
// appears more than once keeps the last value given for it.
func ParseCollection(s string) (*Collection, error) {
	entries, err := parseList(s, '{', "collection", parseEntry)
	if err != nil {
		return nil, err
	}
	c := &Collection{entries: make(map[string]Object, len(entries))}
	for _, e := range entries {
		if _, ok := c.entries[e.key]; !ok {
			c.keys = append(c.keys, e.key)
		}
		c.entries[e.key] = e.obj
	}
	return c, nil
}

func parseEntry(m string) (entry, error) {
	if m == "" {
		return entry{}, ErrEmpty
	}
	ks, vs, found, err := token.Cut(m, ':')
	if err != nil {
		return entry{}, memberErr(err)
	}
	if !found {
		return entry{}, fmt.Errorf("%w: no ':' in %q", ErrMalformedEntry, m)
	}
	key, err := ParseString(strings.TrimSpace(ks))
	if err != nil {
		return entry{}, fmt.Errorf("%w: key: %w", ErrMalformedEntry, err)
	}
	o, err := parseMember(strings.TrimSpace(vs))
	if err != nil {
		return entry{}, &keyedErr{key: string(key), err: err}
	}
	return entry{key: string(key), obj: o}, nil
}
