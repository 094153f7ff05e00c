package value

import (
	"iter"
	"slices"
)

// Vector is an ordered, heterogeneous sequence of objects.
type Vector struct {
	objects []Object
}

// NewVector returns a vector holding copies of objs.
func NewVector(objs ...Object) *Vector {
	v := &Vector{}
	v.Append(objs...)
	return v
}

func (*Vector) Kind() Kind { return KindVector }
func (*Vector) isValue()   {}

func (v *Vector) Render() string {
	items := make([]string, v.Len())
	for i := range items {
		items[i] = v.objects[i].Render()
	}
	return renderList('[', ']', items)
}

func (v *Vector) Equal(o Value) bool {
	ov, ok := o.(*Vector)
	if !ok {
		return false
	}
	if v == nil || ov == nil {
		return v.Len() == ov.Len()
	}
	return slices.EqualFunc(v.objects, ov.objects, Object.Equal)
}

func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.objects)
}

// At returns the element at index i. Changes made through a composite
// element are visible in v.
func (v *Vector) At(i int) Object {
	return v.objects[i]
}

// Objects returns the elements in order.
func (v *Vector) Objects() []Object {
	if v == nil {
		return nil
	}
	return slices.Clone(v.objects)
}

func (v *Vector) All() iter.Seq2[int, Object] {
	return func(yield func(int, Object) bool) {
		for i := range v.Len() {
			if !yield(i, v.objects[i]) {
				return
			}
		}
	}
}

func (v *Vector) Append(objs ...Object) {
	for _, o := range objs {
		v.objects = append(v.objects, o.Clone())
	}
}

// Insert places o at index i, shifting later elements up.
func (v *Vector) Insert(i int, o Object) {
	v.objects = slices.Insert(v.objects, i, o.Clone())
}

func (v *Vector) Delete(i int) {
	v.objects = slices.Delete(v.objects, i, i+1)
}

func (v *Vector) Replace(i int, o Object) {
	v.objects[i] = o.Clone()
}

// Add appends o unless an equal element is already present, and reports
// whether it did.
func (v *Vector) Add(o Object) bool {
	if slices.ContainsFunc(v.objects, o.Equal) {
		return false
	}
	v.Append(o)
	return true
}

// Remove deletes every element equal to o and returns how many there were.
func (v *Vector) Remove(o Object) int {
	n := len(v.objects)
	v.objects = slices.DeleteFunc(v.objects, o.Equal)
	return n - len(v.objects)
}

func (v *Vector) Clone() *Vector {
	res := &Vector{objects: make([]Object, v.Len())}
	for i := range res.objects {
		res.objects[i] = v.objects[i].Clone()
	}
	return res
}

func (v *Vector) MarshalText() ([]byte, error) {
	return []byte(v.Render()), nil
}

func (v *Vector) UnmarshalText(d []byte) error {
	x, err := ParseVector(string(d))
	if err != nil {
		return err
	}
	*v = *x
	return nil
}

// ParseVector parses a bracketed list whose members may be of any kind.
func ParseVector(s string) (*Vector, error) {
	objs, err := parseList(s, '[', "vector", parseMember)
	if err != nil {
		return nil, err
	}
	return &Vector{objects: objs}, nil
}
