package value

import "slices"

// IntegerVector is a compact sequence of Integer, rendered in parentheses.
type IntegerVector []int64

func (IntegerVector) Kind() Kind { return KindIntegerVector }
func (IntegerVector) isValue()   {}

func (v IntegerVector) Render() string {
	items := make([]string, len(v))
	for i, x := range v {
		items[i] = Integer(x).Render()
	}
	return renderList('(', ')', items)
}

func (v IntegerVector) Equal(o Value) bool {
	ov, ok := o.(IntegerVector)
	return ok && slices.Equal(v, ov)
}

func (v IntegerVector) Len() int            { return len(v) }
func (v IntegerVector) At(i int) int64      { return v[i] }
func (v *IntegerVector) Append(xs ...int64) { *v = append(*v, xs...) }

// Delete removes the element at index i.
func (v *IntegerVector) Delete(i int) { *v = slices.Delete(*v, i, i+1) }

func (v IntegerVector) MarshalText() ([]byte, error) {
	return []byte(v.Render()), nil
}

func (v *IntegerVector) UnmarshalText(d []byte) error {
	x, err := ParseIntegerVector(string(d))
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func ParseIntegerVector(s string) (IntegerVector, error) {
	xs, err := parseList(s, '(', "integer vector", func(m string) (int64, error) {
		i, err := ParseInteger(m)
		return int64(i), err
	})
	if err != nil {
		return nil, err
	}
	return IntegerVector(xs), nil
}

// UnsignedIntegerVector is a compact sequence of UnsignedInteger, rendered
// in angle brackets.
type UnsignedIntegerVector []uint64

func (UnsignedIntegerVector) Kind() Kind { return KindUnsignedIntegerVector }
func (UnsignedIntegerVector) isValue()   {}

func (v UnsignedIntegerVector) Render() string {
	items := make([]string, len(v))
	for i, x := range v {
		items[i] = UnsignedInteger(x).Render()
	}
	return renderList('<', '>', items)
}

func (v UnsignedIntegerVector) Equal(o Value) bool {
	ov, ok := o.(UnsignedIntegerVector)
	return ok && slices.Equal(v, ov)
}

func (v UnsignedIntegerVector) Len() int             { return len(v) }
func (v UnsignedIntegerVector) At(i int) uint64      { return v[i] }
func (v *UnsignedIntegerVector) Append(xs ...uint64) { *v = append(*v, xs...) }

// Delete removes the element at index i.
func (v *UnsignedIntegerVector) Delete(i int) { *v = slices.Delete(*v, i, i+1) }

func (v UnsignedIntegerVector) MarshalText() ([]byte, error) {
	return []byte(v.Render()), nil
}

func (v *UnsignedIntegerVector) UnmarshalText(d []byte) error {
	x, err := ParseUnsignedIntegerVector(string(d))
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func ParseUnsignedIntegerVector(s string) (UnsignedIntegerVector, error) {
	xs, err := parseList(s, '<', "unsigned integer vector", func(m string) (uint64, error) {
		u, err := ParseUnsignedInteger(m)
		return uint64(u), err
	})
	if err != nil {
		return nil, err
	}
	return UnsignedIntegerVector(xs), nil
}
