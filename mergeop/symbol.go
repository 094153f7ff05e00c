package mergeop

import "github.com/signadot/serialization/value"

type Symbol interface {
	String() string
	Instance(patch value.Object) (Op, error)
}

type Op interface {
	Patch(doc value.Object) (value.Object, error)
	String() string
}

type name string

func (s name) String() string {
	return string(s)
}

type op struct {
	name name
}

func (o op) String() string {
	return o.name.String()
}
