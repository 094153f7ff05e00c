package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/serialization/value"
)

var ErrConflict = errors.New("diff conflict")

type Op int

const (
	Insert Op = iota
	Delete
	Replace
	StringEdit
)

func (op Op) String() string {
	s, ok := map[Op]string{
		Insert:     "insert",
		Delete:     "delete",
		Replace:    "replace",
		StringEdit: "strdiff",
	}[op]
	if ok {
		return s
	}
	return fmt.Sprintf("<op %d>", int(op))
}

// Change is one step of a diff. From is empty for Insert and To is empty
// for Delete. A StringEdit carries the whole strings in From and To plus
// the character level Edits between them.
type Change struct {
	Path  string
	Op    Op
	From  value.Object
	To    value.Object
	Edits []Edit
}

type EditOp int

const (
	EditEqual EditOp = iota
	EditInsert
	EditDelete
)

type Edit struct {
	Op   EditOp
	Text string
}
