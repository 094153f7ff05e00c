package libdiff

import "slices"

// Reverse returns the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, 0, len(changes))
	for _, c := range slices.Backward(changes) {
		r := Change{Path: c.Path, Op: c.Op, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		case StringEdit:
			r.Edits = make([]Edit, len(c.Edits))
			for i, e := range c.Edits {
				switch e.Op {
				case EditInsert:
					e.Op = EditDelete
				case EditDelete:
					e.Op = EditInsert
				}
				r.Edits[i] = e
			}
		}
		res = append(res, r)
	}
	return res
}
