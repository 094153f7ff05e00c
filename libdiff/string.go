package libdiff

import (
	"strings"

	"github.com/signadot/serialization/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns a StringEdit change from from to to, or nil if the
// strings are equal or too different for an edit to be useful.
func DiffString(path string, from, to value.String) *Change {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(string(from), "\n") && strings.Contains(string(to), "\n")
	diffs := diffCfg.DiffMain(string(from), string(to), doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	edits := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			edits = append(edits, Edit{Op: EditInsert, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			edits = append(edits, Edit{Op: EditDelete, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			edits = append(edits, Edit{Op: EditEqual, Text: diff.Text})
		}
	}
	if diffSize == 0 || diffSize > min(len(from), len(to))/2 {
		return nil
	}
	return &Change{
		Path:  path,
		Op:    StringEdit,
		From:  value.New(from),
		To:    value.New(to),
		Edits: edits,
	}
}

// applyEdits checks edits against s and returns the edited text.
func applyEdits(s string, edits []Edit) (string, bool) {
	var b strings.Builder
	rest := s
	for _, e := range edits {
		switch e.Op {
		case EditEqual, EditDelete:
			if !strings.HasPrefix(rest, e.Text) {
				return "", false
			}
			rest = rest[len(e.Text):]
			if e.Op == EditEqual {
				b.WriteString(e.Text)
			}
		case EditInsert:
			b.WriteString(e.Text)
		}
	}
	return b.String(), rest == ""
}
