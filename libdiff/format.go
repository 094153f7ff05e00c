package libdiff

import (
	"fmt"
	"io"
	"strings"
)

// Format writes one line per change. Inserts start with "+", deletes with
// "-" and replacements with "~". String edits mark deleted text as [-x-]
// and inserted text as {+x+}.
func Format(w io.Writer, changes []Change) error {
	for i := range changes {
		if _, err := fmt.Fprintln(w, FormatChange(&changes[i])); err != nil {
			return err
		}
	}
	return nil
}

func FormatChange(c *Change) string {
	switch c.Op {
	case Insert:
		return "+ " + c.Path + ": " + c.To.Render()
	case Delete:
		return "- " + c.Path + ": " + c.From.Render()
	case StringEdit:
		var b strings.Builder
		for _, e := range c.Edits {
			switch e.Op {
			case EditEqual:
				b.WriteString(e.Text)
			case EditInsert:
				b.WriteString("{+" + e.Text + "+}")
			case EditDelete:
				b.WriteString("[-" + e.Text + "-]")
			}
		}
		return "~ " + c.Path + ": " + fmt.Sprintf("%q", b.String())
	default:
		return "~ " + c.Path + ": " + c.From.Render() + " -> " + c.To.Render()
	}
}
