package libdiff

import (
	"strconv"

	"github.com/signadot/serialization/debug"
	"github.com/signadot/serialization/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to. Equal objects have no
// changes.
func Diff(from, to value.Object) []Change {
	res := diffAt(nil, "$", from, to)
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %d changes", from, to, len(res))
	}
	return res
}

func diffAt(dst []Change, path string, from, to value.Object) []Change {
	if from.Equal(to) {
		return dst
	}
	if from.Kind() != to.Kind() {
		return append(dst, Change{Path: path, Op: Replace, From: from, To: to})
	}
	switch fx := from.Value().(type) {
	case *value.Collection:
		tx, _ := to.AsCollection()
		return diffCollection(dst, path, fx, tx)
	case *value.Vector:
		tx, _ := to.AsVector()
		return diffVector(dst, path, fx, tx)
	case value.String:
		tx, _ := to.AsString()
		if c := DiffString(path, fx, tx); c != nil {
			return append(dst, *c)
		}
	}
	return append(dst, Change{Path: path, Op: Replace, From: from, To: to})
}

func diffCollection(dst []Change, path string, from, to *value.Collection) []Change {
	for k, f := range from.All() {
		p := value.FieldPath(path, k)
		t, ok := to.Get(k)
		if !ok {
			dst = append(dst, Change{Path: p, Op: Delete, From: f})
			continue
		}
		dst = diffAt(dst, p, f, t)
	}
	for k, t := range to.All() {
		if !from.Has(k) {
			dst = append(dst, Change{Path: value.FieldPath(path, k), Op: Insert, To: t})
		}
	}
	return dst
}

// diffVector aligns the elements of from and to with a sequence diff over
// per element summaries, so that elements of the same container kind or
// equal scalars line up. Runs of deletions followed by insertions are
// paired up and diffed element by element.
func diffVector(dst []Change, path string, from, to *value.Vector) []Change {
	m := map[string]rune{}
	fromRunes := summaries(m, from)
	toRunes := summaries(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, cur := 0, 0, 0
	var dels, ins []int
	flush := func() {
		n := min(len(dels), len(ins))
		for i := range n {
			dst = diffAt(dst, value.IndexPath(path, cur), from.At(dels[i]), to.At(ins[i]))
			cur++
		}
		for _, d := range dels[n:] {
			dst = append(dst, Change{Path: value.IndexPath(path, cur), Op: Delete, From: from.At(d)})
		}
		for _, i := range ins[n:] {
			dst = append(dst, Change{Path: value.IndexPath(path, cur), Op: Insert, To: to.At(i)})
			cur++
		}
		dels, ins = dels[:0], ins[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			if len(ins) != 0 {
				flush()
			}
			for range n {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				ins = append(ins, ti)
				ti++
			}
		case diffpatch.DiffEqual:
			flush()
			for range n {
				dst = diffAt(dst, value.IndexPath(path, cur), from.At(fi), to.At(ti))
				cur++
				fi++
				ti++
			}
		}
	}
	flush()
	return dst
}

func summaries(m map[string]rune, v *value.Vector) []rune {
	rs := make([]rune, v.Len())
	for i, o := range v.All() {
		sum := summaryStr(o)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(o value.Object) string {
	switch o.Kind() {
	case value.KindVector, value.KindCollection:
		return o.Kind().String()
	default:
		return o.Kind().String() + "-" + strconv.Quote(o.Render())
	}
}
