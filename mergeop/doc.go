// Package mergeop applies patches to objects.
//
// Patches are looked up by name: "json-patch" (RFC 6902 operations),
// "merge-patch" (RFC 7386) and "diff" (a diff in the object form of
// libdiff.ToObject). JSON based patches work on the JSON form of the
// document; kinds JSON cannot carry are restored afterwards with
// gomap.Reconcile.
package mergeop
