// Package libdiff computes, applies and reverses structural differences
// between objects.
//
// A diff is a sequence of [Change] values, each naming the path it applies
// to. Changes inside a vector use indices that are valid at the moment the
// change is applied, so a diff must be applied in order.
package libdiff
