// Package token provides the low level grammar helpers shared by every value
// kind: quoting and unquoting of strings, classification of numeric literals
// and depth-aware splitting of container bodies.
//
// [Split] and [Cut] never look inside quoted strings and track nesting across
// all four bracket pairs, so a separator is only recognized at depth zero.
package token
