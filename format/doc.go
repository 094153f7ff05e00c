// Package format names the textual encodings a value can be read from or
// written to.
//
// [TextFormat] is the native grammar of package value. [JSONFormat] and
// [YAMLFormat] are bridges handled by package gomap; they cannot carry every
// kind faithfully (IP addresses become strings, integer vectors become
// lists).
//
// # Related Packages
//
//   - github.com/signadot/serialization/parse - read text in any format
//   - github.com/signadot/serialization/encode - write text in any format
package format
