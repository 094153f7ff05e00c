// Package gomap maps objects to and from Go native values, JSON and YAML.
//
// JSON and YAML cannot tell every kind apart: unsigned integers, addresses,
// decimals with integral values and the integer vectors all come back as
// something more generic. [Reconcile] restores such kinds from a previous
// version of the same document.
package gomap
