// Package value implements a small polymorphic value model and its
// canonical textual encoding.
//
// A [Value] is one of a closed set of kinds: [Boolean], [Integer],
// [UnsignedInteger], [Decimal], [String], [IPAddress], [IntegerVector],
// [UnsignedIntegerVector], [*Vector] and [*Collection]. An [Object] holds at
// most one Value and is what containers store and what [ParseAny] returns.
//
// # Grammar
//
//	Boolean                true | false
//	Integer                [+-]digit+          (rendered with its sign: +1, -1)
//	UnsignedInteger        digit+
//	Decimal                [+-]digit+[.digit+][(e|E)[+-]digit+] | inf | -inf | nan
//	String                 "..." with \" \\ \b \f \n \r \t \uXXXX \xHH
//	IPAddress              dotted quad or RFC 4291 IPv6 text
//	IntegerVector          ( Integer, ... )
//	UnsignedIntegerVector  < UnsignedInteger, ... >
//	Vector                 [ value, ... ]
//	Collection             { String: value, ... }
//	Empty                  empty
//
// Whitespace is allowed around container members and around the input to
// ParseAny; the scalar Parse functions reject it.
//
// # Dispatch
//
// ParseAny and the members of Vector and Collection pick a kind from the
// text in this fixed order: '{' Collection, '[' Vector, '(' IntegerVector,
// '<' UnsignedIntegerVector, '"' String, numeric grammar (a signed integer is
// an Integer, bare digits are an UnsignedInteger, anything else numeric is a
// Decimal), true/false, empty, and finally an IP address. Text matching none
// of them fails with [ErrUnrecognizedElement]. Text which looks like an
// address but is not one fails with both [ErrUnrecognizedElement] and
// [ErrInvalidAddress]. Changing this order changes which kind existing text
// decodes to.
//
// # Ownership
//
// Vector and Collection deep-copy composite values on insertion, so two
// containers never share an element. Values are not safe for concurrent
// mutation; concurrent reads are fine.
package value
