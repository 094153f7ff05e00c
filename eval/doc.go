// Package eval evaluates expr-lang expressions against objects.
//
// An environment is a Collection whose keys become the variables of an
// expression. Besides the expr builtins, expressions can call
//
//	getpath(path)   the object at path in the environment
//	listpath(path)  every object matched by path
//	kind(x)         the kind name of x
//	render(x)       the canonical text of x
//	parse(s)        the object text s describes
//	getenv(name)    an OS environment variable
//
// Strings can embed expressions as $[expr] or .[expr], see [ExpandString].
package eval
