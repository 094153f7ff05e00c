// Package parse reads objects from text, JSON or YAML input.
//
// # Usage
//
//	obj, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//
//	// JSON input, with collection order kept
//	obj, err = parse.Parse(data, parse.ParseJSON())
//
//	// several documents separated by "---" lines
//	objs, err := parse.ParseDocs(data)
//
// # Related Packages
//
//   - github.com/signadot/serialization/value - the object model
//   - github.com/signadot/serialization/encode - the inverse of this package
package parse
