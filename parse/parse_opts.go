package parse

import "github.com/signadot/serialization/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseText() ParseOption {
	return ParseFormat(format.TextFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
