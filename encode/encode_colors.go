package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/serialization/value"
)

type Colorable struct {
	Kind value.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range value.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	numbers := color.RGB(128, 216, 236).SprintfFunc()
	for _, k := range []value.Kind{value.KindInteger, value.KindUnsignedInteger, value.KindDecimal} {
		able.Kind = k
		colors.Map[able] = numbers
	}

	able.Kind = value.KindEmpty
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = value.KindBoolean
	colors.Map[able] = color.CyanString

	able.Kind = value.KindString
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = value.KindIPAddress
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Kind = value.KindIntegerVector
	colors.Map[able] = numbers
	able.Kind = value.KindUnsignedIntegerVector
	colors.Map[able] = numbers

	able.Kind = value.KindCollection
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k value.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k value.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
