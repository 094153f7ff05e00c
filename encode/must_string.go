package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/serialization/value"
)

func MustString(o value.Object, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(o, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
