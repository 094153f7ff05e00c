package token

// NumberClass is the numeric grammar a literal matches in full.
type NumberClass int

const (
	NotNumber NumberClass = iota
	// UnsignedNumber is digit+.
	UnsignedNumber
	// SignedNumber is [+-]digit+.
	SignedNumber
	// DecimalNumber is [+-]?digit+[.digit+][(e|E)[+-]?digit+] with a
	// fraction or exponent, or one of inf, +inf, -inf, nan.
	DecimalNumber
)

func (c NumberClass) String() string {
	switch c {
	case UnsignedNumber:
		return "unsigned"
	case SignedNumber:
		return "signed"
	case DecimalNumber:
		return "decimal"
	default:
		return "not a number"
	}
}

// ClassifyNumber reports which numeric grammar d matches. Surrounding
// whitespace is not accepted.
func ClassifyNumber(d string) NumberClass {
	i := 0
	signed := false
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		i = 1
		signed = true
	}
	switch d[i:] {
	case "inf":
		return DecimalNumber
	case "nan":
		if !signed {
			return DecimalNumber
		}
		return NotNumber
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return NotNumber
	}
	i += digits
	f := fract(d[i:])
	i += f
	e := exp(d[i:])
	i += e
	if i != len(d) {
		return NotNumber
	}
	if f+e != 0 {
		return DecimalNumber
	}
	if signed {
		return SignedNumber
	}
	return UnsignedNumber
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d string) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return n + 1
}
