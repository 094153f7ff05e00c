package value

import "math"

// Truth reports whether o is "truthy": empty objects, false, zero numbers,
// NaN, the empty string, the unspecified address and empty containers are
// not.
func Truth(o Object) bool {
	switch x := o.v.(type) {
	case nil:
		return false
	case Boolean:
		return bool(x)
	case Integer:
		return x != 0
	case UnsignedInteger:
		return x != 0
	case Decimal:
		return x != 0 && !math.IsNaN(float64(x))
	case String:
		return x != ""
	case IPAddress:
		return !x.Addr().IsUnspecified()
	case IntegerVector:
		return len(x) != 0
	case UnsignedIntegerVector:
		return len(x) != 0
	case *Vector:
		return x.Len() != 0
	case *Collection:
		return x.Len() != 0
	default:
		panic("kind")
	}
}
