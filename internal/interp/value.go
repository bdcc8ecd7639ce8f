package interp

import (
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Lox values are represented as plain Go `any`: nil for nil, bool for
// booleans, float64 for numbers (Lox has no separate integer type), string
// for strings, and the Callable/*Class/*Instance types below for everything
// else. Primitives compare with isEqual; callables and instances compare by
// identity, which Go's == already gives pointer types for free.

// isTruthy implements Lox truthiness: nil and false are falsey, everything
// else - including 0 and the empty string - is truthy.
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox's `==`. Operands of different dynamic types are
// never equal, nil equals only nil, and everything else uses Go's built-in
// equality, which for float64 and string is exactly IEEE-754 and byte-wise
// comparison respectively.
func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	return a == b
}

// Stringify renders value the way `print` does. Numbers use the shortest
// decimal that round-trips, with no trailing ".0" for integral values - which
// is exactly what strconv.FormatFloat's 'f' verb with precision -1 already
// produces, since an integral float64 round-trips with no fractional digits.
// Exported for the REPL's environment dump; the interpreter itself calls the
// unexported alias below.
func Stringify(value any) string {
	return stringify(value)
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		switch {
		case math.IsNaN(v):
			return "nan"
		case math.IsInf(v, 1):
			return "inf"
		case math.IsInf(v, -1):
			return "-inf"
		default:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	case string:
		// NFC-normalise so values built from concatenated literals and host
		// conversions display consistently regardless of source form.
		return norm.NFC.String(v)
	case *Class:
		return v.Name
	case *Instance:
		return v.Class.Name + " instance"
	case Callable:
		return v.String()
	default:
		return "<invalid value>"
	}
}
