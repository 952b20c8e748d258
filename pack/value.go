package pack

import (
	"fmt"
	"math"
)

// Kind discriminates the closed Value union.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindUint
	KindFloat
	KindBool
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a tagged scalar accepted by Pack and produced by Unpack.
// The union is closed: integer, unsigned, float, bool, text. Each
// field descriptor validates the kind supplied at its position; a
// mismatch fails with ErrTypeMismatch rather than coercing.
//
// Values are comparable, so unpacked results can be checked with ==.
type Value struct {
	kind Kind
	num  uint64 // int64 / float64 bit patterns, bool as 0/1
	text string
}

// Int wraps a signed integer.
func Int(v int64) Value { return Value{kind: KindInt, num: uint64(v)} }

// Uint wraps an unsigned integer.
func Uint(v uint64) Value { return Value{kind: KindUint, num: v} }

// Float wraps a double-precision float.
func Float(v float64) Value { return Value{kind: KindFloat, num: math.Float64bits(v)} }

// Bool wraps a boolean. The format grammar has no boolean field type,
// so packing a Bool always fails with ErrTypeMismatch; the kind exists
// so callers with dynamic inputs get a typed rejection instead of a
// silent 0/1 coercion.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Kind returns the union tag.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the signed integer payload. Valid for KindInt and
// KindUint values whose magnitude fits.
func (v Value) AsInt() int64 { return int64(v.num) }

// AsUint returns the unsigned integer payload.
func (v Value) AsUint() uint64 { return v.num }

// AsFloat returns the float payload.
func (v Value) AsFloat() float64 { return math.Float64frombits(v.num) }

// AsBool returns the boolean payload.
func (v Value) AsBool() bool { return v.num != 0 }

// AsText returns the string payload.
func (v Value) AsText() string { return v.text }

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("int(%d)", v.AsInt())
	case KindUint:
		return fmt.Sprintf("uint(%d)", v.num)
	case KindFloat:
		return fmt.Sprintf("float(%g)", v.AsFloat())
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.AsBool())
	case KindText:
		return fmt.Sprintf("text(%q)", v.text)
	default:
		return "value(invalid)"
	}
}
