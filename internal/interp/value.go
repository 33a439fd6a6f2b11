package interp

import (
	"go/constant"
	"strconv"

	"github.com/you-not-fish/splat/internal/types"
)

// Value is an immutable runtime value: an Integer, Boolean, String or Void.
// The zero Value is invalid.
type Value struct {
	kind types.BasicKind
	i    int64
	b    bool
	s    string
}

// Void is the value of a call to a function without a result.
var Void = Value{kind: types.Void}

// IntValue returns an Integer value.
func IntValue(i int64) Value { return Value{kind: types.Integer, i: i} }

// BoolValue returns a Boolean value.
func BoolValue(b bool) Value { return Value{kind: types.Boolean, b: b} }

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: types.String, s: s} }

// Default returns the default value for a variable of type t:
// 0, false, "" or Void.
func Default(t types.Type) Value {
	switch {
	case types.IsInteger(t):
		return IntValue(0)
	case types.IsBoolean(t):
		return BoolValue(false)
	case types.IsString(t):
		return StringValue("")
	}
	return Void
}

// FromConstant converts a constant computed during analysis.
// It reports false for values outside the language's domain.
func FromConstant(c constant.Value) (Value, bool) {
	switch c.Kind() {
	case constant.Int:
		i, exact := constant.Int64Val(c)
		return IntValue(i), exact
	case constant.Bool:
		return BoolValue(constant.BoolVal(c)), true
	case constant.String:
		return StringValue(constant.StringVal(c)), true
	}
	return Value{}, false
}

// Kind returns the basic kind of v.
func (v Value) Kind() types.BasicKind { return v.kind }

// Type returns the type of v, or nil for the zero Value.
func (v Value) Type() types.Type {
	if v.kind == types.Invalid {
		return nil
	}
	return types.Typ[v.kind]
}

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != types.Invalid }

// Int returns the payload of an Integer value.
func (v Value) Int() int64 { return v.i }

// Bool returns the payload of a Boolean value.
func (v Value) Bool() bool { return v.b }

// Str returns the payload of a String value.
func (v Value) Str() string { return v.s }

// String returns the printed form of v: decimal integers, true/false,
// and string contents without quotes. Void prints as nothing.
func (v Value) String() string {
	switch v.kind {
	case types.Integer:
		return strconv.FormatInt(v.i, 10)
	case types.Boolean:
		return strconv.FormatBool(v.b)
	case types.String:
		return v.s
	}
	return ""
}

// Equal reports whether x and y hold the same value.
// Values of different kinds are never equal.
func Equal(x, y Value) bool {
	if x.kind != y.kind {
		return false
	}
	switch x.kind {
	case types.Integer:
		return x.i == y.i
	case types.Boolean:
		return x.b == y.b
	case types.String:
		return x.s == y.s
	}
	return true
}
