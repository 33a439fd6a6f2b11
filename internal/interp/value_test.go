package interp

import (
	"go/constant"
	"go/token"
	"testing"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/splat/internal/types"
)

func TestDefault(t *testing.T) {
	be.Equal(t, Default(types.Typ[types.Integer]), IntValue(0))
	be.Equal(t, Default(types.Typ[types.Boolean]), BoolValue(false))
	be.Equal(t, Default(types.Typ[types.String]), StringValue(""))
	be.Equal(t, Default(types.Typ[types.Void]), Void)
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{IntValue(42), "42"},
		{IntValue(-7), "-7"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{StringValue("a\"b"), "a\"b"},
		{Void, ""},
	}
	for _, tt := range tests {
		be.Equal(t, tt.v.String(), tt.want)
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		x, y Value
		want bool
	}{
		{IntValue(1), IntValue(1), true},
		{IntValue(1), IntValue(2), false},
		{StringValue("a"), StringValue("a"), true},
		{StringValue("1"), IntValue(1), false},
		{BoolValue(false), IntValue(0), false},
		{BoolValue(true), BoolValue(true), true},
		{Void, Void, true},
	}
	for _, tt := range tests {
		be.Equal(t, Equal(tt.x, tt.y), tt.want)
	}
}

func TestValueType(t *testing.T) {
	be.Equal(t, IntValue(1).Type(), types.Type(types.Typ[types.Integer]))
	be.Equal(t, Void.Type(), types.Type(types.Typ[types.Void]))
	be.True(t, Value{}.Type() == nil)
	be.True(t, !Value{}.IsValid())
	be.True(t, StringValue("").IsValid())
}

func TestFromConstant(t *testing.T) {
	v, ok := FromConstant(constant.MakeInt64(-3))
	be.True(t, ok)
	be.Equal(t, v, IntValue(-3))

	v, ok = FromConstant(constant.MakeBool(true))
	be.True(t, ok)
	be.Equal(t, v, BoolValue(true))

	v, ok = FromConstant(constant.MakeString("s"))
	be.True(t, ok)
	be.Equal(t, v, StringValue("s"))

	_, ok = FromConstant(constant.MakeFromLiteral("99999999999999999999", token.INT, 0))
	be.True(t, !ok)
	_, ok = FromConstant(constant.MakeFloat64(1.5))
	be.True(t, !ok)
}
