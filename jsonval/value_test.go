package jsonval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", Null(), NullKind},
		{"bool", Bool(true), BoolKind},
		{"number", Number(42), NumberKind},
		{"string", String("hi"), StringKind},
		{"array", Array(Number(1)), ArrayKind},
		{"object", ObjectValue(NewObject()), ObjectKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
		})
	}
}

func TestValue_ZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, NullKind, v.Kind())
	assert.True(t, v.IsNull())
}

func TestValue_AccessorsRejectWrongKind(t *testing.T) {
	v := Number(3.5)

	f, ok := v.Number()
	require.True(t, ok)
	assert.Equal(t, 3.5, f)

	_, ok = v.Str()
	assert.False(t, ok)
	_, ok = v.Bool()
	assert.False(t, ok)
	_, ok = v.Array()
	assert.False(t, ok)
	_, ok = v.Object()
	assert.False(t, ok)
}

func TestObject_KeepsInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zebra", Number(1))
	obj.Set("apple", Number(2))
	obj.Set("mango", Number(3))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, obj.Keys())

	// Re-setting an existing key must keep its position.
	obj.Set("apple", Number(4))
	assert.Equal(t, []string{"zebra", "apple", "mango"}, obj.Keys())

	v, ok := obj.Get("apple")
	require.True(t, ok)
	f, _ := v.Number()
	assert.Equal(t, 4.0, f)
}

func TestObject_GetMissing(t *testing.T) {
	obj := NewObject()
	obj.Set("present", Null())

	_, ok := obj.Get("absent")
	assert.False(t, ok)
	assert.False(t, obj.Has("absent"))
	assert.True(t, obj.Has("present"))
	assert.Equal(t, 1, obj.Len())
}

func TestEqual_IgnoresKeyOrder(t *testing.T) {
	a := NewObject()
	a.Set("x", Number(1))
	a.Set("y", String("s"))

	b := NewObject()
	b.Set("y", String("s"))
	b.Set("x", Number(1))

	assert.True(t, Equal(ObjectValue(a), ObjectValue(b)))
}

func TestEqual_NaNNeverEqual(t *testing.T) {
	assert.False(t, Equal(Number(math.NaN()), Number(math.NaN())))
}

func TestEqual_Arrays(t *testing.T) {
	a := Array(Number(1), String("two"), Null())
	b := Array(Number(1), String("two"), Null())
	c := Array(Number(1), String("two"))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", NullKind.String())
	assert.Equal(t, "object", ObjectKind.String())
}
