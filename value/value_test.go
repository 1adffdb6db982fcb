package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ x, y int }

type box struct{ v any }

type caseless string

func (c caseless) Equal(other any) bool {
	o, ok := other.(caseless)
	return ok && len(c) == len(o)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		v    any
		want Kind
	}{
		{nil, KindNil},
		{true, KindBoolean},
		{int8(1), KindInteger},
		{uint64(1), KindInteger},
		{1.5, KindFloat},
		{"s", KindString},
		{[]any{1}, KindArray},
		{[]string{"a"}, KindArray},
		{map[string]any{}, KindHash},
		{NewMap(), KindHash},
		{point{}, KindOther},
		{map[int]any{}, KindOther},
		{[][]any{{1}}, KindArray},
		{[2]int{}, KindArray},
		{[]map[string]any{}, KindArray},
		{map[string]int{}, KindHash},
		{caseless("a"), KindOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.v), "%#v", tt.v)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same int", 1, 1, true},
		{"int widths", int64(5), uint8(5), true},
		{"int and float", 1, 1.0, true},
		{"int and fraction", 1, 1.5, false},
		{"large uint", uint64(math.MaxUint64), int64(-1), false},
		{"strings", "a", "a", true},
		{"string and int", "1", 1, false},
		{"nil", nil, nil, true},
		{"nil and false", nil, false, false},
		{"arrays across representations", []any{1, "a"}, []any{int64(1), "a"}, true},
		{"typed slice", []int{1, 2}, []any{1, 2.0}, true},
		{"array length", []any{1}, []any{1, 2}, false},
		{"hash and go map", NewMap("a", 1, "b", 2), map[string]any{"b": 2, "a": 1}, true},
		{"hash missing key", NewMap("a", 1), map[string]any{"b": 1}, false},
		{"structs", point{1, 2}, point{1, 2}, true},
		{"different structs", point{1, 2}, point{2, 1}, false},
		{"equaler", caseless("ab"), caseless("xy"), true},
		{"nested go maps", []map[string]int{{"a": 1}}, []map[string]any{{"a": 1.0}}, true},
		{"typed maps", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"typed maps differ", map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		{"struct holding slice", box{[]int{1}}, box{[]int{1}}, true},
		{"struct holding different slice", box{[]int{1}}, box{[]int{2}}, false},
		{"struct holding slice and int", box{[]int{1}}, box{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestCompare(t *testing.T) {
	c, ok := Compare(1, 2.5)
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = Compare(int64(3), 3)
	assert.True(t, ok)
	assert.Equal(t, 0, c)

	c, ok = Compare("b", "a")
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	_, ok = Compare("a", 1)
	assert.False(t, ok)

	_, ok = Compare(math.NaN(), 1.0)
	assert.False(t, ok)
}

func TestAsFloat(t *testing.T) {
	f, ok := AsFloat(int64(4))
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)

	f, ok = AsFloat(float32(0.5))
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	_, ok = AsFloat("4")
	assert.False(t, ok)
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name       string
		v          any
		begin, end any
		exclusive  bool
		want       bool
	}{
		{"inside", 5, 1, 10, false, true},
		{"inclusive end", 10, 1, 10, false, true},
		{"exclusive end", 10, 1, 10, true, false},
		{"below", 0, 1, 10, false, false},
		{"endless", 30, 25, nil, false, true},
		{"endless below", 24, 25, nil, false, false},
		{"beginless", -100, nil, 0, false, true},
		{"float in int range", 2.5, 1, 3, false, true},
		{"strings", "m", "a", "z", false, true},
		{"unordered", "m", 1, 10, false, false},
		{"no bounds", 1, nil, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.v, tt.begin, tt.end, tt.exclusive))
		})
	}
}

func TestTypes(t *testing.T) {
	assert.True(t, String.Match("x"))
	assert.False(t, String.Match(1))
	assert.True(t, Integer.Match(uint16(1)))
	assert.False(t, Integer.Match(1.0))
	assert.True(t, Float.Match(1.0))
	assert.True(t, Array.Match([]bool{true}))
	assert.True(t, Hash.Match(NewMap()))
	assert.True(t, Nil.Match(nil))
	assert.True(t, True.Match(true))
	assert.False(t, True.Match(false))
	assert.True(t, False.Match(false))
	assert.False(t, False.Match(nil))

	names := make([]string, 0, len(Builtins()))
	for _, typ := range Builtins() {
		names = append(names, typ.Name())
	}
	assert.Equal(t, []string{"String", "Integer", "Float", "Array", "Hash", "NilClass", "TrueClass", "FalseClass"}, names)

	pt := TypeOf[point]("Point")
	assert.Equal(t, "Point", pt.Name())
	assert.True(t, pt.Match(point{}))
	assert.False(t, pt.Match(&point{}))
}
