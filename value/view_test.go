package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	left, right any
	asked       *[]string
}

func (p pair) Deconstruct() []any {
	return []any{p.left, p.right}
}

func (p pair) DeconstructKeys(keys []string) map[string]any {
	if p.asked != nil {
		*p.asked = keys
	}
	return map[string]any{"right": p.right, "left": p.left}
}

func TestSequence(t *testing.T) {
	seq, ok := Sequence([]int{1, 2})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, seq)

	seq, ok = Sequence(pair{left: "l", right: "r"})
	require.True(t, ok)
	assert.Equal(t, []any{"l", "r"}, seq)

	seq, ok = Sequence([][]any{{1, 2}})
	require.True(t, ok)
	assert.Equal(t, []any{[]any{1, 2}}, seq)

	seq, ok = Sequence([2]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, seq)

	_, ok = Sequence("abc")
	assert.False(t, ok)
	_, ok = Sequence(map[string]any{})
	assert.False(t, ok)
}

func TestKeyValues(t *testing.T) {
	ordered := NewMap("z", 1, "a", 2)
	m, ok := KeyValues(ordered, nil)
	require.True(t, ok)
	assert.Same(t, ordered, m)

	m, ok = KeyValues(map[string]any{"z": 1, "a": 2}, nil)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "z"}, m.Keys())

	var asked []string
	m, ok = KeyValues(pair{left: 1, right: 2, asked: &asked}, []string{"left"})
	require.True(t, ok)
	assert.Equal(t, []string{"left"}, asked)
	assert.Equal(t, []string{"left", "right"}, m.Keys())

	m, ok = KeyValues(map[string]int{"b": 2, "a": 1}, nil)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("b")
	assert.Equal(t, 2, v)

	_, ok = KeyValues(map[int]string{1: "a"}, nil)
	assert.False(t, ok)

	_, ok = KeyValues((*Map)(nil), nil)
	assert.False(t, ok)
	_, ok = KeyValues([]any{}, nil)
	assert.False(t, ok)
}

func TestInspect(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, "nil"},
		{"a\"b", `"a\"b"`},
		{true, "true"},
		{42, "42"},
		{2.0, "2.0"},
		{0.5, "0.5"},
		{1e20, "1e+20"},
		{[]any{1, "a", nil}, `[1, "a", nil]`},
		{NewMap("name", "Foo", "age", 29), `{:name=>"Foo", :age=>29}`},
		{map[string]any{"b": 1, "a": []int{}}, "{:a=>[], :b=>1}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Inspect(tt.v))
	}

	assert.Equal(t, "plain", Format("plain"))
	assert.Equal(t, "[1, 2]", Format([]int{1, 2}))
}
