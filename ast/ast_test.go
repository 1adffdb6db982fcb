package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinCounter struct {
	NoopVisitor
	pins []string
}

func (c *pinCounter) VisitPinPattern(n *PinPattern) {
	c.pins = append(c.pins, n.Name)
}

func TestNoopVisitor_WalksChildren(t *testing.T) {
	p := &AlternationPattern{Alternatives: Patterns{
		&ArrayPattern{Elements: Patterns{&PinPattern{Name: "a"}, nil, &SplatPattern{}}},
		&FindPattern{Pre: &SplatPattern{}, Elements: Patterns{&PinPattern{Name: "b"}}},
		&HashPattern{Elements: []HashElement{
			&HashPair{Key: "k", Value: &GuardPattern{Pattern: &BindingPattern{Name: "x", Pattern: &PinPattern{Name: "c"}}}},
			&HashPair{Key: "bare"},
			&HashRest{Closed: true},
		}},
	}}

	c := &pinCounter{}
	c.V = c
	p.VisitWith(c)

	assert.Equal(t, []string{"a", "b", "c"}, c.pins)
}

func TestHashPattern_Helpers(t *testing.T) {
	empty := &HashPattern{}
	assert.True(t, empty.ExactEmpty())
	assert.Nil(t, empty.Rest())
	assert.Empty(t, empty.Pairs())

	rest := &HashRest{Name: "rest"}
	h := &HashPattern{Elements: []HashElement{&HashPair{Key: "a"}, &HashPair{Key: "b"}, rest}}
	assert.False(t, h.ExactEmpty())
	assert.Same(t, rest, h.Rest())
	require.Len(t, h.Pairs(), 2)
	assert.Equal(t, "b", h.Pairs()[1].Key)

	open := &HashPattern{Elements: []HashElement{rest, &HashPair{Key: "a"}}}
	assert.Nil(t, open.Rest())
}

func TestArrayPattern_Splat(t *testing.T) {
	assert.Equal(t, -1, (&ArrayPattern{Elements: Patterns{&WildcardPattern{}}}).Splat())
	assert.Equal(t, 1, (&ArrayPattern{Elements: Patterns{&WildcardPattern{}, &SplatPattern{}, &SplatPattern{}}}).Splat())
}

func TestBindings(t *testing.T) {
	b := Bindings{"a": 1}
	c := b.Clone()
	c["a"] = 2
	assert.Equal(t, 1, b["a"])

	b.Merge(Bindings{"a": 3, "b": 4})
	assert.Equal(t, Bindings{"a": 3, "b": 4}, b)

	v, ok := b.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = Bindings(nil).Lookup("a")
	assert.False(t, ok)
	assert.Empty(t, Bindings(nil).Clone())
}
