package ast

import "github.com/t14raptor/go-match/value"

type (
	Patterns []Pattern

	// WildcardPattern is `_`; it matches anything and binds nothing.
	WildcardPattern struct{}

	// LiteralPattern matches values equal to Value.
	LiteralPattern struct {
		Value any
	}

	// RangePattern matches values ordered within Begin..End. A nil bound is
	// open.
	RangePattern struct {
		Begin     any
		End       any
		Exclusive bool
	}

	// TypePattern matches values whose runtime type is exactly Type.
	TypePattern struct {
		Type value.Type
	}

	// ArrayPattern matches a sequence view element by element. At most one
	// element may be a *SplatPattern, which absorbs the elements the others
	// leave over. Type, when set, is tested first (Point[x, y]).
	ArrayPattern struct {
		Type     value.Type
		Elements Patterns
	}

	// FindPattern searches a sequence view for the first run of elements
	// matching Elements: [*pre, x, *post].
	FindPattern struct {
		Type     value.Type
		Pre      *SplatPattern
		Elements Patterns
		Post     *SplatPattern
	}

	// SplatPattern is `*name` (or `*`) inside an array or find pattern.
	SplatPattern struct {
		Name string
	}

	// HashPattern matches a key-value view. It is partial unless it has no
	// elements, in which case it only matches an empty view, or it ends in a
	// closed rest (**nil).
	HashPattern struct {
		Type     value.Type
		Elements []HashElement
	}

	// HashPair requires Key to be present and its value to match Value. A nil
	// Value binds the value to a variable named Key (`key:`).
	HashPair struct {
		Key   string
		Value Pattern
	}

	// HashRest is `**name`, `**` or `**nil`.
	HashRest struct {
		Name   string
		Closed bool
	}

	// BindingPattern binds Name to the whole matched value. A nil Pattern
	// matches anything.
	BindingPattern struct {
		Name    string
		Pattern Pattern
	}

	// PinPattern matches a value equal to the one already bound to Name.
	PinPattern struct {
		Name string
	}

	// GuardPattern matches when Pattern matches and Guard holds over the
	// bindings made so far (or does not hold, for Unless).
	GuardPattern struct {
		Pattern Pattern
		Guard   Predicate
		Unless  bool
	}

	// AlternationPattern matches when any alternative does. Alternatives may
	// not bind variables.
	AlternationPattern struct {
		Alternatives Patterns
	}
)

// Predicate is a guard condition evaluated against bindings.
type Predicate func(b Bindings) bool

// ExactEmpty reports whether the pattern is `{}`, which only matches an
// empty key-value view.
func (n *HashPattern) ExactEmpty() bool {
	return len(n.Elements) == 0
}

// Pairs returns the key patterns in declaration order.
func (n *HashPattern) Pairs() []*HashPair {
	var pairs []*HashPair
	for _, e := range n.Elements {
		if p, ok := e.(*HashPair); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// Rest returns the trailing rest element, if any.
func (n *HashPattern) Rest() *HashRest {
	if len(n.Elements) == 0 {
		return nil
	}
	r, _ := n.Elements[len(n.Elements)-1].(*HashRest)
	return r
}

// Splat returns the index of the first splat element, or -1.
func (n *ArrayPattern) Splat() int {
	for i, e := range n.Elements {
		if _, ok := e.(*SplatPattern); ok {
			return i
		}
	}
	return -1
}
