package ast

// Idx is a byte offset into pattern source.
type Idx int

type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// Pattern is implemented by every pattern node.
type Pattern interface {
	VisitableNode
	_pattern()
}

// HashElement is an entry of a HashPattern: a *HashPair or a *HashRest.
type HashElement interface {
	VisitableNode
	_hashElement()
}

func (*WildcardPattern) _pattern()    {}
func (*LiteralPattern) _pattern()     {}
func (*RangePattern) _pattern()       {}
func (*TypePattern) _pattern()        {}
func (*ArrayPattern) _pattern()       {}
func (*FindPattern) _pattern()        {}
func (*SplatPattern) _pattern()       {}
func (*HashPattern) _pattern()        {}
func (*BindingPattern) _pattern()     {}
func (*PinPattern) _pattern()         {}
func (*GuardPattern) _pattern()       {}
func (*AlternationPattern) _pattern() {}

func (*HashPair) _hashElement() {}
func (*HashRest) _hashElement() {}
