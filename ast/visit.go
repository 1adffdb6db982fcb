package ast

type Visitor interface {
	VisitWildcardPattern(node *WildcardPattern)
	VisitLiteralPattern(node *LiteralPattern)
	VisitRangePattern(node *RangePattern)
	VisitTypePattern(node *TypePattern)
	VisitArrayPattern(node *ArrayPattern)
	VisitFindPattern(node *FindPattern)
	VisitSplatPattern(node *SplatPattern)
	VisitHashPattern(node *HashPattern)
	VisitHashPair(node *HashPair)
	VisitHashRest(node *HashRest)
	VisitBindingPattern(node *BindingPattern)
	VisitPinPattern(node *PinPattern)
	VisitGuardPattern(node *GuardPattern)
	VisitAlternationPattern(node *AlternationPattern)
}

// NoopVisitor walks every node without doing anything. Embed it and set V
// to the embedding visitor so that overridden methods are reached while
// walking children.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitWildcardPattern(node *WildcardPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitLiteralPattern(node *LiteralPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitRangePattern(node *RangePattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTypePattern(node *TypePattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitArrayPattern(node *ArrayPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFindPattern(node *FindPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSplatPattern(node *SplatPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitHashPattern(node *HashPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitHashPair(node *HashPair) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitHashRest(node *HashRest) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBindingPattern(node *BindingPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitPinPattern(node *PinPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitGuardPattern(node *GuardPattern) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitAlternationPattern(node *AlternationPattern) {
	node.VisitChildrenWith(nv.V)
}

func (n *WildcardPattern) VisitWith(v Visitor) {
	v.VisitWildcardPattern(n)
}

func (n *WildcardPattern) VisitChildrenWith(Visitor) {}

func (n *LiteralPattern) VisitWith(v Visitor) {
	v.VisitLiteralPattern(n)
}

func (n *LiteralPattern) VisitChildrenWith(Visitor) {}

func (n *RangePattern) VisitWith(v Visitor) {
	v.VisitRangePattern(n)
}

func (n *RangePattern) VisitChildrenWith(Visitor) {}

func (n *TypePattern) VisitWith(v Visitor) {
	v.VisitTypePattern(n)
}

func (n *TypePattern) VisitChildrenWith(Visitor) {}

func (n *ArrayPattern) VisitWith(v Visitor) {
	v.VisitArrayPattern(n)
}

func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	n.Elements.VisitWith(v)
}

func (n *FindPattern) VisitWith(v Visitor) {
	v.VisitFindPattern(n)
}

func (n *FindPattern) VisitChildrenWith(v Visitor) {
	if n.Pre != nil {
		n.Pre.VisitWith(v)
	}
	n.Elements.VisitWith(v)
	if n.Post != nil {
		n.Post.VisitWith(v)
	}
}

func (n *SplatPattern) VisitWith(v Visitor) {
	v.VisitSplatPattern(n)
}

func (n *SplatPattern) VisitChildrenWith(Visitor) {}

func (n *HashPattern) VisitWith(v Visitor) {
	v.VisitHashPattern(n)
}

func (n *HashPattern) VisitChildrenWith(v Visitor) {
	for _, e := range n.Elements {
		if e != nil {
			e.VisitWith(v)
		}
	}
}

func (n *HashPair) VisitWith(v Visitor) {
	v.VisitHashPair(n)
}

func (n *HashPair) VisitChildrenWith(v Visitor) {
	if n.Value != nil {
		n.Value.VisitWith(v)
	}
}

func (n *HashRest) VisitWith(v Visitor) {
	v.VisitHashRest(n)
}

func (n *HashRest) VisitChildrenWith(Visitor) {}

func (n *BindingPattern) VisitWith(v Visitor) {
	v.VisitBindingPattern(n)
}

func (n *BindingPattern) VisitChildrenWith(v Visitor) {
	if n.Pattern != nil {
		n.Pattern.VisitWith(v)
	}
}

func (n *PinPattern) VisitWith(v Visitor) {
	v.VisitPinPattern(n)
}

func (n *PinPattern) VisitChildrenWith(Visitor) {}

func (n *GuardPattern) VisitWith(v Visitor) {
	v.VisitGuardPattern(n)
}

func (n *GuardPattern) VisitChildrenWith(v Visitor) {
	if n.Pattern != nil {
		n.Pattern.VisitWith(v)
	}
}

func (n *AlternationPattern) VisitWith(v Visitor) {
	v.VisitAlternationPattern(n)
}

func (n *AlternationPattern) VisitChildrenWith(v Visitor) {
	n.Alternatives.VisitWith(v)
}

func (n Patterns) VisitWith(v Visitor) {
	for _, p := range n {
		if p != nil {
			p.VisitWith(v)
		}
	}
}
