package matcher

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-match/ast"
)

type nameCollector struct {
	ast.NoopVisitor
	names []string
}

func (c *nameCollector) add(name string) {
	if name != "" {
		c.names = append(c.names, name)
	}
}

func (c *nameCollector) VisitBindingPattern(n *ast.BindingPattern) {
	c.add(n.Name)
	n.VisitChildrenWith(c)
}

func (c *nameCollector) VisitSplatPattern(n *ast.SplatPattern) {
	c.add(n.Name)
}

func (c *nameCollector) VisitHashPair(n *ast.HashPair) {
	if n.Value == nil {
		c.add(n.Key)
	}
	n.VisitChildrenWith(c)
}

func (c *nameCollector) VisitHashRest(n *ast.HashRest) {
	if !n.Closed {
		c.add(n.Name)
	}
}

// Names returns the sorted variable names p binds when it matches.
func Names(p ast.Pattern) []string {
	c := &nameCollector{}
	c.V = c
	if p != nil {
		p.VisitWith(c)
	}
	names := lo.Uniq(c.names)
	slices.Sort(names)
	return names
}
