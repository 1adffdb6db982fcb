package matcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/generator"
)

type validator struct {
	ast.NoopVisitor
	alternation int
	errs        error
}

func (v *validator) fail(n ast.Pattern, format string, args ...any) {
	v.errs = errors.Join(v.errs, &MalformedPatternError{
		Pattern: generator.Generate(n),
		Reason:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) bind(n ast.Pattern, name string) {
	if v.alternation > 0 && name != "" && !strings.HasPrefix(name, "_") {
		v.fail(n, "illegal variable %q in alternative pattern", name)
	}
}

func (v *validator) VisitArrayPattern(n *ast.ArrayPattern) {
	splats := 0
	for _, e := range n.Elements {
		switch e := e.(type) {
		case nil:
			v.fail(n, "nil element")
		case *ast.SplatPattern:
			splats++
			v.bind(n, e.Name)
		default:
			e.VisitWith(v)
		}
	}
	if splats > 1 {
		v.fail(n, "%d splats in array pattern, at most one allowed", splats)
	}
}

func (v *validator) VisitFindPattern(n *ast.FindPattern) {
	if n.Pre == nil || n.Post == nil {
		v.fail(n, "find pattern needs a leading and a trailing splat")
	}
	if len(n.Elements) == 0 {
		v.fail(n, "find pattern needs at least one element")
	}
	if n.Pre != nil {
		v.bind(n, n.Pre.Name)
	}
	if n.Post != nil {
		v.bind(n, n.Post.Name)
	}
	v.elements(n, n.Elements)
}

func (v *validator) VisitSplatPattern(n *ast.SplatPattern) {
	v.fail(n, "splat outside of an array pattern")
}

func (v *validator) VisitHashPattern(n *ast.HashPattern) {
	for i, e := range n.Elements {
		switch e := e.(type) {
		case nil:
			v.fail(n, "nil element")
		case *ast.HashRest:
			if i != len(n.Elements)-1 {
				v.fail(n, "rest %s must be the last element", generator.Generate(&ast.HashPattern{Elements: []ast.HashElement{e}}))
			}
			if !e.Closed {
				v.bind(n, e.Name)
			}
		case *ast.HashPair:
			if e.Value == nil {
				v.bind(n, e.Key)
			}
			e.VisitWith(v)
		}
	}
}

func (v *validator) VisitBindingPattern(n *ast.BindingPattern) {
	if n.Name == "" {
		v.fail(n, "binding without a name")
	}
	v.bind(n, n.Name)
	n.VisitChildrenWith(v)
}

func (v *validator) VisitPinPattern(n *ast.PinPattern) {
	if n.Name == "" {
		v.fail(n, "pin without a name")
	}
}

func (v *validator) VisitGuardPattern(n *ast.GuardPattern) {
	if n.Pattern == nil || n.Guard == nil {
		v.fail(n, "guard needs a pattern and a predicate")
	}
	n.VisitChildrenWith(v)
}

func (v *validator) VisitTypePattern(n *ast.TypePattern) {
	if n.Type == nil {
		v.fail(n, "type pattern without a type")
	}
}

func (v *validator) VisitAlternationPattern(n *ast.AlternationPattern) {
	if len(n.Alternatives) == 0 {
		v.fail(n, "empty alternation")
	}
	v.alternation++
	v.elements(n, n.Alternatives)
	v.alternation--
}

func (v *validator) elements(n ast.Pattern, ps ast.Patterns) {
	for _, p := range ps {
		if p == nil {
			v.fail(n, "nil element")
			continue
		}
		p.VisitWith(v)
	}
}

// Validate reports every structural problem of p as *MalformedPatternError
// values joined together, or nil.
func Validate(p ast.Pattern) error {
	if p == nil {
		return &MalformedPatternError{Reason: "nil pattern"}
	}
	v := &validator{}
	v.V = v
	p.VisitWith(v)
	return v.errs
}
