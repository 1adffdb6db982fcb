package generator

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/value"
)

// Generate prints p in pattern syntax. Guards print as `if ...` since their
// predicate is Go code.
func Generate(p ast.Pattern) string {
	s := &state{
		out:    &strings.Builder{},
		node:   p,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.WildcardPattern:
		s.out.WriteString("_")
	case *ast.LiteralPattern:
		s.out.WriteString(value.Inspect(n.Value))
	case *ast.RangePattern:
		if n.Begin != nil {
			s.out.WriteString(value.Inspect(n.Begin))
		}
		if n.Exclusive {
			s.out.WriteString("...")
		} else {
			s.out.WriteString("..")
		}
		if n.End != nil {
			s.out.WriteString(value.Inspect(n.End))
		}
	case *ast.TypePattern:
		s.out.WriteString(typeName(n.Type))
	case *ast.ArrayPattern:
		s.out.WriteString(typeName(n.Type))
		s.out.WriteString("[")
		for i, e := range n.Elements {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(e))
		}
		s.out.WriteString("]")
	case *ast.FindPattern:
		s.out.WriteString(typeName(n.Type))
		s.out.WriteString("[" + splat(n.Pre))
		for _, e := range n.Elements {
			s.out.WriteString(", ")
			gen(s.wrap(e))
		}
		s.out.WriteString(", " + splat(n.Post) + "]")
	case *ast.SplatPattern:
		s.out.WriteString(splat(n))
	case *ast.HashPattern:
		if n.Type != nil {
			s.out.WriteString(typeName(n.Type) + "(")
			defer s.out.WriteString(")")
		} else {
			s.out.WriteString("{")
			defer s.out.WriteString("}")
		}
		for i, e := range n.Elements {
			if i > 0 {
				s.out.WriteString(", ")
			}
			switch e := e.(type) {
			case *ast.HashPair:
				s.out.WriteString(label(e.Key))
				if e.Value != nil {
					s.out.WriteString(" ")
					gen(s.wrap(e.Value))
				}
			case *ast.HashRest:
				if e.Closed {
					s.out.WriteString("**nil")
				} else {
					s.out.WriteString("**" + e.Name)
				}
			}
		}
	case *ast.BindingPattern:
		if n.Pattern == nil {
			s.out.WriteString(n.Name)
			return
		}
		if _, ok := s.parent.node.(*ast.AlternationPattern); ok {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		gen(s.wrap(n.Pattern))
		s.out.WriteString(" => " + n.Name)
	case *ast.PinPattern:
		s.out.WriteString("^" + n.Name)
	case *ast.GuardPattern:
		gen(s.wrap(n.Pattern))
		if n.Unless {
			s.out.WriteString(" unless ...")
		} else {
			s.out.WriteString(" if ...")
		}
	case *ast.AlternationPattern:
		for i, alt := range n.Alternatives {
			if i > 0 {
				s.out.WriteString(" | ")
			}
			gen(s.wrap(alt))
		}
	}
}

func splat(n *ast.SplatPattern) string {
	if n == nil {
		return "*"
	}
	return "*" + n.Name
}

// label prints a hash key, quoting it when it is not a plain identifier.
func label(key string) string {
	for i, r := range key {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return strconv.Quote(key) + ":"
	}
	if key == "" {
		return `"":`
	}
	return key + ":"
}

func typeName(t value.Type) string {
	if t == nil {
		return ""
	}
	return t.Name()
}
