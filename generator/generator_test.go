package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/value"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		p    ast.Pattern
		want string
	}{
		{"nil", nil, ""},
		{"float literal", &ast.LiteralPattern{Value: 2.0}, "2.0"},
		{"string range", &ast.RangePattern{Begin: "a", End: "m", Exclusive: true}, `"a"..."m"`},
		{
			"guard",
			&ast.GuardPattern{Pattern: &ast.BindingPattern{Name: "n"}, Guard: func(ast.Bindings) bool { return true }},
			"n if ...",
		},
		{
			"unless guard",
			&ast.GuardPattern{Pattern: &ast.WildcardPattern{}, Unless: true},
			"_ unless ...",
		},
		{
			"find without splats",
			&ast.FindPattern{Elements: ast.Patterns{&ast.LiteralPattern{Value: 1}}},
			"[*, 1, *]",
		},
		{
			"quoted keys",
			&ast.HashPattern{Elements: []ast.HashElement{
				&ast.HashPair{Key: "ok_1"},
				&ast.HashPair{Key: "1st"},
				&ast.HashPair{Key: ""},
				&ast.HashPair{Key: "with-dash", Value: &ast.PinPattern{Name: "v"}},
			}},
			`{ok_1:, "1st":, "":, "with-dash": ^v}`,
		},
		{
			"typed hash",
			&ast.HashPattern{Type: value.Hash, Elements: []ast.HashElement{&ast.HashRest{Closed: true}}},
			"Hash(**nil)",
		},
		{
			"binding inside alternation",
			&ast.AlternationPattern{Alternatives: ast.Patterns{
				&ast.BindingPattern{Name: "a", Pattern: &ast.LiteralPattern{Value: 1}},
				&ast.TypePattern{Type: value.Nil},
			}},
			"(1 => a) | NilClass",
		},
		{
			"nested bindings",
			&ast.BindingPattern{Name: "b", Pattern: &ast.BindingPattern{Name: "a", Pattern: &ast.TypePattern{Type: value.Array}}},
			"Array => a => b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.p))
		})
	}
}
