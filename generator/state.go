package generator

import (
	"strings"

	"github.com/t14raptor/go-match/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Pattern
	parent *state
}

func (s *state) wrap(node ast.Pattern) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
	}
}
