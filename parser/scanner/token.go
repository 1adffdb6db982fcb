package scanner

import (
	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/token"
)

type Token struct {
	Kind token.Token

	// Value holds the decoded text of strings and string labels.
	Value string

	Idx0, Idx1 ast.Idx
}

// String returns the token text: decoded for strings, without the colon
// for labels.
func (t Token) String(s *Scanner) string {
	switch t.Kind {
	case token.String:
		return t.Value
	case token.Label:
		if t.Value != "" {
			return t.Value
		}
		raw := s.src.Slice(t.Idx0, t.Idx1)
		return raw[:len(raw)-1]
	}
	return s.src.Slice(t.Idx0, t.Idx1)
}
