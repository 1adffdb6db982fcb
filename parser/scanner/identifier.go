package scanner

import (
	"unicode"

	"github.com/t14raptor/go-match/token"
)

func isIdentifierStart(chr rune) bool {
	return chr == '_' || unicode.IsLetter(chr)
}

func isIdentifierPart(chr rune) bool {
	return isIdentifierStart(chr) || unicode.IsDigit(chr)
}

func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.Offset()
	first, _ := s.src.NextRune()
	for {
		r, ok := s.src.PeekRune()
		if !ok || !isIdentifierPart(r) {
			break
		}
		s.src.NextRune()
	}
	name := s.src.Slice(start, s.src.Offset())

	if s.label() {
		return token.Label
	}
	if kw, ok := token.LiteralKeyword(name); ok {
		return kw
	}
	switch {
	case name == "_":
		return token.Underscore
	case unicode.IsUpper(first):
		return token.Constant
	}
	return token.Identifier
}
