package scanner

import (
	"strconv"
	"strings"

	"github.com/t14raptor/go-match/token"
)

// scanString reads a quoted string. Single quotes only escape \' and \;
// double quotes accept Go escapes.
func (s *Scanner) scanString(quote byte) token.Token {
	start := s.src.Offset()
	s.src.NextByte()
	var sb strings.Builder
	for {
		b, ok := s.src.NextByte()
		if !ok {
			s.errorf(start, "unterminated string")
			return token.Illegal
		}
		if b == quote {
			break
		}
		if b != '\\' {
			sb.WriteByte(b)
			continue
		}
		next, ok := s.src.NextByte()
		if !ok {
			s.errorf(start, "unterminated string")
			return token.Illegal
		}
		if quote == '\'' && next != '\'' && next != '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(next)
	}

	value := sb.String()
	if quote == '"' {
		raw := s.src.Slice(start, s.src.Offset())
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			s.errorf(start, "invalid string %s: %v", raw, err)
			return token.Illegal
		}
		value = unquoted
	}
	s.Token.Value = value

	if s.label() {
		return token.Label
	}
	return token.String
}
