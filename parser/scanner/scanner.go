package scanner

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/token"
)

type Scanner struct {
	Token Token

	src    *Source
	errors *error
}

// NewScanner returns a scanner over src that joins lexical errors into errs.
func NewScanner(src string, errs *error) *Scanner {
	return &Scanner{
		src:    NewSource(src),
		errors: errs,
	}
}

func (s *Scanner) errorf(idx ast.Idx, format string, args ...any) {
	*s.errors = errors.Join(*s.errors, fmt.Errorf("%d: "+format, append([]any{idx}, args...)...))
}

// Next scans the next token into s.Token.
func (s *Scanner) Next() {
	s.Token.Value = ""
	for {
		s.Token.Idx0 = s.src.Offset()

		b, ok := s.src.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		if s.Token.Kind = s.scan(b); s.Token.Kind != token.Skip {
			break
		}
	}
	s.Token.Idx1 = s.src.Offset()
}

func (s *Scanner) scan(b byte) token.Token {
	switch b {
	case ' ', '\t', '\n', '\r', 0x0B, 0x0C:
		s.src.NextByte()
		return token.Skip
	case '#':
		for {
			c, ok := s.src.NextByte()
			if !ok || c == '\n' {
				return token.Skip
			}
		}
	case '(':
		s.src.NextByte()
		return token.LeftParenthesis
	case ')':
		s.src.NextByte()
		return token.RightParenthesis
	case '[':
		s.src.NextByte()
		return token.LeftBracket
	case ']':
		s.src.NextByte()
		return token.RightBracket
	case '{':
		s.src.NextByte()
		return token.LeftBrace
	case '}':
		s.src.NextByte()
		return token.RightBrace
	case ',':
		s.src.NextByte()
		return token.Comma
	case '|':
		s.src.NextByte()
		return token.Or
	case '^':
		s.src.NextByte()
		return token.Caret
	case ':':
		s.src.NextByte()
		return token.Colon
	case '-':
		s.src.NextByte()
		return token.Minus
	case '*':
		s.src.NextByte()
		if s.src.AdvanceIfByteEquals('*') {
			return token.Exponent
		}
		return token.Multiply
	case '=':
		s.src.NextByte()
		if s.src.AdvanceIfByteEquals('>') {
			return token.Arrow
		}
		s.errorf(s.Token.Idx0, "unexpected '='")
		return token.Illegal
	case '.':
		s.src.NextByte()
		if !s.src.AdvanceIfByteEquals('.') {
			s.errorf(s.Token.Idx0, "unexpected '.'")
			return token.Illegal
		}
		if s.src.AdvanceIfByteEquals('.') {
			return token.DotDotDot
		}
		return token.DotDot
	case '\'', '"':
		return s.scanString(b)
	}
	if isDecimalDigit(b) {
		return s.scanNumber()
	}
	if r, _ := s.src.PeekRune(); isIdentifierStart(r) {
		return s.scanIdentifier()
	}
	r, _ := s.src.NextRune()
	s.errorf(s.Token.Idx0, "unexpected character %q", r)
	return token.Illegal
}

// label consumes a ':' that turns the preceding name or string into a hash
// key. A '::' is left alone.
func (s *Scanner) label() bool {
	if b, ok := s.src.PeekByte(); !ok || b != ':' {
		return false
	}
	if b, ok := s.src.PeekByteAt(1); ok && b == ':' {
		return false
	}
	s.src.NextByte()
	return true
}
