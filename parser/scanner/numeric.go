package scanner

import "github.com/t14raptor/go-match/token"

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func (s *Scanner) skipDigits() {
	for {
		b, ok := s.src.PeekByte()
		if !ok || !isDecimalDigit(b) && b != '_' {
			return
		}
		s.src.NextByte()
	}
}

// scanNumber reads an integer or a float. A '.' is only a decimal point
// when a digit follows, so 1..5 scans as 1, .., 5.
func (s *Scanner) scanNumber() token.Token {
	s.skipDigits()
	kind := token.Integer
	if b, ok := s.src.PeekByte(); ok && b == '.' {
		if d, ok := s.src.PeekByteAt(1); ok && isDecimalDigit(d) {
			s.src.NextByte()
			s.skipDigits()
			kind = token.Float
		}
	}
	if b, ok := s.src.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.src.NextByte()
		if b, ok := s.src.PeekByte(); ok && (b == '+' || b == '-') {
			s.src.NextByte()
		}
		s.skipDigits()
		kind = token.Float
	}
	return kind
}
