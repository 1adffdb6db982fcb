package token

import (
	"strconv"
)

// Token is the set of lexical tokens of the pattern language.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// LiteralKeyword returns the keyword token if literal is a keyword, or 0 if the literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		return k, true
	}
	return 0, false
}

// Literal reports whether the token starts a literal value.
func Literal(t Token) bool {
	switch t {
	case String, Integer, Float, Nil, True, False:
		return true
	}
	return false
}
