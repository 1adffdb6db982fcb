package token

const (
	Undetermined Token = iota

	Skip

	Illegal
	Eof
	Comment

	String
	Integer
	Float

	Identifier // name
	Constant   // Name
	Label      // name:

	Nil   // nil
	True  // true
	False // false

	Minus      // -
	Multiply   // *
	Exponent   // **
	Or         // |
	Caret      // ^
	Arrow      // =>
	DotDot     // ..
	DotDotDot  // ...
	Comma      // ,
	Colon      // :
	Underscore // _

	LeftParenthesis  // (
	RightParenthesis // )
	LeftBracket      // [
	RightBracket     // ]
	LeftBrace        // {
	RightBrace       // }
)

var token2string = [...]string{
	Illegal:          "ILLEGAL",
	Eof:              "EOF",
	Comment:          "COMMENT",
	String:           "STRING",
	Integer:          "INTEGER",
	Float:            "FLOAT",
	Identifier:       "IDENTIFIER",
	Constant:         "CONSTANT",
	Label:            "LABEL",
	Nil:              "nil",
	True:             "true",
	False:            "false",
	Minus:            "-",
	Multiply:         "*",
	Exponent:         "**",
	Or:               "|",
	Caret:            "^",
	Arrow:            "=>",
	DotDot:           "..",
	DotDotDot:        "...",
	Comma:            ",",
	Colon:            ":",
	Underscore:       "_",
	LeftParenthesis:  "(",
	RightParenthesis: ")",
	LeftBracket:      "[",
	RightBracket:     "]",
	LeftBrace:        "{",
	RightBrace:       "}",
}

var keywordTable = map[string]Token{
	"nil":   Nil,
	"true":  True,
	"false": False,
}
