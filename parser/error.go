package parser

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-match/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// errorf ...
func (p *parser) errorf(msg string, msgValues ...any) error {
	err := fmt.Errorf("%d: %s", p.currentOffset(), fmt.Sprintf(msg, msgValues...))
	p.errors = errors.Join(p.errors, err)
	return err
}

func (p *parser) errorUnexpectedToken(tkn token.Token) error {
	switch tkn {
	case token.Eof:
		return p.errorf(errUnexpectedEndOfInput)
	case token.Illegal:
		// already reported by the scanner
		return nil
	case token.Identifier:
		return p.errorf("Unexpected identifier %s", p.currentString())
	case token.Constant:
		return p.errorf("Unexpected constant %s", p.currentString())
	case token.Integer, token.Float:
		return p.errorf("Unexpected number")
	case token.String:
		return p.errorf("Unexpected string")
	}
	return p.errorf(errUnexpectedToken, tkn.String())
}
