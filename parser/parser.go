// Package parser reads pattern source written in the case/in syntax:
//
//	[*head, Integer => middle, *tail]
//	{name: String => name, **rest}
//	Point[x, ^y] | nil
package parser

import (
	"golang.org/x/text/unicode/norm"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/parser/scanner"
	"github.com/t14raptor/go-match/token"
	"github.com/t14raptor/go-match/value"
)

// parser ...
type parser struct {
	token scanner.Token

	scanner *scanner.Scanner

	types map[string]value.Type

	errors error
}

// Option configures parsing.
type Option func(*parser)

// WithType registers t under its name so constants in the source resolve to
// it.
func WithType(t value.Type) Option {
	return func(p *parser) {
		p.types[t.Name()] = t
	}
}

// newParser ...
func newParser(src string, opts ...Option) *parser {
	p := &parser{
		types: make(map[string]value.Type),
	}
	for _, t := range value.Builtins() {
		p.types[t.Name()] = t
	}
	for _, opt := range opts {
		opt(p)
	}
	p.scanner = scanner.NewScanner(norm.NFC.String(src), &p.errors)
	return p
}

// ParsePattern parses a single pattern. Source is normalised to NFC first,
// so offsets in errors refer to the normalised text.
func ParsePattern(src string, opts ...Option) (ast.Pattern, error) {
	return newParser(src, opts...).parse()
}

// MustParsePattern is like ParsePattern but panics on error. It is meant for
// patterns fixed at compile time.
func MustParsePattern(src string, opts ...Option) ast.Pattern {
	p, err := ParsePattern(src, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// parse ...
func (p *parser) parse() (ast.Pattern, error) {
	p.next()
	pattern := p.parseTopPattern()
	if p.currentKind() != token.Eof {
		p.errorUnexpectedToken(p.currentKind())
	}
	if p.errors != nil {
		return nil, p.errors
	}
	return pattern, nil
}

// next ...
func (p *parser) next() {
	p.scanner.Next()
	p.token = p.scanner.Token
}

func (p *parser) currentString() string {
	return p.token.String(p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}
