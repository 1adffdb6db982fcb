package parser

import (
	"strconv"
	"strings"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/token"
	"github.com/t14raptor/go-match/value"
)

// parseTopPattern parses the unbracketed forms allowed at the top of a
// pattern: `a, *rest` is an array pattern and `key: v` a hash pattern.
func (p *parser) parseTopPattern() ast.Pattern {
	switch p.currentKind() {
	case token.Label, token.Exponent:
		return &ast.HashPattern{Elements: p.parseHashElements(token.Eof)}
	}

	first := p.parseElement()
	if p.currentKind() != token.Comma {
		if splat, ok := first.(*ast.SplatPattern); ok {
			return p.arrayOrFind(nil, ast.Patterns{splat})
		}
		return first
	}

	elems := ast.Patterns{first}
	for p.currentKind() == token.Comma {
		p.next()
		if p.currentKind() == token.Eof {
			// `a,` leaves the tail open, like `a, *`.
			elems = append(elems, &ast.SplatPattern{})
			break
		}
		elems = append(elems, p.parseElement())
	}
	return p.arrayOrFind(nil, elems)
}

// parseElement parses an array element, which may be a splat.
func (p *parser) parseElement() ast.Pattern {
	if p.currentKind() != token.Multiply {
		return p.parsePattern()
	}
	p.next()
	splat := &ast.SplatPattern{}
	if p.currentKind() == token.Identifier {
		splat.Name = p.currentString()
		p.next()
	}
	return splat
}

// arrayOrFind builds a find pattern for [*pre, ..., *post] and an array
// pattern otherwise. Any other placement of several splats is kept as an
// array pattern for validation to reject.
func (p *parser) arrayOrFind(t value.Type, elems ast.Patterns) ast.Pattern {
	if len(elems) >= 3 {
		pre, preOk := elems[0].(*ast.SplatPattern)
		post, postOk := elems[len(elems)-1].(*ast.SplatPattern)
		if preOk && postOk {
			return &ast.FindPattern{
				Type:     t,
				Pre:      pre,
				Elements: elems[1 : len(elems)-1],
				Post:     post,
			}
		}
	}
	return &ast.ArrayPattern{Type: t, Elements: elems}
}

// parsePattern parses `alternation (=> name)*`.
func (p *parser) parsePattern() ast.Pattern {
	pattern := p.parseAlternation()
	for p.currentKind() == token.Arrow {
		p.next()
		pattern = &ast.BindingPattern{Name: p.parseIdentifierName(), Pattern: pattern}
	}
	return pattern
}

func (p *parser) parseAlternation() ast.Pattern {
	first := p.parsePrimary()
	if p.currentKind() != token.Or {
		return first
	}
	alt := &ast.AlternationPattern{Alternatives: ast.Patterns{first}}
	for p.currentKind() == token.Or {
		p.next()
		alt.Alternatives = append(alt.Alternatives, p.parsePrimary())
	}
	return alt
}

func (p *parser) parsePrimary() ast.Pattern {
	switch p.currentKind() {
	case token.Underscore:
		p.next()
		return &ast.WildcardPattern{}
	case token.Identifier:
		name := p.currentString()
		p.next()
		return &ast.BindingPattern{Name: name}
	case token.Caret:
		p.next()
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			v := p.parseLiteralValue()
			p.expect(token.RightParenthesis)
			return &ast.LiteralPattern{Value: v}
		}
		return &ast.PinPattern{Name: p.parseIdentifierName()}
	case token.Constant:
		return p.parseConstant()
	case token.LeftBracket:
		p.next()
		return p.arrayOrFind(nil, p.parseElementList(token.RightBracket))
	case token.LeftBrace:
		p.next()
		elems := p.parseHashElements(token.RightBrace)
		p.expect(token.RightBrace)
		return &ast.HashPattern{Elements: elems}
	case token.LeftParenthesis:
		p.next()
		pattern := p.parsePattern()
		p.expect(token.RightParenthesis)
		return pattern
	case token.DotDot, token.DotDotDot:
		exclusive := p.currentKind() == token.DotDotDot
		p.next()
		return &ast.RangePattern{End: p.parseLiteralValue(), Exclusive: exclusive}
	}

	if token.Literal(p.currentKind()) || p.currentKind() == token.Minus {
		begin := p.parseLiteralValue()
		if k := p.currentKind(); k != token.DotDot && k != token.DotDotDot {
			return &ast.LiteralPattern{Value: begin}
		}
		rng := &ast.RangePattern{Begin: begin, Exclusive: p.currentKind() == token.DotDotDot}
		p.next()
		if token.Literal(p.currentKind()) || p.currentKind() == token.Minus {
			rng.End = p.parseLiteralValue()
		}
		return rng
	}

	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return &ast.WildcardPattern{}
}

// parseConstant parses `Const`, `Const[...]` and `Const(...)`.
func (p *parser) parseConstant() ast.Pattern {
	name := p.currentString()
	t, ok := p.types[name]
	if !ok {
		p.errorf("Unknown constant %s", name)
	}
	p.next()

	switch p.currentKind() {
	case token.LeftBracket:
		p.next()
		return p.arrayOrFind(t, p.parseElementList(token.RightBracket))
	case token.LeftParenthesis:
		p.next()
		if k := p.currentKind(); k == token.Label || k == token.Exponent {
			elems := p.parseHashElements(token.RightParenthesis)
			p.expect(token.RightParenthesis)
			return &ast.HashPattern{Type: t, Elements: elems}
		}
		return p.arrayOrFind(t, p.parseElementList(token.RightParenthesis))
	}
	return &ast.TypePattern{Type: t}
}

// parseElementList parses comma separated elements up to and including end.
func (p *parser) parseElementList(end token.Token) ast.Patterns {
	elems := ast.Patterns{}
	for p.currentKind() != end && p.currentKind() != token.Eof {
		elems = append(elems, p.parseElement())
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	p.expect(end)
	return elems
}

// parseHashElements parses `key: pattern`, `key:`, `**rest`, `**` and
// `**nil` entries up to, but not including, end.
func (p *parser) parseHashElements(end token.Token) []ast.HashElement {
	var elems []ast.HashElement
	for p.currentKind() != end && p.currentKind() != token.Eof {
		switch p.currentKind() {
		case token.Label:
			pair := &ast.HashPair{Key: p.currentString()}
			p.next()
			if k := p.currentKind(); k != token.Comma && k != end && k != token.Eof {
				pair.Value = p.parsePattern()
			}
			elems = append(elems, pair)
		case token.Exponent:
			p.next()
			rest := &ast.HashRest{}
			switch p.currentKind() {
			case token.Nil:
				rest.Closed = true
				p.next()
			case token.Identifier:
				rest.Name = p.currentString()
				p.next()
			}
			elems = append(elems, rest)
		default:
			p.errorUnexpectedToken(p.currentKind())
			p.next()
		}
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	return elems
}

func (p *parser) parseIdentifierName() string {
	if p.currentKind() != token.Identifier {
		p.errorUnexpectedToken(p.currentKind())
		return ""
	}
	name := p.currentString()
	p.next()
	return name
}

// parseLiteralValue parses a literal into the Go value it denotes: int64,
// float64, string, bool or nil.
func (p *parser) parseLiteralValue() any {
	negative := false
	if p.currentKind() == token.Minus {
		negative = true
		p.next()
	}

	switch p.currentKind() {
	case token.Integer:
		raw := strings.ReplaceAll(p.currentString(), "_", "")
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			p.errorf("Invalid integer %s", raw)
		}
		p.next()
		if negative {
			n = -n
		}
		return n
	case token.Float:
		raw := strings.ReplaceAll(p.currentString(), "_", "")
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			p.errorf("Invalid float %s", raw)
		}
		p.next()
		if negative {
			f = -f
		}
		return f
	}

	if negative {
		p.errorUnexpectedToken(p.currentKind())
		p.next()
		return nil
	}

	var v any
	switch p.currentKind() {
	case token.String:
		v = p.currentString()
	case token.Nil:
		v = nil
	case token.True:
		v = true
	case token.False:
		v = false
	default:
		p.errorUnexpectedToken(p.currentKind())
	}
	p.next()
	return v
}
