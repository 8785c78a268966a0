package dimension

import (
	"fmt"
	"strconv"
)

// Resolver maps a name that is not a base dimension to a vector.
type Resolver func(name string) (Vector, bool)

// ParseBases parses an expression whose names are base dimension names or
// symbols only.
func ParseBases(expr string) (Vector, error) {
	return Parse(expr, nil)
}

// Parse evaluates a dimension expression.
//
//	expr := term { ('*' | '/' | <juxtaposition>) term }
//	term := atom [ '^' ['+'|'-'] integer ]
//	atom := name | '1' | 'dimensionless' | '(' expr ')'
//
// Operators are left-associative and juxtaposition binds like '*', so
// "L M T^-2" equals "L*M/T^2". Names are looked up as base dimensions
// first, then through resolve (which may be nil).
func Parse(expr string, resolve Resolver) (Vector, error) {
	p := &parser{src: expr, resolve: resolve}
	p.next()
	if p.tok.kind == tokEOF {
		return Vector{}, p.errorf(p.tok.pos, "empty expression")
	}
	v, err := p.expr()
	if err != nil {
		return Vector{}, err
	}
	if p.tok.kind != tokEOF {
		return Vector{}, p.errorf(p.tok.pos, "unexpected %s", p.tok)
	}
	return v, nil
}

type tokKind uint8

const (
	tokEOF tokKind = iota
	tokIdent
	tokInt
	tokMul
	tokDiv
	tokPow
	tokPlus
	tokMinus
	tokLParen
	tokRParen
	tokIllegal
)

var punct = map[byte]tokKind{
	'*': tokMul,
	'/': tokDiv,
	'^': tokPow,
	'+': tokPlus,
	'-': tokMinus,
	'(': tokLParen,
	')': tokRParen,
}

type token struct {
	kind tokKind
	pos  int
	text string
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of expression"
	}
	return strconv.Quote(t.text)
}

type parser struct {
	src     string
	off     int
	tok     token
	resolve Resolver
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &ErrSyntax{Expr: p.src, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) next() {
	for p.off < len(p.src) && (p.src[p.off] == ' ' || p.src[p.off] == '\t') {
		p.off++
	}
	start := p.off
	if p.off >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}

	c := p.src[p.off]
	switch {
	case punct[c] != 0:
		p.off++
		p.tok = token{kind: punct[c], pos: start, text: p.src[start:p.off]}
	case '0' <= c && c <= '9':
		for p.off < len(p.src) && '0' <= p.src[p.off] && p.src[p.off] <= '9' {
			p.off++
		}
		p.tok = token{kind: tokInt, pos: start, text: p.src[start:p.off]}
	case c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
		for p.off < len(p.src) && isIdentByte(p.src[p.off]) {
			p.off++
		}
		p.tok = token{kind: tokIdent, pos: start, text: p.src[start:p.off]}
	default:
		p.off++
		p.tok = token{kind: tokIllegal, pos: start, text: p.src[start:p.off]}
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func (p *parser) expr() (Vector, error) {
	v, err := p.term()
	if err != nil {
		return Vector{}, err
	}
	for {
		switch p.tok.kind {
		case tokMul, tokDiv:
			op := p.tok
			p.next()
			rhs, err := p.term()
			if err != nil {
				return Vector{}, err
			}
			if op.kind == tokMul {
				v, err = MultiplyChecked(v, rhs)
			} else {
				v, err = DivideChecked(v, rhs)
			}
			if err != nil {
				return Vector{}, p.overflow(op.pos, err)
			}
		case tokIdent, tokInt, tokLParen:
			pos := p.tok.pos
			rhs, err := p.term()
			if err != nil {
				return Vector{}, err
			}
			if v, err = MultiplyChecked(v, rhs); err != nil {
				return Vector{}, p.overflow(pos, err)
			}
		default:
			return v, nil
		}
	}
}

func (p *parser) term() (Vector, error) {
	v, err := p.atom()
	if err != nil {
		return Vector{}, err
	}
	if p.tok.kind != tokPow {
		return v, nil
	}
	pow := p.tok.pos
	p.next()

	sign := 1
	switch p.tok.kind {
	case tokMinus:
		sign = -1
		p.next()
	case tokPlus:
		p.next()
	}
	if p.tok.kind != tokInt {
		return Vector{}, p.errorf(p.tok.pos, "expected integer exponent, got %s", p.tok)
	}
	n, err := strconv.Atoi(p.tok.text)
	if err != nil {
		return Vector{}, &ErrSyntax{
			Expr:  p.src,
			Pos:   p.tok.pos,
			Msg:   fmt.Sprintf("exponent %s out of range", p.tok),
			cause: ErrExponentOverflow,
		}
	}
	p.next()
	if v, err = PowChecked(v, sign*n); err != nil {
		return Vector{}, p.overflow(pow, err)
	}
	return v, nil
}

func (p *parser) overflow(pos int, err error) error {
	return &ErrSyntax{Expr: p.src, Pos: pos, Msg: err.Error(), cause: err}
}

func (p *parser) atom() (Vector, error) {
	tok := p.tok
	switch tok.kind {
	case tokLParen:
		p.next()
		v, err := p.expr()
		if err != nil {
			return Vector{}, err
		}
		if p.tok.kind != tokRParen {
			return Vector{}, p.errorf(p.tok.pos, "expected \")\", got %s", p.tok)
		}
		p.next()
		return v, nil
	case tokInt:
		if tok.text != "1" {
			return Vector{}, p.errorf(tok.pos, "numeric factor %s is not a dimension", tok)
		}
		p.next()
		return Dimensionless, nil
	case tokIdent:
		p.next()
		if tok.text == dimensionlessName {
			return Dimensionless, nil
		}
		if b, ok := Lookup(tok.text); ok {
			return b.Vector(), nil
		}
		if p.resolve != nil {
			if v, ok := p.resolve(tok.text); ok {
				return v, nil
			}
		}
		return Vector{}, &ErrSyntax{
			Expr:  p.src,
			Pos:   tok.pos,
			Msg:   fmt.Sprintf("unknown name %s", tok),
			cause: ErrUnknownName,
		}
	default:
		return Vector{}, p.errorf(tok.pos, "unexpected %s", tok)
	}
}
