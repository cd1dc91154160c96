/*
 * parse.go, part of goFF
 *
 * Copyright 2025 Lucas Miranda <lmiranda{at}academicos(dot)uta(dot)cl>
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 */

package symbolic

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

//ParseError reports a formula that could not be parsed, with the byte
//offset of the offending token in the original text.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("symbolic: can't parse %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPower //both ** and ^
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

//Grammar, lowest binding first:
//  expr   = term { (+|-) term }
//  term   = unary { (*|/) unary }
//  unary  = [-] power
//  power  = atom [ (**|^) unary ]      right-associative
//  atom   = number | ident | ident ( expr ) | ( expr )
type parser struct {
	input string
	toks  []token
	cur   int
}

//Parse parses a formula into an immutable expression tree. The grammar
//covers what force-field potential forms need: + - * /, ** (or ^) for
//powers, parentheses, and the unary functions exp, log, sqrt, sin,
//cos, tan and abs. On failure it returns a *ParseError.
func Parse(input string) (Expr, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, toks: toks}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %q", t.text)
	}
	return e, nil
}

//MustParse is Parse for formulas known good at compile time; it panics
//on failure.
func MustParse(input string) Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err.Error())
	}
	return e
}

func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := rune(input[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '+':
			toks = append(toks, token{tokPlus, "+", i})
			i++
		case c == '-':
			toks = append(toks, token{tokMinus, "-", i})
			i++
		case c == '*':
			if i+1 < len(input) && input[i+1] == '*' {
				toks = append(toks, token{tokPower, "**", i})
				i += 2
			} else {
				toks = append(toks, token{tokStar, "*", i})
				i++
			}
		case c == '^':
			toks = append(toks, token{tokPower, "^", i})
			i++
		case c == '/':
			toks = append(toks, token{tokSlash, "/", i})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case unicode.IsDigit(c) || c == '.':
			start := i
			for i < len(input) && (unicode.IsDigit(rune(input[i])) || input[i] == '.') {
				i++
			}
			//exponent part, as in 1.5e-3
			if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
				j := i + 1
				if j < len(input) && (input[j] == '+' || input[j] == '-') {
					j++
				}
				if j < len(input) && unicode.IsDigit(rune(input[j])) {
					i = j
					for i < len(input) && unicode.IsDigit(rune(input[i])) {
						i++
					}
				}
			}
			toks = append(toks, token{tokNumber, input[start:i], start})
		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(input) && (unicode.IsLetter(rune(input[i])) || unicode.IsDigit(rune(input[i])) || input[i] == '_') {
				i++
			}
			toks = append(toks, token{tokIdent, input[start:i], start})
		default:
			return nil, &ParseError{Input: input, Pos: i, Msg: fmt.Sprintf("invalid character %q", c)}
		}
	}
	toks = append(toks, token{tokEOF, "", len(input)})
	return toks, nil
}

func (p *parser) peek() token { return p.toks[p.cur] }

func (p *parser) next() token {
	t := p.toks[p.cur]
	if t.kind != tokEOF {
		p.cur++
	}
	return t
}

func (p *parser) errorf(t token, format string, a ...interface{}) error {
	return &ParseError{Input: p.input, Pos: t.pos, Msg: fmt.Sprintf(format, a...)}
}

func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	terms := []Expr{left}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			break
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if t.kind == tokMinus {
			right = Prod(Number(-1), right)
		}
		terms = append(terms, right)
	}
	return Sum(terms...), nil
}

func (p *parser) term() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	factors := []Expr{left}
	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			break
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		if t.kind == tokSlash {
			right = Pow(right, Number(-1))
		}
		factors = append(factors, right)
	}
	return Prod(factors...), nil
}

func (p *parser) unary() (Expr, error) {
	if t := p.peek(); t.kind == tokMinus {
		p.next()
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Prod(Number(-1), e), nil
	}
	return p.power()
}

func (p *parser) power() (Expr, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind == tokPower {
		p.next()
		//unary here makes a**-6 and a**-b work, and chains a**b**c
		//to the right, as in the source formulas.
		exp, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) atom() (Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, p.errorf(t, "bad number %q", t.text)
		}
		return Number(v), nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			fn := strings.ToLower(t.text)
			if _, ok := funcs[fn]; !ok {
				return nil, p.errorf(t, "unknown function %q", t.text)
			}
			p.next() //consume (
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			if c := p.next(); c.kind != tokRParen {
				return nil, p.errorf(c, "expected ) to close %s(", fn)
			}
			return &call{fn: fn, arg: arg}, nil
		}
		return Symbol(t.text), nil
	case tokLParen:
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, p.errorf(c, "expected )")
		}
		return e, nil
	case tokEOF:
		return nil, p.errorf(t, "unexpected end of formula")
	default:
		return nil, p.errorf(t, "unexpected %q", t.text)
	}
}
