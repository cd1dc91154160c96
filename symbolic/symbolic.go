/*
 * symbolic.go, part of goFF
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

/*
Package symbolic holds the small symbolic-formula kernel used by the goFF
potential expressions. A formula is parsed once into an immutable tree;
after that the package only offers queries (free symbols, stable string
form) and numeric evaluation. It is deterministic and keeps no state
between calls, so trees can be shared freely between goroutines.
*/
package symbolic

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

//Expr is a node of a parsed formula. Trees are immutable once built:
//none of the methods, here or elsewhere in goFF, modifies a node.
type Expr interface {
	//String returns a form that Parse accepts back.
	String() string
	eval(vars map[string]float64) (float64, error)
	collect(out map[string]struct{})
}

//The concrete node types. They are kept unexported; callers only ever
//hold Expr values produced by Parse or by the constructors below.

type num struct {
	val float64
}

type sym struct {
	name string
}

type add struct {
	terms []Expr
}

type mul struct {
	factors []Expr
}

type pow struct {
	base, exp Expr
}

type call struct {
	fn  string
	arg Expr
}

//Number returns a constant node.
func Number(v float64) Expr { return &num{val: v} }

//Symbol returns a free-symbol node. Panics on an empty name, as that
//can only be a programming error.
func Symbol(name string) Expr {
	if name == "" {
		panic("symbolic: empty symbol name")
	}
	return &sym{name: name}
}

//Sum returns the sum of the given terms.
func Sum(terms ...Expr) Expr {
	if len(terms) == 1 {
		return terms[0]
	}
	return &add{terms: terms}
}

//Prod returns the product of the given factors.
func Prod(factors ...Expr) Expr {
	if len(factors) == 1 {
		return factors[0]
	}
	return &mul{factors: factors}
}

//Pow returns base raised to exp.
func Pow(base, exp Expr) Expr { return &pow{base: base, exp: exp} }

//funcs are the unary functions the evaluator knows. The parser accepts
//exactly these names, so an unknown function surfaces as a ParseError
//and never reaches evaluation.
var funcs = map[string]func(float64) float64{
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"abs":  math.Abs,
}

//FreeSymbols returns the set of symbol names appearing in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	e.collect(out)
	return out
}

//FreeSymbolList returns the free symbols of e as a sorted slice.
func FreeSymbolList(e Expr) []string {
	set := FreeSymbols(e)
	l := make([]string, 0, len(set))
	for s := range set {
		l = append(l, s)
	}
	sort.Strings(l)
	return l
}

//Eval evaluates e with every symbol bound to its value in vars.
//It returns an error if any symbol in e is missing from vars.
func Eval(e Expr, vars map[string]float64) (float64, error) {
	return e.eval(vars)
}

func (n *num) eval(map[string]float64) (float64, error) { return n.val, nil }
func (n *num) collect(map[string]struct{})              {}

func (n *num) String() string {
	return strconv.FormatFloat(n.val, 'g', -1, 64)
}

func (s *sym) eval(vars map[string]float64) (float64, error) {
	v, ok := vars[s.name]
	if !ok {
		return 0, fmt.Errorf("symbolic: no value given for symbol %s", s.name)
	}
	return v, nil
}

func (s *sym) collect(out map[string]struct{}) { out[s.name] = struct{}{} }
func (s *sym) String() string                  { return s.name }

func (a *add) eval(vars map[string]float64) (float64, error) {
	acc := 0.0
	for _, t := range a.terms {
		v, err := t.eval(vars)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return acc, nil
}

func (a *add) collect(out map[string]struct{}) {
	for _, t := range a.terms {
		t.collect(out)
	}
}

func (a *add) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (m *mul) eval(vars map[string]float64) (float64, error) {
	acc := 1.0
	for _, f := range m.factors {
		v, err := f.eval(vars)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (m *mul) collect(out map[string]struct{}) {
	for _, f := range m.factors {
		f.collect(out)
	}
}

func (m *mul) String() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, sum := f.(*add); sum {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (p *pow) eval(vars map[string]float64) (float64, error) {
	b, err := p.base.eval(vars)
	if err != nil {
		return 0, err
	}
	e, err := p.exp.eval(vars)
	if err != nil {
		return 0, err
	}
	return math.Pow(b, e), nil
}

func (p *pow) collect(out map[string]struct{}) {
	p.base.collect(out)
	p.exp.collect(out)
}

func (p *pow) String() string {
	return parenNonAtom(p.base) + "**" + parenNonAtom(p.exp)
}

func (c *call) eval(vars map[string]float64) (float64, error) {
	v, err := c.arg.eval(vars)
	if err != nil {
		return 0, err
	}
	f, ok := funcs[c.fn]
	if !ok {
		//the parser only emits known functions
		panic("symbolic: unknown function " + c.fn)
	}
	return f(v), nil
}

func (c *call) collect(out map[string]struct{}) { c.arg.collect(out) }

func (c *call) String() string { return c.fn + "(" + c.arg.String() + ")" }

//parenNonAtom wraps everything but plain numbers and symbols in
//parentheses, so the printed form parses back with the same structure.
func parenNonAtom(e Expr) string {
	switch e.(type) {
	case *num, *sym, *call:
		return e.String()
	}
	return "(" + e.String() + ")"
}
