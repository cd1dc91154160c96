/*
 * expression.go, part of goFF
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

package ff

import (
	"fmt"
	"sort"

	"github.com/lmiranda/goff/symbolic"
	"github.com/lmiranda/goff/unit"
)

//PotentialExpression pairs a symbolic functional form with the
//classification of its symbols: independent variables are supplied per
//evaluation, parameters are bound to dimensioned values. The invariant,
//checked on construction and on every assignment, is that both sets are
//covered by the free symbols of the expression and don't overlap each
//other. Symbols covered by neither set are allowed; they just leave the
//expression unparametrized (a template-like, non-evaluable state).
//
//The parsed expression itself is immutable; to change the formula,
//build a new PotentialExpression. The type does no locking: a host that
//shares one instance across goroutines must either serialize writers or
//hand out copies (see Copy).
type PotentialExpression struct {
	expr    symbolic.Expr
	symbols map[string]struct{} //free symbols of expr, cached at construction
	vars    map[string]struct{}
	params  map[string]unit.Value
}

//NewPotentialExpression parses formula and returns a validated
//PotentialExpression with the given independent variables and
//parameters. params may be nil for an unparametrized expression.
//Parse failures are returned as a *symbolic.ParseError, untouched;
//classification failures as *InvalidAssignment.
func NewPotentialExpression(formula string, vars []string, params map[string]unit.Value) (*PotentialExpression, error) {
	tree, err := symbolic.Parse(formula)
	if err != nil {
		return nil, err
	}
	return NewPotentialExpressionFromTree(tree, vars, params)
}

//NewPotentialExpressionFromTree is NewPotentialExpression for an
//already-parsed formula.
func NewPotentialExpressionFromTree(tree symbolic.Expr, vars []string, params map[string]unit.Value) (*PotentialExpression, error) {
	if tree == nil {
		return nil, fmt.Errorf("goFF: nil expression given")
	}
	P := &PotentialExpression{
		expr:    tree,
		symbols: symbolic.FreeSymbols(tree),
	}
	newvars := nameSet(vars)
	newparams := copyParams(params)
	if err := P.checkAssignment(newvars, newparams); err != nil {
		return nil, errDecorate(err, "NewPotentialExpression")
	}
	P.vars = newvars
	P.params = newparams
	return P, nil
}

//checkAssignment verifies the coverage and disjointness invariant of
//the candidate sets against the (fixed) expression. It touches nothing.
func (P *PotentialExpression) checkAssignment(vars map[string]struct{}, params map[string]unit.Value) error {
	var missing []string
	for v := range vars {
		if _, ok := P.symbols[v]; !ok {
			missing = append(missing, v)
		}
	}
	for k := range params {
		if _, ok := P.symbols[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return newInvalidAssignment(NotInExpression, missing...)
	}
	var clashing []string
	for k := range params {
		if _, ok := vars[k]; ok {
			clashing = append(clashing, k)
		}
	}
	if len(clashing) > 0 {
		return newInvalidAssignment(ClaimedTwice, clashing...)
	}
	return nil
}

//SetIndependentVariables replaces the whole independent-variable set.
//The new set is validated against the current expression and the
//current parameters; on failure nothing changes and the returned
//*InvalidAssignment carries the offending names.
func (P *PotentialExpression) SetIndependentVariables(names ...string) error {
	newvars := nameSet(names)
	if err := P.checkAssignment(newvars, P.params); err != nil {
		return errDecorate(err, "SetIndependentVariables")
	}
	P.vars = newvars
	return nil
}

//SetParameters replaces the parameter map wholesale; it never merges
//into the previous one. Values may carry heterogeneous units; no
//normalization is attempted. On failure nothing changes.
func (P *PotentialExpression) SetParameters(params map[string]unit.Value) error {
	newparams := copyParams(params)
	if err := P.checkAssignment(P.vars, newparams); err != nil {
		return errDecorate(err, "SetParameters")
	}
	P.params = newparams
	return nil
}

//IsParametric returns true if at least one parameter is bound, i.e. the
//expression is evaluable for concrete values of its independent
//variables (assuming full symbol coverage).
func (P *PotentialExpression) IsParametric() bool {
	return len(P.params) > 0
}

//Expression returns the parsed formula. The tree is immutable, so the
//caller can hold it without copying.
func (P *PotentialExpression) Expression() symbolic.Expr { return P.expr }

//ExpressionString returns the formula in a form symbolic.Parse accepts
//back.
func (P *PotentialExpression) ExpressionString() string { return P.expr.String() }

//Symbols returns the free symbols of the expression, sorted.
func (P *PotentialExpression) Symbols() []string { return sortedNames(P.symbols) }

//IndependentVariables returns a sorted copy of the independent-variable
//set.
func (P *PotentialExpression) IndependentVariables() []string { return sortedNames(P.vars) }

//Parameters returns a copy of the parameter map. Mutating it does not
//affect P; use SetParameters for that.
func (P *PotentialExpression) Parameters() map[string]unit.Value { return copyParams(P.params) }

//IsIndependentVariable returns whether name is currently declared as an
//independent variable.
func (P *PotentialExpression) IsIndependentVariable(name string) bool {
	_, ok := P.vars[name]
	return ok
}

//Copy returns an independent deep copy of P. The (immutable) expression
//tree is shared; the variable set and parameter map are not.
func (P *PotentialExpression) Copy() *PotentialExpression {
	N := &PotentialExpression{
		expr:   P.expr,
		params: copyParams(P.params),
	}
	N.symbols = make(map[string]struct{}, len(P.symbols))
	for s := range P.symbols {
		N.symbols[s] = struct{}{}
	}
	N.vars = make(map[string]struct{}, len(P.vars))
	for v := range P.vars {
		N.vars[v] = struct{}{}
	}
	return N
}

//Evaluate computes the value of the expression with every independent
//variable bound to its entry in at and every parameter to the magnitude
//of its stored value. The result is a bare number in whatever units the
//parameter magnitudes imply; goFF does not track them through the
//arithmetic. It is an error if the expression is not parametric, if an
//independent variable is missing from at, or if the expression has
//symbols covered by neither set.
func (P *PotentialExpression) Evaluate(at map[string]float64) (float64, error) {
	if !P.IsParametric() {
		return 0, fmt.Errorf("goFF: Evaluate: expression %s has no parameters bound", P.expr.String())
	}
	bind := make(map[string]float64, len(P.symbols))
	for k, v := range P.params {
		bind[k] = v.Magnitude()
	}
	for v := range P.vars {
		x, ok := at[v]
		if !ok {
			return 0, fmt.Errorf("goFF: Evaluate: no value given for independent variable %s", v)
		}
		bind[v] = x
	}
	return symbolic.Eval(P.expr, bind)
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func copyParams(params map[string]unit.Value) map[string]unit.Value {
	c := make(map[string]unit.Value, len(params))
	for k, v := range params {
		c[k] = v
	}
	return c
}

func sortedNames(set map[string]struct{}) []string {
	l := make([]string, 0, len(set))
	for n := range set {
		l = append(l, n)
	}
	sort.Strings(l)
	return l
}
