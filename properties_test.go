/*
 * properties_test.go, part of goFF
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
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lmiranda/goff/unit"
)

//The symbols of the formula the properties run over.
var propSymbols = []string{"a", "b", "c", "x"}

const propFormula = "a*x**2 + b*x + c"

//buildFromRoles assigns each symbol a role: 0 independent variable,
//1 parameter, 2 left unbound.
func buildFromRoles(roles []int) (*PotentialExpression, error) {
	var vars []string
	params := map[string]unit.Value{}
	for i, r := range roles {
		switch r % 3 {
		case 0:
			vars = append(vars, propSymbols[i])
		case 1:
			params[propSymbols[i]] = unit.Dimensionless(float64(i) + 1)
		}
	}
	return NewPotentialExpression(propFormula, vars, params)
}

func holdsInvariant(p *PotentialExpression) bool {
	symbols := map[string]bool{}
	for _, s := range p.Symbols() {
		symbols[s] = true
	}
	for _, v := range p.IndependentVariables() {
		if !symbols[v] {
			return false
		}
	}
	for k := range p.Parameters() {
		if !symbols[k] {
			return false
		}
		if p.IsIndependentVariable(k) {
			return false
		}
	}
	return true
}

func TestExpressionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("any role partition of the symbols constructs and holds the invariant", prop.ForAll(
		func(roles []int) bool {
			p, err := buildFromRoles(roles)
			if err != nil {
				return false
			}
			return holdsInvariant(p)
		},
		gen.SliceOfN(len(propSymbols), gen.IntRange(0, 2)),
	))

	properties.Property("reassigning the current variable set is a successful no-op", prop.ForAll(
		func(roles []int) bool {
			p, err := buildFromRoles(roles)
			if err != nil {
				return false
			}
			before := snapshot(p)
			if err := p.SetIndependentVariables(p.IndependentVariables()...); err != nil {
				return false
			}
			return reflect.DeepEqual(before, snapshot(p))
		},
		gen.SliceOfN(len(propSymbols), gen.IntRange(0, 2)),
	))

	properties.Property("a rejected parameter map leaves every field unchanged", prop.ForAll(
		func(roles []int, alien string) bool {
			p, err := buildFromRoles(roles)
			if err != nil {
				return false
			}
			before := snapshot(p)
			bad := map[string]unit.Value{alien + "_notasymbol": unit.Dimensionless(1)}
			if err := p.SetParameters(bad); err == nil {
				return false
			}
			return reflect.DeepEqual(before, snapshot(p)) && holdsInvariant(p)
		},
		gen.SliceOfN(len(propSymbols), gen.IntRange(0, 2)),
		gen.Identifier(),
	))

	properties.Property("IsParametric is true exactly when parameters are bound", prop.ForAll(
		func(roles []int) bool {
			p, err := buildFromRoles(roles)
			if err != nil {
				return false
			}
			return p.IsParametric() == (len(p.Parameters()) > 0)
		},
		gen.SliceOfN(len(propSymbols), gen.IntRange(0, 2)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

type peSnapshot struct {
	expr   string
	vars   []string
	params map[string]unit.Value
}

func snapshot(p *PotentialExpression) peSnapshot {
	return peSnapshot{
		expr:   p.ExpressionString(),
		vars:   p.IndependentVariables(),
		params: p.Parameters(),
	}
}
