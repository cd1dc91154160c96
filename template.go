/*
 * template.go, part of goFF
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
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/lmiranda/goff/logger"
	"github.com/lmiranda/goff/symbolic"
	"github.com/lmiranda/goff/unit"
	"gopkg.in/yaml.v3"
)

//Template is a named, unparametrized potential form: an expression plus
//its independent variables, with no parameters bound. Templates are
//read-only once built; deriving a concrete potential from one (see
//FromTemplate) copies everything and never writes back.
type Template struct {
	name string
	expr *PotentialExpression
}

//NewTemplate parses formula and returns a template with the given
//independent variables. The same validation as NewPotentialExpression
//applies; the template's parameter map is empty by construction.
func NewTemplate(name, formula string, vars ...string) (*Template, error) {
	if name == "" {
		return nil, fmt.Errorf("goFF: a template needs a name")
	}
	pe, err := NewPotentialExpression(formula, vars, nil)
	if err != nil {
		return nil, err
	}
	return &Template{name: name, expr: pe}, nil
}

//Name returns the template's name.
func (T *Template) Name() string { return T.name }

//Expression returns the template's parsed formula.
func (T *Template) Expression() symbolic.Expr { return T.expr.Expression() }

//ExpressionString returns the template's formula as text.
func (T *Template) ExpressionString() string { return T.expr.ExpressionString() }

//IndependentVariables returns a sorted copy of the template's
//independent-variable set.
func (T *Template) IndependentVariables() []string { return T.expr.IndependentVariables() }

//Symbols returns the free symbols of the template's expression, sorted.
func (T *Template) Symbols() []string { return T.expr.Symbols() }

//FromTemplate returns a new, independent PotentialExpression with the
//template's expression and independent variables and the given
//parameters bound, validated as in NewPotentialExpression. The
//template is never modified, so a failed instantiation leaves it (and
//everything else) as it was.
func FromTemplate(t *Template, params map[string]unit.Value) (*PotentialExpression, error) {
	if t == nil {
		return nil, fmt.Errorf("goFF: nil template given")
	}
	N := t.expr.Copy()
	if err := N.SetParameters(params); err != nil {
		return nil, errDecorate(err, "FromTemplate("+t.name+")")
	}
	return N, nil
}

//The catalog of named templates ships embedded in the library and is
//parsed at most once per process, on first lookup. After that it is
//read-only; there is no way to register templates at runtime.

//go:embed templates.yaml
var catalogYAML []byte

var catalog struct {
	once sync.Once
	m    map[string]*Template
	err  error
}

func loadCatalog() {
	var raw struct {
		Potentials []struct {
			Name                 string   `yaml:"name"`
			Expression           string   `yaml:"expression"`
			IndependentVariables []string `yaml:"independent_variables"`
		} `yaml:"potentials"`
	}
	if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
		catalog.err = fmt.Errorf("goFF: malformed template catalog: %v", err)
		return
	}
	m := make(map[string]*Template, len(raw.Potentials))
	for _, p := range raw.Potentials {
		t, err := NewTemplate(p.Name, p.Expression, p.IndependentVariables...)
		if err != nil {
			catalog.err = fmt.Errorf("goFF: bad template %q in catalog: %v", p.Name, err)
			return
		}
		m[p.Name] = t
	}
	catalog.m = m
	log := logger.Logger()
	log.Debug().Int("templates", len(m)).Msg("potential template catalog loaded")
}

//GetTemplate returns the catalog template with the given name, loading
//the catalog on first use. Unknown names return a *TemplateNotFound.
func GetTemplate(name string) (*Template, error) {
	catalog.once.Do(loadCatalog)
	if catalog.err != nil {
		return nil, catalog.err
	}
	t, ok := catalog.m[name]
	if !ok {
		return nil, &TemplateNotFound{name: name}
	}
	return t, nil
}

//TemplateNames returns the sorted names of all catalog templates.
func TemplateNames() ([]string, error) {
	catalog.once.Do(loadCatalog)
	if catalog.err != nil {
		return nil, catalog.err
	}
	names := make([]string, 0, len(catalog.m))
	for n := range catalog.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
