/*
 * potential.go, part of goFF
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

	"github.com/lmiranda/goff/unit"
)

//Kind tags what a Potential applies to. Instead of a class hierarchy of
//site/connection/potential types, goFF keeps one record type and a tag.
type Kind int

const (
	AtomType Kind = iota + 1
	BondType
	AngleType
	DihedralType
)

func (K Kind) String() string {
	switch K {
	case AtomType:
		return "atom_type"
	case BondType:
		return "bond_type"
	case AngleType:
		return "angle_type"
	case DihedralType:
		return "dihedral_type"
	}
	return fmt.Sprintf("unknown kind (%d)", int(K))
}

//Members returns how many sites a connection of this kind involves:
//1 for atom types, 2 for bonds, 3 for angles, 4 for dihedrals.
func (K Kind) Members() int {
	switch K {
	case AtomType:
		return 1
	case BondType:
		return 2
	case AngleType:
		return 3
	case DihedralType:
		return 4
	}
	return 0
}

//Potential is a named, kind-tagged potential expression, plus free-form
//string tags for whatever bookkeeping the caller needs (engine-specific
//type names, provenance and the like). Each Potential exclusively owns
//its PotentialExpression; Potentials are not shared for mutation, and a
//topology that wants two identical types still builds two.
type Potential struct {
	name string
	kind Kind
	expr *PotentialExpression
	tags map[string]string
}

//NewPotential wraps pe in a named, tagged Potential. pe must not be
//nil, and the kind must be one of the four defined ones.
func NewPotential(name string, kind Kind, pe *PotentialExpression) (*Potential, error) {
	if pe == nil {
		return nil, fmt.Errorf("goFF: NewPotential: nil expression given")
	}
	if kind.Members() == 0 {
		return nil, fmt.Errorf("goFF: NewPotential: %v", kind)
	}
	return &Potential{name: name, kind: kind, expr: pe}, nil
}

//NewPotentialFromTemplate builds a Potential whose expression is
//instantiated from the catalog template with the given name. It fails
//with *TemplateNotFound for unknown templates and *InvalidAssignment
//for parameters that don't fit the template.
func NewPotentialFromTemplate(name string, kind Kind, template string, params map[string]unit.Value) (*Potential, error) {
	t, err := GetTemplate(template)
	if err != nil {
		return nil, err
	}
	pe, err := FromTemplate(t, params)
	if err != nil {
		return nil, err
	}
	return NewPotential(name, kind, pe)
}

//Name returns the potential's name.
func (P *Potential) Name() string { return P.name }

//Kind returns the potential's kind tag.
func (P *Potential) Kind() Kind { return P.kind }

//Expression returns the owned PotentialExpression. Mutations go through
//it directly; the Potential adds no locking of its own.
func (P *Potential) Expression() *PotentialExpression { return P.expr }

//Parameters is shorthand for P.Expression().Parameters().
func (P *Potential) Parameters() map[string]unit.Value { return P.expr.Parameters() }

//SetTag attaches (or overwrites) a free-form tag.
func (P *Potential) SetTag(key, value string) {
	if P.tags == nil {
		P.tags = make(map[string]string)
	}
	P.tags[key] = value
}

//Tag returns the value for key and whether it was set.
func (P *Potential) Tag(key string) (string, bool) {
	v, ok := P.tags[key]
	return v, ok
}

//Copy returns an independent copy of P, including its expression.
func (P *Potential) Copy() *Potential {
	N := &Potential{name: P.name, kind: P.kind, expr: P.expr.Copy()}
	if P.tags != nil {
		N.tags = make(map[string]string, len(P.tags))
		for k, v := range P.tags {
			N.tags[k] = v
		}
	}
	return N
}
