/*
 * unit.go, part of goFF
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
Package unit provides the dimensioned scalar carried by force-field
parameters: a magnitude together with the text of its physical unit.
The unit is deliberately opaque. goFF stores and compares these values
but never converts between units or does arithmetic on them; whatever
produces the parameters is responsible for handing them over in the
units the consumer expects.
*/
package unit

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//Value is a (magnitude, unit) pair. The zero Value is a dimensionless
//zero. Values are immutable; there are no setters.
type Value struct {
	magnitude float64
	unit      string
}

//New returns a Value with the given magnitude and unit text. The empty
//unit means dimensionless.
func New(magnitude float64, unit string) Value {
	return Value{magnitude: magnitude, unit: strings.TrimSpace(unit)}
}

//Dimensionless returns a unitless Value.
func Dimensionless(magnitude float64) Value { return Value{magnitude: magnitude} }

//Magnitude returns the numeric part of v.
func (v Value) Magnitude() float64 { return v.magnitude }

//Unit returns the unit text of v, empty for dimensionless values.
func (v Value) Unit() string { return v.unit }

//Equal reports whether both magnitude and unit text match exactly.
//No unit conversion is attempted: 1 nm does not equal 10 angstrom here.
func (v Value) Equal(o Value) bool {
	return v.magnitude == o.magnitude && v.unit == o.unit
}

func (v Value) String() string {
	m := strconv.FormatFloat(v.magnitude, 'g', -1, 64)
	if v.unit == "" {
		return m
	}
	return m + " " + v.unit
}

//ParseValue reads a Value from its String form: a number optionally
//followed by unit text, as in "4.184 kJ/mol".
func ParseValue(s string) (Value, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Value{}, fmt.Errorf("unit: empty value")
	}
	m, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Value{}, fmt.Errorf("unit: bad magnitude in %q: %v", s, err)
	}
	return New(m, strings.Join(fields[1:], " ")), nil
}

//MarshalYAML writes v in its String form.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

//UnmarshalYAML reads a Value from a scalar node in String form, or from
//a bare number for dimensionless values.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("unit: value must be a scalar, got %v", node.Kind)
	}
	parsed, err := ParseValue(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
