/*
 * errors.go, part of goFF
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
	"strings"
)

//Error is the interface all goFF errors implement. The Decorate method
//allows adding and retrieving info on the path the error took, one
//caller name per element.
type Error interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//Messages for InvalidAssignment errors.
const (
	NotInExpression = "symbol not among the free symbols of the expression"
	ClaimedTwice    = "symbol claimed as both independent variable and parameter"
)

//InvalidAssignment is returned when a proposed independent-variable set
//or parameter map doesn't fit the expression it is being assigned to,
//either because a name is not a free symbol of the expression or
//because it is claimed by both sets at once. It is always returned
//before any state has changed.
type InvalidAssignment struct {
	message string
	symbols []string
	deco    []string
}

func newInvalidAssignment(message string, symbols ...string) *InvalidAssignment {
	sort.Strings(symbols)
	return &InvalidAssignment{message: message, symbols: symbols}
}

func (err *InvalidAssignment) Error() string {
	return fmt.Sprintf("goFF: invalid assignment: %s: %s", err.message, strings.Join(err.symbols, ", "))
}

//Symbols returns the offending symbol names, sorted.
func (err *InvalidAssignment) Symbols() []string {
	s := make([]string, len(err.symbols))
	copy(s, err.symbols)
	return s
}

//Decorate adds dec to the decoration slice of the error and returns
//the resulting slice.
func (err *InvalidAssignment) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical always returns true. There is no harmless way to mis-assign
//symbols.
func (err *InvalidAssignment) Critical() bool { return true }

//TemplateNotFound is returned by the template registry when asked for
//a name the catalog doesn't contain.
type TemplateNotFound struct {
	name string
	deco []string
}

func (err *TemplateNotFound) Error() string {
	return fmt.Sprintf("goFF: no potential template named %q in the catalog", err.name)
}

//Name returns the name that was requested.
func (err *TemplateNotFound) Name() string { return err.name }

//Decorate adds dec to the decoration slice of the error and returns
//the resulting slice.
func (err *TemplateNotFound) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical always returns true.
func (err *TemplateNotFound) Critical() bool { return true }

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. Calling it on anything else is
//a programming error and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
