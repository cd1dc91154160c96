/*
 * doc.go, part of goFF
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
Package ff holds typed force-field potentials for molecular topologies.

The central type is PotentialExpression: a symbolic functional form (say,
4*epsilon*((sigma/r)**12-(sigma/r)**6)) together with the declaration of
which of its symbols are independent variables, supplied at evaluation
time, and which are parameters, bound to dimensioned values. The type
keeps the three pieces mutually consistent: every declared variable and
parameter must appear in the formula, and no symbol may be both at once.
Assignments that would break this are rejected without touching the
previous state.

A catalog of the usual unparametrized forms (Lennard-Jones, Mie,
harmonic bond and angle, the torsion flavors) ships with the package as
Templates; FromTemplate stamps out an independent, parametrized
PotentialExpression from one of them.

On top of the expressions, the package offers thin capability-tagged
Potential records (atom, bond, angle and dihedral types) and a minimal
Topology of sites and connections, enough to feed the table and plot
helpers in the fftab and ffplot subpackages. It deliberately does not
model the full site/connection class zoo of larger topology packages,
nor read or write any simulation-engine file format.
*/
package ff
