/*
 * topology.go, part of goFF
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

import "fmt"

//Site is one interaction site of a typed topology. Charge is in units
//of the elementary charge. Type, if set, must be an AtomType potential.
type Site struct {
	Name     string
	Element  string
	Charge   float64
	Position [3]float64 //nm
	Type     *Potential
}

//Connection is a typed bonded term between 2, 3 or 4 sites, given by
//their indices in the owning topology. The number of used entries in
//Members matches Type.Kind().Members().
type Connection struct {
	Members [4]int
	Type    *Potential
}

//Topology is a minimal typed topology: sites plus typed bonds, angles
//and dihedrals over them. It is only meant to carry parametrized
//potentials around (for the fftab tables, mostly); it does no
//connectivity inference and reads no files.
type Topology struct {
	Name      string
	sites     []*Site
	bonds     []*Connection
	angles    []*Connection
	dihedrals []*Connection
}

//NewTopology returns an empty topology with the given name.
func NewTopology(name string) *Topology {
	return &Topology{Name: name}
}

//AddSite appends a site and returns its index. A typed site must carry
//an AtomType potential.
func (T *Topology) AddSite(s *Site) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("goFF: AddSite: nil site given")
	}
	if s.Type != nil && s.Type.Kind() != AtomType {
		return 0, fmt.Errorf("goFF: AddSite: site %s typed with a %v potential", s.Name, s.Type.Kind())
	}
	T.sites = append(T.sites, s)
	return len(T.sites) - 1, nil
}

//AddBond adds a typed 2-site connection. The potential must be a
//BondType and the indices must refer to existing sites.
func (T *Topology) AddBond(i, j int, p *Potential) error {
	return T.addConnection(BondType, p, i, j)
}

//AddAngle adds a typed 3-site connection, vertex in the middle.
func (T *Topology) AddAngle(i, j, k int, p *Potential) error {
	return T.addConnection(AngleType, p, i, j, k)
}

//AddDihedral adds a typed 4-site connection.
func (T *Topology) AddDihedral(i, j, k, l int, p *Potential) error {
	return T.addConnection(DihedralType, p, i, j, k, l)
}

func (T *Topology) addConnection(kind Kind, p *Potential, members ...int) error {
	if p == nil {
		return fmt.Errorf("goFF: %v connection needs a potential", kind)
	}
	if p.Kind() != kind {
		return fmt.Errorf("goFF: %v connection typed with a %v potential", kind, p.Kind())
	}
	c := &Connection{Type: p}
	for n, m := range members {
		if m < 0 || m >= len(T.sites) {
			return fmt.Errorf("goFF: %v connection: site index %d out of range (%d sites)", kind, m, len(T.sites))
		}
		c.Members[n] = m
	}
	switch kind {
	case BondType:
		T.bonds = append(T.bonds, c)
	case AngleType:
		T.angles = append(T.angles, c)
	case DihedralType:
		T.dihedrals = append(T.dihedrals, c)
	}
	return nil
}

//NSites returns the number of sites in the topology.
func (T *Topology) NSites() int { return len(T.sites) }

//Site returns the site at index i. Panics if out of range, as the
//index can only come from the topology itself.
func (T *Topology) Site(i int) *Site {
	if i < 0 || i >= len(T.sites) {
		panic("Topology: requested site out of bounds")
	}
	return T.sites[i]
}

//Bonds returns the typed bonds. The slice is the topology's own;
//callers are expected not to modify it.
func (T *Topology) Bonds() []*Connection { return T.bonds }

//Angles returns the typed angles.
func (T *Topology) Angles() []*Connection { return T.angles }

//Dihedrals returns the typed dihedrals.
func (T *Topology) Dihedrals() []*Connection { return T.dihedrals }

//SiteLabel returns the "name(index)" label used for connection members
//in the fftab tables.
func (T *Topology) SiteLabel(i int) string {
	return fmt.Sprintf("%s(%d)", T.Site(i).Name, i)
}
