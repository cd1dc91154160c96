/*
 * tables_test.go, part of goFF
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

package fftab

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ff "github.com/lmiranda/goff"
	"github.com/lmiranda/goff/unit"
)

//water builds a typed 3-site water, the smallest topology with both
//bonds and an angle.
func water(t *testing.T) *ff.Topology {
	t.Helper()
	top := ff.NewTopology("water")

	lj := func(name string, sigma, epsilon float64) *ff.Potential {
		p, err := ff.NewPotentialFromTemplate(name, ff.AtomType, "LennardJonesPotential",
			map[string]unit.Value{"sigma": unit.New(sigma, "nm"), "epsilon": unit.New(epsilon, "kJ/mol")})
		require.NoError(t, err)
		return p
	}
	ot := lj("opls_111", 0.315, 0.636)
	ht := lj("opls_112", 0.0, 0.0)

	o, err := top.AddSite(&ff.Site{Name: "O", Element: "O", Charge: -0.8476, Type: ot})
	require.NoError(t, err)
	h1, err := top.AddSite(&ff.Site{Name: "H", Element: "H", Charge: 0.4238, Type: ht})
	require.NoError(t, err)
	h2, err := top.AddSite(&ff.Site{Name: "H", Element: "H", Charge: 0.4238, Type: ht})
	require.NoError(t, err)

	oh, err := ff.NewPotentialFromTemplate("OH", ff.BondType, "HarmonicBondPotential",
		map[string]unit.Value{"k": unit.New(502416.0, "kJ/mol/nm**2"), "r_eq": unit.New(0.09572, "nm")})
	require.NoError(t, err)
	require.NoError(t, top.AddBond(o, h1, oh))
	require.NoError(t, top.AddBond(o, h2, oh.Copy()))

	hoh, err := ff.NewPotentialFromTemplate("HOH", ff.AngleType, "HarmonicAnglePotential",
		map[string]unit.Value{"k": unit.New(628.02, "kJ/mol/rad**2"), "theta_eq": unit.New(1.82421813, "rad")})
	require.NoError(t, err)
	require.NoError(t, top.AddAngle(h1, o, h2, hoh))

	return top
}

func TestSiteTable(t *testing.T) {
	tab := SiteTable(water(t))
	assert.Equal(t, []string{"index", "name", "atom_type", "element", "charge (e)"}, tab.Header)
	require.Len(t, tab.Rows, 3)
	assert.Equal(t, []string{"0", "O", "opls_111", "O", "-0.8476"}, tab.Rows[0])
	assert.Equal(t, []string{"1", "H", "opls_112", "H", "0.4238"}, tab.Rows[1])
}

func TestBondTable(t *testing.T) {
	tab, err := BondTable(water(t))
	require.NoError(t, err)
	//parameter columns carry the unit and come sorted by name
	assert.Equal(t, []string{"index", "Atom1", "Atom2", "k (kJ/mol/nm**2)", "r_eq (nm)"}, tab.Header)
	require.Len(t, tab.Rows, 2)
	assert.Equal(t, []string{"0", "O(0)", "H(1)", "502416", "0.096"}, tab.Rows[0])
	assert.Equal(t, []string{"1", "O(0)", "H(2)", "502416", "0.096"}, tab.Rows[1])
}

func TestAngleTable(t *testing.T) {
	tab, err := AngleTable(water(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "Atom1", "Atom2", "Atom3", "k (kJ/mol/rad**2)", "theta_eq (rad)"}, tab.Header)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, []string{"0", "H(1)", "O(0)", "H(2)", "628.02", "1.824"}, tab.Rows[0])
}

func TestEmptyConnectionTable(t *testing.T) {
	top := ff.NewTopology("empty")
	tab, err := DihedralTable(top)
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "Atom1", "Atom2", "Atom3", "Atom4"}, tab.Header)
	assert.Empty(t, tab.Rows)
}

func TestRenderAndCSV(t *testing.T) {
	tab, err := BondTable(water(t))
	require.NoError(t, err)

	var text bytes.Buffer
	tab.Render(&text)
	assert.Contains(t, text.String(), "O(0)")
	assert.Contains(t, text.String(), "r_eq (nm)")

	var raw bytes.Buffer
	require.NoError(t, tab.WriteCSV(&raw))
	lines := strings.Split(strings.TrimSpace(raw.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "index,Atom1,Atom2,k (kJ/mol/nm**2),r_eq (nm)", lines[0])

	//the gzipped flavor must decompress back to the same bytes
	var zipped bytes.Buffer
	require.NoError(t, tab.WriteCSVGZ(&zipped))
	zr, err := gzip.NewReader(&zipped)
	require.NoError(t, err)
	back, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())
	assert.Equal(t, raw.String(), string(back))
}
