/*
 * tables.go, part of goFF
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
Package fftab flattens a typed goFF topology into per-site and
per-connection data tables, one column per typed parameter with the
unit in the header, for quick inspection of a parametrized system.
Tables render as text, CSV, or gzip-compressed CSV.
*/
package fftab

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/klauspost/compress/gzip"

	ff "github.com/lmiranda/goff"
	"github.com/lmiranda/goff/logger"
	"github.com/lmiranda/goff/unit"
)

//Table is a rendered-format-agnostic data table.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

//paramDecimals matches the rounding the tables are meant for: 3
//decimals for parameters, 4 for charges.
const (
	paramDecimals  = 3
	chargeDecimals = 4
)

//SiteTable returns one row per site: index, name, atom type, element
//and charge (in e, rounded to 4 decimals).
func SiteTable(t *ff.Topology) *Table {
	tab := &Table{
		Name:   t.Name + " sites",
		Header: []string{"index", "name", "atom_type", "element", "charge (e)"},
	}
	for i := 0; i < t.NSites(); i++ {
		s := t.Site(i)
		typename := ""
		if s.Type != nil {
			typename = s.Type.Name()
		}
		tab.Rows = append(tab.Rows, []string{
			strconv.Itoa(i),
			s.Name,
			typename,
			s.Element,
			roundStr(s.Charge, chargeDecimals),
		})
	}
	return tab
}

//BondTable returns one row per typed bond, members labeled
//"name(index)", plus one column per parameter of the bond potentials.
func BondTable(t *ff.Topology) (*Table, error) {
	return connectionTable(t, t.Bonds(), t.Name+" bonds", ff.BondType)
}

//AngleTable is BondTable for angles.
func AngleTable(t *ff.Topology) (*Table, error) {
	return connectionTable(t, t.Angles(), t.Name+" angles", ff.AngleType)
}

//DihedralTable is BondTable for dihedrals.
func DihedralTable(t *ff.Topology) (*Table, error) {
	return connectionTable(t, t.Dihedrals(), t.Name+" dihedrals", ff.DihedralType)
}

//connectionTable builds the member and parameter columns. The
//parameter columns come from the first connection's potential; every
//other connection must bind the same parameter names (the usual case,
//as they come from the same template), or we refuse to tabulate.
func connectionTable(t *ff.Topology, conns []*ff.Connection, name string, kind ff.Kind) (*Table, error) {
	tab := &Table{Name: name, Header: []string{"index"}}
	nmemb := kind.Members()
	for i := 1; i <= nmemb; i++ {
		tab.Header = append(tab.Header, fmt.Sprintf("Atom%d", i))
	}
	if len(conns) == 0 {
		return tab, nil
	}
	first := conns[0].Type.Parameters()
	for _, c := range conns {
		if len(c.Type.Parameters()) != len(first) {
			return nil, fmt.Errorf("fftab: %s: potentials with differing parameter sets", name)
		}
	}
	pnames := sortedKeys(first)
	for _, p := range pnames {
		h := p
		if u := first[p].Unit(); u != "" {
			h = fmt.Sprintf("%s (%s)", p, u)
		}
		tab.Header = append(tab.Header, h)
	}
	for i, c := range conns {
		row := []string{strconv.Itoa(i)}
		for m := 0; m < nmemb; m++ {
			row = append(row, t.SiteLabel(c.Members[m]))
		}
		params := c.Type.Parameters()
		for _, p := range pnames {
			v, ok := params[p]
			if !ok {
				return nil, fmt.Errorf("fftab: %s: potential %s misses parameter %s", name, c.Type.Name(), p)
			}
			row = append(row, roundStr(v.Magnitude(), paramDecimals))
		}
		tab.Rows = append(tab.Rows, row)
	}
	return tab, nil
}

//Render writes T as a text table.
func (T *Table) Render(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(T.Name)
	h := make(table.Row, len(T.Header))
	for i, c := range T.Header {
		h[i] = c
	}
	tw.AppendHeader(h)
	for _, r := range T.Rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		tw.AppendRow(row)
	}
	tw.Render()
	log := logger.Logger()
	log.Debug().Str("table", T.Name).Int("rows", len(T.Rows)).Msg("table rendered")
}

//WriteCSV writes T as CSV, header first.
func (T *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(T.Header); err != nil {
		return err
	}
	for _, r := range T.Rows {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteCSVGZ writes T as gzip-compressed CSV.
func (T *Table) WriteCSVGZ(w io.Writer) error {
	gw := gzip.NewWriter(w)
	if err := T.WriteCSV(gw); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

func roundStr(v float64, decimals int) string {
	pow := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*pow)/pow, 'g', -1, 64)
}

func sortedKeys(m map[string]unit.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
