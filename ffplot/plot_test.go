/*
 * plot_test.go, part of goFF
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

package ffplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	ff "github.com/lmiranda/goff"
	"github.com/lmiranda/goff/unit"
)

func lennardJones(Te *testing.T) *ff.PotentialExpression {
	Te.Helper()
	tmpl, err := ff.GetTemplate("LennardJonesPotential")
	if err != nil {
		Te.Fatal(err)
	}
	p, err := ff.FromTemplate(tmpl, map[string]unit.Value{
		"sigma":   unit.New(0.34, "nm"),
		"epsilon": unit.New(0.997, "kJ/mol"),
	})
	if err != nil {
		Te.Fatal(err)
	}
	return p
}

func TestCurve(Te *testing.T) {
	p := lennardJones(Te)
	xys, err := Curve(p, 0.3, 1.0, 200)
	if err != nil {
		Te.Fatal(err)
	}
	if len(xys) != 200 {
		Te.Errorf("wanted 200 points, got %d", len(xys))
	}
	//the sampled minimum should sit near 2^(1/6)*sigma with depth -epsilon
	miny := math.Inf(1)
	minx := 0.0
	for _, xy := range xys {
		if xy.Y < miny {
			miny = xy.Y
			minx = xy.X
		}
	}
	if math.Abs(minx-math.Pow(2, 1.0/6)*0.34) > 0.01 {
		Te.Errorf("minimum at %f, expected near %f", minx, math.Pow(2, 1.0/6)*0.34)
	}
	if math.Abs(miny+0.997) > 0.01 {
		Te.Errorf("well depth %f, expected near %f", miny, -0.997)
	}
}

func TestCurveRejectsUnplottable(Te *testing.T) {
	//no parameters bound
	tmpl, err := ff.GetTemplate("LennardJonesPotential")
	if err != nil {
		Te.Fatal(err)
	}
	bare, err := ff.NewPotentialExpression(tmpl.ExpressionString(), tmpl.IndependentVariables(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := Curve(bare, 0.3, 1.0, 10); err == nil {
		Te.Error("plotting an unparametrized potential should fail")
	}
	//two independent variables
	p, err := ff.NewPotentialExpression("k*x*y", []string{"x", "y"},
		map[string]unit.Value{"k": unit.Dimensionless(1)})
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := Curve(p, 0, 1, 10); err == nil {
		Te.Error("plotting over 2 variables should fail")
	}
	if _, err := Curve(lennardJones(Te), 0.3, 1.0, 1); err == nil {
		Te.Error("a 1-point curve should fail")
	}
}

func TestPlotWritesFile(Te *testing.T) {
	p := lennardJones(Te)
	filename := filepath.Join(Te.TempDir(), "lj.png")
	err := Plot(p, 0.32, 1.0, 300, "Lennard-Jones", filename, -1.5, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(filename)
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("empty plot file written")
	}
}
