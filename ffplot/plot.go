/*
 * plot.go, part of goFF
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
Package ffplot draws the curve of a parametrized potential over a range
of its independent variable, the usual way of eyeballing whether a set
of parameters makes physical sense (the Lennard-Jones well sitting
where it should, a harmonic bond centered on r_eq, and so on).
*/
package ffplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	ff "github.com/lmiranda/goff"
	"github.com/lmiranda/goff/logger"
)

//Curve samples p at evenly spaced points of its single
//independent variable in [from,to] and returns the sampled values as
//plotter-ready XYs. The potential must be parametric and must have
//exactly one independent variable.
func Curve(p *ff.PotentialExpression, from, to float64, points int) (plotter.XYs, error) {
	if p == nil {
		return nil, fmt.Errorf("ffplot: nil potential given")
	}
	if !p.IsParametric() {
		return nil, fmt.Errorf("ffplot: %s has no parameters bound", p.ExpressionString())
	}
	vars := p.IndependentVariables()
	if len(vars) != 1 {
		return nil, fmt.Errorf("ffplot: can only plot over exactly 1 independent variable, %s has %d", p.ExpressionString(), len(vars))
	}
	if points < 2 {
		return nil, fmt.Errorf("ffplot: at least 2 points needed, got %d", points)
	}
	xs := make([]float64, points)
	floats.Span(xs, from, to)
	xys := make(plotter.XYs, points)
	at := make(map[string]float64, 1)
	for i, x := range xs {
		at[vars[0]] = x
		y, err := p.Evaluate(at)
		if err != nil {
			return nil, err
		}
		xys[i].X = x
		xys[i].Y = y
	}
	return xys, nil
}

//Plot saves the curve of p over [from,to] as a PNG file. The Y axis
//may need clamping for potentials with a steep repulsive wall; ymin
//and ymax are applied when ymin < ymax, and left to the plotter
//otherwise.
func Plot(p *ff.PotentialExpression, from, to float64, points int, title, filename string, ymin, ymax float64) error {
	xys, err := Curve(p, from, to, points)
	if err != nil {
		return err
	}
	vars := p.IndependentVariables()
	pl := plot.New()
	pl.Title.Padding = 3 * vg.Millimeter
	pl.Title.Text = title
	pl.X.Label.Text = vars[0]
	pl.Y.Label.Text = "V(" + vars[0] + ")"
	if ymin < ymax {
		pl.Y.Min = ymin
		pl.Y.Max = ymax
	}
	pl.Add(plotter.NewGrid())
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	pl.Add(line)
	if err := pl.Save(12*vg.Centimeter, 8*vg.Centimeter, filename); err != nil {
		return err
	}
	log := logger.Logger()
	log.Info().Str("file", filename).Str("potential", p.ExpressionString()).Msg("potential curve saved")
	return nil
}
