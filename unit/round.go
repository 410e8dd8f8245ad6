// seehuhn.de/go/patterns - synthetic pattern datasets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package unit

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/patterns/array"
	"seehuhn.de/go/patterns/raster"
)

// Edge-transition filling:
//
// Shapes which are not well described by a handful of vertices are filled
// using the plotted boundary pixels directly. A ray is cast from each
// pixel towards increasing columns and every run of boundary pixels it
// meets counts as one edge. The topmost and bottommost rows of the shape
// are a problem: there the ray runs along the boundary instead of
// crossing it. To compensate, one "lone edge point" is recorded on each
// of these rows, and the edge count is reduced for every lone edge point
// on the ray.

// drawCircle plots circle points found by a Pythagorean sweep and fills
// the interior using edge transitions.
func drawCircle(u *UnitPattern) error {
	c := u.center()
	r := u.scales[0] * float64(min(u.grid.Height(), u.grid.Width())) / 2

	var points []raster.Coordinate
	add := func(p raster.Coordinate) {
		if !slices.Contains(points, p) {
			points = append(points, p)
		}
	}
	for i := 1; i <= int(r); i++ {
		y := int(math.Sqrt(r*r - float64(i*i)))
		add(raster.Coordinate{Row: c.Row - y, Col: c.Col + i})
		add(raster.Coordinate{Row: c.Row - y, Col: c.Col - i})
		add(raster.Coordinate{Row: c.Row + y, Col: c.Col + i})
		add(raster.Coordinate{Row: c.Row + y, Col: c.Col - i})
		add(raster.Coordinate{Row: c.Row - i, Col: c.Col + y})
		add(raster.Coordinate{Row: c.Row - i, Col: c.Col - y})
		add(raster.Coordinate{Row: c.Row + i, Col: c.Col + y})
		add(raster.Coordinate{Row: c.Row + i, Col: c.Col - y})
	}
	add(pt(c, 0, r))
	add(pt(c, 0, -r))
	add(pt(c, r, 0))
	add(pt(c, -r, 0))

	err := u.plot(points)
	return errors.Join(err, fillTransitions(u.grid, loneEdgePoints(points)))
}

// drawLoneEdge draws the closed polygon through vertices and fills it
// using edge transitions, with the lone edge points taken from the
// vertices.
func (u *UnitPattern) drawLoneEdge(vertices []raster.Coordinate) error {
	u.poly = raster.FromVertices(vertices)
	err := u.poly.Plot(u.grid)
	err = errors.Join(err, u.plot(vertices))
	return errors.Join(err, fillTransitions(u.grid, loneEdgePoints(vertices)))
}

// loneEdgePoints returns the leftmost point on the topmost row and the
// leftmost point on the bottommost row of points.
func loneEdgePoints(points []raster.Coordinate) []raster.Coordinate {
	if len(points) == 0 {
		return nil
	}
	top, bottom := points[0], points[0]
	for _, p := range points[1:] {
		if p.Row < top.Row || p.Row == top.Row && p.Col < top.Col {
			top = p
		}
		if p.Row > bottom.Row || p.Row == bottom.Row && p.Col < bottom.Col {
			bottom = p
		}
	}
	return []raster.Coordinate{top, bottom}
}

// fillTransitions fills g in place, row by row from the top left. Pixels
// which are found inside are set immediately, so that later tests on the
// same row see them.
func fillTransitions(g *raster.Grid, lone []raster.Coordinate) error {
	for row := range g.Height() {
		for col := range g.Width() {
			c := raster.Coordinate{Row: row, Col: col}
			if !insideTransitions(g, c, lone) {
				continue
			}
			if err := g.Set(row, col, 1); err != nil {
				return fmt.Errorf("fill: %w", err)
			}
		}
	}
	return nil
}

// insideTransitions reports whether c lies inside the plotted boundary
// in g. A boundary pixel followed by a background pixel counts as one
// edge. The last column has no right neighbour and is compared to its
// left neighbour instead.
func insideTransitions(g *raster.Grid, c raster.Coordinate, lone []raster.Coordinate) bool {
	last := g.Width() - 1
	edges := 0
	for col := c.Col; col <= last; col++ {
		partner := col + 1
		if col >= last {
			partner = col - 1
		}
		if g.Filled(c.Row, col) && !g.Filled(c.Row, partner) {
			edges++
		}
	}
	for _, p := range lone {
		if p.Row == c.Row && p.Col >= c.Col {
			edges--
		}
	}
	return edges%2 == 1
}

// drawTilde draws two half circles, one opening down on the left and one
// opening up on the right, and thickens the curve upwards. The shape is
// not filled.
func drawTilde(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	r := t * u.scales[0] / 2
	thick := t * u.scales[1] / 2

	arc := array.New(raster.Coordinate.Compare)
	left := pt(c, thick, -r)
	for a := 270.0; a >= 90; a-- {
		arc.Push(raster.PointAtAngle(a, r, left))
	}
	right := pt(c, thick, r)
	for a := 270.0; a < 360; a++ {
		arc.Push(raster.PointAtAngle(a, r, right))
	}
	for a := 0.0; a < 90; a++ {
		arc.Push(raster.PointAtAngle(a, r, right))
	}
	arc.RemoveDuplicates()

	n := arc.Len()
	for j := 1; float64(j) < thick; j++ {
		for i := n - 1; i >= 0; i-- {
			p := arc.At(i)
			arc.Push(raster.Coordinate{Row: p.Row - j, Col: p.Col})
		}
	}
	return u.plot(arc.Items())
}
