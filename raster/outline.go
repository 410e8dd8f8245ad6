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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Bounds returns the bounding box of the boundary pixels, in pixel units
// with x for columns and y for rows. The box covers whole pixels, so an
// empty polygon has a zero rectangle and a single pixel has area one.
func (p *Polygon) Bounds() rect.Rect {
	if len(p.points) == 0 {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: float64(p.minCol),
		LLy: float64(p.minRow),
		URx: float64(p.maxCol + 1),
		URy: float64(p.maxRow + 1),
	}
}

// Outline returns the polygon edges as a path through the pixel centres,
// with one subpath per edge. The coordinates use x for columns and y for
// rows.
func (p *Polygon) Outline() *path.Data {
	res := &path.Data{}
	for _, e := range p.edges {
		res = res.MoveTo(pixelCentre(e.C1)).LineTo(pixelCentre(e.C2))
	}
	return res
}

func pixelCentre(c Coordinate) vec.Vec2 {
	return vec.Vec2{X: float64(c.Col) + 0.5, Y: float64(c.Row) + 0.5}
}
