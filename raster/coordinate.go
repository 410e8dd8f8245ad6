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

// Package raster implements the integer pixel geometry used to draw unit
// patterns: coordinates, edges, straight line rasterisation, polygon
// vertex records and a ray-casting point-in-polygon test.
//
// All coordinates are (row, column) pairs with the origin in the top-left
// corner; rows grow downwards.
package raster

import (
	"cmp"
	"fmt"
)

// Coordinate identifies a pixel.
type Coordinate struct {
	Row int
	Col int
}

// Compare orders coordinates by row first, then by column.
func (c Coordinate) Compare(other Coordinate) int {
	if r := cmp.Compare(c.Row, other.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, other.Col)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("{%d,%d}", c.Row, c.Col)
}

// compareCoordinates is Coordinate.Compare as a function value, for use
// with sorting helpers.
func compareCoordinates(a, b Coordinate) int {
	return a.Compare(b)
}

// Pt converts a pair of real-valued positions to a coordinate by
// truncation towards zero.
func Pt(row, col float64) Coordinate {
	return Coordinate{Row: int(row), Col: int(col)}
}
