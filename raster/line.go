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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/patterns/array"
)

// RoundHalfUp rounds d the way it is done by hand: the value is truncated
// towards zero, and one is added if the discarded fraction is at least 0.5.
// For negative inputs the fraction is negative, so these are effectively
// truncated.
func RoundHalfUp(d float64) int {
	i := int(d)
	if d-float64(i) >= 0.5 {
		return i + 1
	}
	return i
}

// StraightLine returns the pixels approximating the segment from c1 to c2,
// including both endpoints. The walk runs along the axis with the larger
// extent, so that steep lines have no gaps. Ties walk along columns.
//
// Walked pixels are returned in increasing order along the walked axis,
// followed by any endpoint which the rounding did not already produce.
func StraightLine(c1, c2 Coordinate) []Coordinate {
	line := array.New(compareCoordinates)

	if c1.Row == c2.Row {
		lo, hi := min(c1.Col, c2.Col), max(c1.Col, c2.Col)
		for col := lo + 1; col < hi; col++ {
			line.Push(Coordinate{Row: c2.Row, Col: col})
		}
	} else {
		numRows := abs(c2.Row - c1.Row)
		numCols := abs(c2.Col - c1.Col)

		vertical := c2.Col == c1.Col
		var slope, b float64
		if !vertical {
			slope = float64(c2.Row-c1.Row) / float64(c2.Col-c1.Col)
			b = float64(c1.Row) - slope*float64(c1.Col)
		}

		if numRows > numCols {
			start := min(c1.Row, c2.Row)
			for i := range numRows {
				c := Coordinate{Row: start + i, Col: c2.Col}
				if !vertical {
					c.Col = RoundHalfUp((float64(c.Row) - b) / slope)
				}
				line.Push(c)
			}
		} else {
			start := min(c1.Col, c2.Col)
			for i := range numCols {
				col := start + i
				line.Push(Coordinate{Row: RoundHalfUp(float64(col)*slope + b), Col: col})
			}
		}
	}

	if !line.Exists(c1) {
		line.Push(c1)
	}
	if !line.Exists(c2) {
		line.Push(c2)
	}
	return line.Items()
}

// PointAtAngle returns the pixel at the given distance from origin, in the
// direction given by angle (in degrees). An angle of 0 points down (towards
// increasing rows), 90 points right. Both components are rounded with
// [RoundHalfUp].
func PointAtAngle(angle, distance float64, origin Coordinate) Coordinate {
	theta := angle * math.Pi / 180
	offset := vec.Vec2{X: distance * math.Sin(theta), Y: distance * math.Cos(theta)}
	p := vec.Vec2{X: float64(origin.Col), Y: float64(origin.Row)}.Add(offset)
	return Coordinate{Row: RoundHalfUp(p.Y), Col: RoundHalfUp(p.X)}
}

// Centroid returns the rounded arithmetic mean of three pixels.
func Centroid(c1, c2, c3 Coordinate) Coordinate {
	row := float64(c1.Row+c2.Row+c3.Row) / 3
	col := float64(c1.Col+c2.Col+c3.Col) / 3
	return Coordinate{Row: RoundHalfUp(row), Col: RoundHalfUp(col)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
