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

package testcases

import "seehuhn.de/go/patterns/unit"

// polygonCases are shapes drawn as a single closed polygon and filled
// with the ray casting test.
var polygonCases = []TestCase{
	uniform("square_small", unit.Square, 0.5),
	uniform("square", unit.Square, 0.9),
	uniform("diamond", unit.Diamond, 0.8),
	{
		Name:   "diamond_flat",
		Type:   unit.Diamond,
		Height: 51,
		Width:  51,
		Scales: []float64{0.9, 0.4},
	},
	uniform("triangle", unit.Triangle, 0.8),
	{
		Name:   "triangle_uneven",
		Type:   unit.Triangle,
		Height: 51,
		Width:  51,
		Scales: []float64{0.9, 0.5, 0.7},
	},
	uniform("pentagon", unit.Pentagon, 0.8),
	uniform("hexagon", unit.Hexagon, 0.8),
	{
		Name:   "hexagon_alternating",
		Type:   unit.Hexagon,
		Height: 51,
		Width:  51,
		Scales: []float64{0.9, 0.6, 0.9, 0.6, 0.9, 0.6},
	},
	uniform("heptagon", unit.Heptagon, 0.8),
	uniform("octagon", unit.Octagon, 0.8),
	{
		Name:   "octagon_alternating",
		Type:   unit.Octagon,
		Height: 51,
		Width:  51,
		Scales: []float64{0.9, 0.5, 0.9, 0.5, 0.9, 0.5, 0.9, 0.5},
	},
	uniform("star", unit.Star, 0.9),
}

// correlatedCases are shapes whose parameters depend on each other.
var correlatedCases = []TestCase{
	uniform("rectangle", unit.Rectangle, 0.8),
	{
		Name:   "rectangle_repaired",
		Type:   unit.Rectangle,
		Height: 51,
		Width:  51,
		Scales: []float64{0.4, 0.8},
	},
	uniform("trapezoid", unit.Trapezoid, 0.8),
	uniform("crescent", unit.Crescent, 0.8),
	{
		Name:   "crescent_repaired",
		Type:   unit.Crescent,
		Height: 51,
		Width:  51,
		Scales: []float64{0.8, 1.5},
	},
}

// organicCases are silhouettes built from several strokes or from
// polygons which are not closed.
var organicCases = []TestCase{
	uniform("heart", unit.Heart, 0.8),
	uniform("cross", unit.Cross, 0.8),
	uniform("spike", unit.Spike, 0.8),
	uniform("arrow", unit.Arrow, 0.8),
	uniform("zigzag", unit.Zigzag, 0.8),
	uniform("cane", unit.Cane, 0.8),
	uniform("cat", unit.Cat, 0.8),
}

// roundCases are drawn point by point instead of edge by edge.
var roundCases = []TestCase{
	uniform("circle", unit.Circle, 0.9),
	uniform("circle_small", unit.Circle, 0.2),
	{
		Name:   "circle_tiny",
		Type:   unit.Circle,
		Height: 11,
		Width:  11,
		Scales: []float64{1},
	},
	uniform("tilde", unit.Tilde, 0.8),
}

var stripeCases = []TestCase{
	uniform("horizontal", unit.HorizontalStripe, 0.5),
	uniform("vertical", unit.VerticalStripe, 0.5),
}

// largeCases use bigger and non-square unit patterns.
var largeCases = []TestCase{
	{
		Name:   "large_square",
		Type:   unit.Square,
		Height: 201,
		Width:  201,
		Scales: []float64{0.6},
	},
	{
		Name:   "large_circle",
		Type:   unit.Circle,
		Height: 201,
		Width:  201,
		Scales: []float64{0.6},
	},
	{
		Name:   "large_star",
		Type:   unit.Star,
		Height: 201,
		Width:  201,
		Scales: []float64{0.6},
	},
	{
		Name:   "wide_octagon",
		Type:   unit.Octagon,
		Height: 51,
		Width:  151,
		Scales: unit.VariantScales(unit.Octagon, 0.8),
	},
	{
		Name:   "tall_rectangle",
		Type:   unit.Rectangle,
		Height: 151,
		Width:  51,
		Scales: []float64{0.8, 0.4},
	},
}
