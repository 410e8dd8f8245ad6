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

// TestCase defines a single unit pattern.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Type   unit.Type // shape to draw
	Height int       // unit pattern height in pixels, odd
	Width  int       // unit pattern width in pixels, odd
	Scales []float64 // one value per shape parameter
}

// uniform returns a 51x51 test case using the dataset scales for base
// scale s.
func uniform(name string, t unit.Type, s float64) TestCase {
	return TestCase{
		Name:   name,
		Type:   t,
		Height: 51,
		Width:  51,
		Scales: unit.VariantScales(t, s),
	}
}
