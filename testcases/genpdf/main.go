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

// Command genpdf generates reference images for the rendering tests.
// For every test case it writes a PNG with one pixel per grid cell, and
// an enlarged PDF which also shows the polygon outline.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/patterns/export"
	"seehuhn.de/go/patterns/testcases"
	"seehuhn.de/go/patterns/unit"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	u, err := unit.New(tc.Type, tc.Height, tc.Width, tc.Scales)
	if err != nil {
		return err
	}

	pngPath := filepath.Join(refDir, name+".png")
	if err := export.Save(pngPath, u.Grid(), nil); err != nil {
		return err
	}

	pdfPath := filepath.Join(refDir, name+".pdf")
	return export.SavePDF(pdfPath, u.Grid(), &export.Options{
		Scale:   8,
		Outline: u.Outline(),
	})
}
