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

// Package patterns generates synthetic datasets of 2D shapes tiled into
// binary images.
//
// The work is split over several packages: [seehuhn.de/go/patterns/raster]
// rasterises and fills polygons, [seehuhn.de/go/patterns/unit] draws the
// individual shapes, [seehuhn.de/go/patterns/canvas] tiles them into
// images, [seehuhn.de/go/patterns/combination] enumerates the assignments
// of shape variants to tiles, and [seehuhn.de/go/patterns/dataset] drives
// the whole process. This package holds a few helpers shared by tests and
// tools.
package patterns

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/patterns/internal/logging"
	"seehuhn.de/go/patterns/testcases"
	"seehuhn.de/go/patterns/unit"
)

// SetLogger installs the logger used by all packages of this module.
// Passing nil disables logging, which is the default.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// RenderExample draws a test case into a grayscale buffer.
// The buffer holds height rows of stride bytes each and is pre-initialised
// with zeros. Filled pixels are set to 255. Parts of the unit pattern
// outside width x height are discarded.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	if width < 0 || height < 0 || stride < width || len(buf) < (height-1)*stride+width {
		return fmt.Errorf("%s: buffer too small for %dx%d image", tc.Name, width, height)
	}

	u, err := unit.New(tc.Type, tc.Height, tc.Width, tc.Scales)
	if u == nil {
		return fmt.Errorf("%s: %w", tc.Name, err)
	}

	g := u.Grid()
	for row := range min(height, g.Height()) {
		line := buf[row*stride:]
		for col := range min(width, g.Width()) {
			if g.Filled(row, col) {
				line[col] = 255
			}
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", tc.Name, err)
	}
	return nil
}
