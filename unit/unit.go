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

// Package unit generates unit patterns: single shapes drawn centred on a
// small binary pixel grid. A unit pattern is the repeated tile of a
// larger canvas.
//
// Each shape is controlled by one or more scale values, fractions of the
// available extent. Most shapes are described by a vertex list which is
// rasterised and filled by [raster.Polygon]. Circles are drawn as a point
// set and filled by an edge-transition test, and tildes are drawn as
// thick arcs without a fill step.
package unit

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/patterns/raster"
)

var (
	// ErrScaleCount is returned when the number of scale values does not
	// match the shape.
	ErrScaleCount = errors.New("wrong number of scale values")

	// ErrSize is returned for non-positive grid dimensions.
	ErrSize = errors.New("invalid unit pattern size")
)

// UnitPattern is a shape drawn on its own pixel grid. The grid has odd
// dimensions, so that there is a single centre pixel. A UnitPattern is
// read-only after construction and can be shared between goroutines.
type UnitPattern struct {
	typ    Type
	scales []float64
	grid   *raster.Grid
	poly   *raster.Polygon // nil for shapes which are not drawn as polygons

	verticalOffset   bool
	horizontalOffset bool
}

// TrueCenter returns the dimensions increased to the next odd numbers.
func TrueCenter(height, width int) (int, int) {
	if height%2 == 0 {
		height++
	}
	if width%2 == 0 {
		width++
	}
	return height, width
}

// New draws a shape of type t on a grid of the given size. Even dimensions
// are increased by one. The number of scale values must match
// t.NumScales().
//
// If parts of the shape fall outside the grid, these parts are clipped and
// the pattern is returned together with an error wrapping
// [raster.ErrOutOfRange].
func New(t Type, height, width int, scales []float64) (*UnitPattern, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, height, width)
	}
	if len(scales) != t.NumScales() {
		return nil, fmt.Errorf("%s: %w: got %d, want %d",
			t, ErrScaleCount, len(scales), t.NumScales())
	}

	height, width = TrueCenter(height, width)
	u := &UnitPattern{
		typ:    t,
		scales: slices.Clone(scales),
		grid:   raster.NewGrid(height, width),
	}
	u.verticalOffset, u.horizontalOffset = t.OffsetAllowed()

	repairScales(t, u.scales)
	if err := generators[t](u); err != nil {
		return u, fmt.Errorf("%s %v: %w", t, u.scales, err)
	}
	return u, nil
}

// Type returns the shape of the pattern.
func (u *UnitPattern) Type() Type { return u.typ }

// Height returns the (odd) number of rows.
func (u *UnitPattern) Height() int { return u.grid.Height() }

// Width returns the (odd) number of columns.
func (u *UnitPattern) Width() int { return u.grid.Width() }

// Scales returns a copy of the scale values the shape was drawn with,
// after shape specific repairs.
func (u *UnitPattern) Scales() []float64 { return slices.Clone(u.scales) }

// Grid returns the pixel grid of the pattern. The grid is shared and must
// not be modified.
func (u *UnitPattern) Grid() *raster.Grid { return u.grid }

// Pixel returns the value at (row, col).
func (u *UnitPattern) Pixel(row, col int) (uint8, error) {
	return u.grid.Pixel(row, col)
}

// VerticalOffsetAllowed reports whether vertical spacing between tiles of
// this pattern is meaningful.
func (u *UnitPattern) VerticalOffsetAllowed() bool { return u.verticalOffset }

// HorizontalOffsetAllowed reports whether horizontal spacing between tiles
// of this pattern is meaningful.
func (u *UnitPattern) HorizontalOffsetAllowed() bool { return u.horizontalOffset }

// Outline returns the polygon edges through the pixel centres, or nil if
// the shape was not drawn as a polygon.
func (u *UnitPattern) Outline() *path.Data {
	if u.poly == nil {
		return nil
	}
	return u.poly.Outline()
}

func (u *UnitPattern) String() string {
	return u.grid.String()
}

// center returns the centre pixel of the grid.
func (u *UnitPattern) center() raster.Coordinate {
	return raster.Coordinate{Row: u.grid.Height() / 2, Col: u.grid.Width() / 2}
}

// half returns half the smaller grid dimension, rounded down.
func (u *UnitPattern) half() int {
	return min(u.grid.Height(), u.grid.Width()) / 2
}

// drawPolygon rasterises and fills the closed polygon through vertices.
func (u *UnitPattern) drawPolygon(vertices []raster.Coordinate) error {
	u.poly = raster.FromVertices(vertices)
	return u.poly.Draw(u.grid)
}

// plot sets the given pixels. Pixels outside the grid are skipped and
// reported.
func (u *UnitPattern) plot(points []raster.Coordinate) error {
	var first error
	skipped := 0
	for _, c := range points {
		if err := u.grid.Set(c.Row, c.Col, 1); err != nil {
			if first == nil {
				first = err
			}
			skipped++
		}
	}
	if first != nil {
		return fmt.Errorf("%d pixels skipped: %w", skipped, first)
	}
	return nil
}

// repairScales adjusts scale combinations for which the shape would
// degenerate into a different one.
func repairScales(t Type, s []float64) {
	switch t {
	case Rectangle, Trapezoid:
		// the second side must be shorter than the first
		if s[1] >= s[0] {
			s[1] = s[0] / 2
		}
	case Crescent:
		// the inner cut must lie strictly between the arc and the centre
		if s[1] <= 0 || s[1] >= 1 {
			s[1] = 0.55
		}
	case Cross:
		// the limbs must be narrower than the arms are long
		if s[1] >= s[0] {
			s[1] = s[0] / 3
		}
	}
}
