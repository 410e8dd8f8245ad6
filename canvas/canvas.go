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

// Package canvas assembles unit patterns into larger images by tiling.
package canvas

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/patterns/raster"
	"seehuhn.de/go/patterns/unit"
)

var (
	// ErrNoUnits is returned when a canvas is built without unit patterns.
	ErrNoUnits = errors.New("no unit patterns")

	// ErrBadSlot is returned when a slot assignment refers to a unit
	// pattern which does not exist.
	ErrBadSlot = errors.New("invalid slot assignment")

	// ErrLayout is returned for layouts with non-positive sizes or
	// negative offsets.
	ErrLayout = errors.New("invalid canvas layout")
)

// Layout describes how unit patterns are placed on a canvas.
type Layout struct {
	Height, Width int // canvas size in pixels

	// VerticalOffset and HorizontalOffset give the number of background
	// pixels between neighbouring tiles.
	VerticalOffset, HorizontalOffset int

	// Clipping allows partial tiles at the canvas border.
	Clipping bool

	// Center places the tiled area in the middle of the canvas. Otherwise
	// tiling starts at the top left corner.
	Center bool
}

func (l Layout) check(unitHeight, unitWidth int) error {
	if l.Height <= 0 || l.Width <= 0 || unitHeight <= 0 || unitWidth <= 0 ||
		l.VerticalOffset < 0 || l.HorizontalOffset < 0 {
		return fmt.Errorf("%w: canvas %dx%d, unit %dx%d, offset %d/%d", ErrLayout,
			l.Height, l.Width, unitHeight, unitWidth, l.VerticalOffset, l.HorizontalOffset)
	}
	return nil
}

// Tiles returns the number of tile rows and columns for units of the
// given size. Without clipping, only tiles which fit completely are
// counted.
func (l Layout) Tiles(unitHeight, unitWidth int) (rows, cols int) {
	return l.count(l.Height, unitHeight+l.VerticalOffset),
		l.count(l.Width, unitWidth+l.HorizontalOffset)
}

func (l Layout) count(size, space int) int {
	if size <= 0 || space <= 0 {
		return 0
	}
	n := float64(size) / float64(space)
	if l.Clipping {
		return int(math.Ceil(n))
	}
	return int(math.Floor(n))
}

// span returns the first tile position and the end of the tiled range
// along one axis.
func (l Layout) span(size, unitSize, offset int) (start, end int) {
	space := float64(unitSize + offset)
	virtual := float64(l.count(size, unitSize+offset)) * space
	if !l.Center {
		return 0, int(virtual)
	}
	diff := virtual - float64(size)
	start = int(-diff/2 + float64(offset)/2)
	end = int(float64(size) + diff/2 - float64(offset)/2)
	return start, end
}

// Origins returns the top left corners of all tiles, in row-major order.
// Corners may lie outside the canvas when clipping is enabled.
func (l Layout) Origins(unitHeight, unitWidth int) ([]raster.Coordinate, error) {
	if err := l.check(unitHeight, unitWidth); err != nil {
		return nil, err
	}

	rowStart, rowEnd := l.span(l.Height, unitHeight, l.VerticalOffset)
	colStart, colEnd := l.span(l.Width, unitWidth, l.HorizontalOffset)

	var res []raster.Coordinate
	for row := rowStart; row < rowEnd; row += unitHeight + l.VerticalOffset {
		for col := colStart; col < colEnd; col += unitWidth + l.HorizontalOffset {
			res = append(res, raster.Coordinate{Row: row, Col: col})
		}
	}
	return res, nil
}

// Pattern is a canvas covered by tiled unit patterns, labelled with the
// shape it shows.
type Pattern struct {
	label unit.Type
	grid  *raster.Grid
}

// New tiles a canvas with the given unit patterns. All unit patterns must
// have the size of units[0]. The unit pattern for each tile is chosen via
// slots: a cursor runs over the tiles in row-major order, the tile at
// cursor position i uses units[slots[i]], and the cursor wraps around
// after len(units) tiles.
//
// The canvas keeps the requested size; unit patterns are copied clipped
// to the canvas. The unit patterns are only read.
func New(label unit.Type, l Layout, units []*unit.UnitPattern, slots []int) (*Pattern, error) {
	if len(units) == 0 {
		return nil, ErrNoUnits
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: empty assignment", ErrBadSlot)
	}
	for _, s := range slots {
		if s < 0 || s >= len(units) {
			return nil, fmt.Errorf("%w: slot %d with %d unit patterns", ErrBadSlot, s, len(units))
		}
	}

	origins, err := l.Origins(units[0].Height(), units[0].Width())
	if err != nil {
		return nil, err
	}

	p := &Pattern{
		label: label,
		grid:  raster.NewGrid(l.Height, l.Width),
	}
	slider := 0
	for _, o := range origins {
		src := units[slots[slider%len(slots)]]
		p.grid.Stamp(src.Grid(), o.Row, o.Col)
		slider = (slider + 1) % len(units)
	}
	return p, nil
}

// NewSingle tiles a canvas with copies of a single unit pattern.
func NewSingle(u *unit.UnitPattern, l Layout) (*Pattern, error) {
	return New(u.Type(), l, []*unit.UnitPattern{u}, []int{0})
}

// Label returns the shape shown on the canvas.
func (p *Pattern) Label() unit.Type { return p.label }

// Grid returns the pixels of the canvas.
func (p *Pattern) Grid() *raster.Grid { return p.grid }

// Height returns the number of rows.
func (p *Pattern) Height() int { return p.grid.Height() }

// Width returns the number of columns.
func (p *Pattern) Width() int { return p.grid.Width() }

// Record returns the dataset line for the canvas:
// the shape name, the height, the width and the pixels as a string of
// '0' and '1' characters in row-major order, separated by commas.
func (p *Pattern) Record() string {
	var b strings.Builder
	b.WriteString(p.label.String())
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(p.grid.Height()))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(p.grid.Width()))
	b.WriteByte(',')
	b.WriteString(p.grid.Bits())
	return b.String()
}

func (p *Pattern) String() string {
	return p.grid.String()
}
