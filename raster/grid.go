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
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// ErrOutOfRange is returned when a pixel outside a grid is accessed.
var ErrOutOfRange = errors.New("pixel out of range")

// Grid is a binary pixel grid in row-major order. A value of 0 is
// background, 1 is foreground.
//
// Grid implements [image.Image]: foreground pixels are black and
// background pixels are white.
type Grid struct {
	height, width int
	pix           []uint8
}

// NewGrid allocates a background-filled grid. Negative dimensions are
// treated as zero.
func NewGrid(height, width int) *Grid {
	height = max(height, 0)
	width = max(width, 0)
	return &Grid{
		height: height,
		width:  width,
		pix:    make([]uint8, height*width),
	}
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

func (g *Grid) inRange(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) rangeError(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.height, g.width)
}

// Pixel returns the value stored at (row, col).
func (g *Grid) Pixel(row, col int) (uint8, error) {
	if !g.inRange(row, col) {
		return 0, g.rangeError(row, col)
	}
	return g.pix[row*g.width+col], nil
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v uint8) error {
	if !g.inRange(row, col) {
		return g.rangeError(row, col)
	}
	g.pix[row*g.width+col] = v
	return nil
}

// Filled reports whether (row, col) is a foreground pixel.
// Pixels outside the grid are background.
func (g *Grid) Filled(row, col int) bool {
	return g.inRange(row, col) && g.pix[row*g.width+col] != 0
}

// Count returns the number of foreground pixels.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Stamp copies src into g with the top-left corner of src placed at
// (row, col). Pixels falling outside g are clipped.
func (g *Grid) Stamp(src *Grid, row, col int) {
	rowMin := max(row, 0)
	rowMax := min(row+src.height, g.height)
	colMin := max(col, 0)
	colMax := min(col+src.width, g.width)
	if colMin >= colMax {
		return
	}
	for r := rowMin; r < rowMax; r++ {
		srcOff := (r-row)*src.width + (colMin - col)
		copy(g.pix[r*g.width+colMin:r*g.width+colMax], src.pix[srcOff:srcOff+colMax-colMin])
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	res := &Grid{height: g.height, width: g.width, pix: make([]uint8, len(g.pix))}
	copy(res.pix, g.pix)
	return res
}

// Bits returns the pixel values as a string of '0' and '1' characters in
// row-major order.
func (g *Grid) Bits() string {
	var b strings.Builder
	b.Grow(len(g.pix))
	for _, v := range g.pix {
		if v != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ErrBits is returned by [ParseBits] for malformed pixel strings.
var ErrBits = errors.New("malformed pixel string")

// ParseBits is the inverse of [Grid.Bits].
func ParseBits(height, width int, bits string) (*Grid, error) {
	if height < 0 || width < 0 || len(bits) != height*width {
		return nil, fmt.Errorf("%w: %d characters for %dx%d grid",
			ErrBits, len(bits), height, width)
	}
	g := NewGrid(height, width)
	for i := range len(bits) {
		switch bits[i] {
		case '0':
		case '1':
			g.pix[i] = 1
		default:
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrBits, bits[i], i)
		}
	}
	return g, nil
}

// String draws the grid as text, one line per row, using '.' for
// background and '#' for foreground.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for row := range g.height {
		for _, v := range g.pix[row*g.width : (row+1)*g.width] {
			if v != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ColorModel implements [image.Image].
func (g *Grid) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements [image.Image].
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// At implements [image.Image]. Note that x is the column and y the row.
func (g *Grid) At(x, y int) color.Color {
	if g.Filled(y, x) {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 255}
}
