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

	"seehuhn.de/go/patterns/internal/logging"
)

// ErrNoSharedPoint is returned by [SharedPoint] when two edges have no
// endpoint in common.
var ErrNoSharedPoint = errors.New("edges do not share a point")

// Edge is an unordered pair of pixels. The endpoints are stored in
// canonical order (C1 sorts before C2), so that edges built from the same
// two points compare equal regardless of argument order.
type Edge struct {
	C1, C2 Coordinate

	slope    float64 // rows per column; unused for vertical edges
	b        float64 // row intercept at column 0
	vertical bool
}

// NewEdge returns the edge between a and b.
func NewEdge(a, b Coordinate) Edge {
	e := Edge{C1: a, C2: b}
	if a.Compare(b) > 0 {
		e.C1, e.C2 = b, a
	}

	if e.C2.Col == e.C1.Col {
		e.vertical = true
		e.slope = 1
	} else {
		e.slope = float64(e.C2.Row-e.C1.Row) / float64(e.C2.Col-e.C1.Col)
		e.b = float64(e.C1.Row) - e.slope*float64(e.C1.Col)
	}
	return e
}

// Compare orders edges by their first endpoint, then by their second.
func (e Edge) Compare(other Edge) int {
	if r := e.C1.Compare(other.C1); r != 0 {
		return r
	}
	return e.C2.Compare(other.C2)
}

// Degenerate reports whether both endpoints are the same pixel.
func (e Edge) Degenerate() bool {
	return e.C1 == e.C2
}

// Vertical reports whether both endpoints lie in the same column.
func (e Edge) Vertical() bool {
	return e.vertical
}

// Horizontal reports whether both endpoints lie in the same row.
func (e Edge) Horizontal() bool {
	return !e.vertical && e.slope == 0
}

// Slope returns the edge slope in rows per column. The second result is
// false for vertical edges, where the slope is undefined.
func (e Edge) Slope() (float64, bool) {
	return e.slope, !e.vertical
}

// ColAtRow evaluates the line through the edge at the given row. For
// vertical edges this is the fixed column. For horizontal edges the
// value is not finite.
func (e Edge) ColAtRow(row int) float64 {
	if e.vertical {
		return float64(e.C2.Col)
	}
	return (float64(row) - e.b) / e.slope
}

// spansRow reports whether row lies between the endpoint rows, inclusive.
func (e Edge) spansRow(row int) bool {
	return row >= e.C1.Row && row <= e.C2.Row
}

// crosses reports whether a ray cast from c towards increasing columns
// meets the edge. Horizontal edges are never crossed; the vertex records
// at their ends account for them.
func (e Edge) crosses(c Coordinate) bool {
	if !e.spansRow(c.Row) || e.Horizontal() {
		return false
	}
	return e.ColAtRow(c.Row) >= float64(c.Col)
}

func (e Edge) String() string {
	if e.vertical {
		return fmt.Sprintf("[%s - %s] :(inf)", e.C1, e.C2)
	}
	return fmt.Sprintf("[%s - %s] :%f", e.C1, e.C2, e.slope)
}

// SharesPoint reports whether the two edges have an endpoint in common.
func SharesPoint(e1, e2 Edge) bool {
	return e1.C1 == e2.C1 || e1.C1 == e2.C2 || e1.C2 == e2.C1 || e1.C2 == e2.C2
}

// SharedPoint returns the endpoint common to both edges. If there is
// none, the origin is returned together with [ErrNoSharedPoint].
func SharedPoint(e1, e2 Edge) (Coordinate, error) {
	switch {
	case e1.C1 == e2.C1, e1.C1 == e2.C2:
		return e1.C1, nil
	case e1.C2 == e2.C1, e1.C2 == e2.C2:
		return e1.C2, nil
	}
	logging.Logger().Warn("edges do not share a point", "e1", e1.String(), "e2", e2.String())
	return Coordinate{}, ErrNoSharedPoint
}

// Angle records a polygon vertex together with the way a horizontal ray
// through the vertex meets the boundary. If Crossing is true, the two
// edges at the vertex leave towards opposite vertical sides and the ray
// passes through the boundary. Otherwise the vertex is a local extremum
// and the ray only touches it.
type Angle struct {
	At       Coordinate
	Crossing bool
}

// NewAngle returns the vertex record for two edges meeting at the shared
// point. The second result is false if the edges share no point.
func NewAngle(e1, e2 Edge) (Angle, bool) {
	c, err := SharedPoint(e1, e2)
	if err != nil {
		return Angle{}, false
	}
	other1 := e1.C1
	if other1 == c {
		other1 = e1.C2
	}
	other2 := e2.C1
	if other2 == c {
		other2 = e2.C2
	}
	crossing := (other1.Row >= c.Row && other2.Row <= c.Row) ||
		(other1.Row <= c.Row && other2.Row >= c.Row)
	return Angle{At: c, Crossing: crossing}, true
}

// Compare orders vertex records by position only.
func (a Angle) Compare(other Angle) int {
	return a.At.Compare(other.At)
}

// correction returns the amount which must be subtracted from the edge
// crossing count of a ray cast from c.
func (a Angle) correction(c Coordinate) int {
	if a.At.Row != c.Row || a.At.Col < c.Col {
		return 0
	}
	if a.Crossing {
		return 1
	}
	return 2
}

func (a Angle) String() string {
	if a.Crossing {
		return "[" + a.At.String() + ",i]"
	}
	return "[" + a.At.String() + ",t]"
}
