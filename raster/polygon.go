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
	"fmt"
	"strings"

	"seehuhn.de/go/patterns/array"
	"seehuhn.de/go/patterns/internal/logging"
)

// Polygon is a closed shape given by its edges, together with the
// boundary pixels and vertex records derived from them. A Polygon is
// immutable after construction.
//
// Containment is decided by a ray-casting test, see [Polygon.IsInside].
// The test is an approximation: it assumes that at most two edges meet at
// any vertex.
type Polygon struct {
	edges  []Edge       // deduplicated, sorted, non-degenerate
	points []Coordinate // boundary pixels, deduplicated and sorted
	angles []Angle      // one per vertex, sorted by position

	minRow, maxRow int
	minCol, maxCol int
}

// NewPolygon builds a polygon from the given edges. Duplicate edges are
// removed. Degenerate edges contribute their single pixel to the boundary
// but are otherwise ignored.
func NewPolygon(edges []Edge) *Polygon {
	es := array.From(Edge.Compare, edges...)
	es.RemoveDuplicates()

	pts := array.New(compareCoordinates)
	kept := make([]Edge, 0, es.Len())
	for _, e := range es.All() {
		for _, c := range StraightLine(e.C1, e.C2) {
			pts.Push(c)
		}
		if e.Degenerate() {
			logging.Logger().Warn("dropping zero-length edge", "at", e.C1.String())
			continue
		}
		kept = append(kept, e)
	}
	pts.RemoveDuplicates()

	angles := array.New(Angle.Compare)
	for i := range kept {
		for j := range kept {
			if i == j || !SharesPoint(kept[i], kept[j]) {
				continue
			}
			if a, ok := NewAngle(kept[i], kept[j]); ok {
				angles.Push(a)
			}
		}
	}
	angles.RemoveDuplicates()

	p := &Polygon{
		edges:  kept,
		points: pts.Items(),
		angles: angles.Items(),
	}
	for i, c := range p.points {
		if i == 0 {
			p.minRow, p.maxRow = c.Row, c.Row
			p.minCol, p.maxCol = c.Col, c.Col
			continue
		}
		p.minRow = min(p.minRow, c.Row)
		p.maxRow = max(p.maxRow, c.Row)
		p.minCol = min(p.minCol, c.Col)
		p.maxCol = max(p.maxCol, c.Col)
	}
	return p
}

// FromVertices returns the polygon whose edges join consecutive vertices,
// with a final edge from the last vertex back to the first.
func FromVertices(vertices []Coordinate) *Polygon {
	return NewPolygon(Closed(vertices))
}

// Closed returns the edges joining consecutive vertices, wrapping around
// at the end.
func Closed(vertices []Coordinate) []Edge {
	edges := make([]Edge, len(vertices))
	for i, c := range vertices {
		edges[i] = NewEdge(c, vertices[(i+1)%len(vertices)])
	}
	return edges
}

// Edges returns the deduplicated, non-degenerate edges of the polygon.
func (p *Polygon) Edges() []Edge { return p.edges }

// Points returns the pixels on the polygon boundary, sorted by row and
// then column.
func (p *Polygon) Points() []Coordinate { return p.points }

// Angles returns the vertex records of the polygon.
func (p *Polygon) Angles() []Angle { return p.angles }

// inBounds is a cheap rejection test against the bounding box of the
// boundary pixels.
func (p *Polygon) inBounds(c Coordinate) bool {
	return len(p.points) > 0 &&
		c.Row >= p.minRow && c.Row <= p.maxRow &&
		c.Col >= p.minCol && c.Col <= p.maxCol
}

// IsInside reports whether c lies inside the polygon.
//
// A ray is cast from c towards increasing columns and the number of edges
// it meets is counted. Every vertex on the ray was counted once for each
// of its two edges; a crossing vertex is corrected by one, a touching
// vertex (local extremum) by two. The point is inside if the corrected
// count is odd.
func (p *Polygon) IsInside(c Coordinate) bool {
	if !p.inBounds(c) {
		return false
	}
	n := 0
	for _, e := range p.edges {
		if e.crosses(c) {
			n++
		}
	}
	for _, a := range p.angles {
		n -= a.correction(c)
	}
	return n%2 != 0
}

// Plot sets every boundary pixel of the polygon in g. Pixels outside g
// are skipped and reported as an error wrapping [ErrOutOfRange].
func (p *Polygon) Plot(g *Grid) error {
	var first error
	skipped := 0
	for _, c := range p.points {
		if err := g.Set(c.Row, c.Col, 1); err != nil {
			if first == nil {
				first = err
			}
			skipped++
		}
	}
	if first != nil {
		return fmt.Errorf("plot: %d boundary pixels skipped: %w", skipped, first)
	}
	return nil
}

// Draw plots the boundary of p into g and then fills its interior.
func (p *Polygon) Draw(g *Grid) error {
	err := p.Plot(g)
	p.Fill(g)
	return err
}

func (p *Polygon) String() string {
	var b strings.Builder
	b.WriteString("Points : { ")
	for _, c := range p.points {
		b.WriteString(c.String() + " ")
	}
	b.WriteString(" }\nEdges : { ")
	for _, e := range p.edges {
		b.WriteString(e.String() + " ")
	}
	b.WriteString(" }\nAngles : { ")
	for _, a := range p.angles {
		b.WriteString(a.String() + " ")
	}
	fmt.Fprintf(&b, " }\nWidth Range: {%d - %d} | Height Range: {%d - %d}\n",
		p.minCol, p.maxCol, p.minRow, p.maxRow)
	return b.String()
}
