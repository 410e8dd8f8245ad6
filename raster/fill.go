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
	"cmp"
	"slices"
)

// Scanline filling:
//
// Fill gives the same result as calling IsInside for every pixel of the
// grid, but works one row at a time. Edges are sorted by their first row
// and kept in an active edge list while the scanline lies within their
// row span. For each row, the crossing columns of the active edges are
// sorted, and the columns are swept from left to right:
//
//   count(col) = #{crossing columns >= col} - sum of vertex corrections
//                for vertices on this row with column >= col
//
// A pixel is inside if count(col) is odd.

// Fill sets every pixel of g which lies inside the polygon. Pixels of the
// polygon outside g are ignored. The boundary is not plotted, see
// [Polygon.Plot].
func (p *Polygon) Fill(g *Grid) {
	if len(p.points) == 0 {
		return
	}
	rowMin := max(p.minRow, 0)
	rowMax := min(p.maxRow, g.height-1)
	colMin := max(p.minCol, 0)
	colMax := min(p.maxCol, g.width-1)
	if rowMin > rowMax || colMin > colMax {
		return
	}

	// Sort edge indices by first row
	order := make([]int, len(p.edges))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(p.edges[a].C1.Row, p.edges[b].C1.Row)
	})

	active := make([]int, 0, len(p.edges)) // indices of active edges
	xs := make([]float64, 0, len(p.edges)) // crossing columns on current row
	nextEdge := 0
	nextAngle := 0

	for row := rowMin; row <= rowMax; row++ {
		// Add edges that start at or before this row
		for nextEdge < len(order) && p.edges[order[nextEdge]].C1.Row <= row {
			active = append(active, order[nextEdge])
			nextEdge++
		}

		xs = xs[:0]
		for i := 0; i < len(active); {
			e := &p.edges[active[i]]
			if e.C2.Row < row {
				// Remove from active list (swap with last)
				active[i] = active[len(active)-1]
				active = active[:len(active)-1]
				continue
			}
			if !e.Horizontal() {
				xs = append(xs, e.ColAtRow(row))
			}
			i++
		}
		slices.Sort(xs)

		// Vertex records are sorted by row, then column.
		for nextAngle < len(p.angles) && p.angles[nextAngle].At.Row < row {
			nextAngle++
		}
		end := nextAngle
		correction := 0
		for end < len(p.angles) && p.angles[end].At.Row == row {
			correction += p.angles[end].correction(p.angles[end].At)
			end++
		}
		rowAngles := p.angles[nextAngle:end]

		xi, ai := 0, 0
		rowPix := g.pix[row*g.width : (row+1)*g.width]
		for col := colMin; col <= colMax; col++ {
			for xi < len(xs) && xs[xi] < float64(col) {
				xi++
			}
			for ai < len(rowAngles) && rowAngles[ai].At.Col < col {
				correction -= rowAngles[ai].correction(rowAngles[ai].At)
				ai++
			}
			if (len(xs)-xi-correction)%2 != 0 {
				rowPix[col] = 1
			}
		}
	}
}
