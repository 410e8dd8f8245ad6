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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func diamond() *Polygon {
	return FromVertices([]Coordinate{{0, 5}, {5, 10}, {10, 5}, {5, 0}})
}

func TestPolygonDedup(t *testing.T) {
	a, b, c := Coordinate{0, 0}, Coordinate{0, 4}, Coordinate{4, 0}
	p := NewPolygon([]Edge{
		NewEdge(a, b), NewEdge(b, a), NewEdge(b, c), NewEdge(c, a), NewEdge(c, c),
	})
	if n := len(p.Edges()); n != 3 {
		t.Errorf("got %d edges, want 3", n)
	}
	if n := len(p.Angles()); n != 3 {
		t.Errorf("got %d angles, want 3", n)
	}
	seen := make(map[Coordinate]bool)
	for _, pt := range p.Points() {
		if seen[pt] {
			t.Errorf("duplicate boundary pixel %s", pt)
		}
		seen[pt] = true
	}
}

func TestPolygonAngles(t *testing.T) {
	want := []Angle{
		{At: Coordinate{0, 5}, Crossing: false},
		{At: Coordinate{5, 0}, Crossing: true},
		{At: Coordinate{5, 10}, Crossing: true},
		{At: Coordinate{10, 5}, Crossing: false},
	}
	if d := cmp.Diff(want, diamond().Angles()); d != "" {
		t.Errorf("angles mismatch (-want +got):\n%s", d)
	}
}

func TestIsInsideConvex(t *testing.T) {
	p := diamond()
	for row := 2; row <= 8; row++ {
		for col := 2; col <= 8; col++ {
			dist := abs(row-5) + abs(col-5)
			if dist > 3 {
				continue
			}
			if !p.IsInside(Coordinate{row, col}) {
				t.Errorf("(%d,%d) not inside", row, col)
			}
		}
	}
	for _, c := range []Coordinate{{-1, 5}, {11, 5}, {5, -1}, {5, 11}, {20, 20}} {
		if p.IsInside(c) {
			t.Errorf("%s reported inside", c)
		}
	}
}

func TestSquareFill(t *testing.T) {
	g := NewGrid(11, 11)
	p := FromVertices([]Coordinate{{2, 2}, {2, 8}, {8, 8}, {8, 2}})
	if err := p.Draw(g); err != nil {
		t.Fatal(err)
	}
	if n := g.Count(); n != 49 {
		t.Errorf("square has %d pixels, want 49\n%s", n, g)
	}
	for row := range 11 {
		for col := range 11 {
			want := row >= 2 && row <= 8 && col >= 2 && col <= 8
			if g.Filled(row, col) != want {
				t.Errorf("pixel (%d,%d) = %t, want %t", row, col, !want, want)
			}
		}
	}
}

// TestFillMatchesIsInside checks that the scanline fill agrees with the
// per-pixel containment test.
func TestFillMatchesIsInside(t *testing.T) {
	const size = 30
	rng := rand.New(rand.NewPCG(5, 6))
	for i := range 200 {
		n := 3 + rng.IntN(6)
		vertices := make([]Coordinate, n)
		for j := range vertices {
			vertices[j] = Coordinate{rng.IntN(size), rng.IntN(size)}
		}
		p := FromVertices(vertices)

		g := NewGrid(size, size)
		p.Fill(g)
		for row := range size {
			for col := range size {
				c := Coordinate{row, col}
				if g.Filled(row, col) != p.IsInside(c) {
					t.Fatalf("polygon %d %v: Fill and IsInside disagree at %s",
						i, vertices, c)
				}
			}
		}
	}
}

func TestFillClipped(t *testing.T) {
	p := FromVertices([]Coordinate{{-5, -5}, {-5, 20}, {20, 20}, {20, -5}})
	g := NewGrid(6, 7)
	p.Fill(g)
	if n := g.Count(); n != 42 {
		t.Errorf("clipped fill covers %d pixels, want 42", n)
	}

	err := p.Plot(NewGrid(6, 7))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Plot: expected ErrOutOfRange, got %v", err)
	}
}

func TestBoundsAndOutline(t *testing.T) {
	p := FromVertices([]Coordinate{{2, 2}, {2, 8}, {8, 8}, {8, 2}})

	want := rect.Rect{LLx: 2, LLy: 2, URx: 9, URy: 9}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	out := p.Outline()
	if len(out.Cmds) != 8 {
		t.Fatalf("outline has %d commands, want 8", len(out.Cmds))
	}
	for i, cmd := range out.Cmds {
		want := path.CmdLineTo
		if i%2 == 0 {
			want = path.CmdMoveTo
		}
		if cmd != want {
			t.Errorf("command %d = %v, want %v", i, cmd, want)
		}
	}
	// first edge runs along the top row
	if out.Coords[0] != (vec.Vec2{X: 2.5, Y: 2.5}) || out.Coords[1] != (vec.Vec2{X: 8.5, Y: 2.5}) {
		t.Errorf("first edge = %v - %v", out.Coords[0], out.Coords[1])
	}

	if got := NewPolygon(nil).Bounds(); got != (rect.Rect{}) {
		t.Errorf("empty polygon bounds = %v", got)
	}
}
