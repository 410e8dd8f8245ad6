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

package unit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/patterns/raster"
)

func TestTypeNames(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}

	if got, err := ParseType("octagon"); err != nil || got != Octagon {
		t.Errorf("ParseType(octagon) = %v, %v", got, err)
	}
	if _, err := ParseType("Octogon"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ParseType(Octogon): got %v", err)
	}
	if s := Type(99).String(); s != "Type(99)" {
		t.Errorf("invalid type prints as %q", s)
	}
}

func TestTypeText(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("HorizontalStripe")); err != nil {
		t.Fatal(err)
	}
	if typ != HorizontalStripe {
		t.Errorf("got %v", typ)
	}
	text, err := Cane.MarshalText()
	if err != nil || string(text) != "Cane" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if _, err := Type(-1).MarshalText(); !errors.Is(err, ErrUnknownType) {
		t.Errorf("MarshalText of invalid type: got %v", err)
	}
}

func TestNumScales(t *testing.T) {
	want := map[Type]int{
		Square: 1, HorizontalStripe: 1, VerticalStripe: 1, Circle: 1,
		Star: 1, Heart: 1, Cat: 1,
		Rectangle: 2, Diamond: 2, Cross: 2, Crescent: 2, Spike: 2,
		Arrow: 2, Tilde: 2, Zigzag: 2, Cane: 2,
		Triangle: 3, Trapezoid: 3,
		Pentagon: 5, Hexagon: 6, Heptagon: 7, Octagon: 8,
	}
	if len(want) != len(Types()) {
		t.Fatalf("table covers %d of %d types", len(want), len(Types()))
	}
	for typ, n := range want {
		if got := typ.NumScales(); got != n {
			t.Errorf("%s.NumScales() = %d, want %d", typ, got, n)
		}
		if n > MaxScales {
			t.Errorf("%s needs more than MaxScales values", typ)
		}
	}
}

func TestVariantScales(t *testing.T) {
	tests := []struct {
		typ  Type
		want []float64
	}{
		{Square, []float64{0.5}},
		{Rectangle, []float64{0.5, 0.25}},
		{Trapezoid, []float64{0.5, 0.25, 0.25}},
		{Crescent, []float64{0.5, 0.55}},
		{Pentagon, []float64{0.5, 0.5, 0.5, 0.5, 0.5}},
	}
	for _, test := range tests {
		got := VariantScales(test.typ, 0.5)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%s: (-want +got):\n%s", test.typ, d)
		}
		if test.typ.Correlated() != (test.typ != Square && test.typ != Pentagon) {
			t.Errorf("%s.Correlated() = %t", test.typ, test.typ.Correlated())
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Type(42), 11, 11, []float64{0.5}); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type: got %v", err)
	}
	if _, err := New(Square, 0, 11, []float64{0.5}); !errors.Is(err, ErrSize) {
		t.Errorf("zero height: got %v", err)
	}
	if _, err := New(Octagon, 11, 11, []float64{0.5}); !errors.Is(err, ErrScaleCount) {
		t.Errorf("scale count: got %v", err)
	}

	u, err := New(Square, 11, 11, []float64{2})
	if !errors.Is(err, raster.ErrOutOfRange) {
		t.Errorf("oversized square: got %v", err)
	}
	if u == nil || u.Grid().Count() == 0 {
		t.Error("oversized square was not drawn")
	}
}

func TestSquare(t *testing.T) {
	u, err := New(Square, 10, 10, []float64{0.6})
	if err != nil {
		t.Fatal(err)
	}
	if u.Height() != 11 || u.Width() != 11 {
		t.Fatalf("size %dx%d, want 11x11", u.Height(), u.Width())
	}
	for row := range 11 {
		for col := range 11 {
			want := uint8(0)
			if row >= 2 && row <= 8 && col >= 2 && col <= 8 {
				want = 1
			}
			got, err := u.Pixel(row, col)
			if err != nil || got != want {
				t.Fatalf("pixel (%d,%d) = %d, %v; want %d\n%s", row, col, got, err, want, u)
			}
		}
	}
	if u.Outline() == nil {
		t.Error("square has no outline")
	}
}

func TestCircle(t *testing.T) {
	u, err := New(Circle, 11, 11, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	want := "" +
		"...#####...\n" +
		"..#######..\n" +
		".#########.\n" +
		"###########\n" +
		"###########\n" +
		"###########\n" +
		"###########\n" +
		"###########\n" +
		".#########.\n" +
		"..#######..\n" +
		"...#####...\n"
	if got := u.String(); got != want {
		t.Errorf("circle mismatch:\n%s\nwant:\n%s", got, want)
	}
	if u.Outline() != nil {
		t.Error("circle has a polygon outline")
	}
}

func TestStripes(t *testing.T) {
	h, err := New(HorizontalStripe, 11, 11, []float64{0.6})
	if err != nil {
		t.Fatal(err)
	}
	if n := h.Grid().Count(); n != 77 {
		t.Errorf("horizontal stripe has %d pixels, want 77\n%s", n, h)
	}
	if !h.VerticalOffsetAllowed() || h.HorizontalOffsetAllowed() {
		t.Error("horizontal stripe: wrong offset flags")
	}

	v, err := New(VerticalStripe, 11, 11, []float64{0.6})
	if err != nil {
		t.Fatal(err)
	}
	if n := v.Grid().Count(); n != 77 {
		t.Errorf("vertical stripe has %d pixels, want 77\n%s", n, v)
	}
	if v.VerticalOffsetAllowed() || !v.HorizontalOffsetAllowed() {
		t.Error("vertical stripe: wrong offset flags")
	}
}

func TestScaleRepair(t *testing.T) {
	tests := []struct {
		typ      Type
		in, want []float64
	}{
		{Rectangle, []float64{0.5, 0.8}, []float64{0.5, 0.25}},
		{Rectangle, []float64{0.5, 0.3}, []float64{0.5, 0.3}},
		{Trapezoid, []float64{0.5, 0.5, 0.4}, []float64{0.5, 0.25, 0.4}},
		{Crescent, []float64{0.5, 1.5}, []float64{0.5, 0.55}},
		{Cross, []float64{0.75, 0.9}, []float64{0.75, 0.25}},
		{Cross, []float64{0.75, 0.75}, []float64{0.75, 0.25}},
		{Cross, []float64{0.75, 0.2}, []float64{0.75, 0.2}},
	}
	for _, test := range tests {
		u, err := New(test.typ, 21, 21, test.in)
		if err != nil {
			t.Fatalf("%s %v: %v", test.typ, test.in, err)
		}
		if d := cmp.Diff(test.want, u.Scales()); d != "" {
			t.Errorf("%s %v: (-want +got):\n%s", test.typ, test.in, d)
		}
	}
}

// TestCrossLimbWidth checks that a cross whose limbs would be as wide as
// its arms are long is drawn with the narrower replacement limbs.
func TestCrossLimbWidth(t *testing.T) {
	u, err := New(Cross, 51, 51, []float64{0.75, 0.9})
	if err != nil {
		t.Fatal(err)
	}
	// arm 18.75 and limb 6.25 around the centre (25, 25)
	if got, want := rowString(u.Grid(), 6), span(51, 18, 31); got != want {
		t.Errorf("top row:\n got %s\nwant %s", got, want)
	}
	if got, want := rowString(u.Grid(), 5), span(51, 0, -1); got != want {
		t.Errorf("row above the cross:\n got %s\nwant %s", got, want)
	}
}

// TestCrescentEndRows checks the rows through the two tips of the
// crescent, where the outline runs along a row and back.
func TestCrescentEndRows(t *testing.T) {
	u, err := New(Crescent, 50, 50, []float64{0.45, 0.55})
	if err != nil {
		t.Fatal(err)
	}
	want := span(51, 21, 25)
	for _, row := range []int{14, 36} {
		if got := rowString(u.Grid(), row); got != want {
			t.Errorf("row %d:\n got %s\nwant %s\n%s", row, got, want, u)
		}
	}
	for _, row := range []int{13, 37} {
		if got := rowString(u.Grid(), row); got != span(51, 0, -1) {
			t.Errorf("row %d not empty: %s", row, got)
		}
	}
}

func TestWithoutSpurs(t *testing.T) {
	ring := []raster.Coordinate{
		{Row: 2, Col: 5}, {Row: 2, Col: 1}, {Row: 6, Col: 0},
		{Row: 6, Col: 3}, {Row: 2, Col: 3},
	}
	want := []raster.Coordinate{
		{Row: 2, Col: 1}, {Row: 6, Col: 0}, {Row: 6, Col: 3}, {Row: 2, Col: 3},
	}
	if d := cmp.Diff(want, withoutSpurs(ring)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	square := []raster.Coordinate{
		{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 0, Col: 4},
		{Row: 4, Col: 4}, {Row: 4, Col: 0},
	}
	want = []raster.Coordinate{
		{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 4, Col: 4}, {Row: 4, Col: 0},
	}
	if d := cmp.Diff(want, withoutSpurs(square)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

// TestFillWithinBoundary draws every shape at several sizes and scales
// and checks that no pixel is filled outside the plotted outline of its
// row. Shapes only a few pixels across are left out, since there the
// outline runs of a row cannot be told apart.
func TestFillWithinBoundary(t *testing.T) {
	sizes := [][2]int{{51, 51}, {41, 41}, {61, 61}, {31, 41}, {41, 51}}
	for _, typ := range Types() {
		if typ == Tilde {
			// plotted only, never filled
			continue
		}
		for _, size := range sizes {
			for _, s := range []float64{0.3, 0.45, 0.6, 0.9} {
				u, err := New(typ, size[0], size[1], VariantScales(typ, s))
				if err != nil {
					t.Errorf("%s %dx%d at %g: %v", typ, size[0], size[1], s, err)
					continue
				}
				if typ == Circle {
					checkInDisc(t, u)
				} else {
					checkWithinRows(t, u)
				}
			}
		}
	}
}

// checkWithinRows reports filled pixels to the left or right of all
// outline pixels on the same row. Rows holding a horizontal step of the
// outline are skipped: the ray test does not handle these.
func checkWithinRows(t *testing.T, u *UnitPattern) {
	t.Helper()
	if u.poly == nil {
		t.Fatalf("%s: no outline", u.Type())
	}
	lo := map[int]int{}
	hi := map[int]int{}
	for _, p := range u.poly.Points() {
		if l, ok := lo[p.Row]; !ok || p.Col < l {
			lo[p.Row] = p.Col
		}
		if h, ok := hi[p.Row]; !ok || p.Col > h {
			hi[p.Row] = p.Col
		}
	}
	steps := stepRows(u.poly)
	g := u.Grid()
	for row := range g.Height() {
		if steps[row] {
			continue
		}
		for col := range g.Width() {
			if !g.Filled(row, col) {
				continue
			}
			l, ok := lo[row]
			if !ok || col < l || col > hi[row] {
				t.Errorf("%s %dx%d %v: pixel (%d,%d) outside the outline\n%s",
					u.Type(), g.Height(), g.Width(), u.Scales(), row, col, u)
				return
			}
		}
	}
}

// stepRows returns the rows of p where a run of horizontal edges joins an
// edge coming from above to one leaving downwards, or where the run ends
// in a vertex shared by more than two edges.
func stepRows(p *raster.Polygon) map[int]bool {
	at := map[raster.Coordinate][]raster.Edge{}
	for _, e := range p.Edges() {
		at[e.C1] = append(at[e.C1], e)
		at[e.C2] = append(at[e.C2], e)
	}

	// above follows the horizontal run from v, arriving along cur, and
	// reports whether the first other edge leaves upwards.
	above := func(v raster.Coordinate, cur raster.Edge) (bool, bool) {
		for range len(p.Edges()) {
			var next []raster.Edge
			for _, e := range at[v] {
				if e != cur {
					next = append(next, e)
				}
			}
			if len(next) != 1 {
				return false, false
			}
			cur = next[0]
			w := cur.C1
			if w == v {
				w = cur.C2
			}
			if !cur.Horizontal() {
				return w.Row < v.Row, true
			}
			v = w
		}
		return false, false
	}

	res := map[int]bool{}
	for _, e := range p.Edges() {
		if !e.Horizontal() {
			continue
		}
		up1, ok1 := above(e.C1, e)
		up2, ok2 := above(e.C2, e)
		if !ok1 || !ok2 || up1 != up2 {
			res[e.C1.Row] = true
		}
	}
	return res
}

// checkInDisc reports filled pixels further from the centre than the
// circle radius plus one pixel.
func checkInDisc(t *testing.T, u *UnitPattern) {
	t.Helper()
	g := u.Grid()
	c := u.center()
	r := u.Scales()[0]*float64(min(g.Height(), g.Width()))/2 + 1
	for row := range g.Height() {
		for col := range g.Width() {
			dr, dc := float64(row-c.Row), float64(col-c.Col)
			if g.Filled(row, col) && dr*dr+dc*dc > r*r {
				t.Errorf("circle %v: pixel (%d,%d) outside the disc\n%s",
					u.Scales(), row, col, u)
				return
			}
		}
	}
}

// rowString returns one row of g, using '#' for filled pixels.
func rowString(g *raster.Grid, row int) string {
	b := make([]byte, g.Width())
	for col := range b {
		b[col] = '.'
		if g.Filled(row, col) {
			b[col] = '#'
		}
	}
	return string(b)
}

// span returns a row of the given width with columns from..to filled.
func span(width, from, to int) string {
	b := make([]byte, width)
	for col := range b {
		b[col] = '.'
		if col >= from && col <= to {
			b[col] = '#'
		}
	}
	return string(b)
}

// TestAllShapes draws every shape at a small and a large scale and
// checks that the result fits into the grid.
func TestAllShapes(t *testing.T) {
	for _, typ := range Types() {
		for _, s := range []float64{0.2, 0.9} {
			u, err := New(typ, 50, 50, VariantScales(typ, s))
			if err != nil {
				t.Errorf("%s at %g: %v", typ, s, err)
				continue
			}
			if u.Grid().Count() == 0 {
				t.Errorf("%s at %g is empty", typ, s)
			}
			if u.Type() != typ {
				t.Errorf("%s: Type() = %s", typ, u.Type())
			}
		}
	}
}

func TestCenterFilled(t *testing.T) {
	solid := []Type{
		Square, Rectangle, Diamond, Circle, Triangle, Pentagon, Hexagon,
		Heptagon, Octagon, Star, Cross, Spike, Cat, Trapezoid,
		Heart, Arrow,
	}
	for _, typ := range solid {
		u, err := New(typ, 51, 51, VariantScales(typ, 0.9))
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if !u.Grid().Filled(25, 25) {
			t.Errorf("%s: centre not filled\n%s", typ, u)
		}
		if u.Grid().Filled(0, 0) {
			t.Errorf("%s: corner filled\n%s", typ, u)
		}
	}
}

func TestFillTransitions(t *testing.T) {
	g := raster.NewGrid(5, 5)
	var boundary []raster.Coordinate
	for i := 1; i <= 3; i++ {
		boundary = append(boundary,
			raster.Coordinate{Row: 1, Col: i}, raster.Coordinate{Row: 3, Col: i},
			raster.Coordinate{Row: i, Col: 1}, raster.Coordinate{Row: i, Col: 3})
	}
	for _, c := range boundary {
		g.Set(c.Row, c.Col, 1)
	}
	if err := fillTransitions(g, loneEdgePoints(boundary)); err != nil {
		t.Fatal(err)
	}

	want := ".....\n.###.\n.###.\n.###.\n.....\n"
	if got := g.String(); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestLoneEdgePoints(t *testing.T) {
	points := []raster.Coordinate{{Row: 3, Col: 4}, {Row: 1, Col: 5}, {Row: 1, Col: 2}, {Row: 3, Col: 1}}
	want := []raster.Coordinate{{Row: 1, Col: 2}, {Row: 3, Col: 1}}
	if d := cmp.Diff(want, loneEdgePoints(points)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if loneEdgePoints(nil) != nil {
		t.Error("lone edge points for an empty set")
	}
}
