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
	"slices"

	"seehuhn.de/go/patterns/raster"
)

// generators draws the shapes. Each function paints into u.grid, using
// the (repaired) scale values in u.scales.
var generators = [numTypes]func(u *UnitPattern) error{
	Square:           drawSquare,
	Rectangle:        drawRectangle,
	Diamond:          drawDiamond,
	Triangle:         drawRegular,
	HorizontalStripe: drawHorizontalStripe,
	VerticalStripe:   drawVerticalStripe,
	Circle:           drawCircle,
	Hexagon:          drawRegular,
	Pentagon:         drawRegular,
	Heptagon:         drawRegular,
	Star:             drawStar,
	Octagon:          drawRegular,
	Trapezoid:        drawTrapezoid,
	Heart:            drawHeart,
	Cross:            drawCross,
	Crescent:         drawCrescent,
	Spike:            drawSpike,
	Arrow:            drawArrow,
	Tilde:            drawTilde,
	Zigzag:           drawZigzag,
	Cane:             drawCane,
	Cat:              drawCat,
}

// pt returns the pixel at the given row and column offsets from c,
// truncating towards zero.
func pt(c raster.Coordinate, dRow, dCol float64) raster.Coordinate {
	return raster.Pt(float64(c.Row)+dRow, float64(c.Col)+dCol)
}

// radius returns s times half the smaller grid dimension, truncated.
func (u *UnitPattern) radius(s float64) int {
	return int(s * float64(min(u.grid.Height(), u.grid.Width())) / 2)
}

func drawSquare(u *UnitPattern) error {
	c := u.center()
	r := u.radius(u.scales[0])
	return u.drawPolygon([]raster.Coordinate{
		{Row: c.Row - r, Col: c.Col - r},
		{Row: c.Row - r, Col: c.Col + r},
		{Row: c.Row + r, Col: c.Col + r},
		{Row: c.Row + r, Col: c.Col - r},
	})
}

func drawRectangle(u *UnitPattern) error {
	c := u.center()
	wr := int(u.scales[0] * float64(u.grid.Width()) / 2)
	hr := int(u.scales[1] * float64(u.grid.Height()) / 2)
	return u.drawPolygon([]raster.Coordinate{
		{Row: c.Row - hr, Col: c.Col - wr},
		{Row: c.Row - hr, Col: c.Col + wr},
		{Row: c.Row + hr, Col: c.Col + wr},
		{Row: c.Row + hr, Col: c.Col - wr},
	})
}

func drawDiamond(u *UnitPattern) error {
	c := u.center()
	wr := int(u.scales[0] * float64(u.grid.Width()) / 2)
	hr := int(u.scales[1] * float64(u.grid.Height()) / 2)
	return u.drawPolygon([]raster.Coordinate{
		{Row: c.Row + hr, Col: c.Col},
		{Row: c.Row, Col: c.Col - wr},
		{Row: c.Row - hr, Col: c.Col},
		{Row: c.Row, Col: c.Col + wr},
	})
}

// drawRegular draws a polygon with one vertex per scale value. The
// vertices are spread evenly around the centre, starting at the top, and
// scale i controls the distance of vertex i.
func drawRegular(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	n := len(u.scales)
	split := 360.0 / float64(n)
	vertices := make([]raster.Coordinate, n)
	for i, s := range u.scales {
		vertices[i] = raster.PointAtAngle(180+float64(i)*split, s*t, c)
	}
	return u.drawPolygon(vertices)
}

func drawStar(u *UnitPattern) error {
	c := u.center()
	r := float64(u.radius(u.scales[0]))

	var outer [5]raster.Coordinate
	for k := range outer {
		outer[k] = raster.PointAtAngle(180+float64(k)*72, r, c)
	}
	vertices := make([]raster.Coordinate, 0, 10)
	for k := range outer {
		next := outer[(k+1)%5]
		vertices = append(vertices, outer[k], raster.Centroid(outer[k], next, c))
	}
	return u.drawPolygon(vertices)
}

func drawHorizontalStripe(u *UnitPattern) error {
	c := u.center()
	r := u.radius(u.scales[0])
	right := u.grid.Width() - 1
	return u.drawPolygon([]raster.Coordinate{
		{Row: c.Row + r, Col: 0},
		{Row: c.Row - r, Col: 0},
		{Row: c.Row - r, Col: right},
		{Row: c.Row + r, Col: right},
	})
}

func drawVerticalStripe(u *UnitPattern) error {
	c := u.center()
	r := u.radius(u.scales[0])
	bottom := u.grid.Height() - 1
	return u.drawPolygon([]raster.Coordinate{
		{Row: 0, Col: c.Col + r},
		{Row: 0, Col: c.Col - r},
		{Row: bottom, Col: c.Col - r},
		{Row: bottom, Col: c.Col + r},
	})
}

func drawTrapezoid(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	bottom := int(u.scales[0] * t)
	top := int(u.scales[1] * t)
	h := int(u.scales[2] * t)
	return u.drawPolygon([]raster.Coordinate{
		{Row: c.Row - h, Col: c.Col - top},
		{Row: c.Row - h, Col: c.Col + top},
		{Row: c.Row + h, Col: c.Col + bottom},
		{Row: c.Row + h, Col: c.Col - bottom},
	})
}

// drawHeart joins a bottom tip to two fans of points on circles above the
// centre.
func drawHeart(u *UnitPattern) error {
	const step = 36.0

	c := u.center()
	hr := float64(u.half()) * u.scales[0]
	q := hr / 2

	vertices := []raster.Coordinate{pt(c, hr, 0)}

	fan := pt(c, -q, q)
	for a := 220.0; a < 360; a += step {
		vertices = append(vertices, raster.PointAtAngle(180+a, q, fan))
	}
	for a := 0.0; a < 90; a += step {
		vertices = append(vertices, raster.PointAtAngle(180+a, q, fan))
	}

	fan = pt(c, -q, -q)
	for a := 270.0; a < 360; a += step {
		vertices = append(vertices, raster.PointAtAngle(180+a, q, fan))
	}
	for a := 0.0; a <= 140; a += step {
		vertices = append(vertices, raster.PointAtAngle(180+a, q, fan))
	}

	return u.drawPolygon(vertices)
}

// drawCross draws a plus sign. The first scale sets the length of each
// arm, measured from the centre, and the second scale sets the half width
// of the limbs. If the second scale is not smaller than the first, it is
// replaced by a third of the first scale before drawing, so that
// VariantScales(Cross, s) gives limbs of width 2s/3 rather than a square.
func drawCross(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	arm := t * u.scales[0]
	limb := t * u.scales[1]

	vertices := []raster.Coordinate{
		pt(c, -arm, limb),
		pt(c, -limb, limb),
		pt(c, -limb, arm),
		pt(c, limb, arm),
		pt(c, limb, limb),
		pt(c, arm, limb),
		pt(c, arm, -limb),
		pt(c, limb, -limb),
		pt(c, limb, -arm),
		pt(c, -limb, -arm),
		pt(c, -limb, -limb),
		pt(c, -arm, -limb),
	}
	return u.drawLoneEdge(vertices)
}

// drawCrescent draws the left half of a circle and cuts it with a second
// curve, obtained by moving every arc point towards the centre column by
// the second scale.
//
// The outline is plotted as given, but the interior is filled from a copy
// with horizontal spurs removed, see [withoutSpurs].
func drawCrescent(u *UnitPattern) error {
	c := u.center()
	hr := float64(u.half()) * u.scales[0]

	var arc []raster.Coordinate
	for a := 180.0; a <= 360; a += 20 {
		p := raster.PointAtAngle(a, hr, c)
		if !slices.Contains(arc, p) {
			arc = append(arc, p)
		}
	}
	vertices := slices.Clone(arc)
	for i := len(arc) - 2; i >= 0; i-- {
		p := arc[i]
		dist := float64(c.Col - p.Col)
		q := raster.Pt(float64(p.Row), float64(p.Col)+dist*u.scales[1])
		if q == vertices[0] || q == vertices[len(vertices)-1] {
			continue
		}
		vertices = append(vertices, q)
	}

	u.poly = raster.FromVertices(vertices)
	err := u.poly.Plot(u.grid)
	raster.FromVertices(withoutSpurs(vertices)).Fill(u.grid)
	return err
}

// withoutSpurs returns a copy of the closed vertex ring with repeated
// vertices and horizontal spurs removed. A spur is a vertex whose two
// neighbours lie on its own row, on the same side of it. The ray casting
// fill counts such a vertex once, which flips the parity of the whole
// row to its left.
func withoutSpurs(vertices []raster.Coordinate) []raster.Coordinate {
	ring := slices.Clone(vertices)
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(ring) && len(ring) > 3; i++ {
			n := len(ring)
			prev, v, next := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
			spur := prev.Row == v.Row && next.Row == v.Row &&
				(prev.Col < v.Col) == (next.Col < v.Col)
			if v == next || spur {
				ring = slices.Delete(ring, i, i+1)
				changed = true
				i--
			}
		}
	}
	return ring
}

// drawSpike draws a star with 9 points, alternating between two radii.
func drawSpike(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	r1 := t * u.scales[0]
	r2 := t * u.scales[1]
	if r1 == r2 {
		r2 = r1 / 2
	}

	vertices := make([]raster.Coordinate, 0, 18)
	outer := false
	for a := 0.0; a < 360; a += 20 {
		r := r2
		if outer {
			r = r1
		}
		vertices = append(vertices, raster.PointAtAngle(a+2, r, c))
		outer = !outer
	}
	return u.drawPolygon(vertices)
}

// drawArrow draws an arrow pointing up.
func drawArrow(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	hr := t * u.scales[0]
	wr := t * u.scales[1]
	stem := wr / 2

	vertices := []raster.Coordinate{
		pt(c, -hr, 0),
		pt(c, 0, wr),
		pt(c, 0, stem),
		pt(c, hr, stem),
		pt(c, hr, -stem),
		pt(c, 0, -stem),
		pt(c, 0, -wr),
	}
	return u.drawLoneEdge(vertices)
}

func drawZigzag(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	w := t * u.scales[0]
	h := t * u.scales[1] / 1.5

	return u.drawPolygon([]raster.Coordinate{
		pt(c, 0, -w),
		pt(c, h, -w/3),
		pt(c, 0, w/3),
		pt(c, h, w),
		pt(c, 0, w),
		pt(c, -h, w/3),
		pt(c, 0, -w/3),
		pt(c, -h, -w),
	})
}

// drawCane draws a walking stick with the handle at the top right.
func drawCane(u *UnitPattern) error {
	c := u.center()
	t := float64(u.half())
	hr := t * u.scales[0]
	wr := t * u.scales[1]
	thick := wr / 4
	if hr == wr {
		wr /= 2
	}

	return u.drawPolygon([]raster.Coordinate{
		pt(c, hr, -wr),
		pt(c, -hr, -wr),
		pt(c, -hr, wr),
		pt(c, -hr/4, wr),
		pt(c, -hr/4, wr-thick),
		pt(c, -hr+thick, wr-thick),
		pt(c, -hr+thick, -wr+thick),
		pt(c, hr, -wr+thick),
	})
}

// drawCat draws the outline of a cat's head with two ears. The vertices
// run clockwise from the left side of the chin.
func drawCat(u *UnitPattern) error {
	c := u.center()
	r := float64(u.half()) * u.scales[0]
	h := r / 2
	q := r / 4
	e := r / 8

	return u.drawPolygon([]raster.Coordinate{
		pt(c, r, -q),
		pt(c, r, q),
		pt(c, h, h+q),
		pt(c, 0, h+q+e/2),
		pt(c, -q, h+q),
		pt(c, -r, h), // right ear tip
		pt(c, -h, q),
		pt(c, -h, -q),
		pt(c, -r, -h), // left ear tip
		pt(c, -q, -h-q),
		pt(c, 0, -h-q-e/2),
		pt(c, h, -h-q),
	})
}
