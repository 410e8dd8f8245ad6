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
	"fmt"
	"strings"
)

// ErrUnknownType is returned for shape types which have no generator.
var ErrUnknownType = errors.New("unknown pattern type")

// Type identifies the shape drawn by a unit pattern.
type Type int

// These are the supported shapes.
const (
	Square Type = iota
	Rectangle
	Diamond
	Triangle
	HorizontalStripe
	VerticalStripe
	Circle
	Hexagon
	Pentagon
	Heptagon
	Star
	Octagon
	Trapezoid
	Heart
	Cross
	Crescent
	Spike
	Arrow
	Tilde
	Zigzag
	Cane
	Cat

	numTypes
)

var typeInfo = [numTypes]struct {
	name   string
	scales int
}{
	Square:           {"Square", 1},
	Rectangle:        {"Rectangle", 2},
	Diamond:          {"Diamond", 2},
	Triangle:         {"Triangle", 3},
	HorizontalStripe: {"HorizontalStripe", 1},
	VerticalStripe:   {"VerticalStripe", 1},
	Circle:           {"Circle", 1},
	Hexagon:          {"Hexagon", 6},
	Pentagon:         {"Pentagon", 5},
	Heptagon:         {"Heptagon", 7},
	Star:             {"Star", 1},
	Octagon:          {"Octagon", 8},
	Trapezoid:        {"Trapezoid", 3},
	Heart:            {"Heart", 1},
	Cross:            {"Cross", 2},
	Crescent:         {"Crescent", 2},
	Spike:            {"Spike", 2},
	Arrow:            {"Arrow", 2},
	Tilde:            {"Tilde", 2},
	Zigzag:           {"Zigzag", 2},
	Cane:             {"Cane", 2},
	Cat:              {"Cat", 1},
}

// MaxScales is the largest number of scale values any shape uses.
const MaxScales = 8

// Types returns all supported shapes in declaration order.
func Types() []Type {
	res := make([]Type, numTypes)
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

// Valid reports whether t is one of the supported shapes.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeInfo[t].name
}

// NumScales returns the number of scale values the shape is parameterised
// by, or 0 for invalid types.
func (t Type) NumScales() int {
	if !t.Valid() {
		return 0
	}
	return typeInfo[t].scales
}

// Correlated reports whether the scale values of the shape depend on each
// other. For these shapes, equal scale values do not give a distinct
// shape (an equal-sided rectangle is a square), and [VariantScales]
// derives the secondary scales from the first one.
func (t Type) Correlated() bool {
	switch t {
	case Rectangle, Trapezoid, Crescent:
		return true
	}
	return false
}

// OffsetAllowed reports whether spacing between neighbouring tiles is
// meaningful for the shape in the vertical and horizontal directions.
// Stripes run across the whole tile and must not be interrupted along
// their direction.
func (t Type) OffsetAllowed() (vertical, horizontal bool) {
	switch t {
	case HorizontalStripe:
		return true, false
	case VerticalStripe:
		return false, true
	}
	return true, true
}

// ParseType returns the shape with the given name. Matching ignores case.
func ParseType(name string) (Type, error) {
	for i, info := range typeInfo {
		if strings.EqualFold(info.name, name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// VariantScales returns the scale values used to generate the variant of
// shape t at base scale s. Most shapes use s for every parameter. For the
// correlated shapes the secondary parameters are derived from s:
// rectangles are half as high as wide, trapezoids have a top edge and a
// height of half the base, and crescents use a fixed inner cut of 0.55.
func VariantScales(t Type, s float64) []float64 {
	res := make([]float64, t.NumScales())
	for i := range res {
		res[i] = s
	}
	switch t {
	case Rectangle:
		res[1] = 0.5 * s
	case Trapezoid:
		res[1] = 0.5 * s
		res[2] = 0.5 * s
	case Crescent:
		res[1] = 0.55
	}
	return res
}
