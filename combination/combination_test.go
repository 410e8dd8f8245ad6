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

package combination

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAll(t *testing.T) {
	tests := []struct {
		name       string
		candidates []int
		n          int
		want       [][]int
	}{
		{"pairs", []int{0, 1}, 2, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"single", []int{7, 8, 9}, 1, [][]int{{7}, {8}, {9}}},
		{"empty length", []int{1, 2}, 0, [][]int{{}}},
		{"no candidates", nil, 3, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := All(test.candidates, test.n)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want, got); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestAllCount(t *testing.T) {
	got, err := All([]string{"a", "b", "c"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 81 {
		t.Fatalf("got %d combinations, want 81", len(got))
	}
	seen := make(map[string]bool)
	for _, c := range got {
		key := c[0] + c[1] + c[2] + c[3]
		if seen[key] {
			t.Errorf("duplicate combination %v", c)
		}
		seen[key] = true
	}
}

func TestSampled(t *testing.T) {
	candidates := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got, err := Sampled(candidates, 3, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 500 {
		t.Fatalf("got %d combinations, want 500", len(got))
	}
	if d := cmp.Diff([][]int{{0, 0, 0}, {0, 0, 2}, {0, 0, 4}}, got[:3]); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	for _, c := range got {
		ordinal := c[0]*100 + c[1]*10 + c[2]
		if ordinal%2 != 0 {
			t.Errorf("kept combination %v with odd ordinal", c)
		}
	}

	again, _ := Sampled(candidates, 3, 0.5)
	if d := cmp.Diff(got, again); d != "" {
		t.Error("sampling is not deterministic")
	}
}

func TestSampledFallback(t *testing.T) {
	// 27 combinations are below the threshold and all are kept
	got, err := Sampled([]int{0, 1, 2}, 3, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 27 {
		t.Errorf("got %d combinations, want 27", len(got))
	}

	s := Sampler{FallbackThreshold: 10}
	got, err = Sample(s, []int{0, 1, 2}, 3, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("lowered threshold: got %d combinations, want 3", len(got))
	}
}

func TestSampledInvalid(t *testing.T) {
	for _, fraction := range []float64{0, -0.5, 1.5} {
		got, err := Sampled([]int{1, 2, 3}, 5, fraction)
		if err != nil || len(got) != 0 {
			t.Errorf("fraction %g: got %d combinations, %v", fraction, len(got), err)
		}
	}
	if got, _ := Sampled([]int(nil), 5, 0.5); len(got) != 0 {
		t.Errorf("no candidates: got %v", got)
	}
}

func TestTooMany(t *testing.T) {
	s := Sampler{FallbackThreshold: 100, Limit: 10}
	_, err := Sample(s, []int{0, 1, 2}, 3, 1)
	if !errors.Is(err, ErrTooMany) {
		t.Errorf("limit: got %v", err)
	}

	_, err = Sampled([]int{0, 1}, 200, 0.5)
	if !errors.Is(err, ErrTooMany) {
		t.Errorf("overflow: got %v", err)
	}
}

func TestDenominator(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{1, 1},
		{0.5, 2},
		{0.3, 3},
		{0.25, 4},
		{0.9, 1},
	}
	for _, test := range tests {
		if got := Denominator(test.fraction); got != test.want {
			t.Errorf("Denominator(%g) = %d, want %d", test.fraction, got, test.want)
		}
	}
}

func TestSeqStop(t *testing.T) {
	n := 0
	for ordinal := range Seq([]int{0, 1}, 10) {
		if ordinal != n {
			t.Fatalf("ordinal %d, want %d", ordinal, n)
		}
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("iterated %d times", n)
	}
}
