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

// Package combination enumerates fixed-length sequences over a set of
// candidates, with repetition. The canvas generator uses these sequences
// to decide which unit pattern variant goes into which tile.
//
// Sequences are produced in lexicographic order of candidate positions,
// with the first element varying slowest. For candidates [a b] and
// length 2 the order is [a a], [a b], [b a], [b b].
package combination

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// ErrTooMany is returned when a request would produce more combinations
// than the configured limit.
var ErrTooMany = errors.New("too many combinations")

// Sampler controls how [Sample] thins out combinations.
type Sampler struct {
	// FallbackThreshold is the number of combinations below which sampling
	// is disabled and every combination is returned.
	FallbackThreshold int

	// Limit is the largest number of combinations a single call may
	// return. Zero means no limit.
	Limit int
}

// DefaultSampler is used by [All] and [Sampled].
var DefaultSampler = Sampler{
	FallbackThreshold: 100,
	Limit:             1 << 20,
}

// Count returns k^n. The second result is false if the value does not fit
// into an int.
func Count(k, n int) (int, bool) {
	res := 1
	for range n {
		if k != 0 && res > math.MaxInt/k {
			return 0, false
		}
		res *= k
	}
	return res, true
}

// Denominator converts a keep fraction into "keep one in every d": the
// result is 1/fraction rounded down, but at least 1.
func Denominator(fraction float64) int {
	return max(int(1/fraction), 1)
}

// All returns every sequence of length n over candidates. The result is
// empty if there are no candidates, and holds a single empty sequence if
// n is zero.
func All[T any](candidates []T, n int) ([][]T, error) {
	return collect(DefaultSampler, candidates, n, 1)
}

// Sampled returns a deterministic subset of the sequences of length n,
// using [DefaultSampler]. See [Sample] for details.
func Sampled[T any](candidates []T, n int, fraction float64) ([][]T, error) {
	return Sample(DefaultSampler, candidates, n, fraction)
}

// Sample returns a deterministic subset of the sequences of length n over
// candidates. The fraction is normalised to "keep one in every d", see
// [Denominator], and the sequences with ordinal numbers 0, d, 2d, ... in
// enumeration order are kept.
//
// If fewer than s.FallbackThreshold sequences exist in total, or if d is
// one, all sequences are returned. The result is empty if there are no
// candidates or if the fraction is not in the range (0, 1].
func Sample[T any](s Sampler, candidates []T, n int, fraction float64) ([][]T, error) {
	if fraction > 1 || fraction <= 0 {
		return nil, nil
	}
	den := Denominator(fraction)
	if total, ok := Count(len(candidates), n); ok && total < s.FallbackThreshold {
		den = 1
	}
	return collect(s, candidates, n, den)
}

// collect returns every den-th sequence, after checking the result size
// against the limit.
func collect[T any](s Sampler, candidates []T, n, den int) ([][]T, error) {
	if len(candidates) == 0 || n < 0 {
		return nil, nil
	}

	total, ok := Count(len(candidates), n)
	kept := (total + den - 1) / den
	if !ok || s.Limit > 0 && kept > s.Limit {
		return nil, fmt.Errorf("%w: %d candidates, length %d, keeping 1 in %d",
			ErrTooMany, len(candidates), n, den)
	}

	res := make([][]T, 0, kept)
	for ordinal, comb := range Seq(candidates, n) {
		if ordinal%den == 0 {
			res = append(res, slices.Clone(comb))
		}
	}
	return res, nil
}

// Seq iterates over all sequences of length n over candidates, together
// with their ordinal numbers. The yielded slice is reused between
// iterations and must be copied if it is retained.
func Seq[T any](candidates []T, n int) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if len(candidates) == 0 || n < 0 {
			return
		}

		// pos holds the candidate index for every position; comb is
		// updated in place as the positions advance.
		pos := make([]int, n)
		comb := make([]T, n)
		for i := range comb {
			comb[i] = candidates[0]
		}

		for ordinal := 0; ; ordinal++ {
			if !yield(ordinal, comb) {
				return
			}

			i := n - 1
			for ; i >= 0; i-- {
				pos[i]++
				if pos[i] < len(candidates) {
					comb[i] = candidates[pos[i]]
					break
				}
				pos[i] = 0
				comb[i] = candidates[0]
			}
			if i < 0 {
				return
			}
		}
	}
}
