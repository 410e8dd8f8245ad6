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

// Package array implements a growable, sortable container with set-like
// helpers. The geometry code uses it to collect pixels, edges and vertex
// records and to reduce them to sorted sets.
package array

import (
	"cmp"
	"slices"
)

// Array is a growable sequence of values of type T, ordered by a
// comparison function. The comparison function defines both the sort
// order and element equality (a compare result of 0).
//
// The zero value is not usable; create arrays with [New] or [NewOrdered].
type Array[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// New returns an empty array which orders its elements using cmp.
func New[T any](cmp func(a, b T) int) *Array[T] {
	return &Array[T]{cmp: cmp}
}

// NewOrdered returns an empty array of an ordered type, using the natural
// order of T.
func NewOrdered[T cmp.Ordered]() *Array[T] {
	return &Array[T]{cmp: cmp.Compare[T]}
}

// From returns an array holding a copy of items.
func From[T any](cmp func(a, b T) int, items ...T) *Array[T] {
	return &Array[T]{items: slices.Clone(items), cmp: cmp}
}

// Push appends item to the end of the array.
func (a *Array[T]) Push(item T) {
	a.items = append(a.items, item)
}

// At returns the i-th element. The index must be in range.
func (a *Array[T]) At(i int) T {
	return a.items[i]
}

// Set replaces the i-th element. The index must be in range.
func (a *Array[T]) Set(i int, item T) {
	a.items[i] = item
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Reset empties the array but keeps the allocated storage.
func (a *Array[T]) Reset() {
	a.items = a.items[:0]
}

// Exists reports whether an element equal to item is present.
// This is a linear search.
func (a *Array[T]) Exists(item T) bool {
	return slices.ContainsFunc(a.items, func(x T) bool {
		return a.cmp(x, item) == 0
	})
}

// Sort sorts the array in place. Equal elements keep their relative order.
func (a *Array[T]) Sort() {
	slices.SortStableFunc(a.items, a.cmp)
}

// Remove deletes the i-th element, shifting later elements down.
// Out of range indices are ignored.
func (a *Array[T]) Remove(i int) {
	if i < 0 || i >= len(a.items) {
		return
	}
	a.items = slices.Delete(a.items, i, i+1)
}

// RemoveDuplicates sorts the array and then drops all but the first of
// each run of equal elements. Note that this changes the element order.
func (a *Array[T]) RemoveDuplicates() {
	if len(a.items) == 0 {
		return
	}
	a.Sort()
	a.items = slices.CompactFunc(a.items, func(x, y T) bool {
		return a.cmp(x, y) == 0
	})
}

// Items returns the elements as a slice. The slice aliases the array's
// storage and is only valid until the next modification.
func (a *Array[T]) Items() []T {
	return a.items
}

// All iterates over the index and value of every element.
func (a *Array[T]) All() func(yield func(int, T) bool) {
	return func(yield func(int, T) bool) {
		for i, x := range a.items {
			if !yield(i, x) {
				return
			}
		}
	}
}
