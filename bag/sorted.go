// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"cmp"

	"golang.org/x/exp/slices"
)

var _ Backend[int] = (*Sorted[int])(nil)

// Sorted keeps elements in ascending order, so Front is the minimum and
// Back is the maximum. Insert and erase are a binary search plus a slice
// shift.
type Sorted[T cmp.Ordered] struct {
	items []T
}

// NewSorted returns an empty ordered-multiset backend.
func NewSorted[T cmp.Ordered]() *Sorted[T] {
	return &Sorted[T]{}
}

func (s *Sorted[T]) Insert(v T) {
	idx, _ := slices.BinarySearch(s.items, v)
	s.items = slices.Insert(s.items, idx, v)
}

func (s *Sorted[T]) EraseFirst(v T) bool {
	idx, ok := slices.BinarySearch(s.items, v)
	if !ok {
		return false
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	return true
}

func (s *Sorted[T]) EraseAll(v T) int {
	idx, ok := slices.BinarySearch(s.items, v)
	if !ok {
		return 0
	}
	end := idx
	for end < len(s.items) && s.items[end] == v {
		end++
	}
	s.items = slices.Delete(s.items, idx, end)
	return end - idx
}

func (s *Sorted[T]) Contains(v T) bool {
	_, ok := slices.BinarySearch(s.items, v)
	return ok
}

func (s *Sorted[T]) Front() T {
	if len(s.items) == 0 {
		panic("bag: Front of empty backend")
	}
	return s.items[0]
}

func (s *Sorted[T]) Back() T {
	if len(s.items) == 0 {
		panic("bag: Back of empty backend")
	}
	return s.items[len(s.items)-1]
}

func (s *Sorted[T]) Size() int {
	return len(s.items)
}

func (s *Sorted[T]) Each(fn func(T) bool) {
	for _, x := range s.items {
		if !fn(x) {
			return
		}
	}
}

func (s *Sorted[T]) Clear() {
	s.items = nil
}
