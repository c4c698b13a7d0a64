// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

var _ Backend[int] = (*Vector[int])(nil)

// Vector stores elements in a slice. Erasure swaps the victim with the last
// element and truncates, so single erases are O(1) after the scan but
// iteration order is not insertion order once elements have been erased.
type Vector[T comparable] struct {
	items []T
}

// NewVector returns an empty slice backend.
func NewVector[T comparable]() *Vector[T] {
	return &Vector[T]{}
}

func (s *Vector[T]) Insert(v T) {
	s.items = append(s.items, v)
}

func (s *Vector[T]) EraseFirst(v T) bool {
	for i, x := range s.items {
		if x == v {
			s.dropAt(i)
			return true
		}
	}
	return false
}

func (s *Vector[T]) EraseAll(v T) int {
	kept := s.items[:0]
	n := 0
	for _, x := range s.items {
		if x == v {
			n++
			continue
		}
		kept = append(kept, x)
	}
	// Zero the tail so erased values do not pin referents.
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	return n
}

func (s *Vector[T]) Contains(v T) bool {
	for _, x := range s.items {
		if x == v {
			return true
		}
	}
	return false
}

func (s *Vector[T]) Front() T {
	if len(s.items) == 0 {
		panic("bag: Front of empty backend")
	}
	return s.items[0]
}

func (s *Vector[T]) Back() T {
	if len(s.items) == 0 {
		panic("bag: Back of empty backend")
	}
	return s.items[len(s.items)-1]
}

func (s *Vector[T]) Size() int {
	return len(s.items)
}

func (s *Vector[T]) Each(fn func(T) bool) {
	for _, x := range s.items {
		if !fn(x) {
			return
		}
	}
}

func (s *Vector[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

// dropAt removes index [i] by swapping in the last element.
func (s *Vector[T]) dropAt(i int) {
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
}
