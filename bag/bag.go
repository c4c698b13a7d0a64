// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bag implements an unordered multiset adaptor: one uniform
// insert/erase/find/front/back/size surface over interchangeable storage
// backends. Equal elements may appear multiple times; iterating over a bag
// visits each stored element exactly once, in an order the backend defines.
package bag

// Backend is the storage contract a bag adapts. Implementations decide the
// layout (slice, linked list, hash multiset, sorted multiset, ring) and the
// iteration order; the bag forwards, never reorders.
//
// Front and Back return the elements at the first and last iteration-order
// positions and require a non-empty backend. For hashed layouts those
// positions are defined but arbitrary.
type Backend[T comparable] interface {
	Insert(T)
	EraseFirst(T) bool
	EraseAll(T) int
	Contains(T) bool
	Front() T
	Back() T
	Size() int
	Each(func(T) bool)
	Clear()
}

// Bag is an unordered multiset over a [Backend].
//
// A bag performs no synchronization; callers must serialize access.
type Bag[T comparable] struct {
	backend Backend[T]
}

// New returns a bag adapting [backend], inserting [values] in order.
func New[T comparable](backend Backend[T], values ...T) *Bag[T] {
	b := &Bag[T]{backend: backend}
	for _, v := range values {
		b.Insert(v)
	}
	return b
}

// Insert adds [v] to the bag.
func (b *Bag[T]) Insert(v T) {
	b.backend.Insert(v)
}

// Erase removes one occurrence of [v], reporting whether one was present.
func (b *Bag[T]) Erase(v T) bool {
	return b.backend.EraseFirst(v)
}

// EraseAll removes every occurrence of [v] and returns how many were
// removed.
func (b *Bag[T]) EraseAll(v T) int {
	return b.backend.EraseAll(v)
}

// Contains reports whether at least one occurrence of [v] is present.
func (b *Bag[T]) Contains(v T) bool {
	return b.backend.Contains(v)
}

// Count returns the number of occurrences of [v].
func (b *Bag[T]) Count(v T) int {
	n := 0
	b.backend.Each(func(x T) bool {
		if x == v {
			n++
		}
		return true
	})
	return n
}

// Front returns the element at the first iteration-order position.
//
// The bag must not be empty.
func (b *Bag[T]) Front() T {
	return b.backend.Front()
}

// Back returns the element at the last iteration-order position.
//
// The bag must not be empty.
func (b *Bag[T]) Back() T {
	return b.backend.Back()
}

// Size returns the number of stored elements, counting duplicates.
func (b *Bag[T]) Size() int {
	return b.backend.Size()
}

// Empty returns true iff the bag has no elements.
func (b *Bag[T]) Empty() bool {
	return b.backend.Size() == 0
}

// Swap exchanges the contents of this bag and [other] in O(1) by swapping
// backends.
func (b *Bag[T]) Swap(other *Bag[T]) {
	b.backend, other.backend = other.backend, b.backend
}

// Each calls [fn] once per stored element (duplicates included) in the
// backend's iteration order, stopping early if [fn] returns false.
func (b *Bag[T]) Each(fn func(T) bool) {
	b.backend.Each(fn)
}

// Values returns every stored element in iteration order.
func (b *Bag[T]) Values() []T {
	out := make([]T, 0, b.Size())
	b.backend.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Clear removes every element.
func (b *Bag[T]) Clear() {
	b.backend.Clear()
}
