// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

var _ Backend[int] = (*Hashed[int])(nil)

// Hashed stores elements as value -> multiplicity, giving O(1) insert,
// erase, and membership. Distinct values keep their insertion order in a
// side slice so that Front, Back, and Each all agree on one iteration
// order for a given container state. Fully erasing a value moves the last
// distinct value into its slot, the same way Vector backfills.
type Hashed[T comparable] struct {
	counts map[T]int
	order  []T
	index  map[T]int
	size   int
}

// NewHashed returns an empty hash-multiset backend.
func NewHashed[T comparable]() *Hashed[T] {
	return &Hashed[T]{
		counts: make(map[T]int),
		index:  make(map[T]int),
	}
}

func (h *Hashed[T]) Insert(v T) {
	if h.counts[v] == 0 {
		h.index[v] = len(h.order)
		h.order = append(h.order, v)
	}
	h.counts[v]++
	h.size++
}

func (h *Hashed[T]) EraseFirst(v T) bool {
	n, ok := h.counts[v]
	if !ok {
		return false
	}
	if n == 1 {
		h.dropKey(v)
	} else {
		h.counts[v] = n - 1
	}
	h.size--
	return true
}

func (h *Hashed[T]) EraseAll(v T) int {
	n := h.counts[v]
	if n > 0 {
		h.dropKey(v)
		h.size -= n
	}
	return n
}

// dropKey removes v's last occurrence from counts and its slot from the
// key order, backfilling with the last key.
func (h *Hashed[T]) dropKey(v T) {
	i := h.index[v]
	last := len(h.order) - 1
	moved := h.order[last]
	h.order[i] = moved
	h.index[moved] = i
	var zero T
	h.order[last] = zero
	h.order = h.order[:last]
	delete(h.counts, v)
	delete(h.index, v)
}

func (h *Hashed[T]) Contains(v T) bool {
	return h.counts[v] > 0
}

func (h *Hashed[T]) Front() T {
	if h.size == 0 {
		panic("bag: Front of empty backend")
	}
	return h.order[0]
}

func (h *Hashed[T]) Back() T {
	if h.size == 0 {
		panic("bag: Back of empty backend")
	}
	return h.order[len(h.order)-1]
}

func (h *Hashed[T]) Size() int {
	return h.size
}

func (h *Hashed[T]) Each(fn func(T) bool) {
	for _, v := range h.order {
		for i := 0; i < h.counts[v]; i++ {
			if !fn(v) {
				return
			}
		}
	}
}

func (h *Hashed[T]) Clear() {
	h.counts = make(map[T]int)
	h.index = make(map[T]int)
	h.order = nil
	h.size = 0
}
