// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"github.com/ava-labs/avalanchego/utils/buffer"
)

// ringPrealloc is the deque's initial capacity; it grows as needed.
const ringPrealloc = 64

var _ Backend[int] = (*Ring[int])(nil)

// Ring stores elements in a growable double-ended ring buffer. Iteration
// order is insertion order; erasure rotates the ring once, preserving the
// relative order of the survivors.
type Ring[T comparable] struct {
	deque buffer.Deque[T]
}

// NewRing returns an empty ring backend.
func NewRing[T comparable]() *Ring[T] {
	return &Ring[T]{deque: buffer.NewUnboundedDeque[T](ringPrealloc)}
}

func (r *Ring[T]) Insert(v T) {
	r.deque.PushRight(v)
}

func (r *Ring[T]) EraseFirst(v T) bool {
	removed := false
	for i, n := 0, r.deque.Len(); i < n; i++ {
		x, _ := r.deque.PopLeft()
		if !removed && x == v {
			removed = true
			continue
		}
		r.deque.PushRight(x)
	}
	return removed
}

func (r *Ring[T]) EraseAll(v T) int {
	removed := 0
	for i, n := 0, r.deque.Len(); i < n; i++ {
		x, _ := r.deque.PopLeft()
		if x == v {
			removed++
			continue
		}
		r.deque.PushRight(x)
	}
	return removed
}

func (r *Ring[T]) Contains(v T) bool {
	for _, x := range r.deque.List() {
		if x == v {
			return true
		}
	}
	return false
}

func (r *Ring[T]) Front() T {
	v, ok := r.deque.PeekLeft()
	if !ok {
		panic("bag: Front of empty backend")
	}
	return v
}

func (r *Ring[T]) Back() T {
	v, ok := r.deque.PeekRight()
	if !ok {
		panic("bag: Back of empty backend")
	}
	return v
}

func (r *Ring[T]) Size() int {
	return r.deque.Len()
}

func (r *Ring[T]) Each(fn func(T) bool) {
	for _, x := range r.deque.List() {
		if !fn(x) {
			return
		}
	}
}

func (r *Ring[T]) Clear() {
	for {
		if _, ok := r.deque.PopLeft(); !ok {
			return
		}
	}
}
