// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"github.com/ava-labs/bag/list"
)

var _ Backend[int] = (*Linked[int])(nil)

// Linked stores elements in a doubly-linked [list.List], consumed strictly
// through its public contract. Iteration order is insertion order, and
// erasing one element never moves another.
type Linked[T comparable] struct {
	list *list.List[T]
}

// NewLinked returns an empty linked-list backend.
func NewLinked[T comparable]() *Linked[T] {
	return &Linked[T]{list: &list.List[T]{}}
}

// SetRecorder forwards [r] to the underlying list, exposing its node
// allocation behavior.
func (l *Linked[T]) SetRecorder(r list.Recorder) {
	l.list.SetRecorder(r)
}

func (l *Linked[T]) Insert(v T) {
	l.list.Insert(v)
}

func (l *Linked[T]) EraseFirst(v T) bool {
	it := l.list.Find(v)
	if !it.Valid() {
		return false
	}
	l.list.EraseAt(it)
	return true
}

func (l *Linked[T]) EraseAll(v T) int {
	n := 0
	for it := l.list.Begin(); it != l.list.End(); {
		if it.Value() == v {
			it = l.list.EraseAt(it)
			n++
		} else {
			it.Next()
		}
	}
	return n
}

func (l *Linked[T]) Contains(v T) bool {
	return l.list.Find(v).Valid()
}

func (l *Linked[T]) Front() T {
	return l.list.Front()
}

func (l *Linked[T]) Back() T {
	return l.list.Back()
}

func (l *Linked[T]) Size() int {
	return l.list.Size()
}

func (l *Linked[T]) Each(fn func(T) bool) {
	for it := l.list.CBegin(); it != l.list.CEnd(); it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

func (l *Linked[T]) Clear() {
	l.list.Clear()
}
