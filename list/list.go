// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

// maxFree bounds how many erased nodes a list keeps around for reuse.
const maxFree = 64

// Recorder observes node lifecycle events. It replaces process-wide
// allocation interception with an injected collaborator: a list with a
// recorder reports every node it allocates, reuses, or releases.
//
// The list calls these from the goroutine mutating it and never
// concurrently with itself.
type Recorder interface {
	Allocated() // a fresh node was heap-allocated
	Reused()    // an erased node was taken from the free list
	Released()  // a node was detached and returned for collection or reuse
}

// node is a single unit of storage: one value and the two directional links
// that thread the list. Links are only ever mutated by List; a node is
// detached from the chain before it is released or reused.
type node[T comparable] struct {
	value   T
	next    *node[T]
	inverse *node[T]
}

// List implements a doubly-linked list threaded through per-node [next] and
// [inverse] links, with explicit head and tail entry pointers. It offers
// similar functionality as container/list but uses generics and hands out
// the four iterator variants in iterator.go instead of raw elements.
//
// Nodes are individually heap-resident and never relocated, so an iterator
// stays valid and dereferenceable across inserts and erases elsewhere in
// the same list; only erasing the denoted node invalidates an iterator.
//
// The zero value is an empty list ready to use. Assigning a List value
// copies the header and aliases every node; use [List.Clone] for a deep
// copy.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type List[T comparable] struct {
	head  *node[T]
	tail  *node[T]
	count int

	// erased nodes chained via [next] for reuse, capped at [maxFree]
	free    *node[T]
	freeLen int

	recorder Recorder
}

// New returns a list pre-populated with [values], appended in order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Insert(v)
	}
	return l
}

// SetRecorder installs [r] as the allocation observer for this list. A nil
// recorder disables observation.
func (l *List[T]) SetRecorder(r Recorder) {
	l.recorder = r
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.count
}

// Empty returns true iff the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Front returns the value of the first element.
//
// The list must not be empty.
func (l *List[T]) Front() T {
	if l.head == nil {
		panic("list: Front of empty list")
	}
	return l.head.value
}

// FrontRef returns a pointer to the first element's value. The pointer is
// valid until the element is erased.
//
// The list must not be empty.
func (l *List[T]) FrontRef() *T {
	if l.head == nil {
		panic("list: FrontRef of empty list")
	}
	return &l.head.value
}

// Back returns the value of the last element.
//
// The list must not be empty.
func (l *List[T]) Back() T {
	if l.tail == nil {
		panic("list: Back of empty list")
	}
	return l.tail.value
}

// BackRef returns a pointer to the last element's value. The pointer is
// valid until the element is erased.
//
// The list must not be empty.
func (l *List[T]) BackRef() *T {
	if l.tail == nil {
		panic("list: BackRef of empty list")
	}
	return &l.tail.value
}

// Insert appends [v] after the current tail and returns an iterator
// denoting the new element. O(1).
func (l *List[T]) Insert(v T) Iterator[T] {
	n := l.newNode(v)
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.inverse = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.count++
	return Iterator[T]{cursor[T]{list: l, node: n}}
}

// InsertBefore inserts [v] immediately before the element denoted by [pos]
// and returns an iterator denoting the new element. [pos] must denote an
// element currently owned by this list, or be the end sentinel (in which
// case the value is appended). O(1).
func (l *List[T]) InsertBefore(pos Iterator[T], v T) Iterator[T] {
	n := l.newNode(v)
	switch {
	case l.head == nil:
		l.head = n
		l.tail = n
	case pos.node == l.head:
		n.next = l.head
		l.head.inverse = n
		l.head = n
	case pos.node == nil:
		n.inverse = l.tail
		l.tail.next = n
		l.tail = n
	default:
		at := pos.node
		prev := at.inverse
		prev.next = n
		n.inverse = prev
		n.next = at
		at.inverse = n
	}
	l.count++
	return Iterator[T]{cursor[T]{list: l, node: n}}
}

// Erase removes the first element (in forward order) equal to [v] and
// returns an iterator denoting the element that followed it, or the end
// sentinel if the removed element was the tail. If no element matches,
// nothing is removed and the end sentinel is returned.
//
// Miss behavior differed between revisions of the adaptor family (some
// returned the current tail); returning End keeps a miss consistent with
// Find and is the documented contract here.
func (l *List[T]) Erase(v T) Iterator[T] {
	cur := l.head
	for cur != nil && cur.value != v {
		cur = cur.next
	}
	if cur == nil {
		return l.End()
	}
	return l.unlink(cur)
}

// EraseAt removes the element denoted by [pos] and returns an iterator
// denoting the following element, or the end sentinel if the tail was
// removed. [pos] must denote an element currently owned by this list.
// O(1).
func (l *List[T]) EraseAt(pos Iterator[T]) Iterator[T] {
	if pos.node == nil {
		panic("list: EraseAt of end iterator")
	}
	return l.unlink(pos.node)
}

// EraseRange removes the run of elements [first, last): starting at [first]
// up to but not including [last]. If [last] is the end sentinel the run
// extends through the current tail. Returns an iterator denoting the
// element after the run, or the end sentinel.
//
// Degenerate inputs ([first] at the end sentinel, or [first] == [last])
// remove nothing and return the end sentinel.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	start := first.node
	stop := last.node
	if start == nil || start == stop {
		return l.End()
	}

	// Reconnect the node before the run to the node after it, updating
	// head/tail when the run touches either boundary.
	prev := start.inverse
	if prev == nil {
		l.head = stop
	} else {
		prev.next = stop
	}
	if stop == nil {
		l.tail = prev
	} else {
		stop.inverse = prev
	}

	for n := start; n != stop; {
		next := n.next
		l.release(n)
		l.count--
		n = next
	}
	return Iterator[T]{cursor[T]{list: l, node: stop}}
}

// Find returns an iterator denoting the first element equal to [v], or the
// end sentinel if no element matches. O(n).
func (l *List[T]) Find(v T) Iterator[T] {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return Iterator[T]{cursor[T]{list: l, node: cur}}
		}
	}
	return l.End()
}

// Swap exchanges the contents of this list and [other] in O(1). No node is
// touched, so iterators issued by either list remain valid and now denote
// elements of the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.count, other.count = other.count, l.count
	l.free, other.free = other.free, l.free
	l.freeLen, other.freeLen = other.freeLen, l.freeLen
}

// Clear removes every element and resets the list to empty. Calling Clear
// on an empty list is a no-op.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.release(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.count = 0
}

// Clone returns a deep copy of the list: every value is copied into a fresh
// node, in forward order. The clone does not inherit the recorder.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		c.Insert(n.value)
	}
	return c
}

// unlink detaches [n] from the chain, releases it, and returns an iterator
// denoting its successor.
func (l *List[T]) unlink(n *node[T]) Iterator[T] {
	next := n.next
	prev := n.inverse
	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	if next == nil {
		l.tail = prev
	} else {
		next.inverse = prev
	}
	l.release(n)
	l.count--
	return Iterator[T]{cursor[T]{list: l, node: next}}
}

// newNode produces a node holding [v], preferring the free list over a
// fresh allocation. The node is fully constructed before any existing link
// is touched, so an insert can never leave the chain half-relinked.
func (l *List[T]) newNode(v T) *node[T] {
	if l.free != nil {
		n := l.free
		l.free = n.next
		l.freeLen--
		n.value = v
		n.next = nil
		if l.recorder != nil {
			l.recorder.Reused()
		}
		return n
	}
	if l.recorder != nil {
		l.recorder.Allocated()
	}
	return &node[T]{value: v}
}

// release clears a detached node and parks it on the free list, or drops it
// for the collector once the free list is full.
func (l *List[T]) release(n *node[T]) {
	var zero T
	n.value = zero
	n.inverse = nil
	if l.freeLen < maxFree {
		n.next = l.free
		l.free = n
		l.freeLen++
	} else {
		n.next = nil
	}
	if l.recorder != nil {
		l.recorder.Released()
	}
}
