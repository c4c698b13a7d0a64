// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

// cursor is the single traversal core shared by the four iterator variants.
// It wraps exactly one node pointer; the nil pointer is the
// non-dereferenceable end sentinel of the variant's traversal family. The
// list back-reference exists so that stepping backwards off a sentinel can
// land on the boundary element, mirroring the "decrement of end reaches
// tail" contract.
//
// Variants differ only in traversal direction and in whether they expose
// mutation; equality between same-variant iterators is plain ==, which
// holds iff they denote the same node (or both denote the sentinel of the
// same list).
type cursor[T comparable] struct {
	list *List[T]
	node *node[T]
}

func (c cursor[T]) valid() bool {
	return c.node != nil
}

func (c cursor[T]) deref() *T {
	if c.node == nil {
		panic("list: dereference of end iterator")
	}
	return &c.node.value
}

// stepNext advances one position toward the tail.
func (c *cursor[T]) stepNext() {
	if c.node == nil {
		panic("list: increment past end of traversal")
	}
	c.node = c.node.next
}

// stepPrev retreats one position toward the head. Retreating from the end
// sentinel is legal and lands on the tail; retreating from the head is a
// contract violation.
func (c *cursor[T]) stepPrev() {
	if c.node == nil {
		if c.list == nil || c.list.tail == nil {
			panic("list: decrement past begin of traversal")
		}
		c.node = c.list.tail
		return
	}
	if c.node.inverse == nil {
		panic("list: decrement past begin of traversal")
	}
	c.node = c.node.inverse
}

// stepInverse advances one position toward the head (reverse-order next).
func (c *cursor[T]) stepInverse() {
	if c.node == nil {
		panic("list: increment past end of traversal")
	}
	c.node = c.node.inverse
}

// stepOuter retreats one position toward the tail (reverse-order prev).
// Retreating from the reverse end sentinel lands on the head.
func (c *cursor[T]) stepOuter() {
	if c.node == nil {
		if c.list == nil || c.list.head == nil {
			panic("list: decrement past begin of traversal")
		}
		c.node = c.list.head
		return
	}
	if c.node.next == nil {
		panic("list: decrement past begin of traversal")
	}
	c.node = c.node.next
}

// Iterator is the forward, mutable cursor: Next walks the [next] links and
// the denoted value may be read and written.
type Iterator[T comparable] struct {
	cursor[T]
}

// Valid returns false iff the iterator denotes the end sentinel.
func (it Iterator[T]) Valid() bool { return it.valid() }

// Value returns the denoted element's value. The iterator must not be the
// end sentinel.
func (it Iterator[T]) Value() T { return *it.deref() }

// Ref returns a pointer to the denoted element's value, valid until that
// element is erased. The iterator must not be the end sentinel.
func (it Iterator[T]) Ref() *T { return it.deref() }

// Set overwrites the denoted element's value. The iterator must not be the
// end sentinel.
func (it Iterator[T]) Set(v T) { *it.deref() = v }

// Next advances to the successor element. Advancing past the end sentinel
// is a contract violation.
func (it *Iterator[T]) Next() { it.stepNext() }

// Prev retreats to the predecessor element. Retreating from the end
// sentinel lands on the tail; retreating from the head is a contract
// violation.
func (it *Iterator[T]) Prev() { it.stepPrev() }

// Const widens the iterator to its read-only counterpart. There is no
// conversion back: the narrowing direction is intentionally absent.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.cursor} }

// ConstIterator is the forward, read-only cursor. It is constructed by
// [List.CBegin]/[List.CEnd] or by widening an [Iterator]; the denoted value
// cannot be mutated through it.
type ConstIterator[T comparable] struct {
	cursor[T]
}

// Valid returns false iff the iterator denotes the end sentinel.
func (it ConstIterator[T]) Valid() bool { return it.valid() }

// Value returns the denoted element's value. The iterator must not be the
// end sentinel.
func (it ConstIterator[T]) Value() T { return *it.deref() }

// Next advances to the successor element.
func (it *ConstIterator[T]) Next() { it.stepNext() }

// Prev retreats to the predecessor element; from the end sentinel it lands
// on the tail.
func (it *ConstIterator[T]) Prev() { it.stepPrev() }

// ReverseIterator is the reverse, mutable cursor: Next walks the [inverse]
// links, so iteration visits elements tail to head.
type ReverseIterator[T comparable] struct {
	cursor[T]
}

// Valid returns false iff the iterator denotes the reverse end sentinel.
func (it ReverseIterator[T]) Valid() bool { return it.valid() }

// Value returns the denoted element's value. The iterator must not be the
// reverse end sentinel.
func (it ReverseIterator[T]) Value() T { return *it.deref() }

// Ref returns a pointer to the denoted element's value, valid until that
// element is erased.
func (it ReverseIterator[T]) Ref() *T { return it.deref() }

// Set overwrites the denoted element's value.
func (it ReverseIterator[T]) Set(v T) { *it.deref() = v }

// Next advances one position in reverse order (toward the head).
func (it *ReverseIterator[T]) Next() { it.stepInverse() }

// Prev retreats one position in reverse order (toward the tail); from the
// reverse end sentinel it lands on the head.
func (it *ReverseIterator[T]) Prev() { it.stepOuter() }

// Const widens the iterator to its read-only counterpart.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.cursor}
}

// ConstReverseIterator is the reverse, read-only cursor.
type ConstReverseIterator[T comparable] struct {
	cursor[T]
}

// Valid returns false iff the iterator denotes the reverse end sentinel.
func (it ConstReverseIterator[T]) Valid() bool { return it.valid() }

// Value returns the denoted element's value. The iterator must not be the
// reverse end sentinel.
func (it ConstReverseIterator[T]) Value() T { return *it.deref() }

// Next advances one position in reverse order (toward the head).
func (it *ConstReverseIterator[T]) Next() { it.stepInverse() }

// Prev retreats one position in reverse order (toward the tail); from the
// reverse end sentinel it lands on the head.
func (it *ConstReverseIterator[T]) Prev() { it.stepOuter() }

// Begin returns a forward iterator denoting the first element, equal to
// [List.End] when the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{list: l, node: l.head}}
}

// End returns the forward end sentinel, one past the last element. It must
// not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{cursor[T]{list: l}}
}

// CBegin returns a read-only forward iterator denoting the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{list: l, node: l.head}}
}

// CEnd returns the read-only forward end sentinel.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{list: l}}
}

// RBegin returns a reverse iterator denoting the last element, equal to
// [List.REnd] when the list is empty.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{cursor[T]{list: l, node: l.tail}}
}

// REnd returns the reverse end sentinel, one past the first element in
// reverse order. It must not be dereferenced.
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{cursor[T]{list: l}}
}

// CRBegin returns a read-only reverse iterator denoting the last element.
func (l *List[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{cursor[T]{list: l, node: l.tail}}
}

// CREnd returns the read-only reverse end sentinel.
func (l *List[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{cursor[T]{list: l}}
}
