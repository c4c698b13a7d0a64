// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardIteration(t *testing.T) {
	require := require.New(t)
	l := New(1, 2, 3, 4, 5, 6)

	got := []int{}
	for it := l.Begin(); it != l.End(); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal([]int{1, 2, 3, 4, 5, 6}, got)
}

func TestConstIteration(t *testing.T) {
	require := require.New(t)
	l := New(5, 4, 2, 5, 2, 9)

	got := []int{}
	for it := l.CBegin(); it != l.CEnd(); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal([]int{5, 4, 2, 5, 2, 9}, got)
}

func TestReverseIteration(t *testing.T) {
	require := require.New(t)
	l := New(5, 554, 222, 22, 2, 9)

	got := []int{}
	for it := l.RBegin(); it != l.REnd(); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal([]int{9, 2, 22, 222, 554, 5}, got)
}

func TestConstReverseIteration(t *testing.T) {
	require := require.New(t)
	l := New(8, 54, 212, 82, 12, 29)

	got := []int{}
	for it := l.CRBegin(); it != l.CREnd(); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal([]int{29, 12, 82, 212, 54, 8}, got)
}

func TestReverseTraversalSymmetry(t *testing.T) {
	require := require.New(t)
	l := New(3, 1, 4, 1, 5, 9, 2, 6)

	forward := forwardValues(l)
	reverse := []int{}
	for it := l.RBegin(); it != l.REnd(); it.Next() {
		reverse = append(reverse, it.Value())
	}

	require.Len(reverse, len(forward))
	for i, v := range forward {
		require.Equal(v, reverse[len(reverse)-1-i])
	}
}

func TestEmptyListSentinels(t *testing.T) {
	require := require.New(t)
	var l List[int]

	require.Equal(l.End(), l.Begin())
	require.Equal(l.CEnd(), l.CBegin())
	require.Equal(l.REnd(), l.RBegin())
	require.Equal(l.CREnd(), l.CRBegin())
	require.False(l.Begin().Valid())
	require.False(l.RBegin().Valid())
}

func TestPrevFromEndReachesTail(t *testing.T) {
	require := require.New(t)
	l := New(1, 2, 3)

	it := l.End()
	it.Prev()
	require.Equal(3, it.Value())

	cit := l.CEnd()
	cit.Prev()
	require.Equal(3, cit.Value())
}

func TestPrevFromREndReachesHead(t *testing.T) {
	require := require.New(t)
	l := New(1, 2, 3)

	it := l.REnd()
	it.Prev()
	require.Equal(1, it.Value())

	cit := l.CREnd()
	cit.Prev()
	require.Equal(1, cit.Value())
}

func TestPrevAtBoundaryPanics(t *testing.T) {
	require := require.New(t)
	l := New(1, 2, 3)

	begin := l.Begin()
	require.Panics(func() { begin.Prev() })

	rbegin := l.RBegin()
	require.Panics(func() { rbegin.Prev() })

	var empty List[int]
	end := empty.End()
	require.Panics(func() { end.Prev() })
	rend := empty.REnd()
	require.Panics(func() { rend.Prev() })
}

func TestNextPastEndPanics(t *testing.T) {
	require := require.New(t)
	l := New(1)

	it := l.End()
	require.Panics(func() { it.Next() })

	rit := l.REnd()
	require.Panics(func() { rit.Next() })
}

func TestDereferenceEndPanics(t *testing.T) {
	require := require.New(t)
	l := New(1)

	require.Panics(func() { l.End().Value() })
	require.Panics(func() { l.End().Ref() })
	require.Panics(func() { l.End().Set(2) })
	require.Panics(func() { l.CEnd().Value() })
	require.Panics(func() { l.REnd().Value() })
	require.Panics(func() { l.CREnd().Value() })
}

func TestEquality(t *testing.T) {
	require := require.New(t)
	l := New(1, 2, 3)

	a := l.Begin()
	b := l.Begin()
	require.Equal(a, b)
	require.True(a == b)

	b.Next()
	require.NotEqual(a, b)

	// Sentinels of the same traversal family compare equal.
	require.True(l.End() == l.End())
	require.True(l.REnd() == l.REnd())
}

func TestConstWidening(t *testing.T) {
	require := require.New(t)
	l := New(1, 2, 3)

	it := l.Begin()
	cit := it.Const()
	require.Equal(l.CBegin(), cit)
	require.Equal(it.Value(), cit.Value())

	// Stepping the widened copy tracks the same chain.
	it.Next()
	cit.Next()
	require.Equal(it.Value(), cit.Value())
	require.Equal(it.Const(), cit)

	rit := l.RBegin()
	crit := rit.Const()
	require.Equal(l.CRBegin(), crit)
	require.Equal(rit.Value(), crit.Value())
}

func TestSetAndRef(t *testing.T) {
	require := require.New(t)
	l := New(1, 2, 3)

	it := l.Begin()
	it.Set(10)
	require.Equal(10, l.Front())

	it.Next()
	*it.Ref() = 20
	require.Equal([]int{10, 20, 3}, forwardValues(l))

	rit := l.RBegin()
	rit.Set(30)
	require.Equal(30, l.Back())
}

func TestValueInsertedViaIteratorPosition(t *testing.T) {
	require := require.New(t)
	l := New(1, 3)

	pos := l.Find(3)
	it := l.InsertBefore(pos, 2)
	require.Equal(2, it.Value())

	// The returned iterator navigates both ways from the new node.
	it.Next()
	require.Equal(3, it.Value())
	it.Prev()
	it.Prev()
	require.Equal(1, it.Value())
}
