// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type backendFactory struct {
	name string
	make func() Backend[int]

	// insertionOrder is true when Each visits elements in insertion order
	// (absent erases).
	insertionOrder bool
}

func factories() []backendFactory {
	return []backendFactory{
		{name: "linked", make: func() Backend[int] { return NewLinked[int]() }, insertionOrder: true},
		{name: "vector", make: func() Backend[int] { return NewVector[int]() }, insertionOrder: true},
		{name: "hashed", make: func() Backend[int] { return NewHashed[int]() }},
		{name: "sorted", make: func() Backend[int] { return NewSorted[int]() }},
		{name: "ring", make: func() Backend[int] { return NewRing[int]() }, insertionOrder: true},
	}
}

func TestBackendConformance(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			require := require.New(t)
			b := New(f.make())

			require.True(b.Empty())
			require.Zero(b.Size())
			require.False(b.Erase(1))
			require.Zero(b.EraseAll(1))
			require.False(b.Contains(1))

			for _, v := range []int{2, 2, 2, 5, 6} {
				b.Insert(v)
			}
			require.Equal(5, b.Size())
			require.False(b.Empty())
			require.True(b.Contains(2))
			require.True(b.Contains(6))
			require.False(b.Contains(7))
			require.Equal(3, b.Count(2))

			// Erasing a duplicated value removes exactly one occurrence.
			require.True(b.Erase(2))
			require.Equal(4, b.Size())
			require.Equal(2, b.Count(2))

			require.Equal(2, b.EraseAll(2))
			require.Equal(2, b.Size())
			require.False(b.Contains(2))

			// Every stored element is visited exactly once.
			got := b.Values()
			sort.Ints(got)
			require.Equal([]int{5, 6}, got)

			b.Clear()
			require.True(b.Empty())
			require.Zero(b.Size())
		})
	}
}

func TestBackendFrontBack(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			require := require.New(t)
			b := New(f.make(), 3, 1, 2)

			// Front and Back are the boundary iteration positions for
			// every layout, even when that order is arbitrary.
			values := b.Values()
			require.Equal(values[0], b.Front())
			require.Equal(values[len(values)-1], b.Back())
		})
	}
}

func TestBackendFrontBackEmptyPanic(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			require := require.New(t)
			b := New(f.make())

			require.Panics(func() { b.Front() })
			require.Panics(func() { b.Back() })
		})
	}
}

func TestBackendInsertionOrder(t *testing.T) {
	for _, f := range factories() {
		if !f.insertionOrder {
			continue
		}
		t.Run(f.name, func(t *testing.T) {
			require := require.New(t)
			b := New(f.make(), 3, 1, 2, 1)

			require.Equal([]int{3, 1, 2, 1}, b.Values())
			require.Equal(3, b.Front())
			require.Equal(1, b.Back())
		})
	}
}

func TestEachEarlyStop(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			require := require.New(t)
			b := New(f.make(), 1, 2, 3, 4)

			visited := 0
			b.Each(func(int) bool {
				visited++
				return visited < 2
			})
			require.Equal(2, visited)
		})
	}
}

func TestBagSwap(t *testing.T) {
	require := require.New(t)
	a := New(NewLinked[int](), 1, 2, 3, 4)
	b := New(NewLinked[int](), 1)

	a.Swap(b)
	require.Equal(1, a.Size())
	require.Equal(4, b.Size())
	require.Equal([]int{1}, a.Values())
	require.Equal([]int{1, 2, 3, 4}, b.Values())
}

func TestBagSwapAcrossBackendKinds(t *testing.T) {
	require := require.New(t)
	a := New(NewVector[int](), 1, 2)
	b := New(NewHashed[int](), 9)

	a.Swap(b)
	require.Equal(1, a.Size())
	require.True(a.Contains(9))
	require.Equal(2, b.Size())
	require.True(b.Contains(1))
}

func TestSortedOrder(t *testing.T) {
	require := require.New(t)
	b := New(NewSorted[int](), 5, 1, 4, 1, 3)

	require.Equal([]int{1, 1, 3, 4, 5}, b.Values())
	require.Equal(1, b.Front())
	require.Equal(5, b.Back())

	require.Equal(2, b.EraseAll(1))
	require.Equal([]int{3, 4, 5}, b.Values())
	require.Equal(3, b.Front())
}

func TestVectorEraseKeepsSurvivors(t *testing.T) {
	require := require.New(t)
	b := New(NewVector[int](), 1, 2, 3)

	require.True(b.Erase(1))
	got := b.Values()
	sort.Ints(got)
	require.Equal([]int{2, 3}, got)
}

func TestRingEraseKeepsOrder(t *testing.T) {
	require := require.New(t)
	b := New(NewRing[int](), 1, 2, 3, 2, 4)

	require.True(b.Erase(2))
	require.Equal([]int{1, 3, 2, 4}, b.Values())

	require.Equal(1, b.EraseAll(2))
	require.Equal([]int{1, 3, 4}, b.Values())
}

func TestHashedFrontBackStable(t *testing.T) {
	require := require.New(t)
	b := New(NewHashed[int](), 3, 1, 2)

	// Front and Back agree with the boundary positions Each yields, and
	// repeated calls keep answering the same while the bag is unchanged.
	for i := 0; i < 5; i++ {
		values := b.Values()
		require.Equal([]int{3, 1, 2}, values)
		require.Equal(3, b.Front())
		require.Equal(2, b.Back())
	}
}

func TestHashedEraseBackfillsOrder(t *testing.T) {
	require := require.New(t)
	b := New(NewHashed[int](), 3, 1, 1, 2)

	// Duplicates cluster at their value's slot.
	require.Equal([]int{3, 1, 1, 2}, b.Values())

	// Dropping one of two occurrences keeps the slot.
	require.True(b.Erase(1))
	require.Equal([]int{3, 1, 2}, b.Values())

	// Fully erasing a value moves the last distinct value into its slot.
	require.True(b.Erase(3))
	require.Equal([]int{2, 1}, b.Values())
	require.Equal(2, b.Front())
	require.Equal(1, b.Back())

	require.True(b.Erase(1))
	require.Equal([]int{2}, b.Values())
	require.Equal(2, b.Front())
	require.Equal(2, b.Back())
}

func TestHashedMultiplicity(t *testing.T) {
	require := require.New(t)
	b := New(NewHashed[string](), "a", "a", "b")

	require.Equal(2, b.Count("a"))
	require.True(b.Erase("a"))
	require.Equal(1, b.Count("a"))
	require.True(b.Erase("a"))
	require.False(b.Contains("a"))
	require.True(b.Contains("b"))
}
