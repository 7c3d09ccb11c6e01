// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package accumulator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sentinel/accumulator"
)

func TestAddSingleValueQuorum(t *testing.T) {
	require := require.New(t)

	const quorumSize = 19
	a := accumulator.New[int, uint32](1000, quorumSize)
	key := 42

	for i := 0; i < quorumSize-1; i++ {
		_, ok := a.Add(key, 3)
		require.False(ok)
		snapshot, found := a.Get(key)
		require.True(found)
		require.Len(snapshot, i+1)
		require.False(a.QuorumReached(key))
	}

	snapshot, ok := a.Add(key, 3)
	require.True(ok)
	require.Len(snapshot, quorumSize)
	require.True(a.QuorumReached(key))
}

func TestAddMultipleKeysDoNotInterfere(t *testing.T) {
	require := require.New(t)

	a := accumulator.New[int, uint32](1000, 19)
	noiseKeys := []int{100, 101, 102, 103, 104}

	for i := 0; i < 18; i++ {
		for _, nk := range noiseKeys {
			a.Add(nk, uint32(i))
		}
		_, ok := a.Add(42, 1)
		require.False(ok)
		require.False(a.QuorumReached(42))
	}
	_, ok := a.Add(42, 1)
	require.True(ok)
	require.True(a.QuorumReached(42))
}

func TestDeleteThenReAccumulate(t *testing.T) {
	require := require.New(t)

	a := accumulator.New[int, int](1000, 2)

	_, ok := a.Add(1, 1)
	require.False(ok)
	require.True(a.ContainsKey(1))
	require.False(a.QuorumReached(1))

	a.Delete(1)
	_, found := a.Get(1)
	require.False(found)

	_, ok = a.Add(1, 1)
	require.False(ok)
	_, ok = a.Add(1, 1)
	require.True(ok)

	a.Delete(1)
	_, found = a.Get(1)
	require.False(found)
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	require := require.New(t)

	a := accumulator.New[int, int](1000, 2)

	for count := 0; count < 1000; count++ {
		_, ok := a.Add(count, 1)
		require.False(ok)
		require.True(a.ContainsKey(count))
		require.Equal(count+1, a.Len())
	}

	// Cache is now full; adding one more evicts request 0 (the LRU entry).
	_, ok := a.Add(1000, 1)
	require.False(ok)
	require.True(a.ContainsKey(1000))
	require.Equal(1000, a.Len())

	for count := 0; count < 1000; count++ {
		_, found := a.Get(count)
		require.False(found)

		_, ok := a.Add(count+1001, 1)
		require.False(ok)
		require.True(a.ContainsKey(count + 1001))
		require.Equal(1000, a.Len())
	}
}

func TestSetQuorumSize(t *testing.T) {
	require := require.New(t)

	a := accumulator.New[int, int](1000, 2)
	a.SetQuorumSize(1)

	_, ok := a.Add(1, 1)
	require.True(ok)
}
