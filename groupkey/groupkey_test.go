// Copyright (C) 2015-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groupkey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sentinel/groupkey"
)

func TestResolvesOnceEnoughIdentitiesClearBar(t *testing.T) {
	require := require.New(t)

	s := groupkey.New[string, string, string](2, 2)

	_, ok := s.AddIdentities("req", "alice", []string{"id-a", "id-b"})
	require.False(ok)

	_, ok = s.AddIdentities("req", "bob", []string{"id-a"})
	require.False(ok)

	resolved, ok := s.AddIdentities("req", "carol", []string{"id-a", "id-b"})
	require.True(ok)
	require.Equal([]string{"id-a", "id-b"}, resolved)
	require.Equal(0, s.Len())
}

func TestIdentityBelowKeysThresholdDoesNotQualify(t *testing.T) {
	require := require.New(t)

	s := groupkey.New[string, string, string](1, 3)

	_, ok := s.AddIdentities("req", "alice", []string{"id-a"})
	require.False(ok)

	_, ok = s.AddIdentities("req", "bob", []string{"id-a"})
	require.False(ok)

	resolved, ok := s.AddIdentities("req", "carol", []string{"id-a"})
	require.True(ok)
	require.Equal([]string{"id-a"}, resolved)
}

func TestDescendingVouchCountOrder(t *testing.T) {
	require := require.New(t)

	s := groupkey.New[string, string, string](2, 1)

	s.AddIdentities("req", "alice", []string{"id-high"})
	s.AddIdentities("req", "bob", []string{"id-high"})
	resolved, ok := s.AddIdentities("req", "carol", []string{"id-low"})

	require.True(ok)
	require.Equal([]string{"id-high", "id-low"}, resolved)
}
