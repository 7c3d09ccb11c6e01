// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sentinel/internal/set"
)

func TestAddIsIdempotent(t *testing.T) {
	require := require.New(t)

	s := set.New[string]()
	require.False(s.Add("a"))
	require.True(s.Add("a"))
	require.Equal(1, s.Len())
	require.True(s.Contains("a"))
	require.False(s.Contains("b"))
}
