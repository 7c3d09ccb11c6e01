// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sentinelconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sentinel/sentinelconfig"
)

func TestBuilderDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := sentinelconfig.NewBuilder().Build()
	require.NoError(err)
	require.Equal(1, cfg.ClaimThreshold)
	require.Equal(1, cfg.KeysThreshold)
	require.Equal(sentinelconfig.DefaultMaxRequestCount, cfg.MaxRequestCount)
	require.False(cfg.Strict)
}

func TestBuilderRejectsNonPositiveThreshold(t *testing.T) {
	require := require.New(t)

	_, err := sentinelconfig.NewBuilder().WithClaimThreshold(0).Build()
	require.ErrorIs(err, sentinelconfig.ErrNonPositiveThreshold)
}

func TestBuilderChain(t *testing.T) {
	require := require.New(t)

	cfg, err := sentinelconfig.NewBuilder().
		WithClaimThreshold(10).
		WithKeysThreshold(10).
		WithMaxRequestCount(50).
		WithStrict(true).
		Build()
	require.NoError(err)
	require.Equal(10, cfg.ClaimThreshold)
	require.Equal(10, cfg.KeysThreshold)
	require.Equal(50, cfg.MaxRequestCount)
	require.True(cfg.Strict)
}
