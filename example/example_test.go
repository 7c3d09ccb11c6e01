// Copyright (C) 2015-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package example_test

import (
	"testing"

	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/sentinel/example"
)

func TestRunResolvesHappyPath(t *testing.T) {
	require := require.New(t)

	body, err := example.Run(log.NoLog{})
	require.NoError(err)
	require.Equal([]byte("overlay data at height 7"), body)
}
