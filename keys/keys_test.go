// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys_test

import (
	"testing"

	"github.com/luxfi/crypto/bls"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/sentinel/keys"
)

func TestBLSVerifierRoundTrip(t *testing.T) {
	require := require.New(t)

	sk, err := bls.NewSecretKey()
	require.NoError(err)

	body := []byte("7")
	sig, err := sk.Sign(body)
	require.NoError(err)

	v := keys.BLSVerifier{}
	pk := keys.NewBLSPublicKey(sk.PublicKey())
	s := keys.NewBLSSignature(sig)

	require.True(v.Verify(s, body, pk))
	require.False(v.Verify(s, []byte("not-7"), pk))
}

func TestPublicKeyLess(t *testing.T) {
	require := require.New(t)

	var a, b keys.PublicKey
	a[0] = 1
	b[0] = 2

	require.True(a.Less(b))
	require.False(b.Less(a))
	require.False(a.Less(a))
}
