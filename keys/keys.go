// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keys provides the fixed-width public key and signature types
// used to bind a claimant to a claim, and the pluggable verification
// scheme sentinel uses to check that binding.
package keys

import (
	"bytes"

	"github.com/luxfi/crypto/bls"
)

// PublicKeySize and SignatureSize are the BLS12-381 G1/G2 compressed
// byte widths the teacher's real signing dependency,
// github.com/luxfi/crypto/bls, produces (see validators/new.go's
// bls.PublicKeyToCompressedBytes and engine/pq/crypto.go's
// bls.SignatureToBytes). Sentinel doesn't care which concrete scheme
// produced the bytes, only that they're fixed width and comparable.
const (
	PublicKeySize = 48
	SignatureSize = 96
)

// PublicKey is a fixed-width, comparable public signing key. Go array
// types are comparable and orderable by byte content for free, so
// unlike the upstream sodiumoxide-backed implementation this needed no
// hand-rolled Ord/Eq wrapper.
type PublicKey [PublicKeySize]byte

// Signature is a fixed-width, comparable signature bound to the
// (claimant, body) pair it was produced over.
type Signature [SignatureSize]byte

// Less reports whether pk sorts before other in the natural byte order
// KeyStore.GetAccumulatedKeys is specified to return.
func (pk PublicKey) Less(other PublicKey) bool {
	return bytes.Compare(pk[:], other[:]) < 0
}

func (pk PublicKey) String() string {
	return hexString(pk[:])
}

func (sig Signature) String() string {
	return hexString(sig[:])
}

func hexString(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexdigits[c>>4]
		out[i*2+1] = hexdigits[c&0x0f]
	}
	return string(out)
}

// Verifier is the signing-scheme collaborator named in spec.md section
// 6: "verify(sig, body, public_key) -> bool. Deterministic." Sentinel
// never parses or generates signatures itself; it only calls Verify.
type Verifier interface {
	Verify(sig Signature, body []byte, pk PublicKey) bool
}

// BLSVerifier adapts the fixed-width PublicKey/Signature pair onto
// github.com/luxfi/crypto/bls, the real BLS12-381 implementation
// (backed by github.com/supranational/blst) the teacher's go.mod
// actually requires and uses for validator and warp-message signature
// verification (validators/new.go, utils/vms/platformvm/warp/signer.go,
// test/consensustest/context.go). Malformed or forged bytes fail to
// parse or fail bls.Verify and are treated as a non-match, matching
// spec.md section 7's "signature does not verify -> drop" rule.
type BLSVerifier struct{}

func (BLSVerifier) Verify(sig Signature, body []byte, pk PublicKey) bool {
	blsPK, err := bls.PublicKeyFromCompressedBytes(pk[:])
	if err != nil {
		return false
	}
	blsSig, err := bls.SignatureFromBytes(sig[:])
	if err != nil {
		return false
	}
	return bls.Verify(blsPK, blsSig, body)
}

// NewBLSPublicKey packs a *bls.PublicKey into the fixed-width
// PublicKey array used throughout sentinel.
func NewBLSPublicKey(pk *bls.PublicKey) PublicKey {
	var out PublicKey
	copy(out[:], bls.PublicKeyToCompressedBytes(pk))
	return out
}

// NewBLSSignature packs a *bls.Signature into the fixed-width
// Signature array used throughout sentinel.
func NewBLSSignature(sig *bls.Signature) Signature {
	var out Signature
	copy(out[:], bls.SignatureToBytes(sig))
	return out
}
