// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keystore implements the per-target accumulation of
// (public-key -> set-of-attesters) bindings and the quorum selector
// over them.
package keystore

import (
	"sort"

	"github.com/luxfi/sentinel/internal/set"
	"github.com/luxfi/sentinel/keys"
)

// KeyStore maps a target Name to every PublicKey attested to belong
// to it, and the set of attester Names that vouched for each key.
type KeyStore[Name comparable] struct {
	byTarget map[Name]map[keys.PublicKey]set.Set[Name]
}

// New creates an empty KeyStore.
func New[Name comparable]() *KeyStore[Name] {
	return &KeyStore[Name]{byTarget: make(map[Name]map[keys.PublicKey]set.Set[Name])}
}

// AddKey records that attester vouches for key as belonging to target.
// Self-attestation (attester == target) is silently dropped, and the
// (target, key, attester) triple is idempotent: adding it twice has
// the same effect as adding it once.
func (ks *KeyStore[Name]) AddKey(target, attester Name, key keys.PublicKey) {
	if target == attester {
		return
	}

	byKey, ok := ks.byTarget[target]
	if !ok {
		byKey = make(map[keys.PublicKey]set.Set[Name])
		ks.byTarget[target] = byKey
	}

	attesters, ok := byKey[key]
	if !ok {
		attesters = set.New[Name]()
		byKey[key] = attesters
	}
	attesters.Add(attester)
}

// GetAccumulatedKeys returns every key attested to belong to target
// whose attester-set has reached at least quorum independent
// attesters, ordered by the key's natural byte order. If two distinct
// keys for the same target both reach quorum, both are returned —
// KeyStore does not pick a winner; that's left to the caller
// (spec.md section 4.3, documented as a "successful attack" scenario).
func (ks *KeyStore[Name]) GetAccumulatedKeys(target Name, quorum int) []keys.PublicKey {
	byKey, ok := ks.byTarget[target]
	if !ok {
		return nil
	}

	out := make([]keys.PublicKey, 0, len(byKey))
	for key, attesters := range byKey {
		if attesters.Len() >= quorum {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// AttesterCount returns the number of distinct attesters that have
// vouched for (target, key), or 0 if there are none.
func (ks *KeyStore[Name]) AttesterCount(target Name, key keys.PublicKey) int {
	byKey, ok := ks.byTarget[target]
	if !ok {
		return 0
	}
	attesters, ok := byKey[key]
	if !ok {
		return 0
	}
	return attesters.Len()
}
