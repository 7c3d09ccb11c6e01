// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package accumulator implements the bounded, oldest-evicted map from
// a Request to its append-only list of per-claimant submissions.
package accumulator

import "github.com/luxfi/sentinel/internal/lru"

// Accumulator maps a Request to the ordered sequence of submissions
// received for it. It is bounded to a configured number of live
// Requests; when full, the least-recently-used Request is evicted
// wholesale to make room for a new one (spec.md section 3).
type Accumulator[K comparable, V any] struct {
	cache      *lru.Cache[K, []V]
	quorumSize int
}

// New creates an Accumulator bounded to maxRequests live keys, with an
// initial quorum size of quorumSize (mutable later via SetQuorumSize).
func New[K comparable, V any](maxRequests, quorumSize int) *Accumulator[K, V] {
	return &Accumulator[K, V]{
		cache:      lru.New[K, []V](maxRequests),
		quorumSize: quorumSize,
	}
}

// SetQuorumSize changes the threshold used by subsequent Add calls to
// decide whether to emit a snapshot.
func (a *Accumulator[K, V]) SetQuorumSize(n int) {
	a.quorumSize = n
}

// Add appends value to key's sequence, creating the entry if absent.
// If this insertion brought the sequence to at least quorumSize
// elements, Add returns a snapshot of it and ok=true. Duplicate
// submissions from the same claimant are stored, not deduplicated:
// verification upstream is expected to handle them.
func (a *Accumulator[K, V]) Add(key K, value V) (snapshot []V, ok bool) {
	existing, _ := a.cache.Peek(key)
	updated := append(append([]V(nil), existing...), value)
	a.cache.Put(key, updated)

	if len(updated) >= a.quorumSize {
		return updated, true
	}
	return nil, false
}

// Get returns a snapshot of key's sequence, touching its recency.
func (a *Accumulator[K, V]) Get(key K) (snapshot []V, ok bool) {
	return a.cache.Get(key)
}

// ContainsKey is a non-mutating existence query.
func (a *Accumulator[K, V]) ContainsKey(key K) bool {
	return a.cache.Contains(key)
}

// QuorumReached reports whether key's current sequence has already
// reached the configured quorum size.
func (a *Accumulator[K, V]) QuorumReached(key K) bool {
	snapshot, ok := a.cache.Peek(key)
	return ok && len(snapshot) >= a.quorumSize
}

// Delete removes key's entry entirely.
func (a *Accumulator[K, V]) Delete(key K) {
	a.cache.Delete(key)
}

// Len returns the number of live Requests currently accumulating.
func (a *Accumulator[K, V]) Len() int {
	return a.cache.Len()
}

// Evictions returns the running count of Requests evicted under
// capacity pressure over the lifetime of the Accumulator.
func (a *Accumulator[K, V]) Evictions() int {
	return a.cache.Evictions()
}
