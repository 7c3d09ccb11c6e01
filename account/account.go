// Copyright (C) 2015-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package account implements the median-aggregator sibling of the root
// Sentinel: per Request, a map from sender Name to that sender's most
// recent Claim, resolving to the median claim once enough distinct
// senders have reported.
package account

import (
	"sort"

	"github.com/luxfi/sentinel/internal/lru"
)

const defaultMaxRequestCount = 1000

// Ordered is the capability a Claim type must provide to be
// median-sortable.
type Ordered[T any] interface {
	Less(other T) bool
}

// Sentinel is the median aggregator: for each Request it tracks the
// latest Claim from every distinct Name that has reported one, and
// once threshold distinct senders have reported, emits the median
// Claim (sorted ascending, index len/2) and discards the Request.
type Sentinel[Request comparable, Name comparable, Claim Ordered[Claim]] struct {
	requests *lru.Cache[Request, map[Name]Claim]
}

// New constructs a Sentinel bounded to the default live-Request count.
func New[Request comparable, Name comparable, Claim Ordered[Claim]]() *Sentinel[Request, Name, Claim] {
	return &Sentinel[Request, Name, Claim]{
		requests: lru.New[Request, map[Name]Claim](defaultMaxRequestCount),
	}
}

// AddClaim records sender's claim for request. Once at least threshold
// distinct senders have reported a claim for request, it returns the
// median of those claims and ok=true, and request's entry is removed.
// A second claim from a sender already recorded overwrites the first;
// it does not count twice toward threshold.
func (s *Sentinel[Request, Name, Claim]) AddClaim(threshold int, request Request, sender Name, claim Claim) (median Claim, ok bool) {
	byName, found := s.requests.Get(request)
	if !found {
		byName = make(map[Name]Claim, threshold)
	}
	byName[sender] = claim
	s.requests.Put(request, byName)

	if len(byName) < threshold {
		return median, false
	}

	median, ok = pickMedian(byName)
	if ok {
		s.requests.Delete(request)
	}
	return median, ok
}

// Len returns the number of live Requests currently accumulating.
func (s *Sentinel[Request, Name, Claim]) Len() int {
	return s.requests.Len()
}

func pickMedian[Name comparable, Claim Ordered[Claim]](byName map[Name]Claim) (Claim, bool) {
	var zero Claim
	if len(byName) == 0 {
		return zero, false
	}

	claims := make([]Claim, 0, len(byName))
	for _, c := range byName {
		claims = append(claims, c)
	}
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].Less(claims[j])
	})
	return claims[len(claims)/2], true
}
