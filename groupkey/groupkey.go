// Copyright (C) 2015-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package groupkey implements the group-identity-picker sibling of the
// root Sentinel: per Request, a count of distinct senders vouching for
// each identity, resolving to the set of identities that cleared a
// vouch-count bar once enough distinct identities did so.
package groupkey

import (
	"sort"

	"github.com/luxfi/sentinel/internal/lru"
	"github.com/luxfi/sentinel/internal/set"
)

const defaultMaxRequestCount = 1000

// Sentinel is the group-identity picker: for each Request it tracks,
// per candidate identity, the set of distinct Names that vouched for
// it. Once at least claimThreshold identities have been vouched for by
// at least keysThreshold distinct senders, it returns those identities
// in descending vouch-count order and discards the Request.
type Sentinel[Request comparable, Name comparable, IDType comparable] struct {
	requests       *lru.Cache[Request, map[IDType]set.Set[Name]]
	claimThreshold int
	keysThreshold  int
}

// New constructs a Sentinel requiring at least claimThreshold
// identities to individually clear keysThreshold distinct vouches
// before a Request resolves.
func New[Request comparable, Name comparable, IDType comparable](claimThreshold, keysThreshold int) *Sentinel[Request, Name, IDType] {
	return &Sentinel[Request, Name, IDType]{
		requests:       lru.New[Request, map[IDType]set.Set[Name]](defaultMaxRequestCount),
		claimThreshold: claimThreshold,
		keysThreshold:  keysThreshold,
	}
}

// AddIdentities records that sender vouches for every identity in
// identities, then re-evaluates whether request is ready to resolve.
// On success it returns the qualifying identities in descending
// vouch-count order and ok=true, and request's entry is removed.
func (s *Sentinel[Request, Name, IDType]) AddIdentities(request Request, sender Name, identities []IDType) (resolved []IDType, ok bool) {
	byIdentity, found := s.requests.Get(request)
	if !found {
		byIdentity = make(map[IDType]set.Set[Name], len(identities))
	}

	for _, id := range identities {
		senders, ok := byIdentity[id]
		if !ok {
			senders = set.New[Name]()
			byIdentity[id] = senders
		}
		senders.Add(sender)
	}
	s.requests.Put(request, byIdentity)

	resolved, ok = s.trySelectingGroup(byIdentity)
	if ok {
		s.requests.Delete(request)
	}
	return resolved, ok
}

// Len returns the number of live Requests currently accumulating.
func (s *Sentinel[Request, Name, IDType]) Len() int {
	return s.requests.Len()
}

func (s *Sentinel[Request, Name, IDType]) trySelectingGroup(byIdentity map[IDType]set.Set[Name]) ([]IDType, bool) {
	type confirmed struct {
		id    IDType
		count int
	}

	qualifying := make([]confirmed, 0, len(byIdentity))
	for id, senders := range byIdentity {
		if senders.Len() >= s.keysThreshold {
			qualifying = append(qualifying, confirmed{id: id, count: senders.Len()})
		}
	}

	if len(qualifying) < s.claimThreshold {
		return nil, false
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].count > qualifying[j].count
	})

	ids := make([]IDType, len(qualifying))
	for i, c := range qualifying {
		ids[i] = c.id
	}
	return ids, true
}
