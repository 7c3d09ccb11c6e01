// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package set implements the small generic set KeyStore uses to track
// which attesters have vouched for a (target, key) binding. Adapted
// from the teacher's utils/set package, trimmed to what KeyStore
// needs: the teacher's Union/Intersection/Difference/JSON marshaling
// have no caller here.
package set

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Set is a set of unique elements.
type Set[T comparable] map[T]struct{}

// New returns an empty Set.
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// Add adds an element to the set, reporting whether it was already
// present. KeyStore uses this to make add_key idempotent per spec.md
// invariant P8 without a separate Contains check.
func (s Set[T]) Add(elt T) (alreadyPresent bool) {
	_, alreadyPresent = s[elt]
	s[elt] = struct{}{}
	return alreadyPresent
}

// Contains returns true if the set contains elt.
func (s Set[T]) Contains(elt T) bool {
	_, ok := s[elt]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// List returns the elements of the set. The order is non-deterministic.
func (s Set[T]) List() []T {
	return slices.Collect(maps.Keys(s))
}
