// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package frequency counts equal values and ranks them by count,
// preserving insertion order among ties. It backs the claim squash in
// the sentinel resolver.
package frequency

import "sort"

// Counted pairs a value with the number of times it was seen.
type Counted[T any] struct {
	Value T
	Count int
}

// Frequency counts equal values. Entries are kept in a slice in
// first-seen order, with a map from value to slice index for lookup;
// the slice is what lets SortByHighest preserve insertion order among
// equal counts.
type Frequency[T comparable] struct {
	entries []Counted[T]
	index   map[T]int
}

// New returns an empty Frequency.
func New[T comparable]() *Frequency[T] {
	return &Frequency[T]{index: make(map[T]int)}
}

// Update increments the count for value, inserting it if unseen.
func (f *Frequency[T]) Update(value T) {
	if i, ok := f.index[value]; ok {
		f.entries[i].Count++
		return
	}
	f.index[value] = len(f.entries)
	f.entries = append(f.entries, Counted[T]{Value: value, Count: 1})
}

// SortByHighest returns entries ordered by descending count. Ties keep
// their relative insertion order (stable sort), so repeated runs over
// the same input order always pick the same winner.
func (f *Frequency[T]) SortByHighest() []Counted[T] {
	out := make([]Counted[T], len(f.entries))
	copy(out, f.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// keyEntry is one outer key's bucket of inner-value counts, plus the
// maximum count seen across all of its values.
type keyEntry[K, V comparable] struct {
	key      K
	values   *Frequency[V]
	maxCount int
}

// KeyValueCounted reports, for one outer key, every inner value seen
// with its count, and the maximum count across those values.
type KeyValueCounted[K, V comparable] struct {
	Key      K
	Values   []Counted[V]
	MaxCount int
}

// FrequencyKeyValue counts (Key, Value) pairs and, per Key, tracks the
// maximum Value-count observed, so outer keys can be ranked by their
// best-supported inner value.
type FrequencyKeyValue[K, V comparable] struct {
	entries []*keyEntry[K, V]
	index   map[K]int
}

// NewKeyValue returns an empty FrequencyKeyValue.
func NewKeyValue[K, V comparable]() *FrequencyKeyValue[K, V] {
	return &FrequencyKeyValue[K, V]{index: make(map[K]int)}
}

// Update records one occurrence of (key, value).
func (f *FrequencyKeyValue[K, V]) Update(key K, value V) {
	i, ok := f.index[key]
	if !ok {
		i = len(f.entries)
		f.index[key] = i
		f.entries = append(f.entries, &keyEntry[K, V]{key: key, values: New[V]()})
	}
	entry := f.entries[i]
	entry.values.Update(value)
	if counted := entry.values.index[value]; entry.values.entries[counted].Count > entry.maxCount {
		entry.maxCount = entry.values.entries[counted].Count
	}
}

// SortByHighest returns one KeyValueCounted per outer key, ordered by
// descending MaxCount, ties preserving insertion order.
func (f *FrequencyKeyValue[K, V]) SortByHighest() []KeyValueCounted[K, V] {
	type ranked struct {
		entry *keyEntry[K, V]
	}
	ranked_ := make([]ranked, len(f.entries))
	for i, e := range f.entries {
		ranked_[i] = ranked{entry: e}
	}
	sort.SliceStable(ranked_, func(i, j int) bool {
		return ranked_[i].entry.maxCount > ranked_[j].entry.maxCount
	})

	out := make([]KeyValueCounted[K, V], len(ranked_))
	for i, r := range ranked_ {
		out[i] = KeyValueCounted[K, V]{
			Key:      r.entry.key,
			Values:   r.entry.values.SortByHighest(),
			MaxCount: r.entry.maxCount,
		}
	}
	return out
}
