// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sentinelconfig holds the construction-time configuration
// surface named in spec.md section 6, built the way the teacher's
// config.Builder builds consensus parameters: defaulted fields and a
// fluent With* chain ending in Build.
package sentinelconfig

import "errors"

// ErrNonPositiveThreshold is returned by Build when a threshold is
// less than one.
var ErrNonPositiveThreshold = errors.New("sentinelconfig: threshold must be >= 1")

// Config holds the thresholds a Sentinel is constructed with.
// claim_threshold from spec.md section 6 is carried here as the
// caller's documented default; AddClaim/AddKeys still take an explicit
// claim quorumSize per call, matching the literal operation signatures
// in spec.md section 4.4 and the upstream PureSentinel::add_claim/
// add_keys API this was distilled from. keys_threshold has no per-call
// override: KeysThreshold is used for every verification.
type Config struct {
	// ClaimThreshold is the default minimum number of independently
	// verified, byte-equal claims needed to emit a result.
	ClaimThreshold int

	// KeysThreshold is the minimum number of distinct attesters
	// needed before a (target, key) binding is usable.
	KeysThreshold int

	// MaxRequestCount bounds the claim Accumulator's LRU.
	MaxRequestCount int

	// Strict enables the debug-only single-winner invariant check in
	// squash (spec.md section 7, "Multiple distinct bodies each reach
	// quorum"). Off by default, matching the Rust debug_assert! which
	// only fires in debug builds.
	Strict bool
}

// DefaultMaxRequestCount matches spec.md section 6's default.
const DefaultMaxRequestCount = 1000

// Builder constructs a Config through a fluent chain, the way the
// teacher's config.Builder does.
type Builder struct {
	config Config
}

// NewBuilder returns a Builder seeded with spec.md's defaults.
func NewBuilder() *Builder {
	return &Builder{config: Config{
		ClaimThreshold:  1,
		KeysThreshold:   1,
		MaxRequestCount: DefaultMaxRequestCount,
	}}
}

// WithClaimThreshold sets the default claim threshold.
func (b *Builder) WithClaimThreshold(n int) *Builder {
	b.config.ClaimThreshold = n
	return b
}

// WithKeysThreshold sets the default keys threshold.
func (b *Builder) WithKeysThreshold(n int) *Builder {
	b.config.KeysThreshold = n
	return b
}

// WithMaxRequestCount sets the Accumulator's LRU bound.
func (b *Builder) WithMaxRequestCount(n int) *Builder {
	b.config.MaxRequestCount = n
	return b
}

// WithStrict toggles the debug-only single-winner invariant check.
func (b *Builder) WithStrict(strict bool) *Builder {
	b.config.Strict = strict
	return b
}

// Build validates and returns the constructed Config.
func (b *Builder) Build() (*Config, error) {
	if b.config.ClaimThreshold < 1 || b.config.KeysThreshold < 1 {
		return nil, ErrNonPositiveThreshold
	}
	if b.config.MaxRequestCount < 1 {
		b.config.MaxRequestCount = DefaultMaxRequestCount
	}
	cfg := b.config
	return &cfg, nil
}
