// Copyright (C) 2015-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sentinel is a consensus-by-accumulation primitive for a
// decentralised peer-to-peer overlay. For a given opaque Request it
// collects signed Claims from independent peers and, in parallel,
// collects attestations about which public signing keys belong to
// which claimant identity. When it has gathered enough
// mutually-confirming keys and enough signature-verified, identical
// claims, it emits a single resolved Claim bound to that Request.
// Claimant identities and signatures are discarded after resolution;
// the caller obtains only the Request and the agreed Claim body.
package sentinel

import (
	"github.com/luxfi/log"

	"github.com/luxfi/sentinel/accumulator"
	"github.com/luxfi/sentinel/frequency"
	"github.com/luxfi/sentinel/keys"
	"github.com/luxfi/sentinel/keystore"
	"github.com/luxfi/sentinel/sentinelconfig"
	"github.com/luxfi/sentinel/sentinelmetrics"
)

// Sourced is the capability a Request type must provide: a stable
// Name identifying the group from which keys should be solicited.
// Name must be comparable; Request values are
// copied by ordinary Go assignment, matching spec.md's "opaque,
// comparable, cloneable value".
type Sourced[Name comparable] interface {
	comparable
	// Source returns the Name identifying the group this Request's
	// keys should be solicited from. Must be stable across copies.
	Source() Name
}

// Attestation is one (target, public key) pair a sender vouches for.
type Attestation[Name comparable] struct {
	Target Name
	Key    keys.PublicKey
}

// submission is one claimant's signed claim body for a Request.
type submission[Name comparable] struct {
	Claimant  Name
	Signature keys.Signature
	Body      []byte
}

// AddResult is the sum type AddClaim returns: either Resolved or
// RequestKeys, or nil if neither applies yet.
type AddResult[Request any, Name any] interface {
	isAddResult()
}

// Resolved is returned once a Request has accumulated a squash-worthy
// set of verified, identical claims. The Request is removed from the
// accumulator in the same step.
type Resolved[Request any, Name any] struct {
	Request Request
	Body    []byte
}

func (Resolved[Request, Name]) isAddResult() {}

// RequestKeys signals that the caller should solicit public key
// attestations from the group surrounding Source and feed them back
// via AddKeys. It is returned exactly once per previously-unknown
// Request, unless that Request was evicted and resubmitted.
type RequestKeys[Request any, Name any] struct {
	Source Name
}

func (RequestKeys[Request, Name]) isAddResult() {}

// Sentinel is the dual accumulator / quorum resolver: the claim
// accumulator, the attested-key store, signature verification pairing
// the two, and the frequency-based squash that picks the single claim
// agreed upon by at least quorumSize independent, verified claimants.
//
// Sentinel is not internally synchronised (spec.md section 5);
// concurrent callers must serialise access externally.
type Sentinel[Request Sourced[Name], Name comparable] struct {
	claims   *accumulator.Accumulator[Request, submission[Name]]
	keystore *keystore.KeyStore[Name]
	verifier keys.Verifier

	keysThreshold int
	strict        bool

	log          log.Logger
	metrics      *sentinelmetrics.Metrics
	lastEviction int
}

// New constructs a Sentinel. logger must not be nil; pass log.NoLog{}
// when the caller doesn't want logging. metrics may be a nil
// *sentinelmetrics.Metrics, in which case no metrics are updated.
func New[Request Sourced[Name], Name comparable](
	cfg *sentinelconfig.Config,
	verifier keys.Verifier,
	logger log.Logger,
	metrics *sentinelmetrics.Metrics,
) *Sentinel[Request, Name] {
	return &Sentinel[Request, Name]{
		claims:        accumulator.New[Request, submission[Name]](cfg.MaxRequestCount, cfg.ClaimThreshold),
		keystore:      keystore.New[Name](),
		verifier:      verifier,
		keysThreshold: cfg.KeysThreshold,
		strict:        cfg.Strict,
		log:           logger,
		metrics:       metrics,
	}
}

// AddClaim adds a new claim for request from claimant, signed with
// signature over body. quorumSize overrides the accumulator's
// emission threshold for this and subsequent calls (spec.md section
// 4.4, step 2), so all callers driving the same Request should agree
// on quorumSize.
//
// Returns Resolved if this claim completed a verified, squash-worthy
// set. Otherwise, if request was previously unknown, returns
// RequestKeys so the caller can solicit signing keys for
// request.Source(). Otherwise returns nil: keep accumulating.
//
// A Request that has already resolved once is deleted from the
// accumulator (spec.md's specified behavior); a late-arriving claim
// for the same logical Request is therefore indistinguishable from a
// brand new one and re-emits RequestKeys, unless keys the KeyStore
// still holds let it resolve on the spot. Callers in high-churn
// deployments that want to suppress that re-announcement need to track
// resolved Requests themselves — Sentinel does not.
func (s *Sentinel[Request, Name]) AddClaim(
	request Request,
	claimant Name,
	signature keys.Signature,
	body []byte,
	quorumSize int,
) AddResult[Request, Name] {
	sawFirstTime := !s.claims.ContainsKey(request)
	s.claims.SetQuorumSize(quorumSize)

	snapshot, reached := s.claims.Add(request, submission[Name]{
		Claimant:  claimant,
		Signature: signature,
		Body:      body,
	})
	s.incClaimsIngested()

	if reached {
		if resolvedBody, ok := s.resolve(request, snapshot, quorumSize); ok {
			s.log.Debug("sentinel: resolved request", "source", request.Source())
			return Resolved[Request, Name]{Request: request, Body: resolvedBody}
		}
	}

	if sawFirstTime {
		s.log.Debug("sentinel: first sighting, requesting keys", "source", request.Source())
		return RequestKeys[Request, Name]{Source: request.Source()}
	}
	return nil
}

// AddKeys records that sender vouches for each (target, key) pair in
// attestations, then re-runs resolution for request. If request is not
// currently accumulating claims, the submission is dropped entirely —
// keys can only have been solicited for a Request Sentinel already
// knows about, so unsolicited keys for an unknown Request are treated
// as noise (spec.md's defensive check against key-flooding).
//
// Returns the resolved body and ok=true if this call completed
// resolution, or ok=false otherwise.
func (s *Sentinel[Request, Name]) AddKeys(
	request Request,
	sender Name,
	attestations []Attestation[Name],
	quorumSize int,
) (resolvedRequest Request, body []byte, ok bool) {
	if !s.claims.ContainsKey(request) {
		return resolvedRequest, nil, false
	}

	for _, a := range attestations {
		s.keystore.AddKey(a.Target, sender, a.Key)
	}
	s.incKeysIngested(len(attestations))

	snapshot, found := s.claims.Get(request)
	if !found {
		return resolvedRequest, nil, false
	}

	resolvedBody, resolvedOK := s.resolve(request, snapshot, quorumSize)
	if !resolvedOK {
		return resolvedRequest, nil, false
	}
	s.log.Debug("sentinel: resolved request", "source", request.Source())
	return request, resolvedBody, true
}

// resolve verifies claims against the key store and squashes the
// verified bodies, deleting request's accumulator entry on success.
func (s *Sentinel[Request, Name]) resolve(
	request Request,
	claims []submission[Name],
	quorumSize int,
) ([]byte, bool) {
	verified := s.verify(claims)
	body, ok := s.squash(verified, quorumSize)
	if !ok {
		return nil, false
	}
	s.claims.Delete(request)
	if s.metrics != nil {
		s.metrics.RequestsResolved.Inc()
	}
	return body, true
}

// verify checks each claim's signature against every key accumulated
// for its claimant at the configured keys threshold. The first
// matching key wins; a claim verified by more than one key is still
// counted once.
func (s *Sentinel[Request, Name]) verify(claims []submission[Name]) [][]byte {
	verified := make([][]byte, 0, len(claims))
	for _, claim := range claims {
		candidates := s.keystore.GetAccumulatedKeys(claim.Claimant, s.keysThreshold)
		for _, pk := range candidates {
			if s.verifier.Verify(claim.Signature, claim.Body, pk) {
				verified = append(verified, claim.Body)
				break
			}
		}
	}
	return verified
}

// squash picks the single body agreed upon by at least quorumSize
// verified claimants. In Strict mode, it panics if more than one body
// clears the threshold, mirroring the upstream implementation's
// debug_assert! pair — production code should never reach this path
// under honest-majority assumptions, but Byzantine claimants or a
// KeyStore split (two distinct keys reaching quorum for one claimant)
// can trigger it.
func (s *Sentinel[Request, Name]) squash(verifiedBodies [][]byte, quorumSize int) ([]byte, bool) {
	if len(verifiedBodies) < quorumSize {
		return nil, false
	}

	freq := frequency.New[string]()
	for _, body := range verifiedBodies {
		freq.Update(string(body))
	}

	ranked := freq.SortByHighest()
	winners := ranked[:0:0]
	for _, r := range ranked {
		if r.Count >= quorumSize {
			winners = append(winners, r)
		}
	}

	if len(winners) == 0 {
		return nil, false
	}
	if s.strict && len(winners) > 1 {
		panic("sentinel: squash produced more than one quorum-clearing body")
	}
	return []byte(winners[0].Value), true
}

func (s *Sentinel[Request, Name]) incClaimsIngested() {
	if s.metrics == nil {
		return
	}
	s.metrics.ClaimsIngested.Inc()
	s.metrics.RequestsAccumulating.Set(float64(s.claims.Len()))

	if evictions := s.claims.Evictions(); evictions > s.lastEviction {
		s.metrics.RequestsEvicted.Add(float64(evictions - s.lastEviction))
		s.lastEviction = evictions
	}
}

func (s *Sentinel[Request, Name]) incKeysIngested(n int) {
	if s.metrics != nil {
		s.metrics.KeysIngested.Add(float64(n))
	}
}
