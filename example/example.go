// Copyright (C) 2015-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package example is a runnable walk-through of the single-claimant
// happy-path flow against ids.ID-named peers and the default BLS
// verifier. It is not a CLI; Run is meant to be called from a test or
// from a caller's own main, and it returns the resolved claim body so
// it can be asserted on.
package example

import (
	"fmt"

	"github.com/luxfi/crypto/bls"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/sentinel"
	"github.com/luxfi/sentinel/keys"
	"github.com/luxfi/sentinel/sentinelconfig"
	"github.com/luxfi/sentinel/sentinelmetrics"
)

// overlayRequest is the smallest possible Sourced[ids.ID]: a request
// identifier paired with the group Name keys should be solicited from.
type overlayRequest struct {
	requestID ids.ID
	source    ids.ID
}

func (r overlayRequest) Source() ids.ID { return r.source }

// Run walks a single Request through the happy path: one claimant
// submits a signed claim, the caller solicits and supplies a single
// key attestation, and the Request resolves. It returns the agreed
// claim body.
func Run(logger log.Logger) ([]byte, error) {
	if logger == nil {
		logger = log.NoLog{}
	}

	metrics, err := sentinelmetrics.New(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("example: registering metrics: %w", err)
	}

	cfg, err := sentinelconfig.NewBuilder().
		WithClaimThreshold(1).
		WithKeysThreshold(1).
		Build()
	if err != nil {
		return nil, fmt.Errorf("example: building config: %w", err)
	}

	s := sentinel.New[overlayRequest, ids.ID](cfg, keys.BLSVerifier{}, logger, metrics)

	sk, err := bls.NewSecretKey()
	if err != nil {
		return nil, fmt.Errorf("example: generating claimant key: %w", err)
	}
	claimant := ids.GenerateTestID()
	source := ids.GenerateTestID()
	body := []byte("overlay data at height 7")
	sig, err := sk.Sign(body)
	if err != nil {
		return nil, fmt.Errorf("example: signing claim: %w", err)
	}

	req := overlayRequest{requestID: ids.GenerateTestID(), source: source}

	result := s.AddClaim(req, claimant, keys.NewBLSSignature(sig), body, 1)
	rk, ok := result.(sentinel.RequestKeys[overlayRequest, ids.ID])
	if !ok {
		return nil, fmt.Errorf("example: expected a key request after first claim, got %T", result)
	}
	logger.Info("example: soliciting keys", "source", rk.Source)

	// In a real deployment this is where the caller would fan out a
	// network request to rk.Source's peers and wait for replies; here
	// we simulate a single peer vouching for the claimant's key.
	_, resolvedBody, resolved := s.AddKeys(req, ids.GenerateTestID(), []sentinel.Attestation[ids.ID]{
		{Target: claimant, Key: keys.NewBLSPublicKey(sk.PublicKey())},
	}, 1)
	if !resolved {
		return nil, fmt.Errorf("example: request did not resolve")
	}
	return resolvedBody, nil
}
