// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sentinelmetrics wires the resolver's ingress/resolution/
// eviction counters to Prometheus, the way the teacher's metrics
// package wires consensus counters.
package sentinelmetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters the Sentinel resolver updates as claims
// and keys are ingested. Not named in spec.md's core, which treats
// observability as out of scope for the algorithm itself, but every
// production deployment of an accumulator wants occupancy/throughput
// visibility, per SPEC_FULL.md's ambient stack section.
type Metrics struct {
	ClaimsIngested       prometheus.Counter
	KeysIngested         prometheus.Counter
	RequestsResolved     prometheus.Counter
	RequestsEvicted      prometheus.Counter
	RequestsAccumulating prometheus.Gauge
}

// New registers and returns a Metrics instance against reg. reg may be
// nil, in which case metrics are tracked in-process but never exposed
// (useful for tests).
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ClaimsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_claims_ingested_total",
			Help: "Total number of claims added via AddClaim.",
		}),
		KeysIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_keys_ingested_total",
			Help: "Total number of (target, key) attestations added via AddKeys.",
		}),
		RequestsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_requests_resolved_total",
			Help: "Total number of Requests that reached a resolved claim.",
		}),
		RequestsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_requests_evicted_total",
			Help: "Total number of Requests evicted from the accumulator under capacity pressure.",
		}),
		RequestsAccumulating: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sentinel_requests_accumulating",
			Help: "Number of Requests currently accumulating claims.",
		}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{
		m.ClaimsIngested, m.KeysIngested, m.RequestsResolved, m.RequestsEvicted, m.RequestsAccumulating,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
