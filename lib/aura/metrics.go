// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	currentSlotGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gossamer_aura",
		Name:      "current_slot",
		Help:      "slot of the last handled slot boundary",
	})
	slotsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Name:      "slots_total",
		Help:      "total number of slot boundaries handled by the authoring worker",
	})
	claimsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Name:      "claims_total",
		Help:      "total number of slots claimed by a local authority key",
	})
	authoredCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Name:      "blocks_authored_total",
		Help:      "total number of blocks authored and announced",
	})
	skipsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Name:      "authoring_skips_total",
		Help:      "total number of slots skipped by the authoring worker, by reason",
	}, []string{"reason"})
	verificationsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Name:      "verifications_total",
		Help:      "total number of block verifications, by result",
	}, []string{"result"})
	equivocationsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Name:      "equivocations_total",
		Help:      "total number of equivocations detected",
	})
	deferredGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gossamer_aura",
		Name:      "deferred_blocks",
		Help:      "number of blocks waiting for their slot before import",
	})
)

func verificationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTooFarInFuture):
		return "future"
	case errors.Is(err, ErrBadSeal):
		return "bad_seal"
	case errors.Is(err, ErrSlotNotIncreasing):
		return "slot_not_increasing"
	case errors.Is(err, ErrMissingPreDigest):
		return "missing_pre_digest"
	case errors.Is(err, ErrResolution):
		return "resolution"
	default:
		return "other"
	}
}
