// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package network propagates authored blocks between nodes running in the same
// process. Every node joins a shared Hub and receives the blocks announced by
// the other nodes on its import gate.
package network

import (
	"context"
	"errors"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/internal/log"
	"github.com/ChainSafe/gossamer-aura/lib/aura"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// defaultBufferSize is the number of announcements queued per peer.
const defaultBufferSize = 128

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "network"),
)

var (
	// ErrPeerExists is returned when joining the hub with a taken peer id.
	ErrPeerExists = errors.New("peer already joined")
	// ErrNilImporter is returned when joining the hub without an importer.
	ErrNilImporter = errors.New("cannot have nil importer")

	errServiceStarted = errors.New("network service already started")
	errServiceStopped = errors.New("network service already stopped")
)

var (
	announcedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Subsystem: "network",
		Name:      "announced_blocks_total",
		Help:      "Number of blocks announced to peers.",
	})
	receivedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Subsystem: "network",
		Name:      "received_blocks_total",
		Help:      "Number of announced blocks received, by import result.",
	}, []string{"result"})
	droppedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gossamer_aura",
		Subsystem: "network",
		Name:      "dropped_announcements_total",
		Help:      "Number of announcements dropped because the peer queue was full.",
	})
)

// PeerID identifies a node on the hub.
type PeerID string

// BlockImporter imports announced blocks. It is implemented by aura.ImportGate.
type BlockImporter interface {
	Import(ctx context.Context, block *types.Block) (*aura.VerifiedBlock, error)
}
