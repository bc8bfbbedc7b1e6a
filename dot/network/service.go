// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/aura"
)

// Service is the network service of one node on the hub.
// It announces local blocks and imports blocks announced by other peers.
type Service struct {
	id       PeerID
	hub      *Hub
	importer BlockImporter
	inbound  chan *types.Block
	syncing  uint32

	startStop sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
}

func newService(id PeerID, hub *Hub, importer BlockImporter) *Service {
	return &Service{
		id:       id,
		hub:      hub,
		importer: importer,
		inbound:  make(chan *types.Block, defaultBufferSize),
	}
}

// ID returns the peer id of the service.
func (s *Service) ID() PeerID {
	return s.id
}

// Announce sends the block to every other peer on the hub.
func (s *Service) Announce(ctx context.Context, block *types.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sent := s.hub.broadcast(s.id, block)
	announcedCounter.Inc()
	logger.Debugf("announced block number %d with hash %s to %d peers",
		block.Header.Number, block.Header.Hash(), sent)
	return nil
}

// IsMajorSyncing returns true while the node is catching up with the chain.
func (s *Service) IsMajorSyncing() bool {
	return atomic.LoadUint32(&s.syncing) == 1
}

// SetMajorSyncing sets the sync status reported by IsMajorSyncing.
func (s *Service) SetMajorSyncing(syncing bool) {
	var value uint32
	if syncing {
		value = 1
	}
	atomic.StoreUint32(&s.syncing, value)
}

// IsOffline returns true if no other peer is connected.
func (s *Service) IsOffline() bool {
	return s.hub.peerCount(s.id) == 0
}

// deliver queues the block, dropping it if the queue is full.
func (s *Service) deliver(block *types.Block) bool {
	select {
	case s.inbound <- block:
		return true
	default:
		droppedCounter.Inc()
		logger.Warnf("dropping announcement of block %s to peer %s: queue full",
			block.Header.Hash(), s.id)
		return false
	}
}

// Start imports announced blocks in the background until Stop is called.
func (s *Service) Start() error {
	s.startStop.Lock()
	defer s.startStop.Unlock()

	if s.cancel != nil {
		return errServiceStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		_ = s.Run(ctx)
	}()
	return nil
}

// Stop stops importing announced blocks and waits for the import in progress.
func (s *Service) Stop() error {
	s.startStop.Lock()
	defer s.startStop.Unlock()

	if s.cancel == nil {
		return errServiceStopped
	}

	s.cancel()
	<-s.done
	s.cancel = nil
	return nil
}

// Run imports announced blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case block := <-s.inbound:
			s.handleBlockAnnounce(ctx, block)
		}
	}
}

func (s *Service) handleBlockAnnounce(ctx context.Context, block *types.Block) {
	_, err := s.importer.Import(ctx, block)
	switch {
	case err == nil:
		receivedCounter.WithLabelValues("imported").Inc()
	case aura.IsRetryable(err):
		receivedCounter.WithLabelValues("deferred").Inc()
		logger.Debugf("deferred announced block %s: %s", block.Header.Hash(), err)
	case errors.Is(err, context.Canceled):
	default:
		receivedCounter.WithLabelValues("rejected").Inc()
		logger.Warnf("rejected announced block %s: %s", block.Header.Hash(), err)
	}
}
