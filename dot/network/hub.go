// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ChainSafe/gossamer-aura/dot/types"
)

// Hub connects the network services of in-process nodes.
type Hub struct {
	mutex sync.RWMutex
	peers map[PeerID]*Service
}

// NewHub returns a hub without peers.
func NewHub() *Hub {
	return &Hub{
		peers: make(map[PeerID]*Service),
	}
}

// Join returns the network service of a new peer importing announced blocks with the importer.
func (h *Hub) Join(id PeerID, importer BlockImporter) (*Service, error) {
	if importer == nil {
		return nil, ErrNilImporter
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, has := h.peers[id]; has {
		return nil, fmt.Errorf("%w: %s", ErrPeerExists, id)
	}

	s := newService(id, h, importer)
	h.peers[id] = s
	logger.Debugf("peer %s joined, %d peers", id, len(h.peers))
	return s, nil
}

// Leave disconnects the peer from the hub.
func (h *Hub) Leave(id PeerID) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.peers, id)
	logger.Debugf("peer %s left, %d peers", id, len(h.peers))
}

// Peers returns the sorted ids of the connected peers.
func (h *Hub) Peers() []PeerID {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	ids := make([]PeerID, 0, len(h.peers))
	for id := range h.peers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// peerCount returns the number of connected peers other than from.
func (h *Hub) peerCount(from PeerID) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	n := len(h.peers)
	if _, has := h.peers[from]; has {
		n--
	}
	return n
}

// broadcast queues a copy of the block on every peer other than from.
func (h *Hub) broadcast(from PeerID, block *types.Block) (sent int) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for id, peer := range h.peers {
		if id == from {
			continue
		}
		if peer.deliver(block.DeepCopy()) {
			sent++
		}
	}
	return sent
}
