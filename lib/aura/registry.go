// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"sync"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
)

// DefaultEquivocationWindow is the number of slots behind the current slot
// for which observations are kept.
const DefaultEquivocationWindow uint64 = 1000

type slotAuthor struct {
	slot      uint64
	authority types.AuthorityID
}

type observation struct {
	first    common.Hash
	reported bool
}

// EquivocationRegistry tracks the first block seen for each (slot, authority)
// pair and detects a second, different block for the same pair.
type EquivocationRegistry struct {
	mutex        sync.Mutex
	window       uint64
	firstTracked uint64
	observations map[slotAuthor]*observation
}

// NewEquivocationRegistry creates a registry keeping observations for window slots.
// A zero window uses DefaultEquivocationWindow.
func NewEquivocationRegistry(window uint64) *EquivocationRegistry {
	if window == 0 {
		window = DefaultEquivocationWindow
	}
	return &EquivocationRegistry{
		window:       window,
		observations: make(map[slotAuthor]*observation),
	}
}

// Observe records the block id for the slot and authority. It returns a proof
// the first time a different id is observed for the pair, and nil otherwise.
// Once a proof is returned the pair stays reported and yields no further proofs.
func (r *EquivocationRegistry) Observe(slot uint64, authority types.AuthorityID,
	id common.Hash) *types.EquivocationProof {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if slot < r.firstTracked {
		return nil
	}

	key := slotAuthor{slot: slot, authority: authority}
	obs, has := r.observations[key]
	if !has {
		r.observations[key] = &observation{first: id}
		return nil
	}

	if obs.reported || obs.first == id {
		return nil
	}

	proof := &types.EquivocationProof{
		Slot:        slot,
		Offender:    authority,
		FirstBlock:  obs.first,
		SecondBlock: id,
	}
	obs.first = common.EmptyHash
	obs.reported = true
	return proof
}

// Seen returns true if a block of the authority was observed for the slot.
func (r *EquivocationRegistry) Seen(slot uint64, authority types.AuthorityID) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	_, has := r.observations[slotAuthor{slot: slot, authority: authority}]
	return has
}

// Prune evicts observations older than the window behind slotNow.
// Later observations of evicted slots are ignored.
func (r *EquivocationRegistry) Prune(slotNow uint64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if slotNow <= r.window {
		return
	}

	firstTracked := slotNow - r.window
	if firstTracked <= r.firstTracked {
		return
	}
	r.firstTracked = firstTracked

	for key := range r.observations {
		if key.slot < firstTracked {
			delete(r.observations, key)
		}
	}
}

// Len returns the number of tracked (slot, authority) pairs.
func (r *EquivocationRegistry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.observations)
}
