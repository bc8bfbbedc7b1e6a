// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/gossamer-aura/dot/types"

	"github.com/ChainSafe/chaindb"
)

const offenceTablePrefix = "offence"

var pendingProofsKey = []byte("pending_equivocations")

// OffenceState keeps the equivocation proofs awaiting on-chain submission.
type OffenceState struct {
	mutex sync.Mutex
	db    chaindb.Database
}

// NewOffenceState returns the offence state stored in db.
func NewOffenceState(db chaindb.Database) *OffenceState {
	return &OffenceState{
		db: chaindb.NewTable(db, offenceTablePrefix),
	}
}

// ReportEquivocation stores the proof as pending. Reporting a proof twice is a no-op.
func (s *OffenceState) ReportEquivocation(_ context.Context, proof *types.EquivocationProof) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	pending, err := s.pending()
	if err != nil {
		return err
	}

	for _, p := range pending {
		if p == *proof {
			return nil
		}
	}

	logger.Warnf("equivocation by %s at slot %d: blocks %s and %s",
		proof.Offender, proof.Slot, proof.FirstBlock, proof.SecondBlock)

	enc, err := types.EncodeEquivocationProofs(append(pending, *proof))
	if err != nil {
		return fmt.Errorf("encoding equivocation proofs: %w", err)
	}
	return s.db.Put(pendingProofsKey, enc)
}

// Pending returns the stored proofs in report order.
func (s *OffenceState) Pending() ([]types.EquivocationProof, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.pending()
}

// Clear removes all pending proofs.
func (s *OffenceState) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.db.Del(pendingProofsKey)
	if err != nil && !errors.Is(err, chaindb.ErrKeyNotFound) {
		return err
	}
	return nil
}

func (s *OffenceState) pending() ([]types.EquivocationProof, error) {
	enc, err := s.db.Get(pendingProofsKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("getting pending equivocation proofs: %w", err)
	}

	proofs, err := types.DecodeEquivocationProofs(enc)
	if err != nil {
		return nil, fmt.Errorf("decoding pending equivocation proofs: %w", err)
	}
	return proofs, nil
}
