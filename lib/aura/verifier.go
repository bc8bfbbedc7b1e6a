// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/slots"
)

// VerifiedBlock is a block whose seal was verified against the slot author.
type VerifiedBlock struct {
	Block          *types.Block
	Hash           common.Hash
	PreSealHash    common.Hash
	Slot           uint64
	AuthorityIndex uint32
	Author         types.Authority
}

// VerifierConfig is the configuration of the seal verifier.
type VerifierConfig struct {
	Resolver AuthorityResolver
	Clock    *slots.Clock
	Registry *EquivocationRegistry
	// Reporter is optional, equivocations are only logged without it.
	Reporter EquivocationReporter
}

// Verifier checks that blocks are sealed by the authority entitled to their slot.
type Verifier struct {
	resolver AuthorityResolver
	clock    *slots.Clock
	registry *EquivocationRegistry
	reporter EquivocationReporter
}

// NewVerifier returns a Verifier.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	if cfg.Resolver == nil {
		return nil, errors.New("authority resolver is nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("slot clock is nil")
	}

	registry := cfg.Registry
	if registry == nil {
		registry = NewEquivocationRegistry(DefaultEquivocationWindow)
	}

	return &Verifier{
		resolver: cfg.Resolver,
		clock:    cfg.Clock,
		registry: registry,
		reporter: cfg.Reporter,
	}, nil
}

// Registry returns the equivocation registry fed by the verifier.
func (v *Verifier) Registry() *EquivocationRegistry {
	return v.registry
}

// Verify checks the block against its parent header. The checks run in order
// and stop at the first failure: pre-runtime digest, parent, slot increase,
// slot lead, authority set resolution and seal. The slot lead is measured
// with the slot duration of the resolved authority set. An equivocation does
// not fail the block, its proof is handed to the reporter.
func (v *Verifier) Verify(ctx context.Context, block *types.Block, parent *types.Header) (
	verified *VerifiedBlock, err error) {
	defer func() {
		verificationsCounter.WithLabelValues(verificationResult(err)).Inc()
	}()

	switch {
	case block == nil:
		return nil, errNilBlock
	case parent == nil:
		return nil, errNilParentHeader
	}

	header := &block.Header
	if header.Number == 0 {
		return nil, fmt.Errorf("%w: genesis block", ErrMissingPreDigest)
	}

	slot, err := types.FindAuraPreDigest(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingPreDigest, err)
	}

	parentHash := parent.Hash()
	if header.ParentHash != parentHash {
		return nil, fmt.Errorf("%w: block parent is %s, given parent is %s",
			ErrUnknownParent, header.ParentHash, parentHash)
	}

	parentSlot, err := types.FindAuraPreDigest(parent)
	if err != nil {
		return nil, fmt.Errorf("%w: parent: %v", ErrMissingPreDigest, err)
	}

	if slot <= parentSlot {
		return nil, fmt.Errorf("%w: slot %d, parent slot %d", ErrSlotNotIncreasing, slot, parentSlot)
	}

	set, resolveErr := resolve(ctx, v.resolver, parentHash)
	clock := v.clockFor(set)

	if tooFar, wait := clock.IsTooFarInFuture(slot); tooFar {
		return nil, &FutureSlotError{Slot: slot, Wait: wait}
	}

	if resolveErr != nil {
		return nil, resolveErr
	}

	author, index, err := SlotAuthor(slot, set)
	if err != nil {
		return nil, err
	}

	unsealed, sealDigest := header.WithoutSeal()
	if sealDigest == nil || sealDigest.ConsensusEngineID != types.AuraEngineID {
		return nil, fmt.Errorf("%w: %v", ErrBadSeal, types.ErrNoAuraSeal)
	}

	seal, err := types.DecodeAuraSeal(sealDigest.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSeal, err)
	}

	preSealHash := unsealed.Hash()
	ok, err := author.Key.Verify(preSealHash[:], seal.Signature[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSeal, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: not signed by slot %d author %s", ErrBadSeal, slot, author)
	}

	hash := header.Hash()
	v.checkEquivocation(ctx, clock, slot, author, hash)

	return &VerifiedBlock{
		Block:          block,
		Hash:           hash,
		PreSealHash:    preSealHash,
		Slot:           slot,
		AuthorityIndex: index,
		Author:         author,
	}, nil
}

// clockFor returns the slot clock using the slot duration of the set,
// or the configured clock if the set carries none.
func (v *Verifier) clockFor(set *AuthoritySet) *slots.Clock {
	if set == nil || set.SlotDuration <= 0 || set.SlotDuration == v.clock.Duration() {
		return v.clock
	}

	clock, err := v.clock.WithDuration(set.SlotDuration)
	if err != nil {
		return v.clock
	}
	return clock
}

func (v *Verifier) checkEquivocation(ctx context.Context, clock *slots.Clock, slot uint64,
	author types.Authority, hash common.Hash) {
	v.registry.Prune(clock.CurrentSlot())

	proof := v.registry.Observe(slot, author.ID(), hash)
	if proof == nil {
		return
	}

	equivocationsCounter.Inc()
	logger.Warnf("authority %s equivocated in slot %d: blocks %s and %s",
		author, slot, proof.FirstBlock, proof.SecondBlock)

	if v.reporter == nil {
		return
	}

	if err := v.reporter.ReportEquivocation(ctx, proof); err != nil {
		logger.Errorf("failed to report equivocation in slot %d: %s", slot, err)
	}
}
