// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package core

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/benbjohnson/clock"
)

// BlockBuilder builds development blocks holding the timestamp inherent.
type BlockBuilder struct {
	clock clock.Clock
}

// NewBlockBuilder returns a block builder reading time from the clock.
func NewBlockBuilder(c clock.Clock) *BlockBuilder {
	if c == nil {
		c = clock.New()
	}
	return &BlockBuilder{clock: c}
}

// Build returns an unsealed block on top of the parent carrying the pre-runtime digest.
func (b *BlockBuilder) Build(ctx context.Context, parent *types.Header,
	preDigest *types.PreRuntimeDigest) (*types.Block, error) {
	if parent == nil {
		return nil, errNilParent
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inherent, err := NewTimestampInherent(b.clock.Now())
	if err != nil {
		return nil, err
	}

	body := types.Body{inherent}
	extrinsicsRoot, err := body.Root()
	if err != nil {
		return nil, fmt.Errorf("computing extrinsics root: %w", err)
	}

	stateRoot, err := NextStateRoot(parent.StateRoot, extrinsicsRoot)
	if err != nil {
		return nil, err
	}

	header := types.NewHeader(parent.Hash(), stateRoot, extrinsicsRoot, parent.Number+1,
		types.NewDigest(preDigest))

	logger.Tracef("built block number %d on top of %s", header.Number, header.ParentHash)
	block := types.NewBlock(*header, body)
	return &block, nil
}

// NextStateRoot returns the state root after applying the extrinsics to the parent state.
// The development chain commits to the extrinsics only.
func NextStateRoot(parentStateRoot, extrinsicsRoot common.Hash) (common.Hash, error) {
	root, err := common.Blake2bHash(append(parentStateRoot.ToBytes(), extrinsicsRoot.ToBytes()...))
	if err != nil {
		return common.Hash{}, fmt.Errorf("computing state root: %w", err)
	}
	return root, nil
}
